package utils

import (
	"math"
)

func ConstArray(N int, val float64) (v []float64) {
	v = make([]float64, N)
	for i := range v {
		v[i] = val
	}
	return
}

// Linspace returns N evenly spaced values from min to max inclusive
func Linspace(min, max float64, N int) (v []float64) {
	switch {
	case N <= 0:
		return
	case N == 1:
		return []float64{min}
	}
	v = make([]float64, N)
	dx := (max - min) / float64(N-1)
	for i := range v {
		v[i] = min + float64(i)*dx
	}
	v[N-1] = max
	return
}

func POW(x float64, pp int) (y float64) {
	var (
		p       = pp
		flipped bool
	)
	if pp > 8 || pp < -8 {
		goto MATHPOW
	}

	if p < 0 {
		p = -pp
		flipped = true
	}
	switch p {
	case 0:
		y = 1
	case 1:
		y = x
	case 2:
		y = x * x
	case 3:
		y = x * x * x
	case 4:
		y = x * x
		y = y * y
	default:
		y = math.Pow(x, float64(p))
	}
	if flipped {
		y = 1. / y
	}
	return

MATHPOW:
	y = math.Pow(x, float64(p))
	return
}

// AbsClamp replaces each value by its magnitude, magnitudes below tol become exactly zero
func AbsClamp(v []float64, tol float64) {
	for i, val := range v {
		val = math.Abs(val)
		if val < tol {
			val = 0
		}
		v[i] = val
	}
}
