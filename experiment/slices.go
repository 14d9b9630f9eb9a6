package experiment

import (
	"math"

	"github.com/notargets/gowing/utils"
)

// MM2M converts the millimeters of the measured profiles to meters
const MM2M = 1.e-3

// Span stations of the measured pressure distributions, fractions of the half wing length
var wingFractions = []float64{
	0.994, 0.974, 0.944, 0.899, 0.843, 0.773,
	0.692, 0.597, 0.490, 0.370, 0.238, 0.094,
}

// WingSlices returns the measured span stations in the order the experiment numbers them
func WingSlices(halfWingLength float64) (z []float64) {
	z = make([]float64, len(wingFractions))
	for i, frac := range wingFractions {
		z[i] = halfWingLength * frac
	}
	return
}

// VortexSlices returns the streamwise offsets, in chords aft of the trailing edge, of the wake surveys
func VortexSlices() []float64 {
	return []float64{0.1, 0.2, 0.5, 1, 2, 4, 6}
}

/*
FindSlice returns the index of the location nearest to target, provided it is
strictly closer than tol.
*/
func FindSlice(locations []float64, target, tol float64) (idx int, ok bool) {
	var (
		best = math.Inf(1)
	)
	idx = -1
	for i, loc := range locations {
		if d := math.Abs(loc - target); d < tol && d < best {
			idx, best = i, d
		}
	}
	return idx, idx >= 0
}

/*
Correspondence maps each simulation slice onto the index of the matching
experimental location, -1 where there is none. Both sets enumerate the same
physical stations, so a match at position i names the experimental file i.
*/
func Correspondence(slices, locations []float64) (idx []int) {
	idx = make([]int, len(slices))
	for i, s := range slices {
		idx[i], _ = FindSlice(locations, s, utils.SLICETOL)
	}
	return
}

// Rescale returns (v*scale - shift)/norm for every value
func Rescale(v []float64, scale, shift, norm float64) (r []float64) {
	r = make([]float64, len(v))
	for i, val := range v {
		r[i] = (val*scale - shift) / norm
	}
	return
}
