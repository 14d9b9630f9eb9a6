package aerodynamics

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

/*
Rotation is the counter clockwise rotation by Degrees in the x-y plane:
	R = [[cos θ, -sin θ],
	     [sin θ,  cos θ]]
Every frame change in the package is an application of R or of its transpose.
*/
type Rotation struct {
	Degrees float64
	M       *mat.Dense
}

func NewRotation(degrees float64) (r Rotation) {
	var (
		th   = radians(degrees)
		c, s = math.Cos(th), math.Sin(th)
	)
	if degrees == 0 {
		c, s = 1, 0
	}
	r = Rotation{
		Degrees: degrees,
		M: mat.NewDense(2, 2, []float64{
			c, -s,
			s, c,
		}),
	}
	return
}

func (r Rotation) Apply(a, b float64) (ra, rb float64) {
	var v mat.VecDense
	v.MulVec(r.M, mat.NewVecDense(2, []float64{a, b}))
	return v.AtVec(0), v.AtVec(1)
}

// ApplyAll rotates the vectors (a[i], b[i])
func (r Rotation) ApplyAll(a, b []float64) (ra, rb []float64) {
	var (
		n   = len(a)
		res mat.Dense
	)
	if len(b) != n {
		panic(fmt.Errorf("vector components differ in length: %d, %d", len(a), len(b)))
	}
	ra, rb = make([]float64, n), make([]float64, n)
	if n == 0 {
		return
	}
	X := mat.NewDense(2, n, nil)
	X.SetRow(0, a)
	X.SetRow(1, b)
	res.Mul(r.M, X)
	mat.Row(ra, 0, &res)
	mat.Row(rb, 1, &res)
	return
}

// RotateAbout rotates the points (x[i], y[i]) about (x0, y0)
func (r Rotation) RotateAbout(x, y []float64, x0, y0 float64) (xr, yr []float64) {
	var (
		dx = make([]float64, len(x))
		dy = make([]float64, len(y))
	)
	for i := range x {
		dx[i], dy[i] = x[i]-x0, y[i]-y0
	}
	xr, yr = r.ApplyAll(dx, dy)
	for i := range xr {
		xr[i] += x0
		yr[i] += y0
	}
	return
}
