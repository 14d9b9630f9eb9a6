package aerodynamics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gowing/InputParameters"
)

func TestDynamicPressure(t *testing.T) {
	assert.InDelta(t, 0.5*1.225*46*46, DynamicPressure(1.225, []float64{46}), 1.e-10)
	assert.InDelta(t, 12.5, DynamicPressure(1, []float64{3, 4}), 1.e-12)
	fs := NewFreeStreamFromInput(&InputParameters.FreeStream{Velocity: []float64{0, 3, 4}, Density: 2}, 6.6)
	assert.InDelta(t, 25., fs.QQinf, 1.e-12)
	assert.InDelta(t, 5., fs.Speed, 1.e-12)
	assert.Equal(t, []float64{-0.04, 0.08}, fs.PressureCoefficient([]float64{1, -2}))
}

func TestRotation(t *testing.T) {
	{ // Identity at zero
		r := NewRotation(0)
		a, b := r.Apply(3, -4)
		assert.Equal(t, 3., a)
		assert.Equal(t, -4., b)
	}
	{ // Quarter turn is counter clockwise
		r := NewRotation(90)
		a, b := r.Apply(1, 0)
		assert.InDelta(t, 0., a, 1.e-15)
		assert.InDelta(t, 1., b, 1.e-15)
		ra, rb := NewRotation(-90).Apply(a, b)
		assert.InDelta(t, 1., ra, 1.e-15)
		assert.InDelta(t, 0., rb, 1.e-15)
	}
	{ // Rotation about a center
		r := NewRotation(180)
		xr, yr := r.RotateAbout([]float64{2, 1}, []float64{0, 1}, 1, 0)
		assert.InDelta(t, 0., xr[0], 1.e-15)
		assert.InDelta(t, 0., yr[0], 1.e-15)
		assert.InDelta(t, 1., xr[1], 1.e-15)
		assert.InDelta(t, -1., yr[1], 1.e-15)
	}
	{ // Lengths are preserved
		r := NewRotation(17.3)
		a, b := r.ApplyAll([]float64{1, -2, 0.5}, []float64{3, 0.25, -7})
		for i, n := range []float64{10, 4.0625, 49.25} {
			assert.InDelta(t, n, a[i]*a[i]+b[i]*b[i], 1.e-12)
		}
		ea, eb := r.ApplyAll(nil, nil)
		assert.Equal(t, 0, len(ea)+len(eb))
		assert.Panics(t, func() { r.ApplyAll([]float64{1}, nil) })
	}
}

func TestForceCoefficients(t *testing.T) {
	var (
		fs     = NewFreeStream(1, []float64{2}, 4) // q*A = 8
		fx, fy = []float64{0.8, -1.6}, []float64{8, 4}
	)
	{ // Zero delta is plain normalization
		cl, cd := fs.ForceCoefficients(fx, fy, Delta(12, 12))
		for i := range fx {
			assert.InDelta(t, fy[i]/8, cl[i], 1.e-15)
			assert.InDelta(t, fx[i]/8, cd[i], 1.e-15)
		}
	}
	{ // Rotated form
		delta := Delta(12, 10)
		assert.Equal(t, 2., delta)
		d := delta * math.Pi / 180
		cl, cd := fs.ForceCoefficients(fx, fy, delta)
		for i := range fx {
			assert.InDelta(t, (fy[i]*math.Cos(d)+fx[i]*math.Sin(d))/8, cl[i], 1.e-14)
			assert.InDelta(t, (-fy[i]*math.Sin(d)+fx[i]*math.Cos(d))/8, cd[i], 1.e-14)
		}
	}
	assert.Panics(t, func() { fs.ForceCoefficients(fx, fy[:1], 0) })
}

func TestChordProjection(t *testing.T) {
	{ // Unpitched section leaves x alone
		ch := Chord{AoA: 0, Length: 1, XC: 0.25}
		xovc := ch.Project([]float64{0, 0.25, 1}, []float64{0.1, -0.1, 0})
		assert.Equal(t, []float64{0, 0.25, 1}, xovc)
	}
	{ // Trailing edge of a section pitched nose up
		var (
			aoa = 12.
			a   = aoa * math.Pi / 180
			ch  = Chord{AoA: aoa, Length: 1, XC: 0.25}
			// leading and trailing edges rotated about the quarter chord
			xle, yle = 0.25 - 0.25*math.Cos(a), 0.25*math.Sin(a)
			xte, yte = 0.25 + 0.75*math.Cos(a), -0.75*math.Sin(a)
		)
		xovc := ch.Project([]float64{xle, xte}, []float64{yle, yte})
		require.Equal(t, 2, len(xovc))
		assert.InDelta(t, 0., xovc[0], 1.e-14)
		assert.InDelta(t, 1., xovc[1], 1.e-14)
	}
	assert.Equal(t, "Pressure Coefficient", PressureCoefficient.String())
	assert.Equal(t, "-cp", PressureCoefficient.Label())
	assert.Equal(t, "x/c", ChordwiseCoordinate.Label())
	assert.Equal(t, "cd", DragCoefficient.Label())
}
