package geometry2D

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortByAngle(t *testing.T) {
	{ // Square given out of order
		x := []float64{1, -1, 1, -1}
		y := []float64{1, -1, -1, 1}
		v := []float64{0, 1, 2, 3}
		xs, ys, vs := SortByAngle(x, y, v)
		require.Equal(t, 5, len(xs))
		assert.Equal(t, []float64{-1, 1, 1, -1, -1}, xs)
		assert.Equal(t, []float64{-1, -1, 1, 1, -1}, ys)
		assert.Equal(t, []float64{1, 2, 0, 3, 1}, vs)
	}
	{ // Angles are non decreasing and the loop is closed
		n := 17
		x, y, v := make([]float64, n), make([]float64, n), make([]float64, n)
		for i := 0; i < n; i++ {
			th := float64((i*7)%n) * 2 * math.Pi / float64(n)
			x[i], y[i], v[i] = 2+math.Cos(th), -1+0.5*math.Sin(th), float64(i)
		}
		xs, ys, vs := SortByAngle(x, y, v)
		require.Equal(t, n+1, len(xs))
		assert.Equal(t, xs[0], xs[n])
		assert.Equal(t, ys[0], ys[n])
		assert.Equal(t, vs[0], vs[n])
		var x0, y0 float64
		for i := 0; i < n; i++ {
			x0 += x[i] / float64(n)
			y0 += y[i] / float64(n)
		}
		for i := 1; i < n; i++ {
			assert.LessOrEqual(t, math.Atan2(ys[i-1]-y0, xs[i-1]-x0), math.Atan2(ys[i]-y0, xs[i]-x0))
		}
	}
	{ // Coincident points keep their input order
		x := []float64{1, 1, -1}
		y := []float64{0, 0, 0}
		v := []float64{10, 20, 30}
		_, _, vs := SortByAngle(x, y, v)
		assert.Equal(t, []float64{10, 20, 30, 10}, vs)
	}
	{ // Empty input
		xs, ys, vs := SortByAngle(nil, nil, nil)
		assert.Equal(t, 0, len(xs)+len(ys)+len(vs))
	}
	assert.Panics(t, func() { SortByAngle([]float64{1}, nil, []float64{1}) })
}

func TestInterpolate(t *testing.T) {
	var (
		x, y, v []float64
		f       = func(x, y float64) float64 { return 3*x - 2*y + 0.5 }
	)
	for i := 0; i <= 10; i++ {
		for j := 0; j <= 6; j++ {
			xx := float64(i)/10 + 0.01*float64(j%2)
			yy := float64(j) / 6
			x, y, v = append(x, xx), append(y, yy), append(v, f(xx, yy))
		}
	}
	tm, err := NewTriMesh(x, y)
	require.NoError(t, err)
	{ // Linear fields are reproduced inside the hull
		xi := []float64{0.5, 0.33, 0.77, 0.5}
		yi := []float64{0.5, 0.12, 0.9, 0}
		vi := tm.Interpolate(v, xi, yi)
		for k := range xi {
			assert.InDelta(t, f(xi[k], yi[k]), vi[k], 1.e-10)
		}
	}
	{ // Nodes are returned exactly
		vi := tm.Interpolate(v, x[:5], y[:5])
		assert.InDeltaSlice(t, v[:5], vi, 1.e-12)
	}
	{ // Outside the hull is NaN
		vi := tm.Interpolate(v, []float64{-1, 0.5, 2}, []float64{0.5, 1.5, 2})
		for _, val := range vi {
			assert.True(t, math.IsNaN(val))
		}
	}
	{ // Too few or collinear points
		_, err = NewTriMesh([]float64{0, 1}, []float64{0, 1})
		assert.True(t, errors.Is(err, ErrDegenerate))
		_, err = NewTriMesh([]float64{0, 1, 2}, []float64{0, 1, 2})
		assert.Error(t, err)
	}
}
