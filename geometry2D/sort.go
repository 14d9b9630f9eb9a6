package geometry2D

import (
	"fmt"
	"math"
	"sort"
)

/*
SortByAngle orders an unordered point cloud around its centroid so that a line
through the points traces a closed contour. The points and the values attached
to them are sorted by atan2(y-ȳ, x-x̄) ascending, ties keep their input order,
and the first point is repeated at the end to close the loop.
*/
func SortByAngle(x, y, v []float64) (xs, ys, vs []float64) {
	var (
		n      = len(x)
		x0, y0 float64
	)
	if len(y) != n || len(v) != n {
		panic(fmt.Errorf("array lengths differ: %d, %d, %d", len(x), len(y), len(v)))
	}
	if n == 0 {
		return
	}
	for i := 0; i < n; i++ {
		x0 += x[i]
		y0 += y[i]
	}
	x0, y0 = x0/float64(n), y0/float64(n)
	angle := make([]float64, n)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
		angle[i] = math.Atan2(y[i]-y0, x[i]-x0)
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return angle[idx[a]] < angle[idx[b]]
	})
	idx = append(idx, idx[0])
	xs, ys, vs = make([]float64, n+1), make([]float64, n+1), make([]float64, n+1)
	for i, ind := range idx {
		xs[i], ys[i], vs[i] = x[ind], y[ind], v[ind]
	}
	return
}
