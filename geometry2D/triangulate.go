package geometry2D

import (
	"errors"
	"fmt"
	"math"

	"github.com/pradeep-pyro/triangle"
)

var ErrDegenerate = errors.New("degenerate point set")

type Point struct {
	X [2]float64
}

type BoundingBox struct {
	Min, Max Point
}

func NewBoundingBox(pts []Point) (bb BoundingBox) {
	bb.Min = Point{X: [2]float64{math.Inf(1), math.Inf(1)}}
	bb.Max = Point{X: [2]float64{math.Inf(-1), math.Inf(-1)}}
	for _, p := range pts {
		bb.Add(p)
	}
	return
}

func (bb *BoundingBox) Add(p Point) {
	for d := 0; d < 2; d++ {
		bb.Min.X[d] = math.Min(bb.Min.X[d], p.X[d])
		bb.Max.X[d] = math.Max(bb.Max.X[d], p.X[d])
	}
}

func (bb BoundingBox) Contains(p Point) bool {
	return p.X[0] >= bb.Min.X[0] && p.X[0] <= bb.Max.X[0] &&
		p.X[1] >= bb.Min.X[1] && p.X[1] <= bb.Max.X[1]
}

/*
TriMesh is the Delaunay triangulation of a scattered point cloud, with a
uniform bucket grid over its bounding box used to find the triangle that
contains a query point.
*/
type TriMesh struct {
	Points []Point
	Tris   [][3]int32
	Box    BoundingBox
	nb     [2]int
	dx     [2]float64
	bucket [][]int32 // triangles overlapping each grid cell
}

func NewTriMesh(x, y []float64) (tm *TriMesh, err error) {
	var (
		n   = len(x)
		pts = make([][2]float64, n)
	)
	if len(y) != n {
		return nil, fmt.Errorf("coordinate lengths differ: %d, %d", len(x), len(y))
	}
	if n < 3 {
		return nil, fmt.Errorf("%w: %d points, need at least 3", ErrDegenerate, n)
	}
	tm = &TriMesh{Points: make([]Point, n)}
	for i := range x {
		pts[i] = [2]float64{x[i], y[i]}
		tm.Points[i] = Point{X: pts[i]}
	}
	for _, tri := range triangle.Delaunay(pts) {
		if tm.area(tri) != 0 {
			tm.Tris = append(tm.Tris, tri)
		}
	}
	if len(tm.Tris) == 0 {
		return nil, fmt.Errorf("%w: no triangles from %d points", ErrDegenerate, n)
	}
	tm.Box = NewBoundingBox(tm.Points)
	tm.buildBuckets()
	return
}

// area is twice the signed area of the triangle
func (tm *TriMesh) area(tri [3]int32) float64 {
	a, b, c := tm.Points[tri[0]].X, tm.Points[tri[1]].X, tm.Points[tri[2]].X
	return (b[0]-a[0])*(c[1]-a[1]) - (c[0]-a[0])*(b[1]-a[1])
}

func (tm *TriMesh) buildBuckets() {
	nc := int(math.Ceil(math.Sqrt(float64(len(tm.Tris)) / 2)))
	if nc < 1 {
		nc = 1
	}
	for d := 0; d < 2; d++ {
		tm.nb[d] = nc
		tm.dx[d] = (tm.Box.Max.X[d] - tm.Box.Min.X[d]) / float64(nc)
		if tm.dx[d] == 0 {
			tm.nb[d], tm.dx[d] = 1, 1
		}
	}
	tm.bucket = make([][]int32, tm.nb[0]*tm.nb[1])
	for it, tri := range tm.Tris {
		bb := NewBoundingBox([]Point{tm.Points[tri[0]], tm.Points[tri[1]], tm.Points[tri[2]]})
		i0, j0 := tm.cell(bb.Min)
		i1, j1 := tm.cell(bb.Max)
		for i := i0; i <= i1; i++ {
			for j := j0; j <= j1; j++ {
				k := i*tm.nb[1] + j
				tm.bucket[k] = append(tm.bucket[k], int32(it))
			}
		}
	}
}

func (tm *TriMesh) cell(p Point) (i, j int) {
	clamp := func(v, n int) int {
		switch {
		case v < 0:
			return 0
		case v >= n:
			return n - 1
		}
		return v
	}
	i = clamp(int((p.X[0]-tm.Box.Min.X[0])/tm.dx[0]), tm.nb[0])
	j = clamp(int((p.X[1]-tm.Box.Min.X[1])/tm.dx[1]), tm.nb[1])
	return
}

/*
Locate returns the index of a triangle containing p and the barycentric
weights of p in it. ok is false when p is outside the convex hull.
*/
func (tm *TriMesh) Locate(p Point) (tri int, w [3]float64, ok bool) {
	const tol = -1.e-12
	if !tm.Box.Contains(p) {
		return -1, w, false
	}
	i, j := tm.cell(p)
	for _, it := range tm.bucket[i*tm.nb[1]+j] {
		var (
			t       = tm.Tris[it]
			a, b, c = tm.Points[t[0]].X, tm.Points[t[1]].X, tm.Points[t[2]].X
			det     = tm.area(t)
		)
		w[1] = ((p.X[0]-a[0])*(c[1]-a[1]) - (c[0]-a[0])*(p.X[1]-a[1])) / det
		w[2] = ((b[0]-a[0])*(p.X[1]-a[1]) - (p.X[0]-a[0])*(b[1]-a[1])) / det
		w[0] = 1 - w[1] - w[2]
		if w[0] >= tol && w[1] >= tol && w[2] >= tol {
			return int(it), w, true
		}
	}
	return -1, w, false
}

/*
Interpolate evaluates the piecewise linear interpolant of the nodal values v
at the points (xi[k], yi[k]). Points outside the convex hull of the mesh get NaN.
*/
func (tm *TriMesh) Interpolate(v, xi, yi []float64) (vi []float64) {
	if len(v) != len(tm.Points) {
		panic(fmt.Errorf("value count %d does not match point count %d", len(v), len(tm.Points)))
	}
	vi = make([]float64, len(xi))
	for k := range xi {
		it, w, ok := tm.Locate(Point{X: [2]float64{xi[k], yi[k]}})
		if !ok {
			vi[k] = math.NaN()
			continue
		}
		t := tm.Tris[it]
		vi[k] = w[0]*v[t[0]] + w[1]*v[t[1]] + w[2]*v[t[2]]
	}
	return
}
