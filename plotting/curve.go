package plotting

import "math"

// Curve is one named series of a page, kept for the interactive chart
type Curve struct {
	Name string
	X, Y []float64
}

/*
Segments returns the curve as consecutive line segments packed x1,y1,x2,y2 in
float32, the layout an OpenGL line chart draws. A curve of n points gives n-1
segments.
*/
func (c Curve) Segments() (xy []float32) {
	if len(c.X) < 2 {
		return
	}
	xy = make([]float32, 0, 4*(len(c.X)-1))
	for i := 1; i < len(c.X); i++ {
		xy = append(xy,
			float32(c.X[i-1]), float32(c.Y[i-1]),
			float32(c.X[i]), float32(c.Y[i]))
	}
	return
}

// Bounds returns the extent of all curves, ok is false when there are no samples
func Bounds(curves []Curve) (xmin, xmax, ymin, ymax float64, ok bool) {
	xmin, ymin = math.Inf(1), math.Inf(1)
	xmax, ymax = math.Inf(-1), math.Inf(-1)
	for _, c := range curves {
		for i := range c.X {
			xmin, xmax = math.Min(xmin, c.X[i]), math.Max(xmax, c.X[i])
			ymin, ymax = math.Min(ymin, c.Y[i]), math.Max(ymax, c.Y[i])
			ok = true
		}
	}
	if ok && xmin == xmax {
		xmin, xmax = xmin-1, xmax+1
	}
	if ok && ymin == ymax {
		ymin, ymax = ymin-1, ymax+1
	}
	return
}
