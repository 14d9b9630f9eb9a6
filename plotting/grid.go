package plotting

import (
	"fmt"
	"math"
)

/*
Grid is a regular sampled field for a heat map, Vals[r][c] is the value at
(Xs[c], Ys[r]). It implements plotter.GridXYZ.
*/
type Grid struct {
	Xs, Ys []float64
	Vals   [][]float64
}

func NewGrid(xs, ys []float64, z [][]float64) (g *Grid) {
	if len(z) != len(ys) {
		panic(fmt.Errorf("grid has %d rows, expected %d", len(z), len(ys)))
	}
	for r := range z {
		if len(z[r]) != len(xs) {
			panic(fmt.Errorf("grid row %d has %d values, expected %d", r, len(z[r]), len(xs)))
		}
	}
	return &Grid{Xs: xs, Ys: ys, Vals: z}
}

func (g *Grid) Dims() (c, r int) { return len(g.Xs), len(g.Ys) }

func (g *Grid) Z(c, r int) float64 { return g.Vals[r][c] }

func (g *Grid) X(c int) float64 { return g.Xs[c] }

func (g *Grid) Y(r int) float64 { return g.Ys[r] }

// Min and Max skip NaN cells, the heat map uses them for its color range
func (g *Grid) Min() float64 {
	min, _ := g.bounds()
	return min
}

func (g *Grid) Max() float64 {
	_, max := g.bounds()
	return max
}

func (g *Grid) bounds() (min, max float64) {
	min, max = math.Inf(1), math.Inf(-1)
	for _, row := range g.Vals {
		for _, val := range row {
			if math.IsNaN(val) {
				continue
			}
			min, max = math.Min(min, val), math.Max(max, val)
		}
	}
	if min > max {
		min, max = 0, 1
	}
	if min == max {
		max = min + 1
	}
	return
}
