package plotting

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyle(t *testing.T) {
	r, g, b, _ := Color(0).RGBA()
	assert.Equal(t, []uint32{0xEE, 0x2E, 0x2F}, []uint32{r >> 8, g >> 8, b >> 8})
	r, g, b, _ = Color(Last).RGBA()
	assert.Equal(t, []uint32{0x01, 0x02, 0x02}, []uint32{r >> 8, g >> 8, b >> 8})
	assert.Equal(t, Color(1), Color(9))
	assert.Nil(t, Dashes(0))
	assert.Equal(t, 4, len(Dashes(2)))
	assert.Equal(t, Marker(0), Marker(5))
	assert.Equal(t, 8, len(CMapMed))
}

func TestXY(t *testing.T) {
	xy := NewXY([]float64{0, 1, math.NaN(), 3}, []float64{1, math.Inf(1), 2, 4})
	require.Equal(t, 2, xy.Len())
	x, y := xy.XY(1)
	assert.Equal(t, 3., x)
	assert.Equal(t, 4., y)
	assert.Panics(t, func() { NewXY([]float64{1}, nil) })
}

func TestCurve(t *testing.T) {
	{ // Consecutive points become segments
		c := Curve{Name: "c", X: []float64{0, 1, 3}, Y: []float64{2, 4, 5}}
		assert.Equal(t, []float32{0, 2, 1, 4, 1, 4, 3, 5}, c.Segments())
		assert.Nil(t, Curve{X: []float64{1}, Y: []float64{1}}.Segments())
	}
	{ // Extent of several curves
		xmin, xmax, ymin, ymax, ok := Bounds([]Curve{
			{X: []float64{0, 1}, Y: []float64{2, 4}},
			{X: []float64{-1}, Y: []float64{3}},
		})
		require.True(t, ok)
		assert.Equal(t, []float64{-1, 1, 2, 4}, []float64{xmin, xmax, ymin, ymax})
	}
	{ // A flat curve gets a non-empty range
		_, _, ymin, ymax, ok := Bounds([]Curve{{X: []float64{0, 1}, Y: []float64{2, 2}}})
		require.True(t, ok)
		assert.Equal(t, []float64{1, 3}, []float64{ymin, ymax})
	}
	{ // No samples
		_, _, _, _, ok := Bounds([]Curve{{Name: "empty"}})
		assert.False(t, ok)
	}
}

func TestGrid(t *testing.T) {
	g := NewGrid([]float64{0, 1, 2}, []float64{0, 1},
		[][]float64{{1, math.NaN(), 3}, {-2, 5, 0}})
	c, r := g.Dims()
	assert.Equal(t, 3, c)
	assert.Equal(t, 2, r)
	assert.Equal(t, 5., g.Z(1, 1))
	assert.Equal(t, 2., g.X(2))
	assert.Equal(t, -2., g.Min())
	assert.Equal(t, 5., g.Max())
	assert.Panics(t, func() { NewGrid([]float64{0}, []float64{0, 1}, [][]float64{{1}}) })
}

func TestBook(t *testing.T) {
	var (
		fname = filepath.Join(t.TempDir(), "book.pdf")
		bk    = NewBook()
	)
	assert.Error(t, bk.Save(fname))
	{
		pg := bk.Add(NewPage("z/s=0.50000", "x/c", "-cp"))
		require.NoError(t, pg.Line("sim", []float64{0, 0.5, 1}, []float64{1, 0.2, 0}, 0))
		require.NoError(t, pg.Points("Exp.", []float64{0.1, 0.6}, []float64{0.9, 0.1}, 0, false))
		require.NoError(t, pg.Reference("model", []float64{0, 1}, []float64{1.1, 0.1}))
		pg.SetLimits(0, 1, -1.5, 5.5)
		assert.Equal(t, 3, len(pg.Curves))
		assert.Equal(t, 5.5, pg.Y.Max)
	}
	{
		pg := bk.Add(NewPage("x=2.00", "z/c", "y/c"))
		pg.HeatMap(NewGrid([]float64{0, 1}, []float64{0, 1}, [][]float64{{0, 1}, {1, math.NaN()}}), 15)
		require.NoError(t, pg.Points("", []float64{0.5}, []float64{0.5}, 2, false))
		require.NoError(t, pg.HLine("", 0, 1, 0.5))
		require.NoError(t, pg.Line("empty", []float64{math.NaN()}, []float64{1}, 1))
		assert.Equal(t, 2, len(pg.Curves))
	}
	require.NoError(t, bk.Save(fname))
	info, err := os.Stat(fname)
	require.NoError(t, err)
	assert.True(t, info.Size() > 0)
}
