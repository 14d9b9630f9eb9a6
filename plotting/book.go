package plotting

import (
	"fmt"
	"image/color"
	"math"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgpdf"
)

var (
	PageWidth  = 6 * vg.Inch
	PageHeight = 4.5 * vg.Inch
)

// XY adapts a pair of slices to plotter.XYer, samples with a NaN are dropped
type XY struct {
	X, Y []float64
}

func NewXY(x, y []float64) (xy XY) {
	if len(x) != len(y) {
		panic(fmt.Errorf("series lengths differ: %d, %d", len(x), len(y)))
	}
	for i := range x {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) || math.IsInf(x[i], 0) || math.IsInf(y[i], 0) {
			continue
		}
		xy.X = append(xy.X, x[i])
		xy.Y = append(xy.Y, y[i])
	}
	return
}

func (xy XY) Len() int { return len(xy.X) }

func (xy XY) XY(i int) (float64, float64) { return xy.X[i], xy.Y[i] }

/*
Page is one figure of a Book. Curves added to it are remembered so the page can
also be shown in an interactive chart.
*/
type Page struct {
	*plot.Plot
	Curves []Curve
}

func NewPage(title, xlabel, ylabel string) (pg *Page) {
	pg = &Page{Plot: plot.New()}
	pg.Title.Text = title
	pg.X.Label.Text = xlabel
	pg.Y.Label.Text = ylabel
	pg.Legend.Top = true
	return
}

// SetLimits fixes an axis range, NaN leaves that end automatic
func (pg *Page) SetLimits(xmin, xmax, ymin, ymax float64) {
	set := func(ax *plot.Axis, min, max float64) {
		if !math.IsNaN(min) {
			ax.Min = min
		}
		if !math.IsNaN(max) {
			ax.Max = max
		}
	}
	set(&pg.X, xmin, xmax)
	set(&pg.Y, ymin, ymax)
}

// Line adds a solid or dashed curve in the color and dash pattern of series i
func (pg *Page) Line(name string, x, y []float64, i int) (err error) {
	return pg.styledLine(name, x, y, Color(i), Dashes(i), vg.Points(2))
}

// Reference adds a thin curve in the color reserved for a reference model
func (pg *Page) Reference(name string, x, y []float64) (err error) {
	return pg.styledLine(name, x, y, Color(SecondLast), Dashes(Last), vg.Points(1))
}

func (pg *Page) styledLine(name string, x, y []float64, c color.Color, dashes []vg.Length, width vg.Length) (err error) {
	var (
		xy = NewXY(x, y)
		l  *plotter.Line
	)
	if xy.Len() == 0 {
		return
	}
	if l, err = plotter.NewLine(xy); err != nil {
		return fmt.Errorf("line %q: %w", name, err)
	}
	l.LineStyle.Color = c
	l.LineStyle.Width = width
	l.LineStyle.Dashes = dashes
	pg.Add(l)
	if name != "" {
		pg.Legend.Add(name, l)
	}
	pg.Curves = append(pg.Curves, Curve{Name: name, X: xy.X, Y: xy.Y})
	return
}

/*
Points adds markers in the measurement color, joined by a thin line when
connect is set.
*/
func (pg *Page) Points(name string, x, y []float64, marker int, connect bool) (err error) {
	var (
		xy = NewXY(x, y)
		s  *plotter.Scatter
		c  = Color(Last)
	)
	if xy.Len() == 0 {
		return
	}
	if s, err = plotter.NewScatter(xy); err != nil {
		return fmt.Errorf("points %q: %w", name, err)
	}
	s.GlyphStyle.Shape = Marker(marker)
	s.GlyphStyle.Color = c
	s.GlyphStyle.Radius = vg.Points(3)
	pg.Add(s)
	thumbs := []plot.Thumbnailer{s}
	if connect {
		var l *plotter.Line
		if l, err = plotter.NewLine(xy); err != nil {
			return fmt.Errorf("points %q: %w", name, err)
		}
		l.LineStyle.Color = c
		l.LineStyle.Width = vg.Points(1)
		pg.Add(l)
		thumbs = append(thumbs, l)
	}
	if name != "" {
		pg.Legend.Add(name, thumbs...)
	}
	pg.Curves = append(pg.Curves, Curve{Name: name, X: xy.X, Y: xy.Y})
	return
}

// HLine draws a horizontal line at y across [xmin, xmax]
func (pg *Page) HLine(name string, xmin, xmax, y float64) (err error) {
	return pg.styledLine(name, []float64{xmin, xmax}, []float64{y, y}, Color(Last), nil, vg.Points(1))
}

// HeatMap fills the page with a color map of grid, NaN cells are left blank
func (pg *Page) HeatMap(grid *Grid, levels int) {
	hm := plotter.NewHeatMap(grid, palette.Heat(levels, 1))
	hm.NaN = color.Transparent
	pg.Add(hm)
}

/*
Book collects pages and writes them as one multi page PDF, one figure per
page in the order they were added.
*/
type Book struct {
	Pages []*Page
}

func NewBook() *Book {
	return &Book{}
}

func (bk *Book) Add(pg *Page) *Page {
	bk.Pages = append(bk.Pages, pg)
	return pg
}

func (bk *Book) Save(filename string) (err error) {
	var (
		file *os.File
	)
	if len(bk.Pages) == 0 {
		return fmt.Errorf("%s: no pages to write", filename)
	}
	c := vgpdf.New(PageWidth, PageHeight)
	for i, pg := range bk.Pages {
		if i != 0 {
			c.NextPage()
		}
		pg.Draw(draw.New(c))
	}
	if file, err = os.Create(filename); err != nil {
		return
	}
	if _, err = c.WriteTo(file); err != nil {
		file.Close()
		return fmt.Errorf("%s: %w", filename, err)
	}
	return file.Close()
}
