package plotting

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	CMap = []color.Color{
		hex("#EE2E2F"), hex("#008C48"), hex("#185AA9"), hex("#F47D23"),
		hex("#662C91"), hex("#A21D21"), hex("#B43894"), hex("#010202"),
	}
	CMapMed = []color.Color{
		hex("#F15A60"), hex("#7AC36A"), hex("#5A9BD4"), hex("#FAA75B"),
		hex("#9E67AB"), hex("#CE7058"), hex("#D77FB4"), hex("#737373"),
	}
	DashSeq = [][]vg.Length{
		nil,
		{10, 5},
		{10, 4, 3, 4},
		{3, 3},
		{10, 4, 3, 4, 3, 4},
		{3, 3},
		{3, 3},
	}
	// square, diamond, circle, pentagon, hexagon as the nearest gonum glyphs
	Markers = []draw.GlyphDrawer{
		draw.BoxGlyph{},
		draw.SquareGlyph{},
		draw.CircleGlyph{},
		draw.PyramidGlyph{},
		draw.RingGlyph{},
	}
)

func hex(code string) color.Color {
	var r, g, b uint8
	if _, err := fmt.Sscanf(code, "#%02x%02x%02x", &r, &g, &b); err != nil {
		panic(fmt.Errorf("bad color %q: %w", code, err))
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// Color, Dashes and Marker cycle through the tables so any series index is valid
func Color(i int) color.Color { return CMap[mod(i, len(CMap))] }

func Dashes(i int) []vg.Length { return DashSeq[mod(i, len(DashSeq))] }

func Marker(i int) draw.GlyphDrawer { return Markers[mod(i, len(Markers))] }

// Last is the series index of the final table entry, used for measurements
const Last = -1

// SecondLast is used for reference model curves
const SecondLast = -2

func mod(i, n int) int {
	return ((i % n) + n) % n
}
