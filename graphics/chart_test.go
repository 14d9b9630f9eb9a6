package graphics

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notargets/gowing/plotting"
)

func TestLines(t *testing.T) {
	{ // Each curve is drawn in its series color
		curves := []plotting.Curve{
			{Name: "a", X: []float64{0, 1, 2}, Y: []float64{0, 1, 0}},
			{Name: "b", X: []float64{0, 1}, Y: []float64{5, 6}},
			{Name: "single", X: []float64{3}, Y: []float64{3}},
		}
		lines := Lines(curves)
		assert.Equal(t, 2, len(lines))
		assert.Equal(t, []float32{0, 0, 1, 1, 1, 1, 2, 0}, lines[RGBA(plotting.Color(0))])
		assert.Equal(t, []float32{0, 5, 1, 6}, lines[RGBA(plotting.Color(1))])
	}
	{ // Colors convert to opaque RGBA
		assert.Equal(t, color.RGBA{R: 0xEE, G: 0x2E, B: 0x2F, A: 0xff}, RGBA(plotting.CMap[0]))
	}
	{ // Nothing to draw
		assert.Equal(t, 0, len(Lines(nil)))
	}
}
