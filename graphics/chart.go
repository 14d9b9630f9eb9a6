// Package graphics shows plotting pages in an OpenGL chart window
package graphics

import (
	"bufio"
	"fmt"
	"image/color"
	"io"

	"github.com/notargets/avs/chart2d"
	utils2 "github.com/notargets/avs/utils"

	"github.com/notargets/gowing/plotting"
)

// RGBA converts a series color for the chart, which keys lines by color.RGBA
func RGBA(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}

/*
Lines groups the segments of every curve by the color of its series index, so
curve i is drawn in plotting.Color(i).
*/
func Lines(curves []plotting.Curve) (lines map[color.RGBA][]float32) {
	lines = make(map[color.RGBA][]float32)
	for i, c := range curves {
		seg := c.Segments()
		if len(seg) == 0 {
			continue
		}
		col := RGBA(plotting.Color(i))
		lines[col] = append(lines[col], seg...)
	}
	return
}

/*
ShowCurves opens a chart window holding every curve and blocks until a line is
read from wait.
*/
func ShowCurves(curves []plotting.Curve, wait io.Reader) (err error) {
	xmin, xmax, ymin, ymax, ok := plotting.Bounds(curves)
	if !ok {
		return
	}
	ch := chart2d.NewChart2D(float32(xmin), float32(xmax), float32(ymin), float32(ymax),
		1024, 1024, utils2.WHITE, utils2.BLACK)
	for col, line := range Lines(curves) {
		ch.AddLine(line, col)
	}
	fmt.Println("press enter to close the chart")
	_, _ = bufio.NewReader(wait).ReadString('\n')
	return
}
