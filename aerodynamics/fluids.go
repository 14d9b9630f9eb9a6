package aerodynamics

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/notargets/gowing/InputParameters"
)

type FlowFunction uint8

func (pm FlowFunction) String() string {
	strings := []string{
		"Lift Coefficient",
		"Drag Coefficient",
		"Pressure Coefficient",
		"Chordwise Coordinate",
	}
	return strings[int(pm)]
}

// Label is the axis label of the function on a plot
func (pm FlowFunction) Label() string {
	labels := []string{
		"cl",
		"cd",
		"-cp",
		"x/c",
	}
	return labels[int(pm)]
}

const (
	LiftCoefficient FlowFunction = iota
	DragCoefficient
	PressureCoefficient
	ChordwiseCoordinate
)

/*
FreeStream is the normalization state of a case: the dynamic pressure of the
freestream and the reference area forces are divided by.
*/
type FreeStream struct {
	Rho, Speed float64
	QQinf      float64 // Dynamic pressure, 0.5*rho*|U|^2
	Area       float64
}

func NewFreeStream(rho float64, U []float64, area float64) (fs *FreeStream) {
	fs = &FreeStream{
		Rho:   rho,
		Speed: floats.Norm(U, 2),
		Area:  area,
	}
	fs.QQinf = DynamicPressure(rho, U)
	return
}

func NewFreeStreamFromInput(in *InputParameters.FreeStream, area float64) *FreeStream {
	return NewFreeStream(in.Density, in.Velocity, area)
}

func DynamicPressure(rho float64, U []float64) float64 {
	return 0.5 * rho * floats.Dot(U, U)
}

// PressureCoefficient is cp = -p/q, the negated normalized static pressure
func (fs *FreeStream) PressureCoefficient(p []float64) (cp []float64) {
	cp = make([]float64, len(p))
	for i, val := range p {
		cp[i] = -val / fs.QQinf
	}
	return
}

/*
ForceCoefficients rotates the body axis force components (fx, fy) by delta
degrees into the wind axes and normalizes them:
	lift = ( Fy cosΔ + Fx sinΔ)/(q A)
	drag = (-Fy sinΔ + Fx cosΔ)/(q A)
*/
func (fs *FreeStream) ForceCoefficients(fx, fy []float64, delta float64) (cl, cd []float64) {
	var (
		qa = fs.QQinf * fs.Area
	)
	if len(fx) != len(fy) {
		panic(fmt.Errorf("force components differ in length: %d, %d", len(fx), len(fy)))
	}
	cd, cl = NewRotation(delta).ApplyAll(fx, fy)
	floats.Scale(1/qa, cl)
	floats.Scale(1/qa, cd)
	return
}

/*
Chord describes the chord line of a section pitched nose up by AoA degrees
about the rotation center XC, measured in chord lengths from the leading edge.
*/
type Chord struct {
	AoA    float64
	Length float64
	XC     float64
}

/*
Project returns the chordwise coordinate x/c of each point: the position
relative to the rotation center dotted with the chord unit vector
(cos α, -sin α), normalized by the chord length and shifted back by the center.
*/
func (ch Chord) Project(x, y []float64) (xovc []float64) {
	var (
		xs = make([]float64, len(x))
	)
	for i := range x {
		xs[i] = x[i] - ch.XC
	}
	xovc, _ = NewRotation(ch.AoA).ApplyAll(xs, y)
	for i := range xovc {
		xovc[i] = xovc[i]/ch.Length + ch.XC
	}
	return
}

// Delta is the rotation from the body axes of a case at aoa to those of the baseline mesh
func Delta(baseline, aoa float64) float64 {
	return baseline - aoa
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180.
}
