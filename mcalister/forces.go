package mcalister

import (
	"fmt"
	"path/filepath"

	"gonum.org/v1/gonum/floats"

	"github.com/notargets/gowing/aerodynamics"
	"github.com/notargets/gowing/plotting"
	"github.com/notargets/gowing/readfiles"
	"github.com/notargets/gowing/types"
	"github.com/notargets/gowing/utils"
)

const ForcesFile = "forces.dat"

type ForceSummary struct {
	FinalCl, FinalCd float64
	MeanCl, MeanCd   float64
}

/*
Forces turns the integrated force history of the case into lift and drag
coefficient histories. The total force is the sum of the pressure and viscous
parts, rotated from the mesh axes into the wind axes of the case.
*/
func Forces(c *Case, st *Settings) (bk *plotting.Book, coef *types.Frame, sum ForceSummary, err error) {
	var (
		df    *types.Frame
		fname = filepath.Join(c.Folder, ForcesFile)
		ref   = st.Reference
	)
	if df, err = readfiles.ReadWhitespace(fname); err != nil {
		return
	}
	for _, name := range []string{"Time", "Fpx", "Fpy", "Fvx", "Fvy"} {
		if df.Index(name) < 0 {
			err = fmt.Errorf("%s: %w: missing %q", fname, types.ErrUnknownColumn, name)
			return
		}
	}
	if df.Len() == 0 {
		err = fmt.Errorf("%w: %s has no rows", readfiles.ErrEmptyFile, fname)
		return
	}
	var (
		t  = df.MustCol("Time")
		n  = float64(len(t))
		fx = make([]float64, len(t))
		fy = make([]float64, len(t))
	)
	floats.AddTo(fx, df.MustCol("Fpx"), df.MustCol("Fvx"))
	floats.AddTo(fy, df.MustCol("Fpy"), df.MustCol("Fvy"))
	cl, cd := c.FreeStream.ForceCoefficients(fx, fy, aerodynamics.Delta(ref.BaselineAoA, c.AoA))
	if utils.IsNan([][]float64{cl, cd}) {
		c.Log.WithField("file", fname).Warn("force history has NaN samples")
	}

	coef = types.NewFrame()
	coef.SetCol("Time", t)
	coef.SetCol("cl", cl)
	coef.SetCol("cd", cd)
	sum = ForceSummary{
		FinalCl: cl[len(cl)-1],
		FinalCd: cd[len(cd)-1],
		MeanCl:  floats.Sum(cl) / n,
		MeanCd:  floats.Sum(cd) / n,
	}
	c.Log.WithFields(map[string]interface{}{
		"cl":      sum.FinalCl,
		"cd":      sum.FinalCd,
		"mean_cl": sum.MeanCl,
		"mean_cd": sum.MeanCd,
	}).Info("force coefficients")

	tmin, tmax := floats.Min(t), floats.Max(t)
	bk = plotting.NewBook()
	for _, page := range []struct {
		fn         aerodynamics.FlowFunction
		vals       []float64
		exp        float64
		ymin, ymax float64
	}{
		{aerodynamics.LiftCoefficient, cl, ref.ClExp, 0.5, 1.5},
		{aerodynamics.DragCoefficient, cd, ref.CdExp, 0.02, 0.1},
	} {
		pg := bk.Add(plotting.NewPage("", "t", page.fn.Label()))
		if err = pg.Line(c.Label, t, page.vals, 0); err != nil {
			return
		}
		if err = pg.HLine("Exp.", tmin, tmax, page.exp); err != nil {
			return
		}
		pg.Y.Min, pg.Y.Max = page.ymin, page.ymax
	}
	return
}
