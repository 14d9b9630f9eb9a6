package mcalister

import (
	"errors"
	"fmt"

	"github.com/notargets/gowing/aerodynamics"
	"github.com/notargets/gowing/experiment"
	"github.com/notargets/gowing/geometry2D"
	"github.com/notargets/gowing/plotting"
	"github.com/notargets/gowing/types"
	"github.com/notargets/gowing/utils"
)

/*
WingCp plots the chordwise pressure distribution of every span slice of the
case, one page per slice, with the measured distribution and the reference
model result of the same station where they exist.
*/
func WingCp(c *Case, st *Settings) (bk *plotting.Book, err error) {
	var (
		df        *types.Frame
		ref       = st.Reference
		chord     = aerodynamics.Chord{AoA: c.AoA, Length: ref.Chord, XC: ref.RotationCenter}
		expSlices = experiment.WingSlices(ref.HalfWingLength)
		exp       = experiment.NewDataset(st.ExpDir, c.AoA, c.Log)
		model     = experiment.NewDataset(st.RefDir, c.AoA, c.Log)
	)
	if df, err = c.ReadSlices(st.WingSliceDir, st.SliceFile); err != nil {
		return
	}
	df.SetCol("xovc", chord.Project(df.MustCol("x"), df.MustCol("y")))
	df.SetCol("cp", c.FreeStream.PressureCoefficient(df.MustCol("p")))

	bk = plotting.NewBook()
	zcol := df.MustCol("z")
	for _, z := range df.Unique("z") {
		var (
			f    *types.Frame
			zovs = z / ref.HalfWingLength
			sub  = df.Filter(func(i int) bool { return zcol[i] == z })
		)
		pg := bk.Add(plotting.NewPage(fmt.Sprintf("z/s=%.5f", zovs),
			aerodynamics.ChordwiseCoordinate.Label(), aerodynamics.PressureCoefficient.Label()))
		pg.SetLimits(0, ref.Chord, -1.5, 5.5)
		x, _, cp := geometry2D.SortByAngle(sub.MustCol("xovc"), sub.MustCol("y"), sub.MustCol("cp"))
		if err = pg.Line(c.Label, x, cp, 0); err != nil {
			return
		}

		if idx, ok := experiment.FindSlice(expSlices, z, utils.SLICETOL); !ok {
			c.Log.WithField("slice", zovs).Info("no measured station at this slice")
		} else {
			f, err = exp.WingCp(idx)
			switch {
			case absent(err):
			case err != nil:
				return
			default:
				if err = pg.Points("Exp.", f.MustCol("x"), f.MustCol("cp"), 0, false); err != nil {
					return
				}
			}
		}

		f, err = model.WingCpModel(zovs)
		switch {
		case absent(err):
			err = nil
		case err != nil:
			return
		default:
			if err = pg.Reference("Sitaraman et al. (2010)", f.MustCol("x"), f.MustCol("cp")); err != nil {
				return
			}
		}
	}
	if len(bk.Pages) == 0 {
		err = fmt.Errorf("%w: %s has no wing slices", ErrNoSlices, c.Folder)
	}
	return
}

var ErrNoSlices = errors.New("no slice data")

// absent is true for a comparison dataset that does not exist, the overlay is skipped
func absent(err error) bool {
	return errors.Is(err, experiment.ErrNoReference)
}
