package mcalister

import (
	"fmt"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/notargets/gowing/InputParameters"
	"github.com/notargets/gowing/aerodynamics"
	"github.com/notargets/gowing/readfiles"
	"github.com/notargets/gowing/types"
	"github.com/notargets/gowing/utils"
)

// Settings are the run settings shared by the studies
type Settings struct {
	Reference      InputParameters.Reference
	InputFile      string // solver input inside each case folder
	SliceFile      string // time averaged slice table inside each slice directory
	ExpDir         string
	RefDir         string
	WingSliceDir   string
	VortexSliceDir string
	NInterp        int
	Origin         [2]float64
	Log            logrus.FieldLogger
}

func NewSettings() *Settings {
	return &Settings{
		Reference: InputParameters.Reference{
			Area:           6.6,
			Chord:          1,
			HalfWingLength: 3.3,
			RotationCenter: 0.25,
			BaselineAoA:    12,
			ExpChord:       0.52,
			ClExp:          1.05,
			CdExp:          0.05,
		},
		InputFile:      "mcalister.yaml",
		SliceFile:      "avg_slice.csv",
		ExpDir:         "exp_data",
		RefDir:         "sitaraman_data",
		WingSliceDir:   "wing_slices",
		VortexSliceDir: "vortex_slices",
		NInterp:        200,
		Origin:         [2]float64{1, 0},
		Log:            logrus.StandardLogger(),
	}
}

/*
Case is one simulation folder: its freestream, normalized with the reference
area, and its angle of attack taken from the folder name.
*/
type Case struct {
	Folder     string
	Label      string
	AoA        float64
	Input      *InputParameters.FreeStream
	FreeStream *aerodynamics.FreeStream
	Log        logrus.FieldLogger
}

/*
NewCase reads the solver input of folder. A folder name without a number runs
at the baseline angle, which leaves the forces unrotated.
*/
func NewCase(folder string, st *Settings) (c *Case, err error) {
	var (
		in *InputParameters.FreeStream
	)
	if folder, err = filepath.Abs(folder); err != nil {
		return
	}
	if in, err = InputParameters.ReadFreeStream(filepath.Join(folder, st.InputFile)); err != nil {
		return
	}
	c = &Case{
		Folder:     folder,
		Label:      filepath.Base(folder),
		Input:      in,
		FreeStream: aerodynamics.NewFreeStreamFromInput(in, st.Reference.Area),
		Log:        st.Log,
	}
	if c.Log == nil {
		c.Log = logrus.StandardLogger()
	}
	c.Log = c.Log.WithField("folder", c.Label)
	if c.AoA, err = InputParameters.ParseAngle(folder); err != nil {
		c.Log.WithError(err).Warnf("using the baseline angle of attack %g", st.Reference.BaselineAoA)
		c.AoA, err = st.Reference.BaselineAoA, nil
	}
	return
}

// ReadSlices loads the time averaged slice table of sliceDir with the short column names
func (c *Case) ReadSlices(sliceDir, sliceFile string) (f *types.Frame, err error) {
	var (
		fname = filepath.Join(c.Folder, sliceDir, sliceFile)
	)
	if f, err = readfiles.ReadCSV(fname); err != nil {
		return
	}
	if err = f.Rename(types.ColumnNameMap); err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	for _, name := range []string{"x", "y", "z", "p"} {
		if f.Index(name) < 0 {
			return nil, fmt.Errorf("%s: %w: missing %q", fname, types.ErrUnknownColumn, name)
		}
	}
	return
}

// sliceRows returns the rows whose column value is within SLICETOL of target
func sliceRows(f *types.Frame, name string, target float64) *types.Frame {
	col := f.MustCol(name)
	return f.Filter(func(i int) bool {
		d := col[i] - target
		return d < utils.SLICETOL && -d < utils.SLICETOL
	})
}
