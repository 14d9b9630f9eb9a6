package experiment

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/notargets/gowing/readfiles"
	"github.com/notargets/gowing/types"
)

var ErrNoReference = errors.New("no reference data")

/*
Dataset is the directory of one comparison dataset at one angle of attack,
<root>/aoa-<α>. Measurements and reference model results share the layout.
*/
type Dataset struct {
	Dir string
	Log logrus.FieldLogger
}

func NewDataset(root string, aoa float64, log logrus.FieldLogger) *Dataset {
	return &Dataset{
		Dir: filepath.Join(root, "aoa-"+strconv.FormatFloat(aoa, 'f', -1, 64)),
		Log: log,
	}
}

// skip reports a missing overlay and returns the error wrapping ErrNoReference
func (ds *Dataset) skip(what string, err error) error {
	err = fmt.Errorf("%w: %s in %s: %v", ErrNoReference, what, ds.Dir, err)
	if ds.Log != nil {
		ds.Log.WithField("dir", ds.Dir).WithField("file", what).Info("reference data not found, overlay omitted")
	}
	return err
}

func (ds *Dataset) first(pattern string) (fname string, err error) {
	var names []string
	if names, err = readfiles.GlobSorted(ds.Dir, pattern); err != nil {
		return
	}
	if len(names) == 0 {
		err = fs.ErrNotExist
		return
	}
	return names[0], nil
}

// read loads a file of the dataset, only a missing file counts as absent reference data
func (ds *Dataset) read(fname string) (f *types.Frame, err error) {
	if f, err = readfiles.ReadCSV(filepath.Join(ds.Dir, fname)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = ds.skip(fname, err)
		}
		return nil, err
	}
	return
}

// WingCp reads the measured pressure distribution of the span station numbered idx, columns x,cp
func (ds *Dataset) WingCp(idx int) (f *types.Frame, err error) {
	var (
		fname   string
		pattern = fmt.Sprintf("cp_*_%d.txt", idx)
	)
	if fname, err = ds.first(pattern); err != nil {
		return nil, ds.skip(pattern, err)
	}
	return readfiles.ReadCSVNamed(fname, "x", "cp")
}

/*
WingCpModel reads the reference model pressure distribution at the span
fraction zovs as one closed curve: the upper surface with x ascending followed
by the lower surface with x descending.
*/
func (ds *Dataset) WingCpModel(zovs float64) (f *types.Frame, err error) {
	var (
		top, bot *types.Frame
		base     = fmt.Sprintf("cp_%.3f", zovs)
	)
	if top, err = ds.read(base + "_top.csv"); err != nil {
		return
	}
	if bot, err = ds.read(base + "_bot.csv"); err != nil {
		return
	}
	for _, fr := range []*types.Frame{top, bot} {
		for _, name := range []string{"x", "cp"} {
			if fr.Index(name) < 0 {
				return nil, fmt.Errorf("%s: %w: %q", base, types.ErrUnknownColumn, name)
			}
		}
	}
	f = types.Concat(top.SortBy("x", true), bot.SortBy("x", false))
	return
}

/*
VortexProfile reads a measured wake velocity profile, component is ux or uz,
at the streamwise offset xs. The spanwise coordinate is converted from mm on
the model to chords of the simulation.
*/
func (ds *Dataset) VortexProfile(component string, xs, expChord float64) (f *types.Frame, err error) {
	var (
		fname   string
		pattern = fmt.Sprintf("%s_*_%.1f.txt", component, xs)
	)
	if fname, err = ds.first(pattern); err != nil {
		return nil, ds.skip(pattern, err)
	}
	if f, err = readfiles.ReadCSVNamed(fname, "z", component); err != nil {
		return
	}
	f.SetCol("z", Rescale(f.MustCol("z"), MM2M, 0, expChord))
	return
}

// VortexModel reads the reference model vertical velocity profile at x = xt, columns y,uz
func (ds *Dataset) VortexModel(xt float64) (f *types.Frame, err error) {
	var (
		fname = fmt.Sprintf("uz_%.1f.csv", xt)
	)
	if f, err = ds.read(fname); err != nil {
		return
	}
	for _, name := range []string{"y", "uz"} {
		if f.Index(name) < 0 {
			return nil, fmt.Errorf("%s: %w: %q", fname, types.ErrUnknownColumn, name)
		}
	}
	return
}
