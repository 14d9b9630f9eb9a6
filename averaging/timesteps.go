package averaging

import (
	"errors"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/notargets/gowing/readfiles"
	"github.com/notargets/gowing/types"
	"github.com/notargets/gowing/utils"
)

var ErrNoData = errors.New("no data")

// Selector finds the last NAvg time steps written as Dir/Prefix*.<step>Suffix
type Selector struct {
	Dir    string
	Prefix string
	Suffix string
	NAvg   int
	Policy types.MergePolicy
	Log    logrus.FieldLogger
}

func NewSelector(dir string) (sel *Selector) {
	return &Selector{
		Dir:    dir,
		Prefix: "output",
		Suffix: ".csv",
		NAvg:   1,
		Policy: types.SkipWithWarning,
		Log:    logrus.StandardLogger(),
	}
}

/*
SelectTimeSteps returns the distinct step numbers of all matching files in
ascending order, keeping only the n largest. n <= 0 keeps all of them.
*/
func SelectTimeSteps(dir, prefix, suffix string, n int) (steps []int, err error) {
	var (
		fnames []string
		seen   = make(map[int]struct{})
	)
	if fnames, err = readfiles.GlobSorted(dir, prefix+"*"+suffix); err != nil {
		return
	}
	for _, fname := range fnames {
		step, ok := readfiles.StepNumber(fname)
		if !ok {
			continue
		}
		if _, ok = seen[step]; !ok {
			seen[step] = struct{}{}
			steps = append(steps, step)
		}
	}
	sort.Ints(steps)
	if n > 0 && len(steps) > n {
		steps = steps[len(steps)-n:]
	}
	return
}

/*
MergeFiles concatenates the tables of fnames row-wise in the given order. A file
that is empty or cannot be read is handled according to policy. The returned
frame is nil when no file contributed.
*/
func MergeFiles(fnames []string, policy types.MergePolicy, log logrus.FieldLogger) (f *types.Frame, err error) {
	var (
		frames []*types.Frame
	)
	for _, fname := range fnames {
		fr, rerr := readfiles.ReadCSV(fname)
		if rerr != nil {
			switch policy {
			case types.Fail:
				return nil, rerr
			case types.SkipWithWarning:
				if log != nil {
					log.WithField("file", fname).WithError(rerr).Warn("skipping unreadable slice file")
				}
			}
			continue
		}
		frames = append(frames, fr)
	}
	if len(frames) == 0 {
		return
	}
	return types.Concat(frames...), nil
}

func (sel *Selector) MergeTimeStep(step int) (f *types.Frame, err error) {
	var (
		fnames []string
	)
	if fnames, err = readfiles.StepFiles(sel.Dir, sel.Prefix, sel.Suffix, step); err != nil {
		return
	}
	if f, err = MergeFiles(fnames, sel.Policy, sel.Log); err != nil || f == nil {
		return
	}
	f.SetCol("time", utils.ConstArray(f.Len(), float64(step)))
	return
}

/*
Collect merges every selected step into one frame with a trailing time column.
Steps without a usable file are absent from the result.
*/
func (sel *Selector) Collect() (f *types.Frame, steps []int, err error) {
	var (
		frames []*types.Frame
		all    []int
	)
	if all, err = SelectTimeSteps(sel.Dir, sel.Prefix, sel.Suffix, sel.NAvg); err != nil {
		return
	}
	for _, step := range all {
		fr, merr := sel.MergeTimeStep(step)
		if merr != nil {
			err = fmt.Errorf("time step %d: %w", step, merr)
			return
		}
		if fr == nil {
			continue
		}
		frames = append(frames, fr)
		steps = append(steps, step)
	}
	if len(frames) == 0 {
		err = fmt.Errorf("%w: no %s*%s files in %s", ErrNoData, sel.Prefix, sel.Suffix, sel.Dir)
		return
	}
	f = types.Concat(frames...)
	return
}
