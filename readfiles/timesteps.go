package readfiles

import (
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
)

var digitRun = regexp.MustCompile(`\d+`)

// StepNumber returns the last run of digits in the base name of a file
func StepNumber(filename string) (step int, ok bool) {
	var (
		runs = digitRun.FindAllString(filepath.Base(filename), -1)
		err  error
	)
	if len(runs) == 0 {
		return
	}
	if step, err = strconv.Atoi(runs[len(runs)-1]); err != nil {
		return
	}
	return step, true
}

// GlobSorted returns the files of dir matching pattern in lexical order
func GlobSorted(dir, pattern string) (names []string, err error) {
	if names, err = filepath.Glob(filepath.Join(dir, pattern)); err != nil {
		err = fmt.Errorf("bad file pattern %q: %w", pattern, err)
		return
	}
	sort.Strings(names)
	return
}

// StepFiles lists the files prefix*.<step>suffix of dir in lexical order
func StepFiles(dir, prefix, suffix string, step int) (names []string, err error) {
	return GlobSorted(dir, prefix+"*."+strconv.Itoa(step)+suffix)
}
