package types

import (
	"fmt"
	"strings"
)

// MergePolicy decides what happens to an input file that is empty or unreadable
type MergePolicy uint8

const (
	SkipSilently MergePolicy = iota
	SkipWithWarning
	Fail
)

func (mp MergePolicy) String() string {
	strings := []string{
		"SkipSilently",
		"SkipWithWarning",
		"Fail",
	}
	return strings[int(mp)]
}

var PolicyNameMap = map[string]MergePolicy{
	"skip":    SkipSilently,
	"silent":  SkipSilently,
	"warn":    SkipWithWarning,
	"warning": SkipWithWarning,
	"fail":    Fail,
	"strict":  Fail,
}

func NewMergePolicy(label string) (mp MergePolicy, err error) {
	var ok bool
	if mp, ok = PolicyNameMap[strings.ToLower(strings.TrimSpace(label))]; !ok {
		err = fmt.Errorf("unknown merge policy %q, use one of skip, warn, fail", label)
	}
	return
}

// ColumnNameMap translates the column headings written by the slice extraction
// into the short names used by every transform
var ColumnNameMap = map[string]string{
	"Points:0":          "x",
	"Points:1":          "y",
	"Points:2":          "z",
	"pressure":          "p",
	"iblank":            "iblank",
	"absIBlank":         "absIBlank",
	"pressure_force_:0": "fpx",
	"pressure_force_:1": "fpy",
	"pressure_force_:2": "fpz",
	"tau_wall":          "tau_wall",
	"velocity_:0":       "ux",
	"velocity_:1":       "uy",
	"velocity_:2":       "uz",
	"time":              "avg_time",
}
