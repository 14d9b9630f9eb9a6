package types

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

var ErrUnknownColumn = errors.New("unknown column")

/*
Frame is a column oriented numeric table, the in-memory form of one slice CSV or
of several of them merged together. Every column has the same length.
*/
type Frame struct {
	Names []string
	Cols  [][]float64
}

func NewFrame(names ...string) (f *Frame) {
	f = &Frame{
		Names: make([]string, len(names)),
		Cols:  make([][]float64, len(names)),
	}
	copy(f.Names, names)
	return
}

func (f *Frame) Len() int {
	if len(f.Cols) == 0 {
		return 0
	}
	return len(f.Cols[0])
}

func (f *Frame) Index(name string) int {
	for i, n := range f.Names {
		if n == name {
			return i
		}
	}
	return -1
}

func (f *Frame) Col(name string) (col []float64, ok bool) {
	var ind = f.Index(name)
	if ind < 0 {
		return
	}
	return f.Cols[ind], true
}

func (f *Frame) MustCol(name string) (col []float64) {
	var ok bool
	if col, ok = f.Col(name); !ok {
		panic(fmt.Errorf("%w: %q not in %v", ErrUnknownColumn, name, f.Names))
	}
	return
}

// SetCol replaces an existing column or appends a new one at the end
func (f *Frame) SetCol(name string, vals []float64) {
	if len(f.Cols) != 0 && len(vals) != f.Len() {
		panic(fmt.Errorf("column %q has length %d, frame has length %d",
			name, len(vals), f.Len()))
	}
	if ind := f.Index(name); ind >= 0 {
		f.Cols[ind] = vals
		return
	}
	f.Names = append(f.Names, name)
	f.Cols = append(f.Cols, vals)
}

func (f *Frame) AppendRow(row []float64) {
	if len(row) != len(f.Names) {
		panic(fmt.Errorf("row has %d values, frame has %d columns", len(row), len(f.Names)))
	}
	for j, val := range row {
		f.Cols[j] = append(f.Cols[j], val)
	}
}

func (f *Frame) Row(i int) (row []float64) {
	row = make([]float64, len(f.Cols))
	for j := range f.Cols {
		row[j] = f.Cols[j][i]
	}
	return
}

func (f *Frame) Subset(rows []int) (s *Frame) {
	s = NewFrame(f.Names...)
	for j, col := range f.Cols {
		s.Cols[j] = make([]float64, len(rows))
		for i, r := range rows {
			s.Cols[j][i] = col[r]
		}
	}
	return
}

func (f *Frame) Filter(keep func(i int) bool) (s *Frame) {
	var rows []int
	for i := 0; i < f.Len(); i++ {
		if keep(i) {
			rows = append(rows, i)
		}
	}
	return f.Subset(rows)
}

/*
Rename maps every column through nameMap. A column missing from the map is a
configuration error: the transforms downstream rely on the short names.
*/
func (f *Frame) Rename(nameMap map[string]string) (err error) {
	var (
		renamed = make([]string, len(f.Names))
		ok      bool
	)
	for i, name := range f.Names {
		if renamed[i], ok = nameMap[name]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownColumn, name)
		}
	}
	f.Names = renamed
	return
}

// Unique returns the sorted distinct values of a column
func (f *Frame) Unique(name string) (vals []float64) {
	var (
		col  = f.MustCol(name)
		seen = make(map[float64]struct{}, len(col))
	)
	for _, val := range col {
		if _, ok := seen[val]; !ok {
			seen[val] = struct{}{}
			vals = append(vals, val)
		}
	}
	sort.Float64s(vals)
	return
}

/*
Concat stacks frames row-wise. Columns are the union of all inputs in first seen
order, a frame without a given column contributes NaN for it.
*/
func Concat(frames ...*Frame) (f *Frame) {
	f = NewFrame()
	for _, fr := range frames {
		for _, name := range fr.Names {
			if f.Index(name) < 0 {
				f.Names = append(f.Names, name)
				f.Cols = append(f.Cols, nil)
			}
		}
	}
	for _, fr := range frames {
		n := fr.Len()
		for j, name := range f.Names {
			if col, ok := fr.Col(name); ok {
				f.Cols[j] = append(f.Cols[j], col...)
				continue
			}
			for i := 0; i < n; i++ {
				f.Cols[j] = append(f.Cols[j], math.NaN())
			}
		}
	}
	return
}

// SortBy reorders the rows by one column, ties keep their current order
func (f *Frame) SortBy(name string, ascending bool) (s *Frame) {
	var (
		col  = f.MustCol(name)
		rows = make([]int, f.Len())
	)
	for i := range rows {
		rows[i] = i
	}
	sort.SliceStable(rows, func(a, b int) bool {
		if ascending {
			return col[rows[a]] < col[rows[b]]
		}
		return col[rows[a]] > col[rows[b]]
	})
	return f.Subset(rows)
}
