package averaging

import (
	"fmt"
	"math"
	"sort"

	"github.com/notargets/gowing/types"
	"github.com/notargets/gowing/utils"
)

/*
Aggregator forms the time mean field of a merged slice table. Rows are grouped
by their exact coordinate triple after the third coordinate has been folded
onto the symmetry plane: z -> |z|, and |z| < ZeroTol -> 0.
*/
type Aggregator struct {
	Coords  [3]string
	ZeroTol float64
}

func NewAggregator(x, y, z string) Aggregator {
	return Aggregator{
		Coords:  [3]string{x, y, z},
		ZeroTol: utils.ZEROTOL,
	}
}

/*
Aggregate returns one row per distinct coordinate triple, ascending in (x,y,z),
with every other column replaced by its group mean. NaN values do not
contribute to a mean, rows with a NaN coordinate are dropped.

The rows are put in a canonical order before the group sums are formed, so the
result is bit-identical for any ordering of the input rows.
*/
func (ag Aggregator) Aggregate(f *types.Frame) (avg *types.Frame, err error) {
	var (
		keyInd [3]int
		cols   = make([][]float64, len(f.Cols))
		n      = f.Len()
		perm   = make([]int, n)
		groups [][]int
		keys   [][3]float64
	)
	for d, name := range ag.Coords {
		if keyInd[d] = f.Index(name); keyInd[d] < 0 {
			return nil, fmt.Errorf("%w: coordinate %q not in %v", types.ErrUnknownColumn, name, f.Names)
		}
	}
	copy(cols, f.Cols)
	z := make([]float64, n)
	copy(z, f.Cols[keyInd[2]])
	utils.AbsClamp(z, ag.ZeroTol)
	cols[keyInd[2]] = z

	// Coordinates lead the ordering, the remaining columns only break ties
	order := make([]int, 0, len(cols))
	order = append(order, keyInd[:]...)
	for j := range cols {
		if j != keyInd[0] && j != keyInd[1] && j != keyInd[2] {
			order = append(order, j)
		}
	}
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(a, b int) bool {
		for _, j := range order {
			if c := compareFloat(cols[j][perm[a]], cols[j][perm[b]]); c != 0 {
				return c < 0
			}
		}
		return false
	})

	for _, i := range perm {
		key := [3]float64{cols[keyInd[0]][i], cols[keyInd[1]][i], cols[keyInd[2]][i]}
		if math.IsNaN(key[0]) || math.IsNaN(key[1]) || math.IsNaN(key[2]) {
			continue
		}
		last := len(keys) - 1
		if last >= 0 && sameKey(keys[last], key) {
			groups[last] = append(groups[last], i)
			continue
		}
		keys = append(keys, key)
		groups = append(groups, []int{i})
	}

	avg = types.NewFrame(f.Names...)
	ao := utils.NewAveragingOperator(groups, n)
	for j := range cols {
		switch j {
		case keyInd[0], keyInd[1], keyInd[2]:
			d := 0
			for j != keyInd[d] {
				d++
			}
			kc := make([]float64, len(keys))
			for g := range keys {
				kc[g] = keys[g][d] + 0 // folds -0 onto +0
			}
			avg.Cols[j] = kc
		default:
			avg.Cols[j] = ao.Apply(cols[j])
		}
	}
	return
}

func sameKey(a, b [3]float64) bool {
	return a[0] == b[0] && a[1] == b[1] && a[2] == b[2]
}

// compareFloat orders NaN after every number and equal to itself
func compareFloat(a, b float64) int {
	switch aNaN, bNaN := math.IsNaN(a), math.IsNaN(b); {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return 1
	case bNaN:
		return -1
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Average collects the selected time steps and aggregates them
func Average(sel *Selector, ag Aggregator) (avg *types.Frame, steps []int, err error) {
	var (
		merged *types.Frame
	)
	if merged, steps, err = sel.Collect(); err != nil {
		return
	}
	if avg, err = ag.Aggregate(merged); err != nil {
		return
	}
	if sel.Log != nil {
		sel.Log.WithFields(map[string]interface{}{
			"steps":  steps,
			"rows":   merged.Len(),
			"points": avg.Len(),
		}).Info("time averaged slices")
	}
	return
}
