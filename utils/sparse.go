package utils

import (
	"fmt"
	"math"

	"github.com/james-bowman/sparse"
)

/*
AveragingOperator is a [groups x rows] CSR matrix, row g holds a unit weight for
every input row belonging to group g. Applying it to a column gives the group
means. The column indices of a group are stored in the order given, so the
summation order is fixed by the caller.
*/
type AveragingOperator struct {
	M *sparse.CSR
}

func NewAveragingOperator(groups [][]int, nRows int) (ao AveragingOperator) {
	var (
		indptr = make([]int, len(groups)+1)
		ind    []int
		data   []float64
	)
	for g, rows := range groups {
		for _, r := range rows {
			if r < 0 || r >= nRows {
				panic(fmt.Errorf("row index %d out of bounds [0,%d)", r, nRows))
			}
			ind = append(ind, r)
			data = append(data, 1)
		}
		indptr[g+1] = len(ind)
	}
	ao.M = sparse.NewCSR(len(groups), nRows, indptr, ind, data)
	return
}

func (ao AveragingOperator) Dims() (r, c int) { return ao.M.Dims() }

/*
Apply returns the weighted mean of col over each group. NaN entries do not
contribute; a group with no finite entry yields NaN.
*/
func (ao AveragingOperator) Apply(col []float64) (mean []float64) {
	var (
		raw = ao.M.RawMatrix()
	)
	if len(col) != raw.J {
		panic(fmt.Errorf("column length %d does not match operator width %d", len(col), raw.J))
	}
	mean = make([]float64, raw.I)
	for g := 0; g < raw.I; g++ {
		var sum, wsum float64
		for k := raw.Indptr[g]; k < raw.Indptr[g+1]; k++ {
			val := col[raw.Ind[k]]
			if math.IsNaN(val) {
				continue
			}
			sum += raw.Data[k] * val
			wsum += raw.Data[k]
		}
		if wsum == 0 {
			mean[g] = math.NaN()
			continue
		}
		mean[g] = sum / wsum
	}
	return
}
