// SPDX-License-Identifier: MIT

package gauss

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/pargauss/matrix"
	"github.com/katalvlaran/pargauss/parallel"
)

// forward reduces the first n columns of w to upper-triangular form in place.
// MAIN DESCRIPTION:
//   - For k = 0..n-1: optionally pivot, check the pivot, then eliminate column k
//     from rows k+1..n-1. Each of those rows is written by exactly one task.
//   - parallel.For joins before returning, so step k+1 never sees a half-updated step k.
//
// Returns the number of row swaps performed (0 without pivoting).
//
// Complexity:
//   - Time O(n³/3), no allocation beyond the scheduler's.
func forward(ctx context.Context, w *matrix.Dense, views [][]float64, o Options) (int, error) {
	n := len(views)
	var (
		k, swaps int
		swapped  bool
		err      error
	)
	for k = 0; k < n; k++ {
		if err = ctx.Err(); err != nil {
			return swaps, fmt.Errorf("%s: step %d: %w", opForward, k, err)
		}
		if o.pivoting == PivotPartial {
			if swapped, err = partialPivot(w, views, k); err != nil {
				return swaps, fmt.Errorf("%s: step %d: %w", opForward, k, err)
			}
			if swapped {
				swaps++
			}
		}

		pivotRow := views[k]
		// NaN pivots (from Inf-Inf upstream) count as singular.
		if o.singularCheck && !(math.Abs(pivotRow[k]) > o.eps) {
			return swaps, &SingularMatrixError{Step: k, Pivot: pivotRow[k], Epsilon: o.eps}
		}

		below := n - k - 1
		if below == 0 {
			continue
		}
		task := func(lo, hi int) {
			for i := lo; i < hi; i++ {
				eliminateRow(views[k+1+i], pivotRow, k)
			}
		}
		if o.mode == ModeSerial {
			task(0, below)
			continue
		}
		if err = parallel.For(ctx, below, o.workers, o.grain, task); err != nil {
			return swaps, fmt.Errorf("%s: step %d: %w", opForward, k, err)
		}
	}

	return swaps, nil
}

// eliminateRow applies row += factor*pivot over columns k..end,
// with factor = -row[k]/pivot[k]. row[k] becomes zero up to rounding.
func eliminateRow(row, pivot []float64, k int) {
	factor := -row[k] / pivot[k]
	pivot = pivot[k:len(row)]
	row = row[k:]
	for j := range row {
		row[j] += factor * pivot[j]
	}
}

// partialPivot moves the row with the largest |A[i][k]|, i >= k, into position k.
// Ties keep the lowest index, so an already-maximal pivot never moves.
func partialPivot(w *matrix.Dense, views [][]float64, k int) (bool, error) {
	best, bestAbs := k, math.Abs(views[k][k])
	var (
		i int
		a float64
	)
	for i = k + 1; i < len(views); i++ {
		if a = math.Abs(views[i][k]); a > bestAbs {
			best, bestAbs = i, a
		}
	}
	if best == k {
		return false, nil
	}
	// views alias fixed row positions, so swapping the storage is enough.
	if err := w.SwapRows(k, best); err != nil {
		return false, err
	}

	return true, nil
}
