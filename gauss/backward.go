// SPDX-License-Identifier: MIT

package gauss

import (
	"context"
	"fmt"

	"github.com/katalvlaran/pargauss/parallel"
)

// backward solves the upper-triangular system left by forward.
// MAIN DESCRIPTION:
//   - x[n-1] = b[n-1] / U[n-1][n-1].
//   - For k = n-2..0: x[k] = (b[k] - Σ_{j>k} U[k][j]·x[j]) / U[k][k].
//   - The outer loop is sequential: x[k] depends on every x[j], j > k.
//   - In parallel mode the Σ is a parallel.SumReduce; serial mode subtracts term
//     by term in ascending j.
//
// Complexity:
//   - Time O(n²/2), Space O(n) for x.
func backward(ctx context.Context, views [][]float64, o Options) ([]float64, error) {
	n := len(views)
	x := make([]float64, n)
	last := views[n-1]
	x[n-1] = last[n] / last[n-1]

	var (
		k, j int
		acc  float64
		sum  float64
		err  error
	)
	for k = n - 2; k >= 0; k-- {
		if err = ctx.Err(); err != nil {
			return nil, fmt.Errorf("%s: step %d: %w", opBackward, k, err)
		}
		row := views[k]
		acc = row[n]

		if o.mode == ModeSerial {
			for j = k + 1; j < n; j++ {
				acc -= row[j] * x[j]
			}
		} else {
			off := k + 1
			sum, err = parallel.SumReduce(ctx, n-off, o.workers, o.reduceGrain, func(i int) float64 {
				return row[off+i] * x[off+i]
			})
			if err != nil {
				return nil, fmt.Errorf("%s: step %d: %w", opBackward, k, err)
			}
			acc -= sum
		}

		x[k] = acc / row[k]
	}

	return x, nil
}
