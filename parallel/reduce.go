// SPDX-License-Identifier: MIT

package parallel

import (
	"context"

	"golang.org/x/sys/cpu"
)

// partial is one chunk's accumulator, padded on both sides so neighbouring
// partials never share a cache line.
type partial struct {
	_   cpu.CacheLinePad
	sum float64
	_   cpu.CacheLinePad
}

// SumReduce returns Σ term(i) for i in [0,n), computed chunk-parallel.
// MAIN DESCRIPTION:
//   - Each chunk sums its own terms serially into a private padded partial.
//   - After the join, partials are added in chunk order on the caller's goroutine.
//
// Behavior highlights:
//   - n<=0 returns 0.
//   - Result is reproducible for fixed (n, workers, grain); a different chunking
//     may change the last bits because float addition is not associative.
//
// Errors:
//   - ctx.Err() when the context is done.
//
// Complexity:
//   - O(n) term evaluations + O(chunks) merge.
func SumReduce(ctx context.Context, n, workers, grain int, term func(i int) float64) (float64, error) {
	chunks := Chunks(n, workers, grain)
	parts := make([]partial, len(chunks))

	err := runChunks(ctx, chunks, func(idx int, r Range) {
		var (
			i   int
			acc float64
		)
		for i = r.Lo; i < r.Hi; i++ {
			acc += term(i)
		}
		parts[idx].sum = acc
	})
	if err != nil {
		return 0, err
	}

	var total float64
	for i := range parts {
		total += parts[i].sum
	}

	return total, nil
}
