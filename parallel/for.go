// SPDX-License-Identifier: MIT

package parallel

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// For runs body over [0,n) split into Chunks(n, workers, grain) and waits for all chunks.
// MAIN DESCRIPTION:
//   - Fork: one errgroup task per chunk.
//   - Join: returns after every started task has returned (barrier).
//
// Behavior highlights:
//   - A single chunk runs inline on the caller's goroutine.
//   - body must only write state owned by its [lo,hi) slice of the index space.
//   - Cancellation is observed before each chunk starts; a running chunk is not interrupted.
//
// Errors:
//   - ctx.Err() when the context is done before or during scheduling.
//
// Complexity:
//   - O(n) body work + O(chunks) goroutines.
func For(ctx context.Context, n, workers, grain int, body func(lo, hi int)) error {
	return runChunks(ctx, Chunks(n, workers, grain), func(_ int, r Range) {
		body(r.Lo, r.Hi)
	})
}

// runChunks executes fn once per chunk, passing the chunk's position so callers
// can address per-chunk state without synchronization.
func runChunks(ctx context.Context, chunks []Range, fn func(idx int, r Range)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	switch len(chunks) {
	case 0:
		return nil
	case 1:
		fn(0, chunks[0])
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(len(chunks))
	for i, r := range chunks {
		i, r := i, r // per-iteration copy (go 1.21 loop-variable semantics)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fn(i, r)
			return nil
		})
	}

	return g.Wait()
}
