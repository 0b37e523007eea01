// SPDX-License-Identifier: MIT

package parallel

import "runtime"

// Range is a half-open index interval [Lo, Hi).
type Range struct {
	Lo, Hi int
}

// Len returns Hi-Lo.
func (r Range) Len() int { return r.Hi - r.Lo }

// DefaultWorkers returns the worker count used when callers pass workers <= 0.
func DefaultWorkers() int { return runtime.GOMAXPROCS(0) }

// normalize clamps workers and grain to their documented minimums.
func normalize(workers, grain int) (int, int) {
	if workers <= 0 {
		workers = DefaultWorkers()
	}
	if grain < 1 {
		grain = 1
	}

	return workers, grain
}

// Chunks partitions [0,n) into at most workers contiguous ranges.
// MAIN DESCRIPTION:
//   - The chunk count is min(workers, max(1, n/grain)), so every chunk holds at
//     least grain items whenever n >= grain.
//   - Sizes differ by at most one; the first n%chunks ranges get the extra item.
//
// Inputs:
//   - n: number of items (n<=0 yields nil).
//   - workers: upper bound on chunks (<=0 means DefaultWorkers()).
//   - grain: minimum items per chunk (<1 means 1).
//
// Complexity:
//   - Time O(chunks), Space O(chunks).
func Chunks(n, workers, grain int) []Range {
	if n <= 0 {
		return nil
	}
	workers, grain = normalize(workers, grain)

	count := n / grain
	if count < 1 {
		count = 1
	}
	if count > workers {
		count = workers
	}

	base, rem := n/count, n%count
	out := make([]Range, count)
	var i, lo, size int
	for i = 0; i < count; i++ {
		size = base
		if i < rem {
			size++
		}
		out[i] = Range{Lo: lo, Hi: lo + size}
		lo += size
	}

	return out
}
