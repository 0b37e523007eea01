// Package parallel provides the fork-join primitives used by the solver.
//
// What & Why:
//
//	For splits an index range [0,n) into contiguous chunks and runs one task per
//	chunk on an errgroup bounded by the worker count. It returns only after every
//	task has finished, so a loop of For calls is a loop of barriers.
//
//	SumReduce is For plus a reduction: each chunk accumulates into its own
//	cache-line-padded partial, and the caller's goroutine merges the partials in
//	chunk order after the join. No atomics or locks are involved.
//
// Determinism:
//
//	Chunk boundaries depend only on (n, workers, grain), and partials are merged
//	in fixed order, so the same inputs give bit-identical sums run to run. Sums
//	taken with different worker counts may differ in the last bits.
//
// Complexity:
//
//	Chunks: O(workers). For/SumReduce: O(n) work plus O(workers) scheduling.
package parallel
