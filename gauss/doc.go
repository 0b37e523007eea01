// Package gauss solves dense linear systems A·x = b by Gaussian elimination,
// with a fork-join parallel forward sweep and a parallel-reduction back substitution.
//
// What & Why:
//
//	The input is an N×(N+1) augmented matrix [A | b]. Forward elimination turns
//	the first N columns upper-triangular; each elimination step k updates rows
//	k+1..N-1 independently, so those row updates run in parallel and the step
//	itself is a barrier. Back substitution walks k = N-1..0 strictly in order;
//	for each k the dot product Σ_{j>k} A[k][j]·x[j] is a parallel sum reduction.
//
// Contract:
//
//   - Solve never mutates the caller's matrix: it eliminates on a private clone.
//   - No pivoting by default (PivotNone), matching the classic textbook scheme.
//     WithPivoting(PivotPartial) swaps in the largest |A[i][k]| before each step.
//   - A pivot with |p| <= eps fails with *SingularMatrixError (errors.Is ErrSingular).
//     WithNoSingularCheck restores the unchecked behaviour: Inf/NaN propagate.
//   - Shape violations fail with *DimensionError before any arithmetic.
//
// Determinism:
//
//	Serial mode is bit-reproducible. Parallel mode is reproducible for a fixed
//	worker count and grain; across worker counts results agree within rounding
//	because the reduction order changes.
//
// Complexity:
//
//	Forward O(N³/3) flops, backward O(N²/2), memory O(N²) for the private copy.
//
// Verification helpers (Residual, RelativeResidual, Verify, ReferenceSolve) use
// gonum's mat package as an independent implementation.
package gauss
