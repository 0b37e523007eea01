// Package randsys generates random augmented systems [A | b] for the solver.
//
// Goals:
//   - Determinism: same seed ⇒ identical matrix across runs and platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//
// Generators:
//   - Uniform: integer-valued entries drawn uniformly from [lo, hi], the classic
//     benchmark input (default range 1..2500).
//   - DiagonallyDominant: strictly diagonally dominant A, so elimination without
//     pivoting never meets a zero pivot.
//   - FromSolution: builds b = A·x for a chosen x, so tests know the exact answer.
package randsys
