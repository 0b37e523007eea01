// SPDX-License-Identifier: MIT

package gauss

import "time"

// Result is the outcome of one Solve call. The caller owns X.
type Result struct {
	// X is the solution vector, X[i] is unknown i.
	X []float64

	// ForwardElapsed is the wall time of forward elimination only.
	ForwardElapsed time.Duration
	// BackwardElapsed is the wall time of back substitution.
	BackwardElapsed time.Duration
	// Total covers validation, the private copy and both phases.
	Total time.Duration

	Mode     Mode
	Pivoting Pivoting
	Workers  int // effective worker bound (1 in serial mode)
	Swaps    int // row exchanges performed by partial pivoting
}
