// SPDX-License-Identifier: MIT
// Package gauss: typed errors.
//
// Both types unwrap to the matrix package sentinels, so callers may use either
// errors.As (for the details) or errors.Is (for the class).

package gauss

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pargauss/matrix"
)

// Sentinel aliases, re-exported so callers need not import matrix.
var (
	// ErrDimension classifies every *DimensionError.
	ErrDimension = matrix.ErrDimensionMismatch

	// ErrSingular classifies every *SingularMatrixError.
	ErrSingular = matrix.ErrSingular
)

// ErrResidual is returned by Verify when the solution does not reproduce b within tolerance.
var ErrResidual = errors.New("gauss: residual above tolerance")

// DimensionError reports a malformed system: N < 1 or the matrix is not N×(N+1).
type DimensionError struct {
	N    int // declared number of unknowns
	Rows int // observed rows
	Cols int // observed columns (of the offending row for ragged input)
	Row  int // offending row for ragged input, -1 otherwise
}

func (e *DimensionError) Error() string {
	if e.N < 1 {
		return fmt.Sprintf("gauss: need at least one unknown, got N=%d", e.N)
	}
	if e.Row >= 0 {
		return fmt.Sprintf("gauss: row %d has %d columns, want %d", e.Row, e.Cols, e.N+1)
	}
	return fmt.Sprintf("gauss: N=%d needs a %dx%d matrix, got %dx%d", e.N, e.N, e.N+1, e.Rows, e.Cols)
}

// Unwrap maps to ErrInvalidDimensions for N < 1 and ErrDimensionMismatch otherwise.
func (e *DimensionError) Unwrap() error {
	if e.N < 1 {
		return matrix.ErrInvalidDimensions
	}
	return matrix.ErrDimensionMismatch
}

// Is lets errors.Is(err, ErrDimension) match every DimensionError, including N < 1.
func (e *DimensionError) Is(target error) bool {
	return target == matrix.ErrDimensionMismatch
}

// SingularMatrixError reports a pivot whose magnitude is not above Epsilon.
type SingularMatrixError struct {
	Step    int     // elimination step k (pivot is A[k][k])
	Pivot   float64 // observed pivot value
	Epsilon float64 // threshold in effect
}

func (e *SingularMatrixError) Error() string {
	return fmt.Sprintf("gauss: singular matrix: |pivot| at step %d is %g (eps %g)", e.Step, e.Pivot, e.Epsilon)
}

// Unwrap returns matrix.ErrSingular.
func (e *SingularMatrixError) Unwrap() error { return matrix.ErrSingular }
