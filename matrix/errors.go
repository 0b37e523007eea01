// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package and by the solver built on top of it. Algorithms MUST return these
// sentinels (optionally wrapped) and tests MUST check them via errors.Is.
// No algorithm should panic on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. If context is essential, wrap with
// fmt.Errorf("ctx: %w", ErrX) at the outer boundary; callers still use errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape -> NaN/Inf -> singular.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. an augmented system that is not N×(N+1) or a vector of the wrong length.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrRaggedRows signals that [][]float64 input rows have different lengths.
	ErrRaggedRows = errors.New("matrix: ragged rows")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy (ingestion, Set, etc.).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrSingular is returned when a zero (or below-epsilon) pivot is encountered
	// during elimination.
	ErrSingular = errors.New("matrix: singular matrix")
)
