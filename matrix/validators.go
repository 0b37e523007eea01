// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil/finite checks here.
//  - Return sentinel errors wrapped with a validator tag so errors.Is keeps working.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape → Finite).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// A typed nil (*Dense)(nil) stored in the interface is rejected too.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateAugmented checks that m is an n×(n+1) augmented system matrix.
//
// Inputs: Matrix value (assumed non-nil), n unknowns.
// Errors: ErrInvalidDimensions when n < 1, ErrDimensionMismatch when the shape differs.
// Complexity: O(1).
func ValidateAugmented(m Matrix, n int) error {
	if n < 1 {
		return validatorErrorf("ValidateAugmented", ErrInvalidDimensions)
	}
	if m.Rows() != n {
		return validatorErrorf("ValidateAugmented: Rows", ErrDimensionMismatch)
	}
	if m.Cols() != n+1 {
		return validatorErrorf("ValidateAugmented: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Time: O(1). Space: O(1).
func ValidateVecLen(x []float64, n int) error {
	// Disallow nil vectors to avoid subtle bugs in MatVec-like routines.
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix) // we reuse the existing sentinel for "nil argument"
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateFinite scans every element and rejects NaN/±Inf.
// Fast path on *Dense walks the flat buffer.
// Complexity: O(r*c).
func ValidateFinite(m Matrix) error {
	if d, ok := m.(*Dense); ok {
		var idx int
		for idx = range d.data {
			if isNonFinite(d.data[idx]) {
				return validatorErrorf("ValidateFinite", fmt.Errorf("(%d,%d): %w", idx/d.c, idx%d.c, ErrNaNInf))
			}
		}
		return nil
	}

	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return validatorErrorf("ValidateFinite", err)
			}
			if isNonFinite(v) {
				return validatorErrorf("ValidateFinite", fmt.Errorf("(%d,%d): %w", i, j, ErrNaNInf))
			}
		}
	}

	return nil
}

// isNonFinite reports whether v is NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
