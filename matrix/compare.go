// SPDX-License-Identifier: MIT

// Package matrix: tolerance comparisons.
//
// Used to compare solutions of different execution strategies, whose
// rounding differs because the reduction order differs.

package matrix

import (
	"fmt"
	"math"
)

const (
	opAllClose    = "AllClose"
	opAllCloseVec = "AllCloseVec"
)

// ValidateSameShape ensures a and b have identical dimensions.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape", ErrDimensionMismatch)
	}

	return nil
}

// normTol rejects non-finite tolerances and takes absolute values.
func normTol(tag string, rtol, atol float64) (float64, float64, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return 0, 0, fmt.Errorf("%s: tolerance: %w", tag, ErrNaNInf)
	}

	return math.Abs(rtol), math.Abs(atol), nil
}

// within reports |a-b| <= atol + rtol*|b|. NaN never compares close.
func within(a, b, rtol, atol float64) bool {
	return math.Abs(a-b) <= atol+rtol*math.Abs(b)
}

// AllCloseVec checks |a[i]-b[i]| <= atol + rtol*|b[i]| for every i.
// Errors: ErrDimensionMismatch for different lengths, ErrNaNInf for a bad tolerance.
// Complexity: O(n), early exit on the first violation.
func AllCloseVec(a, b []float64, rtol, atol float64) (bool, error) {
	rtol, atol, err := normTol(opAllCloseVec, rtol, atol)
	if err != nil {
		return false, err
	}
	if len(a) != len(b) {
		return false, fmt.Errorf("%s: len %d vs %d: %w", opAllCloseVec, len(a), len(b), ErrDimensionMismatch)
	}
	for i := range a {
		if !within(a[i], b[i], rtol, atol) {
			return false, nil
		}
	}

	return true, nil
}

// AllClose is AllCloseVec for two matrices of identical shape.
// Complexity: O(r*c).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	rtol, atol, err := normTol(opAllClose, rtol, atol)
	if err != nil {
		return false, err
	}
	if err = ValidateNotNil(a); err != nil {
		return false, fmt.Errorf("%s: %w", opAllClose, err)
	}
	if err = ValidateNotNil(b); err != nil {
		return false, fmt.Errorf("%s: %w", opAllClose, err)
	}
	if err = ValidateSameShape(a, b); err != nil {
		return false, fmt.Errorf("%s: %w", opAllClose, err)
	}

	// Dense fast path over flat slices.
	if da, ok := a.(*Dense); ok {
		if db, ok := b.(*Dense); ok {
			return AllCloseVec(da.data, db.data, rtol, atol)
		}
	}

	var (
		i, j   int
		av, bv float64
	)
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			if av, err = a.At(i, j); err != nil {
				return false, fmt.Errorf("%s: %w", opAllClose, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, fmt.Errorf("%s: %w", opAllClose, err)
			}
			if !within(av, bv, rtol, atol) {
				return false, nil
			}
		}
	}

	return true, nil
}
