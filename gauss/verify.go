// SPDX-License-Identifier: MIT

// Package gauss: solution checks backed by gonum.
//
// These helpers deliberately avoid the package's own elimination code so they
// can serve as an independent oracle in tests and in `gauss solve --verify`.

package gauss

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/pargauss/matrix"
)

const (
	opResidual  = "Residual"
	opVerify    = "Verify"
	opReference = "ReferenceSolve"
)

// split returns A (n×n) and b (length n) from an augmented matrix as gonum values.
func split(tag string, a matrix.Matrix) (*mat.Dense, *mat.VecDense, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", tag, err)
	}
	n := a.Rows()
	if err := matrix.ValidateAugmented(a, n); err != nil {
		return nil, nil, &DimensionError{N: n, Rows: a.Rows(), Cols: a.Cols(), Row: -1}
	}
	coef, err := matrix.ToGonum(a, 0, 0, n, n)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", tag, err)
	}
	rhs, err := matrix.ToGonum(a, 0, n, n, 1)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", tag, err)
	}

	return coef, mat.VecDenseCopyOf(rhs.ColView(0)), nil
}

// Residual returns ‖A·x − b‖∞ for the augmented matrix a = [A | b].
// Errors: matrix.ErrNilMatrix, *DimensionError, matrix.ErrDimensionMismatch for len(x) != n.
// Complexity: O(n²).
func Residual(a matrix.Matrix, x []float64) (float64, error) {
	coef, rhs, err := split(opResidual, a)
	if err != nil {
		return 0, err
	}
	if err = matrix.ValidateVecLen(x, rhs.Len()); err != nil {
		return 0, fmt.Errorf("%s: %w", opResidual, err)
	}

	var r mat.VecDense
	r.MulVec(coef, mat.NewVecDense(len(x), append([]float64(nil), x...)))
	r.SubVec(&r, rhs)

	return mat.Norm(&r, math.Inf(1)), nil
}

// RelativeResidual returns Residual scaled by max(1, ‖b‖∞).
func RelativeResidual(a matrix.Matrix, x []float64) (float64, error) {
	res, err := Residual(a, x)
	if err != nil {
		return 0, err
	}
	_, rhs, err := split(opResidual, a)
	if err != nil {
		return 0, err
	}

	return res / math.Max(1, mat.Norm(rhs, math.Inf(1))), nil
}

// Verify fails with ErrResidual when RelativeResidual(a, x) > tol.
// A NaN residual (non-finite x) also fails.
func Verify(a matrix.Matrix, x []float64, tol float64) error {
	rel, err := RelativeResidual(a, x)
	if err != nil {
		return err
	}
	if math.IsNaN(rel) || rel > tol {
		return fmt.Errorf("%s: relative residual %g > %g: %w", opVerify, rel, tol, ErrResidual)
	}

	return nil
}

// ReferenceSolve solves a = [A | b] with gonum's pivoted LU.
// Errors: *DimensionError, ErrSingular when gonum reports a singular or
// numerically singular matrix.
// Complexity: O(n³).
func ReferenceSolve(a matrix.Matrix) ([]float64, error) {
	coef, rhs, err := split(opReference, a)
	if err != nil {
		return nil, err
	}

	var x mat.VecDense
	// Shapes are validated above, so the only failure left is a mat.Condition
	// (exactly or numerically singular).
	if err = x.SolveVec(coef, rhs); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", opReference, err, ErrSingular)
	}

	return mat.Col(nil, 0, &x), nil
}
