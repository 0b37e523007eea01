// SPDX-License-Identifier: MIT

// Package matrix: converters between *Dense, plain [][]float64 rows and gonum's mat.Dense.
//
// Purpose:
//   - Let callers build systems from literal rows (tests, YAML files).
//   - Bridge to gonum for independent reference computations (residuals, LU solve).
//
// All converters copy; no returned value aliases its input.
package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const (
	opFromRows   = "FromRows"
	opToGonum    = "ToGonum"
	opFromGonum  = "FromGonum"
	opDenseSlice = "DenseOf"
)

// NewFromRows builds a Dense from row slices, copying every value.
//
// Errors:
//   - ErrInvalidDimensions when rows is empty or the first row is empty.
//   - ErrRaggedRows when row lengths differ.
//   - ErrNaNInf when a value is not finite (default policy).
//
// Complexity: O(r*c).
func NewFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%s: %w", opFromRows, ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	d, err := NewDense(r, c)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opFromRows, err)
	}
	var i, j int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("%s: row %d has %d values, want %d: %w", opFromRows, i, len(rows[i]), c, ErrRaggedRows)
		}
		for j = 0; j < c; j++ {
			if isNonFinite(rows[i][j]) {
				return nil, fmt.Errorf("%s: %w", opFromRows, denseErrorf(ctxSet, i, j, ErrNaNInf))
			}
		}
		copy(d.data[i*c:(i+1)*c], rows[i])
	}

	return d, nil
}

// ToRows copies m into freshly allocated row slices.
// Complexity: O(r*c).
func ToRows(m Matrix) ([][]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	out := make([][]float64, m.Rows())
	var (
		i, j int
		err  error
	)
	for i = range out {
		out[i] = make([]float64, m.Cols())
		for j = range out[i] {
			if out[i][j], err = m.At(i, j); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// DenseOf returns m as *Dense: the same pointer when m already is one,
// a copy otherwise. Callers that mutate must still Clone.
// Complexity: O(1) for *Dense, O(r*c) otherwise.
func DenseOf(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("%s: %w", opDenseSlice, err)
	}
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	d, err := NewDenseWithPolicy(m.Rows(), m.Cols(), false)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opDenseSlice, err)
	}
	var (
		i, j int
		v    float64
	)
	for i = 0; i < d.r; i++ {
		for j = 0; j < d.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("%s: %w", opDenseSlice, err)
			}
			d.data[i*d.c+j] = v
		}
	}
	d.validateNaNInf = DefaultValidateNaNInf

	return d, nil
}

// ToGonum copies the r0..r0+rows × c0..c0+cols window of m into a gonum *mat.Dense.
// Pass the full shape to convert the whole matrix.
//
// Errors: ErrNilMatrix, ErrOutOfRange when the window exceeds m.
// Complexity: O(rows*cols).
func ToGonum(m Matrix, r0, c0, rows, cols int) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("%s: %w", opToGonum, err)
	}
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%s: %w", opToGonum, ErrInvalidDimensions)
	}
	if r0 < 0 || c0 < 0 || r0+rows > m.Rows() || c0+cols > m.Cols() {
		return nil, fmt.Errorf("%s: window %dx%d@(%d,%d): %w", opToGonum, rows, cols, r0, c0, ErrOutOfRange)
	}
	buf := make([]float64, rows*cols)
	var (
		i, j int
		v    float64
		err  error
	)
	if d, ok := m.(*Dense); ok {
		for i = 0; i < rows; i++ {
			copy(buf[i*cols:(i+1)*cols], d.data[(r0+i)*d.c+c0:(r0+i)*d.c+c0+cols])
		}
		return mat.NewDense(rows, cols, buf), nil
	}
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(r0+i, c0+j); err != nil {
				return nil, fmt.Errorf("%s: %w", opToGonum, err)
			}
			buf[i*cols+j] = v
		}
	}

	return mat.NewDense(rows, cols, buf), nil
}

// FromGonum copies a gonum matrix into a new *Dense.
// Complexity: O(r*c).
func FromGonum(g mat.Matrix) (*Dense, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: %w", opFromGonum, ErrNilMatrix)
	}
	r, c := g.Dims()
	d, err := NewDense(r, c)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opFromGonum, err)
	}
	var (
		i, j int
		v    float64
	)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v = g.At(i, j)
			if isNonFinite(v) {
				return nil, fmt.Errorf("%s: %w", opFromGonum, denseErrorf(ctxSet, i, j, ErrNaNInf))
			}
			d.data[i*c+j] = v
		}
	}

	return d, nil
}
