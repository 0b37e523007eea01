// SPDX-License-Identifier: MIT

package gauss

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/pargauss/matrix"
)

// Operation tags for error wrapping.
const (
	opSolve     = "Solve"
	opSolveRows = "SolveRows"
	opForward   = "forward"
	opBackward  = "backward"
)

// Solve solves the n×n system held in the augmented n×(n+1) matrix a.
// MAIN DESCRIPTION:
//   - Stage 1: validate shape (DimensionError) and finiteness (matrix.ErrNaNInf).
//   - Stage 2: clone a; the caller's matrix is never mutated.
//   - Stage 3: forward elimination with a barrier after every step.
//   - Stage 4: back substitution, one sum reduction per unknown.
//
// Errors:
//   - *DimensionError (errors.Is ErrDimension) for nil-free shape violations.
//   - matrix.ErrNilMatrix when a is nil.
//   - matrix.ErrNaNInf when a holds NaN/±Inf.
//   - *SingularMatrixError (errors.Is ErrSingular) when a pivot is below eps.
//   - ctx.Err() when ctx is done at a step boundary.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Solve(ctx context.Context, n int, a matrix.Matrix, opts ...Option) (*Result, error) {
	start := time.Now()
	o := gatherOptions(opts...)

	work, err := prepare(n, a)
	if err != nil {
		return nil, err
	}

	res := &Result{Mode: o.mode, Pivoting: o.pivoting, Workers: o.workers}
	views := rowViews(work)

	t := time.Now()
	res.Swaps, err = forward(ctx, work, views, o)
	res.ForwardElapsed = time.Since(t)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}

	t = time.Now()
	res.X, err = backward(ctx, views, o)
	res.BackwardElapsed = time.Since(t)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}
	res.Total = time.Since(start)

	o.logger.Debug("gauss.solve",
		"n", n,
		"mode", o.mode.String(),
		"pivoting", o.pivoting.String(),
		"workers", o.workers,
		"swaps", res.Swaps,
		"forward", res.ForwardElapsed,
		"backward", res.BackwardElapsed,
	)

	return res, nil
}

// SolveRows is Solve for literal row slices. Every row must have n+1 values.
func SolveRows(ctx context.Context, n int, rows [][]float64, opts ...Option) (*Result, error) {
	if err := checkRows(n, rows); err != nil {
		return nil, err
	}
	a, err := matrix.NewFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSolveRows, err)
	}

	return Solve(ctx, n, a, opts...)
}

// prepare validates a and returns the private working copy.
func prepare(n int, a matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}
	if err := matrix.ValidateAugmented(a, n); err != nil {
		return nil, &DimensionError{N: n, Rows: a.Rows(), Cols: a.Cols(), Row: -1}
	}
	if err := matrix.ValidateFinite(a); err != nil {
		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}

	if d, ok := a.(*matrix.Dense); ok {
		return d.CloneDense(), nil
	}
	// DenseOf already copies non-Dense inputs.
	d, err := matrix.DenseOf(a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}

	return d, nil
}

// checkRows applies the DimensionError contract to [][]float64 input.
func checkRows(n int, rows [][]float64) error {
	if n < 1 || len(rows) != n {
		cols := 0
		if len(rows) > 0 {
			cols = len(rows[0])
		}
		return &DimensionError{N: n, Rows: len(rows), Cols: cols, Row: -1}
	}
	for i, r := range rows {
		if len(r) != n+1 {
			return &DimensionError{N: n, Rows: len(rows), Cols: len(r), Row: i}
		}
	}

	return nil
}

// rowViews returns one aliasing slice per row of w.
func rowViews(w *matrix.Dense) [][]float64 {
	views := make([][]float64, w.Rows())
	for i := range views {
		views[i], _ = w.Row(i) // i is always in range
	}

	return views
}
