// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/pargauss/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateNotNil covers untyped and typed nil.
func TestValidateNotNil(t *testing.T) {
	t.Parallel()

	var typed *matrix.Dense
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateNotNil(typed), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateNotNil(MustDense(t, 1, 1)))
}

// TestValidateAugmented covers the n×(n+1) shape contract.
func TestValidateAugmented(t *testing.T) {
	t.Parallel()

	dense := func(r, c int) matrix.Matrix { return MustDense(t, r, c) }

	tests := []struct {
		name string
		m    matrix.Matrix
		n    int
		want error
	}{
		{"1x2 ok", dense(1, 2), 1, nil},
		{"3x4 ok", dense(3, 4), 3, nil},
		{"zero unknowns", dense(1, 2), 0, matrix.ErrInvalidDimensions},
		{"square", dense(3, 3), 3, matrix.ErrDimensionMismatch},
		{"too many rows", dense(4, 4), 3, matrix.ErrDimensionMismatch},
		{"n disagrees", dense(3, 4), 2, matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateAugmented(tc.m, tc.n)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.Truef(t, errors.Is(err, tc.want), "expected errors.Is(%v, %v)", err, tc.want)
		})
	}
}

// TestValidateVecLen covers nil and length mismatch.
func TestValidateVecLen(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, matrix.ValidateVecLen(nil, 2), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
	require.NoError(t, matrix.ValidateVecLen([]float64{1, 2}, 2))
}

// TestValidateFinite runs both the *Dense fast path and the interface fallback.
func TestValidateFinite(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDenseWithPolicy(2, 2, false)
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateFinite(m))
	require.NoError(t, matrix.ValidateFinite(hide{m}))

	require.NoError(t, m.Set(1, 0, math.NaN()))
	require.ErrorIs(t, matrix.ValidateFinite(m), matrix.ErrNaNInf)
	require.ErrorIs(t, matrix.ValidateFinite(hide{m}), matrix.ErrNaNInf)
}
