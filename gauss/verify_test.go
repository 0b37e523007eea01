package gauss_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/pargauss/gauss"
	"github.com/katalvlaran/pargauss/matrix"
	"github.com/stretchr/testify/require"
)

func TestResidual(t *testing.T) {
	t.Parallel()

	a, err := matrix.NewFromRows([][]float64{{2, 1, 5}, {1, -1, 1}})
	require.NoError(t, err)

	r, err := gauss.Residual(a, []float64{2, 1})
	require.NoError(t, err)
	require.Zero(t, r)

	// x=(2,2): A·x = (6,0), b = (5,1) ⇒ residual (1,-1)
	r, err = gauss.Residual(a, []float64{2, 2})
	require.NoError(t, err)
	require.Equal(t, 1.0, r)

	rel, err := gauss.RelativeResidual(a, []float64{2, 2})
	require.NoError(t, err)
	require.Equal(t, 1.0/5.0, rel)
}

func TestResidual_Errors(t *testing.T) {
	t.Parallel()

	_, err := gauss.Residual(nil, []float64{1})
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	sq, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	_, err = gauss.Residual(sq, []float64{1, 2})
	var de *gauss.DimensionError
	require.True(t, errors.As(err, &de))

	aug, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, err = gauss.Residual(aug, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestVerify(t *testing.T) {
	t.Parallel()

	a, err := matrix.NewFromRows([][]float64{{2, 1, 5}, {1, -1, 1}})
	require.NoError(t, err)

	require.NoError(t, gauss.Verify(a, []float64{2, 1}, 1e-12))
	require.ErrorIs(t, gauss.Verify(a, []float64{2, 2}, 1e-3), gauss.ErrResidual)
	require.ErrorIs(t, gauss.Verify(a, []float64{math.NaN(), 1}, 1), gauss.ErrResidual)
}

func TestReferenceSolve(t *testing.T) {
	t.Parallel()

	a, err := matrix.NewFromRows([][]float64{{2, 1, 5}, {1, -1, 1}})
	require.NoError(t, err)
	x, err := gauss.ReferenceSolve(a)
	require.NoError(t, err)
	require.InDelta(t, 2.0, x[0], 1e-12)
	require.InDelta(t, 1.0, x[1], 1e-12)

	singular, err := matrix.NewFromRows([][]float64{{1, 2, 3}, {2, 4, 6}})
	require.NoError(t, err)
	_, err = gauss.ReferenceSolve(singular)
	require.ErrorIs(t, err, gauss.ErrSingular)
}
