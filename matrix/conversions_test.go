package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/pargauss/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestNewFromRows(t *testing.T) {
	src := [][]float64{{2, 1, 5}, {1, -1, 1}}
	m, err := matrix.NewFromRows(src)
	require.NoError(t, err)
	CompareExact(t, src, m)

	// the Dense owns a copy
	src[0][0] = 100
	require.Equal(t, 2.0, MustAt(t, m, 0, 0))
}

func TestNewFromRows_Errors(t *testing.T) {
	_, err := matrix.NewFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewFromRows([][]float64{{}})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewFromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrRaggedRows)

	_, err = matrix.NewFromRows([][]float64{{1, math.Inf(1)}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestToRowsRoundTrip(t *testing.T) {
	want := [][]float64{{1, 2, 3}, {4, 5, 6}}
	m := NewFilledDense(t, want)

	got, err := matrix.ToRows(m)
	require.NoError(t, err)
	require.Equal(t, want, got)

	_, err = matrix.ToRows(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestDenseOf(t *testing.T) {
	m := NewFilledDense(t, [][]float64{{1, 2}, {3, 4}})

	same, err := matrix.DenseOf(m)
	require.NoError(t, err)
	require.Same(t, m, same)

	copied, err := matrix.DenseOf(hide{m})
	require.NoError(t, err)
	require.NotSame(t, m, copied)
	CompareExact(t, [][]float64{{1, 2}, {3, 4}}, copied)
}

func TestToGonumWindow(t *testing.T) {
	m := NewFilledDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	for _, src := range []matrix.Matrix{m, hide{m}} {
		g, err := matrix.ToGonum(src, 0, 0, 2, 2)
		require.NoError(t, err)
		require.True(t, mat.Equal(g, mat.NewDense(2, 2, []float64{1, 2, 4, 5})))

		col, err := matrix.ToGonum(src, 0, 2, 2, 1)
		require.NoError(t, err)
		require.True(t, mat.Equal(col, mat.NewDense(2, 1, []float64{3, 6})))
	}

	_, err := matrix.ToGonum(m, 1, 1, 2, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = matrix.ToGonum(m, 0, 0, 0, 2)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestFromGonum(t *testing.T) {
	g := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	m, err := matrix.FromGonum(g)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, m)

	g.Set(0, 0, math.NaN())
	_, err = matrix.FromGonum(g)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}
