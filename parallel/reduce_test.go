package parallel_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/pargauss/parallel"
	"github.com/stretchr/testify/require"
)

func TestSumReduce_MatchesSerialSum(t *testing.T) {
	t.Parallel()

	const n = 5000
	term := func(i int) float64 { return float64(i%97) * 0.5 }

	var serial float64
	for i := 0; i < n; i++ {
		serial += term(i)
	}

	for _, workers := range []int{1, 3, 8, 33} {
		got, err := parallel.SumReduce(context.Background(), n, workers, 1, term)
		require.NoError(t, err)
		// integer-valued halves: exact in float64 regardless of order
		require.Equal(t, serial, got, "workers=%d", workers)
	}
}

func TestSumReduce_Reproducible(t *testing.T) {
	t.Parallel()

	term := func(i int) float64 { return 1.0 / float64(i+1) }
	a, err := parallel.SumReduce(context.Background(), 10000, 6, 16, term)
	require.NoError(t, err)
	b, err := parallel.SumReduce(context.Background(), 10000, 6, 16, term)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestSumReduce_Empty(t *testing.T) {
	t.Parallel()

	got, err := parallel.SumReduce(context.Background(), 0, 4, 1, func(int) float64 { return 1 })
	require.NoError(t, err)
	require.Zero(t, got)
}

func TestSumReduce_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := parallel.SumReduce(ctx, 100, 4, 1, func(int) float64 { return 1 })
	require.ErrorIs(t, err, context.Canceled)
}
