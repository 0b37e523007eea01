package parallel_test

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/katalvlaran/pargauss/parallel"
	"github.com/stretchr/testify/require"
)

func TestFor_VisitsEveryIndexOnce(t *testing.T) {
	t.Parallel()

	const n = 1013
	for _, workers := range []int{1, 2, 7, 64} {
		hits := make([]int32, n)
		err := parallel.For(context.Background(), n, workers, 1, func(lo, hi int) {
			for i := lo; i < hi; i++ {
				atomic.AddInt32(&hits[i], 1)
			}
		})
		require.NoError(t, err)
		for i, h := range hits {
			require.Equalf(t, int32(1), h, "index %d visited %d times with %d workers", i, h, workers)
		}
	}
}

func TestFor_EmptyRangeIsNoop(t *testing.T) {
	t.Parallel()

	called := false
	err := parallel.For(context.Background(), 0, 4, 1, func(lo, hi int) { called = true })
	require.NoError(t, err)
	require.False(t, called)
}

func TestFor_JoinsBeforeReturning(t *testing.T) {
	t.Parallel()

	var done int64
	err := parallel.For(context.Background(), 64, 8, 1, func(lo, hi int) {
		atomic.AddInt64(&done, int64(hi-lo))
	})
	require.NoError(t, err)
	require.Equal(t, int64(64), atomic.LoadInt64(&done))
}

func TestFor_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := parallel.For(ctx, 10, 2, 1, func(lo, hi int) { called = true })
	require.ErrorIs(t, err, context.Canceled)
	require.False(t, called)
}
