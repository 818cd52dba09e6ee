package algo

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gosimd/go-lanes/lanes"
)

func TestParallelForCoversRange(t *testing.T) {
	n := 10_000
	covered := make([]int32, n)

	err := ParallelFor[float32](context.Background(), n, 4, func(_ context.Context, lo, hi int) error {
		for i := lo; i < hi; i++ {
			atomic.AddInt32(&covered[i], 1)
		}
		return nil
	})
	require.NoError(t, err)

	for i, c := range covered {
		require.Equal(t, int32(1), c, "index %d visited %d times", i, c)
	}
}

func TestParallelForChunksAreLaneAligned(t *testing.T) {
	n := 1000
	maxLanes := lanes.MaxLanes[float32]()

	err := ParallelFor[float32](context.Background(), n, 3, func(_ context.Context, lo, hi int) error {
		assert.Zero(t, lo%maxLanes, "chunk start %d not lane aligned", lo)
		if hi != n {
			assert.Zero(t, hi%maxLanes, "chunk end %d not lane aligned", hi)
		}
		return nil
	})
	require.NoError(t, err)
}

func TestParallelForEmpty(t *testing.T) {
	called := false
	err := ParallelFor[float32](context.Background(), 0, 4, func(_ context.Context, lo, hi int) error {
		called = true
		return nil
	})
	require.NoError(t, err)
	assert.False(t, called)
}

func TestParallelForPropagatesError(t *testing.T) {
	wantErr := errors.New("boom")
	err := ParallelFor[float32](context.Background(), 1000, 4, func(_ context.Context, lo, hi int) error {
		if lo == 0 {
			return wantErr
		}
		return nil
	})
	assert.ErrorIs(t, err, wantErr)
}

func TestParallelAddTo(t *testing.T) {
	n := 5000
	a, b := seqF32(n), seqF32(n)
	dst := make([]float32, n)

	err := ParallelAddTo(context.Background(), dst, a, b, 8)
	require.NoError(t, err)

	for i := range dst {
		require.Equal(t, a[i]+b[i], dst[i], "i=%d", i)
	}
}

func TestParallelTransform(t *testing.T) {
	n := 3000
	in := seqF64(n)
	out := make([]float64, n)

	err := ParallelTransform(context.Background(), in, out, 4,
		func(v lanes.Vec[float64]) lanes.Vec[float64] { return lanes.Abs(v) },
		func(x float64) float64 {
			if x < 0 {
				return -x
			}
			return x
		},
	)
	require.NoError(t, err)

	for i := range out {
		want := in[i]
		if want < 0 {
			want = -want
		}
		require.Equal(t, want, out[i], "i=%d", i)
	}
}

func TestParallelSumInt(t *testing.T) {
	a := make([]int64, 4321)
	var want int64
	for i := range a {
		a[i] = int64(i)
		want += int64(i)
	}

	got, err := ParallelSum(context.Background(), a, 4)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestParallelSumFloat(t *testing.T) {
	a := seqF64(10_000)
	var want float64
	for _, x := range a {
		want += x
	}

	got, err := ParallelSum(context.Background(), a, 7)
	require.NoError(t, err)
	assert.InDelta(t, want, got, 1e-7)
}
