package algo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gosimd/go-lanes/lanes"
)

// Lengths that exercise the empty, tail-only, exact-vector and
// vector-plus-tail paths for every backend width.
var testLengths = []int{0, 1, 3, 7, 8, 15, 16, 17, 64, 100, 1000}

func seqF32(n int) []float32 {
	s := make([]float32, n)
	for i := range s {
		s[i] = float32(i%17) - 8
	}
	return s
}

func seqF64(n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = float64(i%23)*0.5 - 5
	}
	return s
}

func TestAddTo(t *testing.T) {
	for _, n := range testLengths {
		a, b := seqF32(n), seqF32(n)
		for i := range b {
			b[i] += 100
		}
		dst := make([]float32, n)
		AddTo(dst, a, b)

		for i := range dst {
			assert.Equal(t, a[i]+b[i], dst[i], "n=%d i=%d", n, i)
		}
	}
}

func TestAddToInt(t *testing.T) {
	n := 100
	a := make([]int32, n)
	b := make([]int32, n)
	for i := range a {
		a[i] = int32(i)
		b[i] = int32(2 * i)
	}
	dst := make([]int32, n)
	AddTo(dst, a, b)

	for i := range dst {
		assert.Equal(t, int32(3*i), dst[i], "i=%d", i)
	}
}

func TestAddToAliasing(t *testing.T) {
	a := seqF32(37)
	want := make([]float32, len(a))
	for i := range a {
		want[i] = a[i] * 2
	}

	AddTo(a, a, a)
	assert.Equal(t, want, a)
}

func TestAddToLengthMismatchPanics(t *testing.T) {
	assert.Panics(t, func() {
		AddTo(make([]float32, 4), make([]float32, 5), make([]float32, 4))
	})
}

func TestSubMulDivTo(t *testing.T) {
	for _, n := range testLengths {
		a, b := seqF64(n), seqF64(n)
		for i := range b {
			b[i] += 30 // keep divisors away from zero
		}

		dst := make([]float64, n)
		SubTo(dst, a, b)
		for i := range dst {
			require.Equal(t, a[i]-b[i], dst[i], "SubTo n=%d i=%d", n, i)
		}

		MulTo(dst, a, b)
		for i := range dst {
			require.Equal(t, a[i]*b[i], dst[i], "MulTo n=%d i=%d", n, i)
		}

		DivTo(dst, a, b)
		for i := range dst {
			require.Equal(t, a[i]/b[i], dst[i], "DivTo n=%d i=%d", n, i)
		}
	}
}

func TestScaleTo(t *testing.T) {
	for _, n := range testLengths {
		a := seqF32(n)
		dst := make([]float32, n)
		ScaleTo(dst, 2.5, a)

		for i := range dst {
			assert.Equal(t, 2.5*a[i], dst[i], "n=%d i=%d", n, i)
		}
	}
}

func TestSqrtTo(t *testing.T) {
	for _, n := range testLengths {
		a := make([]float64, n)
		for i := range a {
			a[i] = float64(i * i)
		}
		dst := make([]float64, n)
		SqrtTo(dst, a)

		for i := range dst {
			assert.InDelta(t, float64(i), dst[i], 1e-12, "n=%d i=%d", n, i)
		}
	}
}

func TestFill(t *testing.T) {
	for _, n := range testLengths {
		dst := make([]int16, n)
		Fill(dst, 42)
		for i := range dst {
			require.Equal(t, int16(42), dst[i], "n=%d i=%d", n, i)
		}
	}
}

func TestSum(t *testing.T) {
	for _, n := range testLengths {
		a := seqF64(n)
		var want float64
		for _, x := range a {
			want += x
		}
		assert.InDelta(t, want, Sum(a), 1e-9, "n=%d", n)
	}
}

func TestSumInt(t *testing.T) {
	a := make([]int32, 1000)
	for i := range a {
		a[i] = int32(i)
	}
	assert.Equal(t, int32(999*1000/2), Sum(a))
}

func TestSumUint8Wraparound(t *testing.T) {
	a := make([]uint8, 300)
	for i := range a {
		a[i] = 1
	}
	// 300 ones wrap around the uint8 range to 44.
	assert.Equal(t, uint8(300%256), Sum(a))
}

func TestDot(t *testing.T) {
	for _, n := range testLengths {
		a, b := seqF32(n), seqF32(n)
		var want float64
		for i := range a {
			want += float64(a[i]) * float64(b[i])
		}
		assert.InDelta(t, want, float64(Dot(a, b)), 1e-2, "n=%d", n)
	}
}

func TestDotOrthogonal(t *testing.T) {
	a := []float64{1, 0, 1, 0, 1, 0, 1, 0, 1}
	b := []float64{0, 1, 0, 1, 0, 1, 0, 1, 0}
	assert.Equal(t, 0.0, Dot(a, b))
}

func TestNorm(t *testing.T) {
	a := []float32{3, 4}
	assert.InDelta(t, 5.0, float64(Norm(a)), 1e-6)

	b := make([]float64, 100)
	for i := range b {
		b[i] = 2
	}
	assert.InDelta(t, 20.0, Norm(b), 1e-12)
}

func TestMinMaxOf(t *testing.T) {
	for _, n := range testLengths {
		if n == 0 {
			continue
		}
		a := seqF32(n)
		wantMin, wantMax := a[0], a[0]
		for _, x := range a[1:] {
			if x < wantMin {
				wantMin = x
			}
			if x > wantMax {
				wantMax = x
			}
		}
		require.Equal(t, wantMin, MinOf(a), "MinOf n=%d", n)
		require.Equal(t, wantMax, MaxOf(a), "MaxOf n=%d", n)
	}
}

func TestMinOfEmptyPanics(t *testing.T) {
	assert.Panics(t, func() { MinOf([]float32{}) })
	assert.Panics(t, func() { MaxOf([]float64{}) })
}

func TestMinMaxOfInt(t *testing.T) {
	a := []int64{5, -3, 99, 0, -40, 7}
	assert.Equal(t, int64(-40), MinOf(a))
	assert.Equal(t, int64(99), MaxOf(a))
}

func TestTransform(t *testing.T) {
	n := 2*lanes.MaxLanes[float32]() + 3
	in := seqF32(n)
	out := make([]float32, n)

	Transform(in, out,
		func(v lanes.Vec[float32]) lanes.Vec[float32] { return lanes.Mul(v, v) },
		func(x float32) float32 { return x * x },
	)

	for i := range out {
		assert.Equal(t, in[i]*in[i], out[i], "i=%d", i)
	}
}

func TestTransformInPlace(t *testing.T) {
	buf := seqF64(50)
	want := make([]float64, len(buf))
	for i := range buf {
		want[i] = buf[i] + 1
	}

	one := lanes.Set[float64](1)
	Transform(buf, buf,
		func(v lanes.Vec[float64]) lanes.Vec[float64] { return lanes.Add(v, one) },
		func(x float64) float64 { return x + 1 },
	)
	assert.Equal(t, want, buf)
}
