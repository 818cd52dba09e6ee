package lanes

import "testing"

func TestTailMask(t *testing.T) {
	n := MaxLanes[float32]()
	mask := TailMask[float32](2)

	if mask.NumLanes() != n {
		t.Errorf("TailMask: NumLanes = %d, want %d", mask.NumLanes(), n)
	}
	for i := 0; i < n; i++ {
		want := i < 2
		if mask.GetBit(i) != want {
			t.Errorf("TailMask: lane %d: got %v, want %v", i, mask.GetBit(i), want)
		}
	}
}

func TestTailMaskClamped(t *testing.T) {
	n := MaxLanes[float32]()

	if got := TailMask[float32](-1).CountTrue(); got != 0 {
		t.Errorf("TailMask(-1): %d active lanes, want 0", got)
	}
	if got := TailMask[float32](n + 5).CountTrue(); got != n {
		t.Errorf("TailMask(n+5): %d active lanes, want %d", got, n)
	}
}

func TestProcessWithTail(t *testing.T) {
	n := MaxLanes[float32]()
	size := 2*n + 3

	var fullOffsets []int
	var tailOffset, tailCount int

	ProcessWithTail[float32](size,
		func(offset int) {
			fullOffsets = append(fullOffsets, offset)
		},
		func(offset, count int) {
			tailOffset, tailCount = offset, count
		},
	)

	if len(fullOffsets) != 2 {
		t.Fatalf("ProcessWithTail: %d full vectors, want 2", len(fullOffsets))
	}
	if fullOffsets[0] != 0 || fullOffsets[1] != n {
		t.Errorf("ProcessWithTail: full offsets %v, want [0 %d]", fullOffsets, n)
	}
	if tailOffset != 2*n || tailCount != 3 {
		t.Errorf("ProcessWithTail: tail (%d, %d), want (%d, 3)", tailOffset, tailCount, 2*n)
	}
}

func TestProcessWithTailExactMultiple(t *testing.T) {
	n := MaxLanes[float32]()

	tailCalled := false
	ProcessWithTail[float32](2*n,
		func(offset int) {},
		func(offset, count int) { tailCalled = true },
	)

	if tailCalled {
		t.Error("ProcessWithTail: tail called for exact multiple of width")
	}
}

func TestProcessWithTailEmpty(t *testing.T) {
	called := false
	ProcessWithTail[float32](0,
		func(offset int) { called = true },
		func(offset, count int) { called = true },
	)

	if called {
		t.Error("ProcessWithTail: callbacks invoked for size 0")
	}
}

func TestProcessWithTailSmallerThanVector(t *testing.T) {
	var tailOffset, tailCount int
	fullCalled := false

	ProcessWithTail[float32](3,
		func(offset int) { fullCalled = true },
		func(offset, count int) { tailOffset, tailCount = offset, count },
	)

	if MaxLanes[float32]() > 3 {
		if fullCalled {
			t.Error("ProcessWithTail: full path used for sub-vector buffer")
		}
		if tailOffset != 0 || tailCount != 3 {
			t.Errorf("ProcessWithTail: tail (%d, %d), want (0, 3)", tailOffset, tailCount)
		}
	}
}

func TestProcessWithTailNoMaskOverlap(t *testing.T) {
	n := MaxLanes[float32]()
	size := n + 2

	var offsets []int
	ProcessWithTailNoMask[float32](size, func(offset int) {
		offsets = append(offsets, offset)
	})

	if len(offsets) != 2 {
		t.Fatalf("ProcessWithTailNoMask: %d calls, want 2", len(offsets))
	}
	if offsets[0] != 0 || offsets[1] != size-n {
		t.Errorf("ProcessWithTailNoMask: offsets %v, want [0 %d]", offsets, size-n)
	}
}

func TestForEachChunk(t *testing.T) {
	// A length that is not a multiple of the width: both the vector path
	// and the scalar tail must apply the same increment.
	n := MaxLanes[float32]()
	buf := make([]float32, n+3)
	for i := range buf {
		buf[i] = float32(i + 1)
	}

	one := Set[float32](1)
	ForEachChunk(buf,
		func(v Vec[float32]) Vec[float32] { return Add(v, one) },
		func(x float32) float32 { return x + 1 },
	)

	for i := range buf {
		if buf[i] != float32(i+2) {
			t.Errorf("ForEachChunk: element %d: got %v, want %v", i, buf[i], i+2)
		}
	}
}

func TestForEachChunkEmpty(t *testing.T) {
	ForEachChunk(nil,
		func(v Vec[float32]) Vec[float32] { t.Error("vecOp called on empty buffer"); return v },
		func(x float32) float32 { t.Error("scalarOp called on empty buffer"); return x },
	)
}

func TestForEachChunkAligned(t *testing.T) {
	n := MaxLanes[float64]()
	buf := MakeAligned[float64](2*n + 1)
	for i := range buf {
		buf[i] = float64(i)
	}

	two := Set[float64](2)
	ForEachChunkAligned(buf,
		func(v Vec[float64]) Vec[float64] { return Mul(v, two) },
		func(x float64) float64 { return x * 2 },
	)

	for i := range buf {
		if buf[i] != float64(2*i) {
			t.Errorf("ForEachChunkAligned: element %d: got %v, want %v", i, buf[i], 2*i)
		}
	}
}
