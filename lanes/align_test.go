package lanes

import (
	"testing"
	"unsafe"
)

func TestAlignOf(t *testing.T) {
	if got := AlignOf[float32](); got != Width() {
		t.Errorf("AlignOf[float32]: got %d, want %d", got, Width())
	}
	if got := AlignOf[uint8](); got != Width() {
		t.Errorf("AlignOf[uint8]: got %d, want %d", got, Width())
	}
}

func TestMakeAligned(t *testing.T) {
	for _, n := range []int{1, 7, 64, 1000} {
		buf := MakeAligned[float32](n)
		if len(buf) != n {
			t.Errorf("MakeAligned(%d): len = %d", n, len(buf))
		}
		if !IsAddrAligned(buf) {
			addr := uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
			t.Errorf("MakeAligned(%d): base address %#x not %d-byte aligned", n, addr, Width())
		}
	}
}

func TestMakeAlignedZero(t *testing.T) {
	if buf := MakeAligned[float32](0); buf != nil {
		t.Errorf("MakeAligned(0): got %v, want nil", buf)
	}
}

func TestMakeAlignedCapacityCapped(t *testing.T) {
	// The padding must not leak into capacity, or append would scribble
	// over it and a reallocation would silently lose alignment.
	buf := MakeAligned[float64](10)
	if cap(buf) != 10 {
		t.Errorf("MakeAligned(10): cap = %d, want 10", cap(buf))
	}
}

func TestIsAddrAlignedEmpty(t *testing.T) {
	if !IsAddrAligned[float32](nil) {
		t.Error("IsAddrAligned(nil): got false, want true")
	}
}

func TestCheckAligned(t *testing.T) {
	buf := MakeAligned[float32](16)
	CheckAligned(buf) // must not panic

	defer func() {
		if recover() == nil {
			t.Error("CheckAligned on a misaligned slice did not panic")
		}
	}()
	// Offsetting by one element from an aligned base is misaligned for
	// every backend: the narrowest vector is 16 bytes.
	CheckAligned(buf[1:])
}

func TestAlignedSize(t *testing.T) {
	n := MaxLanes[float32]()

	tests := []struct {
		size, want int
	}{
		{0, 0},
		{1, n},
		{n, n},
		{n + 1, 2 * n},
		{3 * n, 3 * n},
	}
	for _, tt := range tests {
		if got := AlignedSize[float32](tt.size); got != tt.want {
			t.Errorf("AlignedSize(%d): got %d, want %d", tt.size, got, tt.want)
		}
	}
}

func TestIsAligned(t *testing.T) {
	n := MaxLanes[float32]()

	if !IsAligned[float32](0) {
		t.Error("IsAligned(0): got false, want true")
	}
	if !IsAligned[float32](2 * n) {
		t.Errorf("IsAligned(%d): got false, want true", 2*n)
	}
	if IsAligned[float32](n + 1) {
		t.Errorf("IsAligned(%d): got true, want false", n+1)
	}
}
