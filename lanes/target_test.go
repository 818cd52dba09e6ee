package lanes

import "testing"

func TestActiveBackend(t *testing.T) {
	b := Active()
	if b.String() == "unknown" {
		t.Errorf("Active: unknown backend %d", b)
	}
	if Name() != b.String() {
		t.Errorf("Name() = %q, Active().String() = %q; want equal", Name(), b.String())
	}
}

func TestWidth(t *testing.T) {
	w := Width()
	switch w {
	case 16, 32, 64:
	default:
		t.Errorf("Width: got %d, want 16, 32 or 64", w)
	}

	if w%16 != 0 {
		t.Errorf("Width %d is not a multiple of 16", w)
	}
}

func TestMaxLanes(t *testing.T) {
	w := Width()

	tests := []struct {
		name string
		got  int
		want int
	}{
		{"float32", MaxLanes[float32](), w / 4},
		{"float64", MaxLanes[float64](), w / 8},
		{"int8", MaxLanes[int8](), w},
		{"int16", MaxLanes[int16](), w / 2},
		{"int32", MaxLanes[int32](), w / 4},
		{"int64", MaxLanes[int64](), w / 8},
		{"uint8", MaxLanes[uint8](), w},
		{"uint64", MaxLanes[uint64](), w / 8},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("MaxLanes[%s]: got %d, want %d", tt.name, tt.got, tt.want)
		}
	}
}

func TestMaxLanesPowerOfTwo(t *testing.T) {
	n := MaxLanes[float32]()
	if n&(n-1) != 0 {
		t.Errorf("MaxLanes[float32] = %d, not a power of two", n)
	}
}

func TestBackendStrings(t *testing.T) {
	tests := []struct {
		b    Backend
		want string
	}{
		{BackendScalar, "scalar"},
		{BackendAVX2, "avx2"},
		{BackendAVX512, "avx512"},
		{BackendNEON, "neon"},
		{BackendSIMD128, "simd128"},
		{Backend(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.b.String(); got != tt.want {
			t.Errorf("Backend(%d).String(): got %q, want %q", tt.b, got, tt.want)
		}
	}
}
