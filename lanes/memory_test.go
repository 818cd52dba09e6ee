package lanes

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMaskLoad(t *testing.T) {
	n := MaxLanes[float32]()
	src := make([]float32, n)
	for i := range src {
		src[i] = float32(i + 1)
	}

	mask := TailMask[float32](2)
	v := MaskLoad(mask, src)

	for i := 0; i < v.NumLanes(); i++ {
		want := float32(0)
		if i < 2 {
			want = src[i]
		}
		if v.data[i] != want {
			t.Errorf("MaskLoad: lane %d: got %v, want %v", i, v.data[i], want)
		}
	}
}

func TestMaskLoadShortSlice(t *testing.T) {
	// A short source is fine as long as every active lane is backed.
	mask := TailMask[float32](2)
	v := MaskLoad(mask, []float32{10, 20})

	if v.data[0] != 10 || v.data[1] != 20 {
		t.Errorf("MaskLoad: got %v, %v, want 10, 20", v.data[0], v.data[1])
	}
}

func TestMaskLoadActiveLaneOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MaskLoad with unbacked active lane did not panic")
		}
	}()
	mask := TailMask[float32](2)
	MaskLoad(mask, []float32{1})
}

func TestMaskStore(t *testing.T) {
	n := MaxLanes[int32]()
	dst := make([]int32, n)
	for i := range dst {
		dst[i] = -1
	}

	v := Set[int32](5)
	mask := TailMask[int32](1)
	MaskStore(mask, v, dst)

	if dst[0] != 5 {
		t.Errorf("MaskStore: element 0: got %v, want 5", dst[0])
	}
	for i := 1; i < n; i++ {
		if dst[i] != -1 {
			t.Errorf("MaskStore: inactive element %d overwritten: got %v", i, dst[i])
		}
	}
}

func TestMaskStoreActiveLaneOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MaskStore with unbacked active lane did not panic")
		}
	}()
	mask := TailMask[int32](2)
	MaskStore(mask, Set[int32](5), make([]int32, 1))
}

func TestBlendedStore(t *testing.T) {
	n := MaxLanes[int32]()
	dst := make([]int32, n)
	for i := range dst {
		dst[i] = 100
	}

	v := Iota[int32]()
	mask := GreaterEqual(v, Set[int32](2))
	BlendedStore(v, mask, dst)

	for i := 0; i < n; i++ {
		want := int32(100)
		if i >= 2 {
			want = int32(i)
		}
		if dst[i] != want {
			t.Errorf("BlendedStore: element %d: got %v, want %v", i, dst[i], want)
		}
	}
}

func TestLoadAlignedShortPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("LoadAligned on a short slice did not panic")
		}
	}()
	LoadAligned(make([]float32, MaxLanes[float32]()-1))
}

func TestLoadAlignedRoundTrip(t *testing.T) {
	n := MaxLanes[float64]()
	buf := MakeAligned[float64](n)
	for i := range buf {
		buf[i] = float64(i) * 1.5
	}

	v := LoadAligned(buf)
	out := MakeAligned[float64](n)
	StoreAligned(v, out)

	if diff := cmp.Diff(buf, out); diff != "" {
		t.Errorf("aligned round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadUnchecked(t *testing.T) {
	// A short slice header over a sufficiently large backing array is the
	// exact case LoadUnchecked exists for.
	n := MaxLanes[int32]()
	backing := make([]int32, n)
	for i := range backing {
		backing[i] = int32(i + 1)
	}

	v := LoadUnchecked(backing[:1])
	for i := 0; i < v.NumLanes(); i++ {
		if v.data[i] != backing[i] {
			t.Errorf("LoadUnchecked: lane %d: got %v, want %v", i, v.data[i], backing[i])
		}
	}
}

func TestStoreUnchecked(t *testing.T) {
	n := MaxLanes[int32]()
	backing := make([]int32, n)

	StoreUnchecked(Set[int32](7), backing[:1])
	for i := range backing {
		if backing[i] != 7 {
			t.Errorf("StoreUnchecked: element %d: got %v, want 7", i, backing[i])
		}
	}
}

func TestLoadInterleaved2(t *testing.T) {
	n := MaxLanes[float32]()
	src := make([]float32, 2*n)
	for i := 0; i < n; i++ {
		src[2*i] = float32(i)        // a values
		src[2*i+1] = float32(i) + 50 // b values
	}

	a, b := LoadInterleaved2(src)
	for i := 0; i < n; i++ {
		if a.data[i] != float32(i) {
			t.Errorf("LoadInterleaved2: a lane %d: got %v, want %v", i, a.data[i], i)
		}
		if b.data[i] != float32(i)+50 {
			t.Errorf("LoadInterleaved2: b lane %d: got %v, want %v", i, b.data[i], float32(i)+50)
		}
	}
}

func TestStoreInterleaved2RoundTrip(t *testing.T) {
	n := MaxLanes[float32]()
	src := make([]float32, 2*n)
	for i := range src {
		src[i] = float32(i) * 0.5
	}

	a, b := LoadInterleaved2(src)
	out := make([]float32, 2*n)
	StoreInterleaved2(a, b, out)

	if diff := cmp.Diff(src, out); diff != "" {
		t.Errorf("interleave2 round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestInterleaved3RoundTrip(t *testing.T) {
	n := MaxLanes[uint8]()
	src := make([]uint8, 3*n)
	for i := range src {
		src[i] = uint8(i)
	}

	r, g, b := LoadInterleaved3(src)
	out := make([]uint8, 3*n)
	StoreInterleaved3(r, g, b, out)

	if diff := cmp.Diff(src, out); diff != "" {
		t.Errorf("interleave3 round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestInterleaved4RoundTrip(t *testing.T) {
	n := MaxLanes[uint8]()
	src := make([]uint8, 4*n)
	for i := range src {
		src[i] = uint8(i * 3)
	}

	r, g, b, a := LoadInterleaved4(src)
	out := make([]uint8, 4*n)
	StoreInterleaved4(r, g, b, a, out)

	if diff := cmp.Diff(src, out); diff != "" {
		t.Errorf("interleave4 round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadInterleaved2PartialZeroFill(t *testing.T) {
	// Fewer pairs than lanes: remaining lanes stay zero.
	a, b := LoadInterleaved2([]float32{1, 2})

	if a.data[0] != 1 || b.data[0] != 2 {
		t.Errorf("LoadInterleaved2: pair 0: got %v, %v, want 1, 2", a.data[0], b.data[0])
	}
	for i := 1; i < a.NumLanes(); i++ {
		if a.data[i] != 0 || b.data[i] != 0 {
			t.Errorf("LoadInterleaved2: lane %d not zero: %v, %v", i, a.data[i], b.data[i])
		}
	}
}
