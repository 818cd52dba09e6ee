package lanes

import "unsafe"

// This file provides the memory-access surface beyond plain Load/Store:
// masked and blended access for tails, interleaved (AoS <-> SoA) access,
// and the trusting variants whose preconditions are a caller contract.

// MaskLoad loads lanes from src where mask is true, leaving other lanes
// zero. Unlike Load it accepts slices shorter than the vector width, as
// long as every active mask lane is backed by an element; this is the safe
// path for buffer tails.
func MaskLoad[T Lanes](mask Mask[T], src []T) Vec[T] {
	data := make([]T, len(mask.bits))
	for i, bit := range mask.bits {
		if bit {
			if i >= len(src) {
				panic("lanes: MaskLoad active lane beyond source length")
			}
			data[i] = src[i]
		}
	}
	return Vec[T]{data: data}
}

// MaskStore writes lanes of v to dst where mask is true. Inactive lanes of
// dst are left untouched. Like MaskLoad it accepts short slices as long as
// every active lane is in range.
func MaskStore[T Lanes](mask Mask[T], v Vec[T], dst []T) {
	n := min(len(mask.bits), len(v.data))
	for i := 0; i < n; i++ {
		if mask.bits[i] {
			if i >= len(dst) {
				panic("lanes: MaskStore active lane beyond destination length")
			}
			dst[i] = v.data[i]
		}
	}
}

// BlendedStore stores elements from v to dst only where mask is true,
// explicitly preserving existing values in dst where mask is false. It is
// the lenient sibling of MaskStore: lanes beyond len(dst) are dropped.
func BlendedStore[T Lanes](v Vec[T], mask Mask[T], dst []T) {
	n := min(len(dst), min(len(mask.bits), len(v.data)))
	for i := 0; i < n; i++ {
		if mask.bits[i] {
			dst[i] = v.data[i]
		}
	}
}

// LoadAligned loads a full vector from src.
//
// Precondition: the base address of src must be a multiple of AlignOf[T]().
// This is a documented caller contract and is NOT verified here; checking
// it per call would defeat the purpose of the aligned path. Callers that
// cannot guarantee alignment must use Load, which accepts any address.
// CheckAligned is available for validation outside hot paths.
//
// The slice length is still checked: LoadAligned panics if src is shorter
// than the vector width.
func LoadAligned[T Lanes](src []T) Vec[T] {
	n := MaxLanes[T]()
	if len(src) < n {
		panic("lanes: LoadAligned source shorter than vector width")
	}
	return LoadUnchecked(src)
}

// StoreAligned writes all lanes of v to dst.
//
// Precondition: the base address of dst must be a multiple of AlignOf[T]()
// (documented contract, not verified; see LoadAligned). The length is
// checked.
func StoreAligned[T Lanes](v Vec[T], dst []T) {
	if len(dst) < len(v.data) {
		panic("lanes: StoreAligned destination shorter than vector width")
	}
	StoreUnchecked(v, dst)
}

// LoadUnchecked loads a full vector from src without any length check.
//
// Precondition: src's backing array must hold at least MaxLanes[T]()
// elements from its base, regardless of len(src). Violating this reads out
// of bounds. This is the trusting fast path; prefer Load.
func LoadUnchecked[T Lanes](src []T) Vec[T] {
	n := MaxLanes[T]()
	data := make([]T, n)
	copy(data, unsafe.Slice(unsafe.SliceData(src), n))
	return Vec[T]{data: data}
}

// StoreUnchecked writes all lanes of v to dst without any length check.
//
// Precondition: dst's backing array must hold at least NumLanes elements
// from its base. Violating this writes out of bounds. Prefer Store.
func StoreUnchecked[T Lanes](v Vec[T], dst []T) {
	copy(unsafe.Slice(unsafe.SliceData(dst), len(v.data)), v.data)
}

// LoadInterleaved2 loads interleaved pairs and deinterleaves into two
// vectors. This converts Array-of-Structures (AoS) format to
// Structure-of-Arrays (SoA).
//
// Input memory layout (interleaved pairs):
//
//	[a0, b0, a1, b1, a2, b2, a3, b3, ...]
//
// Output vectors:
//
//	vec_a = [a0, a1, a2, a3, ...]
//	vec_b = [b0, b1, b2, b3, ...]
//
// This is useful for processing 2D coordinates, split-format complex
// numbers, or any paired data stored interleaved. Lanes without a full
// source pair are left zero.
func LoadInterleaved2[T Lanes](src []T) (Vec[T], Vec[T]) {
	n := MaxLanes[T]()
	a := make([]T, n)
	b := make([]T, n)

	srcIdx := 0
	for i := 0; i < n && srcIdx+1 < len(src); i++ {
		a[i] = src[srcIdx]
		b[i] = src[srcIdx+1]
		srcIdx += 2
	}

	return Vec[T]{data: a}, Vec[T]{data: b}
}

// LoadInterleaved3 loads interleaved triples and deinterleaves into three
// vectors (AoS to SoA), e.g. RGB colors or XYZ coordinates.
func LoadInterleaved3[T Lanes](src []T) (Vec[T], Vec[T], Vec[T]) {
	n := MaxLanes[T]()
	a := make([]T, n)
	b := make([]T, n)
	c := make([]T, n)

	srcIdx := 0
	for i := 0; i < n && srcIdx+2 < len(src); i++ {
		a[i] = src[srcIdx]
		b[i] = src[srcIdx+1]
		c[i] = src[srcIdx+2]
		srcIdx += 3
	}

	return Vec[T]{data: a}, Vec[T]{data: b}, Vec[T]{data: c}
}

// LoadInterleaved4 loads interleaved quads and deinterleaves into four
// vectors (AoS to SoA), e.g. RGBA colors or quaternions.
func LoadInterleaved4[T Lanes](src []T) (Vec[T], Vec[T], Vec[T], Vec[T]) {
	n := MaxLanes[T]()
	a := make([]T, n)
	b := make([]T, n)
	c := make([]T, n)
	d := make([]T, n)

	srcIdx := 0
	for i := 0; i < n && srcIdx+3 < len(src); i++ {
		a[i] = src[srcIdx]
		b[i] = src[srcIdx+1]
		c[i] = src[srcIdx+2]
		d[i] = src[srcIdx+3]
		srcIdx += 4
	}

	return Vec[T]{data: a}, Vec[T]{data: b}, Vec[T]{data: c}, Vec[T]{data: d}
}

// StoreInterleaved2 stores two vectors interleaved to dst (SoA to AoS).
// It is the inverse of LoadInterleaved2; pairs without room in dst are
// dropped.
func StoreInterleaved2[T Lanes](a, b Vec[T], dst []T) {
	n := min(len(b.data), len(a.data))

	dstIdx := 0
	for i := 0; i < n && dstIdx+1 < len(dst); i++ {
		dst[dstIdx] = a.data[i]
		dst[dstIdx+1] = b.data[i]
		dstIdx += 2
	}
}

// StoreInterleaved3 stores three vectors interleaved to dst (SoA to AoS).
// It is the inverse of LoadInterleaved3.
func StoreInterleaved3[T Lanes](a, b, c Vec[T], dst []T) {
	n := min(len(c.data), min(len(b.data), len(a.data)))

	dstIdx := 0
	for i := 0; i < n && dstIdx+2 < len(dst); i++ {
		dst[dstIdx] = a.data[i]
		dst[dstIdx+1] = b.data[i]
		dst[dstIdx+2] = c.data[i]
		dstIdx += 3
	}
}

// StoreInterleaved4 stores four vectors interleaved to dst (SoA to AoS).
// It is the inverse of LoadInterleaved4.
func StoreInterleaved4[T Lanes](a, b, c, d Vec[T], dst []T) {
	n := min(len(d.data), min(len(c.data), min(len(b.data), len(a.data))))

	dstIdx := 0
	for i := 0; i < n && dstIdx+3 < len(dst); i++ {
		dst[dstIdx] = a.data[i]
		dst[dstIdx+1] = b.data[i]
		dst[dstIdx+2] = c.data[i]
		dst[dstIdx+3] = d.data[i]
		dstIdx += 4
	}
}
