// Package lanes provides portable SIMD vector operations with compile-time
// backend selection.
//
// Code is written once against a width-generic vector abstraction and
// compiled to the native instruction set of the target. The backend (scalar fallback, x86 AVX2/AVX-512, ARM NEON,
// WASM SIMD128) is fixed at build time by GOARCH, GOEXPERIMENT and build
// tags; there is no runtime feature detection and no per-call dispatch.
//
// Basic usage:
//
//	import "github.com/gosimd/go-lanes/lanes"
//
//	// Load data into vectors
//	a := lanes.Load(data1)
//	b := lanes.Load(data2)
//
//	// Perform SIMD operations
//	result := lanes.Add(a, b)
//
//	// Store results
//	lanes.Store(result, output)
package lanes

// Floats is a constraint for floating-point lane types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer lane types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer lane types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer lane types.
type Integers interface {
	SignedInts | UnsignedInts
}

// SignedLanes is a constraint for lane types with a meaningful negation.
type SignedLanes interface {
	Floats | SignedInts
}

// Lanes is a constraint for all types that can be stored in SIMD lanes.
type Lanes interface {
	Floats | Integers
}

// Vec is a portable fixed-width vector value. Its width (lane count) is
// MaxLanes[T]() for the compiled backend and never changes after
// construction. Vec values have value semantics: copying one duplicates all
// lanes, and no two Vec values share mutable state.
//
// Vec instances should not be created directly; use Load, Set, or Zero
// instead.
type Vec[T Lanes] struct {
	// data holds the vector lanes. Its length is always the backend
	// vector width for T.
	data []T
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Data returns the underlying slice representation of the vector.
// This is primarily for testing and should not be used in
// performance-critical code.
func (v Vec[T]) Data() []T {
	return v.data
}

// Store writes the vector's lanes to dst. This is the method form of the
// lanes.Store function and has the same bounds contract: dst must hold at
// least NumLanes elements.
func (v Vec[T]) Store(dst []T) {
	Store(v, dst)
}

// Mask represents the result of a comparison operation. It can be used with
// IfThenElse, MaskLoad, and MaskStore to perform conditional operations.
//
// Mask instances should not be created directly; use comparison operations
// like Equal, LessThan, or GreaterThan, or TailMask, instead.
type Mask[T Lanes] struct {
	// bits stores which lanes are active (true).
	bits []bool
}

// NumLanes returns the number of lanes in this mask.
func (m Mask[T]) NumLanes() int {
	return len(m.bits)
}

// AllTrue returns true if all lanes in the mask are active.
func (m Mask[T]) AllTrue() bool {
	for _, bit := range m.bits {
		if !bit {
			return false
		}
	}
	return true
}

// AnyTrue returns true if at least one lane in the mask is active.
func (m Mask[T]) AnyTrue() bool {
	for _, bit := range m.bits {
		if bit {
			return true
		}
	}
	return false
}

// CountTrue returns the number of active lanes in the mask.
func (m Mask[T]) CountTrue() int {
	count := 0
	for _, bit := range m.bits {
		if bit {
			count++
		}
	}
	return count
}

// GetBit returns whether lane i is active. Out-of-range indices report
// false, so a tail mask can be queried for the full vector width.
func (m Mask[T]) GetBit(i int) bool {
	if i < 0 || i >= len(m.bits) {
		return false
	}
	return m.bits[i]
}
