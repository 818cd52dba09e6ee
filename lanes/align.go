// Copyright 2025 go-lanes Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lanes

import "unsafe"

// Alignment queries and aligned allocation. The aligned load/store
// variants trust their address precondition (see LoadAligned); the
// helpers here are how callers establish or verify that precondition
// outside hot paths.

// AlignOf returns the natural alignment in bytes required by the aligned
// access operations for vectors of T: the compiled backend's vector width.
func AlignOf[T Lanes]() int {
	return vectorBytes
}

// IsAddrAligned reports whether the base address of s satisfies the
// vector alignment for T. An empty slice is reported as aligned.
func IsAddrAligned[T Lanes](s []T) bool {
	if len(s) == 0 {
		return true
	}
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(s)))
	return addr%uintptr(vectorBytes) == 0
}

// CheckAligned panics if the base address of s does not satisfy the
// vector alignment for T. Intended for debug assertions at API
// boundaries, not for hot paths.
func CheckAligned[T Lanes](s []T) {
	if !IsAddrAligned(s) {
		panic("lanes: slice base address does not satisfy vector alignment")
	}
}

// MakeAligned allocates a slice of n elements of T whose base address is
// aligned to AlignOf[T](). The returned slice is owned by the caller and
// is safe for the aligned load/store variants at offsets that are
// multiples of MaxLanes[T]().
func MakeAligned[T Lanes](n int) []T {
	if n == 0 {
		return nil
	}
	var dummy T
	elemSize := int(unsafe.Sizeof(dummy))
	pad := vectorBytes / elemSize

	// Over-allocate by one vector and slide the base forward to the next
	// alignment boundary. The Go allocator aligns large blocks anyway;
	// this makes it a guarantee instead of an accident.
	buf := make([]T, n+pad)
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
	offBytes := addr % uintptr(vectorBytes)
	if offBytes == 0 {
		return buf[:n:n]
	}
	skip := (vectorBytes - int(offBytes)) / elemSize
	return buf[skip : skip+n : skip+n]
}

// AlignedSize rounds up size to the next multiple of the vector lane
// count for T. This is useful for sizing buffers that will be processed
// in whole vectors without a tail.
func AlignedSize[T Lanes](size int) int {
	maxLanes := MaxLanes[T]()
	return ((size + maxLanes - 1) / maxLanes) * maxLanes
}

// IsAligned reports whether size is a multiple of the vector lane count
// for T.
func IsAligned[T Lanes](size int) bool {
	return size%MaxLanes[T]() == 0
}
