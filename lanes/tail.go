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

// Chunk and remainder processing. A buffer of length N is processed as
// floor(N/W) full vectors followed by a scalar tail of N mod W elements,
// in element order, so the chunking is observably transparent: element i
// gets the same result whether it went through the vector path or the
// tail.

// TailMask creates a mask with the first 'count' lanes active. This is
// the mask for the remainder of a buffer whose length is not a multiple
// of the vector width.
//
// Example:
//
//	maxLanes := lanes.MaxLanes[float32]()
//	remaining := len(data) % maxLanes
//	if remaining > 0 {
//	    mask := lanes.TailMask[float32](remaining)
//	    v := lanes.MaskLoad(mask, data[len(data)-remaining:])
//	    // ... process tail
//	    lanes.MaskStore(mask, result, output[len(output)-remaining:])
//	}
func TailMask[T Lanes](count int) Mask[T] {
	maxLanes := MaxLanes[T]()
	if count < 0 {
		count = 0
	}
	if count > maxLanes {
		count = maxLanes
	}

	bits := make([]bool, maxLanes)
	for i := 0; i < count; i++ {
		bits[i] = true
	}
	return Mask[T]{bits: bits}
}

// ProcessWithTail is a helper for processing buffers with SIMD that
// handles both full vectors and the tail (remainder) automatically.
//
// It calls:
//   - fullFn(offset) for each full vector (offset is the starting index)
//   - tailFn(offset, count) once for the tail if size is not a multiple
//     of the vector width
//
// size == 0 performs no work; size < MaxLanes[T]() runs entirely through
// tailFn.
func ProcessWithTail[T Lanes](size int, fullFn func(offset int), tailFn func(offset, count int)) {
	maxLanes := MaxLanes[T]()

	fullVectors := size / maxLanes
	for i := 0; i < fullVectors; i++ {
		fullFn(i * maxLanes)
	}

	remaining := size % maxLanes
	if remaining > 0 {
		tailFn(fullVectors*maxLanes, remaining)
	}
}

// ProcessWithTailNoMask is similar to ProcessWithTail but doesn't require
// a tail function. Instead, it processes an overlapping final vector for
// the tail. This is only valid for idempotent operations on buffers of at
// least one full vector; smaller buffers fall back to a single fullFn(0)
// call and fullFn must then cope with a short slice.
func ProcessWithTailNoMask[T Lanes](size int, fullFn func(offset int)) {
	maxLanes := MaxLanes[T]()

	if size < maxLanes {
		fullFn(0)
		return
	}

	fullVectors := size / maxLanes
	for i := 0; i < fullVectors; i++ {
		fullFn(i * maxLanes)
	}

	if size%maxLanes > 0 {
		// Last full vector overlaps the previous one.
		fullFn(size - maxLanes)
	}
}

// ForEachChunk applies vecOp to each full vector of buf in place and
// scalarOp to the remaining tail elements, in element order. vecOp and
// scalarOp must compute the same per-lane function for the chunking to be
// transparent. buf may have any base alignment.
func ForEachChunk[T Lanes](buf []T, vecOp func(Vec[T]) Vec[T], scalarOp func(T) T) {
	ProcessWithTail[T](len(buf),
		func(offset int) {
			v := Load(buf[offset:])
			Store(vecOp(v), buf[offset:])
		},
		func(offset, count int) {
			for i := offset; i < offset+count; i++ {
				buf[i] = scalarOp(buf[i])
			}
		},
	)
}

// ForEachChunkAligned is ForEachChunk for callers that guarantee the base
// address of buf satisfies AlignOf[T]().
//
// Precondition: buf's base address is vector-aligned (documented contract,
// not verified; see LoadAligned). Use ForEachChunk when unsure.
func ForEachChunkAligned[T Lanes](buf []T, vecOp func(Vec[T]) Vec[T], scalarOp func(T) T) {
	ProcessWithTail[T](len(buf),
		func(offset int) {
			v := LoadAligned(buf[offset:])
			StoreAligned(vecOp(v), buf[offset:])
		},
		func(offset, count int) {
			for i := offset; i < offset+count; i++ {
				buf[i] = scalarOp(buf[i])
			}
		},
	)
}
