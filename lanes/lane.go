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

// Lane access and lane rearrangement. Index arguments are validated before
// any access: an out-of-range lane index is a caller bug and panics
// immediately rather than reading or writing adjacent memory.

// GetLane extracts the lane at idx. It panics if idx is not in
// [0, NumLanes).
func GetLane[T Lanes](v Vec[T], idx int) T {
	if idx < 0 || idx >= len(v.data) {
		panic("lanes: GetLane index out of range")
	}
	return v.data[idx]
}

// InsertLane returns a copy of v with the lane at idx replaced by val.
// It panics if idx is not in [0, NumLanes).
func InsertLane[T Lanes](v Vec[T], idx int, val T) Vec[T] {
	if idx < 0 || idx >= len(v.data) {
		panic("lanes: InsertLane index out of range")
	}
	result := make([]T, len(v.data))
	copy(result, v.data)
	result[idx] = val
	return Vec[T]{data: result}
}

// Broadcast returns a vector with every lane set to v's lane at idx.
// It panics if idx is not in [0, NumLanes).
func Broadcast[T Lanes](v Vec[T], idx int) Vec[T] {
	if idx < 0 || idx >= len(v.data) {
		panic("lanes: Broadcast lane index out of range")
	}
	return Set(v.data[idx])
}

// Reverse returns the lanes of v in reverse order.
func Reverse[T Lanes](v Vec[T]) Vec[T] {
	n := len(v.data)
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = v.data[n-1-i]
	}
	return Vec[T]{data: result}
}

// InterleaveLower interleaves the lower halves of a and b:
// [a0, b0, a1, b1, ...].
func InterleaveLower[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := 0; i < n/2; i++ {
		result[2*i] = a.data[i]
		result[2*i+1] = b.data[i]
	}
	return Vec[T]{data: result}
}

// InterleaveUpper interleaves the upper halves of a and b.
func InterleaveUpper[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	half := n / 2
	for i := 0; i < half; i++ {
		result[2*i] = a.data[half+i]
		result[2*i+1] = b.data[half+i]
	}
	return Vec[T]{data: result}
}
