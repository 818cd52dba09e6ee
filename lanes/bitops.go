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

import "math/bits"

// Bit manipulation operations. These are the integer-lane capability set:
// float-lane vectors do not expose bitwise or shift operations, so passing
// a float type parameter fails to compile.

// And performs element-wise bitwise AND.
func And[T Integers](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = a.data[i] & b.data[i]
	}
	return Vec[T]{data: result}
}

// Or performs element-wise bitwise OR.
func Or[T Integers](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = a.data[i] | b.data[i]
	}
	return Vec[T]{data: result}
}

// Xor performs element-wise bitwise XOR.
func Xor[T Integers](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = a.data[i] ^ b.data[i]
	}
	return Vec[T]{data: result}
}

// Not performs element-wise bitwise complement.
func Not[T Integers](v Vec[T]) Vec[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		result[i] = ^x
	}
	return Vec[T]{data: result}
}

// AndNot computes a &^ b per lane (a AND NOT b).
func AndNot[T Integers](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = a.data[i] &^ b.data[i]
	}
	return Vec[T]{data: result}
}

// ShiftLeft shifts each lane left by the given bit count.
func ShiftLeft[T Integers](v Vec[T], count int) Vec[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		result[i] = x << count
	}
	return Vec[T]{data: result}
}

// ShiftRight shifts each lane right by the given bit count. Signed lane
// types shift arithmetically, unsigned logically, per Go's semantics.
func ShiftRight[T Integers](v Vec[T], count int) Vec[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		result[i] = x >> count
	}
	return Vec[T]{data: result}
}

// PopCount counts set bits in each lane.
func PopCount[T Integers](v Vec[T]) Vec[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		result[i] = T(bits.OnesCount64(toUint64(x)))
	}
	return Vec[T]{data: result}
}

// toUint64 widens a lane to uint64 without sign extension beyond the
// lane's own bits, so PopCount of a negative int8 counts 8 bits, not 64.
func toUint64[T Integers](x T) uint64 {
	switch v := any(x).(type) {
	case int8:
		return uint64(uint8(v))
	case int16:
		return uint64(uint16(v))
	case int32:
		return uint64(uint32(v))
	case int64:
		return uint64(v)
	case uint8:
		return uint64(v)
	case uint16:
		return uint64(v)
	case uint32:
		return uint64(v)
	case uint64:
		return v
	default:
		return uint64(x)
	}
}
