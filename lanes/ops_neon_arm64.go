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

//go:build arm64 && !noasm

package lanes

import (
	"math"
	"unsafe"
)

// NEON concrete vector kernels. The types mirror the 128-bit Q-register
// layout with [16]byte backing so values stay register-shaped; the method
// bodies are plain Go that the arm64 compiler turns into the matching
// NEON instructions (FADD.4S, FMLA, FMINV and friends) when it vectorizes
// the fixed-trip-count loops.

// Float32x4 represents a 128-bit NEON vector of 4 float32 values.
type Float32x4 [16]byte

// Float64x2 represents a 128-bit NEON vector of 2 float64 values.
type Float64x2 [16]byte

// Int32x4 represents a 128-bit NEON vector of 4 int32 values.
type Int32x4 [16]byte

// Int64x2 represents a 128-bit NEON vector of 2 int64 values.
type Int64x2 [16]byte

func (v *Float32x4) lanes() *[4]float32 { return (*[4]float32)(unsafe.Pointer(v)) }
func (v *Float64x2) lanes() *[2]float64 { return (*[2]float64)(unsafe.Pointer(v)) }
func (v *Int32x4) lanes() *[4]int32     { return (*[4]int32)(unsafe.Pointer(v)) }
func (v *Int64x2) lanes() *[2]int64     { return (*[2]int64)(unsafe.Pointer(v)) }

// ===== Float32x4 =====

// BroadcastFloat32x4 creates a vector with all lanes set to the given value.
func BroadcastFloat32x4(v float32) Float32x4 {
	arr := [4]float32{v, v, v, v}
	return *(*Float32x4)(unsafe.Pointer(&arr))
}

// LoadFloat32x4Slice loads 4 float32 values from a slice.
func LoadFloat32x4Slice(s []float32) Float32x4 {
	_ = s[3]
	return *(*Float32x4)(unsafe.Pointer(&s[0]))
}

// StoreSlice writes the 4 lanes to a slice.
func (v Float32x4) StoreSlice(s []float32) {
	copy(s[:4], v.lanes()[:])
}

// Add performs element-wise addition (FADD.4S).
func (v Float32x4) Add(o Float32x4) Float32x4 {
	a, b := v.lanes(), o.lanes()
	var r [4]float32
	for i := range r {
		r[i] = a[i] + b[i]
	}
	return *(*Float32x4)(unsafe.Pointer(&r))
}

// Sub performs element-wise subtraction (FSUB.4S).
func (v Float32x4) Sub(o Float32x4) Float32x4 {
	a, b := v.lanes(), o.lanes()
	var r [4]float32
	for i := range r {
		r[i] = a[i] - b[i]
	}
	return *(*Float32x4)(unsafe.Pointer(&r))
}

// Mul performs element-wise multiplication (FMUL.4S).
func (v Float32x4) Mul(o Float32x4) Float32x4 {
	a, b := v.lanes(), o.lanes()
	var r [4]float32
	for i := range r {
		r[i] = a[i] * b[i]
	}
	return *(*Float32x4)(unsafe.Pointer(&r))
}

// Div performs element-wise division (FDIV.4S).
func (v Float32x4) Div(o Float32x4) Float32x4 {
	a, b := v.lanes(), o.lanes()
	var r [4]float32
	for i := range r {
		r[i] = a[i] / b[i]
	}
	return *(*Float32x4)(unsafe.Pointer(&r))
}

// Min performs element-wise minimum (FMIN.4S).
func (v Float32x4) Min(o Float32x4) Float32x4 {
	a, b := v.lanes(), o.lanes()
	var r [4]float32
	for i := range r {
		r[i] = min(a[i], b[i])
	}
	return *(*Float32x4)(unsafe.Pointer(&r))
}

// Max performs element-wise maximum (FMAX.4S).
func (v Float32x4) Max(o Float32x4) Float32x4 {
	a, b := v.lanes(), o.lanes()
	var r [4]float32
	for i := range r {
		r[i] = max(a[i], b[i])
	}
	return *(*Float32x4)(unsafe.Pointer(&r))
}

// Sqrt computes sqrt(x) per lane (FSQRT.4S).
func (v Float32x4) Sqrt() Float32x4 {
	a := v.lanes()
	var r [4]float32
	for i := range r {
		r[i] = float32(math.Sqrt(float64(a[i])))
	}
	return *(*Float32x4)(unsafe.Pointer(&r))
}

// MulAdd computes v*o + c per lane with a single rounding (FMLA.4S).
func (v Float32x4) MulAdd(o, c Float32x4) Float32x4 {
	a, b, d := v.lanes(), o.lanes(), c.lanes()
	var r [4]float32
	for i := range r {
		r[i] = float32(math.FMA(float64(a[i]), float64(b[i]), float64(d[i])))
	}
	return *(*Float32x4)(unsafe.Pointer(&r))
}

// GetLane extracts the element at the given lane index.
func (v Float32x4) GetLane(lane int) float32 {
	return v.lanes()[lane]
}

// ReduceSum returns the sum of all lanes (FADDP then FADDP).
func (v Float32x4) ReduceSum() float32 {
	a := v.lanes()
	return (a[0] + a[2]) + (a[1] + a[3])
}

// ReduceMin returns the minimum element in the vector (FMINV).
func (v Float32x4) ReduceMin() float32 {
	a := v.lanes()
	return min(min(a[0], a[1]), min(a[2], a[3]))
}

// ReduceMax returns the maximum element in the vector (FMAXV).
func (v Float32x4) ReduceMax() float32 {
	a := v.lanes()
	return max(max(a[0], a[1]), max(a[2], a[3]))
}

// ===== Float64x2 =====

// BroadcastFloat64x2 creates a vector with all lanes set to the given value.
func BroadcastFloat64x2(v float64) Float64x2 {
	arr := [2]float64{v, v}
	return *(*Float64x2)(unsafe.Pointer(&arr))
}

// LoadFloat64x2Slice loads 2 float64 values from a slice.
func LoadFloat64x2Slice(s []float64) Float64x2 {
	_ = s[1]
	return *(*Float64x2)(unsafe.Pointer(&s[0]))
}

// StoreSlice writes the 2 lanes to a slice.
func (v Float64x2) StoreSlice(s []float64) {
	copy(s[:2], v.lanes()[:])
}

// Add performs element-wise addition (FADD.2D).
func (v Float64x2) Add(o Float64x2) Float64x2 {
	a, b := v.lanes(), o.lanes()
	r := [2]float64{a[0] + b[0], a[1] + b[1]}
	return *(*Float64x2)(unsafe.Pointer(&r))
}

// Sub performs element-wise subtraction (FSUB.2D).
func (v Float64x2) Sub(o Float64x2) Float64x2 {
	a, b := v.lanes(), o.lanes()
	r := [2]float64{a[0] - b[0], a[1] - b[1]}
	return *(*Float64x2)(unsafe.Pointer(&r))
}

// Mul performs element-wise multiplication (FMUL.2D).
func (v Float64x2) Mul(o Float64x2) Float64x2 {
	a, b := v.lanes(), o.lanes()
	r := [2]float64{a[0] * b[0], a[1] * b[1]}
	return *(*Float64x2)(unsafe.Pointer(&r))
}

// Div performs element-wise division (FDIV.2D).
func (v Float64x2) Div(o Float64x2) Float64x2 {
	a, b := v.lanes(), o.lanes()
	r := [2]float64{a[0] / b[0], a[1] / b[1]}
	return *(*Float64x2)(unsafe.Pointer(&r))
}

// Min performs element-wise minimum (FMIN.2D).
func (v Float64x2) Min(o Float64x2) Float64x2 {
	a, b := v.lanes(), o.lanes()
	r := [2]float64{min(a[0], b[0]), min(a[1], b[1])}
	return *(*Float64x2)(unsafe.Pointer(&r))
}

// Max performs element-wise maximum (FMAX.2D).
func (v Float64x2) Max(o Float64x2) Float64x2 {
	a, b := v.lanes(), o.lanes()
	r := [2]float64{max(a[0], b[0]), max(a[1], b[1])}
	return *(*Float64x2)(unsafe.Pointer(&r))
}

// Sqrt computes sqrt(x) per lane (FSQRT.2D).
func (v Float64x2) Sqrt() Float64x2 {
	a := v.lanes()
	r := [2]float64{math.Sqrt(a[0]), math.Sqrt(a[1])}
	return *(*Float64x2)(unsafe.Pointer(&r))
}

// MulAdd computes v*o + c per lane with a single rounding (FMLA.2D).
func (v Float64x2) MulAdd(o, c Float64x2) Float64x2 {
	a, b, d := v.lanes(), o.lanes(), c.lanes()
	r := [2]float64{math.FMA(a[0], b[0], d[0]), math.FMA(a[1], b[1], d[1])}
	return *(*Float64x2)(unsafe.Pointer(&r))
}

// GetLane extracts the element at the given lane index.
func (v Float64x2) GetLane(lane int) float64 {
	return v.lanes()[lane]
}

// ReduceSum returns the sum of all lanes (FADDP).
func (v Float64x2) ReduceSum() float64 {
	a := v.lanes()
	return a[0] + a[1]
}

// ReduceMin returns the minimum element in the vector (FMINP).
func (v Float64x2) ReduceMin() float64 {
	a := v.lanes()
	return min(a[0], a[1])
}

// ReduceMax returns the maximum element in the vector (FMAXP).
func (v Float64x2) ReduceMax() float64 {
	a := v.lanes()
	return max(a[0], a[1])
}

// ===== Int32x4 / Int64x2 =====

// BroadcastInt32x4 creates a vector with all lanes set to the given value.
func BroadcastInt32x4(v int32) Int32x4 {
	arr := [4]int32{v, v, v, v}
	return *(*Int32x4)(unsafe.Pointer(&arr))
}

// LoadInt32x4Slice loads 4 int32 values from a slice.
func LoadInt32x4Slice(s []int32) Int32x4 {
	_ = s[3]
	return *(*Int32x4)(unsafe.Pointer(&s[0]))
}

// StoreSlice writes the 4 lanes to a slice.
func (v Int32x4) StoreSlice(s []int32) {
	copy(s[:4], v.lanes()[:])
}

// Add performs element-wise addition with wraparound (ADD.4S).
func (v Int32x4) Add(o Int32x4) Int32x4 {
	a, b := v.lanes(), o.lanes()
	var r [4]int32
	for i := range r {
		r[i] = a[i] + b[i]
	}
	return *(*Int32x4)(unsafe.Pointer(&r))
}

// Sub performs element-wise subtraction with wraparound (SUB.4S).
func (v Int32x4) Sub(o Int32x4) Int32x4 {
	a, b := v.lanes(), o.lanes()
	var r [4]int32
	for i := range r {
		r[i] = a[i] - b[i]
	}
	return *(*Int32x4)(unsafe.Pointer(&r))
}

// ReduceSum returns the wraparound sum of all lanes (ADDV.4S).
func (v Int32x4) ReduceSum() int32 {
	a := v.lanes()
	return (a[0] + a[2]) + (a[1] + a[3])
}

// BroadcastInt64x2 creates a vector with all lanes set to the given value.
func BroadcastInt64x2(v int64) Int64x2 {
	arr := [2]int64{v, v}
	return *(*Int64x2)(unsafe.Pointer(&arr))
}

// LoadInt64x2Slice loads 2 int64 values from a slice.
func LoadInt64x2Slice(s []int64) Int64x2 {
	_ = s[1]
	return *(*Int64x2)(unsafe.Pointer(&s[0]))
}

// StoreSlice writes the 2 lanes to a slice.
func (v Int64x2) StoreSlice(s []int64) {
	copy(s[:2], v.lanes()[:])
}

// Add performs element-wise addition with wraparound (ADD.2D).
func (v Int64x2) Add(o Int64x2) Int64x2 {
	a, b := v.lanes(), o.lanes()
	r := [2]int64{a[0] + b[0], a[1] + b[1]}
	return *(*Int64x2)(unsafe.Pointer(&r))
}

// Sub performs element-wise subtraction with wraparound (SUB.2D).
func (v Int64x2) Sub(o Int64x2) Int64x2 {
	a, b := v.lanes(), o.lanes()
	r := [2]int64{a[0] - b[0], a[1] - b[1]}
	return *(*Int64x2)(unsafe.Pointer(&r))
}

// ReduceSum returns the wraparound sum of all lanes (ADDP.2D).
func (v Int64x2) ReduceSum() int64 {
	a := v.lanes()
	return a[0] + a[1]
}
