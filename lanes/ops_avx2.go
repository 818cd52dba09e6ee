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

//go:build amd64 && goexperiment.simd

package lanes

import (
	"simd/archsimd"
)

// This file provides the AVX2 backend's concrete vector kernels, working
// directly with archsimd register types. Each function maps to a single
// hardware instruction or an agreed minimal sequence; operations AVX2 has
// no instruction for are simply absent rather than emulated. The slice
// kernels in lanes/algo build on these; they can also be used directly by
// callers that want raw 256-bit types instead of the Vec abstraction.

// ===== Float32x8 (8 x float32, one YMM register) =====

// Splat_AVX2_F32x8 creates a vector with all lanes set to v (VBROADCASTSS).
func Splat_AVX2_F32x8(v float32) archsimd.Float32x8 {
	return archsimd.BroadcastFloat32x8(v)
}

// Add_AVX2_F32x8 performs element-wise addition (VADDPS).
func Add_AVX2_F32x8(a, b archsimd.Float32x8) archsimd.Float32x8 {
	return a.Add(b)
}

// Sub_AVX2_F32x8 performs element-wise subtraction (VSUBPS).
func Sub_AVX2_F32x8(a, b archsimd.Float32x8) archsimd.Float32x8 {
	return a.Sub(b)
}

// Mul_AVX2_F32x8 performs element-wise multiplication (VMULPS).
func Mul_AVX2_F32x8(a, b archsimd.Float32x8) archsimd.Float32x8 {
	return a.Mul(b)
}

// Div_AVX2_F32x8 performs element-wise division (VDIVPS).
func Div_AVX2_F32x8(a, b archsimd.Float32x8) archsimd.Float32x8 {
	return a.Div(b)
}

// Min_AVX2_F32x8 performs element-wise minimum (VMINPS).
func Min_AVX2_F32x8(a, b archsimd.Float32x8) archsimd.Float32x8 {
	return a.Min(b)
}

// Max_AVX2_F32x8 performs element-wise maximum (VMAXPS).
func Max_AVX2_F32x8(a, b archsimd.Float32x8) archsimd.Float32x8 {
	return a.Max(b)
}

// Sqrt_AVX2_F32x8 computes sqrt(x) per lane (VSQRTPS, correctly rounded).
func Sqrt_AVX2_F32x8(x archsimd.Float32x8) archsimd.Float32x8 {
	return x.Sqrt()
}

// MulAdd_AVX2_F32x8 computes a*b + c per lane with a single rounding
// (VFMADD, requires FMA which the backend init guard verifies).
func MulAdd_AVX2_F32x8(a, b, c archsimd.Float32x8) archsimd.Float32x8 {
	return a.MulAdd(b, c)
}

// GetLane_AVX2_F32x8 extracts the element at the given lane index.
func GetLane_AVX2_F32x8(v archsimd.Float32x8, lane int) float32 {
	if lane < 4 {
		return v.GetLo().GetElem(uint8(lane))
	}
	return v.GetHi().GetElem(uint8(lane - 4))
}

// ReduceSum_AVX2_F32x8 returns the sum of all lanes.
// Reduce 8 -> 4 via one VADDPS, then sum the 128-bit half scalarly.
func ReduceSum_AVX2_F32x8(v archsimd.Float32x8) float32 {
	s4 := v.GetLo().Add(v.GetHi())
	return s4.GetElem(0) + s4.GetElem(1) + s4.GetElem(2) + s4.GetElem(3)
}

// ReduceMin_AVX2_F32x8 returns the minimum element in the vector.
func ReduceMin_AVX2_F32x8(v archsimd.Float32x8) float32 {
	m4 := v.GetLo().Min(v.GetHi())
	m := m4.GetElem(0)
	for lane := uint8(1); lane < 4; lane++ {
		if e := m4.GetElem(lane); e < m {
			m = e
		}
	}
	return m
}

// ReduceMax_AVX2_F32x8 returns the maximum element in the vector.
func ReduceMax_AVX2_F32x8(v archsimd.Float32x8) float32 {
	m4 := v.GetLo().Max(v.GetHi())
	m := m4.GetElem(0)
	for lane := uint8(1); lane < 4; lane++ {
		if e := m4.GetElem(lane); e > m {
			m = e
		}
	}
	return m
}

// ===== Float64x4 (4 x float64, one YMM register) =====

// Splat_AVX2_F64x4 creates a vector with all lanes set to v (VBROADCASTSD).
func Splat_AVX2_F64x4(v float64) archsimd.Float64x4 {
	return archsimd.BroadcastFloat64x4(v)
}

// Add_AVX2_F64x4 performs element-wise addition (VADDPD).
func Add_AVX2_F64x4(a, b archsimd.Float64x4) archsimd.Float64x4 {
	return a.Add(b)
}

// Sub_AVX2_F64x4 performs element-wise subtraction (VSUBPD).
func Sub_AVX2_F64x4(a, b archsimd.Float64x4) archsimd.Float64x4 {
	return a.Sub(b)
}

// Mul_AVX2_F64x4 performs element-wise multiplication (VMULPD).
func Mul_AVX2_F64x4(a, b archsimd.Float64x4) archsimd.Float64x4 {
	return a.Mul(b)
}

// Div_AVX2_F64x4 performs element-wise division (VDIVPD).
func Div_AVX2_F64x4(a, b archsimd.Float64x4) archsimd.Float64x4 {
	return a.Div(b)
}

// Min_AVX2_F64x4 performs element-wise minimum (VMINPD).
func Min_AVX2_F64x4(a, b archsimd.Float64x4) archsimd.Float64x4 {
	return a.Min(b)
}

// Max_AVX2_F64x4 performs element-wise maximum (VMAXPD).
func Max_AVX2_F64x4(a, b archsimd.Float64x4) archsimd.Float64x4 {
	return a.Max(b)
}

// Sqrt_AVX2_F64x4 computes sqrt(x) per lane (VSQRTPD, correctly rounded).
func Sqrt_AVX2_F64x4(x archsimd.Float64x4) archsimd.Float64x4 {
	return x.Sqrt()
}

// MulAdd_AVX2_F64x4 computes a*b + c per lane with a single rounding.
func MulAdd_AVX2_F64x4(a, b, c archsimd.Float64x4) archsimd.Float64x4 {
	return a.MulAdd(b, c)
}

// GetLane_AVX2_F64x4 extracts the element at the given lane index.
func GetLane_AVX2_F64x4(v archsimd.Float64x4, lane int) float64 {
	if lane < 2 {
		return v.GetLo().GetElem(uint8(lane))
	}
	return v.GetHi().GetElem(uint8(lane - 2))
}

// ReduceSum_AVX2_F64x4 returns the sum of all lanes.
func ReduceSum_AVX2_F64x4(v archsimd.Float64x4) float64 {
	s2 := v.GetLo().Add(v.GetHi())
	return s2.GetElem(0) + s2.GetElem(1)
}

// ReduceMin_AVX2_F64x4 returns the minimum element in the vector.
func ReduceMin_AVX2_F64x4(v archsimd.Float64x4) float64 {
	m2 := v.GetLo().Min(v.GetHi())
	if e := m2.GetElem(1); e < m2.GetElem(0) {
		return e
	}
	return m2.GetElem(0)
}

// ReduceMax_AVX2_F64x4 returns the maximum element in the vector.
func ReduceMax_AVX2_F64x4(v archsimd.Float64x4) float64 {
	m2 := v.GetLo().Max(v.GetHi())
	if e := m2.GetElem(1); e > m2.GetElem(0) {
		return e
	}
	return m2.GetElem(0)
}

// ===== Int32x8 / Int64x4 =====
// AVX2 integer coverage is intentionally narrow: add and subtract map to
// VPADDD/VPADDQ/VPSUBD/VPSUBQ. There is no 256-bit integer divide, and
// 64-bit min/max have no AVX2 instruction, so none of these exist here.

// Splat_AVX2_I32x8 creates a vector with all lanes set to v (VPBROADCASTD).
func Splat_AVX2_I32x8(v int32) archsimd.Int32x8 {
	return archsimd.BroadcastInt32x8(v)
}

// Add_AVX2_I32x8 performs element-wise addition with wraparound (VPADDD).
func Add_AVX2_I32x8(a, b archsimd.Int32x8) archsimd.Int32x8 {
	return a.Add(b)
}

// Sub_AVX2_I32x8 performs element-wise subtraction with wraparound (VPSUBD).
func Sub_AVX2_I32x8(a, b archsimd.Int32x8) archsimd.Int32x8 {
	return a.Sub(b)
}

// ReduceSum_AVX2_I32x8 returns the wraparound sum of all lanes.
func ReduceSum_AVX2_I32x8(v archsimd.Int32x8) int32 {
	s4 := v.GetLo().Add(v.GetHi())
	return s4.GetElem(0) + s4.GetElem(1) + s4.GetElem(2) + s4.GetElem(3)
}

// Splat_AVX2_I64x4 creates a vector with all lanes set to v (VPBROADCASTQ).
func Splat_AVX2_I64x4(v int64) archsimd.Int64x4 {
	return archsimd.BroadcastInt64x4(v)
}

// Add_AVX2_I64x4 performs element-wise addition with wraparound (VPADDQ).
func Add_AVX2_I64x4(a, b archsimd.Int64x4) archsimd.Int64x4 {
	return a.Add(b)
}

// Sub_AVX2_I64x4 performs element-wise subtraction with wraparound (VPSUBQ).
func Sub_AVX2_I64x4(a, b archsimd.Int64x4) archsimd.Int64x4 {
	return a.Sub(b)
}

// ReduceSum_AVX2_I64x4 returns the wraparound sum of all lanes.
func ReduceSum_AVX2_I64x4(v archsimd.Int64x4) int64 {
	s2 := v.GetLo().Add(v.GetHi())
	return s2.GetElem(0) + s2.GetElem(1)
}
