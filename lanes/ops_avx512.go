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

// AVX-512 concrete vector kernels (512-bit ZMM registers). Used by the
// algo slice kernels when the module is built with the lanes_avx512 tag.
// Reductions narrow 512 -> 256 with one instruction and then reuse the
// AVX2 reduction.

// ===== Float32x16 =====

// Splat_AVX512_F32x16 creates a vector with all lanes set to v.
func Splat_AVX512_F32x16(v float32) archsimd.Float32x16 {
	return archsimd.BroadcastFloat32x16(v)
}

// Add_AVX512_F32x16 performs element-wise addition (VADDPS).
func Add_AVX512_F32x16(a, b archsimd.Float32x16) archsimd.Float32x16 {
	return a.Add(b)
}

// Sub_AVX512_F32x16 performs element-wise subtraction (VSUBPS).
func Sub_AVX512_F32x16(a, b archsimd.Float32x16) archsimd.Float32x16 {
	return a.Sub(b)
}

// Mul_AVX512_F32x16 performs element-wise multiplication (VMULPS).
func Mul_AVX512_F32x16(a, b archsimd.Float32x16) archsimd.Float32x16 {
	return a.Mul(b)
}

// Div_AVX512_F32x16 performs element-wise division (VDIVPS).
func Div_AVX512_F32x16(a, b archsimd.Float32x16) archsimd.Float32x16 {
	return a.Div(b)
}

// Min_AVX512_F32x16 performs element-wise minimum (VMINPS).
func Min_AVX512_F32x16(a, b archsimd.Float32x16) archsimd.Float32x16 {
	return a.Min(b)
}

// Max_AVX512_F32x16 performs element-wise maximum (VMAXPS).
func Max_AVX512_F32x16(a, b archsimd.Float32x16) archsimd.Float32x16 {
	return a.Max(b)
}

// Sqrt_AVX512_F32x16 computes sqrt(x) per lane (VSQRTPS).
func Sqrt_AVX512_F32x16(x archsimd.Float32x16) archsimd.Float32x16 {
	return x.Sqrt()
}

// MulAdd_AVX512_F32x16 computes a*b + c per lane with a single rounding.
func MulAdd_AVX512_F32x16(a, b, c archsimd.Float32x16) archsimd.Float32x16 {
	return a.MulAdd(b, c)
}

// GetLane_AVX512_F32x16 extracts the element at the given lane index.
func GetLane_AVX512_F32x16(v archsimd.Float32x16, lane int) float32 {
	if lane < 8 {
		return GetLane_AVX2_F32x8(v.GetLo(), lane)
	}
	return GetLane_AVX2_F32x8(v.GetHi(), lane-8)
}

// ReduceSum_AVX512_F32x16 returns the sum of all lanes.
func ReduceSum_AVX512_F32x16(v archsimd.Float32x16) float32 {
	return ReduceSum_AVX2_F32x8(v.GetLo().Add(v.GetHi()))
}

// ReduceMin_AVX512_F32x16 returns the minimum element in the vector.
func ReduceMin_AVX512_F32x16(v archsimd.Float32x16) float32 {
	return ReduceMin_AVX2_F32x8(v.GetLo().Min(v.GetHi()))
}

// ReduceMax_AVX512_F32x16 returns the maximum element in the vector.
func ReduceMax_AVX512_F32x16(v archsimd.Float32x16) float32 {
	return ReduceMax_AVX2_F32x8(v.GetLo().Max(v.GetHi()))
}

// ===== Float64x8 =====

// Splat_AVX512_F64x8 creates a vector with all lanes set to v.
func Splat_AVX512_F64x8(v float64) archsimd.Float64x8 {
	return archsimd.BroadcastFloat64x8(v)
}

// Add_AVX512_F64x8 performs element-wise addition (VADDPD).
func Add_AVX512_F64x8(a, b archsimd.Float64x8) archsimd.Float64x8 {
	return a.Add(b)
}

// Sub_AVX512_F64x8 performs element-wise subtraction (VSUBPD).
func Sub_AVX512_F64x8(a, b archsimd.Float64x8) archsimd.Float64x8 {
	return a.Sub(b)
}

// Mul_AVX512_F64x8 performs element-wise multiplication (VMULPD).
func Mul_AVX512_F64x8(a, b archsimd.Float64x8) archsimd.Float64x8 {
	return a.Mul(b)
}

// Div_AVX512_F64x8 performs element-wise division (VDIVPD).
func Div_AVX512_F64x8(a, b archsimd.Float64x8) archsimd.Float64x8 {
	return a.Div(b)
}

// Min_AVX512_F64x8 performs element-wise minimum (VMINPD).
func Min_AVX512_F64x8(a, b archsimd.Float64x8) archsimd.Float64x8 {
	return a.Min(b)
}

// Max_AVX512_F64x8 performs element-wise maximum (VMAXPD).
func Max_AVX512_F64x8(a, b archsimd.Float64x8) archsimd.Float64x8 {
	return a.Max(b)
}

// Sqrt_AVX512_F64x8 computes sqrt(x) per lane (VSQRTPD).
func Sqrt_AVX512_F64x8(x archsimd.Float64x8) archsimd.Float64x8 {
	return x.Sqrt()
}

// MulAdd_AVX512_F64x8 computes a*b + c per lane with a single rounding.
func MulAdd_AVX512_F64x8(a, b, c archsimd.Float64x8) archsimd.Float64x8 {
	return a.MulAdd(b, c)
}

// GetLane_AVX512_F64x8 extracts the element at the given lane index.
func GetLane_AVX512_F64x8(v archsimd.Float64x8, lane int) float64 {
	if lane < 4 {
		return GetLane_AVX2_F64x4(v.GetLo(), lane)
	}
	return GetLane_AVX2_F64x4(v.GetHi(), lane-4)
}

// ReduceSum_AVX512_F64x8 returns the sum of all lanes.
func ReduceSum_AVX512_F64x8(v archsimd.Float64x8) float64 {
	return ReduceSum_AVX2_F64x4(v.GetLo().Add(v.GetHi()))
}

// ReduceMin_AVX512_F64x8 returns the minimum element in the vector.
func ReduceMin_AVX512_F64x8(v archsimd.Float64x8) float64 {
	return ReduceMin_AVX2_F64x4(v.GetLo().Min(v.GetHi()))
}

// ReduceMax_AVX512_F64x8 returns the maximum element in the vector.
func ReduceMax_AVX512_F64x8(v archsimd.Float64x8) float64 {
	return ReduceMax_AVX2_F64x4(v.GetLo().Max(v.GetHi()))
}

// ===== Int32x16 / Int64x8 =====

// Splat_AVX512_I32x16 creates a vector with all lanes set to v.
func Splat_AVX512_I32x16(v int32) archsimd.Int32x16 {
	return archsimd.BroadcastInt32x16(v)
}

// Add_AVX512_I32x16 performs element-wise addition with wraparound.
func Add_AVX512_I32x16(a, b archsimd.Int32x16) archsimd.Int32x16 {
	return a.Add(b)
}

// Sub_AVX512_I32x16 performs element-wise subtraction with wraparound.
func Sub_AVX512_I32x16(a, b archsimd.Int32x16) archsimd.Int32x16 {
	return a.Sub(b)
}

// ReduceSum_AVX512_I32x16 returns the wraparound sum of all lanes.
func ReduceSum_AVX512_I32x16(v archsimd.Int32x16) int32 {
	return ReduceSum_AVX2_I32x8(v.GetLo().Add(v.GetHi()))
}

// Splat_AVX512_I64x8 creates a vector with all lanes set to v.
func Splat_AVX512_I64x8(v int64) archsimd.Int64x8 {
	return archsimd.BroadcastInt64x8(v)
}

// Add_AVX512_I64x8 performs element-wise addition with wraparound.
func Add_AVX512_I64x8(a, b archsimd.Int64x8) archsimd.Int64x8 {
	return a.Add(b)
}

// Sub_AVX512_I64x8 performs element-wise subtraction with wraparound.
func Sub_AVX512_I64x8(a, b archsimd.Int64x8) archsimd.Int64x8 {
	return a.Sub(b)
}

// ReduceSum_AVX512_I64x8 returns the wraparound sum of all lanes.
func ReduceSum_AVX512_I64x8(v archsimd.Int64x8) int64 {
	return ReduceSum_AVX2_I64x4(v.GetLo().Add(v.GetHi()))
}
