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

//go:build amd64 && goexperiment.simd && !noasm && !lanes_avx512

package algo

import (
	"simd/archsimd"

	"github.com/gosimd/go-lanes/lanes"
)

// AVX2 float kernels: 8 float32 or 4 float64 per iteration, scalar tail.
// Slice lengths are validated by the exported wrappers in algo.go.

func addF32(dst, a, b []float32) {
	i, n := 0, len(dst)
	for ; i+8 <= n; i += 8 {
		va := archsimd.LoadFloat32x8Slice(a[i:])
		vb := archsimd.LoadFloat32x8Slice(b[i:])
		lanes.Add_AVX2_F32x8(va, vb).StoreSlice(dst[i:])
	}
	for ; i < n; i++ {
		dst[i] = a[i] + b[i]
	}
}

func addF64(dst, a, b []float64) {
	i, n := 0, len(dst)
	for ; i+4 <= n; i += 4 {
		va := archsimd.LoadFloat64x4Slice(a[i:])
		vb := archsimd.LoadFloat64x4Slice(b[i:])
		lanes.Add_AVX2_F64x4(va, vb).StoreSlice(dst[i:])
	}
	for ; i < n; i++ {
		dst[i] = a[i] + b[i]
	}
}

func subF32(dst, a, b []float32) {
	i, n := 0, len(dst)
	for ; i+8 <= n; i += 8 {
		va := archsimd.LoadFloat32x8Slice(a[i:])
		vb := archsimd.LoadFloat32x8Slice(b[i:])
		lanes.Sub_AVX2_F32x8(va, vb).StoreSlice(dst[i:])
	}
	for ; i < n; i++ {
		dst[i] = a[i] - b[i]
	}
}

func subF64(dst, a, b []float64) {
	i, n := 0, len(dst)
	for ; i+4 <= n; i += 4 {
		va := archsimd.LoadFloat64x4Slice(a[i:])
		vb := archsimd.LoadFloat64x4Slice(b[i:])
		lanes.Sub_AVX2_F64x4(va, vb).StoreSlice(dst[i:])
	}
	for ; i < n; i++ {
		dst[i] = a[i] - b[i]
	}
}

func mulF32(dst, a, b []float32) {
	i, n := 0, len(dst)
	for ; i+8 <= n; i += 8 {
		va := archsimd.LoadFloat32x8Slice(a[i:])
		vb := archsimd.LoadFloat32x8Slice(b[i:])
		lanes.Mul_AVX2_F32x8(va, vb).StoreSlice(dst[i:])
	}
	for ; i < n; i++ {
		dst[i] = a[i] * b[i]
	}
}

func mulF64(dst, a, b []float64) {
	i, n := 0, len(dst)
	for ; i+4 <= n; i += 4 {
		va := archsimd.LoadFloat64x4Slice(a[i:])
		vb := archsimd.LoadFloat64x4Slice(b[i:])
		lanes.Mul_AVX2_F64x4(va, vb).StoreSlice(dst[i:])
	}
	for ; i < n; i++ {
		dst[i] = a[i] * b[i]
	}
}

func divF32(dst, a, b []float32) {
	i, n := 0, len(dst)
	for ; i+8 <= n; i += 8 {
		va := archsimd.LoadFloat32x8Slice(a[i:])
		vb := archsimd.LoadFloat32x8Slice(b[i:])
		lanes.Div_AVX2_F32x8(va, vb).StoreSlice(dst[i:])
	}
	for ; i < n; i++ {
		dst[i] = a[i] / b[i]
	}
}

func divF64(dst, a, b []float64) {
	i, n := 0, len(dst)
	for ; i+4 <= n; i += 4 {
		va := archsimd.LoadFloat64x4Slice(a[i:])
		vb := archsimd.LoadFloat64x4Slice(b[i:])
		lanes.Div_AVX2_F64x4(va, vb).StoreSlice(dst[i:])
	}
	for ; i < n; i++ {
		dst[i] = a[i] / b[i]
	}
}

func scaleF32(dst []float32, s float32, a []float32) {
	vs := lanes.Splat_AVX2_F32x8(s)
	i, n := 0, len(dst)
	for ; i+8 <= n; i += 8 {
		va := archsimd.LoadFloat32x8Slice(a[i:])
		lanes.Mul_AVX2_F32x8(vs, va).StoreSlice(dst[i:])
	}
	for ; i < n; i++ {
		dst[i] = s * a[i]
	}
}

func scaleF64(dst []float64, s float64, a []float64) {
	vs := lanes.Splat_AVX2_F64x4(s)
	i, n := 0, len(dst)
	for ; i+4 <= n; i += 4 {
		va := archsimd.LoadFloat64x4Slice(a[i:])
		lanes.Mul_AVX2_F64x4(vs, va).StoreSlice(dst[i:])
	}
	for ; i < n; i++ {
		dst[i] = s * a[i]
	}
}

func sqrtF32(dst, a []float32) {
	i, n := 0, len(dst)
	for ; i+8 <= n; i += 8 {
		va := archsimd.LoadFloat32x8Slice(a[i:])
		lanes.Sqrt_AVX2_F32x8(va).StoreSlice(dst[i:])
	}
	for ; i < n; i++ {
		dst[i] = sqrt32(a[i])
	}
}

func sqrtF64(dst, a []float64) {
	i, n := 0, len(dst)
	for ; i+4 <= n; i += 4 {
		va := archsimd.LoadFloat64x4Slice(a[i:])
		lanes.Sqrt_AVX2_F64x4(va).StoreSlice(dst[i:])
	}
	for ; i < n; i++ {
		dst[i] = sqrt64(a[i])
	}
}

func sumF32(a []float32) float32 {
	acc := lanes.Splat_AVX2_F32x8(0)
	i, n := 0, len(a)
	for ; i+8 <= n; i += 8 {
		acc = lanes.Add_AVX2_F32x8(acc, archsimd.LoadFloat32x8Slice(a[i:]))
	}
	s := lanes.ReduceSum_AVX2_F32x8(acc)
	for ; i < n; i++ {
		s += a[i]
	}
	return s
}

func sumF64(a []float64) float64 {
	acc := lanes.Splat_AVX2_F64x4(0)
	i, n := 0, len(a)
	for ; i+4 <= n; i += 4 {
		acc = lanes.Add_AVX2_F64x4(acc, archsimd.LoadFloat64x4Slice(a[i:]))
	}
	s := lanes.ReduceSum_AVX2_F64x4(acc)
	for ; i < n; i++ {
		s += a[i]
	}
	return s
}

func dotF32(a, b []float32) float32 {
	acc := lanes.Splat_AVX2_F32x8(0)
	i, n := 0, len(a)
	for ; i+8 <= n; i += 8 {
		va := archsimd.LoadFloat32x8Slice(a[i:])
		vb := archsimd.LoadFloat32x8Slice(b[i:])
		acc = lanes.MulAdd_AVX2_F32x8(va, vb, acc)
	}
	s := lanes.ReduceSum_AVX2_F32x8(acc)
	for ; i < n; i++ {
		s += a[i] * b[i]
	}
	return s
}

func dotF64(a, b []float64) float64 {
	acc := lanes.Splat_AVX2_F64x4(0)
	i, n := 0, len(a)
	for ; i+4 <= n; i += 4 {
		va := archsimd.LoadFloat64x4Slice(a[i:])
		vb := archsimd.LoadFloat64x4Slice(b[i:])
		acc = lanes.MulAdd_AVX2_F64x4(va, vb, acc)
	}
	s := lanes.ReduceSum_AVX2_F64x4(acc)
	for ; i < n; i++ {
		s += a[i] * b[i]
	}
	return s
}

func minF32(a []float32) float32 {
	n := len(a)
	if n < 8 {
		m := a[0]
		for _, x := range a[1:] {
			if x < m {
				m = x
			}
		}
		return m
	}
	acc := archsimd.LoadFloat32x8Slice(a)
	i := 8
	for ; i+8 <= n; i += 8 {
		acc = lanes.Min_AVX2_F32x8(acc, archsimd.LoadFloat32x8Slice(a[i:]))
	}
	m := lanes.ReduceMin_AVX2_F32x8(acc)
	for ; i < n; i++ {
		if a[i] < m {
			m = a[i]
		}
	}
	return m
}

func minF64(a []float64) float64 {
	n := len(a)
	if n < 4 {
		m := a[0]
		for _, x := range a[1:] {
			if x < m {
				m = x
			}
		}
		return m
	}
	acc := archsimd.LoadFloat64x4Slice(a)
	i := 4
	for ; i+4 <= n; i += 4 {
		acc = lanes.Min_AVX2_F64x4(acc, archsimd.LoadFloat64x4Slice(a[i:]))
	}
	m := lanes.ReduceMin_AVX2_F64x4(acc)
	for ; i < n; i++ {
		if a[i] < m {
			m = a[i]
		}
	}
	return m
}

func maxF32(a []float32) float32 {
	n := len(a)
	if n < 8 {
		m := a[0]
		for _, x := range a[1:] {
			if x > m {
				m = x
			}
		}
		return m
	}
	acc := archsimd.LoadFloat32x8Slice(a)
	i := 8
	for ; i+8 <= n; i += 8 {
		acc = lanes.Max_AVX2_F32x8(acc, archsimd.LoadFloat32x8Slice(a[i:]))
	}
	m := lanes.ReduceMax_AVX2_F32x8(acc)
	for ; i < n; i++ {
		if a[i] > m {
			m = a[i]
		}
	}
	return m
}

func maxF64(a []float64) float64 {
	n := len(a)
	if n < 4 {
		m := a[0]
		for _, x := range a[1:] {
			if x > m {
				m = x
			}
		}
		return m
	}
	acc := archsimd.LoadFloat64x4Slice(a)
	i := 4
	for ; i+4 <= n; i += 4 {
		acc = lanes.Max_AVX2_F64x4(acc, archsimd.LoadFloat64x4Slice(a[i:]))
	}
	m := lanes.ReduceMax_AVX2_F64x4(acc)
	for ; i < n; i++ {
		if a[i] > m {
			m = a[i]
		}
	}
	return m
}
