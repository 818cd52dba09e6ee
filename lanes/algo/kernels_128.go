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

//go:build (arm64 || wasm) && !noasm

package algo

import (
	"github.com/gosimd/go-lanes/lanes"
)

// 128-bit float kernels for NEON and WASM SIMD128: 4 float32 or 2
// float64 per iteration, scalar tail. The two backends expose identical
// vector types, so one kernel file serves both. Slice lengths are
// validated by the exported wrappers in algo.go.

func addF32(dst, a, b []float32) {
	i, n := 0, len(dst)
	for ; i+4 <= n; i += 4 {
		va := lanes.LoadFloat32x4Slice(a[i:])
		vb := lanes.LoadFloat32x4Slice(b[i:])
		va.Add(vb).StoreSlice(dst[i:])
	}
	for ; i < n; i++ {
		dst[i] = a[i] + b[i]
	}
}

func addF64(dst, a, b []float64) {
	i, n := 0, len(dst)
	for ; i+2 <= n; i += 2 {
		va := lanes.LoadFloat64x2Slice(a[i:])
		vb := lanes.LoadFloat64x2Slice(b[i:])
		va.Add(vb).StoreSlice(dst[i:])
	}
	for ; i < n; i++ {
		dst[i] = a[i] + b[i]
	}
}

func subF32(dst, a, b []float32) {
	i, n := 0, len(dst)
	for ; i+4 <= n; i += 4 {
		va := lanes.LoadFloat32x4Slice(a[i:])
		vb := lanes.LoadFloat32x4Slice(b[i:])
		va.Sub(vb).StoreSlice(dst[i:])
	}
	for ; i < n; i++ {
		dst[i] = a[i] - b[i]
	}
}

func subF64(dst, a, b []float64) {
	i, n := 0, len(dst)
	for ; i+2 <= n; i += 2 {
		va := lanes.LoadFloat64x2Slice(a[i:])
		vb := lanes.LoadFloat64x2Slice(b[i:])
		va.Sub(vb).StoreSlice(dst[i:])
	}
	for ; i < n; i++ {
		dst[i] = a[i] - b[i]
	}
}

func mulF32(dst, a, b []float32) {
	i, n := 0, len(dst)
	for ; i+4 <= n; i += 4 {
		va := lanes.LoadFloat32x4Slice(a[i:])
		vb := lanes.LoadFloat32x4Slice(b[i:])
		va.Mul(vb).StoreSlice(dst[i:])
	}
	for ; i < n; i++ {
		dst[i] = a[i] * b[i]
	}
}

func mulF64(dst, a, b []float64) {
	i, n := 0, len(dst)
	for ; i+2 <= n; i += 2 {
		va := lanes.LoadFloat64x2Slice(a[i:])
		vb := lanes.LoadFloat64x2Slice(b[i:])
		va.Mul(vb).StoreSlice(dst[i:])
	}
	for ; i < n; i++ {
		dst[i] = a[i] * b[i]
	}
}

func divF32(dst, a, b []float32) {
	i, n := 0, len(dst)
	for ; i+4 <= n; i += 4 {
		va := lanes.LoadFloat32x4Slice(a[i:])
		vb := lanes.LoadFloat32x4Slice(b[i:])
		va.Div(vb).StoreSlice(dst[i:])
	}
	for ; i < n; i++ {
		dst[i] = a[i] / b[i]
	}
}

func divF64(dst, a, b []float64) {
	i, n := 0, len(dst)
	for ; i+2 <= n; i += 2 {
		va := lanes.LoadFloat64x2Slice(a[i:])
		vb := lanes.LoadFloat64x2Slice(b[i:])
		va.Div(vb).StoreSlice(dst[i:])
	}
	for ; i < n; i++ {
		dst[i] = a[i] / b[i]
	}
}

func scaleF32(dst []float32, s float32, a []float32) {
	vs := lanes.BroadcastFloat32x4(s)
	i, n := 0, len(dst)
	for ; i+4 <= n; i += 4 {
		vs.Mul(lanes.LoadFloat32x4Slice(a[i:])).StoreSlice(dst[i:])
	}
	for ; i < n; i++ {
		dst[i] = s * a[i]
	}
}

func scaleF64(dst []float64, s float64, a []float64) {
	vs := lanes.BroadcastFloat64x2(s)
	i, n := 0, len(dst)
	for ; i+2 <= n; i += 2 {
		vs.Mul(lanes.LoadFloat64x2Slice(a[i:])).StoreSlice(dst[i:])
	}
	for ; i < n; i++ {
		dst[i] = s * a[i]
	}
}

func sqrtF32(dst, a []float32) {
	i, n := 0, len(dst)
	for ; i+4 <= n; i += 4 {
		lanes.LoadFloat32x4Slice(a[i:]).Sqrt().StoreSlice(dst[i:])
	}
	for ; i < n; i++ {
		dst[i] = sqrt32(a[i])
	}
}

func sqrtF64(dst, a []float64) {
	i, n := 0, len(dst)
	for ; i+2 <= n; i += 2 {
		lanes.LoadFloat64x2Slice(a[i:]).Sqrt().StoreSlice(dst[i:])
	}
	for ; i < n; i++ {
		dst[i] = sqrt64(a[i])
	}
}

func sumF32(a []float32) float32 {
	acc := lanes.BroadcastFloat32x4(0)
	i, n := 0, len(a)
	for ; i+4 <= n; i += 4 {
		acc = acc.Add(lanes.LoadFloat32x4Slice(a[i:]))
	}
	s := acc.ReduceSum()
	for ; i < n; i++ {
		s += a[i]
	}
	return s
}

func sumF64(a []float64) float64 {
	acc := lanes.BroadcastFloat64x2(0)
	i, n := 0, len(a)
	for ; i+2 <= n; i += 2 {
		acc = acc.Add(lanes.LoadFloat64x2Slice(a[i:]))
	}
	s := acc.ReduceSum()
	for ; i < n; i++ {
		s += a[i]
	}
	return s
}

func dotF32(a, b []float32) float32 {
	acc := lanes.BroadcastFloat32x4(0)
	i, n := 0, len(a)
	for ; i+4 <= n; i += 4 {
		va := lanes.LoadFloat32x4Slice(a[i:])
		vb := lanes.LoadFloat32x4Slice(b[i:])
		acc = va.MulAdd(vb, acc)
	}
	s := acc.ReduceSum()
	for ; i < n; i++ {
		s += a[i] * b[i]
	}
	return s
}

func dotF64(a, b []float64) float64 {
	acc := lanes.BroadcastFloat64x2(0)
	i, n := 0, len(a)
	for ; i+2 <= n; i += 2 {
		va := lanes.LoadFloat64x2Slice(a[i:])
		vb := lanes.LoadFloat64x2Slice(b[i:])
		acc = va.MulAdd(vb, acc)
	}
	s := acc.ReduceSum()
	for ; i < n; i++ {
		s += a[i] * b[i]
	}
	return s
}

func minF32(a []float32) float32 {
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
	acc := lanes.LoadFloat32x4Slice(a)
	i := 4
	for ; i+4 <= n; i += 4 {
		acc = acc.Min(lanes.LoadFloat32x4Slice(a[i:]))
	}
	m := acc.ReduceMin()
	for ; i < n; i++ {
		if a[i] < m {
			m = a[i]
		}
	}
	return m
}

func minF64(a []float64) float64 {
	n := len(a)
	if n < 2 {
		return a[0]
	}
	acc := lanes.LoadFloat64x2Slice(a)
	i := 2
	for ; i+2 <= n; i += 2 {
		acc = acc.Min(lanes.LoadFloat64x2Slice(a[i:]))
	}
	m := acc.ReduceMin()
	for ; i < n; i++ {
		if a[i] < m {
			m = a[i]
		}
	}
	return m
}

func maxF32(a []float32) float32 {
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
	acc := lanes.LoadFloat32x4Slice(a)
	i := 4
	for ; i+4 <= n; i += 4 {
		acc = acc.Max(lanes.LoadFloat32x4Slice(a[i:]))
	}
	m := acc.ReduceMax()
	for ; i < n; i++ {
		if a[i] > m {
			m = a[i]
		}
	}
	return m
}

func maxF64(a []float64) float64 {
	n := len(a)
	if n < 2 {
		return a[0]
	}
	acc := lanes.LoadFloat64x2Slice(a)
	i := 2
	for ; i+2 <= n; i += 2 {
		acc = acc.Max(lanes.LoadFloat64x2Slice(a[i:]))
	}
	m := acc.ReduceMax()
	for ; i < n; i++ {
		if a[i] > m {
			m = a[i]
		}
	}
	return m
}
