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

//go:build (!amd64 && !arm64 && !wasm) || noasm || (amd64 && !goexperiment.simd)

package algo

// Scalar float kernels for the fallback backend. Plain loops; the
// compiler's auto-vectorizer is free to do what it can with them.

func addF32(dst, a, b []float32) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

func addF64(dst, a, b []float64) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

func subF32(dst, a, b []float32) {
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

func subF64(dst, a, b []float64) {
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

func mulF32(dst, a, b []float32) {
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}

func mulF64(dst, a, b []float64) {
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}

func divF32(dst, a, b []float32) {
	for i := range dst {
		dst[i] = a[i] / b[i]
	}
}

func divF64(dst, a, b []float64) {
	for i := range dst {
		dst[i] = a[i] / b[i]
	}
}

func scaleF32(dst []float32, s float32, a []float32) {
	for i := range dst {
		dst[i] = s * a[i]
	}
}

func scaleF64(dst []float64, s float64, a []float64) {
	for i := range dst {
		dst[i] = s * a[i]
	}
}

func sqrtF32(dst, a []float32) {
	for i := range dst {
		dst[i] = sqrt32(a[i])
	}
}

func sqrtF64(dst, a []float64) {
	for i := range dst {
		dst[i] = sqrt64(a[i])
	}
}

func sumF32(a []float32) float32 {
	var s float32
	for _, x := range a {
		s += x
	}
	return s
}

func sumF64(a []float64) float64 {
	var s float64
	for _, x := range a {
		s += x
	}
	return s
}

func dotF32(a, b []float32) float32 {
	var s float32
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}

func dotF64(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}

func minF32(a []float32) float32 {
	m := a[0]
	for _, x := range a[1:] {
		if x < m {
			m = x
		}
	}
	return m
}

func minF64(a []float64) float64 {
	m := a[0]
	for _, x := range a[1:] {
		if x < m {
			m = x
		}
	}
	return m
}

func maxF32(a []float32) float32 {
	m := a[0]
	for _, x := range a[1:] {
		if x > m {
			m = x
		}
	}
	return m
}

func maxF64(a []float64) float64 {
	m := a[0]
	for _, x := range a[1:] {
		if x > m {
			m = x
		}
	}
	return m
}
