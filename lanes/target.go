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

// Backend identifies the instruction set this build was compiled against.
// Exactly one backend is selected per build by GOARCH, GOEXPERIMENT and
// build tags (see target_*.go); it never changes at runtime.
type Backend int

const (
	// BackendScalar indicates no SIMD, pure Go implementation. It is the
	// universal fallback and the correctness oracle for every other
	// backend.
	BackendScalar Backend = iota

	// BackendAVX2 indicates x86-64 AVX2 instructions (256-bit SIMD).
	BackendAVX2

	// BackendAVX512 indicates x86-64 AVX-512 instructions (512-bit SIMD).
	// Selected with the lanes_avx512 build tag.
	BackendAVX512

	// BackendNEON indicates ARM NEON instructions (128-bit SIMD).
	BackendNEON

	// BackendSIMD128 indicates WebAssembly SIMD128 (128-bit SIMD).
	BackendSIMD128
)

// String returns a human-readable name for the backend.
func (b Backend) String() string {
	switch b {
	case BackendScalar:
		return "scalar"
	case BackendAVX2:
		return "avx2"
	case BackendAVX512:
		return "avx512"
	case BackendNEON:
		return "neon"
	case BackendSIMD128:
		return "simd128"
	default:
		return "unknown"
	}
}

// Active returns the backend this binary was compiled against.
func Active() Backend {
	return activeBackend
}

// Width returns the vector register width in bytes for the compiled
// backend. For example: 16 for NEON/SIMD128/scalar, 32 for AVX2, 64 for
// AVX-512.
func Width() int {
	return vectorBytes
}

// Name returns a human-readable name for the compiled backend.
func Name() string {
	return backendName
}

// MaxLanes returns the number of lanes a vector of T holds with the
// compiled backend. It is a compile-time constant for a given build.
//
// For example, with AVX2 (256 bits / 32 bytes):
//   - float32: 32/4 = 8 lanes
//   - float64: 32/8 = 4 lanes
//   - int32: 32/4 = 8 lanes
func MaxLanes[T Lanes]() int {
	var dummy T
	return vectorBytes / int(unsafe.Sizeof(dummy))
}
