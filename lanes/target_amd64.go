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

//go:build amd64 && goexperiment.simd && !lanes_avx512 && !noasm

package lanes

import "github.com/gosimd/go-lanes/internal/cpuinfo"

// AVX2 backend: 256-bit vectors. Selected on amd64 when the compiler's
// SIMD experiment is enabled and the lanes_avx512 tag is absent.
const (
	activeBackend = BackendAVX2
	vectorBytes   = 32
	backendName   = "avx2"
)

func init() {
	// Backend choice is fixed at compile time; this only verifies the
	// host can execute what was compiled in. Failing loudly here beats a
	// SIGILL in the middle of a kernel.
	if !cpuinfo.HasAVX2() {
		panic("lanes: binary compiled for the AVX2 backend but this CPU does not support AVX2; rebuild without GOEXPERIMENT=simd or with the noasm tag")
	}
}
