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

//go:build amd64 && goexperiment.simd && lanes_avx512 && !noasm

package lanes

import "github.com/gosimd/go-lanes/internal/cpuinfo"

// AVX-512 backend: 512-bit vectors. Opt-in via the lanes_avx512 build tag
// so that the default amd64 SIMD build stays on AVX2.
const (
	activeBackend = BackendAVX512
	vectorBytes   = 64
	backendName   = "avx512"
)

func init() {
	if !cpuinfo.HasAVX512() {
		panic("lanes: binary compiled for the AVX-512 backend but this CPU does not support AVX-512; rebuild without the lanes_avx512 tag")
	}
}
