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

//go:build wasm && !noasm

package lanes

// SIMD128 backend: the fixed 128-bit shape of the WebAssembly SIMD
// proposal. Engines that support simd128 execute the 128-bit kernels as
// native vector instructions.
const (
	activeBackend = BackendSIMD128
	vectorBytes   = 16
	backendName   = "simd128"
)
