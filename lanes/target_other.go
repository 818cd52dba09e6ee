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

//go:build (!amd64 && !arm64 && !wasm) || ((arm64 || wasm) && noasm)

package lanes

// Scalar fallback for architectures without a SIMD backend, and for arm64
// and wasm builds that force it with the noasm tag.
const (
	activeBackend = BackendScalar
	vectorBytes   = 16
	backendName   = "scalar"
)
