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

//go:build amd64 && (!goexperiment.simd || noasm)

package lanes

// Scalar fallback on amd64 when the SIMD experiment is off or the noasm
// tag forces it. A 16-byte shape keeps lane counts consistent with the
// 128-bit backends.
const (
	activeBackend = BackendScalar
	vectorBytes   = 16
	backendName   = "scalar"
)
