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

package algo

import (
	"math"

	"github.com/chewxy/math32"
)

// Scalar square roots for kernel tails. math32.Sqrt stays in float32 the
// whole way, matching the single-precision hardware instruction.

func sqrt32(x float32) float32 { return math32.Sqrt(x) }

func sqrt64(x float64) float64 { return math.Sqrt(x) }
