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

// Package algo provides whole-slice operations built on the lanes vector
// primitives: element-wise arithmetic, reductions, and a generic Transform.
//
// Slices of any length are accepted. Full vectors go through the compiled
// SIMD backend and the remainder is finished scalarly, in element order,
// so results do not depend on where the vector/tail boundary falls.
// float32 and float64 slices take specialized kernels that work on raw
// backend register types; other lane types go through the portable Vec
// path.
//
//	algo.AddTo(dst, a, b)          // dst[i] = a[i] + b[i]
//	total := algo.Sum(data)
//	d := algo.Dot(x, y)
//
// Binary operations require equal-length slices and panic on mismatch;
// silently truncating to the shorter slice hides bugs.
package algo
