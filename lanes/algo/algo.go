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

	"github.com/gosimd/go-lanes/lanes"
)

func checkBinary(dst, a, b int) {
	if dst != a || dst != b {
		panic("algo: slice length mismatch")
	}
}

func checkUnary(dst, a int) {
	if dst != a {
		panic("algo: slice length mismatch")
	}
}

// AddTo computes dst[i] = a[i] + b[i]. All three slices must have the same
// length; dst may alias a or b.
func AddTo[T lanes.Lanes](dst, a, b []T) {
	checkBinary(len(dst), len(a), len(b))
	switch d := any(dst).(type) {
	case []float32:
		addF32(d, any(a).([]float32), any(b).([]float32))
	case []float64:
		addF64(d, any(a).([]float64), any(b).([]float64))
	default:
		binaryVec(dst, a, b, lanes.Add[T], func(x, y T) T { return x + y })
	}
}

// SubTo computes dst[i] = a[i] - b[i].
func SubTo[T lanes.Lanes](dst, a, b []T) {
	checkBinary(len(dst), len(a), len(b))
	switch d := any(dst).(type) {
	case []float32:
		subF32(d, any(a).([]float32), any(b).([]float32))
	case []float64:
		subF64(d, any(a).([]float64), any(b).([]float64))
	default:
		binaryVec(dst, a, b, lanes.Sub[T], func(x, y T) T { return x - y })
	}
}

// MulTo computes dst[i] = a[i] * b[i].
func MulTo[T lanes.Lanes](dst, a, b []T) {
	checkBinary(len(dst), len(a), len(b))
	switch d := any(dst).(type) {
	case []float32:
		mulF32(d, any(a).([]float32), any(b).([]float32))
	case []float64:
		mulF64(d, any(a).([]float64), any(b).([]float64))
	default:
		binaryVec(dst, a, b, lanes.Mul[T], func(x, y T) T { return x * y })
	}
}

// DivTo computes dst[i] = a[i] / b[i]. Like the vector Div it exists for
// float lanes only.
func DivTo[T lanes.Floats](dst, a, b []T) {
	checkBinary(len(dst), len(a), len(b))
	switch d := any(dst).(type) {
	case []float32:
		divF32(d, any(a).([]float32), any(b).([]float32))
	case []float64:
		divF64(d, any(a).([]float64), any(b).([]float64))
	default:
		binaryVec(dst, a, b, lanes.Div[T], func(x, y T) T { return x / y })
	}
}

// ScaleTo computes dst[i] = s * a[i].
func ScaleTo[T lanes.Lanes](dst []T, s T, a []T) {
	checkUnary(len(dst), len(a))
	switch d := any(dst).(type) {
	case []float32:
		scaleF32(d, any(s).(float32), any(a).([]float32))
	case []float64:
		scaleF64(d, any(s).(float64), any(a).([]float64))
	default:
		sv := lanes.Set(s)
		unaryVec(dst, a,
			func(x lanes.Vec[T]) lanes.Vec[T] { return lanes.Mul(sv, x) },
			func(x T) T { return s * x })
	}
}

// SqrtTo computes dst[i] = sqrt(a[i]).
func SqrtTo[T lanes.Floats](dst, a []T) {
	checkUnary(len(dst), len(a))
	switch d := any(dst).(type) {
	case []float32:
		sqrtF32(d, any(a).([]float32))
	case []float64:
		sqrtF64(d, any(a).([]float64))
	default:
		unaryVec(dst, a, lanes.Sqrt[T], func(x T) T { return T(math.Sqrt(float64(x))) })
	}
}

// Fill sets all elements of dst to value. It uses a doubling copy, which
// goes through the runtime's vectorized memmove regardless of backend.
func Fill[T lanes.Lanes](dst []T, value T) {
	if len(dst) == 0 {
		return
	}
	dst[0] = value
	for filled := 1; filled < len(dst); filled *= 2 {
		copy(dst[filled:], dst[:filled])
	}
}

// Sum returns the sum of all elements of a. Integer sums wrap around;
// float sums are accumulated per lane and reduced once at the end, so the
// result can differ from a strict left-to-right sum in the last bits.
func Sum[T lanes.Lanes](a []T) T {
	switch s := any(a).(type) {
	case []float32:
		return any(sumF32(s)).(T)
	case []float64:
		return any(sumF64(s)).(T)
	}

	n := lanes.MaxLanes[T]()
	if len(a) < n {
		var total T
		for _, x := range a {
			total += x
		}
		return total
	}

	acc := lanes.Zero[T]()
	var tail T
	lanes.ProcessWithTail[T](len(a),
		func(offset int) {
			acc = lanes.Add(acc, lanes.Load(a[offset:]))
		},
		func(offset, count int) {
			for i := offset; i < offset+count; i++ {
				tail += a[i]
			}
		},
	)
	return lanes.ReduceSum(acc) + tail
}

// Dot returns the dot product of a and b. The slices must have the same
// length.
func Dot[T lanes.Floats](a, b []T) T {
	checkUnary(len(a), len(b))
	switch x := any(a).(type) {
	case []float32:
		return any(dotF32(x, any(b).([]float32))).(T)
	case []float64:
		return any(dotF64(x, any(b).([]float64))).(T)
	}

	acc := lanes.Zero[T]()
	var tail T
	lanes.ProcessWithTail[T](len(a),
		func(offset int) {
			acc = lanes.MulAdd(lanes.Load(a[offset:]), lanes.Load(b[offset:]), acc)
		},
		func(offset, count int) {
			for i := offset; i < offset+count; i++ {
				tail += a[i] * b[i]
			}
		},
	)
	return lanes.ReduceSum(acc) + tail
}

// Norm returns the Euclidean norm sqrt(dot(a, a)).
func Norm[T lanes.Floats](a []T) T {
	d := Dot(a, a)
	switch v := any(d).(type) {
	case float32:
		return any(math32.Sqrt(v)).(T)
	default:
		return T(math.Sqrt(float64(d)))
	}
}

// MinOf returns the smallest element of a. It panics on an empty slice.
func MinOf[T lanes.Lanes](a []T) T {
	if len(a) == 0 {
		panic("algo: MinOf of empty slice")
	}
	switch s := any(a).(type) {
	case []float32:
		return any(minF32(s)).(T)
	case []float64:
		return any(minF64(s)).(T)
	}

	m := a[0]
	n := lanes.MaxLanes[T]()
	if len(a) >= n {
		acc := lanes.Load(a)
		i := n
		for ; i+n <= len(a); i += n {
			acc = lanes.Min(acc, lanes.Load(a[i:]))
		}
		m = lanes.ReduceMin(acc)
		a = a[i:]
	}
	for _, x := range a {
		if x < m {
			m = x
		}
	}
	return m
}

// MaxOf returns the largest element of a. It panics on an empty slice.
func MaxOf[T lanes.Lanes](a []T) T {
	if len(a) == 0 {
		panic("algo: MaxOf of empty slice")
	}
	switch s := any(a).(type) {
	case []float32:
		return any(maxF32(s)).(T)
	case []float64:
		return any(maxF64(s)).(T)
	}

	m := a[0]
	n := lanes.MaxLanes[T]()
	if len(a) >= n {
		acc := lanes.Load(a)
		i := n
		for ; i+n <= len(a); i += n {
			acc = lanes.Max(acc, lanes.Load(a[i:]))
		}
		m = lanes.ReduceMax(acc)
		a = a[i:]
	}
	for _, x := range a {
		if x > m {
			m = x
		}
	}
	return m
}

// Transform applies vecFn to each full vector of in and scalarFn to the
// tail, writing results to out. The two functions must compute the same
// per-lane result. in and out must have the same length and may be the
// same slice.
func Transform[T lanes.Lanes](in, out []T, vecFn func(lanes.Vec[T]) lanes.Vec[T], scalarFn func(T) T) {
	checkUnary(len(out), len(in))
	unaryVec(out, in, vecFn, scalarFn)
}

func binaryVec[T lanes.Lanes](dst, a, b []T, op func(x, y lanes.Vec[T]) lanes.Vec[T], scalar func(x, y T) T) {
	lanes.ProcessWithTail[T](len(dst),
		func(offset int) {
			v := op(lanes.Load(a[offset:]), lanes.Load(b[offset:]))
			lanes.Store(v, dst[offset:])
		},
		func(offset, count int) {
			for i := offset; i < offset+count; i++ {
				dst[i] = scalar(a[i], b[i])
			}
		},
	)
}

func unaryVec[T lanes.Lanes](dst, a []T, op func(lanes.Vec[T]) lanes.Vec[T], scalar func(T) T) {
	lanes.ProcessWithTail[T](len(dst),
		func(offset int) {
			lanes.Store(op(lanes.Load(a[offset:])), dst[offset:])
		},
		func(offset, count int) {
			for i := offset; i < offset+count; i++ {
				dst[i] = scalar(a[i])
			}
		},
	)
}
