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

// Package cplx provides complex vector arithmetic in split layout: a
// complex vector is a pair of lane vectors, one holding real parts and
// one holding imaginary parts. Split layout keeps every operation a
// plain lane-wise combination of the two parts, so complex math runs at
// full vector width with no shuffling. FromInterleaved and ToInterleaved
// convert to and from the [re, im, re, im, ...] memory layout.
package cplx

import (
	"github.com/gosimd/go-lanes/lanes"
)

// Complex is a vector of MaxLanes[T]() complex values in split layout.
// Element i is Re lane i plus Im lane i times the imaginary unit.
type Complex[T lanes.Floats] struct {
	Re lanes.Vec[T]
	Im lanes.Vec[T]
}

// NumLanes returns the number of complex elements in the vector.
func (c Complex[T]) NumLanes() int {
	return c.Re.NumLanes()
}

// Set creates a complex vector with every element re + im*i.
func Set[T lanes.Floats](re, im T) Complex[T] {
	return Complex[T]{Re: lanes.Set(re), Im: lanes.Set(im)}
}

// Zero creates a complex vector of zeros.
func Zero[T lanes.Floats]() Complex[T] {
	return Complex[T]{Re: lanes.Zero[T](), Im: lanes.Zero[T]()}
}

// Load creates a complex vector from separate real and imaginary slices.
// Both slices must hold at least MaxLanes[T]() elements; Load panics
// otherwise, like lanes.Load.
func Load[T lanes.Floats](re, im []T) Complex[T] {
	return Complex[T]{Re: lanes.Load(re), Im: lanes.Load(im)}
}

// Store writes the real and imaginary parts to separate slices. Both
// must hold at least NumLanes elements.
func Store[T lanes.Floats](c Complex[T], re, im []T) {
	lanes.Store(c.Re, re)
	lanes.Store(c.Im, im)
}

// FromInterleaved loads a complex vector from [re, im, re, im, ...]
// memory. src must hold at least 2*MaxLanes[T]() elements; elements
// without a full (re, im) pair are left zero.
func FromInterleaved[T lanes.Floats](src []T) Complex[T] {
	re, im := lanes.LoadInterleaved2(src)
	return Complex[T]{Re: re, Im: im}
}

// ToInterleaved stores a complex vector to [re, im, re, im, ...] memory.
// Pairs without room in dst are dropped.
func ToInterleaved[T lanes.Floats](c Complex[T], dst []T) {
	lanes.StoreInterleaved2(c.Re, c.Im, dst)
}

// Add performs element-wise complex addition.
func Add[T lanes.Floats](a, b Complex[T]) Complex[T] {
	return Complex[T]{
		Re: lanes.Add(a.Re, b.Re),
		Im: lanes.Add(a.Im, b.Im),
	}
}

// Sub performs element-wise complex subtraction.
func Sub[T lanes.Floats](a, b Complex[T]) Complex[T] {
	return Complex[T]{
		Re: lanes.Sub(a.Re, b.Re),
		Im: lanes.Sub(a.Im, b.Im),
	}
}

// Mul performs element-wise complex multiplication:
// (a+bi)(c+di) = (ac - bd) + (ad + bc)i.
func Mul[T lanes.Floats](a, b Complex[T]) Complex[T] {
	return Complex[T]{
		Re: lanes.Sub(lanes.Mul(a.Re, b.Re), lanes.Mul(a.Im, b.Im)),
		Im: lanes.Add(lanes.Mul(a.Re, b.Im), lanes.Mul(a.Im, b.Re)),
	}
}

// Neg negates each element.
func Neg[T lanes.Floats](c Complex[T]) Complex[T] {
	return Complex[T]{Re: lanes.Neg(c.Re), Im: lanes.Neg(c.Im)}
}

// Conj returns the element-wise complex conjugate a - bi.
func Conj[T lanes.Floats](c Complex[T]) Complex[T] {
	return Complex[T]{Re: c.Re, Im: lanes.Neg(c.Im)}
}

// MulI multiplies each element by the imaginary unit:
// (a+bi) * i = -b + ai. This is a part swap and one negation, cheaper
// than a full Mul.
func MulI[T lanes.Floats](c Complex[T]) Complex[T] {
	return Complex[T]{Re: lanes.Neg(c.Im), Im: c.Re}
}

// MulNegI multiplies each element by the negative imaginary unit:
// (a+bi) * -i = b - ai.
func MulNegI[T lanes.Floats](c Complex[T]) Complex[T] {
	return Complex[T]{Re: c.Im, Im: lanes.Neg(c.Re)}
}

// Scale multiplies each element by the real scalar s.
func Scale[T lanes.Floats](c Complex[T], s T) Complex[T] {
	sv := lanes.Set(s)
	return Complex[T]{Re: lanes.Mul(c.Re, sv), Im: lanes.Mul(c.Im, sv)}
}

// NormSqr returns the element-wise squared magnitude a*a + b*b as a real
// vector.
func NormSqr[T lanes.Floats](c Complex[T]) lanes.Vec[T] {
	return lanes.MulAdd(c.Re, c.Re, lanes.Mul(c.Im, c.Im))
}

// Abs returns the element-wise magnitude sqrt(a*a + b*b) as a real
// vector. No overflow guard: magnitudes near the float maximum square to
// infinity, unlike math.Hypot.
func Abs[T lanes.Floats](c Complex[T]) lanes.Vec[T] {
	return lanes.Sqrt(NormSqr(c))
}
