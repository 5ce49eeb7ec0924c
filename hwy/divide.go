// Copyright 2025 go-highway Authors
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

package hwy

import "math/bits"

// Divisor is a divisor prepared for repeated truncating division of whole
// vectors, the way a broadcast scalar divisor is used by array kernels.
//
// For lanes of at most 32 bits the quotient is computed with a single
// 64x64->128 multiply by the reciprocal ceil(2^64 / |d|), which is exact for
// every 32-bit numerator (Lemire, Kaser, Kurz: "Faster Remainder by Direct
// Computation", 2019). 64-bit lanes use hardware division.
type Divisor[T Lanes] struct {
	d     T
	neg   bool
	abs   uint64
	magic uint64 // 0 selects hardware division
}

// NewDivisor prepares d for vector division. It panics if d is zero.
func NewDivisor[T Lanes](d T) Divisor[T] {
	if d == 0 {
		panic("hwy: integer divide by zero")
	}
	dv := Divisor[T]{d: d, abs: uint64(d)}
	if IsSigned[T]() && d < 0 {
		dv.neg = true
		// For the 64-bit minimum this wraps to 2^63, which is the magnitude.
		dv.abs = uint64(-int64(d))
	}
	if LaneBits[T]() <= 32 && dv.abs > 1 {
		dv.magic = ^uint64(0)/dv.abs + 1
	}
	return dv
}

// Value returns the divisor.
func (dv Divisor[T]) Value() T {
	return dv.d
}

// Div divides every lane of v by the divisor, truncating toward zero.
// A signed minimum lane divided by -1 wraps back to the minimum value.
func (dv Divisor[T]) Div(a Vec[T]) Vec[T] {
	v := Vec[T]{n: a.n}
	x, r := a.lanes(), v.lanes()
	if dv.magic == 0 {
		for i := range r {
			r[i] = x[i] / dv.d
		}
		return v
	}
	signed := IsSigned[T]()
	for i := range r {
		neg := dv.neg
		ux := uint64(x[i])
		if signed && x[i] < 0 {
			neg = !neg
			ux = uint64(-int64(x[i]))
		}
		q, _ := bits.Mul64(dv.magic, ux)
		if neg {
			r[i] = T(-int64(q))
		} else {
			r[i] = T(q)
		}
	}
	return v
}
