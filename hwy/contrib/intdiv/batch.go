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

package intdiv

import "github.com/ajroetker/go-intdiv/hwy"

// DivideByScalar computes dst[i] = Div(src[i], d) for every i.
//
// It panics if the slices have different lengths. The result is identical to
// applying Div to each element in order, including when dst and src share
// memory: any overlap sends the whole range through the elementwise loop
// before the vector path or the divisor special cases are considered.
//
// Otherwise the divisor selects the path:
//   - 0: dst is zeroed and DivideByZero is raised once.
//   - 1: src is copied.
//   - -1 (signed): lanes are negated; minimum-value lanes keep their value
//     and raise Overflow once.
//   - anything else: vectors are divided by a prepared hwy.Divisor and
//     signed lanes are corrected toward negative infinity. At the scalar
//     dispatch level the elementwise loop is used instead.
func DivideByScalar[T hwy.Integers](dst, src []T, d T) Status {
	if len(dst) != len(src) {
		panic("intdiv: slice length mismatch")
	}
	if len(src) == 0 {
		return 0
	}
	if slicesOverlap(dst, src) {
		return divideByScalarLoop(dst, src, d)
	}
	switch {
	case d == 0:
		clear(dst)
		return DivideByZero
	case d == 1:
		copy(dst, src)
		return 0
	case hwy.IsSigned[T]() && d == ^T(0):
		return negateSaturating(dst, src)
	}
	if hwy.CurrentLevel() == hwy.DispatchScalar {
		return divideByScalarLoop(dst, src, d)
	}
	divideByDivisor(dst, src, hwy.NewDivisor(d))
	return 0
}

// divideByScalarLoop applies Div element by element in increasing index
// order, reading each source element just before its destination is written.
func divideByScalarLoop[T hwy.Integers](dst, src []T, d T) Status {
	var st Status
	for i := range src {
		q, s := Div(src[i], d)
		dst[i] = q
		st |= s
	}
	return st
}

// negateSaturating computes dst = -src, keeping the minimum value fixed.
func negateSaturating[T hwy.Integers](dst, src []T) Status {
	minVec := hwy.Set(hwy.MinValue[T]())
	zero := hwy.Zero[T]()
	overflow := false

	hwy.ProcessWithTail[T](len(src),
		func(offset int) {
			v := hwy.Load(src[offset:])
			isMin := hwy.Equal(v, minVec)
			hwy.Store(hwy.IfThenElse(isMin, minVec, hwy.Sub(zero, v)), dst[offset:])
			if !overflow && isMin.AnyTrue() {
				overflow = true
			}
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			v := hwy.MaskLoad(mask, src[offset:])
			isMin := hwy.MaskAnd(mask, hwy.Equal(v, minVec))
			hwy.MaskStore(mask, hwy.IfThenElse(isMin, minVec, hwy.Sub(zero, v)), dst[offset:])
			if !overflow && isMin.AnyTrue() {
				overflow = true
			}
		},
	)

	if overflow {
		return Overflow
	}
	return 0
}

// divideByDivisor computes dst = src / dv for a divisor that is neither 0
// nor -1, flooring signed quotients.
func divideByDivisor[T hwy.Integers](dst, src []T, dv hwy.Divisor[T]) {
	signed := hwy.IsSigned[T]()
	dvec := hwy.Set(dv.Value())
	one := hwy.Set[T](1)
	dNeg := hwy.LessThan(dvec, hwy.Zero[T]())

	quotient := func(v hwy.Vec[T]) hwy.Vec[T] {
		q := dv.Div(v)
		if !signed {
			return q
		}
		inexact := hwy.NotEqual(hwy.Mul(q, dvec), v)
		signsDiffer := hwy.MaskXor(hwy.LessThan(v, hwy.Zero[T]()), dNeg)
		return hwy.IfThenElse(hwy.MaskAnd(inexact, signsDiffer), hwy.Sub(q, one), q)
	}

	hwy.ProcessWithTail[T](len(src),
		func(offset int) {
			hwy.Store(quotient(hwy.Load(src[offset:])), dst[offset:])
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			hwy.MaskStore(mask, quotient(hwy.MaskLoad(mask, src[offset:])), dst[offset:])
		},
	)
}
