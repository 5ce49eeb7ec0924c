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

// divLanes is the lane-wise form of Div for vectors whose divisor varies
// per lane. Zero-divisor lanes yield 0 and minimum-by-minus-one lanes yield
// the minimum; both are replaced by a divisor of 1 before the vector divide.
func divLanes[T hwy.Integers](n, d hwy.Vec[T]) (hwy.Vec[T], Status) {
	var st Status
	zero := hwy.Zero[T]()
	one := hwy.Set[T](1)

	isZero := hwy.Equal(d, zero)
	if isZero.AnyTrue() {
		st |= DivideByZero
	}
	safe := hwy.IfThenElse(isZero, one, d)

	if !hwy.IsSigned[T]() {
		return hwy.IfThenZeroElse(isZero, hwy.Div(n, safe)), st
	}

	overflow := hwy.MaskAnd(hwy.Equal(n, hwy.Set(hwy.MinValue[T]())), hwy.Equal(safe, hwy.Set(^T(0))))
	if overflow.AnyTrue() {
		st |= Overflow
		safe = hwy.IfThenElse(overflow, one, safe)
	}

	q := hwy.Div(n, safe)
	inexact := hwy.NotEqual(hwy.Mul(q, safe), n)
	signsDiffer := hwy.MaskXor(hwy.LessThan(n, zero), hwy.LessThan(safe, zero))
	q = hwy.IfThenElse(hwy.MaskAnd(inexact, signsDiffer), hwy.Sub(q, one), q)
	return hwy.IfThenZeroElse(isZero, q), st
}
