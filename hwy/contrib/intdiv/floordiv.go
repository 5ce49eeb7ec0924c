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

// Div divides n by d: floor division for signed T, truncating division for
// unsigned T.
//
// A zero divisor yields 0 with DivideByZero. For signed T, the minimum value
// divided by -1 yields the minimum value with Overflow; that pair never
// reaches the hardware divide.
func Div[T hwy.Integers](n, d T) (T, Status) {
	if d == 0 {
		return 0, DivideByZero
	}
	if !hwy.IsSigned[T]() {
		return n / d, 0
	}
	if d == ^T(0) && n == hwy.MinValue[T]() {
		return n, Overflow
	}
	q := n / d
	if (n > 0) != (d > 0) && q*d != n {
		q--
	}
	return q, 0
}

// FloorDiv returns n / d rounded toward negative infinity.
//
//	FloorDiv(-7, 2)  == -4
//	FloorDiv(7, -2)  == -4
//	FloorDiv(-7, -2) == 3
func FloorDiv[T hwy.SignedInts](n, d T) (T, Status) {
	return Div(n, d)
}

// TruncDiv returns n / d for unsigned operands, where truncation and floor
// coincide.
func TruncDiv[T hwy.UnsignedInts](n, d T) (T, Status) {
	return Div(n, d)
}
