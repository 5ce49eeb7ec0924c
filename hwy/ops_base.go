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

// This file provides the portable lane operations. Every operation works on
// as many lanes as its inputs carry; Load, Set and Zero produce MaxLanes[T]()
// lanes. Results are returned by value, so no operation allocates.

// Load creates a vector by loading data from a slice.
// If src is shorter than a full vector, only len(src) lanes are loaded.
func Load[T Lanes](src []T) Vec[T] {
	v := Vec[T]{n: min(len(src), MaxLanes[T]())}
	copy(v.lanes(), src)
	return v
}

// Store writes a vector's data to a slice.
func Store[T Lanes](v Vec[T], dst []T) {
	copy(dst, v.lanes())
}

// Set creates a vector with all lanes set to the same value.
func Set[T Lanes](value T) Vec[T] {
	v := Vec[T]{n: MaxLanes[T]()}
	r := v.lanes()
	for i := range r {
		r[i] = value
	}
	return v
}

// Zero creates a vector with all lanes set to zero.
func Zero[T Lanes]() Vec[T] {
	return Vec[T]{n: MaxLanes[T]()}
}

// Iota returns a vector with lanes set to [0, 1, 2, 3, ...].
func Iota[T Lanes]() Vec[T] {
	v := Vec[T]{n: MaxLanes[T]()}
	r := v.lanes()
	for i := range r {
		r[i] = T(i)
	}
	return v
}

// Add performs element-wise wrapping addition.
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	v := Vec[T]{n: min(a.n, b.n)}
	x, y, r := a.lanes(), b.lanes(), v.lanes()
	for i := range r {
		r[i] = x[i] + y[i]
	}
	return v
}

// Sub performs element-wise wrapping subtraction.
func Sub[T Lanes](a, b Vec[T]) Vec[T] {
	v := Vec[T]{n: min(a.n, b.n)}
	x, y, r := a.lanes(), b.lanes(), v.lanes()
	for i := range r {
		r[i] = x[i] - y[i]
	}
	return v
}

// Mul performs element-wise wrapping multiplication (low half of the product).
func Mul[T Lanes](a, b Vec[T]) Vec[T] {
	v := Vec[T]{n: min(a.n, b.n)}
	x, y, r := a.lanes(), b.lanes(), v.lanes()
	for i := range r {
		r[i] = x[i] * y[i]
	}
	return v
}

// Div performs element-wise division truncating toward zero.
//
// No lane of b may be zero. A signed lane holding the minimum value divided
// by -1 wraps back to the minimum value; callers that need to report that
// case must mask it out first.
func Div[T Lanes](a, b Vec[T]) Vec[T] {
	v := Vec[T]{n: min(a.n, b.n)}
	x, y, r := a.lanes(), b.lanes(), v.lanes()
	for i := range r {
		r[i] = x[i] / y[i]
	}
	return v
}

// Neg negates all lanes with wraparound, so the signed minimum maps to itself.
func Neg[T Lanes](a Vec[T]) Vec[T] {
	v := Vec[T]{n: a.n}
	x, r := a.lanes(), v.lanes()
	for i := range r {
		r[i] = -x[i]
	}
	return v
}

// Equal performs element-wise equality comparison.
func Equal[T Lanes](a, b Vec[T]) Mask[T] {
	n := min(a.n, b.n)
	x, y := a.lanes(), b.lanes()
	var m uint64
	for i := range n {
		if x[i] == y[i] {
			m |= 1 << i
		}
	}
	return Mask[T]{bits: m, n: n}
}

// NotEqual performs element-wise inequality comparison.
func NotEqual[T Lanes](a, b Vec[T]) Mask[T] {
	n := min(a.n, b.n)
	x, y := a.lanes(), b.lanes()
	var m uint64
	for i := range n {
		if x[i] != y[i] {
			m |= 1 << i
		}
	}
	return Mask[T]{bits: m, n: n}
}

// LessThan performs element-wise less-than comparison.
func LessThan[T Lanes](a, b Vec[T]) Mask[T] {
	n := min(a.n, b.n)
	x, y := a.lanes(), b.lanes()
	var m uint64
	for i := range n {
		if x[i] < y[i] {
			m |= 1 << i
		}
	}
	return Mask[T]{bits: m, n: n}
}

// GreaterThan performs element-wise greater-than comparison.
func GreaterThan[T Lanes](a, b Vec[T]) Mask[T] {
	n := min(a.n, b.n)
	x, y := a.lanes(), b.lanes()
	var m uint64
	for i := range n {
		if x[i] > y[i] {
			m |= 1 << i
		}
	}
	return Mask[T]{bits: m, n: n}
}

// IfThenElse performs conditional selection: a where mask is true, b otherwise.
func IfThenElse[T Lanes](mask Mask[T], a, b Vec[T]) Vec[T] {
	v := Vec[T]{n: min(mask.n, a.n, b.n)}
	x, y, r := a.lanes(), b.lanes(), v.lanes()
	for i := range r {
		if mask.bits&(1<<i) != 0 {
			r[i] = x[i]
		} else {
			r[i] = y[i]
		}
	}
	return v
}

// IfThenZeroElse returns zero where mask is true, b otherwise.
// Equivalent to IfThenElse(mask, Zero(), b) but more efficient.
func IfThenZeroElse[T Lanes](mask Mask[T], b Vec[T]) Vec[T] {
	v := Vec[T]{n: min(mask.n, b.n)}
	y, r := b.lanes(), v.lanes()
	for i := range r {
		if mask.bits&(1<<i) == 0 {
			r[i] = y[i]
		}
	}
	return v
}

// MaskLoad loads data from a slice only for lanes where the mask is true.
// Inactive lanes are zero and their memory is never read.
func MaskLoad[T Lanes](mask Mask[T], src []T) Vec[T] {
	v := Vec[T]{n: mask.n}
	r := v.lanes()
	for i := range min(len(src), mask.n) {
		if mask.bits&(1<<i) != 0 {
			r[i] = src[i]
		}
	}
	return v
}

// MaskStore stores vector data to a slice only for lanes where the mask is true.
func MaskStore[T Lanes](mask Mask[T], v Vec[T], dst []T) {
	x := v.lanes()
	for i := range min(len(dst), len(x), mask.n) {
		if mask.bits&(1<<i) != 0 {
			dst[i] = x[i]
		}
	}
}

// GetLane returns the value of lane idx, or zero if idx is out of range.
func GetLane[T Lanes](v Vec[T], idx int) T {
	if idx < 0 || idx >= v.n {
		return 0
	}
	return v.lanes()[idx]
}
