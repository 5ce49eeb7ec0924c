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

// Mask algebra used to combine comparison results.

// AllFalse returns true if all lanes are false.
func AllFalse[T Lanes](mask Mask[T]) bool {
	return !mask.AnyTrue()
}

// FindFirstTrue returns index of first true lane, or -1 if none.
func FindFirstTrue[T Lanes](mask Mask[T]) int {
	if mask.bits == 0 {
		return -1
	}
	return bits.TrailingZeros64(mask.bits)
}

// FirstN creates a mask with the first n lanes set to true.
// n is clamped to [0, MaxLanes[T]()].
func FirstN[T Lanes](n int) Mask[T] {
	maxLanes := MaxLanes[T]()
	return Mask[T]{bits: laneBitsMask(max(0, min(n, maxLanes))), n: maxLanes}
}

// MaskFromBits creates a mask from a bitmask integer.
// Bit i of m corresponds to lane i.
func MaskFromBits[T Lanes](m uint64) Mask[T] {
	maxLanes := MaxLanes[T]()
	return Mask[T]{bits: m & laneBitsMask(maxLanes), n: maxLanes}
}

// BitsFromMask converts mask to bitmask integer.
// Lane i corresponds to bit i of the result.
func BitsFromMask[T Lanes](mask Mask[T]) uint64 {
	return mask.bits
}

// MaskAnd performs a logical AND on two masks.
func MaskAnd[T Lanes](a, b Mask[T]) Mask[T] {
	n := min(a.n, b.n)
	return Mask[T]{bits: a.bits & b.bits & laneBitsMask(n), n: n}
}

// MaskOr performs a logical OR on two masks.
func MaskOr[T Lanes](a, b Mask[T]) Mask[T] {
	n := min(a.n, b.n)
	return Mask[T]{bits: (a.bits | b.bits) & laneBitsMask(n), n: n}
}

// MaskXor performs a logical XOR on two masks.
func MaskXor[T Lanes](a, b Mask[T]) Mask[T] {
	n := min(a.n, b.n)
	return Mask[T]{bits: (a.bits ^ b.bits) & laneBitsMask(n), n: n}
}

// MaskNot inverts all lanes of a mask.
func MaskNot[T Lanes](mask Mask[T]) Mask[T] {
	return Mask[T]{bits: ^mask.bits & laneBitsMask(mask.n), n: mask.n}
}
