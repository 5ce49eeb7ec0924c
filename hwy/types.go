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

// Package hwy provides portable integer SIMD lanes with runtime width dispatch.
//
// Vectors hold as many lanes as the widest register detected at startup
// (16 bytes for SSE2/NEON, 32 for AVX2, 64 for AVX-512). The operations in
// this package are written once in portable Go; the detected width decides
// how many lanes each Vec carries, so kernels built on top of it process
// data in hardware-sized batches and handle tails with masks.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-intdiv/hwy"
//
//	a := hwy.Load(src)
//	q := hwy.Div(a, hwy.Set[int32](7))
//	hwy.Store(q, dst)
package hwy

import (
	"math/bits"
	"unsafe"
)

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all fixed-width integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in SIMD lanes.
type Lanes interface {
	Integers
}

// MaxVectorBytes is the widest register width a Vec can hold (AVX-512).
const MaxVectorBytes = 64

// Vec is a portable vector handle. Lanes live in a fixed 64-byte register
// image, so vectors are plain values that never touch the heap.
//
// Vec instances should not be created directly; use Load, Set, or Zero instead.
type Vec[T Lanes] struct {
	reg [MaxVectorBytes / 8]uint64
	n   int
}

// lanes returns the active lanes of v as a slice aliasing its register.
func (v *Vec[T]) lanes() []T {
	return unsafe.Slice((*T)(unsafe.Pointer(&v.reg)), v.n)
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T]) NumLanes() int {
	return v.n
}

// Data returns a copy of the vector's lanes.
// This is primarily for testing and should not be used in performance-critical code.
func (v Vec[T]) Data() []T {
	out := make([]T, v.n)
	copy(out, v.lanes())
	return out
}

// Store writes the vector's data to a slice.
// This is the method form of the hwy.Store function.
func (v Vec[T]) Store(dst []T) {
	Store(v, dst)
}

// Mask represents the result of a comparison operation.
// It can be used with IfThenElse, MaskLoad, and MaskStore to perform
// conditional operations.
type Mask[T Lanes] struct {
	// bit i is set if lane i is active.
	bits uint64
	n    int
}

// NumLanes returns the number of lanes in this mask.
func (m Mask[T]) NumLanes() int {
	return m.n
}

// laneBitsMask returns a word with the low n bits set.
func laneBitsMask(n int) uint64 {
	if n >= 64 {
		return ^uint64(0)
	}
	return uint64(1)<<n - 1
}

// AllTrue returns true if all lanes in the mask are active.
func (m Mask[T]) AllTrue() bool {
	return m.bits == laneBitsMask(m.n)
}

// AnyTrue returns true if at least one lane in the mask is active.
func (m Mask[T]) AnyTrue() bool {
	return m.bits != 0
}

// CountTrue returns the number of active lanes in the mask.
func (m Mask[T]) CountTrue() int {
	return bits.OnesCount64(m.bits)
}

// GetBit returns whether lane i is active.
func (m Mask[T]) GetBit(i int) bool {
	if i < 0 || i >= m.n {
		return false
	}
	return m.bits&(1<<i) != 0
}

// LaneBytes returns the width of T in bytes.
func LaneBytes[T Lanes]() int {
	var dummy T
	return int(unsafe.Sizeof(dummy))
}

// LaneBits returns the width of T in bits.
func LaneBits[T Lanes]() int {
	return LaneBytes[T]() * 8
}

// IsSigned reports whether T is a signed integer type.
func IsSigned[T Lanes]() bool {
	var zero T
	return ^zero < zero
}

// MinValue returns the smallest value representable by T:
// -2^(bits-1) for signed types and 0 for unsigned types.
func MinValue[T Lanes]() T {
	if !IsSigned[T]() {
		return 0
	}
	var one T = 1
	return one << (LaneBits[T]() - 1)
}

// MaxValue returns the largest value representable by T.
func MaxValue[T Lanes]() T {
	return ^MinValue[T]()
}
