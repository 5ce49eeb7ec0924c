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

import "unsafe"

// Operand addresses one strided operand of an inner loop: element i lives at
// Ptr + i*Stride bytes. A zero Stride broadcasts the element at Ptr.
//
// Operands are built by the caller's iteration engine, which guarantees that
// every addressed element is valid for the duration of the call.
type Operand struct {
	Ptr    unsafe.Pointer
	Stride int
}

// Contiguous returns an operand walking s element by element.
func Contiguous[T any](s []T) Operand {
	var zero T
	return Operand{Ptr: unsafe.Pointer(unsafe.SliceData(s)), Stride: int(unsafe.Sizeof(zero))}
}

// Strided returns an operand visiting every step-th element of s, starting
// at s[0]. With a negative step the walk moves toward lower addresses, so s
// must start at the last element to visit, as in Strided(buf[k:], -1) for a
// reverse walk over buf[:k+1].
func Strided[T any](s []T, step int) Operand {
	op := Contiguous(s)
	op.Stride *= step
	return op
}

// Scalar returns an operand broadcasting *p.
func Scalar[T any](p *T) Operand {
	return Operand{Ptr: unsafe.Pointer(p)}
}

// at returns a pointer to element i of op.
func at[T any](op Operand, i int) *T {
	return (*T)(unsafe.Add(op.Ptr, i*op.Stride))
}

// extent returns the half-open byte range [lo, hi) touched by n elements of
// size bytes each.
func (op Operand) extent(n int, size uintptr) (lo, hi uintptr) {
	base := uintptr(op.Ptr)
	span := uintptr(0)
	if n > 1 {
		if op.Stride >= 0 {
			span = uintptr((n - 1) * op.Stride)
		} else {
			span = uintptr((n - 1) * -op.Stride)
			base -= span
		}
	}
	return base, base + span + size
}

// overlap reports whether n elements of a and b share any byte.
func overlap[T any](a, b Operand, n int) bool {
	size := unsafe.Sizeof(*new(T))
	return spansOverlap(a, n, size, b, n, size)
}

// spansOverlap reports whether na elements of sizeA bytes addressed by a
// share any byte with nb elements of sizeB bytes addressed by b.
func spansOverlap(a Operand, na int, sizeA uintptr, b Operand, nb int, sizeB uintptr) bool {
	if na <= 0 || nb <= 0 {
		return false
	}
	alo, ahi := a.extent(na, sizeA)
	blo, bhi := b.extent(nb, sizeB)
	return alo < bhi && blo < ahi
}

// slicesOverlap reports whether the backing memory of a and b intersects.
func slicesOverlap[T any](a, b []T) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	var zero T
	size := unsafe.Sizeof(zero)
	alo := uintptr(unsafe.Pointer(unsafe.SliceData(a)))
	blo := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	return alo < blo+uintptr(len(b))*size && blo < alo+uintptr(len(a))*size
}
