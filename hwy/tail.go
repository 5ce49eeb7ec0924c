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

// TailMask creates a mask with the first count lanes active.
// It is the mask used to load and store the remainder of an array whose
// length is not a multiple of the vector width.
//
// Example:
//
//	lanes := hwy.MaxLanes[int32]()
//	if rem := len(src) % lanes; rem > 0 {
//	    off := len(src) - rem
//	    mask := hwy.TailMask[int32](rem)
//	    v := hwy.MaskLoad(mask, src[off:])
//	    hwy.MaskStore(mask, v, dst[off:])
//	}
func TailMask[T Lanes](count int) Mask[T] {
	return FirstN[T](count)
}

// ProcessWithTail walks size elements in vector-width steps.
//
// It calls fullFn(offset) for every full vector and then, if size is not a
// multiple of the vector width, tailFn(offset, count) once with the
// remaining count elements. Offsets are element indices.
//
// Example:
//
//	hwy.ProcessWithTail[int16](len(src),
//	    func(offset int) {
//	        v := hwy.Load(src[offset:])
//	        hwy.Store(hwy.Neg(v), dst[offset:])
//	    },
//	    func(offset, count int) {
//	        mask := hwy.TailMask[int16](count)
//	        v := hwy.MaskLoad(mask, src[offset:])
//	        hwy.MaskStore(mask, hwy.Neg(v), dst[offset:])
//	    },
//	)
func ProcessWithTail[T Lanes](size int, fullFn func(offset int), tailFn func(offset, count int)) {
	lanes := MaxLanes[T]()
	full := FullVectors[T](size)
	for i := range full {
		fullFn(i * lanes)
	}
	if remaining := size - full*lanes; remaining > 0 {
		tailFn(full*lanes, remaining)
	}
}

// FullVectors returns how many complete vectors of T fit in size elements.
func FullVectors[T Lanes](size int) int {
	lanes := MaxLanes[T]()
	if lanes == 0 || size <= 0 {
		return 0
	}
	return size / lanes
}

// AlignedSize rounds up size to the next multiple of vector width.
func AlignedSize[T Lanes](size int) int {
	lanes := MaxLanes[T]()
	if lanes == 0 {
		return size
	}
	return ((size + lanes - 1) / lanes) * lanes
}
