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

// Gather and scatter address lanes through an index vector. Index vectors
// may carry any number of lanes; build them with IndicesFromFunc.

// Index is a constraint for index lane types.
type Index interface {
	~int | ~int32 | ~int64
}

// Indices is a vector of element offsets used by GatherIndex and ScatterIndex.
type Indices[I Index] struct {
	data []I
}

// NumLanes returns the number of lanes in the index vector.
func (x Indices[I]) NumLanes() int {
	return len(x.data)
}

// IndicesFromFunc creates an index vector by calling f for each lane.
func IndicesFromFunc[I Index](numLanes int, f func(lane int) I) Indices[I] {
	result := make([]I, numLanes)
	for i := range numLanes {
		result[i] = f(i)
	}
	return Indices[I]{data: result}
}

// IndicesFromSlice wraps s as an index vector without copying it.
// The caller must not modify s while the vector is in use.
func IndicesFromSlice[I Index](s []I) Indices[I] {
	return Indices[I]{data: s}
}

// IndicesIota creates an index vector with values [0, 1, 2, 3, ...].
func IndicesIota[I Index](numLanes int) Indices[I] {
	return IndicesFromFunc(numLanes, func(lane int) I { return I(lane) })
}

// GatherIndex loads src[indices[i]] into lane i.
// If an index is out of bounds (negative or >= len(src)), the result for that lane is zero.
func GatherIndex[T Lanes, I Index](src []T, indices Indices[I]) Vec[T] {
	v := Vec[T]{n: min(len(indices.data), MaxVectorBytes/LaneBytes[T]())}
	r := v.lanes()
	for i := range r {
		if idx := int(indices.data[i]); idx >= 0 && idx < len(src) {
			r[i] = src[idx]
		}
	}
	return v
}

// ScatterIndex stores lane i of v to dst[indices[i]], in lane order.
// If an index is out of bounds (negative or >= len(dst)), that store is skipped.
// When two lanes address the same element the higher lane wins.
func ScatterIndex[T Lanes, I Index](v Vec[T], dst []T, indices Indices[I]) {
	x := v.lanes()
	for i := range min(len(indices.data), len(x)) {
		if idx := int(indices.data[i]); idx >= 0 && idx < len(dst) {
			dst[idx] = x[i]
		}
	}
}

// DistinctIndices reports whether no two lanes of indices hold the same value.
func DistinctIndices[I Index](indices Indices[I]) bool {
	for i := 1; i < len(indices.data); i++ {
		for j := range i {
			if indices.data[i] == indices.data[j] {
				return false
			}
		}
	}
	return true
}
