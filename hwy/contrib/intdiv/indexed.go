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

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/ajroetker/go-intdiv/hwy"
	"go.uber.org/zap"
)

// ErrIndexOutOfRange is wrapped by the errors DivideIndexed returns for an
// index outside the addressed axis.
var ErrIndexOutOfRange = errors.New("intdiv: index out of range")

// IndexError describes the first invalid index of an index stream.
type IndexError struct {
	Iteration int // position in the index stream
	Index     int // index as given, before normalization
	AxisLen   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("intdiv: index %d is out of bounds for axis with size %d (iteration %d)",
		e.Index, e.AxisLen, e.Iteration)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

// DivideIndexed divides base elements in place, addressed through an index
// stream: for i in [0, n), in order,
//
//	base[idx[i]] = Div(base[idx[i]], values[i])
//
// where a negative idx[i] is first normalized by adding axisLen. indices
// addresses int elements; base and values address T elements.
//
// Iterations that hit the same element compose: the second division sees
// the result of the first, and a value or index stored inside the base axis
// is read after the earlier iterations have written it.
//
// Every index is validated before any element is written; if one falls
// outside [0, axisLen) after normalization the call returns an *IndexError
// and base is left untouched. When the index stream itself lies inside the
// base axis, each index is instead read and validated as its iteration runs,
// and an invalid index stops the call with the earlier iterations applied.
func DivideIndexed[T hwy.Integers](base, indices, values Operand, n, axisLen int) (Status, error) {
	if n <= 0 {
		return 0, nil
	}
	size := unsafe.Sizeof(*new(T))
	if spansOverlap(indices, n, unsafe.Sizeof(int(0)), base, axisLen, size) {
		return divideIndexedStream[T](base, indices, values, n, axisLen)
	}

	norm := make([]int, n)
	for i := range norm {
		j, err := normalizeIndex(*at[int](indices, i), i, axisLen)
		if err != nil {
			return 0, err
		}
		norm[i] = j
	}

	var st Status
	i := 0
	if lanes := hwy.MaxLanes[T](); base.Stride == int(size) && n >= lanes &&
		!spansOverlap(values, n, size, base, axisLen, size) {
		st, i = divideIndexedBatches(unsafe.Slice(at[T](base, 0), axisLen), norm, values, lanes)
	}
	for ; i < n; i++ {
		p := at[T](base, norm[i])
		q, s := Div(*p, *at[T](values, i))
		*p = q
		st |= s
	}
	return st, nil
}

// normalizeIndex maps a possibly negative index onto [0, axisLen).
func normalizeIndex(idx, iteration, axisLen int) (int, error) {
	j := idx
	if j < 0 {
		j += axisLen
	}
	if j < 0 || j >= axisLen {
		err := &IndexError{Iteration: iteration, Index: idx, AxisLen: axisLen}
		if ce := Logger().Check(zap.DebugLevel, "rejected index stream"); ce != nil {
			ce.Write(zap.Error(err))
		}
		return 0, err
	}
	return j, nil
}

// divideIndexedStream runs one iteration at a time, reading index i and
// value i only after iteration i-1 has stored its result.
func divideIndexedStream[T hwy.Integers](base, indices, values Operand, n, axisLen int) (Status, error) {
	var st Status
	for i := range n {
		j, err := normalizeIndex(*at[int](indices, i), i, axisLen)
		if err != nil {
			return st, err
		}
		p := at[T](base, j)
		q, s := Div(*p, *at[T](values, i))
		*p = q
		st |= s
	}
	return st, nil
}

// divideIndexedBatches processes the stream in groups of lanes iterations
// through gather/scatter. A group is vectorized only if its indices are
// pairwise distinct; otherwise its iterations run one at a time so repeated
// indices compose in stream order. It returns the accumulated status and
// the number of iterations consumed.
func divideIndexedBatches[T hwy.Integers](base []T, norm []int, values Operand, lanes int) (Status, int) {
	var st Status
	vals := make([]T, lanes)
	i := 0
	for ; i+lanes <= len(norm); i += lanes {
		group := norm[i : i+lanes]
		idx := hwy.IndicesFromSlice(group)
		if !hwy.DistinctIndices(idx) {
			for k, j := range group {
				q, s := Div(base[j], *at[T](values, i+k))
				base[j] = q
				st |= s
			}
			continue
		}
		for k := range vals {
			vals[k] = *at[T](values, i+k)
		}
		q, s := divLanes(hwy.GatherIndex(base, idx), hwy.Load(vals))
		hwy.ScatterIndex(q, base, idx)
		st |= s
	}
	return st, i
}

// DivideAt is DivideIndexed over slices: base is the axis, and iteration i
// divides base[indices[i]] by values[i]. It panics if indices and values
// have different lengths.
func DivideAt[T hwy.Integers](base []T, indices []int, values []T) (Status, error) {
	if len(indices) != len(values) {
		panic("intdiv: slice length mismatch")
	}
	return DivideIndexed[T](Contiguous(base), Contiguous(indices), Contiguous(values), len(indices), len(base))
}
