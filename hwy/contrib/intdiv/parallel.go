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
	"github.com/ajroetker/go-intdiv/hwy"
	"github.com/ajroetker/go-intdiv/hwy/contrib/workerpool"
)

// MinParallelElements is the smallest range ParallelDivideByScalar splits
// across workers.
const MinParallelElements = 1 << 16

// ParallelDivideByScalar is DivideByScalar split across the workers of pool.
//
// Each chunk is a whole number of vectors and reports its own Status; the
// statuses are merged after all chunks finish, so no flag is shared between
// workers. Small ranges, a nil pool, and overlapping buffers run on the
// calling goroutine.
func ParallelDivideByScalar[T hwy.Integers](pool *workerpool.Pool, dst, src []T, d T) Status {
	if len(dst) != len(src) {
		panic("intdiv: slice length mismatch")
	}
	n := len(src)
	if pool == nil || pool.NumWorkers() < 2 || n < MinParallelElements || slicesOverlap(dst, src) {
		return DivideByScalar(dst, src, d)
	}

	chunk := hwy.AlignedSize[T]((n + pool.NumWorkers() - 1) / pool.NumWorkers())
	chunks := (n + chunk - 1) / chunk
	statuses := make([]Status, chunks)
	pool.ParallelFor(chunks, func(start, end int) {
		for c := start; c < end; c++ {
			lo := c * chunk
			hi := min(lo+chunk, n)
			statuses[c] = DivideByScalar(dst[lo:hi], src[lo:hi], d)
		}
	})

	var st Status
	for _, s := range statuses {
		st |= s
	}
	return st
}
