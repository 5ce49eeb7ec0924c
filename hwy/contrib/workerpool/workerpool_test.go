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

package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()
	assert.Equal(t, 4, pool.NumWorkers())
}

func TestNewDefault(t *testing.T) {
	pool := New(0)
	defer pool.Close()
	assert.Equal(t, runtime.GOMAXPROCS(0), pool.NumWorkers())
}

func TestParallelForCoversRange(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	for _, n := range []int{0, 1, 3, 4, 5, 100, 1001} {
		hits := make([]int32, n)
		var calls atomic.Int32
		pool.ParallelFor(n, func(start, end int) {
			calls.Add(1)
			for i := start; i < end; i++ {
				atomic.AddInt32(&hits[i], 1)
			}
		})
		for i, h := range hits {
			require.EqualValues(t, 1, h, "n=%d index %d", n, i)
		}
		assert.LessOrEqual(t, int(calls.Load()), 4, "n=%d", n)
	}
}

func TestParallelForAfterClose(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close()

	var got []int
	pool.ParallelFor(10, func(start, end int) {
		got = append(got, start, end)
	})
	assert.Equal(t, []int{0, 10}, got)
}

func TestParallelForConcurrentCallers(t *testing.T) {
	pool := New(3)
	defer pool.Close()

	var wg sync.WaitGroup
	sums := make([]int64, 8)
	for c := range sums {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var sum atomic.Int64
			pool.ParallelFor(1000, func(start, end int) {
				for i := start; i < end; i++ {
					sum.Add(int64(i))
				}
			})
			sums[c] = sum.Load()
		}()
	}
	wg.Wait()
	for c, s := range sums {
		assert.EqualValues(t, 999*1000/2, s, "caller %d", c)
	}
}

func BenchmarkParallelFor(b *testing.B) {
	pool := New(runtime.GOMAXPROCS(0))
	defer pool.Close()
	data := make([]int32, 1<<16)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pool.ParallelFor(len(data), func(start, end int) {
			for j := start; j < end; j++ {
				data[j] /= 3
			}
		})
	}
}
