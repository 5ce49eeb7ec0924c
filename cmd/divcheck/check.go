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

package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/ajroetker/go-intdiv/hwy"
	"github.com/ajroetker/go-intdiv/hwy/contrib/intdiv"
	"github.com/ajroetker/go-intdiv/hwy/contrib/workerpool"
	"go.uber.org/zap"
)

// Report summarizes the checks run for one element type.
type Report struct {
	Type       string
	Cases      int
	Mismatches int
	Status     intdiv.Status
}

// checker holds the shared state of one element type's run.
type checker struct {
	cfg    Config
	pool   *workerpool.Pool
	log    *zap.Logger
	flags  *intdiv.Register
	stream uint64
	report Report
}

type checkFunc func(ctx context.Context, c *checker) error

var checks = map[string]checkFunc{
	"int8":   checkType[int8],
	"int16":  checkType[int16],
	"int32":  checkType[int32],
	"int64":  checkType[int64],
	"uint8":  checkType[uint8],
	"uint16": checkType[uint16],
	"uint32": checkType[uint32],
	"uint64": checkType[uint64],
}

func typeNames() []string {
	names := make([]string, 0, len(checks))
	for name := range checks {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// expect compares a kernel result with the reference and records the case.
func expect[T hwy.Integers](c *checker, name string, got, want []T, gotStatus, wantStatus intdiv.Status) {
	c.report.Cases++
	c.flags.Raise(gotStatus)
	if slices.Equal(got, want) && gotStatus == wantStatus {
		return
	}
	c.report.Mismatches++
	c.log.Warn("kernel mismatch",
		zap.String("check", name),
		zap.Stringer("status", gotStatus),
		zap.Stringer("wantStatus", wantStatus),
		zap.Int("len", len(want)),
	)
}

func randomSlice[T hwy.Integers](r *rand.Rand, n int) []T {
	s := make([]T, n)
	for i := range s {
		switch r.IntN(16) {
		case 0:
			s[i] = hwy.MinValue[T]()
		case 1:
			s[i] = hwy.MaxValue[T]()
		case 2:
			s[i] = 0
		case 3:
			s[i] = ^T(0)
		default:
			s[i] = T(r.Uint64())
		}
	}
	return s
}

func referenceDivide[T hwy.Integers](n, d []T) ([]T, intdiv.Status) {
	out := make([]T, len(n))
	var st intdiv.Status
	for i := range n {
		q, s := intdiv.Div(n[i], d[i])
		out[i] = q
		st |= s
	}
	return out, st
}

// checkType runs cfg.Iterations randomized rounds for element type T. Each
// round draws a length and a divisor, then checks every dispatch strategy,
// the batch kernel, the parallel driver and indexed division. Rounds are
// preceded by one pass over ranges long enough to be split across the pool.
func checkType[T hwy.Integers](ctx context.Context, c *checker) error {
	r := rand.New(rand.NewPCG(c.cfg.Seed, c.stream))
	if c.cfg.Iterations > 0 {
		checkParallel[T](c, r)
	}
	for it := range c.cfg.Iterations {
		if err := ctx.Err(); err != nil {
			return err
		}
		n := r.IntN(c.cfg.MaxLength + 1)
		src := randomSlice[T](r, n)
		divisors := randomSlice[T](r, n)
		d := randomSlice[T](r, 1)[0]
		if it%4 == 0 {
			d = T(r.IntN(3)) - 1
		}

		want, wantStatus := referenceDivide(src, slices.Repeat([]T{d}, n))

		// Scalar divisor through the dispatcher.
		out := make([]T, n)
		st := intdiv.Divide[T](intdiv.Contiguous(src), intdiv.Scalar(&d), intdiv.Contiguous(out), n)
		expect(c, "scalar-divisor", out, want, st, wantStatus)

		// Batch kernel directly.
		out = make([]T, n)
		st = intdiv.DivideByScalar(out, src, d)
		expect(c, "batch", out, want, st, wantStatus)

		// Parallel driver.
		out = make([]T, n)
		st = intdiv.ParallelDivideByScalar(c.pool, out, src, d)
		expect(c, "parallel", out, want, st, wantStatus)

		// General strides.
		gWant, gStatus := referenceDivide(src, divisors)
		out = make([]T, n)
		st = intdiv.Divide[T](intdiv.Contiguous(src), intdiv.Contiguous(divisors), intdiv.Contiguous(out), n)
		expect(c, "general", out, gWant, st, gStatus)

		// In place on the dividend.
		out = slices.Clone(src)
		st = intdiv.Divide[T](intdiv.Contiguous(out), intdiv.Contiguous(divisors), intdiv.Contiguous(out), n)
		expect(c, "in-place", out, gWant, st, gStatus)

		// Reduction of the divisors into one accumulator.
		acc := d
		rWant := []T{d}
		var rStatus intdiv.Status
		for _, v := range divisors {
			var s intdiv.Status
			rWant[0], s = intdiv.Div(rWant[0], v)
			rStatus |= s
		}
		st = intdiv.Divide[T](intdiv.Scalar(&acc), intdiv.Contiguous(divisors), intdiv.Scalar(&acc), n)
		expect(c, "reduce", []T{acc}, rWant, st, rStatus)

		if err := checkIndexed(c, r, src, divisors); err != nil {
			return err
		}
	}
	return nil
}

// checkParallel divides one range of at least intdiv.MinParallelElements by
// the special divisors and a random one through the parallel driver. It
// returns the range length.
func checkParallel[T hwy.Integers](c *checker, r *rand.Rand) int {
	n := intdiv.MinParallelElements + r.IntN(c.cfg.MaxLength+1)
	src := randomSlice[T](r, n)
	divisors := []T{0, 1, ^T(0), randomSlice[T](r, 1)[0]}
	out := make([]T, n)
	for _, d := range divisors {
		want, wantStatus := referenceDivide(src, slices.Repeat([]T{d}, n))
		st := intdiv.ParallelDivideByScalar(c.pool, out, src, d)
		expect(c, "parallel-split", out, want, st, wantStatus)
	}
	return n
}

// checkIndexed scatters divisions over src with random, possibly repeated
// and negative indices.
func checkIndexed[T hwy.Integers](c *checker, r *rand.Rand, src, values []T) error {
	if len(src) == 0 {
		return nil
	}
	indices := make([]int, len(values))
	for i := range indices {
		indices[i] = r.IntN(2*len(src)) - len(src)
	}

	want := slices.Clone(src)
	var wantStatus intdiv.Status
	for i, idx := range indices {
		if idx < 0 {
			idx += len(want)
		}
		q, s := intdiv.Div(want[idx], values[i])
		want[idx] = q
		wantStatus |= s
	}

	got := slices.Clone(src)
	st, err := intdiv.DivideAt(got, indices, values)
	if err != nil {
		return fmt.Errorf("indexed: %w", err)
	}
	expect(c, "indexed", got, want, st, wantStatus)
	return nil
}
