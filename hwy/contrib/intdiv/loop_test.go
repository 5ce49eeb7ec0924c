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
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectStrategy(t *testing.T) {
	acc := int32(100)
	d := int32(3)
	zero := int32(0)
	a := make([]int32, 16)
	b := make([]int32, 16)
	c := make([]int32, 16)

	tests := []struct {
		name          string
		in1, in2, out Operand
		n             int
		want          Strategy
	}{
		{"reduce", Scalar(&acc), Contiguous(b), Scalar(&acc), 16, StrategyReduce},
		{"in-place first", Contiguous(a), Scalar(&d), Contiguous(a), 16, StrategyInPlace},
		{"in-place second", Contiguous(a), Contiguous(b), Contiguous(b), 16, StrategyInPlace},
		{"partial alias", Contiguous(a[1:]), Scalar(&d), Contiguous(a[:15]), 15, StrategyInPlace},
		{"scalar divisor", Contiguous(a), Scalar(&d), Contiguous(c), 16, StrategyScalarDivisor},
		{"zero scalar divisor", Contiguous(a), Scalar(&zero), Contiguous(c), 16, StrategyGeneral},
		{"contiguous divisor", Contiguous(a), Contiguous(b), Contiguous(c), 16, StrategyGeneral},
		{"strided input", Strided(a, 2), Scalar(&d), Contiguous(c), 8, StrategyGeneral},
		{"broadcast dividend", Scalar(&acc), Contiguous(b), Contiguous(c), 16, StrategyGeneral},
		{"disjoint halves", Contiguous(a[:8]), Scalar(&d), Contiguous(a[8:]), 8, StrategyScalarDivisor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SelectStrategy[int32](tt.in1, tt.in2, tt.out, tt.n))
		})
	}
}

func TestStrategyString(t *testing.T) {
	assert.Equal(t, "reduce", StrategyReduce.String())
	assert.Equal(t, "in-place", StrategyInPlace.String())
	assert.Equal(t, "scalar-divisor", StrategyScalarDivisor.String())
	assert.Equal(t, "general", StrategyGeneral.String())
	assert.Equal(t, "unknown", Strategy(42).String())
}

func TestDivideReduce(t *testing.T) {
	acc := int64(100)
	divisors := []int64{2, 3}
	st := Divide[int64](Scalar(&acc), Contiguous(divisors), Scalar(&acc), len(divisors))
	assert.Zero(t, st)
	assert.Equal(t, int64(16), acc)

	acc = -100
	st = Divide[int64](Scalar(&acc), Contiguous(divisors), Scalar(&acc), len(divisors))
	assert.Zero(t, st)
	assert.Equal(t, int64(-17), acc)
}

func TestDivideReduceFlags(t *testing.T) {
	acc := int8(-128)
	st := Divide[int8](Scalar(&acc), Contiguous([]int8{-1, 0, 5}), Scalar(&acc), 3)
	assert.Equal(t, Overflow|DivideByZero, st)
	assert.Zero(t, acc)
}

func TestDivideScalarDivisor(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 8))
	src := randomValues[int32](r, 37)
	dst := make([]int32, len(src))
	d := int32(-7)
	want, wantStatus := scalarReference(src, d)

	st := Divide[int32](Contiguous(src), Scalar(&d), Contiguous(dst), len(src))
	assert.Equal(t, wantStatus, st)
	assert.Equal(t, want, dst)
}

func TestDivideGeneral(t *testing.T) {
	n := []int16{-7, 7, -7, 7, 1, -32768, 0}
	d := []int16{2, 2, -2, -2, 0, -1, 3}
	out := make([]int16, len(n))
	st := Divide[int16](Contiguous(n), Contiguous(d), Contiguous(out), len(n))
	assert.Equal(t, DivideByZero|Overflow, st)
	assert.Equal(t, []int16{-4, 3, 3, -4, 0, -32768, 0}, out)
}

func TestDivideStrided(t *testing.T) {
	src := []uint32{10, 99, 20, 99, 30, 99, 40}
	d := []uint32{3, 4, 5, 6}
	out := make([]uint32, 4)
	st := Divide[uint32](Strided(src, 2), Contiguous(d), Strided(out[3:], -1), 4)
	assert.Zero(t, st)
	assert.Equal(t, []uint32{6, 6, 5, 3}, out)
}

func TestDivideBroadcastDividend(t *testing.T) {
	n := int32(-9)
	d := []int32{1, 2, 3, 4, 0}
	out := make([]int32, len(d))
	st := Divide[int32](Scalar(&n), Contiguous(d), Contiguous(out), len(d))
	assert.Equal(t, DivideByZero, st)
	assert.Equal(t, []int32{-9, -5, -3, -3, 0}, out)
}

func TestDivideInPlace(t *testing.T) {
	a := []int32{-9, 9, 100, -100}
	b := []int32{2, -2, 7, 0}
	st := Divide[int32](Contiguous(a), Contiguous(b), Contiguous(a), len(a))
	assert.Equal(t, DivideByZero, st)
	assert.Equal(t, []int32{-5, -5, 14, 0}, a)

	a = []int32{-9, 9, 100, -100}
	st = Divide[int32](Contiguous(a), Contiguous(b), Contiguous(b), len(a))
	assert.Equal(t, DivideByZero, st)
	assert.Equal(t, []int32{-5, -5, 14, 0}, b)
}

func TestDividePartialAlias(t *testing.T) {
	r := rand.New(rand.NewPCG(9, 10))
	const n = 40
	for shift := 1; shift < 8; shift++ {
		buf := randomValues[int16](r, n+shift)
		d := int16(3)
		want, wantStatus := forwardReference(buf, 0, shift, n, d)
		st := Divide[int16](Contiguous(buf[shift:]), Scalar(&d), Contiguous(buf[:n]), n)
		require.Equal(t, wantStatus, st)
		require.Equal(t, want, buf, "shift=%d", shift)

		buf = randomValues[int16](r, n+shift)
		want, wantStatus = forwardReference(buf, shift, 0, n, d)
		st = Divide[int16](Contiguous(buf[:n]), Scalar(&d), Contiguous(buf[shift:]), n)
		require.Equal(t, wantStatus, st)
		require.Equal(t, want, buf, "shift=%d", shift)
	}
}

func TestDivideEmpty(t *testing.T) {
	acc := int32(5)
	d := int32(0)
	assert.Zero(t, Divide[int32](Scalar(&acc), Scalar(&d), Scalar(&acc), 0))
	assert.Equal(t, int32(5), acc)
	assert.Zero(t, Divide[int32](Operand{}, Operand{}, Operand{}, 0))
}
