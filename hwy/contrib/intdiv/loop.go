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
	"unsafe"

	"github.com/ajroetker/go-intdiv/hwy"
	"go.uber.org/zap"
)

// Strategy identifies how Divide processes one inner-loop call.
type Strategy int

const (
	// StrategyReduce folds the second operand into an accumulator held by
	// the first operand and the output (same pointer, zero strides).
	StrategyReduce Strategy = iota

	// StrategyInPlace walks the operands element by element because the
	// output shares memory with an input.
	StrategyInPlace

	// StrategyScalarDivisor divides a contiguous first operand by a
	// broadcast non-zero scalar with DivideByScalar.
	StrategyScalarDivisor

	// StrategyGeneral walks arbitrary strides element by element.
	StrategyGeneral
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case StrategyReduce:
		return "reduce"
	case StrategyInPlace:
		return "in-place"
	case StrategyScalarDivisor:
		return "scalar-divisor"
	case StrategyGeneral:
		return "general"
	default:
		return "unknown"
	}
}

// SelectStrategy returns the strategy Divide uses for the given operands.
// The checks run in priority order: reduction, aliasing, broadcast divisor,
// general. The aliasing check always precedes the vector path.
func SelectStrategy[T hwy.Integers](in1, in2, out Operand, n int) Strategy {
	if in1.Ptr == out.Ptr && in1.Stride == 0 && out.Stride == 0 {
		return StrategyReduce
	}
	if overlap[T](out, in1, n) || overlap[T](out, in2, n) {
		return StrategyInPlace
	}
	size := int(unsafe.Sizeof(*new(T)))
	if n > 0 && in2.Stride == 0 && in1.Stride == size && out.Stride == size && *at[T](in2, 0) != 0 &&
		!overlap[T](out, in1, n) && !overlap[T](out, in2, n) {
		return StrategyScalarDivisor
	}
	return StrategyGeneral
}

// Divide is the binary inner loop out[i] = Div(in1[i], in2[i]) for
// i in [0, n), with byte strides taken from each operand.
//
// In reduction form (in1 and out are the same zero-stride accumulator) it
// computes acc = Div(acc, in2[i]) for each i in order and stores the final
// accumulator.
//
// The returned Status aggregates every flag raised by the call.
func Divide[T hwy.Integers](in1, in2, out Operand, n int) Status {
	if n <= 0 {
		return 0
	}
	switch strategy := SelectStrategy[T](in1, in2, out, n); strategy {
	case StrategyReduce:
		return reduce[T](in1, in2, n)
	case StrategyScalarDivisor:
		src := unsafe.Slice(at[T](in1, 0), n)
		dst := unsafe.Slice(at[T](out, 0), n)
		return DivideByScalar(dst, src, *at[T](in2, 0))
	case StrategyInPlace:
		if ce := Logger().Check(zap.DebugLevel, "aliased operands, dividing element by element"); ce != nil {
			ce.Write(
				zap.Int("n", n),
				zap.Int("in1Stride", in1.Stride),
				zap.Int("in2Stride", in2.Stride),
				zap.Int("outStride", out.Stride),
			)
		}
		return walk[T](in1, in2, out, n)
	default:
		return walk[T](in1, in2, out, n)
	}
}

// reduce folds n divisors into the accumulator at acc.
func reduce[T hwy.Integers](acc, divisors Operand, n int) Status {
	var st Status
	io := *at[T](acc, 0)
	for i := range n {
		var s Status
		io, s = Div(io, *at[T](divisors, i))
		st |= s
	}
	*at[T](acc, 0) = io
	return st
}

// walk applies Div to each index pair in increasing order, loading both
// inputs of element i before storing output i.
func walk[T hwy.Integers](in1, in2, out Operand, n int) Status {
	var st Status
	for i := range n {
		q, s := Div(*at[T](in1, i), *at[T](in2, i))
		*at[T](out, i) = q
		st |= s
	}
	return st
}
