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

// Per-dtype entry points, for callers that pick loops from a table keyed by
// element type.

// Loop is the signature of a binary division inner loop.
type Loop func(in1, in2, out Operand, n int) Status

// IndexedLoop is the signature of an indexed division loop.
type IndexedLoop func(base, indices, values Operand, n, axisLen int) (Status, error)

var (
	Int8Divide   Loop = Divide[int8]
	Int16Divide  Loop = Divide[int16]
	Int32Divide  Loop = Divide[int32]
	Int64Divide  Loop = Divide[int64]
	Uint8Divide  Loop = Divide[uint8]
	Uint16Divide Loop = Divide[uint16]
	Uint32Divide Loop = Divide[uint32]
	Uint64Divide Loop = Divide[uint64]

	Int8DivideIndexed   IndexedLoop = DivideIndexed[int8]
	Int16DivideIndexed  IndexedLoop = DivideIndexed[int16]
	Int32DivideIndexed  IndexedLoop = DivideIndexed[int32]
	Int64DivideIndexed  IndexedLoop = DivideIndexed[int64]
	Uint8DivideIndexed  IndexedLoop = DivideIndexed[uint8]
	Uint16DivideIndexed IndexedLoop = DivideIndexed[uint16]
	Uint32DivideIndexed IndexedLoop = DivideIndexed[uint32]
	Uint64DivideIndexed IndexedLoop = DivideIndexed[uint64]
)

// Loops maps dtype names to their binary division loops.
var Loops = map[string]Loop{
	"int8":   Int8Divide,
	"int16":  Int16Divide,
	"int32":  Int32Divide,
	"int64":  Int64Divide,
	"uint8":  Uint8Divide,
	"uint16": Uint16Divide,
	"uint32": Uint32Divide,
	"uint64": Uint64Divide,
}

// IndexedLoops maps dtype names to their indexed division loops.
var IndexedLoops = map[string]IndexedLoop{
	"int8":   Int8DivideIndexed,
	"int16":  Int16DivideIndexed,
	"int32":  Int32DivideIndexed,
	"int64":  Int64DivideIndexed,
	"uint8":  Uint8DivideIndexed,
	"uint16": Uint16DivideIndexed,
	"uint32": Uint32DivideIndexed,
	"uint64": Uint64DivideIndexed,
}
