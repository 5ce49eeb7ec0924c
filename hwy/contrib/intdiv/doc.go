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

// Package intdiv provides the integer division loops of an array engine:
// floor division for signed lanes, truncating division for unsigned lanes,
// a vectorized path for dividing a contiguous array by a broadcast scalar,
// a binary-loop dispatcher over strided operands, and an indexed
// scatter-division kernel.
//
// Arithmetic exceptions never abort a loop. Every element gets a defined
// result (0 for a zero divisor, the saturated minimum for MIN / -1) and the
// condition is reported through the returned Status, which callers merge
// into a Register they poll afterwards:
//
//	var reg intdiv.Register
//	reg.Raise(intdiv.DivideByScalar(dst, src, int32(-3)))
//	if err := reg.Clear().Err(); err != nil {
//	    log.Println("warning:", err)
//	}
package intdiv
