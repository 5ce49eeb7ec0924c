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

// Package contrib holds kernels built on the portable hwy lane operations.
//
// # Subpackages
//
//   - intdiv: integer floor division (scalar, batch by a broadcast divisor,
//     strided binary loops, indexed scatter division) with status flags
//   - workerpool: persistent worker pool used to split large batch calls
//
// # Integer Division (hwy/contrib/intdiv)
//
//	import "github.com/ajroetker/go-intdiv/hwy/contrib/intdiv"
//
//	st := intdiv.DivideByScalar(dst, src, int32(-3))
//	if err := st.Err(); err != nil {
//	    // divide-by-zero or overflow was encountered
//	}
//
// Set HWY_NO_SIMD=1 to force the scalar dispatch level, or HWY_MAX_WIDTH
// to cap the vector width in bytes.
package contrib
