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

// Command divcheck cross-checks the integer floor-division kernels against
// the scalar reference for every element type and dispatch strategy.
//
// Usage:
//
//	divcheck --types int8,uint32 --iterations 500 --max-length 300
//	divcheck --config divcheck.toml --verbose
//	HWY_NO_SIMD=1 divcheck --types all
//
// Settings are resolved from defaults, then DIVCHECK_SEED and
// DIVCHECK_ITERATIONS, then the TOML file given by --config, then flags.
// The command exits non-zero if any kernel result differs from the
// reference.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
