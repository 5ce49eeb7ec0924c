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
	"strings"
	"sync/atomic"
)

// Status is a set of sticky arithmetic flags raised by a kernel call.
// The zero value means no condition occurred.
type Status uint8

const (
	// DivideByZero is raised when any processed element had a zero divisor.
	DivideByZero Status = 1 << iota

	// Overflow is raised when a signed minimum value was divided by -1.
	Overflow
)

var (
	// ErrDivideByZero reports a DivideByZero status.
	ErrDivideByZero = errors.New("intdiv: divide by zero encountered")

	// ErrOverflow reports an Overflow status.
	ErrOverflow = errors.New("intdiv: overflow encountered")
)

// Has reports whether every flag in f is set in s.
func (s Status) Has(f Status) bool {
	return s&f == f
}

// String returns the set flags joined by "|", or "ok".
func (s Status) String() string {
	if s == 0 {
		return "ok"
	}
	var parts []string
	if s.Has(DivideByZero) {
		parts = append(parts, "divide-by-zero")
	}
	if s.Has(Overflow) {
		parts = append(parts, "overflow")
	}
	return strings.Join(parts, "|")
}

// Err converts the set flags to an error, or nil if none are set.
// Both sentinels can be matched with errors.Is.
func (s Status) Err() error {
	var errs []error
	if s.Has(DivideByZero) {
		errs = append(errs, ErrDivideByZero)
	}
	if s.Has(Overflow) {
		errs = append(errs, ErrOverflow)
	}
	return errors.Join(errs...)
}

// Register accumulates Status flags across kernel calls until cleared.
// It is safe for concurrent use; a runtime may keep one per worker and
// merge them, or share one.
type Register struct {
	bits atomic.Uint32
}

// Raise sets the flags in s. Flags are never cleared by Raise.
func (r *Register) Raise(s Status) {
	if s != 0 {
		r.bits.Or(uint32(s))
	}
}

// Get returns the currently set flags.
func (r *Register) Get() Status {
	return Status(r.bits.Load())
}

// Clear resets the register and returns the flags that were set.
func (r *Register) Clear() Status {
	return Status(r.bits.Swap(0))
}
