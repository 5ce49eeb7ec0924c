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

package hwy

import (
	"math/rand/v2"
	"testing"
)

func divisorCheck[T Lanes](t *testing.T, name string, divisors []T, rng *rand.Rand) {
	t.Helper()
	lanes := MaxLanes[T]()
	src := make([]T, lanes)
	for _, d := range divisors {
		if d == 0 {
			continue
		}
		dv := NewDivisor(d)
		for range 64 {
			for i := range src {
				src[i] = T(rng.Uint64())
			}
			src[0] = MinValue[T]()
			src[1%lanes] = MaxValue[T]()
			got := dv.Div(Load(src))
			for i, x := range src {
				if want := x / d; GetLane(got, i) != want {
					t.Fatalf("%s: %v / %v: got %v, want %v", name, x, d, GetLane(got, i), want)
				}
			}
		}
	}
}

func TestDivisorMatchesHardware(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	divisorCheck(t, "int8", []int8{1, -1, 2, -2, 3, 7, -7, 127, -128, 100}, rng)
	divisorCheck(t, "uint8", []uint8{1, 2, 3, 7, 128, 255}, rng)
	divisorCheck(t, "int16", []int16{1, -1, 3, -10, 255, 32767, -32768}, rng)
	divisorCheck(t, "uint16", []uint16{1, 3, 10, 65535, 4096}, rng)
	divisorCheck(t, "int32", []int32{1, -1, 3, -7, 641, 1 << 30, -1 << 31, 2147483647}, rng)
	divisorCheck(t, "uint32", []uint32{1, 3, 7, 641, 1 << 31, 4294967295, 4294967294}, rng)
	divisorCheck(t, "int64", []int64{1, -1, 3, -7, 1 << 40, -1 << 63}, rng)
	divisorCheck(t, "uint64", []uint64{1, 3, 7, 1 << 63, 18446744073709551615}, rng)
}

func TestDivisorExhaustiveInt8(t *testing.T) {
	for d := -128; d <= 127; d++ {
		if d == 0 {
			continue
		}
		dv := NewDivisor(int8(d))
		for n := -128; n <= 127; n++ {
			got := GetLane(dv.Div(Set(int8(n))), 0)
			if want := int8(n) / int8(d); got != want {
				t.Fatalf("Divisor(%d).Div(%d): got %d, want %d", d, n, got, want)
			}
		}
	}
}

func TestNewDivisorZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewDivisor(0): expected panic")
		}
	}()
	NewDivisor[uint16](0)
}

func TestDivisorValue(t *testing.T) {
	if got := NewDivisor[int32](-9).Value(); got != -9 {
		t.Errorf("Value: got %d, want -9", got)
	}
}

func BenchmarkDivisor(b *testing.B) {
	x := Iota[uint32]()
	dv := NewDivisor[uint32](7)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = dv.Div(x)
	}
}
