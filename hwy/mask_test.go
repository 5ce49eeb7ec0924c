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

import "testing"

func TestMaskAlgebra(t *testing.T) {
	a := MaskFromBits[int32](0b0011)
	b := MaskFromBits[int32](0b0101)

	tests := []struct {
		name string
		got  Mask[int32]
		want uint64
	}{
		{"MaskAnd", MaskAnd(a, b), 0b0001},
		{"MaskOr", MaskOr(a, b), 0b0111},
		{"MaskXor", MaskXor(a, b), 0b0110},
	}
	for _, tt := range tests {
		if got := BitsFromMask(tt.got); got != tt.want {
			t.Errorf("%s: got %04b, want %04b", tt.name, got, tt.want)
		}
	}

	lanes := MaxLanes[int32]()
	all := uint64(1)<<lanes - 1
	if got := BitsFromMask(MaskNot(a)); got != all&^0b0011 {
		t.Errorf("MaskNot: got %b", got)
	}
	if FindFirstTrue(b) != 0 || FindFirstTrue(MaskFromBits[int32](0)) != -1 {
		t.Error("FindFirstTrue: wrong lane")
	}
	if !AllFalse(MaskFromBits[int32](0)) || AllFalse(a) {
		t.Error("AllFalse: wrong result")
	}
	if !FirstN[int32](lanes).AllTrue() {
		t.Error("FirstN(lanes).AllTrue: got false")
	}
}
