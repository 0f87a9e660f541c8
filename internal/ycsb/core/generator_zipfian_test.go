// Copyright 2025 Esteban Alvarez. All Rights Reserved.
//
// Created: October 2025
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

package core

import "testing"

func TestZipfianGenerator_RangeAndSkew(t *testing.T) {
	const n = 1000
	z, err := NewZipfianGenerator(n, DefaultZipfianTheta)
	if err != nil {
		t.Fatalf("NewZipfianGenerator: %v", err)
	}

	counts := make([]int, n)
	const draws = 200_000
	for i := 0; i < draws; i++ {
		v := z.Next()
		if v < 0 || v >= n {
			t.Fatalf("draw %d out of range [0, %d)", v, n)
		}
		counts[v]++
	}

	if counts[0] <= counts[n/2] {
		t.Fatalf("expected item 0 to be drawn far more than a mid-range item: got %d vs %d", counts[0], counts[n/2])
	}
	if counts[0] <= counts[n-1] {
		t.Fatalf("expected item 0 to dominate the tail item: got %d vs %d", counts[0], counts[n-1])
	}
}

func TestZipfianGenerator_RejectsNonPositiveN(t *testing.T) {
	if _, err := NewZipfianGenerator(0, DefaultZipfianTheta); err == nil {
		t.Fatal("expected an error for n=0")
	}
}

func TestScrambledZipfianGenerator_StaysInRange(t *testing.T) {
	const lo, hi = 100, 200
	z, err := NewScrambledZipfianGenerator(lo, hi)
	if err != nil {
		t.Fatalf("NewScrambledZipfianGenerator: %v", err)
	}
	for i := 0; i < 10_000; i++ {
		v := z.Next()
		if v < lo || v >= hi {
			t.Fatalf("draw %d out of range [%d, %d)", v, lo, hi)
		}
	}
}
