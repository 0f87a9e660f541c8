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

import (
	"strings"
	"sync"
	"testing"
)

func TestRegistry_GetOrCreateIsIdempotent(t *testing.T) {
	r := NewRegistry(MeasurementHDRHistogram)
	a, err := r.GetOrCreate("READ")
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	b, err := r.GetOrCreate("READ")
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	if a != b {
		t.Fatal("expected the same measurement instance on repeated GetOrCreate")
	}
}

func TestRegistry_MeasureConcurrent(t *testing.T) {
	r := NewRegistry(MeasurementHDRHistogram)
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(v int64) {
			defer wg.Done()
			_ = r.Measure("READ", v+1)
		}(int64(i))
	}
	wg.Wait()

	summary := r.Summary(DefaultPercentiles)
	if !strings.Contains(summary, "READ Count=100") {
		t.Fatalf("expected 100 recorded samples in summary, got: %s", summary)
	}
}

func TestHDRMeasurement_SnapshotResetsLive(t *testing.T) {
	h := NewHDRMeasurement()
	for i := 0; i < 50; i++ {
		h.Measure(int64(i + 1))
	}
	first := h.Snapshot()
	if first.TotalCount() != 50 {
		t.Fatalf("expected 50 samples in first snapshot, got %d", first.TotalCount())
	}

	h.Measure(1)
	second := h.Snapshot()
	if second.TotalCount() != 51 {
		t.Fatalf("expected cumulative count 51 after merging one more sample, got %d", second.TotalCount())
	}
}

func TestBucketMeasurement_OverflowGoesToOverflowBucket(t *testing.T) {
	m := NewBucketMeasurement(10)
	m.Measure(5)
	m.Measure(50)
	summary := m.Summary("UPDATE", nil)
	if !strings.Contains(summary, "UPDATE Count=2") {
		t.Fatalf("expected both samples counted, got: %s", summary)
	}
	if !strings.Contains(summary, "Overflow=1") {
		t.Fatalf("expected the out-of-range sample in the overflow bucket, got: %s", summary)
	}
}

func TestPairMeasurement_FeedsBothSides(t *testing.T) {
	p := NewPairMeasurement(NewHDRMeasurement(), NewRawMeasurement())
	p.Measure(42)
	summary := p.Summary("READ", DefaultPercentiles)
	if strings.Count(summary, "READ Count=1") != 2 {
		t.Fatalf("expected both measurements to report Count=1, got: %s", summary)
	}
}
