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
	"fmt"
	"sort"
	"sync"
)

// RawMeasurement is an append-only list of samples, exported verbatim.
// Intended for small runs or debugging; unbounded growth is the caller's
// responsibility to avoid by keeping operation counts modest.
type RawMeasurement struct {
	mu      sync.Mutex
	samples []int64
}

// NewRawMeasurement constructs an empty raw sample list.
func NewRawMeasurement() *RawMeasurement {
	return &RawMeasurement{}
}

func (m *RawMeasurement) Measure(micros int64) {
	m.mu.Lock()
	m.samples = append(m.samples, micros)
	m.mu.Unlock()
}

// Samples returns a copy of the recorded samples, in recording order.
func (m *RawMeasurement) Samples() []int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]int64, len(m.samples))
	copy(cp, m.samples)
	return cp
}

func (m *RawMeasurement) Summary(name string, percentiles []float64) string {
	samples := m.Samples()
	if len(samples) == 0 {
		return fmt.Sprintf("[METRIC] %s Count=0", name)
	}
	sorted := append([]int64(nil), samples...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	var sum int64
	for _, s := range sorted {
		sum += s
	}
	avg := float64(sum) / float64(len(sorted))
	if len(percentiles) == 0 {
		percentiles = DefaultPercentiles
	}
	out := ""
	for i, p := range percentiles {
		if i > 0 {
			out += " "
		}
		idx := int(p / 100.0 * float64(len(sorted)-1))
		out += fmt.Sprintf("P%g=%d", p, sorted[idx])
	}
	return fmt.Sprintf("[METRIC] %s Count=%d Avg=%.2f Min=%d Max=%d %s",
		name, len(sorted), avg, sorted[0], sorted[len(sorted)-1], out)
}
