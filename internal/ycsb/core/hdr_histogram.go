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
	"sync"

	"github.com/codahale/hdrhistogram"
)

const (
	hdrMinValue = 1
	hdrMaxValue = 24 * 60 * 60 * 1_000_000 // 24h in microseconds
	hdrSigFigs  = 3
)

// HDRMeasurement is a high-dynamic-range integer histogram over
// microseconds, configured with 3 significant digits as required by §4.6.
//
// codahale/hdrhistogram.Histogram is not safe for concurrent RecordValue
// calls, so this wraps it with a mutex rather than the wait-free recorder
// the original design describes; a reporter snapshot folds the live
// histogram into a cumulative one and resets the live one, which is the
// same producer/snapshot-taker split §4.6 calls for, just lock-based
// instead of lock-free.
type HDRMeasurement struct {
	mu   sync.Mutex
	live *hdrhistogram.Histogram
	cum  *hdrhistogram.Histogram
}

// NewHDRMeasurement constructs an empty HDR histogram measurement.
func NewHDRMeasurement() *HDRMeasurement {
	return &HDRMeasurement{
		live: hdrhistogram.New(hdrMinValue, hdrMaxValue, hdrSigFigs),
		cum:  hdrhistogram.New(hdrMinValue, hdrMaxValue, hdrSigFigs),
	}
}

// Measure records one latency sample in microseconds.
func (h *HDRMeasurement) Measure(micros int64) {
	if micros < hdrMinValue {
		micros = hdrMinValue
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	_ = h.live.RecordValue(micros)
}

// Snapshot folds the live histogram's samples into the cumulative
// histogram and resets the live histogram, returning the cumulative
// histogram. Its callers are Summary (and so the exporter and
// Registry.Summary) and the exporter's .hdr file dump; the status reporter
// does not read measurements and never calls it.
func (h *HDRMeasurement) Snapshot() *hdrhistogram.Histogram {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.cum.Merge(h.live)
	h.live.Reset()
	return h.cum
}

// Measure satisfies Measurement; Summary renders the count/avg/min/max and
// the configured percentiles, matching the §6 export format.
func (h *HDRMeasurement) Summary(name string, percentiles []float64) string {
	cum := h.Snapshot()
	return fmt.Sprintf("[METRIC] %s Count=%d Avg=%.2f Min=%d Max=%d %s",
		name, cum.TotalCount(), cum.Mean(), cum.Min(), cum.Max(), percentileList(cum, percentiles))
}

func percentileList(h *hdrhistogram.Histogram, percentiles []float64) string {
	if len(percentiles) == 0 {
		percentiles = DefaultPercentiles
	}
	out := ""
	for i, p := range percentiles {
		if i > 0 {
			out += " "
		}
		out += fmt.Sprintf("P%g=%d", p, h.ValueAtQuantile(p))
	}
	return out
}
