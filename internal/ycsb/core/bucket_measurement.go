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
	"sync/atomic"
)

// BucketMeasurement is a fixed bucket-width (1us) histogram up to a
// configurable cap, with an overflow bucket, used when literal bucket
// counts are required instead of HDR's log-linear representation.
type BucketMeasurement struct {
	cap      int64
	buckets  []atomic.Int64
	overflow atomic.Int64
	count    atomic.Int64
	sum      atomic.Int64
	min      atomic.Int64
	max      atomic.Int64
}

// NewBucketMeasurement constructs a bucket histogram with buckets [0, cap).
func NewBucketMeasurement(cap int64) *BucketMeasurement {
	if cap <= 0 {
		cap = 1000
	}
	m := &BucketMeasurement{cap: cap, buckets: make([]atomic.Int64, cap)}
	m.min.Store(-1)
	return m
}

func (m *BucketMeasurement) Measure(micros int64) {
	m.count.Add(1)
	m.sum.Add(micros)
	for {
		cur := m.min.Load()
		if cur >= 0 && cur <= micros {
			break
		}
		if m.min.CompareAndSwap(cur, micros) {
			break
		}
	}
	for {
		cur := m.max.Load()
		if cur >= micros {
			break
		}
		if m.max.CompareAndSwap(cur, micros) {
			break
		}
	}
	if micros < 0 {
		micros = 0
	}
	if micros >= m.cap {
		m.overflow.Add(1)
		return
	}
	m.buckets[micros].Add(1)
}

func (m *BucketMeasurement) Summary(name string, percentiles []float64) string {
	count := m.count.Load()
	avg := 0.0
	if count > 0 {
		avg = float64(m.sum.Load()) / float64(count)
	}
	return fmt.Sprintf("[METRIC] %s Count=%d Avg=%.2f Min=%d Max=%d Overflow=%d %s",
		name, count, avg, max64(m.min.Load(), 0), m.max.Load(), m.overflow.Load(),
		bucketPercentileList(m, percentiles))
}

func bucketPercentileList(m *BucketMeasurement, percentiles []float64) string {
	if len(percentiles) == 0 {
		percentiles = DefaultPercentiles
	}
	total := m.count.Load()
	out := ""
	for i, p := range percentiles {
		if i > 0 {
			out += " "
		}
		out += fmt.Sprintf("P%g=%d", p, bucketQuantile(m, total, p))
	}
	return out
}

func bucketQuantile(m *BucketMeasurement, total int64, p float64) int64 {
	if total == 0 {
		return 0
	}
	target := int64(float64(total) * p / 100.0)
	var running int64
	for i := int64(0); i < m.cap; i++ {
		running += m.buckets[i].Load()
		if running >= target {
			return i
		}
	}
	return m.cap
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
