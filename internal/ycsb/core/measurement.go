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
	"strings"
	"sync"
)

// MeasurementType selects the backing implementation for a named metric.
type MeasurementType string

const (
	MeasurementHDRHistogram        MeasurementType = "hdrhistogram"
	MeasurementBucket              MeasurementType = "histogram"
	MeasurementRaw                 MeasurementType = "raw"
	MeasurementTimeSeries          MeasurementType = "timeseries"
	MeasurementHDRHistogramAndRaw  MeasurementType = "hdrhistogram+raw"
	MeasurementHDRHistogramAndHist MeasurementType = "hdrhistogram+histogram"
)

// DefaultPercentiles is the export set used unless configured otherwise.
var DefaultPercentiles = []float64{50, 75, 95, 99, 99.9, 99.99}

// Measurement is the common surface every measurement variant implements.
type Measurement interface {
	// Measure records one latency sample, in microseconds.
	Measure(micros int64)
	// Summary renders the metric's current state as the "[METRIC] name ..."
	// export line described in §6; name identifies which metric this is
	// (e.g. "READ", "Intended-READ", "UPDATE-FAILED").
	Summary(name string, percentiles []float64) string
}

// Registry is a concurrent, lazily-populated mapping from metric name to
// Measurement. get-or-create races are resolved with a double-checked lock
// rather than a lock-free CAS map, since measurement creation (e.g. an HDR
// histogram) is too heavy to retry cheaply; the critical section is held
// only around the map access, not around recording.
type Registry struct {
	mu           sync.RWMutex
	measurements map[string]Measurement
	types        map[string]MeasurementType
	defaultType  MeasurementType
	bucketCap    int64
}

// NewRegistry constructs an empty registry. defaultType selects the
// implementation every metric is created with.
func NewRegistry(defaultType MeasurementType) *Registry {
	return &Registry{
		measurements: map[string]Measurement{},
		types:        map[string]MeasurementType{},
		defaultType:  defaultType,
		bucketCap:    1000,
	}
}

// GetOrCreate returns the existing measurement for name, or atomically
// constructs one of the registry's default type. It takes no type
// argument and performs no type check on retrieval: every entry has the
// default type, and the only error is an unknown default type.
func (r *Registry) GetOrCreate(name string) (Measurement, error) {
	r.mu.RLock()
	m, ok := r.measurements[name]
	r.mu.RUnlock()
	if ok {
		return m, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if m, ok := r.measurements[name]; ok {
		return m, nil
	}
	m, err := r.newMeasurement(r.defaultType)
	if err != nil {
		return nil, err
	}
	r.measurements[name] = m
	r.types[name] = r.defaultType
	return m, nil
}

func (r *Registry) newMeasurement(t MeasurementType) (Measurement, error) {
	switch t {
	case MeasurementHDRHistogram:
		return NewHDRMeasurement(), nil
	case MeasurementBucket:
		return NewBucketMeasurement(r.bucketCap), nil
	case MeasurementRaw:
		return NewRawMeasurement(), nil
	case MeasurementTimeSeries:
		return NewTimeSeriesMeasurement(), nil
	case MeasurementHDRHistogramAndRaw:
		return NewPairMeasurement(NewHDRMeasurement(), NewRawMeasurement()), nil
	case MeasurementHDRHistogramAndHist:
		return NewPairMeasurement(NewHDRMeasurement(), NewBucketMeasurement(r.bucketCap)), nil
	default:
		return nil, fmt.Errorf("measurement registry: unknown type %q", t)
	}
}

// Measure records a sample into the named metric, creating it if absent.
func (r *Registry) Measure(name string, micros int64) error {
	m, err := r.GetOrCreate(name)
	if err != nil {
		return err
	}
	m.Measure(micros)
	return nil
}

// Names returns the currently known metric names, sorted, for stable
// export ordering.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.measurements))
	for name := range r.measurements {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Summary returns the registry-wide summary string across every metric,
// one line per metric (two for the hdrhistogram+raw and
// hdrhistogram+histogram pair types), in the format documented in §6.
func (r *Registry) Summary(percentiles []float64) string {
	var b strings.Builder
	for _, name := range r.Names() {
		r.mu.RLock()
		m := r.measurements[name]
		r.mu.RUnlock()
		b.WriteString(m.Summary(name, percentiles))
		b.WriteByte('\n')
	}
	return b.String()
}
