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
	"context"
	"sync"
	"time"
)

// ReturnCodes counts status codes observed per operation name, for the
// per-operation return-code table mentioned in §7.
type ReturnCodes struct {
	mu     sync.Mutex
	counts map[string]map[Status]int64
}

// NewReturnCodes constructs an empty return-code table.
func NewReturnCodes() *ReturnCodes {
	return &ReturnCodes{counts: map[string]map[Status]int64{}}
}

func (rc *ReturnCodes) record(op string, status Status) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	m, ok := rc.counts[op]
	if !ok {
		m = map[Status]int64{}
		rc.counts[op] = m
	}
	m[status]++
}

// Snapshot returns a copy of the current counts, op -> status -> count.
func (rc *ReturnCodes) Snapshot() map[string]map[Status]int64 {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	out := make(map[string]map[Status]int64, len(rc.counts))
	for op, m := range rc.counts {
		cp := make(map[Status]int64, len(m))
		for status, n := range m {
			cp[status] = n
		}
		out[op] = cp
	}
	return out
}

// MeasuringDB wraps a DB so that every call captures intended start, actual
// start, and end timestamps, then records two latency samples (the op and
// its "Intended-" counterpart, both in microseconds) per §4.4. The
// measurement name is suffixed with "-FAILED" when the call does not
// return StatusOK, so success and failure latencies are reported
// separately.
type MeasuringDB struct {
	db          DB
	registry    *Registry
	returnCodes *ReturnCodes
	// Hook, when set, observes every completed call in addition to the
	// registry recording above — the seam telemetry mirrors (e.g. a
	// Prometheus exporter) attach to, so a second sink never needs its own
	// copy of the timing logic.
	Hook func(op string, status Status, micros int64)
}

// NewMeasuringDB wraps db with latency recording into registry.
func NewMeasuringDB(db DB, registry *Registry, returnCodes *ReturnCodes) *MeasuringDB {
	return &MeasuringDB{db: db, registry: registry, returnCodes: returnCodes}
}

func (m *MeasuringDB) measure(op string, intendedStart time.Time, call func() (Status, error)) (Status, error) {
	actualStart := time.Now()
	status, err := call()
	end := time.Now()

	name := op
	if !status.IsOK() {
		name = op + "-FAILED"
	}
	micros := end.Sub(actualStart).Microseconds()
	_ = m.registry.Measure(name, micros)
	_ = m.registry.Measure("Intended-"+name, end.Sub(intendedStart).Microseconds())
	m.returnCodes.record(op, status)
	if m.Hook != nil {
		m.Hook(op, status, micros)
	}
	return status, err
}

func (m *MeasuringDB) Init(ctx context.Context) error { return m.db.Init(ctx) }

func (m *MeasuringDB) Cleanup(ctx context.Context) error { return m.db.Cleanup(ctx) }

func (m *MeasuringDB) Read(ctx context.Context, intendedStart time.Time, table, key string, fields []string, options map[string]string, out FieldValues) (Status, error) {
	return m.measure("READ", intendedStart, func() (Status, error) {
		return m.db.Read(ctx, table, key, fields, options, out)
	})
}

func (m *MeasuringDB) Scan(ctx context.Context, intendedStart time.Time, table, startKey string, count int, fields []string, out *[]FieldValues) (Status, error) {
	return m.measure("SCAN", intendedStart, func() (Status, error) {
		return m.db.Scan(ctx, table, startKey, count, fields, out)
	})
}

func (m *MeasuringDB) Update(ctx context.Context, intendedStart time.Time, table, key string, values FieldValues) (Status, error) {
	return m.measure("UPDATE", intendedStart, func() (Status, error) {
		return m.db.Update(ctx, table, key, values)
	})
}

func (m *MeasuringDB) Insert(ctx context.Context, intendedStart time.Time, table, key string, values FieldValues, options map[string]string) (Status, error) {
	return m.measure("INSERT", intendedStart, func() (Status, error) {
		return m.db.Insert(ctx, table, key, values, options)
	})
}

func (m *MeasuringDB) Delete(ctx context.Context, intendedStart time.Time, table, key string) (Status, error) {
	return m.measure("DELETE", intendedStart, func() (Status, error) {
		return m.db.Delete(ctx, table, key)
	})
}
