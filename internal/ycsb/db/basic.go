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

// Package db holds the storage adapters a workload can be pointed at: an
// in-process map for smoke-testing the harness itself, and a Redis-backed
// adapter for exercising a real server.
package db

import (
	"context"
	"sort"
	"sync"
	"time"

	"ycsbgo/internal/ycsb/core"
)

// Basic is an in-memory adapter, one map of fields per key per table. It
// never fails and never blocks, so it is the adapter a fresh harness build
// should be validated against before pointing it at real infrastructure.
type Basic struct {
	mu       sync.RWMutex
	tables   map[string]map[string]core.FieldValues
	tracing  bool
	tracesMu sync.Mutex
	traces   []core.TraceInfo
}

// NewBasic constructs an empty in-memory adapter. When tracing is true,
// every operation records a TraceInfo retrievable via Traces.
func NewBasic(tracing bool) *Basic {
	return &Basic{tables: map[string]map[string]core.FieldValues{}, tracing: tracing}
}

// trace records one completed operation span when tracing is enabled.
func (b *Basic) trace(op string, start time.Time) {
	if !b.tracing {
		return
	}
	t := core.NewTraceInfo(op)
	t.Record(op, start, time.Now())
	b.tracesMu.Lock()
	b.traces = append(b.traces, t)
	b.tracesMu.Unlock()
}

func (b *Basic) table(name string) map[string]core.FieldValues {
	t, ok := b.tables[name]
	if !ok {
		t = map[string]core.FieldValues{}
		b.tables[name] = t
	}
	return t
}

func (b *Basic) Init(ctx context.Context) error { return nil }

func (b *Basic) Cleanup(ctx context.Context) error { return nil }

func (b *Basic) Read(ctx context.Context, table, key string, fields []string, options map[string]string, out core.FieldValues) (core.Status, error) {
	start := time.Now()
	defer b.trace("READ", start)

	b.mu.RLock()
	defer b.mu.RUnlock()

	record, ok := b.tables[table][key]
	if !ok {
		return core.StatusNotFound, nil
	}
	copyFields(record, fields, out)
	return core.StatusOK, nil
}

func (b *Basic) Scan(ctx context.Context, table, startKey string, count int, fields []string, out *[]core.FieldValues) (core.Status, error) {
	start := time.Now()
	defer b.trace("SCAN", start)

	b.mu.RLock()
	defer b.mu.RUnlock()

	t := b.tables[table]
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	started := false
	for _, k := range keys {
		if !started {
			if k < startKey {
				continue
			}
			started = true
		}
		if len(*out) >= count {
			break
		}
		values := core.FieldValues{}
		copyFields(t[k], fields, values)
		*out = append(*out, values)
	}
	return core.StatusOK, nil
}

func (b *Basic) Update(ctx context.Context, table, key string, values core.FieldValues) (core.Status, error) {
	start := time.Now()
	defer b.trace("UPDATE", start)

	b.mu.Lock()
	defer b.mu.Unlock()

	record, ok := b.table(table)[key]
	if !ok {
		return core.StatusNotFound, nil
	}
	for name, value := range values {
		record[name] = value
	}
	return core.StatusOK, nil
}

func (b *Basic) Insert(ctx context.Context, table, key string, values core.FieldValues, options map[string]string) (core.Status, error) {
	start := time.Now()
	defer b.trace("INSERT", start)

	b.mu.Lock()
	defer b.mu.Unlock()

	record := make(core.FieldValues, len(values))
	for name, value := range values {
		record[name] = value
	}
	b.table(table)[key] = record
	return core.StatusOK, nil
}

func (b *Basic) Delete(ctx context.Context, table, key string) (core.Status, error) {
	start := time.Now()
	defer b.trace("DELETE", start)

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.tables[table][key]; !ok {
		return core.StatusNotFound, nil
	}
	delete(b.tables[table], key)
	return core.StatusOK, nil
}

// Traces returns the recorded per-operation traces, or nil when tracing was
// never enabled.
func (b *Basic) Traces() []core.TraceInfo {
	b.tracesMu.Lock()
	defer b.tracesMu.Unlock()
	return append([]core.TraceInfo(nil), b.traces...)
}

func copyFields(record core.FieldValues, fields []string, out core.FieldValues) {
	if fields == nil {
		for name, value := range record {
			out[name] = value
		}
		return
	}
	for _, name := range fields {
		if value, ok := record[name]; ok {
			out[name] = value
		}
	}
}
