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

import "context"

// FieldValues is a record's mapping from field name to an opaque byte
// sequence.
type FieldValues map[string][]byte

// DB is the storage adapter contract (§6). The orchestrator (cmd/ycsbgo)
// builds a single instance and shares it across every worker goroutine;
// workers do not get instances of their own, so the adapters in this repo
// guard their own state for concurrent calls.
type DB interface {
	// Init prepares the adapter for use. The orchestrator calls it once
	// before any worker starts; a non-nil error ends the run.
	Init(ctx context.Context) error

	// Cleanup releases any resources held by the adapter.
	Cleanup(ctx context.Context) error

	// Read fetches one record. fields == nil means "all fields"; an empty,
	// non-nil slice is reserved for adapters that support field projection.
	// Results are written into out.
	Read(ctx context.Context, table, key string, fields []string, options map[string]string, out FieldValues) (Status, error)

	// Scan fetches up to count records starting at startKey. Each matched
	// row is appended to out.
	Scan(ctx context.Context, table, startKey string, count int, fields []string, out *[]FieldValues) (Status, error)

	// Update applies values to an existing record.
	Update(ctx context.Context, table, key string, values FieldValues) (Status, error)

	// Insert creates a new record.
	Insert(ctx context.Context, table, key string, values FieldValues, options map[string]string) (Status, error)

	// Delete removes a record.
	Delete(ctx context.Context, table, key string) (Status, error)

	// Traces returns any trace records accumulated by this adapter
	// instance. Adapters that do not support tracing return nil.
	Traces() []TraceInfo
}
