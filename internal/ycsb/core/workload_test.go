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
	"testing"
)

func newTestProperties(pairs map[string]string) *Properties {
	p := NewProperties()
	p.Set(PropWorkload, "test")
	for k, v := range pairs {
		p.Set(k, v)
	}
	return p
}

func TestWorkload_AckCounterStartsAtLoadedRange(t *testing.T) {
	props := newTestProperties(map[string]string{
		PropRecordCount:         "1000",
		PropRequestDistribution: "uniform",
	})
	w, err := NewWorkload(props)
	if err != nil {
		t.Fatalf("NewWorkload: %v", err)
	}

	// A fresh workload must consider the whole loaded range already
	// acknowledged with no Acknowledge calls, or a pure-read TRANSACTIONS
	// run (Scenario B) spins forever on its first draw.
	if got, want := w.ackCounter.LastValue(), int64(999); got != want {
		t.Fatalf("expected LastValue() == %d immediately after NewWorkload, got %d", want, got)
	}

	for i := 0; i < 10_000; i++ {
		id := w.NextTransactionKey()
		if id > w.ackCounter.LastValue() {
			t.Fatalf("drew key %d beyond acknowledged boundary %d", id, w.ackCounter.LastValue())
		}
	}
}

func TestWorkload_TransactionInsertDrawsNewIDsBeyondLoadedRange(t *testing.T) {
	props := newTestProperties(map[string]string{PropRecordCount: "1000"})
	w, err := NewWorkload(props)
	if err != nil {
		t.Fatalf("NewWorkload: %v", err)
	}

	id := w.ackCounter.Next()
	if id < 1000 {
		t.Fatalf("expected a transaction INSERT to draw a new id beyond the loaded range [0, 999], got %d", id)
	}
}

func TestWorkload_DoInsertRetriesThenSucceeds(t *testing.T) {
	props := newTestProperties(map[string]string{PropRecordCount: "10"})
	w, err := NewWorkload(props)
	if err != nil {
		t.Fatalf("NewWorkload: %v", err)
	}

	attempts := 0
	ok := w.DoInsert(context.Background(), func(key string, values FieldValues) (Status, error) {
		attempts++
		if attempts < 3 {
			return StatusError, nil
		}
		return StatusOK, nil
	})
	if !ok {
		t.Fatal("expected DoInsert to eventually succeed")
	}
	if attempts != 3 {
		t.Fatalf("expected 3 attempts, got %d", attempts)
	}
}

func TestWorkload_DoInsertAbortsOnContextCancellation(t *testing.T) {
	props := newTestProperties(map[string]string{PropRecordCount: "10"})
	w, err := NewWorkload(props)
	if err != nil {
		t.Fatalf("NewWorkload: %v", err)
	}

	// The retry backoff is multi-second, so rather than wait out all 5
	// retries, cancel immediately after the first failing attempt and
	// confirm DoInsert unwinds instead of sleeping through the backoff.
	ctx, cancel := context.WithCancel(context.Background())
	attempts := 0
	ok := w.DoInsert(ctx, func(key string, values FieldValues) (Status, error) {
		attempts++
		cancel()
		return StatusError, nil
	})
	if ok {
		t.Fatal("expected DoInsert to report failure after cancellation")
	}
	if attempts != 1 {
		t.Fatalf("expected exactly 1 attempt before cancellation aborted the retry loop, got %d", attempts)
	}
}

func TestWorkload_ChooseFieldsModes(t *testing.T) {
	props := newTestProperties(map[string]string{
		PropRecordCount: "10",
		PropFieldCount:  "5",
	})
	w, err := NewWorkload(props)
	if err != nil {
		t.Fatalf("NewWorkload: %v", err)
	}

	if fields := w.ChooseFields(FieldsAll); fields != nil {
		t.Fatalf("expected nil fields for FieldsAll, got %v", fields)
	}
	if fields := w.ChooseFields(FieldsAllByName); len(fields) != 5 {
		t.Fatalf("expected 5 named fields, got %v", fields)
	}
	if fields := w.ChooseFields(FieldsSingleRandom); len(fields) != 1 {
		t.Fatalf("expected a single field, got %v", fields)
	}
}
