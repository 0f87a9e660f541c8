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
	"math/rand"
	"sync"
	"testing"
)

func TestAcknowledgedCounter_SequentialAdvance(t *testing.T) {
	ac := NewAcknowledgedCounter(0, 1024)
	if ac.LastValue() != -1 {
		t.Fatalf("expected initial last value -1, got %d", ac.LastValue())
	}
	for i := int64(0); i < 10; i++ {
		if err := ac.Acknowledge(i); err != nil {
			t.Fatalf("Acknowledge(%d): %v", i, err)
		}
	}
	if got := ac.LastValue(); got != 9 {
		t.Fatalf("expected last value 9 after sequential acks, got %d", got)
	}
}

func TestAcknowledgedCounter_OutOfOrderAdvance(t *testing.T) {
	ac := NewAcknowledgedCounter(0, 1024)
	// Acknowledge out of order: the window should only advance once the
	// gap is filled.
	_ = ac.Acknowledge(1)
	_ = ac.Acknowledge(2)
	if got := ac.LastValue(); got != -1 {
		t.Fatalf("expected last value -1 while id 0 is outstanding, got %d", got)
	}
	_ = ac.Acknowledge(0)
	if got := ac.LastValue(); got != 2 {
		t.Fatalf("expected last value 2 once the gap is filled, got %d", got)
	}
}

func TestAcknowledgedCounter_ConcurrentAcksAdvanceMonotonically(t *testing.T) {
	const n = 20_000
	ac := NewAcknowledgedCounter(0, 1<<16)

	ids := make([]int64, n)
	for i := range ids {
		ids[i] = int64(i)
	}
	rand.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })

	var wg sync.WaitGroup
	var lastSeen int64 = -1
	var mu sync.Mutex

	for _, id := range ids {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			if err := ac.Acknowledge(id); err != nil {
				t.Errorf("Acknowledge(%d): %v", id, err)
				return
			}
			mu.Lock()
			if v := ac.LastValue(); v > lastSeen {
				lastSeen = v
			} else if v < lastSeen {
				t.Errorf("last value moved backwards unexpectedly: %d after %d", v, lastSeen)
			}
			mu.Unlock()
		}(id)
	}
	wg.Wait()

	if got := ac.LastValue(); got != n-1 {
		t.Fatalf("expected last value %d after all acks land, got %d", n-1, got)
	}
}
