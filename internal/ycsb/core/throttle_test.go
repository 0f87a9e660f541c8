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
	"time"
)

func TestThrottle_UnthrottledNeverWaits(t *testing.T) {
	th := NewThrottle(0)
	th.Start()
	start := time.Now()
	th.WaitForSlot(context.Background(), 1000)
	if time.Since(start) > 50*time.Millisecond {
		t.Fatal("unthrottled WaitForSlot should return immediately")
	}
}

func TestThrottle_PacesToDeadline(t *testing.T) {
	tick := 20 * time.Millisecond
	th := NewThrottle(tick)
	th.Start()

	start := time.Now()
	th.WaitForSlot(context.Background(), 3)
	elapsed := time.Since(start)

	if elapsed < 2*tick {
		t.Fatalf("expected to wait roughly %v before the 3rd slot, waited %v", 3*tick, elapsed)
	}
}

func TestThrottle_CancelUnblocksWait(t *testing.T) {
	th := NewThrottle(time.Hour)
	th.Start()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		th.WaitForSlot(ctx, 1)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("WaitForSlot did not unblock on context cancellation")
	}
}
