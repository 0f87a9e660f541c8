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
	"time"

	"github.com/sixafter/nanoid"
)

// TraceEvent is one named span within a TraceInfo. Events are owned by
// their trace and identify the parent by ID rather than holding a back
// pointer, which avoids the TraceInfo <-> Event reference cycle the
// original design carried (§9 design note).
type TraceEvent struct {
	ParentID string
	Name     string
	Start    time.Time
	End      time.Time
}

// Duration returns how long the event ran.
func (e TraceEvent) Duration() time.Duration { return e.End.Sub(e.Start) }

// TraceInfo is a per-operation trace: a stable ID plus the events recorded
// against it. IDs are minted with nanoid rather than a shared counter so
// concurrent adapter instances can generate them without coordinating
// through a mutex.
type TraceInfo struct {
	ID     string
	Op     string
	Events []TraceEvent
}

// NewTraceInfo starts a trace for the named operation.
func NewTraceInfo(op string) TraceInfo {
	id, err := nanoid.New()
	if err != nil {
		// nanoid.New only fails on exhausted entropy; fall back to a
		// time-based ID so tracing degrades instead of panicking.
		id = time.Now().Format("150405.000000000")
	}
	return TraceInfo{ID: id, Op: op}
}

// Record appends a completed event to the trace.
func (t *TraceInfo) Record(name string, start, end time.Time) {
	t.Events = append(t.Events, TraceEvent{ParentID: t.ID, Name: name, Start: start, End: end})
}
