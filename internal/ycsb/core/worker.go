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
	"math/rand/v2"
	"time"
)

// Stage is the workload's phase: pure inserts, or a mixed transaction mix.
type Stage int

const (
	StageLoad Stage = iota
	StageTransactions
)

// ClientWorker drives the run's shared adapter (through a MeasuringDB) for
// its share of the total op count at its per-thread target rate (§4.5). It is constructed once
// per thread by the orchestrator and run for the duration of the stage.
type ClientWorker struct {
	id       int
	workload *Workload
	db       *MeasuringDB
	stage    Stage
	opCount  int64
	throttle *Throttle

	opsDone  int64
	fatalErr error
}

// NewClientWorker constructs a worker for thread id, responsible for
// opCount operations of the given stage at the given tick rate (0 disables
// throttling).
func NewClientWorker(id int, workload *Workload, db *MeasuringDB, stage Stage, opCount int64, tick time.Duration) *ClientWorker {
	return &ClientWorker{
		id:       id,
		workload: workload,
		db:       db,
		stage:    stage,
		opCount:  opCount,
		throttle: NewThrottle(tick),
	}
}

// OpsDone reports operations completed so far, read by the status
// reporter concurrently with Run.
func (w *ClientWorker) OpsDone() int64 { return w.opsDone }

// Remaining reports operations left to do.
func (w *ClientWorker) Remaining() int64 { return w.opCount - w.opsDone }

// FatalErr reports the first unrecoverable error this worker hit, if any —
// currently only an acknowledgement-window overflow (§4.2/§7), which means
// the worker stopped before reaching opCount.
func (w *ClientWorker) FatalErr() error { return w.fatalErr }

// Run executes the operation loop until its share of opCount is done or a
// stop is requested. The adapter's Init/Cleanup lifecycle is the
// orchestrator's responsibility — not the worker's — since one adapter
// instance is typically shared by every worker in a run (§5).
func (w *ClientWorker) Run(ctx context.Context) {
	if w.throttle.tick >= time.Millisecond {
		w.throttle.DesyncSleep(ctx, func() time.Duration {
			return time.Duration(rand.Int64N(int64(w.throttle.tick)))
		})
	}
	w.throttle.Start()

	for w.opsDone < w.opCount && !w.workload.StopRequested() {
		select {
		case <-ctx.Done():
			return
		default:
		}

		intendedStart := w.throttle.IntendedStart(w.opsDone)
		switch w.stage {
		case StageLoad:
			w.workload.DoInsert(ctx, func(key string, values FieldValues) (Status, error) {
				return w.db.Insert(ctx, intendedStart, w.workload.Table(), key, values, nil)
			})
		case StageTransactions:
			w.doTransaction(ctx, intendedStart)
		}

		w.opsDone++
		w.throttle.WaitForSlot(ctx, w.opsDone)
	}
}

// doTransaction draws an operation and dispatches to read/update/insert/
// scan, exactly as §4.3 describes.
func (w *ClientWorker) doTransaction(ctx context.Context, intendedStart time.Time) {
	switch w.workload.TransactionOp() {
	case OpRead:
		id := w.workload.NextTransactionKey()
		key := w.workload.KeyString(id)
		fields := w.workload.ChooseFields(FieldSelection(rand.IntN(3)))
		out := FieldValues{}
		_, _ = w.db.Read(ctx, intendedStart, w.workload.Table(), key, fields, nil, out)

	case OpScan:
		id := w.workload.NextTransactionKey()
		key := w.workload.KeyString(id)
		length := w.workload.NextScanLength()
		fields := w.workload.ChooseFields(FieldsAll)
		var out []FieldValues
		_, _ = w.db.Scan(ctx, intendedStart, w.workload.Table(), key, int(length), fields, &out)

	case OpUpdate:
		id := w.workload.NextTransactionKey()
		key := w.workload.KeyString(id)
		single := rand.IntN(2) == 0
		values := w.workload.BuildUpdateValues(single)
		_, _ = w.db.Update(ctx, intendedStart, w.workload.Table(), key, values)

	case OpInsert:
		id := w.workload.ackCounter.Next()
		key := w.workload.KeyString(id)
		values := BuildValues(w.workload.fieldCount, w.workload.fieldPrefix, w.workload.fieldLengthGen)
		_, _ = w.db.Insert(ctx, intendedStart, w.workload.Table(), key, values, nil)
		// Acknowledge regardless of outcome so the window never strands a
		// slot on a failed insert (§4.3, §5 cancellation policy). A non-nil
		// error here means the window overflowed, which is fatal: the run
		// stops rather than spinning on an unsatisfiable wait.
		if err := w.workload.ackCounter.Acknowledge(id); err != nil {
			w.fatalErr = err
			w.workload.RequestStop()
		}
	}
}
