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
	"fmt"
	"runtime"
	"time"

	"github.com/agilira/iris"
)

// StatusReporter polls every worker's progress on an interval and logs
// interval/cumulative throughput as one structured "status" log entry per
// tick.
// It never mutates worker state — only OpsDone() is read, concurrently with
// the workers' own goroutines, so no further synchronisation is needed.
type StatusReporter struct {
	workers  []*ClientWorker
	opCount  int64
	interval time.Duration
	logger   *iris.Logger

	startedAt time.Time
	lastOps   int64
	lastAt    time.Time
}

// NewStatusReporter constructs a reporter over workers, expected to produce
// opCount operations in total, reporting on the given interval.
func NewStatusReporter(workers []*ClientWorker, opCount int64, interval time.Duration, logger *iris.Logger) *StatusReporter {
	return &StatusReporter{workers: workers, opCount: opCount, interval: interval, logger: logger}
}

func (r *StatusReporter) totalOps() int64 {
	var total int64
	for _, w := range r.workers {
		total += w.OpsDone()
	}
	return total
}

// Run blocks, emitting one status line per interval, until ctx is
// cancelled. It is meant to run in its own goroutine alongside the
// workers.
func (r *StatusReporter) Run(ctx context.Context) {
	r.startedAt = time.Now()
	r.lastAt = r.startedAt

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			r.report(now)
		}
	}
}

func (r *StatusReporter) report(now time.Time) {
	done := r.totalOps()
	elapsed := now.Sub(r.startedAt)
	intervalOps := done - r.lastOps
	intervalDur := now.Sub(r.lastAt)

	cumThroughput := opsPerSec(done, elapsed)
	intervalThroughput := opsPerSec(intervalOps, intervalDur)

	var eta string
	if cumThroughput > 0 && done < r.opCount {
		remaining := float64(r.opCount-done) / cumThroughput
		eta = time.Now().Add(time.Duration(remaining * float64(time.Second))).Format(time.RFC3339)
	} else {
		eta = "unknown"
	}

	pct := 0.0
	if r.opCount > 0 {
		pct = 100 * float64(done) / float64(r.opCount)
	}

	r.logger.Info("status",
		iris.Duration("elapsed", elapsed.Round(time.Second)),
		iris.Int64("done", done),
		iris.Float64("pct_complete", pct),
		iris.Float64("interval_ops_per_sec", intervalThroughput),
		iris.Float64("cumulative_ops_per_sec", cumThroughput),
		iris.Str("est_completion", eta),
	)

	r.lastOps = done
	r.lastAt = now

	RuntimeStats(r.logger)
}

func opsPerSec(ops int64, d time.Duration) float64 {
	if d <= 0 {
		return 0
	}
	return float64(ops) / d.Seconds()
}

// RuntimeStats logs a best-effort snapshot of goroutine count, heap size,
// and GC pauses — the Go analogue of the JVM thread/heap/GC numbers a
// status line can optionally carry (§4.7).
func RuntimeStats(logger *iris.Logger) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	logger.Debug("runtime stats",
		iris.Int("goroutines", runtime.NumGoroutine()),
		iris.Uint64("heap_alloc_bytes", m.HeapAlloc),
		iris.Uint64("heap_sys_bytes", m.HeapSys),
		iris.Uint32("num_gc", m.NumGC),
		iris.Duration("last_gc_pause", time.Duration(m.PauseNs[(m.NumGC+255)%256])),
	)
}

// Terminator arms a wall-clock deadline after which it requests the
// workload stop and cancels ctx's parent cancel function, unblocking any
// worker parked in Throttle.WaitForSlot (§4.7).
type Terminator struct {
	workload *Workload
	cancel   context.CancelFunc
	deadline time.Duration
}

// NewTerminator constructs a terminator that fires after deadline (0
// disables the timeout; the run then terminates only on op-count
// exhaustion or an external signal).
func NewTerminator(workload *Workload, cancel context.CancelFunc, deadline time.Duration) *Terminator {
	return &Terminator{workload: workload, cancel: cancel, deadline: deadline}
}

// Run blocks until the deadline elapses or ctx is cancelled by some other
// path (e.g. a signal, or the orchestrator returning). Only the deadline
// path requests a workload stop and calls cancel; when ctx is cancelled
// first, Run returns without touching either.
func (t *Terminator) Run(ctx context.Context) {
	if t.deadline <= 0 {
		<-ctx.Done()
		return
	}
	timer := time.NewTimer(t.deadline)
	defer timer.Stop()
	select {
	case <-timer.C:
		t.workload.RequestStop()
		t.cancel()
	case <-ctx.Done():
	}
}

// FormatDuration renders a duration as whole milliseconds (truncated), the
// form the exporter's "[TOTAL] runtime" line uses.
func FormatDuration(d time.Duration) string {
	return fmt.Sprintf("%d ms", d.Milliseconds())
}
