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
	"io"
	"os"
	"sort"
	"time"
)

// RunSummary is the final tally an Exporter renders: total ops issued,
// measured wall-clock runtime, and the resulting throughput, plus the
// per-metric registry summary (§6).
type RunSummary struct {
	Operations  int64
	Runtime     time.Duration
	Registry    *Registry
	ReturnCodes *ReturnCodes
	Percentiles []float64
}

// Exporter renders a RunSummary to w in the documented "[METRIC] ..." /
// "[TOTAL] ..." text format, and optionally writes each HDR measurement's
// percentile table (one "percentile value" line per default percentile,
// not the full histogram) to its own "<hdrOutputDir><metric>.hdr" file.
type Exporter struct {
	w             io.Writer
	hdrFileOutput bool
	hdrOutputDir  string
}

// NewExporter constructs an exporter writing to w. When hdrFileOutput is
// true, every hdrhistogram-backed metric also gets its cumulative
// distribution dumped to "<hdrOutputDir><name>.hdr".
func NewExporter(w io.Writer, hdrFileOutput bool, hdrOutputDir string) *Exporter {
	return &Exporter{w: w, hdrFileOutput: hdrFileOutput, hdrOutputDir: hdrOutputDir}
}

// Export writes the full summary block.
func (e *Exporter) Export(summary RunSummary) error {
	percentiles := summary.Percentiles
	if percentiles == nil {
		percentiles = DefaultPercentiles
	}

	for _, name := range summary.Registry.Names() {
		summary.Registry.mu.RLock()
		m := summary.Registry.measurements[name]
		summary.Registry.mu.RUnlock()

		if _, err := fmt.Fprintln(e.w, m.Summary(name, percentiles)); err != nil {
			return err
		}
		if e.hdrFileOutput {
			if hdr, ok := m.(*HDRMeasurement); ok {
				if err := e.writeHDRLog(name, hdr); err != nil {
					return err
				}
			}
		}
	}

	throughput := 0.0
	if summary.Runtime > 0 {
		throughput = float64(summary.Operations) / summary.Runtime.Seconds()
	}

	if _, err := fmt.Fprintf(e.w, "[TOTAL] %d operations\n", summary.Operations); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(e.w, "[TOTAL] runtime : %s\n", FormatDuration(summary.Runtime)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(e.w, "[TOTAL] throughput : %.2f ops/s\n", throughput); err != nil {
		return err
	}

	snapshot := summary.ReturnCodes.Snapshot()
	ops := make([]string, 0, len(snapshot))
	for op := range snapshot {
		ops = append(ops, op)
	}
	sort.Strings(ops)

	for _, op := range ops {
		counts := snapshot[op]
		statuses := make([]string, 0, len(counts))
		for status := range counts {
			statuses = append(statuses, string(status))
		}
		sort.Strings(statuses)

		for _, status := range statuses {
			n := counts[Status(status)]
			if _, err := fmt.Fprintf(e.w, "[RETURN-CODE] %s %s : %d\n", op, status, n); err != nil {
				return err
			}
		}
	}

	return nil
}

func (e *Exporter) writeHDRLog(name string, hdr *HDRMeasurement) error {
	path := e.hdrOutputDir + name + ".hdr"
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	hist := hdr.Snapshot()
	for _, p := range DefaultPercentiles {
		if _, err := fmt.Fprintf(f, "%.4f %d\n", p, hist.ValueAtQuantile(p)); err != nil {
			return err
		}
	}
	return nil
}
