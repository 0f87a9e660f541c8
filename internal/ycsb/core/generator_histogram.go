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
	"bufio"
	"fmt"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"
	"sync"
)

// HistogramFileGenerator draws values from an empirical CDF read once from
// a file of "bucket count" lines (one bucket per line, in increasing
// order), used for field-length or scan-length distributions shaped by
// real-world data rather than a closed-form distribution.
type HistogramFileGenerator struct {
	mu      sync.Mutex
	rng     *rand.Rand
	buckets []int64   // bucket index -> value (the bucket's lower bound)
	cumfreq []float64 // cumulative, normalised to sum to 1
}

// NewHistogramFileGenerator parses path and builds the generator.
func NewHistogramFileGenerator(path string) (*HistogramFileGenerator, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("histogram generator: open %q: %w", path, err)
	}
	defer f.Close()

	var buckets []int64
	var counts []float64
	var total float64
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("histogram generator: malformed line %q", line)
		}
		bucket, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("histogram generator: bad bucket %q: %w", fields[0], err)
		}
		count, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("histogram generator: bad count %q: %w", fields[1], err)
		}
		buckets = append(buckets, bucket)
		counts = append(counts, count)
		total += count
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("histogram generator: read %q: %w", path, err)
	}
	if len(buckets) == 0 || total <= 0 {
		return nil, fmt.Errorf("histogram generator: %q has no usable buckets", path)
	}

	cumfreq := make([]float64, len(counts))
	var running float64
	for i, c := range counts {
		running += c / total
		cumfreq[i] = running
	}
	cumfreq[len(cumfreq)-1] = 1.0

	return &HistogramFileGenerator{
		rng:     rand.New(rand.NewPCG(seedA(), seedB())),
		buckets: buckets,
		cumfreq: cumfreq,
	}, nil
}

func (g *HistogramFileGenerator) Next() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	u := g.rng.Float64()
	for i, cf := range g.cumfreq {
		if u < cf {
			return g.buckets[i]
		}
	}
	return g.buckets[len(g.buckets)-1]
}
