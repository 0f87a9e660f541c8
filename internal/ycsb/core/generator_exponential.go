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
	"math"
	"math/rand/v2"
	"sync"
)

// ExponentialGenerator draws a continuous exponential whose `percentile`-th
// value equals `rangeVal`. Used to bias reads toward recent records via
// id = limit - Next(), repeating the draw when it would go negative.
type ExponentialGenerator struct {
	mu   sync.Mutex
	rng  *rand.Rand
	frac float64 // 1 / mean
}

// NewExponentialGenerator constructs a generator such that percentile
// (0, 100) of draws fall at or below rangeVal.
func NewExponentialGenerator(percentile, rangeVal float64) *ExponentialGenerator {
	mean := rangeVal / exponentialMean(percentile)
	return &ExponentialGenerator{rng: rand.New(rand.NewPCG(seedA(), seedB())), frac: 1.0 / mean}
}

// exponentialMean solves for the scale factor such that the exponential
// CDF reaches `percentile` at x=1, so rangeVal can be applied as a simple
// multiplier.
func exponentialMean(percentile float64) float64 {
	return -math.Log(1.0 - percentile/100.0)
}

func (g *ExponentialGenerator) Next() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	u := g.rng.Float64()
	return int64(-math.Log(1.0-u) / g.frac)
}
