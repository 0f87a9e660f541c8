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
	"math/rand/v2"
	"sync"
)

// HotSpotGenerator picks, with probability opFraction, uniformly from the
// first dataFraction of [lo, hi]; otherwise from the remainder.
type HotSpotGenerator struct {
	lo, hi                         int64
	hotIntervalLo, hotIntervalHi   int64
	coldIntervalLo, coldIntervalHi int64
	opFraction                     float64

	mu  sync.Mutex
	rng *rand.Rand
}

// NewHotSpotGenerator constructs a hot-spot generator over [lo, hi] with
// the given data and operation fractions (both in [0, 1]).
func NewHotSpotGenerator(lo, hi int64, dataFraction, opFraction float64) (*HotSpotGenerator, error) {
	if lo > hi {
		return nil, errRange("hotspot", lo, hi)
	}
	span := hi - lo + 1
	hotSpan := int64(float64(span) * dataFraction)
	if hotSpan < 1 {
		hotSpan = 1
	}
	g := &HotSpotGenerator{
		lo: lo, hi: hi,
		hotIntervalLo: lo, hotIntervalHi: lo + hotSpan - 1,
		coldIntervalLo: lo + hotSpan, coldIntervalHi: hi,
		opFraction: opFraction,
		rng:        rand.New(rand.NewPCG(seedA(), seedB())),
	}
	if g.coldIntervalLo > g.coldIntervalHi {
		g.coldIntervalLo, g.coldIntervalHi = g.hotIntervalLo, g.hotIntervalHi
	}
	return g, nil
}

func (g *HotSpotGenerator) Next() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.rng.Float64() < g.opFraction {
		return g.hotIntervalLo + g.rng.Int64N(g.hotIntervalHi-g.hotIntervalLo+1)
	}
	return g.coldIntervalLo + g.rng.Int64N(g.coldIntervalHi-g.coldIntervalLo+1)
}
