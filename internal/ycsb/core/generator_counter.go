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

import "sync/atomic"

// CounterGenerator returns start, start+1, start+2, ... It is shared across
// threads via an atomic increment, the same pattern the teacher uses for its
// lock-free counters (internal/ratelimiter/core/metrics.go).
type CounterGenerator struct {
	counter atomic.Int64
}

// NewCounterGenerator returns a generator whose first Next() call yields
// start.
func NewCounterGenerator(start int64) *CounterGenerator {
	g := &CounterGenerator{}
	g.counter.Store(start - 1)
	return g
}

func (g *CounterGenerator) Next() int64 { return g.counter.Add(1) }

// Last returns the most recently generated value without advancing it.
func (g *CounterGenerator) Last() int64 { return g.counter.Load() }

// SequentialGenerator behaves like CounterGenerator but wraps back to lo
// once it passes hi.
type SequentialGenerator struct {
	lo, hi  int64
	counter atomic.Int64
}

// NewSequentialGenerator constructs a wrapping sequential generator over
// [lo, hi]. It fails (returns nil, error) at construction if lo > hi.
func NewSequentialGenerator(lo, hi int64) (*SequentialGenerator, error) {
	if lo > hi {
		return nil, errRange("sequential", lo, hi)
	}
	g := &SequentialGenerator{lo: lo, hi: hi}
	g.counter.Store(lo - 1)
	return g, nil
}

func (g *SequentialGenerator) Next() int64 {
	for {
		cur := g.counter.Load()
		next := cur + 1
		if next > g.hi {
			next = g.lo
		}
		if g.counter.CompareAndSwap(cur, next) {
			return next
		}
	}
}
