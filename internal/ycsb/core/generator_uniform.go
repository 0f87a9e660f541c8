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

// UniformGenerator draws an inclusive integer uniform from [lo, hi]. The
// underlying PRNG is not safe for concurrent use, so each call is guarded by
// a mutex; callers that need per-thread independence should construct one
// generator per worker instead of sharing.
type UniformGenerator struct {
	lo, hi int64
	mu     sync.Mutex
	rng    *rand.Rand
}

// NewUniformGenerator constructs a uniform generator over [lo, hi].
func NewUniformGenerator(lo, hi int64) (*UniformGenerator, error) {
	if lo > hi {
		return nil, errRange("uniform", lo, hi)
	}
	return &UniformGenerator{lo: lo, hi: hi, rng: rand.New(rand.NewPCG(seedA(), seedB()))}, nil
}

func (g *UniformGenerator) Next() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	span := g.hi - g.lo + 1
	return g.lo + g.rng.Int64N(span)
}
