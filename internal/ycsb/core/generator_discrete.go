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
	"math/rand/v2"
	"sync"
)

// DiscretePair is one (weight, label) entry for DiscreteGenerator.
type DiscretePair struct {
	Weight float64
	Label  string
}

// DiscreteGenerator returns a label with probability proportional to its
// weight. Labels with non-positive weight are dropped at construction; if
// no positive weight remains, construction fails. Used to choose the
// operation in §4.1.
type DiscreteGenerator struct {
	mu      sync.Mutex
	rng     *rand.Rand
	labels  []string
	cumfreq []float64 // cumulative, normalised to sum to 1
}

// NewDiscreteGenerator constructs an operation picker from weighted pairs.
func NewDiscreteGenerator(pairs []DiscretePair) (*DiscreteGenerator, error) {
	var total float64
	filtered := make([]DiscretePair, 0, len(pairs))
	for _, p := range pairs {
		if p.Weight <= 0 {
			continue
		}
		filtered = append(filtered, p)
		total += p.Weight
	}
	if len(filtered) == 0 || total <= 0 {
		return nil, fmt.Errorf("discrete generator: no positive weights among %d candidates", len(pairs))
	}
	g := &DiscreteGenerator{
		rng:     rand.New(rand.NewPCG(seedA(), seedB())),
		labels:  make([]string, len(filtered)),
		cumfreq: make([]float64, len(filtered)),
	}
	var running float64
	for i, p := range filtered {
		running += p.Weight / total
		g.labels[i] = p.Label
		g.cumfreq[i] = running
	}
	g.cumfreq[len(g.cumfreq)-1] = 1.0 // guard against floating-point drift
	return g, nil
}

// NextLabel draws a label according to the configured weights.
func (g *DiscreteGenerator) NextLabel() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	u := g.rng.Float64()
	for i, cf := range g.cumfreq {
		if u < cf {
			return g.labels[i]
		}
	}
	return g.labels[len(g.labels)-1]
}
