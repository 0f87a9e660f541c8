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

// DefaultZipfianTheta is the skew parameter YCSB has always defaulted to.
const DefaultZipfianTheta = 0.99

// ZipfianGenerator draws Zipf(theta)-distributed values over [0, n) using
// the generalised-harmonic inversion recurrence from "Quickly Generating
// Billion-Record Synthetic Databases" (Gray et al., SIGMOD 1994), the same
// algorithm YCSB's own ZipfianGenerator implements. The precomputed partial
// sums (zetan, the zeta(2, theta) term folded into eta) let Next() run in
// O(1) instead of re-summing the harmonic series per draw.
type ZipfianGenerator struct {
	mu    sync.Mutex
	rng   *rand.Rand
	n     int64
	theta float64
	alpha float64
	zetan float64
	eta   float64

	// countForZeta records the item count zetan was computed for. Nothing
	// in this package reads it: n never grows after construction, and
	// ScrambledZipfian uses a fixed universe size.
	countForZeta int64
}

// NewZipfianGenerator constructs a Zipfian generator over [0, n) with the
// given skew. n must be positive.
func NewZipfianGenerator(n int64, theta float64) (*ZipfianGenerator, error) {
	if n <= 0 {
		return nil, errRange("zipfian", 0, n)
	}
	return newZipfianGeneratorZeta(n, theta, zeta(0, n, theta, 0)), nil
}

func newZipfianGeneratorZeta(n int64, theta float64, zetan float64) *ZipfianGenerator {
	g := &ZipfianGenerator{
		rng:          rand.New(rand.NewPCG(seedA(), seedB())),
		n:            n,
		theta:        theta,
		alpha:        1.0 / (1.0 - theta),
		zetan:        zetan,
		countForZeta: n,
	}
	zeta2 := zeta(0, 2, theta, 0)
	g.eta = (1 - math.Pow(2.0/float64(n), 1-theta)) / (1 - zeta2/g.zetan)
	return g
}

// zeta computes the generalised harmonic partial sum H_{n,theta}, resuming
// from an already-computed sum for a smaller range (st items, sum initial)
// so growing the universe size does not require restarting from zero.
func zeta(st, n int64, theta float64, initial float64) float64 {
	sum := initial
	for i := st; i < n; i++ {
		sum += 1.0 / math.Pow(float64(i+1), theta)
	}
	return sum
}

// Next draws the next Zipf-distributed value in [0, n).
func (g *ZipfianGenerator) Next() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.next()
}

func (g *ZipfianGenerator) next() int64 {
	u := g.rng.Float64()
	uz := u * g.zetan
	if uz < 1.0 {
		return 0
	}
	if uz < 1.0+math.Pow(0.5, g.theta) {
		return 1
	}
	return int64(float64(g.n) * math.Pow(g.eta*u-g.eta+1.0, g.alpha))
}
