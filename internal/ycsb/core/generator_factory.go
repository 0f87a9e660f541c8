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

import "fmt"

// NewKeyDistributionGenerator builds the IntGenerator named by
// distribution over [lo, hi], wiring SkewedLatest and Exponential to ack
// when needed (§4.1).
func NewKeyDistributionGenerator(distribution string, lo, hi int64, ack *AcknowledgedCounter) (IntGenerator, error) {
	switch distribution {
	case "", "uniform":
		return NewUniformGenerator(lo, hi)
	case "sequential":
		return NewSequentialGenerator(lo, hi)
	case "zipfian":
		n := hi - lo + 1
		zipf, err := NewZipfianGenerator(n, DefaultZipfianTheta)
		if err != nil {
			return nil, err
		}
		return offsetGenerator{base: zipf, offset: lo}, nil
	case "scrambledzipfian":
		return NewScrambledZipfianGenerator(lo, hi+1)
	case "latest":
		return NewSkewedLatestGenerator(ack)
	case "exponential":
		return exponentialAsInt{NewExponentialGenerator(95, float64(hi-lo)/2)}, nil
	case "hotspot":
		return NewHotSpotGenerator(lo, hi, 0.2, 0.8)
	default:
		return nil, fmt.Errorf("generator factory: unknown distribution %q", distribution)
	}
}

// offsetGenerator shifts a base generator's output by a fixed offset, used
// to translate Zipfian's native [0, n) range onto an arbitrary [lo, hi].
type offsetGenerator struct {
	base   IntGenerator
	offset int64
}

func (g offsetGenerator) Next() int64 { return g.base.Next() + g.offset }

// exponentialAsInt adapts ExponentialGenerator's Next() (already int64) to
// IntGenerator; kept as a named type so its construction site documents
// which field-length/transaction-key caller is using it.
type exponentialAsInt struct {
	*ExponentialGenerator
}

func (g exponentialAsInt) Next() int64 { return g.ExponentialGenerator.Next() }
