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

// PairMeasurement forwards writes to two underlying measurements — used
// for "HDR + raw" or "HDR + bucket" combinations where one view is cheap
// to summarise and the other preserves full fidelity for offline analysis.
type PairMeasurement struct {
	first, second Measurement
}

// NewPairMeasurement composes two measurements into one.
func NewPairMeasurement(first, second Measurement) *PairMeasurement {
	return &PairMeasurement{first: first, second: second}
}

func (p *PairMeasurement) Measure(micros int64) {
	p.first.Measure(micros)
	p.second.Measure(micros)
}

func (p *PairMeasurement) Summary(name string, percentiles []float64) string {
	return p.first.Summary(name, percentiles) + "\n" + p.second.Summary(name, percentiles)
}
