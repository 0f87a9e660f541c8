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

// SkewedLatestGenerator reads the current limit of the acknowledged
// counter, subtracts a Zipfian offset, and clamps to >= 0 — producing keys
// biased toward the newest inserted records.
type SkewedLatestGenerator struct {
	ack  *AcknowledgedCounter
	zipf *ZipfianGenerator
}

// NewSkewedLatestGenerator constructs a generator tied to ack's published
// limit.
func NewSkewedLatestGenerator(ack *AcknowledgedCounter) (*SkewedLatestGenerator, error) {
	last := ack.LastValue()
	if last < 0 {
		last = 0
	}
	zipf, err := NewZipfianGenerator(last+1, DefaultZipfianTheta)
	if err != nil {
		return nil, err
	}
	return &SkewedLatestGenerator{ack: ack, zipf: zipf}, nil
}

func (g *SkewedLatestGenerator) Next() int64 {
	last := g.ack.LastValue()
	if last < 0 {
		return 0
	}
	offset := g.zipf.Next()
	id := last - offset
	if id < 0 {
		id = 0
	}
	return id
}
