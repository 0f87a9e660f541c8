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

// ListZipfianGenerator draws a Zipfian index over [0, len(values)) and
// returns values[index], letting a caller impose a Zipfian skew over an
// arbitrary, non-contiguous set of values (e.g. scan lengths drawn from a
// fixed catalogue).
type ListZipfianGenerator struct {
	values []int64
	zipf   *ZipfianGenerator
}

// NewListZipfianGenerator constructs a generator over the given values with
// skew theta.
func NewListZipfianGenerator(values []int64, theta float64) (*ListZipfianGenerator, error) {
	if len(values) == 0 {
		return nil, errRange("listzipfian", 0, 0)
	}
	zipf, err := NewZipfianGenerator(int64(len(values)), theta)
	if err != nil {
		return nil, err
	}
	cp := make([]int64, len(values))
	copy(cp, values)
	return &ListZipfianGenerator{values: cp, zipf: zipf}, nil
}

func (g *ListZipfianGenerator) Next() int64 {
	return g.values[g.zipf.Next()]
}
