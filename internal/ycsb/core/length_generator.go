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

// NewLengthGenerator builds the field-length or scan-length generator
// named by distribution, bounded to [minVal, maxVal] (constant distribution
// ignores minVal and always returns maxVal, matching field-length's
// "fieldlength" property doubling as the constant value).
func NewLengthGenerator(distribution string, minVal, maxVal int64, histogramFile string) (IntGenerator, error) {
	switch distribution {
	case "", "constant":
		return NewConstantGenerator(maxVal), nil
	case "uniform":
		return NewUniformGenerator(minVal, maxVal)
	case "zipfian":
		n := maxVal - minVal + 1
		zipf, err := NewZipfianGenerator(n, DefaultZipfianTheta)
		if err != nil {
			return nil, err
		}
		return offsetGenerator{base: zipf, offset: minVal}, nil
	case "histogram":
		return NewHistogramFileGenerator(histogramFile)
	default:
		return nil, fmt.Errorf("length generator: unknown distribution %q", distribution)
	}
}
