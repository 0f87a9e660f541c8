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
)

// BuildKey renders id as "key" + zero-padded decimal, hashing id first when
// order is "hashed" so different runs produce identical key sets for a
// given id (§3). The hash is the same FNV-style mixing function
// ScrambledZipfian uses, so hashed keys and scrambled popularity share one
// deterministic mixing primitive.
func BuildKey(id int64, order string, zeroPadding int) string {
	n := id
	if order == "hashed" {
		n = int64(fnv64Mix(uint64(id)) & 0x7fffffffffffffff)
	}
	return fmt.Sprintf("key%0*d", zeroPadding, n)
}

// BuildValues constructs a record's field map, drawing each field's byte
// length from lengthGen and its bytes from a pseudo-random stream (only
// size is controlled, per §3).
func BuildValues(fieldCount int, fieldPrefix string, lengthGen IntGenerator) FieldValues {
	values := make(FieldValues, fieldCount)
	for i := 0; i < fieldCount; i++ {
		name := fmt.Sprintf("%s%d", fieldPrefix, i)
		n := lengthGen.Next()
		if n < 0 {
			n = 0
		}
		values[name] = randomBytes(int(n))
	}
	return values
}

// BuildSingleValue constructs a one-field update/read payload for a
// randomly chosen field index in [0, fieldCount).
func BuildSingleValue(fieldCount int, fieldPrefix string, lengthGen IntGenerator, fieldChooser IntGenerator) FieldValues {
	idx := fieldChooser.Next() % int64(fieldCount)
	if idx < 0 {
		idx += int64(fieldCount)
	}
	name := fmt.Sprintf("%s%d", fieldPrefix, idx)
	n := lengthGen.Next()
	if n < 0 {
		n = 0
	}
	return FieldValues{name: randomBytes(int(n))}
}

func randomBytes(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(rand.IntN(256))
	}
	return b
}
