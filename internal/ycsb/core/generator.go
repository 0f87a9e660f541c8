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

// IntGenerator produces a lazy, infinite, non-restartable sequence of
// 64-bit values. Implementations document whether a single instance is
// safe to share across goroutines or is meant to be per-thread.
type IntGenerator interface {
	// Next returns the next value in the sequence.
	Next() int64
}

// ConstantGenerator always returns the configured value. Thread-safe
// trivially, since it has no mutable state.
type ConstantGenerator struct {
	value int64
}

// NewConstantGenerator returns a generator fixed at value.
func NewConstantGenerator(value int64) *ConstantGenerator {
	return &ConstantGenerator{value: value}
}

func (g *ConstantGenerator) Next() int64 { return g.value }
