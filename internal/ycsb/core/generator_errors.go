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

// errRange reports a construction-time range failure shared by every
// generator that takes a [lo, hi] bound. Generators never fail per
// operation, only at construction (§7 propagation policy).
func errRange(name string, lo, hi int64) error {
	return fmt.Errorf("%s generator: invalid range [%d, %d]", name, lo, hi)
}
