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
	"sync/atomic"
	"time"
)

var seedCounter atomic.Uint64

// seedA and seedB produce distinct per-generator PCG seeds: seedA mixes the
// current wall-clock time with a monotonically increasing counter, seedB is
// derived from the counter alone, so generators constructed back-to-back at
// init time do not collide.
func seedA() uint64 {
	return uint64(time.Now().UnixNano()) ^ seedCounter.Add(1)*0x9E3779B97F4A7C15
}

func seedB() uint64 {
	return seedCounter.Add(1) ^ 0xD1B54A32D192ED03
}
