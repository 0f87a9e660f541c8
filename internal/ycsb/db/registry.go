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

package db

import (
	"fmt"
	"strings"

	"ycsbgo/internal/ycsb/core"
)

// Build constructs a core.DB adapter by name. Supported adapters:
//   - "basic" (default): in-process map, no external dependency
//   - "redis": Redis-hash-backed adapter, sharded across db.redis.addrs
//
// A Postgres adapter is intentionally not wired (see the project's design
// notes); asking for one fails loudly instead of silently degrading to
// the in-memory adapter.
func Build(adapter string, props *core.Properties) (core.DB, error) {
	tracing := props.Bool(core.PropTracingEnabled, false)
	switch adapter {
	case "", "basic":
		return NewBasic(tracing), nil
	case "redis":
		addrs := strings.Split(props.String("db.redis.addrs", "127.0.0.1:6379"), ",")
		for i := range addrs {
			addrs[i] = strings.TrimSpace(addrs[i])
		}
		return NewRedisDB(addrs, tracing), nil
	case "postgres":
		return nil, fmt.Errorf("db adapter %q is not wired in this build; supply a %s/%s adapter or extend db.Build", adapter, "basic", "redis")
	default:
		return nil, fmt.Errorf("unknown db adapter %q", adapter)
	}
}
