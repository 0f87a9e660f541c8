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

// Package core implements the benchmarking engine: generators, the
// acknowledged counter, the workload, the measurement registry, the
// throttled worker loop, and the storage adapter contract.
package core

import (
	"fmt"
	"strconv"
	"time"

	"github.com/magiconair/properties"
)

// Recognised property keys and their documented defaults.
const (
	PropRecordCount              = "recordcount"
	PropOperationCount           = "operationcount"
	PropInsertStart              = "insertstart"
	PropInsertCount              = "insertcount"
	PropThreadCount              = "threadcount"
	PropTarget                   = "target"
	PropMaxExecutionTime         = "maxexecutiontime"
	PropTable                    = "table"
	PropFieldCount               = "fieldcount"
	PropFieldNamePrefix          = "fieldnameprefix"
	PropZeroPadding              = "zeropadding"
	PropReadProportion           = "readproportion"
	PropUpdateProportion         = "updateproportion"
	PropInsertProportion         = "insertproportion"
	PropScanProportion           = "scanproportion"
	PropRequestDistribution      = "requestdistribution"
	PropFieldLengthDistribution  = "fieldlengthdistribution"
	PropFieldLength              = "fieldlength"
	PropMinFieldLength           = "minfieldlength"
	PropScanLengthDistribution   = "scanlengthdistribution"
	PropMaxScanLength            = "maxscanlength"
	PropMinScanLength            = "minscanlength"
	PropHotspotDataFraction      = "hotspotdatafraction"
	PropHotspotOpnFraction       = "hotspotopnfraction"
	PropInsertOrder              = "insertorder"
	PropMeasurementType          = "measurementtype"
	PropMeasurementInterval      = "measurement.interval"
	PropStatusIntervalSeconds    = "status.interval"
	PropAckWindowSize            = "ackwindow.size"
	PropTracingEnabled           = "tracing.enabled"
	PropWorkload                 = "workload"
	PropDB                       = "db"
)

var defaults = map[string]string{
	PropRecordCount:             "1000",
	PropOperationCount:          "1000",
	PropInsertStart:             "0",
	PropThreadCount:             "1",
	PropTarget:                  "0",
	PropMaxExecutionTime:        "0",
	PropTable:                   "usertable",
	PropFieldCount:              "10",
	PropFieldNamePrefix:         "field",
	PropZeroPadding:             "1",
	PropReadProportion:          "0.95",
	PropUpdateProportion:        "0.05",
	PropInsertProportion:        "0",
	PropScanProportion:          "0",
	PropRequestDistribution:     "uniform",
	PropFieldLengthDistribution: "constant",
	PropFieldLength:             "100",
	PropMinFieldLength:          "1",
	PropScanLengthDistribution:  "uniform",
	PropMaxScanLength:           "1000",
	PropMinScanLength:           "1",
	PropHotspotDataFraction:     "0.2",
	PropHotspotOpnFraction:      "0.8",
	PropInsertOrder:             "hashed",
	PropMeasurementType:         "hdrhistogram",
	PropMeasurementInterval:     "op",
	PropStatusIntervalSeconds:   "10",
	PropAckWindowSize:           "1048576",
	PropTracingEnabled:          "false",
	PropDB:                      "basic",
}

// Properties is a read-only-after-construction mapping from string keys to
// string values, with typed accessors applying the documented defaults.
//
// Unlike the original design's process-wide static properties object, a
// Properties value is explicit: it is built once at startup and passed down
// through constructors (§9 of the specification this implements).
type Properties struct {
	values map[string]string
}

// NewProperties builds an empty Properties seeded only with defaults.
func NewProperties() *Properties {
	return &Properties{values: map[string]string{}}
}

// LoadFile merges a Java-style properties file into p. Later files and
// -p overrides win over earlier ones, matching the CLI contract in §6.
func (p *Properties) LoadFile(path string) error {
	loaded, err := properties.LoadFile(path, properties.UTF8)
	if err != nil {
		return fmt.Errorf("load properties file %q: %w", path, err)
	}
	for _, key := range loaded.Keys() {
		v, _ := loaded.Get(key)
		p.Set(key, v)
	}
	return nil
}

// Set assigns a single key=value pair, overriding any previous value.
func (p *Properties) Set(key, value string) {
	if p.values == nil {
		p.values = map[string]string{}
	}
	p.values[key] = value
}

// Get returns the raw string value for key, falling back to the documented
// default and finally to an explicit fallback if neither is present.
func (p *Properties) Get(key, fallback string) string {
	if v, ok := p.values[key]; ok {
		return v
	}
	if v, ok := defaults[key]; ok {
		return v
	}
	return fallback
}

// Has reports whether key was explicitly set (ignoring defaults).
func (p *Properties) Has(key string) bool {
	_, ok := p.values[key]
	return ok
}

func (p *Properties) Int64(key string, fallback int64) int64 {
	v := p.Get(key, "")
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}

func (p *Properties) Float64(key string, fallback float64) float64 {
	v := p.Get(key, "")
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

func (p *Properties) Bool(key string, fallback bool) bool {
	v := p.Get(key, "")
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func (p *Properties) Duration(key string, fallback time.Duration) time.Duration {
	v := p.Get(key, "")
	if v == "" {
		return fallback
	}
	// A bare integer (e.g. status.interval=10, maxexecutiontime=2) is a
	// count of seconds; anything else is parsed as a Go duration string.
	if secs, err := strconv.ParseInt(v, 10, 64); err == nil {
		return time.Duration(secs) * time.Second
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func (p *Properties) String(key, fallback string) string {
	return p.Get(key, fallback)
}

// Validate checks the cross-field invariants from §3: insert_start +
// insert_count <= record_count, proportions non-negative, and that the
// request distribution names a known variant.
func (p *Properties) Validate() error {
	recordCount := p.Int64(PropRecordCount, 0)
	insertStart := p.Int64(PropInsertStart, 0)
	insertCount := p.Int64(PropInsertCount, recordCount-insertStart)
	if insertStart+insertCount > recordCount {
		return fmt.Errorf("insertstart(%d) + insertcount(%d) exceeds recordcount(%d)", insertStart, insertCount, recordCount)
	}
	for _, key := range []string{PropReadProportion, PropUpdateProportion, PropInsertProportion, PropScanProportion} {
		if p.Float64(key, 0) < 0 {
			return fmt.Errorf("%s must be non-negative", key)
		}
	}
	switch p.String(PropRequestDistribution, "uniform") {
	case "uniform", "sequential", "zipfian", "scrambledzipfian", "exponential", "latest", "hotspot":
	default:
		return fmt.Errorf("unknown requestdistribution: %s", p.String(PropRequestDistribution, ""))
	}
	if p.String(PropWorkload, "") == "" {
		return fmt.Errorf("required property %q is missing", PropWorkload)
	}
	return nil
}

// InsertCount resolves the insert_count default of record_count - insert_start
// when the property is absent, per §3.
func (p *Properties) InsertCount() int64 {
	recordCount := p.Int64(PropRecordCount, 0)
	insertStart := p.Int64(PropInsertStart, 0)
	return p.Int64(PropInsertCount, recordCount-insertStart)
}
