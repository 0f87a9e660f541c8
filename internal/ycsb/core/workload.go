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
	"context"
	"math/rand/v2"
	"strconv"
	"sync/atomic"
	"time"
)

// Operation is a tagged variant chosen by the weighted operation picker.
type Operation string

const (
	OpRead   Operation = "READ"
	OpUpdate Operation = "UPDATE"
	OpInsert Operation = "INSERT"
	OpScan   Operation = "SCAN"
)

// FieldSelection controls which fields a read/update touches.
type FieldSelection int

const (
	FieldsAll FieldSelection = iota
	FieldsAllByName
	FieldsSingleRandom
)

// Workload holds the per-run generators and shared state every worker
// draws from. It is constructed once at orchestrator init and shared
// read-mostly across all worker goroutines (§3 Lifecycles).
type Workload struct {
	props *Properties

	table       string
	fieldCount  int
	fieldPrefix string
	zeroPadding int
	insertOrder string

	loadCounter *CounterGenerator
	ackCounter  *AcknowledgedCounter

	opChooser       *DiscreteGenerator
	keyChooser      IntGenerator
	keyDistribution string
	fieldLengthGen  IntGenerator
	scanLengthGen   IntGenerator
	fieldChooser    *UniformGenerator

	insertRetryBackoff time.Duration
	stopRequested      atomic.Bool
}

// NewWorkload constructs a Workload from properties. The acknowledged
// counter starts at insertStart+insertCount, so LastValue() already covers
// the whole loaded range with no Acknowledge calls, and transaction
// inserts draw IDs beyond it (see the comment at its construction below).
func NewWorkload(props *Properties) (*Workload, error) {
	if err := props.Validate(); err != nil {
		return nil, err
	}

	recordCount := props.Int64(PropRecordCount, 0)
	insertStart := props.Int64(PropInsertStart, 0)
	insertCount := props.InsertCount()
	zeroPadding := int(props.Int64(PropZeroPadding, 1))
	insertOrder := props.String(PropInsertOrder, "hashed")

	w := &Workload{
		props:              props,
		table:              props.String(PropTable, "usertable"),
		fieldCount:         int(props.Int64(PropFieldCount, 10)),
		fieldPrefix:        props.String(PropFieldNamePrefix, "field"),
		zeroPadding:        zeroPadding,
		insertOrder:        insertOrder,
		loadCounter:        NewCounterGenerator(insertStart),
		insertRetryBackoff: 3 * time.Second,
	}

	// The acknowledged counter tracks the TRANSACTIONS-stage insert sequence,
	// not the LOAD-stage one (loadCounter, above): it is seeded to start
	// immediately after the loaded range so that (a) LastValue() begins at
	// recordcount-1 with no Acknowledge calls needed — every record the LOAD
	// stage populated is presumed durable once TRANSACTIONS begins, exactly
	// as YCSB seeds its own transactioninsertkeysequence at recordcount —
	// and (b) Next() (called from the transaction INSERT path, worker.go)
	// hands out new IDs beyond the loaded range instead of reusing them.
	ackWindow := props.Int64(PropAckWindowSize, DefaultAckWindowSize)
	w.ackCounter = NewAcknowledgedCounter(insertStart+insertCount, ackWindow)

	fieldLenDist := props.String(PropFieldLengthDistribution, "constant")
	minFieldLen := props.Int64(PropMinFieldLength, 1)
	fieldLen := props.Int64(PropFieldLength, 100)
	fieldLenGen, err := NewLengthGenerator(fieldLenDist, minFieldLen, fieldLen, props.String("fieldlengthhistogram", "hist.txt"))
	if err != nil {
		return nil, err
	}
	w.fieldLengthGen = fieldLenGen

	scanLenDist := props.String(PropScanLengthDistribution, "uniform")
	minScanLen := props.Int64(PropMinScanLength, 1)
	maxScanLen := props.Int64(PropMaxScanLength, 1000)
	scanLenGen, err := NewLengthGenerator(scanLenDist, minScanLen, maxScanLen, props.String("scanlengthhistogram", "hist.txt"))
	if err != nil {
		return nil, err
	}
	w.scanLengthGen = scanLenGen

	opChooser, err := NewDiscreteGenerator([]DiscretePair{
		{Weight: props.Float64(PropReadProportion, 0.95), Label: string(OpRead)},
		{Weight: props.Float64(PropUpdateProportion, 0.05), Label: string(OpUpdate)},
		{Weight: props.Float64(PropInsertProportion, 0), Label: string(OpInsert)},
		{Weight: props.Float64(PropScanProportion, 0), Label: string(OpScan)},
	})
	if err != nil {
		return nil, err
	}
	w.opChooser = opChooser

	w.keyDistribution = props.String(PropRequestDistribution, "uniform")
	keyChooser, err := NewKeyDistributionGenerator(w.keyDistribution, insertStart, insertStart+recordCount-1, w.ackCounter)
	if err != nil {
		return nil, err
	}
	w.keyChooser = keyChooser

	fieldChooser, err := NewUniformGenerator(0, int64(w.fieldCount-1))
	if err != nil {
		return nil, err
	}
	w.fieldChooser = fieldChooser

	_ = insertCount
	return w, nil
}

// RequestStop sets the cooperative stop flag, checked at the top of every
// worker iteration.
func (w *Workload) RequestStop() { w.stopRequested.Store(true) }

// StopRequested reports whether a stop has been requested.
func (w *Workload) StopRequested() bool { return w.stopRequested.Load() }

// AckCounter exposes the shared acknowledged counter for the driver/status
// reporter layers.
func (w *Workload) AckCounter() *AcknowledgedCounter { return w.ackCounter }

// DoInsert draws the next ID from the load counter, builds its key and
// values, and calls db.Insert. Non-OK statuses are retried up to 5 times
// with a randomised ~3s backoff; ctx cancellation aborts the retry loop
// immediately. It returns whether the insert ultimately succeeded.
func (w *Workload) DoInsert(ctx context.Context, insert func(key string, values FieldValues) (Status, error)) bool {
	id := w.loadCounter.Next()
	key := BuildKey(id, w.insertOrder, w.zeroPadding)
	values := BuildValues(w.fieldCount, w.fieldPrefix, w.fieldLengthGen)

	const maxRetries = 5
	for attempt := 0; attempt <= maxRetries; attempt++ {
		status, err := insert(key, values)
		if err == nil && status.IsOK() {
			return true
		}
		if attempt == maxRetries {
			return false
		}
		backoff := time.Duration(float64(w.insertRetryBackoff) * (0.8 + 0.4*rand.Float64()))
		select {
		case <-ctx.Done():
			return false
		case <-time.After(backoff):
		}
	}
	return false
}

// TransactionOp chooses which operation DoTransaction should perform.
func (w *Workload) TransactionOp() Operation {
	return Operation(w.opChooser.NextLabel())
}

// NextTransactionKey implements the transaction-key selection rule from
// §4.3: exponential draws relative to last_ack and reject negatives; every
// other distribution draws directly and rejects ids beyond last_ack,
// looping until a valid one appears.
func (w *Workload) NextTransactionKey() int64 {
	lastAck := w.ackCounter.LastValue()
	if exp, ok := w.keyChooser.(exponentialAsInt); ok {
		for {
			id := lastAck - exp.ExponentialGenerator.Next()
			if id >= 0 {
				return id
			}
		}
	}
	for {
		id := w.keyChooser.Next()
		if id <= lastAck {
			return id
		}
	}
}

// NextScanLength draws a scan length from the configured generator.
func (w *Workload) NextScanLength() int64 {
	n := w.scanLengthGen.Next()
	if n < 1 {
		n = 1
	}
	return n
}

// ChooseFields decides the field-selection mode for a read/update (all,
// all-by-name, or a single random field), and returns the field list to
// pass to the adapter (nil for "all").
func (w *Workload) ChooseFields(mode FieldSelection) []string {
	switch mode {
	case FieldsAll:
		return nil
	case FieldsAllByName:
		fields := make([]string, w.fieldCount)
		for i := range fields {
			fields[i] = fieldName(w.fieldPrefix, i)
		}
		return fields
	default:
		idx := w.fieldChooser.Next()
		return []string{fieldName(w.fieldPrefix, int(idx))}
	}
}

// BuildUpdateValues returns either a full record or a single random field,
// matching §4.3's update rule.
func (w *Workload) BuildUpdateValues(singleField bool) FieldValues {
	if singleField {
		return BuildSingleValue(w.fieldCount, w.fieldPrefix, w.fieldLengthGen, w.fieldChooser)
	}
	return BuildValues(w.fieldCount, w.fieldPrefix, w.fieldLengthGen)
}

// KeyString renders a transaction-key ID the same way BuildKey does for
// inserts, so reads/updates/scans target the same key space.
func (w *Workload) KeyString(id int64) string {
	return BuildKey(id, w.insertOrder, w.zeroPadding)
}

// Table returns the configured table name.
func (w *Workload) Table() string { return w.table }

func fieldName(prefix string, idx int) string {
	return prefix + strconv.Itoa(idx)
}
