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

// ycsbgo drives a storage adapter through a configurable load-then-transact
// benchmark: LOAD populates a keyspace, TRANSACTIONS replays a weighted mix
// of reads, updates, inserts, and scans at an optional target rate.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/agilira/iris"

	"ycsbgo/internal/ycsb/core"
	"ycsbgo/internal/ycsb/db"
	"ycsbgo/internal/ycsb/telemetry"
)

type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }
func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

type keyValueList []string

func (s *keyValueList) String() string { return strings.Join(*s, ",") }
func (s *keyValueList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

func main() {
	os.Exit(run())
}

func run() int {
	var (
		threads     = flag.Int("threads", 1, "number of worker threads")
		target      = flag.Int64("target", 0, "target ops/sec across all workers (0 = unlimited)")
		loadStage   = flag.Bool("load", false, "run the LOAD stage")
		txStage     = flag.Bool("t", false, "run the TRANSACTIONS stage")
		adapter     = flag.String("db", "basic", "storage adapter: basic|redis")
		statusFlag  = flag.Bool("s", false, "emit periodic status lines")
		label       = flag.String("l", "", "label for status output")
		metricsAddr = flag.String("metrics-addr", "", "address to serve a Prometheus /metrics mirror on (empty disables)")
		logDev      = flag.Bool("log-dev", false, "use the human-readable development logger instead of the production JSON logger")
	)
	var propFiles stringList
	flag.Var(&propFiles, "P", "load a properties file (repeatable, later files win)")
	var propPairs keyValueList
	flag.Var(&propPairs, "p", "set a single property key=value (overrides files; repeatable)")
	flag.Parse()

	logger, err := newLogger(*logDev)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		return 1
	}
	defer logger.Close()

	props := core.NewProperties()
	for _, path := range propFiles {
		if err := props.LoadFile(path); err != nil {
			logger.Error("load properties file", iris.Str("path", path), iris.Error(err))
			return 1
		}
	}
	for _, pair := range propPairs {
		k, v, ok := strings.Cut(pair, "=")
		if !ok {
			logger.Error("invalid -p value, want key=value", iris.Str("value", pair))
			return 1
		}
		props.Set(k, v)
	}

	if !props.Has(core.PropWorkload) {
		fmt.Fprintln(os.Stderr, "usage: ycsbgo [-load] [-t] -P workload.properties [-p key=value ...]")
		fmt.Fprintln(os.Stderr, "required property \"workload\" is missing")
		return 1
	}

	workload, err := core.NewWorkload(props)
	if err != nil {
		logger.Error("build workload", iris.Error(err))
		return 1
	}

	rawDB, err := db.Build(*adapter, props)
	if err != nil {
		logger.Error("build db adapter", iris.Str("db", *adapter), iris.Error(err))
		return 1
	}

	initCtx, cancelInit := context.WithTimeout(context.Background(), 30*time.Second)
	err = rawDB.Init(initCtx)
	cancelInit()
	if err != nil {
		logger.Error("init db adapter", iris.Str("db", *adapter), iris.Error(err))
		return 1
	}
	defer func() {
		cleanupCtx, cancelCleanup := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancelCleanup()
		if err := rawDB.Cleanup(cleanupCtx); err != nil {
			logger.Error("cleanup db adapter", iris.Error(err))
		}
	}()

	registry := core.NewRegistry(core.MeasurementType(props.String(core.PropMeasurementType, string(core.MeasurementHDRHistogram))))
	returnCodes := core.NewReturnCodes()
	measuringDB := core.NewMeasuringDB(rawDB, registry, returnCodes)

	var mirror *telemetry.PromMirror
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if *metricsAddr != "" {
		mirror = telemetry.NewPromMirror()
		measuringDB.Hook = mirror.Hook()
		go mirror.Serve(ctx, *metricsAddr)
	}

	if !*loadStage && !*txStage {
		*txStage = true
	}

	stage := core.StageTransactions
	opCount := props.Int64(core.PropOperationCount, 0)
	if *loadStage {
		stage = core.StageLoad
		opCount = props.InsertCount()
	}

	tick := time.Duration(0)
	if *target > 0 {
		tick = time.Duration(float64(*threads) / float64(*target) * float64(time.Second))
	}

	workers := make([]*core.ClientWorker, *threads)
	per := opCount / int64(*threads)
	rem := opCount % int64(*threads)
	for i := 0; i < *threads; i++ {
		share := per
		if int64(i) < rem {
			share++
		}
		workers[i] = core.NewClientWorker(i, workload, measuringDB, stage, share, tick)
	}

	sigCtx, stopSignals := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	maxExecTime := props.Duration(core.PropMaxExecutionTime, 0)
	terminator := core.NewTerminator(workload, cancel, maxExecTime)
	go terminator.Run(sigCtx)

	var reporter *core.StatusReporter
	if *statusFlag {
		interval := props.Duration(core.PropStatusIntervalSeconds, 10*time.Second)
		reporter = core.NewStatusReporter(workers, opCount, interval, logger)
		go reporter.Run(sigCtx)
	}

	if *label != "" {
		logger.Info("starting run", iris.Str("label", *label), iris.Str("stage", stageName(stage)), iris.Int("threads", *threads), iris.Int64("op_count", opCount))
	}

	start := time.Now()
	var wg sync.WaitGroup
	wg.Add(len(workers))
	for _, w := range workers {
		w := w
		go func() {
			defer wg.Done()
			w.Run(sigCtx)
		}()
	}
	wg.Wait()
	elapsed := time.Since(start)

	for i, w := range workers {
		if err := w.FatalErr(); err != nil {
			logger.Error("worker stopped on fatal error", iris.Int("worker", i), iris.Error(err))
			return 1
		}
	}

	exporter := core.NewExporter(os.Stdout,
		props.Bool("hdrhistogram.fileoutput", false),
		props.String("hdrhistogram.output.path", ""))
	if err := exporter.Export(core.RunSummary{
		Operations:  totalOps(workers),
		Runtime:     elapsed,
		Registry:    registry,
		ReturnCodes: returnCodes,
		Percentiles: core.DefaultPercentiles,
	}); err != nil {
		logger.Error("export summary", iris.Error(err))
		return 1
	}

	return 0
}

func totalOps(workers []*core.ClientWorker) int64 {
	var n int64
	for _, w := range workers {
		n += w.OpsDone()
	}
	return n
}

func stageName(s core.Stage) string {
	if s == core.StageLoad {
		return "LOAD"
	}
	return "TRANSACTIONS"
}

func newLogger(dev bool) (*iris.Logger, error) {
	if dev {
		return iris.NewDevelopment()
	}
	return iris.NewProduction()
}
