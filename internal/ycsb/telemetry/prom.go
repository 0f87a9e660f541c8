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

// Package telemetry mirrors the run's latency/return-code measurements
// onto a Prometheus registry, for operators who want to point a scraper
// at a long-running benchmark rather than tail its status lines.
package telemetry

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ycsbgo/internal/ycsb/core"
)

// PromMirror holds the Prometheus collectors a benchmark run feeds. It is
// constructed with its own registry (not the global default) so that
// constructing more than one mirror in a process never hits a
// duplicate-registration panic.
type PromMirror struct {
	registry *prometheus.Registry
	opsTotal *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

// NewPromMirror constructs and registers the collector set.
func NewPromMirror() *PromMirror {
	reg := prometheus.NewRegistry()
	opsTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ycsb_operations_total",
		Help: "Total operations completed, by operation and status.",
	}, []string{"op", "status"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ycsb_operation_latency_microseconds",
		Help:    "Operation latency in microseconds.",
		Buckets: prometheus.ExponentialBuckets(50, 2, 16),
	}, []string{"op"})

	reg.MustRegister(opsTotal, latency)
	return &PromMirror{registry: reg, opsTotal: opsTotal, latency: latency}
}

// Hook returns the core.MeasuringDB.Hook closure that feeds this mirror
// from the operation dispatch path, observed in real time rather than by
// polling a snapshot.
func (p *PromMirror) Hook() func(op string, status core.Status, micros int64) {
	return func(op string, status core.Status, micros int64) {
		p.opsTotal.WithLabelValues(op, string(status)).Inc()
		p.latency.WithLabelValues(op).Observe(float64(micros))
	}
}

// Serve starts an HTTP server exposing /metrics on addr until ctx is
// cancelled. It is meant to run in its own goroutine; ListenAndServe
// errors other than server-closed are silently dropped, matching the
// "best-effort, never fatal to the benchmark" stance telemetry takes
// throughout this harness.
func (p *PromMirror) Serve(ctx context.Context, addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{}))
	server := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	_ = server.ListenAndServe()
}
