// Marquee
// Copyright (c) 2026 The Zaparoo Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Marquee.
//
// Marquee is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Marquee is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Marquee.  If not, see <http://www.gnu.org/licenses/>.

// Package metrics holds the Prometheus collectors for the service and the
// handler that exposes them.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "marquee"

// Metrics holds every collector, registered on a private registry so
// multiple instances can coexist in one process.
type Metrics struct {
	registry            *prometheus.Registry
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	PredictionsTotal    *prometheus.CounterVec
	ResolutionsTotal    *prometheus.CounterVec
	ResolveLatency      prometheus.Histogram
	CatalogReloadsTotal *prometheus.CounterVec
	CatalogRecords      prometheus.Gauge
	ModelSource         *prometheus.GaugeVec
}

// New creates and registers all collectors. Process and Go runtime
// collectors are included.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests by method, route, and status.",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency in seconds.",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"method", "route"},
		),
		PredictionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "predictions_total",
				Help:      "Sentiment predictions by label.",
			},
			[]string{"label"},
		),
		ResolutionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "resolutions_total",
				Help:      "Title resolutions by outcome (exact, corrected, suggested, none).",
			},
			[]string{"outcome"},
		),
		ResolveLatency: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "resolve_latency_seconds",
				Help:      "Title resolution latency in seconds.",
				Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
			},
		),
		CatalogReloadsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "catalog_reloads_total",
				Help:      "Catalog file parses by status.",
			},
			[]string{"status"},
		),
		CatalogRecords: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "catalog_records",
				Help:      "Number of records in the loaded catalog.",
			},
		),
		ModelSource: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "model_source",
				Help:      "Set to 1 for the step that produced the sentiment model.",
			},
			[]string{"source"},
		),
	}

	m.registry.MustRegister(
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.PredictionsTotal,
		m.ResolutionsTotal,
		m.ResolveLatency,
		m.CatalogReloadsTotal,
		m.CatalogRecords,
		m.ModelSource,
	)

	return m
}

// SetModelSource marks source as the active model source and clears the
// others.
func (m *Metrics) SetModelSource(source string, all []string) {
	for _, s := range all {
		m.ModelSource.WithLabelValues(s).Set(0)
	}
	m.ModelSource.WithLabelValues(source).Set(1)
}

// CatalogReloaded records the result of a catalog parse.
func (m *Metrics) CatalogReloaded(records int, err error) {
	if err != nil {
		m.CatalogReloadsTotal.WithLabelValues("error").Inc()
		return
	}
	m.CatalogReloadsTotal.WithLabelValues("ok").Inc()
	m.CatalogRecords.Set(float64(records))
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns the scrape handler for this instance's registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
