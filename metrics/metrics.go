/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */

// Package metrics exposes Prometheus metrics for the dashboard process.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Acquisition outcome label values.
const (
	OutcomeOK        = "ok"
	OutcomeTransport = "transport_error"
	OutcomeStatus    = "status_error"
	OutcomeDecode    = "decode_error"
	OutcomeNotFound  = "not_found"
)

// Manager owns the dashboard metrics and the registry they live in.
type Manager struct {
	namespace string
	buckets   []float64
	registry  *prometheus.Registry

	acquisitions        *prometheus.CounterVec
	acquisitionDuration prometheus.Histogram
	skippedHooks        *prometheus.CounterVec
	notifications       *prometheus.CounterVec
	selections          *prometheus.CounterVec
	httpRequests        *prometheus.CounterVec
}

// Option configures a Manager.
type Option func(*Manager)

// WithNamespace sets the namespace for all metrics.
func WithNamespace(namespace string) Option {
	return func(m *Manager) {
		if namespace != "" {
			m.namespace = namespace
		}
	}
}

// WithHistogramBuckets sets custom buckets for the latency histogram.
func WithHistogramBuckets(buckets []float64) Option {
	return func(m *Manager) {
		if len(buckets) > 0 {
			m.buckets = buckets
		}
	}
}

// WithProcessCollectors registers the Go runtime and process collectors.
func WithProcessCollectors() Option {
	return func(m *Manager) {
		m.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
}

// NewManager creates a Manager backed by its own registry.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace: "techcare",
		buckets:   prometheus.DefBuckets,
		registry:  prometheus.NewRegistry(),
	}

	for _, opt := range opts {
		opt(m)
	}

	auto := promauto.With(m.registry)

	m.acquisitions = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "acquisition",
		Name:      "attempts_total",
		Help:      "Patient acquisitions by outcome",
	}, []string{"outcome"})

	m.acquisitionDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "acquisition",
		Name:      "duration_seconds",
		Help:      "Time spent fetching and resolving the patient record",
		Buckets:   m.buckets,
	})

	m.skippedHooks = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "binding",
		Name:      "skipped_hooks_total",
		Help:      "View hooks skipped because the template does not expose them",
	}, []string{"hook"})

	m.notifications = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "ui",
		Name:      "notifications_total",
		Help:      "Notifications shown to the user by kind",
	}, []string{"kind"})

	m.selections = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "ui",
		Name:      "selections_total",
		Help:      "Selection changes by list",
	}, []string{"list"})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by route, method and status code",
	}, []string{"route", "method", "status_code"})

	return m
}

// ObserveAcquisition records one acquisition attempt.
func (m *Manager) ObserveAcquisition(outcome string, took time.Duration) {
	if m == nil {
		return
	}

	m.acquisitions.WithLabelValues(outcome).Inc()
	m.acquisitionDuration.Observe(took.Seconds())
}

// IncSkippedHook counts a binding skipped for a missing hook.
func (m *Manager) IncSkippedHook(hook string) {
	if m == nil {
		return
	}

	m.skippedHooks.WithLabelValues(hook).Inc()
}

// IncNotification counts a notification shown to the user.
func (m *Manager) IncNotification(kind string) {
	if m == nil {
		return
	}

	m.notifications.WithLabelValues(kind).Inc()
}

// IncSelection counts a selection change in the named list.
func (m *Manager) IncSelection(list string) {
	if m == nil {
		return
	}

	m.selections.WithLabelValues(list).Inc()
}

// IncHTTPRequest counts a served HTTP request.
func (m *Manager) IncHTTPRequest(route, method, statusCode string) {
	if m == nil {
		return
	}

	m.httpRequests.WithLabelValues(route, method, statusCode).Inc()
}

// Registry returns the registry holding the manager's metrics.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the manager's registry in the Prometheus exposition format.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
