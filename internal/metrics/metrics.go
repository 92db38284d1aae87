// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics holds the Prometheus collectors of the registry service.
package metrics

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-student-registry/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const outcomeOK = "ok"

// Metrics holds all Prometheus metrics for the application. Collectors are
// registered on a private registry exposed by [Metrics.Handler].
type Metrics struct {
	registry *prometheus.Registry

	StudentOperations *prometheus.CounterVec
	OperationDuration *prometheus.HistogramVec
	AuthFailures      *prometheus.CounterVec
	HTTPRequests      *prometheus.CounterVec
}

// New creates and registers all metrics, plus the Go runtime and process
// collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		StudentOperations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "student_registry_operations_total",
			Help: "Student use cases executed, by operation and outcome code",
		}, []string{"operation", "outcome"}),
		OperationDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "student_registry_operation_duration_seconds",
			Help:    "Duration of student use cases including the backend round trip",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"operation"}),
		AuthFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "student_registry_auth_failures_total",
			Help: "Rejected bearer credentials, by error code",
		}, []string{"code"}),
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "student_registry_http_requests_total",
			Help: "HTTP requests served, by method, route pattern and status",
		}, []string{"method", "route", "status"}),
	}
}

// ObserveOperation records one use case run started at start. The outcome
// label is "ok" or the error code err maps to.
func (m *Metrics) ObserveOperation(operation string, start time.Time, err error) {
	m.OperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	m.StudentOperations.WithLabelValues(operation, Outcome(err)).Inc()
}

// IncrementAuthFailure records a rejected credential.
func (m *Metrics) IncrementAuthFailure(err error) {
	m.AuthFailures.WithLabelValues(Outcome(err)).Inc()
}

// IncrementHTTPRequest records a served request.
func (m *Metrics) IncrementHTTPRequest(method, route, status string) {
	m.HTTPRequests.WithLabelValues(method, route, status).Inc()
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Outcome returns the label value for err.
func Outcome(err error) string {
	if err == nil {
		return outcomeOK
	}
	return string(models.NewErrorResponse(err).Code)
}
