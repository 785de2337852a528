// Package metrics holds the Prometheus collectors of the spraying service.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "spraying"

// Metrics is safe to use as a nil pointer; every recorder is then a no-op.
type Metrics struct {
	registry *prometheus.Registry

	transitions    *prometheus.CounterVec
	editCommits    *prometheus.CounterVec
	remoteAttempts *prometheus.CounterVec
	openSessions   prometheus.Gauge
	httpRequests   *prometheus.CounterVec
	httpDuration   *prometheus.HistogramVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "orders",
			Name:      "transitions_total",
			Help:      "Status transitions by target status and result.",
		}, []string{"to", "result"}),
		editCommits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "edit_sessions",
			Name:      "commits_total",
			Help:      "Edit session commits by result.",
		}, []string{"result"}),
		remoteAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "remote",
			Name:      "attempts_total",
			Help:      "Calls to remote collaborators by operation and result, one per attempt.",
		}, []string{"operation", "result"}),
		openSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "edit_sessions",
			Name:      "open",
			Help:      "Edit sessions currently open.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		}, []string{"method", "route"}),
	}

	m.registry.MustRegister(
		m.transitions,
		m.editCommits,
		m.remoteAttempts,
		m.openSessions,
		m.httpRequests,
		m.httpDuration,
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)
	return m
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.HandlerFor(prometheus.NewRegistry(), promhttp.HandlerOpts{})
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry returns nil for nil metrics.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Transition counts one status change attempt by target and outcome.
func (m *Metrics) Transition(to string, err error) {
	if m == nil {
		return
	}
	m.transitions.WithLabelValues(to, result(err)).Inc()
}

// EditCommit counts one commit attempt by outcome.
func (m *Metrics) EditCommit(err error) {
	if m == nil {
		return
	}
	m.editCommits.WithLabelValues(result(err)).Inc()
}

// RemoteAttempt counts one remote call attempt.
func (m *Metrics) RemoteAttempt(operation string, err error) {
	if m == nil {
		return
	}
	m.remoteAttempts.WithLabelValues(operation, result(err)).Inc()
}

// SetOpenSessions records the number of open edit sessions.
func (m *Metrics) SetOpenSessions(n int) {
	if m == nil {
		return
	}
	m.openSessions.Set(float64(n))
}

// HTTPRequest records one served request.
func (m *Metrics) HTTPRequest(method, route, status string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, status).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
