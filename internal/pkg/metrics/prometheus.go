// Package metrics provides Prometheus metrics for the HR reporting service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Manager owns the service metrics. A nil *Manager is valid and records nothing.
type Manager struct {
	namespace        string
	histogramBuckets []float64
	enabled          bool
	registry         *prometheus.Registry

	// Reports
	reportsGenerated *prometheus.CounterVec
	reportsFailed    *prometheus.CounterVec
	reportDuration   *prometheus.HistogramVec
	exportBytes      *prometheus.CounterVec

	// Activity trail
	activityWritten     prometheus.Counter
	activityDropped     prometheus.Counter
	activityWriteErrors prometheus.Counter

	// HTTP
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// NewManager creates a metrics manager registered on its own registry unless
// WithRegistry is given.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "hris",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
	}

	for _, opt := range opts {
		opt(m)
	}
	if m.registry == nil {
		m.registry = prometheus.NewRegistry()
	}

	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.reportsGenerated = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "report",
		Name:      "generated_total",
		Help:      "Reports and exports generated successfully, by report type",
	}, []string{"report"})

	m.reportsFailed = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "report",
		Name:      "failed_total",
		Help:      "Report generations that failed on data access, by report type",
	}, []string{"report"})

	m.reportDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "report",
		Name:      "duration_seconds",
		Help:      "Time spent querying and aggregating a report",
		Buckets:   m.histogramBuckets,
	}, []string{"report"})

	m.exportBytes = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "export",
		Name:      "bytes_total",
		Help:      "Bytes of CSV produced by exports",
	}, []string{"report"})

	m.activityWritten = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "activity",
		Name:      "entries_written_total",
		Help:      "Activity entries persisted",
	})

	m.activityDropped = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "activity",
		Name:      "entries_dropped_total",
		Help:      "Activity entries dropped because the queue was full or stopped",
	})

	m.activityWriteErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "activity",
		Name:      "write_errors_total",
		Help:      "Failed activity batch writes",
	})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by method, route and status",
	}, []string{"method", "route", "status"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by method and route",
		Buckets:   m.histogramBuckets,
	}, []string{"method", "route"})
}

func (m *Manager) active() bool {
	return m != nil && m.enabled
}

// ObserveReport records one finished report build.
func (m *Manager) ObserveReport(report string, d time.Duration, err error) {
	if !m.active() {
		return
	}
	m.reportDuration.WithLabelValues(report).Observe(d.Seconds())
	if err != nil {
		m.reportsFailed.WithLabelValues(report).Inc()
		return
	}
	m.reportsGenerated.WithLabelValues(report).Inc()
}

func (m *Manager) AddExportBytes(report string, n int) {
	if !m.active() {
		return
	}
	m.exportBytes.WithLabelValues(report).Add(float64(n))
}

func (m *Manager) AddActivityWritten(n int) {
	if !m.active() {
		return
	}
	m.activityWritten.Add(float64(n))
}

func (m *Manager) IncActivityDropped() {
	if !m.active() {
		return
	}
	m.activityDropped.Inc()
}

func (m *Manager) IncActivityWriteErrors() {
	if !m.active() {
		return
	}
	m.activityWriteErrors.Inc()
}

// ObserveHTTP records a served request. route is the matched chi pattern.
func (m *Manager) ObserveHTTP(method, route string, status int, d time.Duration) {
	if !m.active() {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// Registry returns the registry the metrics are registered on.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
