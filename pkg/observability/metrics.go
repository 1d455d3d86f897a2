package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "stringanalyzer"

// Metrics bundles all Prometheus collectors for the service. Each instance
// owns its registry, so tests can construct throwaway instances without
// tripping duplicate registration.
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	recordsTotal        prometheus.Gauge
	nlQueriesTotal      *prometheus.CounterVec
	nlRecognizerHits    *prometheus.CounterVec
	storeOpsTotal       *prometheus.CounterVec
	queryDuration       *prometheus.HistogramVec
	queryResults        *prometheus.CounterVec
}

// NewMetrics creates a Metrics instance backed by a fresh registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,

		httpRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests served, by method, route and status code.",
		}, []string{"method", "route", "status"}),

		httpRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency, by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),

		recordsTotal: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "records_total",
			Help:      "Number of analyzed strings currently stored.",
		}),

		nlQueriesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "nl_queries_total",
			Help:      "Natural language queries interpreted, by outcome.",
		}, []string{"recognized"}),

		nlRecognizerHits: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "nl_recognizer_hits_total",
			Help:      "Recognizer rule hits during query interpretation.",
		}, []string{"recognizer"}),

		storeOpsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_operations_total",
			Help:      "Persistence operations, by backend, operation and status.",
		}, []string{"backend", "operation", "status"}),

		queryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "query_duration_seconds",
			Help:      "Query bus handler latency, by query type.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"query"}),

		queryResults: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "query_results_total",
			Help:      "Query bus outcomes, by result and query type.",
		}, []string{"result", "query"}),
	}
}

// Handler exposes the registry for scraping.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RecordHTTPRequest records one served HTTP request.
func (m *Metrics) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// SetRecordsTotal updates the stored record gauge.
func (m *Metrics) SetRecordsTotal(n float64) {
	m.recordsTotal.Set(n)
}

// ObserveNLQuery counts one interpreted query.
func (m *Metrics) ObserveNLQuery(recognized bool) {
	m.nlQueriesTotal.WithLabelValues(strconv.FormatBool(recognized)).Inc()
}

// ObserveRecognizerHit counts one recognizer rule hit.
func (m *Metrics) ObserveRecognizerHit(recognizer string) {
	m.nlRecognizerHits.WithLabelValues(recognizer).Inc()
}

// RecordStoreOperation counts one persistence operation.
func (m *Metrics) RecordStoreOperation(backend, operation string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.storeOpsTotal.WithLabelValues(backend, operation, status).Inc()
}

// StartTimer implements the query bus metrics interface.
func (m *Metrics) StartTimer(metric, label string) Timer {
	return &histogramTimer{
		start:    time.Now(),
		observer: m.queryDuration.WithLabelValues(label),
	}
}

// Increment implements the query bus metrics interface.
func (m *Metrics) Increment(metric, label string) {
	m.queryResults.WithLabelValues(metric, label).Inc()
}

// Timer measures one timed operation.
type Timer interface {
	Stop()
}

type histogramTimer struct {
	start    time.Time
	observer prometheus.Observer
}

func (t *histogramTimer) Stop() {
	t.observer.Observe(time.Since(t.start).Seconds())
}
