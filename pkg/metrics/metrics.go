// Package metrics exposes the service counters on a dedicated Prometheus
// registry. A nil *Metrics is valid and records nothing.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry *prometheus.Registry

	diagnosesTotal    *prometheus.CounterVec
	networkScore      prometheus.Histogram
	historyDeletes    prometheus.Counter
	httpRequestsTotal *prometheus.CounterVec
	httpDuration      *prometheus.HistogramVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		diagnosesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "netdiag_diagnoses_total",
			Help: "Total diagnoses stored, by detected issue type.",
		}, []string{"issue_type"}),
		networkScore: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "netdiag_network_score",
			Help:    "Distribution of composite network scores.",
			Buckets: prometheus.LinearBuckets(10, 10, 10),
		}),
		historyDeletes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "netdiag_history_deletes_total",
			Help: "Total history records removed by delete or clear.",
		}),
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total count of HTTP requests processed by route and status.",
		}, []string{"route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Histogram of HTTP request durations by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.diagnosesTotal,
		m.networkScore,
		m.historyDeletes,
		m.httpRequestsTotal,
		m.httpDuration,
	)

	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

func (m *Metrics) ObserveDiagnosis(issueType string, score float64) {
	if m == nil {
		return
	}
	m.diagnosesTotal.WithLabelValues(issueType).Inc()
	m.networkScore.Observe(score)
}

func (m *Metrics) AddHistoryDeletes(n int64) {
	if m == nil || n <= 0 {
		return
	}
	m.historyDeletes.Add(float64(n))
}

func (m *Metrics) ObserveHTTP(route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}

// Middleware records requests by their route template, so /diagnoses/:id is
// one series regardless of the id.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveHTTP(route, c.Writer.Status(), time.Since(start))
	}
}

func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
