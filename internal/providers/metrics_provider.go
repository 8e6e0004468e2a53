package providers

import (
	"admgate/internal/structures"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type ChartSlotCounter interface {
	LiveSlots() int
}

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncCacheHits()
	IncCacheMisses()
	IncUpstreamRequests(endpoint string, status int)
	ObserveUpstreamDuration(endpoint string, duration time.Duration)
}

type MetricsProvider struct {
	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	cacheHits        prometheus.Counter
	cacheMisses      prometheus.Counter
	upstreamTotal    *prometheus.CounterVec
	upstreamDuration *prometheus.HistogramVec
}

func (m *MetricsProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncCacheHits() {
	m.cacheHits.Inc()
}

func (m *MetricsProvider) IncCacheMisses() {
	m.cacheMisses.Inc()
}

func (m *MetricsProvider) IncUpstreamRequests(endpoint string, status int) {
	m.upstreamTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveUpstreamDuration(endpoint string, duration time.Duration) {
	m.upstreamDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func NewMetricsProvider(conf *structures.Config, charts ChartSlotCounter) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	m := &MetricsProvider{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "admgate_requests_total",
			Help: "Total number of handled HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "admgate_request_duration_seconds",
			Help:    "Handled HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		cacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "admgate_cache_hits_total",
			Help: "Total number of upstream cache hits",
		}),

		cacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "admgate_cache_misses_total",
			Help: "Total number of upstream cache misses",
		}),

		upstreamTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "admgate_upstream_requests_total",
			Help: "Total number of upstream API requests",
		}, []string{"endpoint", "status"}),

		upstreamDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "admgate_upstream_request_duration_seconds",
			Help:    "Upstream API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),
	}

	promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "admgate_chart_slots",
		Help: "Current number of live chart handles",
	}, func() float64 {
		return float64(charts.LiveSlots())
	})

	return m
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                  {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration)  {}
func (n *noopMetrics) IncCacheHits()                                     {}
func (n *noopMetrics) IncCacheMisses()                                   {}
func (n *noopMetrics) IncUpstreamRequests(_ string, _ int)               {}
func (n *noopMetrics) ObserveUpstreamDuration(_ string, _ time.Duration) {}
