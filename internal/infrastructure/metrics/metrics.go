// Package metrics exposes Prometheus collectors for the offer pipeline.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles the service's Prometheus collectors and their registry.
type Metrics struct {
	ProcessTotal        prometheus.Counter
	OffersProcessed     prometheus.Counter
	OffersRejected      prometheus.Counter
	CacheHitsTotal      prometheus.Counter
	RateLimitDropsTotal prometheus.Counter

	PipelineDuration    *prometheus.HistogramVec
	HTTPRequestDuration *prometheus.HistogramVec
	HTTPRequestsTotal   *prometheus.CounterVec

	Registry *prometheus.Registry
}

// New creates the Prometheus collectors and registers them on the given
// registry.
func New(p *prometheus.Registry) *Metrics {
	m := &Metrics{
		ProcessTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "offer_process_total",
			Help: "Total number of pipeline runs",
		}),
		OffersProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "offer_offers_processed_total",
			Help: "Total number of offers in the filtered result sets",
		}),
		OffersRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "offer_offers_rejected_total",
			Help: "Total number of offers excluded for malformed data",
		}),
		CacheHitsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "offer_cache_hits_total",
			Help: "Number of cache hits for processed results",
		}),
		RateLimitDropsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "offer_ratelimit_drops_total",
			Help: "Requests dropped due to rate limiting",
		}),
		PipelineDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "offer_pipeline_duration_ms",
				Help:    "Pipeline execution time per sort option",
				Buckets: prometheus.LinearBuckets(1, 5, 12),
			},
			[]string{"sort_by"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latencies",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		Registry: p,
	}

	p.MustRegister(
		m.ProcessTotal,
		m.OffersProcessed,
		m.OffersRejected,
		m.CacheHitsTotal,
		m.RateLimitDropsTotal,
		m.PipelineDuration,
		m.HTTPRequestDuration,
		m.HTTPRequestsTotal,
	)

	return m
}

// NewDefault creates Metrics on a fresh private registry.
func NewDefault() *Metrics {
	return New(prometheus.NewRegistry())
}

func (m *Metrics) IncProcess()        { m.ProcessTotal.Inc() }
func (m *Metrics) IncCacheHits()      { m.CacheHitsTotal.Inc() }
func (m *Metrics) IncRateLimitDrops() { m.RateLimitDropsTotal.Inc() }

// AddOffers records one run's filtered result-set size and the number of
// offers excluded for malformed data.
func (m *Metrics) AddOffers(processed, rejected int) {
	m.OffersProcessed.Add(float64(processed))
	m.OffersRejected.Add(float64(rejected))
}

// ObservePipelineDuration records one pipeline run's duration in milliseconds.
func (m *Metrics) ObservePipelineDuration(sortBy string, ms float64) {
	m.PipelineDuration.WithLabelValues(sortBy).Observe(ms)
}

// ObserveHTTPRequest records one HTTP request's duration and count.
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, seconds float64) {
	code := strconv.Itoa(status)
	m.HTTPRequestDuration.WithLabelValues(method, path, code).Observe(seconds)
	m.HTTPRequestsTotal.WithLabelValues(method, path, code).Inc()
}

// Handler returns the /metrics scrape handler for the registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
