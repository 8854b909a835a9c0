package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// metrics holds the server's collectors on its own registry so that tests
// and multiple servers in one process do not collide.
type metrics struct {
	registry *prometheus.Registry

	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	analyses        *prometheus.CounterVec
	overallScore    prometheus.Histogram
	rateLimited     prometheus.Counter
}

func newMetrics() *metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &metrics{
		registry: reg,
		requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "resume_fit_http_requests_total",
				Help: "HTTP requests by route and status code",
			},
			[]string{"route", "code"},
		),
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "resume_fit_http_request_duration_seconds",
				Help:    "HTTP request latency by route",
				Buckets: prometheus.ExponentialBuckets(0.005, 2, 14),
			},
			[]string{"route"},
		),
		analyses: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "resume_fit_analyses_total",
				Help: "Analyses by outcome",
			},
			[]string{"outcome"},
		),
		overallScore: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "resume_fit_overall_score",
				Help:    "Distribution of overall fit scores",
				Buckets: []float64{10, 20, 30, 40, 50, 60, 70, 85, 100},
			},
		),
		rateLimited: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "resume_fit_rate_limited_total",
				Help: "Requests rejected by the rate limiter",
			},
		),
	}
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
