package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	RateLookupsTotal      *prometheus.CounterVec
	UpstreamFetchesTotal  *prometheus.CounterVec
	UpstreamFetchDuration prometheus.Histogram

	CurrentRate     prometheus.Gauge
	RateLastUpdated prometheus.Gauge
}

// NewMetrics registers every collector on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"path", "method", "status_code"},
		),

		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"path", "method"},
		),

		RateLookupsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rate_lookups_total",
				Help: "Total number of rate lookups by how they were answered",
			},
			[]string{"result"},
		),

		UpstreamFetchesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "upstream_fetches_total",
				Help: "Total number of ticker fetches by outcome",
			},
			[]string{"outcome"},
		),

		UpstreamFetchDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "upstream_fetch_duration_seconds",
				Help:    "Ticker fetch duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),

		CurrentRate: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "current_rate",
				Help: "Last successfully fetched exchange rate",
			},
		),

		RateLastUpdated: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "rate_last_updated_timestamp_seconds",
				Help: "Unix time of the last successful rate refresh",
			},
		),
	}
}
