package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Business Metrics
var (
	SimulationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSimulationsTotal,
			Help: HelpTextSimulationsTotal,
		},
		[]string{LabelMode},
	)

	SimulatedKillsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSimulatedKillsTotal,
			Help: HelpTextSimulatedKillsTotal,
		},
	)

	CacheLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCacheLookupsTotal,
			Help: HelpTextCacheLookupsTotal,
		},
		[]string{LabelResult},
	)

	WikiFetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameWikiFetchesTotal,
			Help: HelpTextWikiFetchesTotal,
		},
		[]string{LabelResult},
	)

	FallbackHitsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameFallbackHitsTotal,
			Help: HelpTextFallbackHitsTotal,
		},
	)

	PriceLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePriceLookupsTotal,
			Help: HelpTextPriceLookupsTotal,
		},
		[]string{LabelResult},
	)

	RPSGamesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRPSGamesTotal,
			Help: HelpTextRPSGamesTotal,
		},
		[]string{LabelOutcome},
	)
)
