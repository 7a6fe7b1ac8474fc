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

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	SpinsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSpinsTotal,
			Help: HelpTextSpinsTotal,
		},
		[]string{LabelPrizeType},
	)

	PrizeAmountTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePrizeAmountTotal,
			Help: HelpTextPrizeAmountTotal,
		},
		[]string{LabelPrizeType},
	)

	CooldownDenials = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCooldownDenials,
			Help: HelpTextCooldownDenials,
		},
	)

	ServiceErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameServiceErrors,
			Help: HelpTextServiceErrors,
		},
		[]string{LabelKind},
	)

	WheelConfigVersion = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameWheelConfigVersion,
			Help: HelpTextWheelConfigVersion,
		},
	)

	RateLimitedRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRateLimitedRequests,
			Help: HelpTextRateLimitedRequests,
		},
		[]string{LabelAction},
	)
)
