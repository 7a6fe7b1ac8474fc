package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Business metric names
const (
	MetricNameSpinsTotal          = "spins_total"
	MetricNamePrizeAmountTotal    = "prize_amount_total"
	MetricNameCooldownDenials     = "spin_cooldown_denials_total"
	MetricNameServiceErrors       = "service_errors_total"
	MetricNameWheelConfigVersion  = "wheel_config_version"
	MetricNameRateLimitedRequests = "rate_limited_requests_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Business metric help text
const (
	HelpTextSpinsTotal          = "Total number of recorded spins by prize type"
	HelpTextPrizeAmountTotal    = "Sum of prize amounts awarded by prize type"
	HelpTextCooldownDenials     = "Total number of spins rejected by the cooldown"
	HelpTextServiceErrors       = "Total number of error responses by error kind"
	HelpTextWheelConfigVersion  = "Version of the most recently published wheel configuration"
	HelpTextRateLimitedRequests = "Total number of requests rejected by the rate limiter"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelType      = "type"
	LabelPrizeType = "prize_type"
	LabelKind      = "kind"
	LabelAction    = "action"
)

// PathUnmatched labels requests that matched no route
const PathUnmatched = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgPayloadDecodeFailed = "Event payload could not be decoded"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
