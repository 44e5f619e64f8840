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

// Business metric names
const (
	MetricNameSimulationsTotal    = "simulations_total"
	MetricNameSimulatedKillsTotal = "simulated_kills_total"
	MetricNameCacheLookupsTotal   = "drop_table_cache_lookups_total"
	MetricNameWikiFetchesTotal    = "wiki_fetches_total"
	MetricNameFallbackHitsTotal   = "fallback_table_hits_total"
	MetricNamePriceLookupsTotal   = "price_lookups_total"
	MetricNameRPSGamesTotal       = "rps_games_total"
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

// Business metric help text
const (
	HelpTextSimulationsTotal    = "Total number of kill simulations run"
	HelpTextSimulatedKillsTotal = "Total number of kills simulated"
	HelpTextCacheLookupsTotal   = "Total number of drop table cache lookups"
	HelpTextWikiFetchesTotal    = "Total number of wiki page fetches"
	HelpTextFallbackHitsTotal   = "Total number of fallback catalog hits"
	HelpTextPriceLookupsTotal   = "Total number of marketplace price lookups"
	HelpTextRPSGamesTotal       = "Total number of rock-paper-scissors games played"
)

// ============================================================================
// Label Names and Values
// ============================================================================

const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelMode    = "mode"
	LabelResult  = "result"
	LabelOutcome = "outcome"
	LabelMonster = "monster"
)

// Simulation mode label values
const (
	ModeExact        = "exact"
	ModeApproximated = "approximated"
)

// Result label values
const (
	ResultHit     = "hit"
	ResultMiss    = "miss"
	ResultSuccess = "success"
	ResultError   = "error"
)

// Histogram buckets
var HTTPLatencyBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}
