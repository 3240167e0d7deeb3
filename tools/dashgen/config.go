package main

import "errors"

// KnownMetrics is the set of metric names exported by keja-match plus
// recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"keja_http_request_duration_seconds": true,
	"keja_http_requests_total":           true,

	// Health metrics.
	"keja_healthz_up": true,
	"keja_readyz_up":  true,

	// Ingestion metrics.
	"keja_ingestion_listings_total":   true,
	"keja_ingestion_errors_total":     true,
	"keja_ingestion_duration_seconds": true,

	// Aggregator feed metrics.
	"keja_aggregator_calls_total":            true,
	"keja_aggregator_daily_usage":            true,
	"keja_aggregator_daily_limit_hits_total": true,

	// Recommendation metrics.
	"keja_recommendations_generated_total": true,
	"keja_recommendation_duration_seconds": true,
	"keja_match_score_distribution":        true,
	"keja_intent_queries_total":            true,

	// Market refresh metrics.
	"keja_market_refresh_duration_seconds": true,
	"keja_market_locations_tracked":        true,

	// Application metrics.
	"keja_applications_submitted_total": true,
	"keja_notification_failures_total":  true,

	// Recording rules.
	"keja:http_requests:rate5m":      true,
	"keja:http_errors:rate5m":        true,
	"keja:ingestion_listings:rate5m": true,
	"keja:ingestion_errors:rate5m":   true,
	"keja:recommendations:rate5m":    true,
	"keja:aggregator_calls:rate5m":   true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
