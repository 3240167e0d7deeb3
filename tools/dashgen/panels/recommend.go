package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/bargauge"
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// RecommendationRate returns a timeseries panel showing recommendations
// generated per second.
func RecommendationRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Recommendation Rate").
		Description("Recommendations generated per second").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(`keja:recommendations:rate5m`, "recs/s", "A")).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// RecommendationLatency returns a timeseries panel showing p50 and p95
// recommendation generation latencies.
func RecommendationLatency() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Recommendation Latency").
		Description("Recommendation generation duration percentiles").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(
			`histogram_quantile(0.50, sum(rate(keja_recommendation_duration_seconds_bucket{job="keja-match"}[5m])) by (le))`,
			"p50",
			"A",
		)).
		WithTarget(PromQuery(
			`histogram_quantile(0.95, sum(rate(keja_recommendation_duration_seconds_bucket{job="keja-match"}[5m])) by (le))`,
			"p95",
			"B",
		)).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// IntentQueriesRate returns a timeseries panel showing intent analyses per
// second broken down by category.
func IntentQueriesRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Intent Queries").
		Description("Search intent analyses per second by category").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(
			`sum(rate(keja_intent_queries_total{job="keja-match"}[5m])) by (intent)`,
			"{{intent}}", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// MatchScoreDistribution returns a bar gauge panel showing the distribution
// of computed match scores across histogram buckets.
func MatchScoreDistribution() *bargauge.PanelBuilder {
	return bargauge.NewPanelBuilder().
		Title("Match Score Distribution").
		Description("Distribution of match scores (0-100)").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(FullWidth).
		WithTarget(PromQuery(
			`sum(increase(keja_match_score_distribution_bucket{job="keja-match"}[1h])) by (le)`,
			"{{le}}", "A",
		)).
		Orientation(common.VizOrientationHorizontal).
		Min(0).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())
}
