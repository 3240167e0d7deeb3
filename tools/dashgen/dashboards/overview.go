// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/kejahub/keja-match/tools/dashgen/panels"
)

// BuildOverview constructs the Keja Match Overview dashboard with all
// metric rows.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("Keja Match Overview").
		Uid("keja-overview").
		Tags([]string{"keja", "keja-match"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	// Row 1: Overview.
	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthzStat()).
		WithPanel(panels.ReadyzStat()).
		WithPanel(panels.QuotaGauge()).
		WithPanel(panels.UptimeStat()))

	// Row 2: HTTP.
	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()))

	// Row 3: Listing Feed.
	b.WithRow(dashboard.NewRowBuilder("Listing Feed").
		WithPanel(panels.FeedCallsRate()).
		WithPanel(panels.FeedDailyUsage()).
		WithPanel(panels.FeedLimitHits()))

	// Row 4: Ingestion.
	b.WithRow(dashboard.NewRowBuilder("Ingestion").
		WithPanel(panels.ListingsRate()).
		WithPanel(panels.IngestionErrors()).
		WithPanel(panels.CycleDuration()))

	// Row 5: Recommendations.
	b.WithRow(dashboard.NewRowBuilder("Recommendations").
		WithPanel(panels.RecommendationRate()).
		WithPanel(panels.RecommendationLatency()).
		WithPanel(panels.IntentQueriesRate()).
		WithPanel(panels.MatchScoreDistribution()))

	// Row 6: Market.
	b.WithRow(dashboard.NewRowBuilder("Market").
		WithPanel(panels.MarketRefreshDuration()).
		WithPanel(panels.LocationsTracked()))

	// Row 7: Applications.
	b.WithRow(dashboard.NewRowBuilder("Applications").
		WithPanel(panels.ApplicationsRate()).
		WithPanel(panels.NotificationFailures()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
