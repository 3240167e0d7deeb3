package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "keja-recording-rules",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "keja-recording",
					Rules: []Rule{
						{
							Record: "keja:http_requests:rate5m",
							Expr:   `sum(rate(keja_http_requests_total[5m]))`,
						},
						{
							Record: "keja:http_errors:rate5m",
							Expr:   `sum(rate(keja_http_requests_total{status=~"5.."}[5m]))`,
						},
						{
							Record: "keja:ingestion_listings:rate5m",
							Expr:   `rate(keja_ingestion_listings_total[5m])`,
						},
						{
							Record: "keja:ingestion_errors:rate5m",
							Expr:   `rate(keja_ingestion_errors_total[5m])`,
						},
						{
							Record: "keja:recommendations:rate5m",
							Expr:   `rate(keja_recommendations_generated_total[5m])`,
						},
						{
							Record: "keja:aggregator_calls:rate5m",
							Expr:   `rate(keja_aggregator_calls_total[5m])`,
						},
					},
				},
			},
		},
	}
}
