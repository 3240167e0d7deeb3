package rules

// AlertRules returns a PrometheusRule CR containing alert rules for
// keja-match operational monitoring.
func AlertRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "keja-alerts",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "keja-alerts",
					Rules: []Rule{
						{
							Alert: "KejaDown",
							Expr:  `absent(up{job="keja-match"})`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Keja Match is down",
								"description": "The keja-match job has been absent for more than 2 minutes.",
							},
						},
						{
							Alert: "KejaReadinessDown",
							Expr:  `keja_readyz_up == 0`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Keja Match readiness check is failing",
								"description": "The readiness probe has been reporting not-ready for more than 2 minutes.",
							},
						},
						{
							Alert: "KejaHighErrorRate",
							Expr:  `keja:http_errors:rate5m / keja:http_requests:rate5m > 0.05`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "High HTTP error rate on Keja Match",
								"description": "More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes.",
							},
						},
						{
							Alert: "KejaIngestionErrors",
							Expr:  `keja:ingestion_errors:rate5m > 0`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Ingestion errors detected",
								"description": "The listing ingestion pipeline has been producing errors for more than 5 minutes.",
							},
						},
						{
							Alert: "KejaFeedQuotaHigh",
							Expr:  `keja_aggregator_daily_usage > 4000`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Listing feed daily usage is above 80% of the quota",
								"description": "Daily feed usage has exceeded 4000 calls (limit is 5000).",
							},
						},
						{
							Alert: "KejaFeedLimitReached",
							Expr:  `increase(keja_aggregator_daily_limit_hits_total[5m]) > 0`,
							For:   "0m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Listing feed daily limit has been reached",
								"description": "The partner feed daily quota has been exhausted. Ingestion is paused until reset.",
							},
						},
						{
							Alert: "KejaNotificationFailures",
							Expr:  `increase(keja_notification_failures_total[5m]) > 0`,
							For:   "1m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Notification delivery failures detected",
								"description": "One or more application notifications (webhooks) have failed to send.",
							},
						},
					},
				},
			},
		},
	}
}
