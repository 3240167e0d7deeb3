package client

import (
	"context"

	domain "github.com/kejahub/keja-match/pkg/types"
)

// RecommendationsResponse wraps a ranked recommendations response.
type RecommendationsResponse struct {
	Recommendations []domain.Recommendation `json:"recommendations"`
	CandidateCount  int                     `json:"candidate_count"`
}

// GenerateRecommendations scores candidate listings against the given
// preferences and returns ranked matches.
func (c *Client) GenerateRecommendations(
	ctx context.Context,
	prefs *domain.UserPreferences,
	monthlyIncome float64,
	limit int,
) (*RecommendationsResponse, error) {
	body := map[string]any{
		"preferences": prefs,
	}
	if monthlyIncome > 0 {
		body["monthly_income"] = monthlyIncome
	}
	if limit > 0 {
		body["limit"] = limit
	}

	var resp RecommendationsResponse
	if err := c.post(ctx, "/api/v1/recommendations/generate", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AnalyzeIntent classifies a free-text search query.
func (c *Client) AnalyzeIntent(ctx context.Context, query, userID string) (*domain.SearchIntent, error) {
	body := map[string]any{"query": query}
	if userID != "" {
		body["user_id"] = userID
	}

	var si domain.SearchIntent
	if err := c.post(ctx, "/api/v1/recommendations/analyze-intent", body, &si); err != nil {
		return nil, err
	}
	return &si, nil
}
