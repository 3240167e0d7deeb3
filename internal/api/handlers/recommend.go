package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/kejahub/keja-match/internal/metrics"
	"github.com/kejahub/keja-match/internal/store"
	"github.com/kejahub/keja-match/pkg/market"
	"github.com/kejahub/keja-match/pkg/recommend"
	domain "github.com/kejahub/keja-match/pkg/types"
)

const (
	defaultRecommendLimit = 10
	defaultCandidatePool  = 200
)

// RecommendHandler generates ranked listing recommendations.
type RecommendHandler struct {
	store         store.Store
	markets       *market.Holder
	weights       recommend.Weights
	defaultLimit  int
	candidatePool int
}

// NewRecommendHandler creates a new RecommendHandler. Zero weights and
// non-positive limits fall back to the built-in defaults.
func NewRecommendHandler(
	s store.Store,
	markets *market.Holder,
	weights recommend.Weights,
	defaultLimit int,
	candidatePool int,
) *RecommendHandler {
	if weights == (recommend.Weights{}) {
		weights = recommend.DefaultWeights()
	}
	if defaultLimit <= 0 {
		defaultLimit = defaultRecommendLimit
	}
	if candidatePool <= 0 {
		candidatePool = defaultCandidatePool
	}
	return &RecommendHandler{
		store:         s,
		markets:       markets,
		weights:       weights,
		defaultLimit:  defaultLimit,
		candidatePool: candidatePool,
	}
}

// GenerateRecommendationsInput is the request body for recommendation
// generation. Preferences travel in the request; nothing is read from or
// written to the user's stored profile.
type GenerateRecommendationsInput struct {
	Body struct {
		Preferences   domain.UserPreferences `json:"preferences"              doc:"Search preferences and engagement history"`
		MonthlyIncome float64                `json:"monthly_income,omitempty" doc:"Monthly income in KES for affordability analysis" minimum:"0"`
		Limit         int                    `json:"limit,omitempty"          doc:"Maximum recommendations to return"                minimum:"1"  maximum:"100"`
	}
}

// GenerateRecommendationsOutput is the ranked recommendation response.
type GenerateRecommendationsOutput struct {
	Body struct {
		Recommendations []domain.Recommendation `json:"recommendations"`
		CandidateCount  int                     `json:"candidate_count"`
	}
}

// GenerateRecommendations resolves candidate listings from the submitted
// preferences, scores each candidate, and returns the top matches ranked by
// match score.
func (h *RecommendHandler) GenerateRecommendations(
	ctx context.Context,
	input *GenerateRecommendationsInput,
) (*GenerateRecommendationsOutput, error) {
	start := time.Now()
	defer func() {
		metrics.RecommendationDuration.Observe(time.Since(start).Seconds())
	}()

	prefs := input.Body.Preferences

	q := store.FromPreferences(&prefs, h.candidatePool)
	listings, _, err := h.store.ListListings(ctx, q)
	if err != nil {
		return nil, huma.Error500InternalServerError("resolving candidates failed: " + err.Error())
	}

	eng := recommend.New(h.markets.Get(), recommend.WithWeights(h.weights))
	recs := eng.Recommend(listings, &prefs, input.Body.MonthlyIncome)

	for i := range recs {
		metrics.MatchScoreDistribution.Observe(recs[i].MatchScore)
	}
	metrics.RecommendationsGeneratedTotal.Add(float64(len(recs)))

	limit := input.Body.Limit
	if limit <= 0 {
		limit = h.defaultLimit
	}
	if len(recs) > limit {
		recs = recs[:limit]
	}
	if recs == nil {
		recs = []domain.Recommendation{}
	}

	resp := &GenerateRecommendationsOutput{}
	resp.Body.Recommendations = recs
	resp.Body.CandidateCount = len(listings)

	return resp, nil
}

// RegisterRecommendRoutes registers recommendation endpoints with the Huma API.
func RegisterRecommendRoutes(api huma.API, h *RecommendHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "generate-recommendations",
		Method:      http.MethodPost,
		Path:        "/api/v1/recommendations/generate",
		Summary:     "Generate recommendations",
		Description: "Scores candidate listings against the submitted preferences and returns the top matches.",
		Tags:        []string{"recommendations"},
	}, h.GenerateRecommendations)
}
