package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/kejahub/keja-match/internal/metrics"
	"github.com/kejahub/keja-match/internal/store"
	"github.com/kejahub/keja-match/pkg/intent"
	"github.com/kejahub/keja-match/pkg/market"
	domain "github.com/kejahub/keja-match/pkg/types"
)

// IntentHandler analyzes free-text search queries.
type IntentHandler struct {
	markets *market.Holder
	store   store.Store
	log     *slog.Logger
}

// NewIntentHandler creates a new IntentHandler. The market holder supplies
// the known-locations list so the analyzer tracks table refreshes.
func NewIntentHandler(markets *market.Holder, s store.Store, log *slog.Logger) *IntentHandler {
	return &IntentHandler{markets: markets, store: s, log: log}
}

// AnalyzeIntentInput is the request body for intent analysis.
type AnalyzeIntentInput struct {
	Body struct {
		Query  string `json:"query"             doc:"Free-text search query" minLength:"1"`
		UserID string `json:"user_id,omitempty" doc:"Optional user whose search history records the query"`
	}
}

// AnalyzeIntentOutput is the response for intent analysis.
type AnalyzeIntentOutput struct {
	Body domain.SearchIntent
}

// AnalyzeIntent classifies the query, extracts structured filters, and
// returns the interpretation. Analysis is pure and never fails; recording
// the query against a user's search history is best effort.
func (h *IntentHandler) AnalyzeIntent(
	ctx context.Context,
	input *AnalyzeIntentInput,
) (*AnalyzeIntentOutput, error) {
	analyzer := intent.New(h.markets.Get().Locations())
	si := analyzer.Analyze(input.Body.Query)

	metrics.IntentQueriesTotal.WithLabelValues(string(si.Intent)).Inc()

	if input.Body.UserID != "" {
		if err := h.store.AppendSearchQuery(ctx, input.Body.UserID, input.Body.Query); err != nil {
			h.log.Warn("recording search query failed",
				"user_id", input.Body.UserID,
				"error", err,
			)
		}
	}

	return &AnalyzeIntentOutput{Body: si}, nil
}

// RegisterIntentRoutes registers intent analysis endpoints with the Huma API.
func RegisterIntentRoutes(api huma.API, h *IntentHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "analyze-intent",
		Method:      http.MethodPost,
		Path:        "/api/v1/recommendations/analyze-intent",
		Summary:     "Analyze search intent",
		Description: "Classifies a free-text property search query and extracts structured filters.",
		Tags:        []string{"recommendations"},
	}, h.AnalyzeIntent)
}
