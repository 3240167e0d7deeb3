package handlers_test

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kejahub/keja-match/internal/api/handlers"
	storeMocks "github.com/kejahub/keja-match/internal/store/mocks"
	"github.com/kejahub/keja-match/pkg/market"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestIntentHandler_Analyze(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	h := handlers.NewIntentHandler(
		market.NewHolder(market.Default()), ms, quietLogger(),
	)

	_, api := humatest.New(t)
	handlers.RegisterIntentRoutes(api, h)

	resp := api.Post("/api/v1/recommendations/analyze-intent", map[string]any{
		"query": "2 bedroom apartment in nairobi under 8 million with parking asap",
	})
	require.Equal(t, http.StatusOK, resp.Code)

	body := resp.Body.String()
	assert.Contains(t, body, `"intent":"specific_search"`)
	assert.Contains(t, body, `"location":"nairobi"`)
	assert.Contains(t, body, `"property_type":"apartment"`)
	assert.Contains(t, body, `"bedrooms":2`)
	assert.Contains(t, body, "parking")
	assert.Contains(t, body, `"urgency":"immediate"`)
	assert.Contains(t, body, `"confidence":0.8`)
}

func TestIntentHandler_RecordsSearchHistory(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().
		AppendSearchQuery(mock.Anything, "user-1", "houses in kisumu").
		Return(nil).
		Once()

	h := handlers.NewIntentHandler(
		market.NewHolder(market.Default()), ms, quietLogger(),
	)

	_, api := humatest.New(t)
	handlers.RegisterIntentRoutes(api, h)

	resp := api.Post("/api/v1/recommendations/analyze-intent", map[string]any{
		"query":   "houses in kisumu",
		"user_id": "user-1",
	})
	require.Equal(t, http.StatusOK, resp.Code)
}

func TestIntentHandler_HistoryFailureStillAnalyzes(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().
		AppendSearchQuery(mock.Anything, "user-1", mock.Anything).
		Return(assert.AnError).
		Once()

	h := handlers.NewIntentHandler(
		market.NewHolder(market.Default()), ms, quietLogger(),
	)

	_, api := humatest.New(t)
	handlers.RegisterIntentRoutes(api, h)

	resp := api.Post("/api/v1/recommendations/analyze-intent", map[string]any{
		"query":   "compare mombasa vs nairobi for investment",
		"user_id": "user-1",
	})
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"intent":"comparison"`)
}

func TestIntentHandler_EmptyQueryRejected(t *testing.T) {
	t.Parallel()

	h := handlers.NewIntentHandler(
		market.NewHolder(market.Default()), storeMocks.NewMockStore(t), quietLogger(),
	)

	_, api := humatest.New(t)
	handlers.RegisterIntentRoutes(api, h)

	resp := api.Post("/api/v1/recommendations/analyze-intent", map[string]any{
		"query": "",
	})
	require.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}
