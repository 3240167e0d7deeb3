package aggregator_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kejahub/keja-match/internal/aggregator"
)

func TestHTTPProvider_FetchListings(t *testing.T) {
	t.Parallel()

	t.Run("successful fetch", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
			assert.Equal(t, "nairobi", r.URL.Query().Get("location"))
			assert.Equal(t, "25", r.URL.Query().Get("limit"))

			resp := map[string]any{
				"listings": []map[string]any{
					{
						"ref":           "feed-1",
						"title":         "2 Bedroom Apartment in Westlands",
						"price":         6800000,
						"currency":      "KES",
						"location":      "nairobi",
						"property_type": "apartment",
						"bedrooms":      2,
						"bathrooms":     2,
						"area_sqm":      85,
						"listed_at":     "2026-08-01T08:15:00Z",
					},
				},
				"total":  1,
				"offset": 0,
				"limit":  25,
				"next":   "",
			}
			require.NoError(t, json.NewEncoder(w).Encode(resp))
		}))
		defer srv.Close()

		p := aggregator.NewHTTPProvider(srv.URL, "test-key")
		resp, err := p.FetchListings(context.Background(), aggregator.FetchRequest{
			Location: "nairobi",
			Limit:    25,
		})
		require.NoError(t, err)
		require.Len(t, resp.Listings, 1)
		assert.Equal(t, "feed-1", resp.Listings[0].Ref)
		assert.Equal(t, 1, resp.Total)
		assert.False(t, resp.HasMore)
	})

	t.Run("has more pages", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			resp := map[string]any{
				"listings": []map[string]any{},
				"total":    120,
				"offset":   0,
				"limit":    50,
				"next":     "/v1/listings?offset=50",
			}
			require.NoError(t, json.NewEncoder(w).Encode(resp))
		}))
		defer srv.Close()

		p := aggregator.NewHTTPProvider(srv.URL, "")
		resp, err := p.FetchListings(context.Background(), aggregator.FetchRequest{})
		require.NoError(t, err)
		assert.True(t, resp.HasMore)
	})

	t.Run("non-200 status", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "upstream down", http.StatusBadGateway)
		}))
		defer srv.Close()

		p := aggregator.NewHTTPProvider(srv.URL, "")
		_, err := p.FetchListings(context.Background(), aggregator.FetchRequest{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 502")
	})

	t.Run("malformed JSON", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("not json"))
		}))
		defer srv.Close()

		p := aggregator.NewHTTPProvider(srv.URL, "")
		_, err := p.FetchListings(context.Background(), aggregator.FetchRequest{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing feed response")
	})

	t.Run("daily limit surfaces rate limit error", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewEncoder(w).Encode(map[string]any{"listings": []any{}}))
		}))
		defer srv.Close()

		rl := aggregator.NewRateLimiter(100, 10, 1)
		p := aggregator.NewHTTPProvider(srv.URL, "", aggregator.WithRateLimiter(rl))

		_, err := p.FetchListings(context.Background(), aggregator.FetchRequest{})
		require.NoError(t, err)

		_, err = p.FetchListings(context.Background(), aggregator.FetchRequest{})
		require.Error(t, err)
		assert.ErrorIs(t, err, aggregator.ErrDailyLimitReached)
	})
}
