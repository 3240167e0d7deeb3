package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/kejahub/keja-match/pkg/types"
)

func TestClient_ListListings(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/listings", r.URL.Path)
		assert.Equal(t, "nairobi", r.URL.Query().Get("location"))
		assert.Equal(t, "apartment", r.URL.Query().Get("property_type"))
		assert.Equal(t, "5000000", r.URL.Query().Get("price_min"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))

		_ = json.NewEncoder(w).Encode(ListingsResponse{
			Listings: []domain.Listing{{ID: "l1", Title: "Kilimani Apartment"}},
			Total:    1,
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	resp, err := c.ListListings(context.Background(), &ListListingsParams{
		Location:     "nairobi",
		PropertyType: "apartment",
		PriceMin:     5_000_000,
		Limit:        10,
	})
	require.NoError(t, err)
	require.Len(t, resp.Listings, 1)
	assert.Equal(t, "Kilimani Apartment", resp.Listings[0].Title)
	assert.Equal(t, 1, resp.Total)
}

func TestClient_GenerateRecommendations(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/recommendations/generate", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Contains(t, body, "preferences")
		assert.EqualValues(t, 250_000, body["monthly_income"])

		_ = json.NewEncoder(w).Encode(RecommendationsResponse{
			Recommendations: []domain.Recommendation{{ListingID: "l1", MatchScore: 87}},
			CandidateCount:  12,
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	resp, err := c.GenerateRecommendations(context.Background(),
		&domain.UserPreferences{UserID: "user-1"}, 250_000, 5)
	require.NoError(t, err)
	require.Len(t, resp.Recommendations, 1)
	assert.InDelta(t, 87, resp.Recommendations[0].MatchScore, 0.001)
	assert.Equal(t, 12, resp.CandidateCount)
}

func TestClient_UpdateApplicationStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/v1/applications/app-1/status", r.URL.Path)

		_ = json.NewEncoder(w).Encode(domain.Application{
			ID:     "app-1",
			Status: domain.ApplicationApproved,
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	app, err := c.UpdateApplicationStatus(context.Background(),
		"app-1", domain.ApplicationApproved, "income verified")
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationApproved, app.Status)
}

func TestClient_APIError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"listing not found"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.GetListing(context.Background(), "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 404")
	assert.Contains(t, err.Error(), "listing not found")
}

func TestClient_ServerNotRunning(t *testing.T) {
	t.Parallel()

	// Port 1 is reserved and nothing listens on it.
	c := New("http://127.0.0.1:1")
	_, err := c.ListJobs(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API server not running")
}

func TestClient_TrailingSlashTrimmed(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/jobs", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]domain.JobRun{})
	}))
	defer srv.Close()

	c := New(srv.URL + "/")
	_, err := c.ListJobs(context.Background())
	require.NoError(t, err)
}
