// Package main implements a mock partner listing feed for local development.
// It serves canned listing pages from a JSON fixture so the ingestion engine
// can be run against the http aggregator source without partner credentials.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

type feedResponse struct {
	Listings []json.RawMessage `json:"listings"`
	Total    int               `json:"total"`
	Offset   int               `json:"offset"`
	Limit    int               `json:"limit"`
	Next     string            `json:"next"`
}

type listingLocation struct {
	Location string `json:"location"`
}

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	fixtureFile := flag.String("fixture", "tools/mock-server/testdata/feed_response.json", "path to feed response fixture")
	apiKey := flag.String("api-key", "", "when set, require this Bearer token on feed requests")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	fixture, err := loadFixture(*fixtureFile)
	if err != nil {
		logger.Error("failed to load fixture", "path", *fixtureFile, "error", err)
		os.Exit(1)
	}
	logger.Info("loaded fixture", "listings", len(fixture.Listings))

	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/listings", feedHandler(logger, fixture, *apiKey))

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock feed server", "addr", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, mux),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func loadFixture(path string) (*feedResponse, error) {
	data, err := os.ReadFile(path) //nolint:gosec // fixture path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	var resp feedResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	return &resp, nil
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery)
		next.ServeHTTP(w, r)
	})
}

func feedHandler(logger *slog.Logger, fixture *feedResponse, apiKey string) http.HandlerFunc {
	// Pre-parse locations for filtering.
	type indexedListing struct {
		raw      json.RawMessage
		location string
	}
	listings := make([]indexedListing, 0, len(fixture.Listings))
	for _, raw := range fixture.Listings {
		var l listingLocation
		//nolint:errcheck,gosec // fixture data is trusted; location extraction is best-effort
		json.Unmarshal(raw, &l)
		listings = append(listings, indexedListing{raw: raw, location: strings.ToLower(l.Location)})
	}

	return func(w http.ResponseWriter, r *http.Request) {
		if apiKey != "" && r.Header.Get("Authorization") != "Bearer "+apiKey {
			logger.Warn("feed request with missing or wrong Bearer token")
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
			json.NewEncoder(w).Encode(map[string]string{"error": "invalid_token"})
			return
		}

		location := strings.ToLower(r.URL.Query().Get("location"))
		limitStr := r.URL.Query().Get("limit")
		offsetStr := r.URL.Query().Get("offset")

		limit := 50
		if limitStr != "" {
			if v, err := strconv.Atoi(limitStr); err == nil && v > 0 {
				limit = v
			}
		}
		offset := 0
		if offsetStr != "" {
			if v, err := strconv.Atoi(offsetStr); err == nil && v >= 0 {
				offset = v
			}
		}

		// Filter by exact location match.
		var matched []json.RawMessage
		for _, l := range listings {
			if location == "" || l.location == location {
				matched = append(matched, l.raw)
			}
		}

		total := len(matched)

		// Apply pagination.
		if offset >= len(matched) {
			matched = nil
		} else {
			end := min(offset+limit, len(matched))
			matched = matched[offset:end]
		}

		next := ""
		if offset+limit < total {
			next = fmt.Sprintf("/v1/listings?location=%s&offset=%d&limit=%d",
				r.URL.Query().Get("location"), offset+limit, limit)
		}

		resp := feedResponse{
			Listings: matched,
			Total:    total,
			Offset:   offset,
			Limit:    limit,
			Next:     next,
		}

		// Return empty array instead of null when no results.
		if resp.Listings == nil {
			resp.Listings = []json.RawMessage{}
		}

		w.Header().Set("Content-Type", "application/json")
		//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
		json.NewEncoder(w).Encode(resp)
		logger.Info("feed", "location", location, "matched", total, "returned", len(matched), "offset", offset, "limit", limit)
	}
}
