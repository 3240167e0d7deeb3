package aggregator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/kejahub/keja-match/internal/metrics"
)

// HTTPProvider implements Provider against a partner listing feed API.
type HTTPProvider struct {
	endpoint    string
	apiKey      string
	client      *http.Client
	rateLimiter *RateLimiter
}

// HTTPOption configures the HTTPProvider.
type HTTPOption func(*HTTPProvider)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) HTTPOption {
	return func(p *HTTPProvider) {
		p.client = hc
	}
}

// WithRateLimiter injects a rate limiter that controls per-second and daily
// feed call limits. When set, every FetchListings() call goes through Wait()
// first.
func WithRateLimiter(r *RateLimiter) HTTPOption {
	return func(p *HTTPProvider) {
		p.rateLimiter = r
	}
}

// NewHTTPProvider creates a feed client for the given endpoint.
func NewHTTPProvider(endpoint, apiKey string, opts ...HTTPOption) *HTTPProvider {
	p := &HTTPProvider{
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

type feedAPIResponse struct {
	Listings []SourceListing `json:"listings"`
	Total    int             `json:"total"`
	Offset   int             `json:"offset"`
	Limit    int             `json:"limit"`
	Next     string          `json:"next"`
}

// FetchListings implements Provider.FetchListings by querying the feed API.
func (p *HTTPProvider) FetchListings(ctx context.Context, req FetchRequest) (*FetchResponse, error) {
	if p.rateLimiter != nil {
		if err := p.rateLimiter.Wait(ctx); err != nil {
			if errors.Is(err, ErrDailyLimitReached) {
				metrics.AggregatorDailyLimitHits.Inc()
			}
			return nil, fmt.Errorf("rate limit: %w", err)
		}
		metrics.AggregatorCallsTotal.Inc()
		metrics.AggregatorDailyUsage.Set(float64(p.rateLimiter.DailyCount()))
	}

	u := p.buildFeedURL(req)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating HTTP request: %w", err)
	}

	if p.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("executing feed request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf(
			"feed API error (status %d): %s",
			resp.StatusCode,
			string(body),
		)
	}

	var apiResp feedAPIResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("parsing feed response: %w", err)
	}

	return &FetchResponse{
		Listings: apiResp.Listings,
		Total:    apiResp.Total,
		Offset:   apiResp.Offset,
		Limit:    apiResp.Limit,
		HasMore:  apiResp.Next != "",
	}, nil
}

func (p *HTTPProvider) buildFeedURL(req FetchRequest) string {
	params := url.Values{}

	if req.Location != "" {
		params.Set("location", req.Location)
	}

	limit := req.Limit
	if limit <= 0 {
		limit = 50
	}
	params.Set("limit", strconv.Itoa(limit))

	if req.Offset > 0 {
		params.Set("offset", strconv.Itoa(req.Offset))
	}

	return p.endpoint + "?" + params.Encode()
}
