package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	domain "github.com/kejahub/keja-match/pkg/types"
)

// ListingsResponse wraps a paginated listings response.
type ListingsResponse struct {
	Listings []domain.Listing `json:"listings"`
	Total    int              `json:"total"`
}

// ListListingsParams defines query parameters for listing queries.
type ListListingsParams struct {
	Location     string
	PropertyType string
	PriceMin     float64
	PriceMax     float64
	MinBedrooms  int
	Limit        int
	Offset       int
	OrderBy      string
}

// ListListings returns listings matching the given parameters.
func (c *Client) ListListings(
	ctx context.Context,
	params *ListListingsParams,
) (*ListingsResponse, error) {
	q := url.Values{}
	if params.Location != "" {
		q.Set("location", params.Location)
	}
	if params.PropertyType != "" {
		q.Set("property_type", params.PropertyType)
	}
	if params.PriceMin > 0 {
		q.Set("price_min", strconv.FormatFloat(params.PriceMin, 'f', -1, 64))
	}
	if params.PriceMax > 0 {
		q.Set("price_max", strconv.FormatFloat(params.PriceMax, 'f', -1, 64))
	}
	if params.MinBedrooms > 0 {
		q.Set("min_bedrooms", strconv.Itoa(params.MinBedrooms))
	}
	if params.Limit > 0 {
		q.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Offset > 0 {
		q.Set("offset", strconv.Itoa(params.Offset))
	}
	if params.OrderBy != "" {
		q.Set("order_by", params.OrderBy)
	}

	path := "/api/v1/listings"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var resp ListingsResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetListing returns a single listing by ID.
func (c *Client) GetListing(ctx context.Context, id string) (*domain.Listing, error) {
	var l domain.Listing
	if err := c.get(ctx, fmt.Sprintf("/api/v1/listings/%s", id), &l); err != nil {
		return nil, err
	}
	return &l, nil
}

// CreateListing submits a listing directly through the API.
func (c *Client) CreateListing(ctx context.Context, l *domain.Listing) (*domain.Listing, error) {
	var created domain.Listing
	if err := c.post(ctx, "/api/v1/listings", l, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
