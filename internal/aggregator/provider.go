// Package aggregator provides listing-feed providers abstracted behind an
// interface for testability. Feeds come either from a partner HTTP API or
// from bundled fixture data for development.
package aggregator

import (
	"context"
	"strings"
	"time"

	domain "github.com/kejahub/keja-match/pkg/types"
)

// FetchRequest defines the parameters for a listing feed page.
type FetchRequest struct {
	Location string
	Limit    int
	Offset   int
}

// FetchResponse holds one page of feed results.
type FetchResponse struct {
	Listings []SourceListing
	Total    int
	Offset   int
	Limit    int
	HasMore  bool
}

// Provider defines the interface for fetching listings from a feed.
type Provider interface {
	FetchListings(ctx context.Context, req FetchRequest) (*FetchResponse, error)
}

// SourceListing is the wire representation of a listing in a feed.
type SourceListing struct {
	Ref          string   `json:"ref"           yaml:"ref"`
	Title        string   `json:"title"         yaml:"title"`
	Price        float64  `json:"price"         yaml:"price"`
	Currency     string   `json:"currency"      yaml:"currency"`
	Location     string   `json:"location"      yaml:"location"`
	PropertyType string   `json:"property_type" yaml:"property_type"`
	Bedrooms     int      `json:"bedrooms"      yaml:"bedrooms"`
	Bathrooms    int      `json:"bathrooms"     yaml:"bathrooms"`
	AreaSqm      float64  `json:"area_sqm"      yaml:"area_sqm"`
	ListedAt     *timeRFC `json:"listed_at"     yaml:"listed_at"`
}

// timeRFC parses RFC 3339 timestamps from both JSON and YAML feeds.
type timeRFC struct {
	time.Time
}

func (t *timeRFC) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}
	parsed, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

func (t *timeRFC) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	if s == "" {
		return nil
	}
	parsed, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

// ToListings converts feed entries into domain listings. Locations are
// normalized to lower case and the currency defaults to KES.
func ToListings(items []SourceListing) []domain.Listing {
	listings := make([]domain.Listing, 0, len(items))
	for i := range items {
		listings = append(listings, toListing(&items[i]))
	}
	return listings
}

func toListing(item *SourceListing) domain.Listing {
	l := domain.Listing{
		SourceRef:    item.Ref,
		Title:        strings.TrimSpace(item.Title),
		Price:        item.Price,
		Currency:     item.Currency,
		Location:     strings.ToLower(strings.TrimSpace(item.Location)),
		PropertyType: parsePropertyType(item.PropertyType),
		Bedrooms:     item.Bedrooms,
		Bathrooms:    item.Bathrooms,
		AreaSqm:      item.AreaSqm,
	}

	if l.Currency == "" {
		l.Currency = "KES"
	}

	if item.ListedAt != nil && !item.ListedAt.IsZero() {
		ts := item.ListedAt.Time
		l.ListedAt = &ts
	}

	return l
}

func parsePropertyType(s string) domain.PropertyType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "apartment", "flat":
		return domain.PropertyApartment
	case "house", "bungalow", "villa":
		return domain.PropertyHouse
	case "townhouse", "maisonette":
		return domain.PropertyTownhouse
	case "commercial", "office", "retail":
		return domain.PropertyCommercial
	default:
		return domain.PropertyApartment
	}
}
