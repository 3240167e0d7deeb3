package aggregator

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed fixtures/listings.yaml
var builtinFixtures []byte

// FixtureProvider implements Provider over a static YAML feed. It backs the
// development and demo configurations where no partner API is available.
type FixtureProvider struct {
	listings []SourceListing
}

type fixtureFile struct {
	Listings []SourceListing `yaml:"listings"`
}

// NewFixtureProvider creates a provider over the bundled fixture feed.
func NewFixtureProvider() (*FixtureProvider, error) {
	return parseFixtures(builtinFixtures)
}

// NewFixtureProviderFromFile creates a provider over a YAML feed on disk.
func NewFixtureProviderFromFile(path string) (*FixtureProvider, error) {
	data, err := os.ReadFile(path) //nolint:gosec // fixture path from trusted config
	if err != nil {
		return nil, fmt.Errorf("reading fixtures file: %w", err)
	}
	return parseFixtures(data)
}

func parseFixtures(data []byte) (*FixtureProvider, error) {
	var f fixtureFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing fixtures YAML: %w", err)
	}
	return &FixtureProvider{listings: f.Listings}, nil
}

// Len returns the number of listings in the feed.
func (p *FixtureProvider) Len() int {
	return len(p.listings)
}

// FetchListings returns one page of the fixture feed, filtered by location
// when the request names one.
func (p *FixtureProvider) FetchListings(_ context.Context, req FetchRequest) (*FetchResponse, error) {
	matched := p.listings
	if req.Location != "" {
		matched = nil
		for _, l := range p.listings {
			if strings.EqualFold(l.Location, req.Location) {
				matched = append(matched, l)
			}
		}
	}

	limit := req.Limit
	if limit <= 0 {
		limit = 50
	}

	offset := req.Offset
	if offset < 0 {
		offset = 0
	}
	if offset > len(matched) {
		offset = len(matched)
	}

	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}

	return &FetchResponse{
		Listings: matched[offset:end],
		Total:    len(matched),
		Offset:   offset,
		Limit:    limit,
		HasMore:  end < len(matched),
	}, nil
}
