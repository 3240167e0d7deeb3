package aggregator_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kejahub/keja-match/internal/aggregator"
)

func TestFixtureProvider_BuiltinFeed(t *testing.T) {
	t.Parallel()

	p, err := aggregator.NewFixtureProvider()
	require.NoError(t, err)
	assert.Greater(t, p.Len(), 0, "builtin feed ships with listings")
}

func TestFixtureProvider_FetchListings(t *testing.T) {
	t.Parallel()

	p, err := aggregator.NewFixtureProvider()
	require.NoError(t, err)

	t.Run("full feed", func(t *testing.T) {
		t.Parallel()

		resp, err := p.FetchListings(context.Background(), aggregator.FetchRequest{Limit: 100})
		require.NoError(t, err)
		assert.Equal(t, p.Len(), resp.Total)
		assert.Len(t, resp.Listings, p.Len())
		assert.False(t, resp.HasMore)
	})

	t.Run("location filter is case-insensitive", func(t *testing.T) {
		t.Parallel()

		resp, err := p.FetchListings(context.Background(), aggregator.FetchRequest{
			Location: "Nairobi",
			Limit:    100,
		})
		require.NoError(t, err)
		require.NotEmpty(t, resp.Listings)
		for _, l := range resp.Listings {
			assert.Equal(t, "nairobi", l.Location)
		}
	})

	t.Run("pagination", func(t *testing.T) {
		t.Parallel()

		page1, err := p.FetchListings(context.Background(), aggregator.FetchRequest{Limit: 3})
		require.NoError(t, err)
		assert.Len(t, page1.Listings, 3)
		assert.True(t, page1.HasMore)

		page2, err := p.FetchListings(context.Background(), aggregator.FetchRequest{Limit: 3, Offset: 3})
		require.NoError(t, err)
		assert.Equal(t, 3, page2.Offset)
		assert.NotEqual(t, page1.Listings[0].Ref, page2.Listings[0].Ref)
	})

	t.Run("offset beyond feed returns empty page", func(t *testing.T) {
		t.Parallel()

		resp, err := p.FetchListings(context.Background(), aggregator.FetchRequest{
			Limit:  10,
			Offset: 10_000,
		})
		require.NoError(t, err)
		assert.Empty(t, resp.Listings)
		assert.False(t, resp.HasMore)
	})
}

func TestNewFixtureProviderFromFile(t *testing.T) {
	t.Parallel()

	t.Run("valid file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "feed.yaml")
		yaml := `
listings:
  - ref: test-1
    title: Test Apartment
    price: 5000000
    location: nairobi
    property_type: apartment
    bedrooms: 2
`
		require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

		p, err := aggregator.NewFixtureProviderFromFile(path)
		require.NoError(t, err)
		assert.Equal(t, 1, p.Len())
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := aggregator.NewFixtureProviderFromFile("/nonexistent/feed.yaml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reading fixtures file")
	})

	t.Run("invalid YAML", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("{{{not yaml"), 0o644))

		_, err := aggregator.NewFixtureProviderFromFile(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing fixtures YAML")
	})
}
