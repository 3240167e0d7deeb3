package aggregator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/kejahub/keja-match/pkg/types"
)

func TestToListings(t *testing.T) {
	t.Parallel()

	listedAt := timeRFC{Time: time.Date(2026, 8, 1, 8, 15, 0, 0, time.UTC)}

	items := []SourceListing{
		{
			Ref:          "feed-1",
			Title:        "  2 Bedroom Apartment in Westlands  ",
			Price:        6_800_000,
			Currency:     "KES",
			Location:     " Nairobi ",
			PropertyType: "apartment",
			Bedrooms:     2,
			Bathrooms:    2,
			AreaSqm:      85,
			ListedAt:     &listedAt,
		},
		{
			Ref:          "feed-2",
			Title:        "Beach Villa",
			Price:        12_000_000,
			Location:     "MOMBASA",
			PropertyType: "villa",
		},
	}

	listings := ToListings(items)
	require.Len(t, listings, 2)

	first := listings[0]
	assert.Equal(t, "feed-1", first.SourceRef)
	assert.Equal(t, "2 Bedroom Apartment in Westlands", first.Title, "title trimmed")
	assert.Equal(t, "nairobi", first.Location, "location lower-cased")
	assert.Equal(t, domain.PropertyApartment, first.PropertyType)
	require.NotNil(t, first.ListedAt)
	assert.Equal(t, listedAt.Time, *first.ListedAt)

	second := listings[1]
	assert.Equal(t, "KES", second.Currency, "currency defaults to KES")
	assert.Equal(t, "mombasa", second.Location)
	assert.Equal(t, domain.PropertyHouse, second.PropertyType, "villa maps to house")
	assert.Nil(t, second.ListedAt)
}

func TestParsePropertyType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want domain.PropertyType
	}{
		{"apartment", domain.PropertyApartment},
		{"flat", domain.PropertyApartment},
		{"house", domain.PropertyHouse},
		{"Bungalow", domain.PropertyHouse},
		{"villa", domain.PropertyHouse},
		{"townhouse", domain.PropertyTownhouse},
		{"maisonette", domain.PropertyTownhouse},
		{"commercial", domain.PropertyCommercial},
		{"office", domain.PropertyCommercial},
		{"retail", domain.PropertyCommercial},
		{"", domain.PropertyApartment},
		{"castle", domain.PropertyApartment},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, parsePropertyType(tt.in))
		})
	}
}
