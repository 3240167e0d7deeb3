package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/kejahub/keja-match/pkg/types"
)

func ptr[T any](v T) *T { return &v }

func TestListingQuery_ToSQL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		query         ListingQuery
		wantCountSQL  string
		wantArgs      []any
		wantDataHas   []string // substrings that must appear in dataSQL
		wantDataNotIn []string // substrings that must NOT appear
	}{
		{
			name:  "empty query uses defaults",
			query: ListingQuery{},
			wantDataHas: []string{
				"FROM listings",
				"ORDER BY created_at DESC",
				"LIMIT 50",
				"OFFSET 0",
			},
			wantDataNotIn: []string{"WHERE"},
			wantCountSQL:  "SELECT COUNT(*) FROM listings",
			wantArgs:      nil,
		},
		{
			name: "single location filter is lower-cased",
			query: ListingQuery{
				Locations: []string{"Nairobi"},
			},
			wantDataHas:  []string{"WHERE LOWER(location) IN ($1)"},
			wantCountSQL: "SELECT COUNT(*) FROM listings WHERE LOWER(location) IN ($1)",
			wantArgs:     []any{"nairobi"},
		},
		{
			name: "multiple locations",
			query: ListingQuery{
				Locations: []string{"nairobi", "mombasa", "kisumu"},
			},
			wantDataHas:  []string{"WHERE LOWER(location) IN ($1, $2, $3)"},
			wantCountSQL: "SELECT COUNT(*) FROM listings WHERE LOWER(location) IN ($1, $2, $3)",
			wantArgs:     []any{"nairobi", "mombasa", "kisumu"},
		},
		{
			name: "property type filter",
			query: ListingQuery{
				PropertyTypes: []string{"apartment", "house"},
			},
			wantDataHas:  []string{"WHERE property_type IN ($1, $2)"},
			wantCountSQL: "SELECT COUNT(*) FROM listings WHERE property_type IN ($1, $2)",
			wantArgs:     []any{"apartment", "house"},
		},
		{
			name: "price window",
			query: ListingQuery{
				PriceMin: ptr(4_000_000.0),
				PriceMax: ptr(9_000_000.0),
			},
			wantDataHas:  []string{"price >= $1", "price <= $2", " AND "},
			wantCountSQL: "SELECT COUNT(*) FROM listings WHERE price >= $1 AND price <= $2",
			wantArgs:     []any{4_000_000.0, 9_000_000.0},
		},
		{
			name: "minimum bedrooms filter",
			query: ListingQuery{
				MinBedrooms: ptr(3),
			},
			wantDataHas:  []string{"WHERE bedrooms >= $1"},
			wantCountSQL: "SELECT COUNT(*) FROM listings WHERE bedrooms >= $1",
			wantArgs:     []any{3},
		},
		{
			name: "all filters with correct parameter numbering",
			query: ListingQuery{
				Locations:     []string{"nakuru", "eldoret"},
				PropertyTypes: []string{"townhouse"},
				PriceMin:      ptr(2_000_000.0),
				PriceMax:      ptr(6_000_000.0),
				MinBedrooms:   ptr(2),
			},
			wantDataHas: []string{
				"LOWER(location) IN ($1, $2)",
				"property_type IN ($3)",
				"price >= $4",
				"price <= $5",
				"bedrooms >= $6",
			},
			wantArgs: []any{"nakuru", "eldoret", "townhouse", 2_000_000.0, 6_000_000.0, 2},
		},
		{
			name: "order by price",
			query: ListingQuery{
				OrderBy: "price",
			},
			wantDataHas: []string{"ORDER BY price ASC"},
		},
		{
			name: "order by newest",
			query: ListingQuery{
				OrderBy: "newest",
			},
			wantDataHas: []string{"ORDER BY created_at DESC"},
		},
		{
			name: "invalid order by falls back to default",
			query: ListingQuery{
				OrderBy: "DROP TABLE listings; --",
			},
			wantDataHas:   []string{"ORDER BY created_at DESC"},
			wantDataNotIn: []string{"DROP TABLE"},
		},
		{
			name: "custom limit and offset",
			query: ListingQuery{
				Limit:  25,
				Offset: 100,
			},
			wantDataHas: []string{"LIMIT 25", "OFFSET 100"},
		},
		{
			name: "zero limit defaults to 50",
			query: ListingQuery{
				Limit: 0,
			},
			wantDataHas: []string{"LIMIT 50"},
		},
		{
			name: "limit exceeding max is capped",
			query: ListingQuery{
				Limit: 1000,
			},
			wantDataHas: []string{"LIMIT 500"},
		},
		{
			name: "negative offset defaults to 0",
			query: ListingQuery{
				Offset: -5,
			},
			wantDataHas: []string{"OFFSET 0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			q := tt.query
			dataSQL, countSQL, args := q.ToSQL()

			for _, s := range tt.wantDataHas {
				assert.Contains(t, dataSQL, s, "dataSQL should contain %q", s)
			}

			for _, s := range tt.wantDataNotIn {
				assert.NotContains(t, dataSQL, s, "dataSQL should not contain %q", s)
			}

			if tt.wantCountSQL != "" {
				assert.Equal(t, tt.wantCountSQL, countSQL)
			}

			if tt.wantArgs != nil {
				require.Len(t, args, len(tt.wantArgs))
				assert.Equal(t, tt.wantArgs, args)
			} else {
				assert.Empty(t, args)
			}
		})
	}
}

func TestApplicationQuery_ToSQL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		query        ApplicationQuery
		wantCountSQL string
		wantArgs     []any
		wantDataHas  []string
	}{
		{
			name:         "empty query uses defaults",
			query:        ApplicationQuery{},
			wantDataHas:  []string{"FROM applications", "ORDER BY created_at DESC", "LIMIT 50"},
			wantCountSQL: "SELECT COUNT(*) FROM applications",
			wantArgs:     nil,
		},
		{
			name: "status filter",
			query: ApplicationQuery{
				Status: ptr("received"),
			},
			wantDataHas:  []string{"WHERE status = $1"},
			wantCountSQL: "SELECT COUNT(*) FROM applications WHERE status = $1",
			wantArgs:     []any{"received"},
		},
		{
			name: "status and user filters",
			query: ApplicationQuery{
				Status: ptr("reviewing"),
				UserID: ptr("user-1"),
			},
			wantDataHas:  []string{"status = $1", "user_id = $2", " AND "},
			wantCountSQL: "SELECT COUNT(*) FROM applications WHERE status = $1 AND user_id = $2",
			wantArgs:     []any{"reviewing", "user-1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			q := tt.query
			dataSQL, countSQL, args := q.toSQL()

			for _, s := range tt.wantDataHas {
				assert.Contains(t, dataSQL, s, "dataSQL should contain %q", s)
			}

			if tt.wantCountSQL != "" {
				assert.Equal(t, tt.wantCountSQL, countSQL)
			}

			if tt.wantArgs != nil {
				require.Len(t, args, len(tt.wantArgs))
				assert.Equal(t, tt.wantArgs, args)
			} else {
				assert.Empty(t, args)
			}
		})
	}
}

func TestFromPreferences(t *testing.T) {
	t.Parallel()

	t.Run("maps preference fields onto the query", func(t *testing.T) {
		t.Parallel()

		prefs := &domain.UserPreferences{
			UserID:        "user-1",
			Locations:     []string{"nairobi", "ruiru"},
			PropertyTypes: []domain.PropertyType{domain.PropertyApartment},
			BudgetMin:     ptr(3_000_000.0),
			BudgetMax:     ptr(8_000_000.0),
			Bedrooms:      ptr(3),
		}

		q := FromPreferences(prefs, 100)

		assert.Equal(t, []string{"nairobi", "ruiru"}, q.Locations)
		assert.Equal(t, []string{"apartment"}, q.PropertyTypes)
		assert.Equal(t, 3_000_000.0, *q.PriceMin)
		assert.Equal(t, 8_000_000.0, *q.PriceMax)
		assert.Equal(t, 100, q.Limit)

		require.NotNil(t, q.MinBedrooms)
		assert.Equal(t, 2, *q.MinBedrooms, "bedroom floor relaxed by one")
	})

	t.Run("one-bedroom preference is not relaxed to zero", func(t *testing.T) {
		t.Parallel()

		prefs := &domain.UserPreferences{UserID: "user-1", Bedrooms: ptr(1)}
		q := FromPreferences(prefs, 50)
		assert.Nil(t, q.MinBedrooms)
	})

	t.Run("empty preferences produce an unfiltered query", func(t *testing.T) {
		t.Parallel()

		q := FromPreferences(&domain.UserPreferences{UserID: "user-1"}, 50)
		assert.Empty(t, q.Locations)
		assert.Empty(t, q.PropertyTypes)
		assert.Nil(t, q.PriceMin)
		assert.Nil(t, q.PriceMax)
		assert.Nil(t, q.MinBedrooms)
	})
}
