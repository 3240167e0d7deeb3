package store

import (
	"fmt"
	"strings"

	domain "github.com/kejahub/keja-match/pkg/types"
)

const (
	defaultLimit = 50
	maxLimit     = 500

	orderByPrice  = "price"
	orderByNewest = "newest"
)

// validOrderBy maps allowed OrderBy values to their SQL column expressions.
var validOrderBy = map[string]string{
	orderByPrice:  "price ASC",
	orderByNewest: "created_at DESC",
}

const defaultOrderBy = "created_at DESC"

const baseListingsSelect = `SELECT id, COALESCE(source_ref, ''), title,
	price, currency, location, property_type, bedrooms, bathrooms, area_sqm,
	listed_at, created_at, updated_at
FROM listings`

const countListingsSelect = "SELECT COUNT(*) FROM listings"

// ToSQL builds the WHERE clause, ORDER BY, LIMIT, and OFFSET for a listing
// query. It returns two SQL strings (one for the data query, one for the
// count query) and the positional parameters.
func (q *ListingQuery) ToSQL() (dataSQL, countSQL string, args []any) {
	var conditions []string
	paramIdx := 1

	if len(q.Locations) > 0 {
		placeholders := make([]string, len(q.Locations))
		for i, loc := range q.Locations {
			placeholders[i] = fmt.Sprintf("$%d", paramIdx)
			args = append(args, strings.ToLower(loc))
			paramIdx++
		}
		conditions = append(conditions, fmt.Sprintf(
			"LOWER(location) IN (%s)", strings.Join(placeholders, ", "),
		))
	}

	if len(q.PropertyTypes) > 0 {
		placeholders := make([]string, len(q.PropertyTypes))
		for i, pt := range q.PropertyTypes {
			placeholders[i] = fmt.Sprintf("$%d", paramIdx)
			args = append(args, pt)
			paramIdx++
		}
		conditions = append(conditions, fmt.Sprintf(
			"property_type IN (%s)", strings.Join(placeholders, ", "),
		))
	}

	if q.PriceMin != nil {
		conditions = append(conditions, fmt.Sprintf("price >= $%d", paramIdx))
		args = append(args, *q.PriceMin)
		paramIdx++
	}

	if q.PriceMax != nil {
		conditions = append(conditions, fmt.Sprintf("price <= $%d", paramIdx))
		args = append(args, *q.PriceMax)
		paramIdx++
	}

	if q.MinBedrooms != nil {
		conditions = append(conditions, fmt.Sprintf("bedrooms >= $%d", paramIdx))
		args = append(args, *q.MinBedrooms)
		paramIdx++
	}

	var whereClause string
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	orderBy := defaultOrderBy
	if expr, ok := validOrderBy[q.OrderBy]; ok {
		orderBy = expr
	}

	limit := q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	q.Limit = limit

	offset := q.Offset
	if offset < 0 {
		offset = 0
	}

	dataSQL = fmt.Sprintf("%s%s ORDER BY %s LIMIT %d OFFSET %d",
		baseListingsSelect, whereClause, orderBy, limit, offset)
	countSQL = countListingsSelect + whereClause

	return dataSQL, countSQL, args
}

const baseApplicationsSelect = `SELECT id, user_id, listing_id, monthly_income, down_payment, term_months,
	estimated_payment, status, COALESCE(notes, ''), created_at, updated_at
FROM applications`

const countApplicationsSelect = "SELECT COUNT(*) FROM applications"

// toSQL builds the data and count queries for an application search.
func (q *ApplicationQuery) toSQL() (dataSQL, countSQL string, args []any) {
	var conditions []string
	paramIdx := 1

	if q.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", paramIdx))
		args = append(args, *q.Status)
		paramIdx++
	}

	if q.UserID != nil {
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", paramIdx))
		args = append(args, *q.UserID)
		paramIdx++
	}

	var whereClause string
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	limit := q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	offset := q.Offset
	if offset < 0 {
		offset = 0
	}

	dataSQL = fmt.Sprintf("%s%s ORDER BY created_at DESC LIMIT %d OFFSET %d",
		baseApplicationsSelect, whereClause, limit, offset)
	countSQL = countApplicationsSelect + whereClause

	return dataSQL, countSQL, args
}

// FromPreferences derives a candidate-listing query from stored preferences.
// Bedrooms are relaxed by one below the stated preference so near misses
// stay in the candidate pool for the engine to grade.
func FromPreferences(prefs *domain.UserPreferences, limit int) *ListingQuery {
	q := &ListingQuery{
		Locations: prefs.Locations,
		PriceMin:  prefs.BudgetMin,
		PriceMax:  prefs.BudgetMax,
		Limit:     limit,
	}
	for _, pt := range prefs.PropertyTypes {
		q.PropertyTypes = append(q.PropertyTypes, string(pt))
	}
	if prefs.Bedrooms != nil && *prefs.Bedrooms > 1 {
		relaxed := *prefs.Bedrooms - 1
		q.MinBedrooms = &relaxed
	}
	return q
}
