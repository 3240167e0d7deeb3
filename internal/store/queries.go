package store

// SQL query constants organized by entity.
// All SQL lives here; PostgresStore methods reference these constants.

// Listing queries.
const (
	queryCreateListing = `
		INSERT INTO listings (
			source_ref, title, price, currency, location, property_type,
			bedrooms, bathrooms, area_sqm, listed_at, created_at, updated_at
		) VALUES (
			@source_ref, @title, @price, @currency, @location, @property_type,
			@bedrooms, @bathrooms, @area_sqm, @listed_at, now(), now()
		)
		RETURNING id, created_at, updated_at`

	queryUpsertListing = `
		INSERT INTO listings (
			source_ref, title, price, currency, location, property_type,
			bedrooms, bathrooms, area_sqm, listed_at, created_at, updated_at
		) VALUES (
			@source_ref, @title, @price, @currency, @location, @property_type,
			@bedrooms, @bathrooms, @area_sqm, @listed_at, now(), now()
		)
		ON CONFLICT (source_ref) DO UPDATE SET
			title = EXCLUDED.title,
			price = EXCLUDED.price,
			currency = EXCLUDED.currency,
			location = EXCLUDED.location,
			property_type = EXCLUDED.property_type,
			bedrooms = EXCLUDED.bedrooms,
			bathrooms = EXCLUDED.bathrooms,
			area_sqm = EXCLUDED.area_sqm,
			listed_at = EXCLUDED.listed_at,
			updated_at = now()
		RETURNING id, created_at, updated_at`

	queryGetListingByID = `
		SELECT id, COALESCE(source_ref, ''), title,
			price, currency, location, property_type, bedrooms, bathrooms, area_sqm,
			listed_at, created_at, updated_at
		FROM listings
		WHERE id = $1`
)

// Preference queries.
const (
	queryGetPreferences = `
		SELECT user_id, locations, property_types, budget_min, budget_max, bedrooms,
			lifestyle_factors, investment_goals, COALESCE(risk_tolerance, ''),
			search_history, viewed_listings, saved_listings, updated_at
		FROM user_preferences
		WHERE user_id = $1`

	queryUpsertPreferences = `
		INSERT INTO user_preferences (
			user_id, locations, property_types, budget_min, budget_max, bedrooms,
			lifestyle_factors, investment_goals, risk_tolerance,
			search_history, viewed_listings, saved_listings, updated_at
		) VALUES (
			@user_id, @locations, @property_types, @budget_min, @budget_max, @bedrooms,
			@lifestyle_factors, @investment_goals, @risk_tolerance,
			@search_history, @viewed_listings, @saved_listings, now()
		)
		ON CONFLICT (user_id) DO UPDATE SET
			locations = EXCLUDED.locations,
			property_types = EXCLUDED.property_types,
			budget_min = EXCLUDED.budget_min,
			budget_max = EXCLUDED.budget_max,
			bedrooms = EXCLUDED.bedrooms,
			lifestyle_factors = EXCLUDED.lifestyle_factors,
			investment_goals = EXCLUDED.investment_goals,
			risk_tolerance = EXCLUDED.risk_tolerance,
			search_history = EXCLUDED.search_history,
			viewed_listings = EXCLUDED.viewed_listings,
			saved_listings = EXCLUDED.saved_listings,
			updated_at = now()
		RETURNING updated_at`

	// array_append with a NOT-contains guard keeps the engagement sets
	// idempotent under repeated marks.
	queryMarkListingViewed = `
		UPDATE user_preferences SET
			viewed_listings = array_append(viewed_listings, $2),
			updated_at = now()
		WHERE user_id = $1 AND NOT ($2 = ANY(viewed_listings))`

	queryMarkListingSaved = `
		UPDATE user_preferences SET
			saved_listings = array_append(saved_listings, $2),
			updated_at = now()
		WHERE user_id = $1 AND NOT ($2 = ANY(saved_listings))`

	queryAppendSearchQuery = `
		UPDATE user_preferences SET
			search_history = array_append(search_history, $2),
			updated_at = now()
		WHERE user_id = $1`
)

// Application queries.
const (
	queryCreateApplication = `
		INSERT INTO applications (
			user_id, listing_id, monthly_income, down_payment, term_months,
			estimated_payment, status, notes, created_at, updated_at
		) VALUES (
			@user_id, @listing_id, @monthly_income, @down_payment, @term_months,
			@estimated_payment, @status, @notes, now(), now()
		)
		RETURNING id, created_at, updated_at`

	queryGetApplication = `
		SELECT id, user_id, listing_id, monthly_income, down_payment, term_months,
			estimated_payment, status, COALESCE(notes, ''), created_at, updated_at
		FROM applications
		WHERE id = $1`

	queryUpdateApplicationStatus = `
		UPDATE applications SET
			status = $2,
			notes = $3,
			updated_at = now()
		WHERE id = $1`
)

// Market aggregate queries.
const (
	queryLocationPriceStats = `
		SELECT LOWER(location) AS location,
			AVG(price) AS avg_price,
			COUNT(*) AS listing_count,
			COALESCE(AVG(EXTRACT(EPOCH FROM (now() - listed_at)) / 86400.0)
				FILTER (WHERE listed_at IS NOT NULL), 0) AS avg_days_on_market
		FROM listings
		WHERE created_at > now() - make_interval(days => $1)
		GROUP BY LOWER(location)
		ORDER BY location`
)

// Job run queries.
const (
	queryInsertJobRun = `
		INSERT INTO job_runs (job_name, started_at, status)
		VALUES ($1, now(), 'running')
		RETURNING id`

	queryCompleteJobRun = `
		UPDATE job_runs SET
			completed_at = now(),
			status = $2,
			error_text = $3,
			rows_affected = $4
		WHERE id = $1`

	queryListJobRuns = `
		SELECT id, job_name, started_at, completed_at, status,
			COALESCE(error_text, ''), rows_affected
		FROM job_runs
		WHERE ($1 = '' OR job_name = $1)
		ORDER BY started_at DESC
		LIMIT $2`
)
