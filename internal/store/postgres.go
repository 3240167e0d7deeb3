package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/kejahub/keja-match/pkg/types"
)

const defaultPoolSize = 10

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// --- Listings ---

func listingArgs(l *domain.Listing) pgx.NamedArgs {
	var sourceRef *string
	if l.SourceRef != "" {
		sourceRef = &l.SourceRef
	}
	return pgx.NamedArgs{
		"source_ref":    sourceRef,
		"title":         l.Title,
		"price":         l.Price,
		"currency":      l.Currency,
		"location":      l.Location,
		"property_type": string(l.PropertyType),
		"bedrooms":      l.Bedrooms,
		"bathrooms":     l.Bathrooms,
		"area_sqm":      l.AreaSqm,
		"listed_at":     l.ListedAt,
	}
}

// CreateListing inserts a new listing and fills in its generated fields.
func (s *PostgresStore) CreateListing(ctx context.Context, l *domain.Listing) error {
	return s.pool.QueryRow(ctx, queryCreateListing, listingArgs(l)).Scan(
		&l.ID, &l.CreatedAt, &l.UpdatedAt,
	)
}

// UpsertListing inserts or updates a listing by its aggregator source_ref.
func (s *PostgresStore) UpsertListing(ctx context.Context, l *domain.Listing) error {
	if l.SourceRef == "" {
		return fmt.Errorf("upsert requires a source_ref")
	}
	return s.pool.QueryRow(ctx, queryUpsertListing, listingArgs(l)).Scan(
		&l.ID, &l.CreatedAt, &l.UpdatedAt,
	)
}

// GetListing retrieves a listing by its internal UUID.
func (s *PostgresStore) GetListing(ctx context.Context, id string) (*domain.Listing, error) {
	l := &domain.Listing{}
	if err := scanListing(s.pool.QueryRow(ctx, queryGetListingByID, id), l); err != nil {
		return nil, err
	}
	return l, nil
}

// ListListings queries listings with optional filters, returning results and
// total count.
func (s *PostgresStore) ListListings(
	ctx context.Context,
	opts *ListingQuery,
) ([]domain.Listing, int, error) {
	dataSQL, countSQL, args := opts.ToSQL()

	var total int
	if err := s.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting listings: %w", err)
	}

	rows, err := s.pool.Query(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("querying listings: %w", err)
	}
	defer rows.Close()

	var listings []domain.Listing
	for rows.Next() {
		var l domain.Listing
		if err := scanListing(rows, &l); err != nil {
			return nil, 0, fmt.Errorf("scanning listing: %w", err)
		}
		listings = append(listings, l)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating listings: %w", err)
	}

	return listings, total, nil
}

func scanListing(row pgx.Row, l *domain.Listing) error {
	var propertyType string
	err := row.Scan(
		&l.ID, &l.SourceRef, &l.Title,
		&l.Price, &l.Currency, &l.Location, &propertyType,
		&l.Bedrooms, &l.Bathrooms, &l.AreaSqm,
		&l.ListedAt, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return err
	}
	l.PropertyType = domain.PropertyType(propertyType)
	return nil
}

// --- Preferences ---

// GetPreferences retrieves a user's preference record.
func (s *PostgresStore) GetPreferences(ctx context.Context, userID string) (*domain.UserPreferences, error) {
	p := &domain.UserPreferences{}
	var propertyTypes []string
	var riskTolerance string

	err := s.pool.QueryRow(ctx, queryGetPreferences, userID).Scan(
		&p.UserID, &p.Locations, &propertyTypes, &p.BudgetMin, &p.BudgetMax, &p.Bedrooms,
		&p.LifestyleFactors, &p.InvestmentGoals, &riskTolerance,
		&p.SearchHistory, &p.ViewedListings, &p.SavedListings, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	for _, pt := range propertyTypes {
		p.PropertyTypes = append(p.PropertyTypes, domain.PropertyType(pt))
	}
	p.RiskTolerance = domain.RiskTolerance(riskTolerance)
	return p, nil
}

// UpsertPreferences inserts or replaces a user's preference record.
func (s *PostgresStore) UpsertPreferences(ctx context.Context, p *domain.UserPreferences) error {
	propertyTypes := make([]string, 0, len(p.PropertyTypes))
	for _, pt := range p.PropertyTypes {
		propertyTypes = append(propertyTypes, string(pt))
	}

	args := pgx.NamedArgs{
		"user_id":           p.UserID,
		"locations":         lowered(p.Locations),
		"property_types":    propertyTypes,
		"budget_min":        p.BudgetMin,
		"budget_max":        p.BudgetMax,
		"bedrooms":          p.Bedrooms,
		"lifestyle_factors": emptyIfNil(p.LifestyleFactors),
		"investment_goals":  emptyIfNil(p.InvestmentGoals),
		"risk_tolerance":    string(p.RiskTolerance),
		"search_history":    emptyIfNil(p.SearchHistory),
		"viewed_listings":   emptyIfNil(p.ViewedListings),
		"saved_listings":    emptyIfNil(p.SavedListings),
	}

	return s.pool.QueryRow(ctx, queryUpsertPreferences, args).Scan(&p.UpdatedAt)
}

// MarkListingViewed records a listing view in the user's engagement history.
func (s *PostgresStore) MarkListingViewed(ctx context.Context, userID, listingID string) error {
	_, err := s.pool.Exec(ctx, queryMarkListingViewed, userID, listingID)
	if err != nil {
		return fmt.Errorf("marking listing viewed: %w", err)
	}
	return nil
}

// MarkListingSaved records a listing save in the user's engagement history.
func (s *PostgresStore) MarkListingSaved(ctx context.Context, userID, listingID string) error {
	_, err := s.pool.Exec(ctx, queryMarkListingSaved, userID, listingID)
	if err != nil {
		return fmt.Errorf("marking listing saved: %w", err)
	}
	return nil
}

// AppendSearchQuery appends a free-text query to the user's search history.
func (s *PostgresStore) AppendSearchQuery(ctx context.Context, userID, query string) error {
	_, err := s.pool.Exec(ctx, queryAppendSearchQuery, userID, query)
	if err != nil {
		return fmt.Errorf("appending search query: %w", err)
	}
	return nil
}

// --- Applications ---

// CreateApplication inserts a new application and fills in generated fields.
func (s *PostgresStore) CreateApplication(ctx context.Context, a *domain.Application) error {
	args := pgx.NamedArgs{
		"user_id":           a.UserID,
		"listing_id":        a.ListingID,
		"monthly_income":    a.MonthlyIncome,
		"down_payment":      a.DownPayment,
		"term_months":       a.TermMonths,
		"estimated_payment": a.EstimatedPayment,
		"status":            string(a.Status),
		"notes":             a.Notes,
	}
	return s.pool.QueryRow(ctx, queryCreateApplication, args).Scan(
		&a.ID, &a.CreatedAt, &a.UpdatedAt,
	)
}

// GetApplication retrieves an application by ID.
func (s *PostgresStore) GetApplication(ctx context.Context, id string) (*domain.Application, error) {
	a := &domain.Application{}
	var status string
	err := s.pool.QueryRow(ctx, queryGetApplication, id).Scan(
		&a.ID, &a.UserID, &a.ListingID, &a.MonthlyIncome, &a.DownPayment,
		&a.TermMonths, &a.EstimatedPayment, &status, &a.Notes,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	a.Status = domain.ApplicationStatus(status)
	return a, nil
}

// ListApplications queries applications with optional filters.
func (s *PostgresStore) ListApplications(
	ctx context.Context,
	opts *ApplicationQuery,
) ([]domain.Application, int, error) {
	dataSQL, countSQL, args := opts.toSQL()

	var total int
	if err := s.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting applications: %w", err)
	}

	rows, err := s.pool.Query(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("querying applications: %w", err)
	}
	defer rows.Close()

	var apps []domain.Application
	for rows.Next() {
		var a domain.Application
		var status string
		if err := rows.Scan(
			&a.ID, &a.UserID, &a.ListingID, &a.MonthlyIncome, &a.DownPayment,
			&a.TermMonths, &a.EstimatedPayment, &status, &a.Notes,
			&a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("scanning application: %w", err)
		}
		a.Status = domain.ApplicationStatus(status)
		apps = append(apps, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating applications: %w", err)
	}

	return apps, total, nil
}

// UpdateApplicationStatus moves an application to a new review status.
func (s *PostgresStore) UpdateApplicationStatus(
	ctx context.Context,
	id string,
	status domain.ApplicationStatus,
	notes string,
) error {
	tag, err := s.pool.Exec(ctx, queryUpdateApplicationStatus, id, string(status), notes)
	if err != nil {
		return fmt.Errorf("updating application status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// --- Market aggregates ---

// LocationPriceStats computes per-location price aggregates over a rolling
// window of days.
func (s *PostgresStore) LocationPriceStats(ctx context.Context, windowDays int) ([]domain.LocationStat, error) {
	rows, err := s.pool.Query(ctx, queryLocationPriceStats, windowDays)
	if err != nil {
		return nil, fmt.Errorf("querying location stats: %w", err)
	}
	defer rows.Close()

	var stats []domain.LocationStat
	for rows.Next() {
		var st domain.LocationStat
		if err := rows.Scan(&st.Location, &st.AvgPrice, &st.ListingCount, &st.AvgDaysOnMarket); err != nil {
			return nil, fmt.Errorf("scanning location stat: %w", err)
		}
		stats = append(stats, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating location stats: %w", err)
	}

	return stats, nil
}

// --- Job runs ---

// InsertJobRun records the start of a scheduled job.
func (s *PostgresStore) InsertJobRun(ctx context.Context, jobName string) (string, error) {
	var id string
	if err := s.pool.QueryRow(ctx, queryInsertJobRun, jobName).Scan(&id); err != nil {
		return "", fmt.Errorf("inserting job run: %w", err)
	}
	return id, nil
}

// CompleteJobRun records the outcome of a scheduled job.
func (s *PostgresStore) CompleteJobRun(ctx context.Context, id, status, errText string, rowsAffected int) error {
	_, err := s.pool.Exec(ctx, queryCompleteJobRun, id, status, errText, rowsAffected)
	if err != nil {
		return fmt.Errorf("completing job run: %w", err)
	}
	return nil
}

// ListJobRuns returns recent job runs, optionally filtered by job name.
func (s *PostgresStore) ListJobRuns(ctx context.Context, jobName string, limit int) ([]domain.JobRun, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.pool.Query(ctx, queryListJobRuns, jobName, limit)
	if err != nil {
		return nil, fmt.Errorf("querying job runs: %w", err)
	}
	defer rows.Close()

	var runs []domain.JobRun
	for rows.Next() {
		var r domain.JobRun
		if err := rows.Scan(
			&r.ID, &r.JobName, &r.StartedAt, &r.CompletedAt,
			&r.Status, &r.ErrorText, &r.RowsAffected,
		); err != nil {
			return nil, fmt.Errorf("scanning job run: %w", err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating job runs: %w", err)
	}

	return runs, nil
}

func lowered(ss []string) []string {
	out := make([]string, 0, len(ss))
	for _, s := range ss {
		out = append(out, strings.ToLower(strings.TrimSpace(s)))
	}
	return out
}

func emptyIfNil(ss []string) []string {
	if ss == nil {
		return []string{}
	}
	return ss
}
