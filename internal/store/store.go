// Package store defines the datastore abstraction for keja-match.
// All business logic depends on the Store interface, never on concrete
// implementations. This enables mock-based testing without a running database.
package store

import (
	"context"

	domain "github.com/kejahub/keja-match/pkg/types"
)

// ListingQuery defines optional filters for listing queries.
type ListingQuery struct {
	Locations     []string
	PropertyTypes []string
	PriceMin      *float64
	PriceMax      *float64
	MinBedrooms   *int
	Limit         int // default 50
	Offset        int
	OrderBy       string // "price", "newest"
}

// ApplicationQuery defines optional filters for application queries.
type ApplicationQuery struct {
	Status *string
	UserID *string
	Limit  int
	Offset int
}

// Store defines all data access operations for keja-match.
type Store interface {
	// Listings
	CreateListing(ctx context.Context, l *domain.Listing) error
	UpsertListing(ctx context.Context, l *domain.Listing) error
	GetListing(ctx context.Context, id string) (*domain.Listing, error)
	ListListings(ctx context.Context, opts *ListingQuery) ([]domain.Listing, int, error)

	// Preferences
	GetPreferences(ctx context.Context, userID string) (*domain.UserPreferences, error)
	UpsertPreferences(ctx context.Context, p *domain.UserPreferences) error
	MarkListingViewed(ctx context.Context, userID, listingID string) error
	MarkListingSaved(ctx context.Context, userID, listingID string) error
	AppendSearchQuery(ctx context.Context, userID, query string) error

	// Applications
	CreateApplication(ctx context.Context, a *domain.Application) error
	GetApplication(ctx context.Context, id string) (*domain.Application, error)
	ListApplications(ctx context.Context, opts *ApplicationQuery) ([]domain.Application, int, error)
	UpdateApplicationStatus(ctx context.Context, id string, status domain.ApplicationStatus, notes string) error

	// Market aggregates
	LocationPriceStats(ctx context.Context, windowDays int) ([]domain.LocationStat, error)

	// Scheduler
	InsertJobRun(ctx context.Context, jobName string) (id string, err error)
	CompleteJobRun(ctx context.Context, id string, status string, errText string, rowsAffected int) error
	ListJobRuns(ctx context.Context, jobName string, limit int) ([]domain.JobRun, error)

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
}
