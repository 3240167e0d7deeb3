package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/jackc/pgx/v5"

	"github.com/kejahub/keja-match/internal/store"
	domain "github.com/kejahub/keja-match/pkg/types"
)

// ListingsHandler handles listing query and intake endpoints.
type ListingsHandler struct {
	store store.Store
}

// NewListingsHandler creates a new ListingsHandler.
func NewListingsHandler(s store.Store) *ListingsHandler {
	return &ListingsHandler{store: s}
}

// --- Input/Output types ---

// ListListingsInput is the input for listing listings with optional filters.
type ListListingsInput struct {
	Location     string  `query:"location"      doc:"Filter by location (comma-separated for multiple)"`
	PropertyType string  `query:"property_type" doc:"Filter by property type"        enum:"apartment,house,townhouse,commercial,"`
	PriceMin     float64 `query:"price_min"     doc:"Minimum price in KES"                                                          minimum:"0"`
	PriceMax     float64 `query:"price_max"     doc:"Maximum price in KES"                                                          minimum:"0"`
	MinBedrooms  int     `query:"min_bedrooms"  doc:"Minimum bedroom count"                                                         minimum:"0"`
	Limit        int     `query:"limit"         doc:"Number of results (default 50)"                                                minimum:"1" maximum:"500"`
	Offset       int     `query:"offset"        doc:"Pagination offset"                                                             minimum:"0"`
	OrderBy      string  `query:"order_by"      doc:"Sort field"                     enum:"price,newest,"`
}

// ListListingsOutput is the response for listing listings.
type ListListingsOutput struct {
	Body struct {
		Listings []domain.Listing `json:"listings"`
		Total    int              `json:"total"`
		Limit    int              `json:"limit"`
		Offset   int              `json:"offset"`
	}
}

// GetListingInput is the input for getting a single listing.
type GetListingInput struct {
	ID string `path:"id" doc:"Listing UUID"`
}

// GetListingOutput is the response for getting a single listing.
type GetListingOutput struct {
	Body domain.Listing
}

// CreateListingInput is the request body for adding a listing directly.
type CreateListingInput struct {
	Body struct {
		Title        string              `json:"title"                doc:"Listing title"                    minLength:"1"`
		Price        float64             `json:"price"                doc:"Asking price"                     minimum:"1"`
		Currency     string              `json:"currency,omitempty"   doc:"Price currency (default KES)"`
		Location     string              `json:"location"             doc:"City or neighbourhood"            minLength:"1"`
		PropertyType domain.PropertyType `json:"property_type"        doc:"Property category"                enum:"apartment,house,townhouse,commercial"`
		Bedrooms     int                 `json:"bedrooms,omitempty"   doc:"Bedroom count"                    minimum:"0"`
		Bathrooms    int                 `json:"bathrooms,omitempty"  doc:"Bathroom count"                   minimum:"0"`
		AreaSqm      float64             `json:"area_sqm,omitempty"   doc:"Floor area in square metres"      minimum:"0"`
		SourceRef    string              `json:"source_ref,omitempty" doc:"External feed reference, if any"`
		ListedAt     *time.Time          `json:"listed_at,omitempty"  doc:"When the property was listed"`
	}
}

// CreateListingOutput is the response for creating a listing.
type CreateListingOutput struct {
	Body domain.Listing
}

// --- Handlers ---

// ListListings returns listings with optional filters for location, property
// type, price range, bedrooms, and pagination.
func (h *ListingsHandler) ListListings(
	ctx context.Context,
	input *ListListingsInput,
) (*ListListingsOutput, error) {
	q := &store.ListingQuery{
		Offset:  input.Offset,
		OrderBy: input.OrderBy,
	}

	if input.Location != "" {
		for _, loc := range strings.Split(input.Location, ",") {
			if loc = strings.TrimSpace(loc); loc != "" {
				q.Locations = append(q.Locations, loc)
			}
		}
	}

	if input.PropertyType != "" {
		q.PropertyTypes = []string{input.PropertyType}
	}

	if input.PriceMin != 0 {
		q.PriceMin = &input.PriceMin
	}

	if input.PriceMax != 0 {
		q.PriceMax = &input.PriceMax
	}

	if input.MinBedrooms != 0 {
		q.MinBedrooms = &input.MinBedrooms
	}

	if input.Limit != 0 {
		q.Limit = input.Limit
	}

	listings, total, err := h.store.ListListings(ctx, q)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing query failed: " + err.Error())
	}

	if listings == nil {
		listings = []domain.Listing{}
	}

	resp := &ListListingsOutput{}
	resp.Body.Listings = listings
	resp.Body.Total = total
	resp.Body.Limit = q.Limit
	resp.Body.Offset = q.Offset

	return resp, nil
}

// GetListing returns a single listing by ID.
func (h *ListingsHandler) GetListing(
	ctx context.Context,
	input *GetListingInput,
) (*GetListingOutput, error) {
	listing, err := h.store.GetListing(ctx, input.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, huma.Error404NotFound("listing not found")
		}
		return nil, huma.Error500InternalServerError("fetching listing failed: " + err.Error())
	}

	return &GetListingOutput{Body: *listing}, nil
}

// CreateListing stores a listing submitted directly through the API rather
// than through the aggregator feed.
func (h *ListingsHandler) CreateListing(
	ctx context.Context,
	input *CreateListingInput,
) (*CreateListingOutput, error) {
	l := domain.Listing{
		SourceRef:    input.Body.SourceRef,
		Title:        strings.TrimSpace(input.Body.Title),
		Price:        input.Body.Price,
		Currency:     input.Body.Currency,
		Location:     strings.ToLower(strings.TrimSpace(input.Body.Location)),
		PropertyType: input.Body.PropertyType,
		Bedrooms:     input.Body.Bedrooms,
		Bathrooms:    input.Body.Bathrooms,
		AreaSqm:      input.Body.AreaSqm,
		ListedAt:     input.Body.ListedAt,
	}
	if l.Currency == "" {
		l.Currency = "KES"
	}

	if err := h.store.CreateListing(ctx, &l); err != nil {
		return nil, huma.Error500InternalServerError("creating listing failed: " + err.Error())
	}

	return &CreateListingOutput{Body: l}, nil
}

// RegisterListingRoutes registers listing endpoints with the Huma API.
func RegisterListingRoutes(api huma.API, h *ListingsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-listings",
		Method:      http.MethodGet,
		Path:        "/api/v1/listings",
		Summary:     "List listings",
		Description: "Returns listings with optional filters for location, property type, price range, bedrooms, and pagination.",
		Tags:        []string{"listings"},
	}, h.ListListings)

	huma.Register(api, huma.Operation{
		OperationID: "get-listing",
		Method:      http.MethodGet,
		Path:        "/api/v1/listings/{id}",
		Summary:     "Get a listing by ID",
		Description: "Returns a single listing by its UUID.",
		Tags:        []string{"listings"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetListing)

	huma.Register(api, huma.Operation{
		OperationID:   "create-listing",
		Method:        http.MethodPost,
		Path:          "/api/v1/listings",
		Summary:       "Create a listing",
		Description:   "Stores a listing submitted directly through the API.",
		Tags:          []string{"listings"},
		DefaultStatus: http.StatusCreated,
	}, h.CreateListing)
}
