package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/jackc/pgx/v5"

	"github.com/kejahub/keja-match/internal/store"
	domain "github.com/kejahub/keja-match/pkg/types"
)

// PreferencesHandler handles user preference and engagement endpoints.
type PreferencesHandler struct {
	store store.Store
}

// NewPreferencesHandler creates a new PreferencesHandler.
func NewPreferencesHandler(s store.Store) *PreferencesHandler {
	return &PreferencesHandler{store: s}
}

// GetPreferencesInput is the path input for fetching stored preferences.
type GetPreferencesInput struct {
	UserID string `path:"id" doc:"User identifier"`
}

// GetPreferencesOutput is the stored preferences response.
type GetPreferencesOutput struct {
	Body domain.UserPreferences
}

// PutPreferencesInput replaces a user's stored preferences. Merge semantics
// belong to the caller; the server persists the submitted value as-is.
type PutPreferencesInput struct {
	UserID string `path:"id" doc:"User identifier"`
	Body   domain.UserPreferences
}

// PutPreferencesOutput is the persisted preferences response.
type PutPreferencesOutput struct {
	Body domain.UserPreferences
}

// EngagementInput is the path input for view/save engagement marks.
type EngagementInput struct {
	UserID    string `path:"id"        doc:"User identifier"`
	ListingID string `path:"listingID" doc:"Listing UUID"`
}

// EngagementOutput confirms a recorded engagement event.
type EngagementOutput struct {
	Body StatusResponse
}

// GetPreferences returns a user's stored preferences.
func (h *PreferencesHandler) GetPreferences(
	ctx context.Context,
	input *GetPreferencesInput,
) (*GetPreferencesOutput, error) {
	prefs, err := h.store.GetPreferences(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, huma.Error404NotFound("no preferences stored for user")
		}
		return nil, huma.Error500InternalServerError("fetching preferences failed: " + err.Error())
	}

	return &GetPreferencesOutput{Body: *prefs}, nil
}

// PutPreferences stores the submitted preferences for a user, replacing any
// previous value.
func (h *PreferencesHandler) PutPreferences(
	ctx context.Context,
	input *PutPreferencesInput,
) (*PutPreferencesOutput, error) {
	prefs := input.Body
	prefs.UserID = input.UserID

	if err := h.store.UpsertPreferences(ctx, &prefs); err != nil {
		return nil, huma.Error500InternalServerError("storing preferences failed: " + err.Error())
	}

	return &PutPreferencesOutput{Body: prefs}, nil
}

// MarkViewed records that the user viewed a listing. Repeat views of the
// same listing are idempotent.
func (h *PreferencesHandler) MarkViewed(
	ctx context.Context,
	input *EngagementInput,
) (*EngagementOutput, error) {
	if err := h.store.MarkListingViewed(ctx, input.UserID, input.ListingID); err != nil {
		return nil, huma.Error500InternalServerError("recording view failed: " + err.Error())
	}

	return &EngagementOutput{Body: StatusResponse{Status: "recorded"}}, nil
}

// MarkSaved records that the user saved a listing. Repeat saves of the same
// listing are idempotent.
func (h *PreferencesHandler) MarkSaved(
	ctx context.Context,
	input *EngagementInput,
) (*EngagementOutput, error) {
	if err := h.store.MarkListingSaved(ctx, input.UserID, input.ListingID); err != nil {
		return nil, huma.Error500InternalServerError("recording save failed: " + err.Error())
	}

	return &EngagementOutput{Body: StatusResponse{Status: "recorded"}}, nil
}

// RegisterPreferenceRoutes registers preference endpoints with the Huma API.
func RegisterPreferenceRoutes(api huma.API, h *PreferencesHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-preferences",
		Method:      http.MethodGet,
		Path:        "/api/v1/users/{id}/preferences",
		Summary:     "Get user preferences",
		Description: "Returns the stored search preferences and engagement history for a user.",
		Tags:        []string{"users"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetPreferences)

	huma.Register(api, huma.Operation{
		OperationID: "put-preferences",
		Method:      http.MethodPut,
		Path:        "/api/v1/users/{id}/preferences",
		Summary:     "Store user preferences",
		Description: "Replaces the stored preferences for a user with the submitted value.",
		Tags:        []string{"users"},
	}, h.PutPreferences)

	huma.Register(api, huma.Operation{
		OperationID: "mark-viewed",
		Method:      http.MethodPost,
		Path:        "/api/v1/users/{id}/viewed/{listingID}",
		Summary:     "Record a listing view",
		Description: "Adds the listing to the user's viewed history. Idempotent.",
		Tags:        []string{"users"},
	}, h.MarkViewed)

	huma.Register(api, huma.Operation{
		OperationID: "mark-saved",
		Method:      http.MethodPost,
		Path:        "/api/v1/users/{id}/saved/{listingID}",
		Summary:     "Record a listing save",
		Description: "Adds the listing to the user's saved list. Idempotent.",
		Tags:        []string{"users"},
	}, h.MarkSaved)
}
