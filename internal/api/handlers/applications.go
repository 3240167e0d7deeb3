package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/jackc/pgx/v5"

	"github.com/kejahub/keja-match/internal/metrics"
	"github.com/kejahub/keja-match/internal/notify"
	"github.com/kejahub/keja-match/internal/store"
	"github.com/kejahub/keja-match/pkg/finance"
	domain "github.com/kejahub/keja-match/pkg/types"
)

// ApplicationsHandler handles rent-to-own application intake and review.
type ApplicationsHandler struct {
	store    store.Store
	notifier notify.Notifier
	log      *slog.Logger
}

// NewApplicationsHandler creates a new ApplicationsHandler.
func NewApplicationsHandler(
	s store.Store,
	n notify.Notifier,
	log *slog.Logger,
) *ApplicationsHandler {
	return &ApplicationsHandler{store: s, notifier: n, log: log}
}

// CreateApplicationInput is the application intake request body.
type CreateApplicationInput struct {
	Body struct {
		UserID        string  `json:"user_id"                doc:"Applicant user identifier"                             minLength:"1"`
		ListingID     string  `json:"listing_id"             doc:"Listing UUID the application targets"                  minLength:"1"`
		MonthlyIncome float64 `json:"monthly_income"         doc:"Applicant monthly income in KES"                       minimum:"1"`
		DownPayment   float64 `json:"down_payment,omitempty" doc:"Proposed down payment (default 20% of price)"          minimum:"0"`
		TermMonths    int     `json:"term_months,omitempty"  doc:"Proposed term in months (default 180)"                 minimum:"0" maximum:"360"`
	}
}

// CreateApplicationOutput is the intake response, including the quoted
// estimated monthly payment.
type CreateApplicationOutput struct {
	Body domain.Application
}

// ListApplicationsInput is the input for listing applications.
type ListApplicationsInput struct {
	Status string `query:"status"  doc:"Filter by review status" enum:"received,reviewing,approved,declined,"`
	UserID string `query:"user_id" doc:"Filter by applicant"`
	Limit  int    `query:"limit"   doc:"Number of results"       minimum:"1" maximum:"500"`
	Offset int    `query:"offset"  doc:"Pagination offset"       minimum:"0"`
}

// ListApplicationsOutput is the response for listing applications.
type ListApplicationsOutput struct {
	Body struct {
		Applications []domain.Application `json:"applications"`
		Total        int                  `json:"total"`
	}
}

// GetApplicationInput is the input for fetching a single application.
type GetApplicationInput struct {
	ID string `path:"id" doc:"Application UUID"`
}

// GetApplicationOutput is the response for a single application.
type GetApplicationOutput struct {
	Body domain.Application
}

// UpdateApplicationStatusInput moves an application through admin review.
type UpdateApplicationStatusInput struct {
	ID   string `path:"id" doc:"Application UUID"`
	Body struct {
		Status domain.ApplicationStatus `json:"status"          doc:"New review status" enum:"reviewing,approved,declined"`
		Notes  string                   `json:"notes,omitempty" doc:"Reviewer notes"`
	}
}

// UpdateApplicationStatusOutput is the updated application.
type UpdateApplicationStatusOutput struct {
	Body domain.Application
}

// CreateApplication records an application against a listing, quoting the
// estimated monthly payment from the reference financing terms. The admin
// notification is best effort and never fails the intake.
func (h *ApplicationsHandler) CreateApplication(
	ctx context.Context,
	input *CreateApplicationInput,
) (*CreateApplicationOutput, error) {
	listing, err := h.store.GetListing(ctx, input.Body.ListingID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, huma.Error422UnprocessableEntity("listing does not exist")
		}
		return nil, huma.Error500InternalServerError("fetching listing failed: " + err.Error())
	}

	quote := finance.QuoteWith(listing.Price, input.Body.DownPayment, input.Body.TermMonths)

	app := domain.Application{
		UserID:           input.Body.UserID,
		ListingID:        listing.ID,
		MonthlyIncome:    input.Body.MonthlyIncome,
		DownPayment:      quote.DownPayment,
		TermMonths:       quote.TermMonths,
		EstimatedPayment: quote.MonthlyPayment,
		Status:           domain.ApplicationReceived,
	}

	if err := h.store.CreateApplication(ctx, &app); err != nil {
		return nil, huma.Error500InternalServerError("creating application failed: " + err.Error())
	}

	metrics.ApplicationsSubmittedTotal.Inc()

	if err := h.notifier.SendApplicationReceived(ctx, &notify.ApplicationPayload{
		ApplicationID:    app.ID,
		UserID:           app.UserID,
		ListingTitle:     listing.Title,
		Location:         listing.Location,
		Price:            finance.FormatKES(listing.Price),
		MonthlyIncome:    finance.FormatKES(app.MonthlyIncome),
		EstimatedPayment: finance.FormatKES(app.EstimatedPayment),
		TermMonths:       app.TermMonths,
	}); err != nil {
		metrics.NotificationFailuresTotal.Inc()
		h.log.Error("application notification failed",
			"application_id", app.ID,
			"error", err,
		)
	}

	return &CreateApplicationOutput{Body: app}, nil
}

// ListApplications returns applications with optional status and applicant
// filters.
func (h *ApplicationsHandler) ListApplications(
	ctx context.Context,
	input *ListApplicationsInput,
) (*ListApplicationsOutput, error) {
	q := &store.ApplicationQuery{
		Limit:  input.Limit,
		Offset: input.Offset,
	}
	if input.Status != "" {
		q.Status = &input.Status
	}
	if input.UserID != "" {
		q.UserID = &input.UserID
	}

	apps, total, err := h.store.ListApplications(ctx, q)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing applications failed: " + err.Error())
	}

	if apps == nil {
		apps = []domain.Application{}
	}

	resp := &ListApplicationsOutput{}
	resp.Body.Applications = apps
	resp.Body.Total = total

	return resp, nil
}

// GetApplication returns a single application by ID.
func (h *ApplicationsHandler) GetApplication(
	ctx context.Context,
	input *GetApplicationInput,
) (*GetApplicationOutput, error) {
	app, err := h.store.GetApplication(ctx, input.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, huma.Error404NotFound("application not found")
		}
		return nil, huma.Error500InternalServerError("fetching application failed: " + err.Error())
	}

	return &GetApplicationOutput{Body: *app}, nil
}

// UpdateApplicationStatus moves an application through the review flow.
// Only received → reviewing|approved|declined and reviewing →
// approved|declined are allowed; terminal states cannot be re-opened.
func (h *ApplicationsHandler) UpdateApplicationStatus(
	ctx context.Context,
	input *UpdateApplicationStatusInput,
) (*UpdateApplicationStatusOutput, error) {
	app, err := h.store.GetApplication(ctx, input.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, huma.Error404NotFound("application not found")
		}
		return nil, huma.Error500InternalServerError("fetching application failed: " + err.Error())
	}

	if !domain.ValidStatusTransition(app.Status, input.Body.Status) {
		return nil, huma.Error409Conflict(fmt.Sprintf(
			"cannot move application from %s to %s", app.Status, input.Body.Status,
		))
	}

	if err := h.store.UpdateApplicationStatus(ctx, input.ID, input.Body.Status, input.Body.Notes); err != nil {
		return nil, huma.Error500InternalServerError("updating application failed: " + err.Error())
	}

	// Re-read rather than patching the earlier snapshot, so the response
	// carries whatever the store holds now (UpdatedAt included).
	updated, err := h.store.GetApplication(ctx, input.ID)
	if err != nil {
		return nil, huma.Error500InternalServerError("fetching updated application failed: " + err.Error())
	}

	return &UpdateApplicationStatusOutput{Body: *updated}, nil
}

// RegisterApplicationRoutes registers application endpoints with the Huma API.
func RegisterApplicationRoutes(api huma.API, h *ApplicationsHandler) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-application",
		Method:        http.MethodPost,
		Path:          "/api/v1/applications",
		Summary:       "Submit an application",
		Description:   "Records a rent-to-own application and quotes the estimated monthly payment.",
		Tags:          []string{"applications"},
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusUnprocessableEntity},
	}, h.CreateApplication)

	huma.Register(api, huma.Operation{
		OperationID: "list-applications",
		Method:      http.MethodGet,
		Path:        "/api/v1/applications",
		Summary:     "List applications",
		Description: "Returns applications with optional status and applicant filters.",
		Tags:        []string{"applications"},
	}, h.ListApplications)

	huma.Register(api, huma.Operation{
		OperationID: "get-application",
		Method:      http.MethodGet,
		Path:        "/api/v1/applications/{id}",
		Summary:     "Get an application by ID",
		Description: "Returns a single application by its UUID.",
		Tags:        []string{"applications"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetApplication)

	huma.Register(api, huma.Operation{
		OperationID: "update-application-status",
		Method:      http.MethodPatch,
		Path:        "/api/v1/applications/{id}/status",
		Summary:     "Update application status",
		Description: "Moves an application through admin review: received to reviewing, then approved or declined.",
		Tags:        []string{"applications"},
		Errors:      []int{http.StatusNotFound, http.StatusConflict},
	}, h.UpdateApplicationStatus)
}
