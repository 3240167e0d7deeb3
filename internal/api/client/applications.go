package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	domain "github.com/kejahub/keja-match/pkg/types"
)

// ApplicationsResponse wraps a paginated applications response.
type ApplicationsResponse struct {
	Applications []domain.Application `json:"applications"`
	Total        int                  `json:"total"`
}

// CreateApplicationParams holds the intake fields for a new application.
type CreateApplicationParams struct {
	UserID        string  `json:"user_id"`
	ListingID     string  `json:"listing_id"`
	MonthlyIncome float64 `json:"monthly_income"`
	DownPayment   float64 `json:"down_payment,omitempty"`
	TermMonths    int     `json:"term_months,omitempty"`
}

// CreateApplication submits a rent-to-own application.
func (c *Client) CreateApplication(
	ctx context.Context,
	params *CreateApplicationParams,
) (*domain.Application, error) {
	var app domain.Application
	if err := c.post(ctx, "/api/v1/applications", params, &app); err != nil {
		return nil, err
	}
	return &app, nil
}

// ListApplications returns applications, optionally filtered by status and
// applicant.
func (c *Client) ListApplications(
	ctx context.Context,
	status, userID string,
	limit int,
) (*ApplicationsResponse, error) {
	q := url.Values{}
	if status != "" {
		q.Set("status", status)
	}
	if userID != "" {
		q.Set("user_id", userID)
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	path := "/api/v1/applications"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var resp ApplicationsResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetApplication returns a single application by ID.
func (c *Client) GetApplication(ctx context.Context, id string) (*domain.Application, error) {
	var app domain.Application
	if err := c.get(ctx, fmt.Sprintf("/api/v1/applications/%s", id), &app); err != nil {
		return nil, err
	}
	return &app, nil
}

// UpdateApplicationStatus moves an application through admin review.
func (c *Client) UpdateApplicationStatus(
	ctx context.Context,
	id string,
	status domain.ApplicationStatus,
	notes string,
) (*domain.Application, error) {
	body := map[string]any{"status": status}
	if notes != "" {
		body["notes"] = notes
	}

	var app domain.Application
	path := fmt.Sprintf("/api/v1/applications/%s/status", id)
	if err := c.patch(ctx, path, body, &app); err != nil {
		return nil, err
	}
	return &app, nil
}
