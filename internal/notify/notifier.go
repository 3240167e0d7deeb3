// Package notify defines the notification interface and implementations
// for application intake delivery.
package notify

import (
	"context"
)

// ApplicationPayload contains the data needed to notify the review team
// about a newly submitted rent-to-own application.
type ApplicationPayload struct {
	ApplicationID    string
	UserID           string
	ListingTitle     string
	Location         string
	Price            string
	MonthlyIncome    string
	EstimatedPayment string
	TermMonths       int
}

// Notifier defines the interface for sending application notifications.
type Notifier interface {
	SendApplicationReceived(ctx context.Context, app *ApplicationPayload) error
}
