package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testApplication() *ApplicationPayload {
	return &ApplicationPayload{
		ApplicationID:    "app-1",
		UserID:           "user-1",
		ListingTitle:     "Modern 3 Bedroom Apartment in Kilimani",
		Location:         "nairobi",
		Price:            "KES 8,500,000",
		MonthlyIncome:    "KES 250,000",
		EstimatedPayment: "KES 83,000",
		TermMonths:       180,
	}
}

func TestWebhookNotifier_SendApplicationReceived(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		statusCode int
		wantErr    bool
		errMsg     string
	}{
		{
			name:       "successful delivery",
			statusCode: http.StatusOK,
		},
		{
			name:       "204 is success",
			statusCode: http.StatusNoContent,
		},
		{
			name:       "429 rate limited",
			statusCode: http.StatusTooManyRequests,
			wantErr:    true,
			errMsg:     "rate limited",
		},
		{
			name:       "400 error",
			statusCode: http.StatusBadRequest,
			wantErr:    true,
			errMsg:     "webhook returned 400",
		},
		{
			name:       "500 error",
			statusCode: http.StatusInternalServerError,
			wantErr:    true,
			errMsg:     "webhook returned 500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var received webhookBody

			srv := httptest.NewServer(
				http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
					assert.Equal(t, http.MethodPost, r.Method)

					err := json.NewDecoder(r.Body).Decode(&received)
					assert.NoError(t, err)

					w.WriteHeader(tt.statusCode)
				}),
			)
			defer srv.Close()

			n := NewWebhookNotifier(srv.URL)
			err := n.SendApplicationReceived(context.Background(), testApplication())

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "application.received", received.Event)
			require.NotNil(t, received.Application)
			assert.Equal(t, "app-1", received.Application.ApplicationID)
			assert.Equal(t, "nairobi", received.Application.Location)
		})
	}
}

func TestWebhookNotifier_CustomHeaders(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "token-123", r.Header.Get("X-Keja-Token"))
			w.WriteHeader(http.StatusOK)
		}),
	)
	defer srv.Close()

	n := NewWebhookNotifier(srv.URL, WithHeaders(map[string]string{"X-Keja-Token": "token-123"}))
	require.NoError(t, n.SendApplicationReceived(context.Background(), testApplication()))
}

func TestWebhookNotifier_UnreachableEndpoint(t *testing.T) {
	t.Parallel()

	n := NewWebhookNotifier("http://127.0.0.1:1")
	err := n.SendApplicationReceived(context.Background(), testApplication())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sending webhook")
}
