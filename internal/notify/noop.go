package notify

import (
	"context"
	"log/slog"
)

// NoOpNotifier implements Notifier by logging discarded notifications. It is
// used when no webhook backend is configured.
type NoOpNotifier struct {
	log *slog.Logger
}

// NewNoOpNotifier creates a notifier that discards notifications with a log
// message.
func NewNoOpNotifier(log *slog.Logger) *NoOpNotifier {
	return &NoOpNotifier{log: log}
}

// SendApplicationReceived logs and discards the notification.
func (n *NoOpNotifier) SendApplicationReceived(_ context.Context, app *ApplicationPayload) error {
	n.log.Debug("notification discarded (no backend configured)",
		"application_id", app.ApplicationID,
		"user_id", app.UserID,
	)
	return nil
}
