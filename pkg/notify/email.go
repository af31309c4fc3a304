package notify

import (
	"context"
	"library/pkg/logger"

	"go.uber.org/zap"
)

// Email simulates delivery through an email gateway. No mail is actually
// sent; the dispatch is recorded in the structured log, which is the only
// externally observable interface of this service.
type Email struct {
	// From is the sender address stamped on every message.
	From string
}

// NewEmail creates an email channel sending from the given address.
func NewEmail(from string) *Email {
	return &Email{From: from}
}

// Send records the outgoing email.
func (e *Email) Send(ctx context.Context, recipient string, message string) error {
	logger.Info(ctx, "email notification dispatched",
		zap.String("from", e.From),
		zap.String("to", recipient),
		zap.String("body", message))

	return nil
}
