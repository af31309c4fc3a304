package notify

import (
	"context"
	"library/pkg/logger"
	"library/pkg/serrors"

	"go.uber.org/zap"
)

// maxSMSLength is the longest message the simulated SMS gateway accepts.
const maxSMSLength = 480

// SMS simulates delivery through an SMS gateway. Like Email, the dispatch is
// only recorded in the structured log.
type SMS struct{}

// NewSMS creates an SMS channel.
func NewSMS() *SMS {
	return &SMS{}
}

// Send records the outgoing text message. Messages longer than the gateway
// limit are rejected rather than truncated.
func (s *SMS) Send(ctx context.Context, recipient string, message string) error {
	if len(message) > maxSMSLength {
		return serrors.With(serrors.ErrBadRequest, "message too long for SMS (%d > %d)", len(message), maxSMSLength)
	}

	logger.Info(ctx, "sms notification dispatched",
		zap.String("to", recipient),
		zap.String("body", message))

	return nil
}
