package notify

import (
	"context"
	"log/slog"

	"hotel-booking-core/internal/usecase/commands"

	"github.com/google/uuid"
)

// LogNotifier is the default lifecycle-trigger sink. Real delivery (email,
// chat webhook) belongs to the surrounding CMS; this service only records
// that the trigger fired.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(ctx context.Context, bookingID uuid.UUID, messageType commands.MessageType, payload map[string]string) error {
	attrs := []any{
		slog.String("booking_id", bookingID.String()),
		slog.String("message_type", string(messageType)),
	}
	for k, v := range payload {
		attrs = append(attrs, slog.String(k, v))
	}
	n.logger.InfoContext(ctx, "booking lifecycle notification", attrs...)
	return nil
}
