// Package notify provides NotificationSink implementations. The workshop
// runs a single delivery mechanism today: structured logs scraped by the
// floor dashboard.
package notify

import (
	"context"
	"log/slog"

	"workshop/internal/core/ports"
	"workshop/internal/pkg/errs"
)

var _ ports.NotificationSink = &SlogNotifier{}

// SlogNotifier emits notifications as structured log records.
type SlogNotifier struct {
	logger *slog.Logger
}

func NewSlogNotifier(logger *slog.Logger) (*SlogNotifier, error) {
	if logger == nil {
		return nil, errs.NewValueIsRequiredError("logger")
	}
	return &SlogNotifier{logger: logger}, nil
}

func (n *SlogNotifier) Notify(ctx context.Context, notification ports.Notification) error {
	attrs := []any{
		"kind", string(notification.Kind),
		"order_id", notification.OrderID.String(),
		"order_number", notification.OrderNumber,
		"message", notification.Message,
	}
	if notification.LocationID != nil {
		attrs = append(attrs, "location_id", notification.LocationID.String())
	}
	n.logger.InfoContext(ctx, "notification", attrs...)
	return nil
}
