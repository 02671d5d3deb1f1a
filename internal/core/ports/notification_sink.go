package ports

import (
	"context"

	"workshop/internal/core/domain/model/kernel"
)

// NotificationKind identifies what event a notification reports.
type NotificationKind string

const (
	NotificationHelpRequested NotificationKind = "help_requested"
	NotificationOrderShipped  NotificationKind = "order_shipped"
	NotificationDueSoon       NotificationKind = "due_soon"
)

// Notification is an outbound operational alert raised by the core.
type Notification struct {
	Kind        NotificationKind
	OrderID     kernel.UUID
	OrderNumber string
	LocationID  *kernel.UUID
	Message     string
}

// NotificationSink carries notifications out of the core. Delivery is
// fire-and-forget: handlers log sink errors and never fail a command on them.
type NotificationSink interface {
	Notify(ctx context.Context, notification Notification) error
}
