package ports

import (
	"context"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/worklog"
)

// WorkLogRepository defines the persistence contract for workflow records,
// one per order and location pair.
type WorkLogRepository interface {
	// Add persists a new workflow record.
	Add(ctx context.Context, aggregate *worklog.WorkLog) error

	// Update persists changes to an existing workflow record.
	Update(ctx context.Context, aggregate *worklog.WorkLog) error

	// Get retrieves a workflow record by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*worklog.WorkLog, error)

	// GetByOrderAndLocation retrieves the record for an order at a location.
	GetByOrderAndLocation(ctx context.Context, orderID kernel.UUID, locationID kernel.UUID) (*worklog.WorkLog, error)

	// GetAllByOrder retrieves every workflow record of an order.
	GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*worklog.WorkLog, error)

	// GetQueuedByLocation retrieves a location's queued records ordered by
	// queue position ascending.
	GetQueuedByLocation(ctx context.Context, locationID kernel.UUID) ([]*worklog.WorkLog, error)

	// GetQueuedByOrder retrieves the order's queued records across all
	// locations. Used when pulling an order out of every queue at once.
	GetQueuedByOrder(ctx context.Context, orderID kernel.UUID) ([]*worklog.WorkLog, error)
}
