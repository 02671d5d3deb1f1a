// Package ports defines the contracts between the application core and
// infrastructure. Repositories persist aggregates, the unit of work scopes
// them to a transaction, and the notification sink carries outbound alerts.
package ports

import (
	"context"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllInGlobalQueue retrieves every order holding a global queue rank,
	// ordered by rank ascending.
	GetAllInGlobalQueue(ctx context.Context) ([]*order.Order, error)

	// GetAllDueBefore retrieves unshipped orders whose due date falls before
	// the given instant. Used by the due date reminder job.
	GetAllDueBefore(ctx context.Context, deadline time.Time) ([]*order.Order, error)
}
