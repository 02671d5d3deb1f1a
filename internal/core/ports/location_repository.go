package ports

import (
	"context"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/location"
)

// LocationRepository defines the persistence contract for work locations.
type LocationRepository interface {
	// Add persists a new location.
	Add(ctx context.Context, aggregate *location.Location) error

	// Update persists changes to an existing location.
	Update(ctx context.Context, aggregate *location.Location) error

	// Get retrieves a location by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*location.Location, error)

	// GetAll retrieves every location ordered by its processing sequence.
	GetAll(ctx context.Context) ([]*location.Location, error)

	// GetAllAutoQueue retrieves the locations that take part in automatic
	// enqueueing of new orders, ordered by processing sequence.
	GetAllAutoQueue(ctx context.Context) ([]*location.Location, error)
}
