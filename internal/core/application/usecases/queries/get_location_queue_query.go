package queries

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var ErrGetLocationQueueQueryIsNotConstructed = errors.New(
	"GetLocationQueueQuery must be created via NewGetLocationQueueQuery constructor",
)

// GetLocationQueueQuery retrieves the ordered processing queue of one location.
type GetLocationQueueQuery struct {
	locationID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetLocationQueueQuery creates a query for a location's queue.
func NewGetLocationQueueQuery(locationID kernel.UUID) (GetLocationQueueQuery, error) {
	if err := locationID.Validate(); err != nil {
		return GetLocationQueueQuery{}, err
	}

	return GetLocationQueueQuery{
		locationID: locationID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetLocationQueueQuery) Validate() error {
	return q.guard.Validate(ErrGetLocationQueueQueryIsNotConstructed)
}

// LocationID returns the identifier of the location whose queue is requested.
func (q GetLocationQueueQuery) LocationID() kernel.UUID {
	return q.locationID
}

// GetLocationQueueQueryResponse is one queued order at the location.
type GetLocationQueueQueryResponse struct {
	OrderID       kernel.UUID
	OrderNumber   string
	Client        string
	Rush          bool
	QueuePosition int
}
