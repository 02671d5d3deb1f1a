package queries

import (
	"errors"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var ErrGetAuditTrailQueryIsNotConstructed = errors.New(
	"GetAuditTrailQuery must be created via NewGetAuditTrailQuery constructor",
)

// GetAuditTrailQuery retrieves an order's audit trail, newest entry first.
type GetAuditTrailQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAuditTrailQuery creates a query for an order's audit trail.
func NewGetAuditTrailQuery(orderID kernel.UUID) (GetAuditTrailQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetAuditTrailQuery{}, err
	}

	return GetAuditTrailQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAuditTrailQuery) Validate() error {
	return q.guard.Validate(ErrGetAuditTrailQueryIsNotConstructed)
}

// OrderID returns the identifier of the order whose trail is requested.
func (q GetAuditTrailQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetAuditTrailQueryResponse is one recorded workflow event.
type GetAuditTrailQueryResponse struct {
	ID         kernel.UUID
	Action     string
	ActorID    *kernel.UUID
	LocationID *kernel.UUID
	Details    string
	RecordedAt time.Time
}
