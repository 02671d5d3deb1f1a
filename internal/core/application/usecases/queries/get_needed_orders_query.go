package queries

import (
	"errors"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var ErrGetNeededOrdersQueryIsNotConstructed = errors.New(
	"GetNeededOrdersQuery must be created via NewGetNeededOrdersQuery constructor",
)

// GetNeededOrdersQuery retrieves the orders that still need processing at a
// primary location. This is an advisory view for planning, not an enforced
// lock on downstream locations.
type GetNeededOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetNeededOrdersQuery creates a query for orders needing primary processing.
func NewGetNeededOrdersQuery() GetNeededOrdersQuery {
	return GetNeededOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetNeededOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetNeededOrdersQueryIsNotConstructed)
}

// GetNeededOrdersQueryResponse is one order awaiting work at one primary location.
type GetNeededOrdersQueryResponse struct {
	OrderID      kernel.UUID
	OrderNumber  string
	Client       string
	DueDate      time.Time
	Rush         bool
	LocationID   kernel.UUID
	LocationName string
}
