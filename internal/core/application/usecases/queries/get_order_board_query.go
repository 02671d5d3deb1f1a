// Package queries contains read-side operations of the CQRS split. Handlers
// read the database directly with raw SQL and assemble response models; the
// write-side aggregates are never loaded here.
package queries

import (
	"errors"
	"sort"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var ErrGetOrderBoardQueryIsNotConstructed = errors.New(
	"GetOrderBoardQuery must be created via NewGetOrderBoardQuery constructor",
)

// GetOrderBoardQuery retrieves the production board: every unshipped order
// with its completion percentage, readiness, and per-location progress.
//
// Example:
//
//	query := NewGetOrderBoardQuery()
//	handler := NewGetOrderBoardQueryHandler(db)
//
//	board, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to load the board: %w", err)
//	}
//	for _, item := range board {
//	    fmt.Printf("%s %d%% %s\n", item.OrderNumber, item.Completion, item.Readiness)
//	}
type GetOrderBoardQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrderBoardQuery creates a query for the production board.
// This is a parameterless query over all unshipped orders.
func NewGetOrderBoardQuery() GetOrderBoardQuery {
	return GetOrderBoardQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrderBoardQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderBoardQueryIsNotConstructed)
}

// OrderBoardLocation is one location's progress row on the board. Effective
// quantity applies the location's count multiplier; it is nil for locations
// that do not track counts.
type OrderBoardLocation struct {
	LocationID        kernel.UUID
	LocationName      string
	Status            string
	QueuePosition     *int
	CompletedQuantity int
	EffectiveQuantity *float64
}

// OrderBoardItem is one order's row on the production board.
type OrderBoardItem struct {
	ID                  kernel.UUID
	OrderNumber         string
	ReferenceNumber     string
	Client              string
	DueDate             time.Time
	TotalQuantity       int
	ShippedQuantity     int
	PartiallyShipped    bool
	Rush                bool
	RushSetAt           *time.Time
	GlobalQueuePosition *int
	Completion          int
	Readiness           string
	Locations           []OrderBoardLocation
}

// SortOrderBoard orders board items for display: rush orders first (earliest
// flagged wins), then global queue rank ascending with unranked orders last,
// then order number as the stable tiebreak.
func SortOrderBoard(items []OrderBoardItem) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]

		if a.Rush != b.Rush {
			return a.Rush
		}
		if a.Rush && b.Rush && a.RushSetAt != nil && b.RushSetAt != nil && !a.RushSetAt.Equal(*b.RushSetAt) {
			return a.RushSetAt.Before(*b.RushSetAt)
		}

		switch {
		case a.GlobalQueuePosition != nil && b.GlobalQueuePosition != nil:
			if *a.GlobalQueuePosition != *b.GlobalQueuePosition {
				return *a.GlobalQueuePosition < *b.GlobalQueuePosition
			}
		case a.GlobalQueuePosition != nil:
			return true
		case b.GlobalQueuePosition != nil:
			return false
		}

		return a.OrderNumber < b.OrderNumber
	})
}
