package queries

import (
	"context"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/worklog"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetNeededOrdersQueryHandler lists (order, primary location) pairs where the
// order has no workflow record yet or it has not progressed past the queue.
type GetNeededOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetNeededOrdersQueryHandler creates a handler for needed order queries.
// Requires a GORM database connection for query execution.
func NewGetNeededOrdersQueryHandler(db *gorm.DB) GetNeededOrdersQueryHandler {
	return GetNeededOrdersQueryHandler{db: db}
}

// Handle executes the query. A missing record counts the same as a record that
// never left the queue.
func (h GetNeededOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetNeededOrdersQuery,
) ([]GetNeededOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	needed := make([]GetNeededOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.order_number,
			o.client,
			o.due_date,
			o.rush,
			l.id,
			l.name
		FROM orders o
		CROSS JOIN locations l
		LEFT JOIN work_logs w ON w.order_id = o.id AND w.location_id = l.id
		WHERE o.is_shipped = false
		  AND l.is_primary = true
		  AND (w.id IS NULL OR w.status IN (?, ?))
		ORDER BY o.rush DESC, o.due_date, o.order_number, l.used_order
	`, worklog.NotStarted, worklog.InQueue).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry GetNeededOrdersQueryResponse
		var orderIDRaw, locationIDRaw uuid.UUID

		err = rows.Scan(
			&orderIDRaw,
			&entry.OrderNumber,
			&entry.Client,
			&entry.DueDate,
			&entry.Rush,
			&locationIDRaw,
			&entry.LocationName,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(orderIDRaw[:])
		if idErr != nil {
			return nil, idErr
		}
		locationID, idErr := kernel.UUIDFromBytes(locationIDRaw[:])
		if idErr != nil {
			return nil, idErr
		}
		entry.OrderID = orderID
		entry.LocationID = locationID
		needed = append(needed, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return needed, nil
}
