package queries

import (
	"context"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/worklog"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetLocationQueueQueryHandler reads one location's queue in position order.
type GetLocationQueueQueryHandler struct {
	db *gorm.DB
}

// NewGetLocationQueueQueryHandler creates a handler for location queue queries.
// Requires a GORM database connection for query execution.
func NewGetLocationQueueQueryHandler(db *gorm.DB) GetLocationQueueQueryHandler {
	return GetLocationQueueQueryHandler{db: db}
}

// Handle executes the queue query. Positions are dense, so the result comes
// back 1..N with no gaps.
func (h GetLocationQueueQueryHandler) Handle(
	ctx context.Context,
	query GetLocationQueueQuery,
) ([]GetLocationQueueQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	queue := make([]GetLocationQueueQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.order_number,
			o.client,
			o.rush,
			w.queue_position
		FROM work_logs w
		JOIN orders o ON o.id = w.order_id
		WHERE w.location_id = ? AND w.status = ?
		ORDER BY w.queue_position
	`, query.LocationID().Bytes(), worklog.InQueue).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry GetLocationQueueQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&entry.OrderNumber,
			&entry.Client,
			&entry.Rush,
			&entry.QueuePosition,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		entry.OrderID = orderID
		queue = append(queue, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return queue, nil
}
