package queries

import (
	"context"
	"database/sql"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/order"
	"workshop/internal/core/domain/model/worklog"
	"workshop/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderBoardQueryHandler assembles the production board from the database.
// Completion and readiness come from the domain calculator; location rows
// carry display accounting (count multiplier, no-count suppression).
type GetOrderBoardQueryHandler struct {
	db         *gorm.DB
	calculator services.ReadinessCalculator
}

// NewGetOrderBoardQueryHandler creates a handler for production board queries.
// Requires a GORM database connection for query execution.
func NewGetOrderBoardQueryHandler(db *gorm.DB) GetOrderBoardQueryHandler {
	return GetOrderBoardQueryHandler{
		db:         db,
		calculator: services.NewReadinessCalculator(),
	}
}

// Handle executes the board query: all unshipped orders with their workflow
// rows, sorted rush first, then global rank, then order number.
func (h GetOrderBoardQueryHandler) Handle(
	ctx context.Context,
	query GetOrderBoardQuery,
) ([]OrderBoardItem, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items, index, err := h.loadOrders(ctx)
	if err != nil {
		return nil, err
	}

	if err = h.loadWorkRows(ctx, items, index); err != nil {
		return nil, err
	}

	SortOrderBoard(items)
	return items, nil
}

func (h GetOrderBoardQueryHandler) loadOrders(ctx context.Context) ([]OrderBoardItem, map[kernel.UUID]int, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_number,
			reference_number,
			client,
			due_date,
			total_quantity,
			shipped_quantity,
			partially_shipped,
			rush,
			rush_set_at,
			global_queue_position
		FROM orders
		WHERE is_shipped = false
	`).Rows()
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	items := make([]OrderBoardItem, 0)
	index := make(map[kernel.UUID]int)

	for rows.Next() {
		var item OrderBoardItem
		var id uuid.UUID
		var rushSetAt sql.NullTime
		var globalPos sql.NullInt64

		err = rows.Scan(
			&id,
			&item.OrderNumber,
			&item.ReferenceNumber,
			&item.Client,
			&item.DueDate,
			&item.TotalQuantity,
			&item.ShippedQuantity,
			&item.PartiallyShipped,
			&item.Rush,
			&rushSetAt,
			&globalPos,
		)
		if err != nil {
			return nil, nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, nil, idErr
		}
		item.ID = orderID
		if rushSetAt.Valid {
			at := rushSetAt.Time
			item.RushSetAt = &at
		}
		if globalPos.Valid {
			pos := int(globalPos.Int64)
			item.GlobalQueuePosition = &pos
		}

		index[item.ID] = len(items)
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	return items, index, nil
}

func (h GetOrderBoardQueryHandler) loadWorkRows(
	ctx context.Context,
	items []OrderBoardItem,
	index map[kernel.UUID]int,
) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			w.id,
			w.order_id,
			w.location_id,
			w.status,
			w.queue_position,
			w.completed_quantity,
			w.started_at,
			w.completed_at,
			l.name,
			l.count_multiplier,
			l.no_count
		FROM work_logs w
		JOIN locations l ON l.id = w.location_id
		JOIN orders o ON o.id = w.order_id
		WHERE o.is_shipped = false
		ORDER BY l.used_order, l.name
	`).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	entries := make(map[kernel.UUID][]*worklog.WorkLog)

	for rows.Next() {
		var id, orderIDRaw, locationIDRaw uuid.UUID
		var status int
		var queuePos sql.NullInt64
		var completedQuantity int
		var startedAt, completedAt sql.NullTime
		var locationName string
		var countMultiplier float64
		var noCount bool

		err = rows.Scan(
			&id,
			&orderIDRaw,
			&locationIDRaw,
			&status,
			&queuePos,
			&completedQuantity,
			&startedAt,
			&completedAt,
			&locationName,
			&countMultiplier,
			&noCount,
		)
		if err != nil {
			return err
		}

		wl, restoreErr := restoreWorkLogRow(
			id, orderIDRaw, locationIDRaw, status, queuePos, completedQuantity, startedAt, completedAt)
		if restoreErr != nil {
			return restoreErr
		}

		i, ok := index[wl.OrderID()]
		if !ok {
			continue
		}

		row := OrderBoardLocation{
			LocationID:        wl.LocationID(),
			LocationName:      locationName,
			Status:            wl.Status().String(),
			QueuePosition:     wl.QueuePosition(),
			CompletedQuantity: wl.CompletedQuantity(),
		}
		if !noCount {
			effective := float64(wl.CompletedQuantity()) * countMultiplier
			row.EffectiveQuantity = &effective
		}
		items[i].Locations = append(items[i].Locations, row)
		entries[wl.OrderID()] = append(entries[wl.OrderID()], wl)
	}
	if err = rows.Err(); err != nil {
		return err
	}

	for i := range items {
		ordEntries := entries[items[i].ID]
		items[i].Completion = h.calculator.Completion(items[i].TotalQuantity, ordEntries)

		ord, restoreErr := order.RestoreOrder(
			items[i].ID,
			items[i].OrderNumber,
			items[i].ReferenceNumber,
			items[i].Client,
			items[i].DueDate,
			items[i].TotalQuantity,
			items[i].ShippedQuantity,
			false,
			items[i].PartiallyShipped,
			items[i].Rush,
			items[i].RushSetAt,
			items[i].GlobalQueuePosition,
		)
		if restoreErr != nil {
			return restoreErr
		}
		items[i].Readiness = h.calculator.Readiness(ord, ordEntries).String()
	}

	return nil
}

// restoreWorkLogRow rebuilds a workflow record from scanned row values.
func restoreWorkLogRow(
	id uuid.UUID,
	orderIDRaw uuid.UUID,
	locationIDRaw uuid.UUID,
	status int,
	queuePos sql.NullInt64,
	completedQuantity int,
	startedAt sql.NullTime,
	completedAt sql.NullTime,
) (*worklog.WorkLog, error) {
	recordID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(orderIDRaw[:])
	if err != nil {
		return nil, err
	}
	locationID, err := kernel.UUIDFromBytes(locationIDRaw[:])
	if err != nil {
		return nil, err
	}

	var position *int
	if queuePos.Valid {
		pos := int(queuePos.Int64)
		position = &pos
	}
	var started, completed *time.Time
	if startedAt.Valid {
		at := startedAt.Time
		started = &at
	}
	if completedAt.Valid {
		at := completedAt.Time
		completed = &at
	}

	return worklog.RestoreWorkLog(
		recordID, orderID, locationID, worklog.Status(status),
		position, completedQuantity, started, completed)
}
