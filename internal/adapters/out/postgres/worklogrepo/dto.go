// Package worklogrepo provides data transfer objects and mapping functions
// for workflow record persistence. One row exists per order and location pair.
package worklogrepo

import (
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/worklog"

	"github.com/google/uuid"
)

// WorkLogDTO represents the database structure for persisting workflow records.
// The (order, location) pair is unique; status and queue position are indexed
// for the queue reads that drive every enqueue and re-pack.
type WorkLogDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID           uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_work_logs_order_location"`
	LocationID        uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_work_logs_order_location;index:idx_work_logs_location_status"`
	Status            int       `gorm:"index:idx_work_logs_location_status"`
	QueuePosition     *int
	CompletedQuantity int
	StartedAt         *time.Time
	CompletedAt       *time.Time
}

// TableName specifies the database table name for workflow records.
func (WorkLogDTO) TableName() string {
	return "work_logs"
}

func fromDomain(aggregate *worklog.WorkLog) WorkLogDTO {
	return WorkLogDTO{
		ID:                aggregate.ID().Bytes(),
		OrderID:           aggregate.OrderID().Bytes(),
		LocationID:        aggregate.LocationID().Bytes(),
		Status:            int(aggregate.Status()),
		QueuePosition:     aggregate.QueuePosition(),
		CompletedQuantity: aggregate.CompletedQuantity(),
		StartedAt:         aggregate.StartedAt(),
		CompletedAt:       aggregate.CompletedAt(),
	}
}

func toDomain(dto WorkLogDTO) (*worklog.WorkLog, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	locationID, err := kernel.UUIDFromBytes(dto.LocationID[:])
	if err != nil {
		return nil, err
	}

	return worklog.RestoreWorkLog(
		id,
		orderID,
		locationID,
		worklog.Status(dto.Status),
		dto.QueuePosition,
		dto.CompletedQuantity,
		dto.StartedAt,
		dto.CompletedAt,
	)
}
