// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It converts between the order aggregate and its
// relational representation.
package orderrepo

import (
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed for the two hot lookups: the unshipped board and the global queue.
type OrderDTO struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderNumber         string    `gorm:"uniqueIndex"`
	ReferenceNumber     string
	Client              string
	DueDate             time.Time
	TotalQuantity       int
	ShippedQuantity     int
	IsShipped           bool `gorm:"index"`
	PartiallyShipped    bool
	Rush                bool
	RushSetAt           *time.Time
	GlobalQueuePosition *int `gorm:"index"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:                  aggregate.ID().Bytes(),
		OrderNumber:         aggregate.OrderNumber(),
		ReferenceNumber:     aggregate.ReferenceNumber(),
		Client:              aggregate.Client(),
		DueDate:             aggregate.DueDate(),
		TotalQuantity:       aggregate.TotalQuantity(),
		ShippedQuantity:     aggregate.ShippedQuantity(),
		IsShipped:           aggregate.IsShipped(),
		PartiallyShipped:    aggregate.PartiallyShipped(),
		Rush:                aggregate.Rush(),
		RushSetAt:           aggregate.RushSetAt(),
		GlobalQueuePosition: aggregate.GlobalQueuePosition(),
	}
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.OrderNumber,
		dto.ReferenceNumber,
		dto.Client,
		dto.DueDate,
		dto.TotalQuantity,
		dto.ShippedQuantity,
		dto.IsShipped,
		dto.PartiallyShipped,
		dto.Rush,
		dto.RushSetAt,
		dto.GlobalQueuePosition,
	)
}
