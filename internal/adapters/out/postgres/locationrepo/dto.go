// Package locationrepo provides data transfer objects and mapping functions
// for work location persistence.
package locationrepo

import (
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/location"

	"github.com/google/uuid"
)

// LocationDTO represents the database structure for persisting locations.
type LocationDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name            string    `gorm:"uniqueIndex"`
	UsedOrder       int
	IsPrimary       bool
	SkipAutoQueue   bool
	CountMultiplier float64
	NoCount         bool
}

// TableName specifies the database table name for location entities.
func (LocationDTO) TableName() string {
	return "locations"
}

func fromDomain(aggregate *location.Location) LocationDTO {
	return LocationDTO{
		ID:              aggregate.ID().Bytes(),
		Name:            aggregate.Name(),
		UsedOrder:       aggregate.UsedOrder(),
		IsPrimary:       aggregate.IsPrimary(),
		SkipAutoQueue:   aggregate.SkipAutoQueue(),
		CountMultiplier: aggregate.CountMultiplier(),
		NoCount:         aggregate.NoCount(),
	}
}

func toDomain(dto LocationDTO) (*location.Location, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return location.RestoreLocation(
		id,
		dto.Name,
		dto.UsedOrder,
		dto.IsPrimary,
		dto.SkipAutoQueue,
		dto.CountMultiplier,
		dto.NoCount,
	)
}
