// Package auditrepo provides data transfer objects and mapping functions for
// the append-only audit trail.
package auditrepo

import (
	"time"

	"workshop/internal/core/domain/model/audit"
	"workshop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AuditEntryDTO represents the database structure for persisting audit entries.
// Rows are insert-only; the repository exposes no update or delete.
type AuditEntryDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Action     string
	ActorID    *uuid.UUID `gorm:"type:uuid"`
	OrderID    uuid.UUID  `gorm:"type:uuid;index"`
	LocationID *uuid.UUID `gorm:"type:uuid"`
	Details    string
	RecordedAt time.Time `gorm:"index"`
}

// TableName specifies the database table name for audit entries.
func (AuditEntryDTO) TableName() string {
	return "audit_entries"
}

func fromDomain(entry *audit.Entry) AuditEntryDTO {
	var actorID *uuid.UUID
	if id := entry.ActorID(); id != nil {
		raw := id.Bytes()
		actorID = &raw
	}

	var locationID *uuid.UUID
	if id := entry.LocationID(); id != nil {
		raw := id.Bytes()
		locationID = &raw
	}

	return AuditEntryDTO{
		ID:         entry.ID().Bytes(),
		Action:     entry.Action().String(),
		ActorID:    actorID,
		OrderID:    entry.OrderID().Bytes(),
		LocationID: locationID,
		Details:    entry.Details(),
		RecordedAt: entry.RecordedAt(),
	}
}

func toDomain(dto AuditEntryDTO) (*audit.Entry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	var actorID *kernel.UUID
	if dto.ActorID != nil {
		actor, actorErr := kernel.UUIDFromBytes((*dto.ActorID)[:])
		if actorErr != nil {
			return nil, actorErr
		}
		actorID = &actor
	}

	var locationID *kernel.UUID
	if dto.LocationID != nil {
		loc, locErr := kernel.UUIDFromBytes((*dto.LocationID)[:])
		if locErr != nil {
			return nil, locErr
		}
		locationID = &loc
	}

	return audit.NewEntry(
		id,
		audit.Action(dto.Action),
		actorID,
		orderID,
		locationID,
		dto.Details,
		dto.RecordedAt,
	)
}
