package queries

import (
	"context"

	"workshop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAuditTrailQueryHandler reads an order's audit entries newest first.
type GetAuditTrailQueryHandler struct {
	db *gorm.DB
}

// NewGetAuditTrailQueryHandler creates a handler for audit trail queries.
// Requires a GORM database connection for query execution.
func NewGetAuditTrailQueryHandler(db *gorm.DB) GetAuditTrailQueryHandler {
	return GetAuditTrailQueryHandler{db: db}
}

// Handle executes the audit trail query.
func (h GetAuditTrailQueryHandler) Handle(
	ctx context.Context,
	query GetAuditTrailQuery,
) ([]GetAuditTrailQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	trail := make([]GetAuditTrailQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			action,
			actor_id,
			location_id,
			details,
			recorded_at
		FROM audit_entries
		WHERE order_id = ?
		ORDER BY recorded_at DESC, id
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry GetAuditTrailQueryResponse
		var id uuid.UUID
		var actorID, locationID uuid.NullUUID

		err = rows.Scan(
			&id,
			&entry.Action,
			&actorID,
			&locationID,
			&entry.Details,
			&entry.RecordedAt,
		)
		if err != nil {
			return nil, err
		}

		entryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		entry.ID = entryID

		if actorID.Valid {
			actor, actorErr := kernel.UUIDFromBytes(actorID.UUID[:])
			if actorErr != nil {
				return nil, actorErr
			}
			entry.ActorID = &actor
		}
		if locationID.Valid {
			loc, locErr := kernel.UUIDFromBytes(locationID.UUID[:])
			if locErr != nil {
				return nil, locErr
			}
			entry.LocationID = &loc
		}

		trail = append(trail, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return trail, nil
}
