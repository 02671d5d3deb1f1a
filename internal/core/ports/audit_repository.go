package ports

import (
	"context"

	"workshop/internal/core/domain/model/audit"
	"workshop/internal/core/domain/model/kernel"
)

// AuditRepository defines the persistence contract for the audit trail.
// Entries are append only; there is no update or delete.
type AuditRepository interface {
	// Add persists a new audit entry.
	Add(ctx context.Context, entry *audit.Entry) error

	// GetAllByOrder retrieves an order's audit trail, newest first.
	GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*audit.Entry, error)
}
