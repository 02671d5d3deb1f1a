package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"workshop/internal/core/domain/model/audit"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/ports"
)

var (
	// ErrAuditWriteFailed wraps any failure to append the audit entry of a
	// command. Handlers treat it like any other error: the deferred rollback
	// discards the whole command, so no state change ever lands unaudited.
	ErrAuditWriteFailed = errors.New("audit write failed")

	// ErrActorNotPermitted is returned when the acting user's role does not
	// allow the requested operation.
	ErrActorNotPermitted = errors.New("actor is not permitted to perform this operation")
)

// appendAudit records one audit entry for a command inside its transaction.
func appendAudit(
	ctx context.Context,
	repo ports.AuditRepository,
	action audit.Action,
	actor kernel.Actor,
	orderID kernel.UUID,
	locationID *kernel.UUID,
	details string,
) error {
	entry, err := audit.NewEntry(
		kernel.NewUUID(),
		action,
		actor.UserID(),
		orderID,
		locationID,
		details,
		time.Now(),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrAuditWriteFailed, err)
	}

	if err = repo.Add(ctx, entry); err != nil {
		return fmt.Errorf("%w: %w", ErrAuditWriteFailed, err)
	}
	return nil
}
