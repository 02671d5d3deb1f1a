package commands

import (
	"context"
	"fmt"

	"workshop/internal/core/domain/model/audit"
)

// PauseAtLocationCommandHandler suspends active work on an order at a
// location. Progress made so far stays on the record.
type PauseAtLocationCommandHandler struct {
	uowFactory WorkLogUoWFactory
}

// NewPauseAtLocationCommandHandler creates a handler for pause operations.
func NewPauseAtLocationCommandHandler(uowFactory WorkLogUoWFactory) PauseAtLocationCommandHandler {
	return PauseAtLocationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the pause command.
func (h PauseAtLocationCommandHandler) Handle(ctx context.Context, cmd PauseAtLocationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	workLogRepo := uow.WorkLogRepository()
	wl, err := workLogRepo.GetByOrderAndLocation(ctx, cmd.OrderID(), cmd.LocationID())
	if err != nil {
		return err
	}

	if err = wl.Pause(); err != nil {
		return err
	}

	if err = workLogRepo.Update(ctx, wl); err != nil {
		return err
	}

	locID := cmd.LocationID()
	details := fmt.Sprintf("work paused on order %s at %d units", cmd.OrderID(), wl.CompletedQuantity())
	if err = appendAudit(ctx, uow.AuditRepository(),
		audit.ActionPaused, cmd.Actor(), cmd.OrderID(), &locID, details); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
