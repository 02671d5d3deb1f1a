package commands

import (
	"context"
	"fmt"
	"time"

	"workshop/internal/core/domain/model/audit"
)

// FinishAtLocationCommandHandler completes work on an order at a location.
// The completed quantity is bounded by the order's total, so the handler
// loads the order alongside the workflow record.
type FinishAtLocationCommandHandler struct {
	uowFactory UoWFactory
}

// NewFinishAtLocationCommandHandler creates a handler for finish operations.
func NewFinishAtLocationCommandHandler(uowFactory UoWFactory) FinishAtLocationCommandHandler {
	return FinishAtLocationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the finish command. Done is terminal; finishing twice
// fails with worklog.ErrInvalidTransition.
func (h FinishAtLocationCommandHandler) Handle(ctx context.Context, cmd FinishAtLocationCommand) error {
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

	ord, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	workLogRepo := uow.WorkLogRepository()
	wl, err := workLogRepo.GetByOrderAndLocation(ctx, ord.ID(), cmd.LocationID())
	if err != nil {
		return err
	}

	if err = wl.Finish(cmd.Quantity(), ord.TotalQuantity(), time.Now()); err != nil {
		return err
	}

	if err = workLogRepo.Update(ctx, wl); err != nil {
		return err
	}

	locID := cmd.LocationID()
	details := fmt.Sprintf("work finished on order %s, %d of %d units",
		ord.OrderNumber(), wl.CompletedQuantity(), ord.TotalQuantity())
	if err = appendAudit(ctx, uow.AuditRepository(),
		audit.ActionFinished, cmd.Actor(), ord.ID(), &locID, details); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
