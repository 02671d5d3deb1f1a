package commands

import (
	"context"
	"fmt"

	"workshop/internal/core/domain/model/audit"
)

// UpdateQuantityAtLocationCommandHandler records in-flight progress on an
// order at a location without changing its workflow status.
type UpdateQuantityAtLocationCommandHandler struct {
	uowFactory UoWFactory
}

// NewUpdateQuantityAtLocationCommandHandler creates a handler for progress reports.
func NewUpdateQuantityAtLocationCommandHandler(uowFactory UoWFactory) UpdateQuantityAtLocationCommandHandler {
	return UpdateQuantityAtLocationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the progress report. Only active records (InProgress or
// Paused) accept quantity updates.
func (h UpdateQuantityAtLocationCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateQuantityAtLocationCommand,
) error {
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

	if err = wl.UpdateQuantity(cmd.Quantity(), ord.TotalQuantity()); err != nil {
		return err
	}

	if err = workLogRepo.Update(ctx, wl); err != nil {
		return err
	}

	locID := cmd.LocationID()
	details := fmt.Sprintf("progress on order %s: %d of %d units",
		ord.OrderNumber(), wl.CompletedQuantity(), ord.TotalQuantity())
	if err = appendAudit(ctx, uow.AuditRepository(),
		audit.ActionUpdatedQuantity, cmd.Actor(), ord.ID(), &locID, details); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
