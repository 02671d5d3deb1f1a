package commands

import (
	"context"
	"fmt"
	"time"

	"workshop/internal/core/domain/model/audit"
)

// EditOrderCommandHandler applies detail changes to an existing order.
// Total quantity can only shrink down to what has already shipped; the
// aggregate rejects anything lower.
type EditOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewEditOrderCommandHandler creates a handler for order edit operations.
func NewEditOrderCommandHandler(uowFactory OrderUoWFactory) EditOrderCommandHandler {
	return EditOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the edit command: loads the order, applies detail and rush
// changes, and records the audit entry in the same transaction.
func (h EditOrderCommandHandler) Handle(ctx context.Context, cmd EditOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	ord, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = ord.ChangeDetails(cmd.Client(), cmd.DueDate(), cmd.TotalQuantity()); err != nil {
		return err
	}

	switch {
	case cmd.Rush() && !ord.Rush():
		ord.SetRush(time.Now())
	case !cmd.Rush() && ord.Rush():
		ord.ClearRush()
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return err
	}

	details := fmt.Sprintf("order %s updated: client %s, %d units, due %s",
		ord.OrderNumber(), ord.Client(), ord.TotalQuantity(), ord.DueDate().Format("2006-01-02"))
	if err = appendAudit(ctx, uow.AuditRepository(),
		audit.ActionUpdated, cmd.Actor(), ord.ID(), nil, details); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
