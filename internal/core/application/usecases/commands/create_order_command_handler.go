package commands

import (
	"context"
	"fmt"
	"time"

	"workshop/internal/core/domain/model/audit"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/order"
	"workshop/internal/core/domain/model/worklog"
	"workshop/internal/core/domain/services"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Creates the order and automatically enqueues it at every location that takes
// part in auto-queueing, each at that location's queue tail.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	planner    services.QueuePlanner
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a UoWFactory because creation touches orders, locations, and
// workflow records in one transaction.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		planner:    services.NewQueuePlanner(),
	}
}

// Handle processes the order creation command. The order, its workflow records,
// and the audit entry are persisted atomically or not at all.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	ord, err := order.NewOrder(
		cmd.OrderID(),
		cmd.OrderNumber(),
		cmd.ReferenceNumber(),
		cmd.Client(),
		cmd.DueDate(),
		cmd.TotalQuantity(),
	)
	if err != nil {
		return err
	}
	if cmd.Rush() {
		ord.SetRush(time.Now())
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, ord); err != nil {
		return err
	}

	locations, err := uow.LocationRepository().GetAllAutoQueue(ctx)
	if err != nil {
		return err
	}

	workLogRepo := uow.WorkLogRepository()
	for _, loc := range locations {
		wl, wlErr := worklog.NewWorkLog(kernel.NewUUID(), ord.ID(), loc.ID())
		if wlErr != nil {
			return wlErr
		}

		queued, queueErr := workLogRepo.GetQueuedByLocation(ctx, loc.ID())
		if queueErr != nil {
			return queueErr
		}

		if wlErr = wl.Enqueue(h.planner.NextPosition(queued)); wlErr != nil {
			return wlErr
		}

		if wlErr = workLogRepo.Add(ctx, wl); wlErr != nil {
			return wlErr
		}
	}

	details := fmt.Sprintf("order %s created for %s, %d units",
		ord.OrderNumber(), ord.Client(), ord.TotalQuantity())
	if err = appendAudit(ctx, uow.AuditRepository(),
		audit.ActionCreated, cmd.Actor(), ord.ID(), nil, details); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
