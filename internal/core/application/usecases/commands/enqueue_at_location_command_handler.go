package commands

import (
	"context"
	"errors"
	"fmt"

	"workshop/internal/core/domain/model/audit"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/worklog"
	"workshop/internal/core/domain/services"
	"workshop/internal/pkg/errs"
)

// EnqueueAtLocationCommandHandler places an order at the tail of a location's
// queue. The workflow record is created on first contact with the location.
type EnqueueAtLocationCommandHandler struct {
	uowFactory UoWFactory
	planner    services.QueuePlanner
}

// NewEnqueueAtLocationCommandHandler creates a handler for enqueue operations.
func NewEnqueueAtLocationCommandHandler(uowFactory UoWFactory) EnqueueAtLocationCommandHandler {
	return EnqueueAtLocationCommandHandler{
		uowFactory: uowFactory,
		planner:    services.NewQueuePlanner(),
	}
}

// Handle processes the enqueue command. The record lands one past the current
// queue tail; re-enqueueing a record that is already queued or in progress
// fails with worklog.ErrInvalidTransition.
func (h EnqueueAtLocationCommandHandler) Handle(ctx context.Context, cmd EnqueueAtLocationCommand) error {
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

	loc, err := uow.LocationRepository().Get(ctx, cmd.LocationID())
	if err != nil {
		return err
	}

	workLogRepo := uow.WorkLogRepository()
	wl, err := workLogRepo.GetByOrderAndLocation(ctx, ord.ID(), loc.ID())
	isNew := false
	if err != nil {
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return err
		}
		wl, err = worklog.NewWorkLog(kernel.NewUUID(), ord.ID(), loc.ID())
		if err != nil {
			return err
		}
		isNew = true
	}

	queued, err := workLogRepo.GetQueuedByLocation(ctx, loc.ID())
	if err != nil {
		return err
	}

	if err = wl.Enqueue(h.planner.NextPosition(queued)); err != nil {
		return err
	}

	if isNew {
		err = workLogRepo.Add(ctx, wl)
	} else {
		err = workLogRepo.Update(ctx, wl)
	}
	if err != nil {
		return err
	}

	locID := loc.ID()
	details := fmt.Sprintf("order %s queued at %s, position %d",
		ord.OrderNumber(), loc.Name(), *wl.QueuePosition())
	if err = appendAudit(ctx, uow.AuditRepository(),
		audit.ActionUpdated, cmd.Actor(), ord.ID(), &locID, details); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
