package commands

import (
	"context"
	"fmt"
	"time"

	"workshop/internal/core/domain/model/audit"
	"workshop/internal/core/domain/model/worklog"
	"workshop/internal/core/domain/services"
)

// StartAtLocationCommandHandler moves a workflow record into InProgress.
// Starting from the queue pulls the record out and re-packs the remaining
// queue positions densely. A concurrent second start observes InProgress and
// fails with worklog.ErrInvalidTransition.
type StartAtLocationCommandHandler struct {
	uowFactory WorkLogUoWFactory
	planner    services.QueuePlanner
}

// NewStartAtLocationCommandHandler creates a handler for start operations.
func NewStartAtLocationCommandHandler(uowFactory WorkLogUoWFactory) StartAtLocationCommandHandler {
	return StartAtLocationCommandHandler{
		uowFactory: uowFactory,
		planner:    services.NewQueuePlanner(),
	}
}

// Handle processes the start command. The record leaves the queue (if it was
// queued), the location's queue is re-packed, and the audit entry commits with
// the state change.
func (h StartAtLocationCommandHandler) Handle(ctx context.Context, cmd StartAtLocationCommand) error {
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

	wasQueued := wl.Status() == worklog.InQueue
	if err = wl.Start(time.Now()); err != nil {
		return err
	}

	if err = workLogRepo.Update(ctx, wl); err != nil {
		return err
	}

	if wasQueued {
		queued, queueErr := workLogRepo.GetQueuedByLocation(ctx, cmd.LocationID())
		if queueErr != nil {
			return queueErr
		}
		if queueErr = h.planner.Repack(queued); queueErr != nil {
			return queueErr
		}
		for _, other := range queued {
			if queueErr = workLogRepo.Update(ctx, other); queueErr != nil {
				return queueErr
			}
		}
	}

	locID := cmd.LocationID()
	details := fmt.Sprintf("work started on order %s", cmd.OrderID())
	if err = appendAudit(ctx, uow.AuditRepository(),
		audit.ActionStarted, cmd.Actor(), cmd.OrderID(), &locID, details); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
