package commands

import (
	"context"
	"fmt"

	"workshop/internal/core/domain/model/audit"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/services"
)

// RemoveFromAllQueuesCommandHandler pulls an order out of every queue it
// occupies: the global queue and each location queue. Every affected queue is
// re-packed densely in the same transaction.
type RemoveFromAllQueuesCommandHandler struct {
	uowFactory UoWFactory
	planner    services.QueuePlanner
}

// NewRemoveFromAllQueuesCommandHandler creates a handler for queue removal.
func NewRemoveFromAllQueuesCommandHandler(uowFactory UoWFactory) RemoveFromAllQueuesCommandHandler {
	return RemoveFromAllQueuesCommandHandler{
		uowFactory: uowFactory,
		planner:    services.NewQueuePlanner(),
	}
}

// Handle processes the removal. Only managers and admins may remove an order
// from all queues; workers get ErrActorNotPermitted.
func (h RemoveFromAllQueuesCommandHandler) Handle(ctx context.Context, cmd RemoveFromAllQueuesCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Actor().Role().CanManageQueues() {
		return fmt.Errorf("%w: role %s cannot remove orders from queues",
			ErrActorNotPermitted, cmd.Actor().Role())
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	target, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if target.GlobalQueuePosition() != nil {
		ranked, rankErr := orderRepo.GetAllInGlobalQueue(ctx)
		if rankErr != nil {
			return rankErr
		}
		if rankErr = h.planner.PlanGlobalRemove(ranked, target); rankErr != nil {
			return rankErr
		}
		if rankErr = orderRepo.Update(ctx, target); rankErr != nil {
			return rankErr
		}
		for _, ord := range ranked {
			if ord.IsEqual(target) {
				continue
			}
			if rankErr = orderRepo.Update(ctx, ord); rankErr != nil {
				return rankErr
			}
		}
	}

	workLogRepo := uow.WorkLogRepository()
	queued, err := workLogRepo.GetQueuedByOrder(ctx, target.ID())
	if err != nil {
		return err
	}

	affected := make([]kernel.UUID, 0, len(queued))
	for _, wl := range queued {
		affected = append(affected, wl.LocationID())
		if err = wl.LeaveQueue(); err != nil {
			return err
		}
		if err = workLogRepo.Update(ctx, wl); err != nil {
			return err
		}
	}

	for _, locationID := range affected {
		remaining, queueErr := workLogRepo.GetQueuedByLocation(ctx, locationID)
		if queueErr != nil {
			return queueErr
		}
		if queueErr = h.planner.Repack(remaining); queueErr != nil {
			return queueErr
		}
		for _, wl := range remaining {
			if queueErr = workLogRepo.Update(ctx, wl); queueErr != nil {
				return queueErr
			}
		}
	}

	details := fmt.Sprintf("order %s removed from all queues", target.OrderNumber())
	if err = appendAudit(ctx, uow.AuditRepository(),
		audit.ActionUpdated, cmd.Actor(), target.ID(), nil, details); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
