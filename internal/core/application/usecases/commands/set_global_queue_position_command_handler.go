package commands

import (
	"context"
	"fmt"

	"workshop/internal/core/domain/model/audit"
	"workshop/internal/core/domain/services"
)

// SetGlobalQueuePositionCommandHandler ranks an order in the global queue.
// The whole ranked set is renumbered densely in one transaction so positions
// never duplicate or gap.
type SetGlobalQueuePositionCommandHandler struct {
	uowFactory OrderUoWFactory
	planner    services.QueuePlanner
}

// NewSetGlobalQueuePositionCommandHandler creates a handler for global ranking.
func NewSetGlobalQueuePositionCommandHandler(uowFactory OrderUoWFactory) SetGlobalQueuePositionCommandHandler {
	return SetGlobalQueuePositionCommandHandler{
		uowFactory: uowFactory,
		planner:    services.NewQueuePlanner(),
	}
}

// Handle processes the ranking command. Only managers and admins may reorder
// the global queue. Requested positions past the tail land at the tail;
// positions below 1 fail with services.ErrQueuePositionOutOfRange.
func (h SetGlobalQueuePositionCommandHandler) Handle(
	ctx context.Context,
	cmd SetGlobalQueuePositionCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Actor().Role().CanManageQueues() {
		return fmt.Errorf("%w: role %s cannot reorder the global queue",
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

	ranked, err := orderRepo.GetAllInGlobalQueue(ctx)
	if err != nil {
		return err
	}

	if err = h.planner.PlanGlobalInsert(ranked, target, cmd.Position()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, target); err != nil {
		return err
	}
	for _, ord := range ranked {
		if ord.IsEqual(target) {
			continue
		}
		if err = orderRepo.Update(ctx, ord); err != nil {
			return err
		}
	}

	details := fmt.Sprintf("order %s moved to global queue position %d",
		target.OrderNumber(), *target.GlobalQueuePosition())
	if err = appendAudit(ctx, uow.AuditRepository(),
		audit.ActionUpdated, cmd.Actor(), target.ID(), nil, details); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
