package commands

import (
	"context"
	"fmt"
	"log/slog"

	"workshop/internal/core/domain/model/audit"
	"workshop/internal/core/ports"
)

// ShipOrderCommandHandler records shipments against an order. Partial
// shipments accumulate; the final shipment marks the order shipped and raises
// an outbound notification.
type ShipOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	sink       ports.NotificationSink
	logger     *slog.Logger
}

// NewShipOrderCommandHandler creates a handler for shipment operations.
func NewShipOrderCommandHandler(uowFactory OrderUoWFactory, sink ports.NotificationSink) ShipOrderCommandHandler {
	return ShipOrderCommandHandler{
		uowFactory: uowFactory,
		sink:       sink,
		logger:     slog.Default().With("component", "ship_order"),
	}
}

// Handle processes the shipment. The state change and audit entry commit
// together; the shipped notification fires only after commit and never fails
// the command.
func (h ShipOrderCommandHandler) Handle(ctx context.Context, cmd ShipOrderCommand) error {
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

	if err = ord.Ship(cmd.Quantity()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return err
	}

	details := fmt.Sprintf("shipped %d of %d units of order %s",
		cmd.Quantity(), ord.TotalQuantity(), ord.OrderNumber())
	if err = appendAudit(ctx, uow.AuditRepository(),
		audit.ActionShipped, cmd.Actor(), ord.ID(), nil, details); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if ord.IsShipped() {
		notification := ports.Notification{
			Kind:        ports.NotificationOrderShipped,
			OrderID:     ord.ID(),
			OrderNumber: ord.OrderNumber(),
			Message:     fmt.Sprintf("order %s fully shipped", ord.OrderNumber()),
		}
		if notifyErr := h.sink.Notify(ctx, notification); notifyErr != nil {
			h.logger.Warn("shipped notification failed",
				"order_id", ord.ID().String(), "error", notifyErr)
		}
	}

	return nil
}
