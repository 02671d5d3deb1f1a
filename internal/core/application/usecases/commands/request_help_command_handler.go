package commands

import (
	"context"
	"fmt"
	"log/slog"

	"workshop/internal/core/domain/model/audit"
	"workshop/internal/core/ports"
)

// RequestHelpCommandHandler records a help request in the audit trail and
// raises a help_requested notification. Workflow state is untouched.
type RequestHelpCommandHandler struct {
	uowFactory UoWFactory
	sink       ports.NotificationSink
	logger     *slog.Logger
}

// NewRequestHelpCommandHandler creates a handler for help requests.
func NewRequestHelpCommandHandler(uowFactory UoWFactory, sink ports.NotificationSink) RequestHelpCommandHandler {
	return RequestHelpCommandHandler{
		uowFactory: uowFactory,
		sink:       sink,
		logger:     slog.Default().With("component", "request_help"),
	}
}

// Handle processes the help request. The audit entry commits first; the
// notification fires after commit and never fails the command.
func (h RequestHelpCommandHandler) Handle(ctx context.Context, cmd RequestHelpCommand) error {
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

	locID := loc.ID()
	details := fmt.Sprintf("help requested at %s: %s", loc.Name(), cmd.Notes())
	if err = appendAudit(ctx, uow.AuditRepository(),
		audit.ActionHelpRequested, cmd.Actor(), ord.ID(), &locID, details); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	notification := ports.Notification{
		Kind:        ports.NotificationHelpRequested,
		OrderID:     ord.ID(),
		OrderNumber: ord.OrderNumber(),
		LocationID:  &locID,
		Message:     fmt.Sprintf("help requested for order %s at %s: %s", ord.OrderNumber(), loc.Name(), cmd.Notes()),
	}
	if notifyErr := h.sink.Notify(ctx, notification); notifyErr != nil {
		h.logger.Warn("help notification failed",
			"order_id", ord.ID().String(), "error", notifyErr)
	}

	return nil
}
