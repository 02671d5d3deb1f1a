package commands

import (
	"errors"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var ErrEditOrderCommandIsNotConstructed = errors.New(
	"EditOrderCommand must be created via NewEditOrderCommand constructor",
)

// EditOrderCommand represents a request to change an existing order's details:
// client, due date, total quantity, and the rush flag.
type EditOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	client        string
	dueDate       time.Time
	totalQuantity int
	rush          bool
	actor         kernel.Actor

	guard guard.ConstructorGuard
}

// NewEditOrderCommand creates a command to edit an order.
// The target order must exist; quantity bounds against already shipped units
// are enforced by the aggregate, not here.
func NewEditOrderCommand(
	orderID kernel.UUID,
	client string,
	dueDate time.Time,
	totalQuantity int,
	rush bool,
	actor kernel.Actor,
) (EditOrderCommand, error) {
	cmd := EditOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setClient(client),
		cmd.setTotalQuantity(totalQuantity),
		cmd.setActor(actor),
	); err != nil {
		return EditOrderCommand{}, err
	}

	cmd.dueDate = dueDate
	cmd.rush = rush
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c EditOrderCommand) Validate() error {
	return c.guard.Validate(ErrEditOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to edit.
func (c EditOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Client returns the new client name.
func (c EditOrderCommand) Client() string {
	return c.client
}

// DueDate returns the new due date.
func (c EditOrderCommand) DueDate() time.Time {
	return c.dueDate
}

// TotalQuantity returns the new total quantity.
func (c EditOrderCommand) TotalQuantity() int {
	return c.totalQuantity
}

// Rush returns the desired rush flag state.
func (c EditOrderCommand) Rush() bool {
	return c.rush
}

// Actor returns the user performing the operation.
func (c EditOrderCommand) Actor() kernel.Actor {
	return c.actor
}

func (c *EditOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *EditOrderCommand) setClient(client string) error {
	if client == "" {
		return ErrClientIsRequired
	}

	c.client = client
	return nil
}

func (c *EditOrderCommand) setTotalQuantity(totalQuantity int) error {
	if totalQuantity <= 0 {
		return ErrTotalQuantityInvalid
	}

	c.totalQuantity = totalQuantity
	return nil
}

func (c *EditOrderCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
