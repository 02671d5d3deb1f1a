package commands

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var (
	ErrShipOrderCommandIsNotConstructed = errors.New(
		"ShipOrderCommand must be created via NewShipOrderCommand constructor",
	)
	ErrShipQuantityInvalid = errors.New("ship quantity must be greater than 0")
)

// ShipOrderCommand represents a request to ship part or all of an order.
//
// Example:
//
//	cmd, err := NewShipOrderCommand(orderID, 5, actor)
//	if err != nil {
//	    return err
//	}
//	if err := handler.Handle(ctx, cmd); errors.Is(err, order.ErrQuantityExceedsTotal) {
//	    // the requested quantity would overshoot the order total
//	}
type ShipOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	quantity int
	actor    kernel.Actor

	guard guard.ConstructorGuard
}

// NewShipOrderCommand creates a command to ship the given quantity of an order.
func NewShipOrderCommand(orderID kernel.UUID, quantity int, actor kernel.Actor) (ShipOrderCommand, error) {
	cmd := ShipOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setQuantity(quantity),
		cmd.setActor(actor),
	); err != nil {
		return ShipOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ShipOrderCommand) Validate() error {
	return c.guard.Validate(ErrShipOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to ship.
func (c ShipOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Quantity returns the number of units to ship.
func (c ShipOrderCommand) Quantity() int {
	return c.quantity
}

// Actor returns the user performing the operation.
func (c ShipOrderCommand) Actor() kernel.Actor {
	return c.actor
}

func (c *ShipOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ShipOrderCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrShipQuantityInvalid
	}

	c.quantity = quantity
	return nil
}

func (c *ShipOrderCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
