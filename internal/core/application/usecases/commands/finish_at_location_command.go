package commands

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var (
	ErrFinishAtLocationCommandIsNotConstructed = errors.New(
		"FinishAtLocationCommand must be created via NewFinishAtLocationCommand constructor",
	)
	ErrCompletedQuantityNegative = errors.New("completed quantity must not be negative")
)

// FinishAtLocationCommand represents a request to complete work on an order
// at a location, recording the final quantity produced there.
type FinishAtLocationCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	locationID kernel.UUID
	quantity   int
	actor      kernel.Actor

	guard guard.ConstructorGuard
}

// NewFinishAtLocationCommand creates a command to finish work at a location.
// The quantity's upper bound is the order total, checked by the aggregate
// inside the transaction.
func NewFinishAtLocationCommand(
	orderID kernel.UUID,
	locationID kernel.UUID,
	quantity int,
	actor kernel.Actor,
) (FinishAtLocationCommand, error) {
	cmd := FinishAtLocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setLocationID(locationID),
		cmd.setQuantity(quantity),
		cmd.setActor(actor),
	); err != nil {
		return FinishAtLocationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c FinishAtLocationCommand) Validate() error {
	return c.guard.Validate(ErrFinishAtLocationCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being finished.
func (c FinishAtLocationCommand) OrderID() kernel.UUID {
	return c.orderID
}

// LocationID returns the identifier of the location where work finishes.
func (c FinishAtLocationCommand) LocationID() kernel.UUID {
	return c.locationID
}

// Quantity returns the final completed quantity at the location.
func (c FinishAtLocationCommand) Quantity() int {
	return c.quantity
}

// Actor returns the user performing the operation.
func (c FinishAtLocationCommand) Actor() kernel.Actor {
	return c.actor
}

func (c *FinishAtLocationCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *FinishAtLocationCommand) setLocationID(locationID kernel.UUID) error {
	if err := locationID.Validate(); err != nil {
		return err
	}

	c.locationID = locationID
	return nil
}

func (c *FinishAtLocationCommand) setQuantity(quantity int) error {
	if quantity < 0 {
		return ErrCompletedQuantityNegative
	}

	c.quantity = quantity
	return nil
}

func (c *FinishAtLocationCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
