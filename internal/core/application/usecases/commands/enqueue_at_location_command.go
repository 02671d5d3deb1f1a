package commands

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var ErrEnqueueAtLocationCommandIsNotConstructed = errors.New(
	"EnqueueAtLocationCommand must be created via NewEnqueueAtLocationCommand constructor",
)

// EnqueueAtLocationCommand represents a request to place an order into a
// location's processing queue.
type EnqueueAtLocationCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	locationID kernel.UUID
	actor      kernel.Actor

	guard guard.ConstructorGuard
}

// NewEnqueueAtLocationCommand creates a command to queue an order at a location.
func NewEnqueueAtLocationCommand(
	orderID kernel.UUID,
	locationID kernel.UUID,
	actor kernel.Actor,
) (EnqueueAtLocationCommand, error) {
	cmd := EnqueueAtLocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setLocationID(locationID),
		cmd.setActor(actor),
	); err != nil {
		return EnqueueAtLocationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c EnqueueAtLocationCommand) Validate() error {
	return c.guard.Validate(ErrEnqueueAtLocationCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to queue.
func (c EnqueueAtLocationCommand) OrderID() kernel.UUID {
	return c.orderID
}

// LocationID returns the identifier of the target location.
func (c EnqueueAtLocationCommand) LocationID() kernel.UUID {
	return c.locationID
}

// Actor returns the user performing the operation.
func (c EnqueueAtLocationCommand) Actor() kernel.Actor {
	return c.actor
}

func (c *EnqueueAtLocationCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *EnqueueAtLocationCommand) setLocationID(locationID kernel.UUID) error {
	if err := locationID.Validate(); err != nil {
		return err
	}

	c.locationID = locationID
	return nil
}

func (c *EnqueueAtLocationCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
