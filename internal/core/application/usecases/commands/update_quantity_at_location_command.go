package commands

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var ErrUpdateQuantityAtLocationCommandIsNotConstructed = errors.New(
	"UpdateQuantityAtLocationCommand must be created via NewUpdateQuantityAtLocationCommand constructor",
)

// UpdateQuantityAtLocationCommand represents a progress report: how many
// units are completed so far on an order at a location. Downward corrections
// are allowed.
type UpdateQuantityAtLocationCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	locationID kernel.UUID
	quantity   int
	actor      kernel.Actor

	guard guard.ConstructorGuard
}

// NewUpdateQuantityAtLocationCommand creates a command to report progress.
func NewUpdateQuantityAtLocationCommand(
	orderID kernel.UUID,
	locationID kernel.UUID,
	quantity int,
	actor kernel.Actor,
) (UpdateQuantityAtLocationCommand, error) {
	cmd := UpdateQuantityAtLocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setLocationID(locationID),
		cmd.setQuantity(quantity),
		cmd.setActor(actor),
	); err != nil {
		return UpdateQuantityAtLocationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateQuantityAtLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateQuantityAtLocationCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being reported on.
func (c UpdateQuantityAtLocationCommand) OrderID() kernel.UUID {
	return c.orderID
}

// LocationID returns the identifier of the reporting location.
func (c UpdateQuantityAtLocationCommand) LocationID() kernel.UUID {
	return c.locationID
}

// Quantity returns the completed quantity being reported.
func (c UpdateQuantityAtLocationCommand) Quantity() int {
	return c.quantity
}

// Actor returns the user performing the operation.
func (c UpdateQuantityAtLocationCommand) Actor() kernel.Actor {
	return c.actor
}

func (c *UpdateQuantityAtLocationCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateQuantityAtLocationCommand) setLocationID(locationID kernel.UUID) error {
	if err := locationID.Validate(); err != nil {
		return err
	}

	c.locationID = locationID
	return nil
}

func (c *UpdateQuantityAtLocationCommand) setQuantity(quantity int) error {
	if quantity < 0 {
		return ErrCompletedQuantityNegative
	}

	c.quantity = quantity
	return nil
}

func (c *UpdateQuantityAtLocationCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
