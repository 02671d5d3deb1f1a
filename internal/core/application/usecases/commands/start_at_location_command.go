package commands

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var ErrStartAtLocationCommandIsNotConstructed = errors.New(
	"StartAtLocationCommand must be created via NewStartAtLocationCommand constructor",
)

// StartAtLocationCommand represents a request to begin (or resume) work on an
// order at a location.
type StartAtLocationCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	locationID kernel.UUID
	actor      kernel.Actor

	guard guard.ConstructorGuard
}

// NewStartAtLocationCommand creates a command to start work at a location.
func NewStartAtLocationCommand(
	orderID kernel.UUID,
	locationID kernel.UUID,
	actor kernel.Actor,
) (StartAtLocationCommand, error) {
	cmd := StartAtLocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setLocationID(locationID),
		cmd.setActor(actor),
	); err != nil {
		return StartAtLocationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartAtLocationCommand) Validate() error {
	return c.guard.Validate(ErrStartAtLocationCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being worked on.
func (c StartAtLocationCommand) OrderID() kernel.UUID {
	return c.orderID
}

// LocationID returns the identifier of the location where work starts.
func (c StartAtLocationCommand) LocationID() kernel.UUID {
	return c.locationID
}

// Actor returns the user performing the operation.
func (c StartAtLocationCommand) Actor() kernel.Actor {
	return c.actor
}

func (c *StartAtLocationCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *StartAtLocationCommand) setLocationID(locationID kernel.UUID) error {
	if err := locationID.Validate(); err != nil {
		return err
	}

	c.locationID = locationID
	return nil
}

func (c *StartAtLocationCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
