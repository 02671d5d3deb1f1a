package commands

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var ErrPauseAtLocationCommandIsNotConstructed = errors.New(
	"PauseAtLocationCommand must be created via NewPauseAtLocationCommand constructor",
)

// PauseAtLocationCommand represents a request to pause active work on an
// order at a location.
type PauseAtLocationCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	locationID kernel.UUID
	actor      kernel.Actor

	guard guard.ConstructorGuard
}

// NewPauseAtLocationCommand creates a command to pause work at a location.
func NewPauseAtLocationCommand(
	orderID kernel.UUID,
	locationID kernel.UUID,
	actor kernel.Actor,
) (PauseAtLocationCommand, error) {
	cmd := PauseAtLocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setLocationID(locationID),
		cmd.setActor(actor),
	); err != nil {
		return PauseAtLocationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PauseAtLocationCommand) Validate() error {
	return c.guard.Validate(ErrPauseAtLocationCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being paused.
func (c PauseAtLocationCommand) OrderID() kernel.UUID {
	return c.orderID
}

// LocationID returns the identifier of the location where work pauses.
func (c PauseAtLocationCommand) LocationID() kernel.UUID {
	return c.locationID
}

// Actor returns the user performing the operation.
func (c PauseAtLocationCommand) Actor() kernel.Actor {
	return c.actor
}

func (c *PauseAtLocationCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PauseAtLocationCommand) setLocationID(locationID kernel.UUID) error {
	if err := locationID.Validate(); err != nil {
		return err
	}

	c.locationID = locationID
	return nil
}

func (c *PauseAtLocationCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
