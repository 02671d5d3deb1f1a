package commands

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var ErrRequestHelpCommandIsNotConstructed = errors.New(
	"RequestHelpCommand must be created via NewRequestHelpCommand constructor",
)

// RequestHelpCommand represents a worker's call for assistance with an order
// at a location. It mutates no workflow state; it leaves an audit entry and
// raises a notification.
type RequestHelpCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	locationID kernel.UUID
	notes      string
	actor      kernel.Actor

	guard guard.ConstructorGuard
}

// NewRequestHelpCommand creates a command to request help. Notes may be empty.
func NewRequestHelpCommand(
	orderID kernel.UUID,
	locationID kernel.UUID,
	notes string,
	actor kernel.Actor,
) (RequestHelpCommand, error) {
	cmd := RequestHelpCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setLocationID(locationID),
		cmd.setActor(actor),
	); err != nil {
		return RequestHelpCommand{}, err
	}

	cmd.notes = notes
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestHelpCommand) Validate() error {
	return c.guard.Validate(ErrRequestHelpCommandIsNotConstructed)
}

// OrderID returns the identifier of the order needing help.
func (c RequestHelpCommand) OrderID() kernel.UUID {
	return c.orderID
}

// LocationID returns the identifier of the location where help is needed.
func (c RequestHelpCommand) LocationID() kernel.UUID {
	return c.locationID
}

// Notes returns the free-form description of the problem.
func (c RequestHelpCommand) Notes() string {
	return c.notes
}

// Actor returns the user requesting help.
func (c RequestHelpCommand) Actor() kernel.Actor {
	return c.actor
}

func (c *RequestHelpCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RequestHelpCommand) setLocationID(locationID kernel.UUID) error {
	if err := locationID.Validate(); err != nil {
		return err
	}

	c.locationID = locationID
	return nil
}

func (c *RequestHelpCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
