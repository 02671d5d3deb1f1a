package commands

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var ErrSetGlobalQueuePositionCommandIsNotConstructed = errors.New(
	"SetGlobalQueuePositionCommand must be created via NewSetGlobalQueuePositionCommand constructor",
)

// SetGlobalQueuePositionCommand represents a request to rank an order in the
// cross-location global queue at a specific position.
//
// Example:
//
//	cmd, err := NewSetGlobalQueuePositionCommand(orderID, 1, actor)
//	if err != nil {
//	    return err
//	}
//	// moves the order to the front; every other ranked order shifts down
//	err = handler.Handle(ctx, cmd)
type SetGlobalQueuePositionCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	position int
	actor    kernel.Actor

	guard guard.ConstructorGuard
}

// NewSetGlobalQueuePositionCommand creates a command to rank an order globally.
// Positions below 1 are rejected here; positions past the queue tail are
// clamped by the queue planner.
func NewSetGlobalQueuePositionCommand(
	orderID kernel.UUID,
	position int,
	actor kernel.Actor,
) (SetGlobalQueuePositionCommand, error) {
	cmd := SetGlobalQueuePositionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
	); err != nil {
		return SetGlobalQueuePositionCommand{}, err
	}

	cmd.position = position
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetGlobalQueuePositionCommand) Validate() error {
	return c.guard.Validate(ErrSetGlobalQueuePositionCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to rank.
func (c SetGlobalQueuePositionCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Position returns the requested 1-based global rank.
func (c SetGlobalQueuePositionCommand) Position() int {
	return c.position
}

// Actor returns the user performing the operation.
func (c SetGlobalQueuePositionCommand) Actor() kernel.Actor {
	return c.actor
}

func (c *SetGlobalQueuePositionCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SetGlobalQueuePositionCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
