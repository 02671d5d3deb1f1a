package commands

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var ErrRemoveFromAllQueuesCommandIsNotConstructed = errors.New(
	"RemoveFromAllQueuesCommand must be created via NewRemoveFromAllQueuesCommand constructor",
)

// RemoveFromAllQueuesCommand represents a request to pull an order out of the
// global queue and every location queue at once. Managers and admins only.
type RemoveFromAllQueuesCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   kernel.Actor

	guard guard.ConstructorGuard
}

// NewRemoveFromAllQueuesCommand creates a command to remove an order from all
// queues. The role gate is enforced by the handler, not here.
func NewRemoveFromAllQueuesCommand(orderID kernel.UUID, actor kernel.Actor) (RemoveFromAllQueuesCommand, error) {
	cmd := RemoveFromAllQueuesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
	); err != nil {
		return RemoveFromAllQueuesCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveFromAllQueuesCommand) Validate() error {
	return c.guard.Validate(ErrRemoveFromAllQueuesCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to remove.
func (c RemoveFromAllQueuesCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the user performing the operation.
func (c RemoveFromAllQueuesCommand) Actor() kernel.Actor {
	return c.actor
}

func (c *RemoveFromAllQueuesCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RemoveFromAllQueuesCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
