package commands

import (
	"errors"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderNumberIsRequired = errors.New("order number is required")
	ErrClientIsRequired      = errors.New("client is required")
	ErrTotalQuantityInvalid  = errors.New("total quantity must be greater than 0")
)

// CreateOrderCommand represents a request to register a new production order.
// Carries the order's identifying details, total quantity, and the acting user.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, "W-1042", "PO-77", "Acme Cabinets",
//	    dueDate, 24, false, actor)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	orderNumber     string
	referenceNumber string
	client          string
	dueDate         time.Time
	totalQuantity   int
	rush            bool
	actor           kernel.Actor

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new production order.
// Validates that the order ID and actor are valid, the order number and client
// are not empty, and the total quantity is positive.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	orderNumber string,
	referenceNumber string,
	client string,
	dueDate time.Time,
	totalQuantity int,
	rush bool,
	actor kernel.Actor,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setOrderNumber(orderNumber),
		cmd.setClient(client),
		cmd.setTotalQuantity(totalQuantity),
		cmd.setActor(actor),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	cmd.referenceNumber = referenceNumber
	cmd.dueDate = dueDate
	cmd.rush = rush
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OrderNumber returns the workshop's order number.
func (c CreateOrderCommand) OrderNumber() string {
	return c.orderNumber
}

// ReferenceNumber returns the client's reference number, possibly empty.
func (c CreateOrderCommand) ReferenceNumber() string {
	return c.referenceNumber
}

// Client returns the client name.
func (c CreateOrderCommand) Client() string {
	return c.client
}

// DueDate returns the promised completion date.
func (c CreateOrderCommand) DueDate() time.Time {
	return c.dueDate
}

// TotalQuantity returns the number of units ordered.
func (c CreateOrderCommand) TotalQuantity() int {
	return c.totalQuantity
}

// Rush reports whether the order should be flagged as rush on creation.
func (c CreateOrderCommand) Rush() bool {
	return c.rush
}

// Actor returns the user performing the operation.
func (c CreateOrderCommand) Actor() kernel.Actor {
	return c.actor
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return ErrOrderNumberIsRequired
	}

	c.orderNumber = orderNumber
	return nil
}

func (c *CreateOrderCommand) setClient(client string) error {
	if client == "" {
		return ErrClientIsRequired
	}

	c.client = client
	return nil
}

func (c *CreateOrderCommand) setTotalQuantity(totalQuantity int) error {
	if totalQuantity <= 0 {
		return ErrTotalQuantityInvalid
	}

	c.totalQuantity = totalQuantity
	return nil
}

func (c *CreateOrderCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
