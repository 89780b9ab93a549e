package commands

import (
	"errors"
	"strings"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand registers a new order and subscribes the standard observers to it.
// The customer address is optional; without it no CustomerNotifier is attached.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.MustOrderID("ORD-100"), "cliente@example.com")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.OrderID
	customerAddress string

	guard guard.ConstructorGuard
}

func NewCreateOrderCommand(orderID kernel.OrderID, customerAddress string) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		customerAddress: strings.TrimSpace(customerAddress),
		guard:           guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// CustomerAddress returns the notification address, possibly empty.
func (c CreateOrderCommand) CustomerAddress() string {
	return c.customerAddress
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
