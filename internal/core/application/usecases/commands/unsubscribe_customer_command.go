package commands

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/guard"
)

var ErrUnsubscribeCustomerCommandIsNotConstructed = errors.New(
	"UnsubscribeCustomerCommand must be created via NewUnsubscribeCustomerCommand constructor",
)

// UnsubscribeCustomerCommand detaches every CustomerNotifier from an order. The
// remaining observers keep receiving notifications.
type UnsubscribeCustomerCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

func NewUnsubscribeCustomerCommand(orderID kernel.OrderID) (UnsubscribeCustomerCommand, error) {
	if err := orderID.Validate(); err != nil {
		return UnsubscribeCustomerCommand{}, err
	}

	return UnsubscribeCustomerCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c UnsubscribeCustomerCommand) Validate() error {
	return c.guard.Validate(ErrUnsubscribeCustomerCommandIsNotConstructed)
}

func (c UnsubscribeCustomerCommand) OrderID() kernel.OrderID {
	return c.orderID
}
