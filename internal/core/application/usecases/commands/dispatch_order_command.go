package commands

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/guard"
)

var ErrDispatchOrderCommandIsNotConstructed = errors.New(
	"DispatchOrderCommand must be created via NewDispatchOrderCommand constructor",
)

// DispatchOrderCommand selects a delivery mode for a parcel and executes it.
// The order does not need to be registered: dispatching works on the identifier
// alone.
type DispatchOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID
	parcel  kernel.Parcel

	guard guard.ConstructorGuard
}

func NewDispatchOrderCommand(orderID kernel.OrderID, parcel kernel.Parcel) (DispatchOrderCommand, error) {
	cmd := DispatchOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setParcel(parcel),
	); err != nil {
		return DispatchOrderCommand{}, err
	}

	return cmd, nil
}

func (c DispatchOrderCommand) Validate() error {
	return c.guard.Validate(ErrDispatchOrderCommandIsNotConstructed)
}

func (c DispatchOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}

func (c DispatchOrderCommand) Parcel() kernel.Parcel {
	return c.parcel
}

func (c *DispatchOrderCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *DispatchOrderCommand) setParcel(parcel kernel.Parcel) error {
	if err := parcel.Validate(); err != nil {
		return err
	}
	c.parcel = parcel
	return nil
}
