package commands

import (
	"context"

	"orderflow/internal/core/domain/model/observer"
	"orderflow/internal/core/ports"
)

type UnsubscribeCustomerCommandHandler struct {
	registry ports.OrderRegistry
}

func NewUnsubscribeCustomerCommandHandler(registry ports.OrderRegistry) UnsubscribeCustomerCommandHandler {
	return UnsubscribeCustomerCommandHandler{registry: registry}
}

// Handle returns how many notifiers were detached. An order without a customer
// subscription is left untouched.
func (h UnsubscribeCustomerCommandHandler) Handle(ctx context.Context, cmd UnsubscribeCustomerCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	o, err := h.registry.Get(ctx, cmd.OrderID())
	if err != nil {
		return 0, err
	}

	detached := 0
	for _, obs := range o.Observers() {
		if customer, ok := obs.(*observer.CustomerNotifier); ok {
			o.Detach(customer)
			detached++
		}
	}
	return detached, nil
}
