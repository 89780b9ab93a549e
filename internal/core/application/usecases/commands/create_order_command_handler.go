package commands

import (
	"context"
	"log/slog"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/observer"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/ports"
)

// CreateOrderCommandHandler creates orders in CREATED status and attaches, in this
// order, a CustomerNotifier (when an address is given), an AdminDashboard and a
// DeliveryTracker. All of them report to the handler's journal.
type CreateOrderCommandHandler struct {
	registry ports.OrderRegistry
	journal  kernel.Journal
	logger   *slog.Logger
}

func NewCreateOrderCommandHandler(
	registry ports.OrderRegistry,
	journal kernel.Journal,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return CreateOrderCommandHandler{
		registry: registry,
		journal:  journal,
		logger:   logger,
	}
}

// Handle builds the order with its observers and registers it. An identifier that
// is already live fails with errs.ObjectAlreadyExistsError from the registry.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	o, err := order.NewOrder(cmd.OrderID(), order.WithLogger(h.logger))
	if err != nil {
		return err
	}

	if address := cmd.CustomerAddress(); address != "" {
		customer, customerErr := observer.NewCustomerNotifier(address, h.journal)
		if customerErr != nil {
			return customerErr
		}
		o.Attach(customer)
	}
	o.Attach(observer.NewAdminDashboard(h.journal))
	o.Attach(observer.NewDeliveryTracker(h.journal))

	if err = h.registry.Add(ctx, o); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "order created",
		"order_id", o.ID().String(),
		"observers", len(o.Observers()),
	)
	return nil
}
