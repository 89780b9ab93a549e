package commands

import (
	"context"
	"log/slog"

	"orderflow/internal/core/domain/model/delivery"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/services"
)

// DispatchOrderCommandHandler asks the DeliverySelector for a strategy and lets it
// write its confirmation line to the journal.
//
// Example:
//
//	parcel, _ := kernel.NewParcel(2, 1, true)
//	cmd, _ := NewDispatchOrderCommand(kernel.MustOrderID("ORD-001"), parcel)
//	mode, err := handler.Handle(ctx, cmd) // mode == delivery.Drone
type DispatchOrderCommandHandler struct {
	selector services.DeliverySelector
	journal  kernel.Journal
	logger   *slog.Logger
}

func NewDispatchOrderCommandHandler(
	selector services.DeliverySelector,
	journal kernel.Journal,
	logger *slog.Logger,
) DispatchOrderCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return DispatchOrderCommandHandler{
		selector: selector,
		journal:  journal,
		logger:   logger,
	}
}

// Handle returns the mode that was executed. The only runtime failure is a journal
// error.
func (h DispatchOrderCommandHandler) Handle(ctx context.Context, cmd DispatchOrderCommand) (delivery.Mode, error) {
	if err := cmd.Validate(); err != nil {
		return delivery.Unknown, err
	}

	strategy, err := h.selector.SelectFor(cmd.Parcel())
	if err != nil {
		return delivery.Unknown, err
	}

	if err = strategy.Execute(h.journal, cmd.OrderID()); err != nil {
		return delivery.Unknown, err
	}

	h.logger.DebugContext(ctx, "order dispatched",
		"order_id", cmd.OrderID().String(),
		"mode", strategy.Mode().String(),
		"parcel", cmd.Parcel().String(),
	)
	return strategy.Mode(), nil
}
