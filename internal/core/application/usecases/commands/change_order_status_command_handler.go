package commands

import (
	"context"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/ports"
)

// ChangeOrderStatusCommandHandler applies status changes to live orders. Copies of
// the handler share one gate.
//
// Example:
//
//	cmd, _ := NewChangeOrderStatusCommand(kernel.MustOrderID("ORD-100"), order.EnReparto)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    // unknown order, or an observer failed during notification
//	}
type ChangeOrderStatusCommandHandler struct {
	registry ports.OrderRegistry
	journal  kernel.Journal
	gate     *statusGate
}

func NewChangeOrderStatusCommandHandler(
	registry ports.OrderRegistry,
	journal kernel.Journal,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		registry: registry,
		journal:  journal,
		gate:     newStatusGate(),
	}
}

// Handle records the change on the journal and sets the status. An observer error
// is returned unchanged; observers notified before it keep their effects.
func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	o, err := h.registry.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	h.gate.mu.Lock()
	defer h.gate.mu.Unlock()

	line := "[Order] status change: " + order.Message(o.ID(), cmd.Status())
	if err = h.journal.Record(line); err != nil {
		return err
	}

	return o.SetStatus(cmd.Status())
}
