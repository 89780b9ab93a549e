package commands

import (
	"context"
	"errors"

	"orderflow/internal/core/ports"
)

// AdvanceOrdersCommandHandler steps each registered order to the next status of its
// lifecycle through the ChangeOrderStatus handler, so progression notifies observers
// like any other change. Orders in a final or unknown status are skipped.
//
// Example:
//
//	cmd, _ := NewAdvanceOrdersCommand()
//	advanced, err := handler.Handle(ctx, cmd)
type AdvanceOrdersCommandHandler struct {
	registry     ports.OrderRegistry
	changeStatus ChangeOrderStatusCommandHandler
}

func NewAdvanceOrdersCommandHandler(
	registry ports.OrderRegistry,
	changeStatus ChangeOrderStatusCommandHandler,
) AdvanceOrdersCommandHandler {
	return AdvanceOrdersCommandHandler{
		registry:     registry,
		changeStatus: changeStatus,
	}
}

// Handle returns how many orders moved. A failing order does not stop the others;
// all failures are joined into the returned error.
func (h AdvanceOrdersCommandHandler) Handle(ctx context.Context, cmd AdvanceOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	orders, err := h.registry.All(ctx)
	if err != nil {
		return 0, err
	}

	var (
		advanced int
		failures []error
	)
	for _, o := range orders {
		if err = ctx.Err(); err != nil {
			failures = append(failures, err)
			break
		}

		next, ok := o.Status().Next()
		if !ok {
			continue
		}

		change, cmdErr := NewChangeOrderStatusCommand(o.ID(), next)
		if cmdErr != nil {
			failures = append(failures, cmdErr)
			continue
		}
		if err = h.changeStatus.Handle(ctx, change); err != nil {
			failures = append(failures, err)
			continue
		}
		advanced++
	}

	return advanced, errors.Join(failures...)
}
