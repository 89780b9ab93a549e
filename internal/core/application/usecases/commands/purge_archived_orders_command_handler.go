package commands

import (
	"context"
	"errors"

	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/ports"
	"orderflow/internal/pkg/errs"
)

// PurgeArchivedOrdersCommandHandler removes ARCHIVED and ARCHIVADO orders from the
// registry. Their observers are not notified.
type PurgeArchivedOrdersCommandHandler struct {
	registry ports.OrderRegistry
}

func NewPurgeArchivedOrdersCommandHandler(registry ports.OrderRegistry) PurgeArchivedOrdersCommandHandler {
	return PurgeArchivedOrdersCommandHandler{registry: registry}
}

// Handle returns how many orders were removed.
func (h PurgeArchivedOrdersCommandHandler) Handle(ctx context.Context, cmd PurgeArchivedOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	orders, err := h.registry.All(ctx)
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, o := range orders {
		if s := o.Status(); s != order.Archived && s != order.Archivado {
			continue
		}
		// a concurrent purge may have removed it already
		if err = h.registry.Remove(ctx, o.ID()); err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
			return removed, err
		}
		if err == nil {
			removed++
		}
	}
	return removed, nil
}
