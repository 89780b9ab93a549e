// Package ports defines the contracts between the order flow core and its adapters.
package ports

import (
	"context"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
)

// OrderRegistry keeps the live orders of a running simulation so that drivers
// (HTTP, scheduled jobs) can reach them by identifier. It is not a persistence
// layer: registered orders live only as long as the process.
type OrderRegistry interface {
	// Add registers a new order. Registering an identifier twice fails with
	// errs.ObjectAlreadyExistsError.
	Add(ctx context.Context, o *order.Order) error

	// Get returns the live order instance, or errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.OrderID) (*order.Order, error)

	// All returns every registered order in registration order.
	All(ctx context.Context) ([]*order.Order, error)

	// Remove forgets an order, or fails with errs.ObjectNotFoundError.
	Remove(ctx context.Context, id kernel.OrderID) error
}
