// Package memory keeps live orders in process memory for the lifetime of a run.
package memory

import (
	"context"
	"sync"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"
)

// OrderRegistry implements ports.OrderRegistry with a map plus an insertion-ordered
// index. It is safe for concurrent use and hands out the live *order.Order
// instances, so observers attached through one driver are visible to all.
type OrderRegistry struct {
	mu     sync.RWMutex
	orders map[string]*order.Order
	order  []string
}

func NewOrderRegistry() *OrderRegistry {
	return &OrderRegistry{
		orders: make(map[string]*order.Order),
	}
}

func (r *OrderRegistry) Add(_ context.Context, o *order.Order) error {
	if o == nil {
		return errs.NewValueIsRequiredError("order")
	}
	if err := o.Validate(); err != nil {
		return err
	}

	key := o.ID().String()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.orders[key]; exists {
		return errs.NewObjectAlreadyExistsError("order", key)
	}
	r.orders[key] = o
	r.order = append(r.order, key)
	return nil
}

func (r *OrderRegistry) Get(_ context.Context, id kernel.OrderID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.orders[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}
	return o, nil
}

// All returns the registered orders in registration order.
func (r *OrderRegistry) All(_ context.Context) ([]*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*order.Order, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, r.orders[key])
	}
	return out, nil
}

func (r *OrderRegistry) Remove(_ context.Context, id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	key := id.String()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[key]; !ok {
		return errs.NewObjectNotFoundError("order", key)
	}
	delete(r.orders, key)
	for i, k := range r.order {
		if k == key {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// Len returns the number of registered orders.
func (r *OrderRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.orders)
}
