package order

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"orderflow/internal/core/domain/model/kernel"
)

// ErrOrderIsNotConstructed is returned when an Order was not created through NewOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the subject of status notifications. It owns its status and an ordered
// registry of observers; the observers themselves belong to whoever attached them.
//
// Order is safe for concurrent use. Notification runs outside the internal lock, so an
// observer may attach or detach observers (itself included) from inside React.
type Order struct {
	mu sync.Mutex

	// id is the caller-assigned identifier
	id kernel.OrderID

	// status is never empty; it starts as Created
	status Status

	// observers keeps registration order
	observers []Observer

	logger *slog.Logger

	isConstructed bool
}

// Option customises an Order at construction time.
type Option func(*Order)

// WithLogger sets the logger used for warnings about unrecognised statuses.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Order) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// NewOrder creates an order in Created status with no observers.
//
// Example:
//
//	o, err := order.NewOrder(kernel.MustOrderID("ORD-100"))
//	if err != nil {
//	    return err
//	}
//	o.Attach(observer.NewAdminDashboard(journal))
//	err = o.SetStatus(order.Accepted)
func NewOrder(id kernel.OrderID, opts ...Option) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	o := &Order{
		id:            id,
		status:        Created,
		logger:        slog.Default(),
		isConstructed: true,
	}
	for _, opt := range opts {
		opt(o)
	}

	return o, nil
}

// Validate ensures the Order was constructed through NewOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order identifier.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// Status returns the current status.
func (o *Order) Status() Status {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.status
}

// Observers returns a copy of the registry in registration order.
func (o *Order) Observers() []Observer {
	o.mu.Lock()
	defer o.mu.Unlock()
	return slices.Clone(o.observers)
}

// Attach registers an observer. Attaching nil or an already registered observer
// is a no-op.
func (o *Order) Attach(observer Observer) {
	if observer == nil {
		return
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if o.indexOf(observer) >= 0 {
		return
	}
	o.observers = append(o.observers, observer)
}

// Detach removes an observer. Detaching one that is not registered is a no-op.
func (o *Order) Detach(observer Observer) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if i := o.indexOf(observer); i >= 0 {
		o.observers = slices.Delete(o.observers, i, i+1)
	}
}

// SetStatus overwrites the status, even when it is unchanged, and notifies every
// registered observer with the message "Order <id>: <status>".
//
// A blank status is rejected before anything changes. Statuses outside the
// well-known set are accepted and logged at WARN level. The first observer error
// aborts the cycle and is returned unchanged.
func (o *Order) SetStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	o.mu.Lock()
	previous := o.status
	o.status = status
	o.mu.Unlock()

	if !status.IsKnown() {
		o.logger.Warn("unrecognized order status", "order_id", o.id.String(), "status", status.String())
	}
	o.logger.Debug("order status changed",
		"order_id", o.id.String(), "from", previous.String(), "to", status.String())

	return o.Notify(Message(o.id, status))
}

// Notify delivers message to a snapshot of the registry taken before the first
// observer runs. Observers attached during the cycle are not visited; observers
// detached during the cycle still are.
func (o *Order) Notify(message string) error {
	for _, observer := range o.Observers() {
		if err := observer.React(o, message); err != nil {
			return err
		}
	}
	return nil
}

// Message builds the notification text for a status change.
func Message(id kernel.OrderID, status Status) string {
	return fmt.Sprintf("Order %s: %s", id, status)
}

func (o *Order) indexOf(observer Observer) int {
	return slices.IndexFunc(o.observers, func(registered Observer) bool {
		return sameObserver(registered, observer)
	})
}
