package observer

import (
	"fmt"

	"orderflow/internal/core/domain/model/order"
)

// Describe returns a short label for an attached observer, used by read models.
func Describe(o order.Observer) string {
	switch v := o.(type) {
	case *CustomerNotifier:
		return "customer_notifier:" + v.Address()
	case *AdminDashboard:
		return "admin_dashboard"
	case *DeliveryTracker:
		return "delivery_tracker"
	default:
		return fmt.Sprintf("%T", o)
	}
}
