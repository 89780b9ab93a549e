package order

import "reflect"

// Observer reacts to status changes of the orders it is attached to. The subject
// passes itself and the full notification message, e.g. "Order ORD-100: ACCEPTED".
//
// Observers are compared by identity, so implementations should be pointer types.
type Observer interface {
	React(subject *Order, message string) error
}

// sameObserver compares by pointer identity when both observers are pointers and
// falls back to == for other comparable dynamic types.
func sameObserver(a, b Observer) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	if va.Kind() == reflect.Pointer {
		return va.Pointer() == vb.Pointer()
	}
	if !va.Type().Comparable() {
		return false
	}
	return a == b
}
