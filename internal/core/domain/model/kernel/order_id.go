package kernel

import (
	"strings"

	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"

	"github.com/google/uuid"
)

const generatedOrderIDPrefix = "ORD-"

// ErrOrderIDIsNotConstructed is returned when validating a zero-value OrderID.
var ErrOrderIDIsNotConstructed = errs.NewValueIsRequiredError("order id must be created via NewOrderID or GenerateOrderID")

// OrderID identifies an order for the lifetime of a simulation. Identifiers are
// assigned by the caller (for example "ORD-001") and compared by value.
//
// The zero value is invalid; build one with NewOrderID or GenerateOrderID.
type OrderID struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// NewOrderID wraps a caller-assigned identifier. Surrounding whitespace is trimmed
// and an empty result is rejected.
//
// Example:
//
//	id, err := kernel.NewOrderID("ORD-001")
//	if err != nil {
//	    return err
//	}
func NewOrderID(value string) (OrderID, error) {
	id := OrderID{guard: guard.NewConstructorGuard()}
	if err := id.setValue(value); err != nil {
		return OrderID{}, err
	}
	return id, nil
}

// GenerateOrderID returns a fresh identifier of the form "ORD-1A2B3C4D" derived
// from a random UUID.
func GenerateOrderID() OrderID {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return OrderID{
		value: generatedOrderIDPrefix + strings.ToUpper(raw[:8]),
		guard: guard.NewConstructorGuard(),
	}
}

// MustOrderID is NewOrderID for identifiers known to be valid, such as literals
// in demos and tests. It panics on an empty value.
func MustOrderID(value string) OrderID {
	id, err := NewOrderID(value)
	if err != nil {
		panic(err)
	}
	return id
}

// Validate reports whether the identifier was built by a constructor.
func (id OrderID) Validate() error {
	return id.guard.Validate(ErrOrderIDIsNotConstructed)
}

// String returns the identifier as supplied by the caller.
func (id OrderID) String() string {
	return id.value
}

// IsEqual compares identifiers by value.
func (id OrderID) IsEqual(other OrderID) bool {
	return id.value == other.value
}

func (id *OrderID) setValue(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return errs.NewValueIsRequiredError("order id")
	}
	id.value = value
	return nil
}
