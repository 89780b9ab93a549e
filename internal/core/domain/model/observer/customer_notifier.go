package observer

import (
	"fmt"
	"strings"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"
)

// CustomerNotifier forwards every status message to the customer's address.
type CustomerNotifier struct {
	address string
	journal kernel.Journal
}

// NewCustomerNotifier requires a non-blank destination address. A nil journal
// discards every line.
func NewCustomerNotifier(address string, journal kernel.Journal) (*CustomerNotifier, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, errs.NewValueIsRequiredError("customer address")
	}
	if journal == nil {
		journal = kernel.DiscardJournal
	}
	return &CustomerNotifier{address: address, journal: journal}, nil
}

// Address returns the destination the notifications are tagged with.
func (n *CustomerNotifier) Address() string {
	return n.address
}

func (n *CustomerNotifier) React(_ *order.Order, message string) error {
	return n.journal.Record(fmt.Sprintf("[CustomerNotifier -> %s] notification: %s", n.address, message))
}
