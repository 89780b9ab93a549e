package observer

import (
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
)

// AdminDashboard shows each status message verbatim on the back-office panel.
type AdminDashboard struct {
	journal kernel.Journal
}

func NewAdminDashboard(journal kernel.Journal) *AdminDashboard {
	if journal == nil {
		journal = kernel.DiscardJournal
	}
	return &AdminDashboard{journal: journal}
}

func (d *AdminDashboard) React(_ *order.Order, message string) error {
	return d.journal.Record("[AdminDashboard] order status updated on panel: " + message)
}
