package observer

import (
	"fmt"
	"strings"
	"sync/atomic"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
)

// DefaultTrackingMarkers are the message fragments that mean an order left the shop.
var DefaultTrackingMarkers = []string{
	string(order.EnReparto),
	string(order.OutForDelivery),
}

// DeliveryTracker relays every status message to the courier side. When the message
// contains one of its markers it additionally starts GPS tracking for the order.
//
// Matching is a plain substring test on the full message, not a comparison of the
// status value, so "Order X: EN_REPARTO_URGENTE" also starts tracking.
type DeliveryTracker struct {
	journal kernel.Journal
	markers []string
	started atomic.Int64
}

// NewDeliveryTracker uses DefaultTrackingMarkers unless markers are given.
func NewDeliveryTracker(journal kernel.Journal, markers ...string) *DeliveryTracker {
	if journal == nil {
		journal = kernel.DiscardJournal
	}
	if len(markers) == 0 {
		markers = DefaultTrackingMarkers
	}
	return &DeliveryTracker{
		journal: journal,
		markers: append([]string(nil), markers...),
	}
}

func (t *DeliveryTracker) React(subject *order.Order, message string) error {
	if err := t.journal.Record("[DeliveryTracker] courier received: " + message); err != nil {
		return err
	}

	if !t.isOutForDelivery(message) {
		return nil
	}

	t.started.Add(1)
	return t.journal.Record(fmt.Sprintf("[DeliveryTracker] starting GPS tracking for %s", subject.ID()))
}

// TrackingStarted returns how many times GPS tracking was started.
func (t *DeliveryTracker) TrackingStarted() int {
	return int(t.started.Load())
}

func (t *DeliveryTracker) isOutForDelivery(message string) bool {
	for _, marker := range t.markers {
		if marker != "" && strings.Contains(message, marker) {
			return true
		}
	}
	return false
}
