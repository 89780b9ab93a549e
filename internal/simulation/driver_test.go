package simulation_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"orderflow/internal/adapters/out/memory"
	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/domain/model/delivery"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/services"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/simulation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDriver(journal kernel.Journal) *simulation.Driver {
	registry := memory.NewOrderRegistry()
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	return simulation.NewDriver(
		commands.NewDispatchOrderCommandHandler(services.NewDeliverySelector(), journal, logger),
		commands.NewCreateOrderCommandHandler(registry, journal, logger),
		commands.NewChangeOrderStatusCommandHandler(registry, journal),
		commands.NewUnsubscribeCustomerCommandHandler(registry),
		journal,
		logger,
	)
}

func TestDriver_Run_DefaultScenario(t *testing.T) {
	journal := kernel.NewMemoryJournal()

	report, err := newDriver(journal).Run(t.Context(), simulation.DefaultScenario())

	require.NoError(t, err)
	assert.Equal(t, map[string]delivery.Mode{
		"ORD-001": delivery.Drone,
		"ORD-002": delivery.Bike,
		"ORD-003": delivery.Car,
		"ORD-004": delivery.Bike,
	}, report.Modes)
	assert.Equal(t, map[string]order.Status{"ORD-100": order.Archivado}, report.FinalStatuses)

	assert.Equal(t, []string{
		"-- order ORD-001: distance=2km, weight=1kg, weather_ok=true",
		"[Drone] delivering order ORD-001: fast aerial delivery (speed 60 km/h)",
		"-- order ORD-002: distance=4km, weight=5kg, weather_ok=true",
		"[Bike] delivering order ORD-002: nearby zone delivery (speed 15 km/h)",
		"-- order ORD-003: distance=15km, weight=10kg, weather_ok=true",
		"[Car] delivering order ORD-003: interurban route or large order (speed 50 km/h)",
		"-- order ORD-004: distance=3km, weight=1.5kg, weather_ok=false",
		"[Bike] delivering order ORD-004: nearby zone delivery (speed 15 km/h)",

		"[Order] status change: Order ORD-100: ACEPTADO",
		"[CustomerNotifier -> cliente@example.com] notification: Order ORD-100: ACEPTADO",
		"[AdminDashboard] order status updated on panel: Order ORD-100: ACEPTADO",
		"[DeliveryTracker] courier received: Order ORD-100: ACEPTADO",

		"[Order] status change: Order ORD-100: EN_PREPARACION",
		"[CustomerNotifier -> cliente@example.com] notification: Order ORD-100: EN_PREPARACION",
		"[AdminDashboard] order status updated on panel: Order ORD-100: EN_PREPARACION",
		"[DeliveryTracker] courier received: Order ORD-100: EN_PREPARACION",

		"[Order] status change: Order ORD-100: EN_REPARTO",
		"[CustomerNotifier -> cliente@example.com] notification: Order ORD-100: EN_REPARTO",
		"[AdminDashboard] order status updated on panel: Order ORD-100: EN_REPARTO",
		"[DeliveryTracker] courier received: Order ORD-100: EN_REPARTO",
		"[DeliveryTracker] starting GPS tracking for ORD-100",

		"[Order] status change: Order ORD-100: ENTREGADO",
		"[CustomerNotifier -> cliente@example.com] notification: Order ORD-100: ENTREGADO",
		"[AdminDashboard] order status updated on panel: Order ORD-100: ENTREGADO",
		"[DeliveryTracker] courier received: Order ORD-100: ENTREGADO",

		"[Order] status change: Order ORD-100: ARCHIVADO",
		"[AdminDashboard] order status updated on panel: Order ORD-100: ARCHIVADO",
		"[DeliveryTracker] courier received: Order ORD-100: ARCHIVADO",
	}, journal.Lines())
}

func TestDriver_Run_Errors(t *testing.T) {
	t.Run("should stop on an invalid parcel", func(t *testing.T) {
		journal := kernel.NewMemoryJournal()
		s := simulation.Scenario{Deliveries: []simulation.DeliveryCase{
			{OrderID: "ORD-1", DistanceKm: -1, WeightKg: 1},
			{OrderID: "ORD-2", DistanceKm: 1, WeightKg: 1},
		}}

		report, err := newDriver(journal).Run(t.Context(), s)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.ErrorContains(t, err, "delivery ORD-1")
		assert.Empty(t, report.Modes)
		assert.Empty(t, journal.Lines())
	})

	t.Run("should fail a flow on a duplicate order", func(t *testing.T) {
		s := simulation.Scenario{Flows: []simulation.StatusFlow{
			{OrderID: "ORD-1", Statuses: []string{"ACCEPTED"}},
			{OrderID: "ORD-1", Statuses: []string{"ACCEPTED"}},
		}}

		report, err := newDriver(kernel.NewMemoryJournal()).Run(t.Context(), s)

		require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
		assert.Equal(t, order.Accepted, report.FinalStatuses["ORD-1"])
	})

	t.Run("should surface a journal failure", func(t *testing.T) {
		boom := errors.New("console closed")
		journal := kernel.JournalFunc(func(string) error { return boom })
		s := simulation.Scenario{Deliveries: []simulation.DeliveryCase{{OrderID: "ORD-1", DistanceKm: 1, WeightKg: 1}}}

		_, err := newDriver(journal).Run(t.Context(), s)

		require.ErrorIs(t, err, boom)
	})

	t.Run("should detach the customer after the last status", func(t *testing.T) {
		journal := kernel.NewMemoryJournal()
		after := 1
		s := simulation.Scenario{Flows: []simulation.StatusFlow{
			{OrderID: "ORD-1", CustomerAddress: "a@example.com", Statuses: []string{"ACCEPTED"}, DetachCustomerBefore: &after},
		}}

		_, err := newDriver(journal).Run(t.Context(), s)

		require.NoError(t, err)
		assert.Len(t, journal.Lines(), 4)
	})
}
