package commands_test

import (
	"errors"
	"testing"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/domain/model/delivery"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatchOrderCommandHandler_Handle(t *testing.T) {
	tests := []struct {
		name      string
		orderID   string
		distance  float64
		weight    float64
		weatherOK bool
		mode      delivery.Mode
		line      string
	}{
		{
			name: "should fly a light nearby parcel", orderID: "ORD-001",
			distance: 2, weight: 1, weatherOK: true, mode: delivery.Drone,
			line: "[Drone] delivering order ORD-001: fast aerial delivery (speed 60 km/h)",
		},
		{
			name: "should ride a medium parcel", orderID: "ORD-002",
			distance: 4, weight: 5, weatherOK: true, mode: delivery.Bike,
			line: "[Bike] delivering order ORD-002: nearby zone delivery (speed 15 km/h)",
		},
		{
			name: "should drive a far heavy parcel", orderID: "ORD-003",
			distance: 15, weight: 10, weatherOK: true, mode: delivery.Car,
			line: "[Car] delivering order ORD-003: interurban route or large order (speed 50 km/h)",
		},
		{
			name: "should not fly in bad weather", orderID: "ORD-004",
			distance: 3, weight: 1.5, weatherOK: false, mode: delivery.Bike,
			line: "[Bike] delivering order ORD-004: nearby zone delivery (speed 15 km/h)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			journal := kernel.NewMemoryJournal()
			h := commands.NewDispatchOrderCommandHandler(services.NewDeliverySelector(), journal, nil)
			parcel, err := kernel.NewParcel(tt.distance, tt.weight, tt.weatherOK)
			require.NoError(t, err)
			cmd, err := commands.NewDispatchOrderCommand(kernel.MustOrderID(tt.orderID), parcel)
			require.NoError(t, err)

			mode, err := h.Handle(t.Context(), cmd)

			require.NoError(t, err)
			assert.Equal(t, tt.mode, mode)
			assert.Equal(t, []string{tt.line}, journal.Lines())
		})
	}
}

func TestDispatchOrderCommandHandler_Handle_JournalError(t *testing.T) {
	boom := errors.New("sink closed")
	journal := kernel.JournalFunc(func(string) error { return boom })
	h := commands.NewDispatchOrderCommandHandler(services.NewDeliverySelector(), journal, nil)
	parcel, _ := kernel.NewParcel(20, 20, true)
	cmd, _ := commands.NewDispatchOrderCommand(kernel.MustOrderID("ORD-005"), parcel)

	mode, err := h.Handle(t.Context(), cmd)

	require.ErrorIs(t, err, boom)
	assert.Equal(t, delivery.Unknown, mode)
}

func TestDispatchOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	h := commands.NewDispatchOrderCommandHandler(services.NewDeliverySelector(), kernel.NewMemoryJournal(), nil)

	_, err := h.Handle(t.Context(), commands.DispatchOrderCommand{})

	require.ErrorIs(t, err, commands.ErrDispatchOrderCommandIsNotConstructed)
}
