package delivery_test

import (
	"errors"
	"testing"

	"orderflow/internal/core/domain/model/delivery"
	"orderflow/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrategies_Constants(t *testing.T) {
	testCases := []struct {
		name          string
		strategy      delivery.Strategy
		mode          delivery.Mode
		speed         int
		needsClearSky bool
	}{
		{"bike", delivery.NewBike(), delivery.Bike, 15, false},
		{"car", delivery.NewCar(), delivery.Car, 50, false},
		{"drone", delivery.NewDrone(), delivery.Drone, 60, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.mode, tc.strategy.Mode())
			assert.Equal(t, tc.speed, tc.strategy.SpeedKmh())
			assert.Equal(t, tc.needsClearSky, tc.strategy.RequiresClearWeather())
		})
	}
}

func TestStrategies_Execute(t *testing.T) {
	orderID := kernel.MustOrderID("ORD-001")

	testCases := []struct {
		strategy delivery.Strategy
		expected string
	}{
		{delivery.NewBike(), "[Bike] delivering order ORD-001: nearby zone delivery (speed 15 km/h)"},
		{delivery.NewCar(), "[Car] delivering order ORD-001: interurban route or large order (speed 50 km/h)"},
		{delivery.NewDrone(), "[Drone] delivering order ORD-001: fast aerial delivery (speed 60 km/h)"},
	}

	for _, tc := range testCases {
		t.Run("should emit one confirmation line for "+tc.strategy.Mode().String(), func(t *testing.T) {
			journal := kernel.NewMemoryJournal()

			err := tc.strategy.Execute(journal, orderID)

			require.NoError(t, err)
			assert.Equal(t, []string{tc.expected}, journal.Lines())
		})
	}

	t.Run("should surface journal failures", func(t *testing.T) {
		boom := errors.New("console closed")
		journal := kernel.JournalFunc(func(string) error { return boom })

		err := delivery.NewDrone().Execute(journal, orderID)

		require.ErrorIs(t, err, boom)
	})
}

func TestNewStrategy(t *testing.T) {
	t.Run("should build a strategy per mode", func(t *testing.T) {
		for _, m := range []delivery.Mode{delivery.Bike, delivery.Car, delivery.Drone} {
			s, err := delivery.NewStrategy(m)

			require.NoError(t, err)
			assert.Equal(t, m, s.Mode())
		}
	})

	t.Run("should reject unknown mode", func(t *testing.T) {
		s, err := delivery.NewStrategy(delivery.Unknown)

		require.Error(t, err)
		assert.Nil(t, s)
	})

	t.Run("should build a fresh value on every call", func(t *testing.T) {
		a, _ := delivery.NewStrategy(delivery.Bike)
		b, _ := delivery.NewStrategy(delivery.Bike)

		assert.NotSame(t, a, b)
	})
}
