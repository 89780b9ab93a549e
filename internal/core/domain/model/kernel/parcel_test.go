package kernel_test

import (
	"math"
	"testing"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewParcel(t *testing.T) {
	t.Run("should create parcel with valid attributes", func(t *testing.T) {
		p, err := kernel.NewParcel(2.5, 1.0, true)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.InDelta(t, 2.5, p.DistanceKm(), 1e-9)
		assert.InDelta(t, 1.0, p.WeightKg(), 1e-9)
		assert.True(t, p.WeatherOK())
	})

	t.Run("should accept zero distance and weight", func(t *testing.T) {
		p, err := kernel.NewParcel(0, 0, false)

		require.NoError(t, err)
		assert.Zero(t, p.DistanceKm())
		assert.Zero(t, p.WeightKg())
		assert.False(t, p.WeatherOK())
	})

	t.Run("should reject negative distance", func(t *testing.T) {
		_, err := kernel.NewParcel(-0.1, 1, true)

		require.Error(t, err)
		var rangeErr *errs.ValueIsOutOfRangeError
		require.ErrorAs(t, err, &rangeErr)
		assert.Equal(t, "distance_km", rangeErr.ParamName)
	})

	t.Run("should reject negative weight", func(t *testing.T) {
		_, err := kernel.NewParcel(1, -3, true)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "weight_kg is -3")
	})

	t.Run("should reject NaN values", func(t *testing.T) {
		_, err := kernel.NewParcel(math.NaN(), 1, true)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should join multiple validation errors", func(t *testing.T) {
		_, err := kernel.NewParcel(-1, -1, true)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "distance_km")
		assert.Contains(t, err.Error(), "weight_kg")
	})
}

func TestParcel_Validate(t *testing.T) {
	t.Run("should fail for zero value parcel", func(t *testing.T) {
		var p kernel.Parcel

		err := p.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrParcelIsNotConstructed, err)
	})
}

func TestParcel_String(t *testing.T) {
	p, _ := kernel.NewParcel(3, 5, false)

	assert.Equal(t, "Parcel(distance=3km, weight=5kg, weather_ok=false)", p.String())
}
