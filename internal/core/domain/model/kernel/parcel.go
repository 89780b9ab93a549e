package kernel

import (
	"errors"
	"fmt"
	"math"

	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

// ErrParcelIsNotConstructed is returned when validating a zero-value Parcel.
var ErrParcelIsNotConstructed = errs.NewValueIsRequiredError("parcel must be created via NewParcel")

// Parcel holds the order attributes delivery selection looks at: how far the
// order travels, how heavy it is and whether the weather allows flying.
//
// Parcel is immutable; distance and weight are never negative.
type Parcel struct { //nolint:recvcheck //using for validation
	distanceKm float64
	weightKg   float64
	weatherOK  bool
	guard      guard.ConstructorGuard
}

// NewParcel validates and builds a Parcel. Negative or NaN distance and weight are
// rejected with errs.ValueIsOutOfRangeError; when both are wrong the errors are joined.
func NewParcel(distanceKm, weightKg float64, weatherOK bool) (Parcel, error) {
	p := Parcel{
		weatherOK: weatherOK,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setDistance(distanceKm),
		p.setWeight(weightKg),
	); err != nil {
		return Parcel{}, err
	}

	return p, nil
}

func (p Parcel) Validate() error {
	return p.guard.Validate(ErrParcelIsNotConstructed)
}

// DistanceKm returns the delivery distance in kilometers.
func (p Parcel) DistanceKm() float64 {
	return p.distanceKm
}

// WeightKg returns the order weight in kilograms.
func (p Parcel) WeightKg() float64 {
	return p.weightKg
}

// WeatherOK reports whether the weather permits drone flights.
func (p Parcel) WeatherOK() bool {
	return p.weatherOK
}

func (p Parcel) String() string {
	return fmt.Sprintf("Parcel(distance=%gkm, weight=%gkg, weather_ok=%t)", p.distanceKm, p.weightKg, p.weatherOK)
}

func (p *Parcel) setDistance(km float64) error {
	if math.IsNaN(km) || km < 0 {
		return errs.NewValueIsOutOfRangeError("distance_km", km, 0, math.Inf(1))
	}
	p.distanceKm = km
	return nil
}

func (p *Parcel) setWeight(kg float64) error {
	if math.IsNaN(kg) || kg < 0 {
		return errs.NewValueIsOutOfRangeError("weight_kg", kg, 0, math.Inf(1))
	}
	p.weightKg = kg
	return nil
}
