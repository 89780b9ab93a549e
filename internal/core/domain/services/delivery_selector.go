package services

import (
	"orderflow/internal/core/domain/model/delivery"
	"orderflow/internal/core/domain/model/kernel"
)

// Selection thresholds. Limits are inclusive.
const (
	DroneMaxDistanceKm = 5.0
	DroneMaxWeightKg   = 2.0
	BikeMaxDistanceKm  = 7.0
	BikeMaxWeightKg    = 8.0
)

// DeliverySelector is a domain service that picks the delivery strategy for an order
// from its distance, weight and the weather.
//
// Rules, evaluated in order (the first match wins):
//  1. distance <= 5 km, weight <= 2 kg and clear weather: Drone
//  2. distance <= 7 km and weight <= 8 kg: Bike
//  3. otherwise: Car
//
// The rules overlap and their order is the tie-break. A drone-sized order
// in bad weather falls through to rule 2, so 3 km / 5 kg / bad weather goes by Bike.
//
// Example usage:
//
//	selector := services.NewDeliverySelector()
//	strategy, err := selector.Select(2.0, 1.0, true)
//	if err != nil {
//	    return err // negative distance or weight
//	}
//	_ = strategy.Execute(journal, orderID) // Drone
type DeliverySelector struct{}

// NewDeliverySelector creates a DeliverySelector. It holds no state or configuration.
func NewDeliverySelector() DeliverySelector {
	return DeliverySelector{}
}

// Select validates the raw attributes and returns a freshly built strategy.
// Negative or NaN distance and weight yield errs.ValueIsOutOfRangeError.
func (s DeliverySelector) Select(distanceKm, weightKg float64, weatherOK bool) (delivery.Strategy, error) {
	parcel, err := kernel.NewParcel(distanceKm, weightKg, weatherOK)
	if err != nil {
		return nil, err
	}
	return s.SelectFor(parcel)
}

// SelectFor returns the strategy for an already validated parcel.
func (s DeliverySelector) SelectFor(parcel kernel.Parcel) (delivery.Strategy, error) {
	if err := parcel.Validate(); err != nil {
		return nil, err
	}
	return delivery.NewStrategy(s.ModeFor(parcel))
}

// ModeFor applies the selection rules without building a strategy.
func (s DeliverySelector) ModeFor(parcel kernel.Parcel) delivery.Mode {
	distance, weight := parcel.DistanceKm(), parcel.WeightKg()

	switch {
	case distance <= DroneMaxDistanceKm && weight <= DroneMaxWeightKg && parcel.WeatherOK():
		return delivery.Drone
	case distance <= BikeMaxDistanceKm && weight <= BikeMaxWeightKg:
		return delivery.Bike
	default:
		return delivery.Car
	}
}
