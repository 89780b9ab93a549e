package delivery

import (
	"fmt"

	"orderflow/internal/core/domain/model/kernel"
)

const (
	bikeSpeedKmh  = 15
	carSpeedKmh   = 50
	droneSpeedKmh = 60
)

// Strategy executes the delivery of one order in a particular mode.
//
// The set of implementations is fixed: Bike, Car and Drone. Execute has no domain
// failure; the only error it returns is the journal's.
type Strategy interface {
	Mode() Mode
	SpeedKmh() int
	RequiresClearWeather() bool
	Execute(journal kernel.Journal, orderID kernel.OrderID) error

	isStrategy()
}

// NewStrategy builds the strategy for a mode.
func NewStrategy(mode Mode) (Strategy, error) {
	if err := mode.Validate(); err != nil {
		return nil, err
	}

	switch mode {
	case Bike:
		return NewBike(), nil
	case Car:
		return NewCar(), nil
	default:
		return NewDrone(), nil
	}
}

// BikeStrategy serves nearby, light orders.
type BikeStrategy struct {
	speedKmh int
}

func NewBike() *BikeStrategy {
	return &BikeStrategy{speedKmh: bikeSpeedKmh}
}

func (b *BikeStrategy) Mode() Mode                 { return Bike }
func (b *BikeStrategy) SpeedKmh() int              { return b.speedKmh }
func (b *BikeStrategy) RequiresClearWeather() bool { return false }
func (b *BikeStrategy) isStrategy()                {}

func (b *BikeStrategy) Execute(journal kernel.Journal, orderID kernel.OrderID) error {
	return journal.Record(fmt.Sprintf("[%s] delivering order %s: nearby zone delivery (speed %d km/h)",
		Bike, orderID, b.speedKmh))
}

// CarStrategy serves interurban routes and large orders.
type CarStrategy struct {
	speedKmh int
}

func NewCar() *CarStrategy {
	return &CarStrategy{speedKmh: carSpeedKmh}
}

func (c *CarStrategy) Mode() Mode                 { return Car }
func (c *CarStrategy) SpeedKmh() int              { return c.speedKmh }
func (c *CarStrategy) RequiresClearWeather() bool { return false }
func (c *CarStrategy) isStrategy()                {}

func (c *CarStrategy) Execute(journal kernel.Journal, orderID kernel.OrderID) error {
	return journal.Record(fmt.Sprintf("[%s] delivering order %s: interurban route or large order (speed %d km/h)",
		Car, orderID, c.speedKmh))
}

// DroneStrategy serves short, light deliveries and can only fly in clear weather.
type DroneStrategy struct {
	speedKmh             int
	requiresClearWeather bool
}

func NewDrone() *DroneStrategy {
	return &DroneStrategy{speedKmh: droneSpeedKmh, requiresClearWeather: true}
}

func (d *DroneStrategy) Mode() Mode                 { return Drone }
func (d *DroneStrategy) SpeedKmh() int              { return d.speedKmh }
func (d *DroneStrategy) RequiresClearWeather() bool { return d.requiresClearWeather }
func (d *DroneStrategy) isStrategy()                {}

func (d *DroneStrategy) Execute(journal kernel.Journal, orderID kernel.OrderID) error {
	return journal.Record(fmt.Sprintf("[%s] delivering order %s: fast aerial delivery (speed %d km/h)",
		Drone, orderID, d.speedKmh))
}
