// Package simulation replays scripted deliveries and order status flows through the
// application use cases, writing everything to the journal.
package simulation

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Scenario is the content of a scenario file.
type Scenario struct {
	Deliveries []DeliveryCase `yaml:"deliveries"`
	Flows      []StatusFlow   `yaml:"flows"`
}

// DeliveryCase describes one parcel to dispatch. WeatherOK defaults to true.
type DeliveryCase struct {
	OrderID    string  `yaml:"order_id"`
	DistanceKm float64 `yaml:"distance_km"`
	WeightKg   float64 `yaml:"weight_kg"`
	WeatherOK  *bool   `yaml:"weather_ok"`
}

// StatusFlow creates an order, then applies Statuses in order. When
// DetachCustomerBefore is set, the customer is unsubscribed right before the
// status at that index.
type StatusFlow struct {
	OrderID              string   `yaml:"order_id"`
	CustomerAddress      string   `yaml:"customer_address"`
	Statuses             []string `yaml:"statuses"`
	DetachCustomerBefore *int     `yaml:"detach_customer_before"`
}

// Weather resolves the default for an absent weather_ok.
func (c DeliveryCase) Weather() bool {
	if c.WeatherOK == nil {
		return true
	}
	return *c.WeatherOK
}

// DefaultScenario reproduces the shop's demo run: four parcels covering every
// selection rule and the ORD-100 status flow.
func DefaultScenario() Scenario {
	detachBefore := 4
	clearSky, stormy := true, false
	return Scenario{
		Deliveries: []DeliveryCase{
			{OrderID: "ORD-001", DistanceKm: 2.0, WeightKg: 1.0, WeatherOK: &clearSky},
			{OrderID: "ORD-002", DistanceKm: 4.0, WeightKg: 5.0, WeatherOK: &clearSky},
			{OrderID: "ORD-003", DistanceKm: 15.0, WeightKg: 10.0, WeatherOK: &clearSky},
			{OrderID: "ORD-004", DistanceKm: 3.0, WeightKg: 1.5, WeatherOK: &stormy},
		},
		Flows: []StatusFlow{
			{
				OrderID:              "ORD-100",
				CustomerAddress:      "cliente@example.com",
				Statuses:             []string{"ACEPTADO", "EN_PREPARACION", "EN_REPARTO", "ENTREGADO", "ARCHIVADO"},
				DetachCustomerBefore: &detachBefore,
			},
		},
	}
}

// Load reads and parses a scenario file.
func Load(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML scenario.
func Parse(data []byte) (Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Scenario{}, fmt.Errorf("failed to parse scenario file: %w", err)
	}

	if err := s.Validate(); err != nil {
		return Scenario{}, fmt.Errorf("invalid scenario: %w", err)
	}
	return s, nil
}

// Validate checks the structure only; parcel values and identifiers are validated
// by the domain when the scenario runs.
func (s Scenario) Validate() error {
	if len(s.Deliveries) == 0 && len(s.Flows) == 0 {
		return errors.New("scenario has no deliveries and no flows")
	}

	var problems []error
	for i, f := range s.Flows {
		if strings.TrimSpace(f.OrderID) == "" {
			problems = append(problems, fmt.Errorf("flow %d: order_id is required", i))
		}
		if f.DetachCustomerBefore != nil {
			if idx := *f.DetachCustomerBefore; idx < 0 || idx > len(f.Statuses) {
				problems = append(problems, fmt.Errorf(
					"flow %d: detach_customer_before (%d) must be between 0 and %d", i, idx, len(f.Statuses)))
			}
		}
	}
	return errors.Join(problems...)
}
