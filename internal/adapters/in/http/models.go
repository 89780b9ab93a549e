package http

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewDelivery asks for a delivery mode to be chosen and executed. All parcel
// fields are required.
type NewDelivery struct {
	OrderID    string   `json:"order_id"`
	DistanceKm *float64 `json:"distance_km"`
	WeightKg   *float64 `json:"weight_kg"`
	WeatherOK  *bool    `json:"weather_ok"`
}

type Delivery struct {
	OrderID  string `json:"order_id"`
	Mode     string `json:"mode"`
	SpeedKmh int    `json:"speed_kmh"`
}

// NewOrder creates an order. Without an id one is generated; without a customer
// address no customer notifier is attached.
type NewOrder struct {
	ID              string `json:"id,omitempty"`
	CustomerAddress string `json:"customer_address,omitempty"`
}

type Order struct {
	ID        string   `json:"id"`
	Status    string   `json:"status"`
	Observers []string `json:"observers"`
}

type StatusChange struct {
	Status string `json:"status"`
}

type Unsubscribed struct {
	OrderID  string `json:"order_id"`
	Detached int    `json:"detached"`
}

type JournalLines struct {
	Lines []string `json:"lines"`
}
