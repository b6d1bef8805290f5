package models

import "time"

// TripRecord represents one observed shipment from the master trips table.
// Records are immutable once loaded; identity is row order.
type TripRecord struct {
	// Free-text addresses, city is extracted on demand
	OriginRaw string `json:"origin_raw" db:"origin_raw"`
	DestRaw   string `json:"dest_raw" db:"dest_raw"`

	// Driver and vehicle
	DriverName   string `json:"driver_name" db:"driver_name"`
	DriverPhone  string `json:"driver_phone,omitempty" db:"driver_phone"` // digits only
	VehicleBrand string `json:"vehicle_brand,omitempty" db:"vehicle_brand"`
	VehicleModel string `json:"vehicle_model,omitempty" db:"vehicle_model"`

	// Money, nil when the source cell is empty
	DeclaredPrice *float64 `json:"declared_price,omitempty" db:"declared_price"`
	RouteCost     *float64 `json:"route_cost,omitempty" db:"route_cost"`

	// CreatedAt keeps the source text; CreatedTime is set when it parses
	CreatedAt   string     `json:"created_at,omitempty" db:"created_at"`
	CreatedTime *time.Time `json:"-" db:"-"`
}

// Price returns the declared price and whether it counts as an observation.
// Zero prices are treated as absent.
func (t TripRecord) Price() (float64, bool) {
	return present(t.DeclaredPrice)
}

// Cost returns the route cost and whether it counts as an observation.
func (t TripRecord) Cost() (float64, bool) {
	return present(t.RouteCost)
}

// Vehicle returns "brand model", or "" unless both parts are known.
func (t TripRecord) Vehicle() string {
	if t.VehicleBrand == "" || t.VehicleModel == "" {
		return ""
	}
	return t.VehicleBrand + " " + t.VehicleModel
}

func present(v *float64) (float64, bool) {
	if v == nil || *v == 0 {
		return 0, false
	}
	return *v, true
}

// Float returns a pointer to v, handy for building records in code.
func Float(v float64) *float64 {
	return &v
}
