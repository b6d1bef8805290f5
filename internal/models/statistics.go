package models

import "time"

// RouteSummary is the pre-aggregated row per (origin, destination) pair.
// Supplied externally, read-only.
type RouteSummary struct {
	OriginCity    string  `json:"origin_city" db:"origin_city"`
	DestCity      string  `json:"dest_city" db:"dest_city"`
	TotalTrips    int     `json:"total_trips" db:"total_trips"`
	UniqueDrivers int     `json:"unique_drivers" db:"unique_drivers"`
	AvgCost       float64 `json:"avg_cost" db:"avg_cost"`
	MinCost       float64 `json:"min_cost" db:"min_cost"`
	MaxCost       float64 `json:"max_cost" db:"max_cost"`
	TotalCost     float64 `json:"total_cost" db:"total_cost"`
}

// DriverSummary is the pre-aggregated row per driver
type DriverSummary struct {
	DriverName   string  `json:"driver_name" db:"driver_name"`
	DriverPhone  string  `json:"driver_phone" db:"driver_phone"`
	TotalTrips   int     `json:"total_trips" db:"total_trips"`
	UniqueRoutes int     `json:"unique_routes" db:"unique_routes"`
	AvgCost      float64 `json:"avg_cost" db:"avg_cost"`
	TotalCost    float64 `json:"total_cost" db:"total_cost"`
}

// Trips returns the ranking key
func (r RouteSummary) Trips() int { return r.TotalTrips }

// Trips returns the ranking key
func (d DriverSummary) Trips() int { return d.TotalTrips }

// TableCounts is shown in the panel header
type TableCounts struct {
	Trips    int `json:"trips"`
	Routes   int `json:"routes"`
	Drivers  int `json:"drivers"`
	Segments int `json:"segments"`
	Cities   int `json:"cities"`
}

// DatasetStatus describes the currently loaded snapshot
type DatasetStatus struct {
	Loaded   bool        `json:"loaded"`
	LoadedAt *time.Time  `json:"loaded_at,omitempty"`
	Source   string      `json:"source"`
	Counts   TableCounts `json:"counts"`
}
