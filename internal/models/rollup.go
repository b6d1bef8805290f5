package models

import "time"

// DriverRouteRollup summarizes one driver's trips on one route.
// Computed on demand, never cached.
type DriverRouteRollup struct {
	Route      string     `json:"route"`
	OriginCity string     `json:"origin_city"`
	DestCity   string     `json:"dest_city"`
	Trips      int        `json:"trips"`
	Prices     []float64  `json:"prices"`
	Costs      []float64  `json:"costs"`
	LastDate   string     `json:"last_date,omitempty"`
	LastTime   *time.Time `json:"-"`
	Cities     []string   `json:"cities"`
	AvgPrice   float64    `json:"avg_price"`
	AvgCost    float64    `json:"avg_cost"`
	AvgMargin  float64    `json:"avg_margin"`
}

// RouteDriverRollup summarizes one driver's trips on a fixed route
type RouteDriverRollup struct {
	DriverName  string     `json:"driver_name"`
	DriverPhone string     `json:"driver_phone,omitempty"`
	Trips       int        `json:"trips"`
	Prices      []float64  `json:"prices"`
	Costs       []float64  `json:"costs"`
	LastDate    string     `json:"last_date,omitempty"`
	LastTime    *time.Time `json:"-"`
	Vehicles    []string   `json:"vehicles"`
	AvgPrice    float64    `json:"avg_price"`
	AvgCost     float64    `json:"avg_cost"`
	AvgMargin   float64    `json:"avg_margin"`
}

// RouteDetails is the drill-down view of a single route
type RouteDetails struct {
	OriginCity string              `json:"origin_city"`
	DestCity   string              `json:"dest_city"`
	Drivers    []RouteDriverRollup `json:"drivers"`
	Cities     []string            `json:"cities"`
	TotalTrips int                 `json:"total_trips"`
}

// SearchResult holds the three confidence tiers of a corridor search
type SearchResult struct {
	Exact   []RouteSummary  `json:"exact"`
	Partial []RouteSegment  `json:"partial"`
	Zone    []DriverSummary `json:"zone"`
}

// Empty reports whether no tier matched
func (r SearchResult) Empty() bool {
	return len(r.Exact) == 0 && len(r.Partial) == 0 && len(r.Zone) == 0
}

// DriverProfile pairs a driver's summary row with the per-route rollups.
// Summary is nil when the driver has trips but no summary row.
type DriverProfile struct {
	Summary *DriverSummary      `json:"summary"`
	Routes  []DriverRouteRollup `json:"routes"`
}
