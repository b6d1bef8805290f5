package models

// FleetOverview is the fleet composition view
type FleetOverview struct {
	TotalTrips   int               `json:"total_trips"`
	VehicleTrips int               `json:"vehicle_trips"` // trips with a known brand
	AvgPrice     float64           `json:"avg_price"`
	AvgCost      float64           `json:"avg_cost"`
	Brands       []BrandCount      `json:"brands"`
	BrandPrices  []BrandPrice      `json:"brand_prices"`
	Models       []ModelStat       `json:"models"`
	Routes       []RoutePopularity `json:"routes"`
}

// BrandCount is the number of trips per vehicle brand
type BrandCount struct {
	Brand string  `json:"brand"`
	Trips int     `json:"trips"`
	Share float64 `json:"share"` // percent of all trips
}

// BrandPrice is the average declared price per brand
type BrandPrice struct {
	Brand    string  `json:"brand"`
	AvgPrice float64 `json:"avg_price"`
}

// ModelStat aggregates trips per "brand model"
type ModelStat struct {
	Model    string  `json:"model"`
	Trips    int     `json:"trips"`
	AvgPrice float64 `json:"avg_price"` // 0 when no prices recorded
}

// RoutePopularity aggregates trips per extracted route.
// AvgPrice and AvgCost divide by all trips on the route.
type RoutePopularity struct {
	Route    string  `json:"route"`
	Trips    int     `json:"trips"`
	AvgPrice float64 `json:"avg_price"`
	AvgCost  float64 `json:"avg_cost"`
}
