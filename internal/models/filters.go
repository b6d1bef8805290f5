package models

// SearchFilter represents query parameters for corridor search
type SearchFilter struct {
	From string `form:"from"`
	To   string `form:"to"`
}

// TopFilter represents query parameters for ranked lists.
// Limit -1 means "show all"; 0 returns an empty list.
type TopFilter struct {
	Limit int `form:"limit,default=20"`
}

// RouteDetailsFilter represents query parameters for a route drill-down
type RouteDetailsFilter struct {
	Origin string `form:"origin" binding:"required"`
	Dest   string `form:"dest" binding:"required"`
}

// CityFilter represents query parameters for city suggestions
type CityFilter struct {
	Prefix string `form:"prefix"`
	Limit  int    `form:"limit"`
}

// FleetFilter limits each fleet list
type FleetFilter struct {
	Limit int `form:"limit,default=10"`
}
