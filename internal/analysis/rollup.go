package analysis

import (
	"sort"
	"time"

	"github.com/jengzang/dispatch-backend-go/internal/city"
	"github.com/jengzang/dispatch-backend-go/internal/models"
	"github.com/jengzang/dispatch-backend-go/internal/stats"
)

// accumulator collects one group's observations before finalizing
type accumulator struct {
	trips    int
	prices   []float64
	costs    []float64
	lastDate string
	lastTime *time.Time
}

func (a *accumulator) add(t models.TripRecord) {
	a.trips++
	if p, ok := t.Price(); ok {
		a.prices = append(a.prices, p)
	}
	if c, ok := t.Cost(); ok {
		a.costs = append(a.costs, c)
	}
	a.observeDate(t)
}

// observeDate keeps the latest creation date. The first non-empty date is
// taken as is; later ones replace it only when both parse and are newer.
func (a *accumulator) observeDate(t models.TripRecord) {
	if t.CreatedAt == "" {
		return
	}
	if a.lastDate == "" {
		a.lastDate, a.lastTime = t.CreatedAt, t.CreatedTime
		return
	}
	if t.CreatedTime == nil {
		return
	}
	if a.lastTime == nil || t.CreatedTime.After(*a.lastTime) {
		a.lastDate, a.lastTime = t.CreatedAt, t.CreatedTime
	}
}

func (a *accumulator) avgPrice() float64  { return stats.Mean(a.prices) }
func (a *accumulator) avgCost() float64   { return stats.Mean(a.costs) }
func (a *accumulator) avgMargin() float64 { return stats.Margin(a.prices, a.costs) }

func nonNil(v []float64) []float64 {
	if v == nil {
		return []float64{}
	}
	return v
}

type driverRouteAcc struct {
	accumulator
	origin, dest string
}

// DriverDetails groups one driver's trips by route, most travelled first.
// Ties keep first-seen order.
func (e *Engine) DriverDetails(driverName string) []models.DriverRouteRollup {
	groups := make(map[string]*driverRouteAcc)
	var order []string

	for _, t := range e.tables.Trips {
		if t.DriverName != driverName {
			continue
		}
		origin, dest := city.Route(t)
		key := models.RouteKey(origin, dest)
		acc, ok := groups[key]
		if !ok {
			acc = &driverRouteAcc{origin: origin, dest: dest}
			groups[key] = acc
			order = append(order, key)
		}
		acc.add(t)
	}

	out := make([]models.DriverRouteRollup, 0, len(order))
	for _, key := range order {
		acc := groups[key]
		out = append(out, models.DriverRouteRollup{
			Route:      key,
			OriginCity: acc.origin,
			DestCity:   acc.dest,
			Trips:      acc.trips,
			Prices:     nonNil(acc.prices),
			Costs:      nonNil(acc.costs),
			LastDate:   acc.lastDate,
			LastTime:   acc.lastTime,
			Cities:     e.routeCities(acc.origin, acc.dest),
			AvgPrice:   acc.avgPrice(),
			AvgCost:    acc.avgCost(),
			AvgMargin:  acc.avgMargin(),
		})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Trips > out[j].Trips })
	return out
}

type routeDriverAcc struct {
	accumulator
	phone    string
	vehicles []string
	seen     map[string]bool
}

func (a *routeDriverAcc) addVehicle(v string) {
	if v == "" || a.seen[v] {
		return
	}
	a.seen[v] = true
	a.vehicles = append(a.vehicles, v)
}

// RouteDetails groups the trips of one route by driver and lists the
// corridor's cities. Cities are matched exactly after extraction.
func (e *Engine) RouteDetails(originCity, destCity string) models.RouteDetails {
	groups := make(map[string]*routeDriverAcc)
	var order []string
	total := 0

	for _, t := range e.tables.Trips {
		origin, dest := city.Route(t)
		if origin != originCity || dest != destCity {
			continue
		}
		total++

		acc, ok := groups[t.DriverName]
		if !ok {
			acc = &routeDriverAcc{phone: t.DriverPhone, seen: make(map[string]bool)}
			groups[t.DriverName] = acc
			order = append(order, t.DriverName)
		}
		acc.add(t)
		acc.addVehicle(t.Vehicle())
	}

	drivers := make([]models.RouteDriverRollup, 0, len(order))
	for _, name := range order {
		acc := groups[name]
		vehicles := acc.vehicles
		if vehicles == nil {
			vehicles = []string{}
		}
		drivers = append(drivers, models.RouteDriverRollup{
			DriverName:  name,
			DriverPhone: acc.phone,
			Trips:       acc.trips,
			Prices:      nonNil(acc.prices),
			Costs:       nonNil(acc.costs),
			LastDate:    acc.lastDate,
			LastTime:    acc.lastTime,
			Vehicles:    vehicles,
			AvgPrice:    acc.avgPrice(),
			AvgCost:     acc.avgCost(),
			AvgMargin:   acc.avgMargin(),
		})
	}
	sort.SliceStable(drivers, func(i, j int) bool { return drivers[i].Trips > drivers[j].Trips })

	return models.RouteDetails{
		OriginCity: originCity,
		DestCity:   destCity,
		Drivers:    drivers,
		Cities:     e.corridorCities(originCity, destCity),
		TotalTrips: total,
	}
}

// findSegment returns the corridor recorded for exactly (origin, dest)
func (e *Engine) findSegment(origin, dest string) (models.RouteSegment, bool) {
	for _, s := range e.tables.Segments {
		if s.OriginCity == origin && s.DestCity == dest {
			return s, true
		}
	}
	return models.RouteSegment{}, false
}

// routeCities is the visited-city list of a driver route: the corridor's
// waypoints when known, else just the two endpoints.
func (e *Engine) routeCities(origin, dest string) []string {
	if s, ok := e.findSegment(origin, dest); ok && len(s.Segments) > 0 {
		return append([]string(nil), s.Segments...)
	}
	return []string{origin, dest}
}

// corridorCities is the ordered distinct union of origin, the corridor's
// waypoints and dest.
func (e *Engine) corridorCities(origin, dest string) []string {
	seen := make(map[string]bool)
	var out []string
	add := func(c string) {
		if seen[c] {
			return
		}
		seen[c] = true
		out = append(out, c)
	}

	add(origin)
	if s, ok := e.findSegment(origin, dest); ok {
		for _, c := range s.Segments {
			add(c)
		}
	}
	add(dest)
	return out
}
