package analysis

import (
	"time"

	"github.com/jengzang/dispatch-backend-go/internal/models"
	"github.com/jengzang/dispatch-backend-go/internal/store"
)

func trip(origin, dest, driver string, price, cost float64) models.TripRecord {
	t := models.TripRecord{OriginRaw: origin, DestRaw: dest, DriverName: driver}
	if price != 0 {
		t.DeclaredPrice = models.Float(price)
	}
	if cost != 0 {
		t.RouteCost = models.Float(cost)
	}
	return t
}

func dated(t models.TripRecord, date string) models.TripRecord {
	t.CreatedAt = date
	if parsed, err := time.Parse("2006-01-02", date); err == nil {
		t.CreatedTime = &parsed
	}
	return t
}

func withVehicle(t models.TripRecord, brand, model, phone string) models.TripRecord {
	t.VehicleBrand, t.VehicleModel, t.DriverPhone = brand, model, phone
	return t
}

func engineFor(trips []models.TripRecord, routes []models.RouteSummary, drivers []models.DriverSummary, segments []models.RouteSegment) *Engine {
	return New(store.NewTables(trips, routes, drivers, segments))
}
