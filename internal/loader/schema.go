package loader

import (
	"strings"

	"github.com/jengzang/dispatch-backend-go/internal/models"
)

// Trip columns appear either in the wide Cyrillic export or in the
// normalized English form. Each field lists every accepted header.
var (
	tripOrigin  = []string{"origin_full", "Откуда полный", "Откуда"}
	tripDest    = []string{"dest_full", "Куда полный", "Куда"}
	tripDriver  = []string{"driver_name", "Водитель"}
	tripPhone   = []string{"driver_phone", "Номер телефона", "Телефон"}
	tripBrand   = []string{"vehicle_brand", "Марка"}
	tripModel   = []string{"vehicle_model", "Модель"}
	tripPrice   = []string{"declared_price", "ОБЪЯВЛЕННАЯ ЦЕНА"}
	tripCost    = []string{"route_cost", "СЕБЕСТОИМОСТЬ МАРШРУТА"}
	tripCreated = []string{"created_at", "Дата создания"}

	segmentTrips = []string{"trips", "total_trips"}
)

// row gives access to one CSV record by header name
type row struct {
	index  map[string]int
	record []string
}

// get returns the first non-empty cell among the given headers
func (r row) get(names ...string) string {
	for _, name := range names {
		i, ok := r.index[name]
		if !ok || i >= len(r.record) {
			continue
		}
		if v := strings.TrimSpace(r.record[i]); v != "" {
			return v
		}
	}
	return ""
}

// headerIndex maps trimmed header names to column positions. The first
// header may carry a UTF-8 BOM.
func headerIndex(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		h = strings.TrimSpace(h)
		if _, dup := index[h]; !dup {
			index[h] = i
		}
	}
	return index
}

func tripFromRow(r row) models.TripRecord {
	t := models.TripRecord{
		OriginRaw:     r.get(tripOrigin...),
		DestRaw:       r.get(tripDest...),
		DriverName:    r.get(tripDriver...),
		DriverPhone:   NormalizePhone(r.get(tripPhone...)),
		VehicleBrand:  r.get(tripBrand...),
		VehicleModel:  r.get(tripModel...),
		DeclaredPrice: ParseNumber(r.get(tripPrice...)),
		RouteCost:     ParseNumber(r.get(tripCost...)),
		CreatedAt:     r.get(tripCreated...),
	}
	t.CreatedTime = ParseDate(t.CreatedAt)
	return t
}

func routeFromRow(r row) models.RouteSummary {
	return models.RouteSummary{
		OriginCity:    r.get("origin_city"),
		DestCity:      r.get("dest_city"),
		TotalTrips:    ParseInt(r.get("total_trips")),
		UniqueDrivers: ParseInt(r.get("unique_drivers")),
		AvgCost:       ParseFloat(r.get("avg_cost")),
		MinCost:       ParseFloat(r.get("min_cost")),
		MaxCost:       ParseFloat(r.get("max_cost")),
		TotalCost:     ParseFloat(r.get("total_cost")),
	}
}

func driverFromRow(r row) models.DriverSummary {
	return models.DriverSummary{
		DriverName:   r.get("driver_name"),
		DriverPhone:  NormalizePhone(r.get("driver_phone")),
		TotalTrips:   ParseInt(r.get("total_trips")),
		UniqueRoutes: ParseInt(r.get("unique_routes")),
		AvgCost:      ParseFloat(r.get("avg_cost")),
		TotalCost:    ParseFloat(r.get("total_cost")),
	}
}

func segmentFromRow(r row) models.RouteSegment {
	return models.RouteSegment{
		OriginCity: r.get("origin_city"),
		DestCity:   r.get("dest_city"),
		Trips:      ParseInt(r.get(segmentTrips...)),
		Segments:   models.ParseSegments(r.get("segments")),
	}
}
