package analysis

import (
	"reflect"
	"testing"

	"github.com/jengzang/dispatch-backend-go/internal/models"
)

func TestDriverDetailsScenario(t *testing.T) {
	e := engineFor([]models.TripRecord{
		trip("Москва", "Казань", "Иванов", 1000, 800),
		trip("Москва", "Казань", "Иванов", 1200, 900),
	}, nil, nil, nil)

	got := e.DriverDetails("Иванов")
	if len(got) != 1 {
		t.Fatalf("DriverDetails() = %d groups, want 1", len(got))
	}

	g := got[0]
	if g.Route != "Москва → Казань" {
		t.Errorf("Route = %q", g.Route)
	}
	if g.Trips != 2 || g.AvgPrice != 1100 || g.AvgCost != 850 || g.AvgMargin != 250 {
		t.Errorf("got trips=%d avgPrice=%v avgCost=%v avgMargin=%v, want 2/1100/850/250",
			g.Trips, g.AvgPrice, g.AvgCost, g.AvgMargin)
	}
	if !reflect.DeepEqual(g.Cities, []string{"Москва", "Казань"}) {
		t.Errorf("Cities = %v, want endpoints only", g.Cities)
	}
}

func TestDriverDetailsAverages(t *testing.T) {
	e := engineFor([]models.TripRecord{
		trip("Тула, вокзал", "Орёл", "Петров", 0, 0),
		trip("Тула", "Орёл, склад 2", "Петров", 0, 500),
		trip("Самара", "Уфа", "Петров", 100, 0),
		trip("Самара", "Уфа", "Петров", 0, 0),
		trip("Самара", "Уфа", "Петров", 200, 0),
	}, nil, nil, nil)

	got := e.DriverDetails("Петров")
	if len(got) != 2 {
		t.Fatalf("DriverDetails() = %d groups, want 2", len(got))
	}

	samara, tula := got[0], got[1]
	if samara.Route != "Самара → Уфа" || samara.Trips != 3 {
		t.Fatalf("first group = %s (%d), want Самара → Уфа (3)", samara.Route, samara.Trips)
	}
	if samara.AvgPrice != 150 {
		t.Errorf("AvgPrice = %v, want 150 (absent prices excluded)", samara.AvgPrice)
	}
	if samara.AvgMargin != 0 {
		t.Errorf("AvgMargin = %v, want 0 without costs", samara.AvgMargin)
	}

	if tula.AvgPrice != 0 {
		t.Errorf("AvgPrice = %v, want 0 with no prices", tula.AvgPrice)
	}
	if tula.AvgCost != 500 {
		t.Errorf("AvgCost = %v, want 500", tula.AvgCost)
	}
	if len(tula.Prices) != 0 || tula.Prices == nil {
		t.Errorf("Prices = %#v, want empty non-nil", tula.Prices)
	}
}

func TestDriverDetailsStableOrderAndSegments(t *testing.T) {
	segments := []models.RouteSegment{
		{OriginCity: "Пермь", DestCity: "Уфа", Segments: []string{"Пермь", "Кунгур", "Уфа"}},
	}
	e := engineFor([]models.TripRecord{
		trip("Пермь", "Уфа", "Орлов", 0, 0),
		trip("Тверь", "Псков", "Орлов", 0, 0),
		trip("Казань", "Самара", "Орлов", 0, 0),
		trip("Казань", "Самара", "Орлов", 0, 0),
		trip("Пермь", "Уфа", "Другой", 0, 0),
	}, nil, nil, segments)

	got := e.DriverDetails("Орлов")
	var routes []string
	for _, g := range got {
		routes = append(routes, g.Route)
	}
	want := []string{"Казань → Самара", "Пермь → Уфа", "Тверь → Псков"}
	if !reflect.DeepEqual(routes, want) {
		t.Errorf("routes = %v, want %v", routes, want)
	}

	if !reflect.DeepEqual(got[1].Cities, []string{"Пермь", "Кунгур", "Уфа"}) {
		t.Errorf("Cities = %v, want corridor waypoints", got[1].Cities)
	}

	got[1].Cities[1] = "changed"
	if segments[0].Segments[1] != "Кунгур" {
		t.Error("rollup aliases the segment table")
	}
}

func TestDriverDetailsLastDate(t *testing.T) {
	e := engineFor([]models.TripRecord{
		dated(trip("Тула", "Орёл", "Петров", 0, 0), "2024-03-01"),
		dated(trip("Тула", "Орёл", "Петров", 0, 0), "2024-05-10"),
		dated(trip("Тула", "Орёл", "Петров", 0, 0), "2024-04-01"),
		trip("Тула", "Орёл", "Петров", 0, 0),
	}, nil, nil, nil)

	got := e.DriverDetails("Петров")
	if got[0].LastDate != "2024-05-10" {
		t.Errorf("LastDate = %q, want 2024-05-10", got[0].LastDate)
	}
}

func TestDriverDetailsUnknownDriver(t *testing.T) {
	e := engineFor([]models.TripRecord{trip("Тула", "Орёл", "Петров", 0, 0)}, nil, nil, nil)
	got := e.DriverDetails("Никто")
	if got == nil || len(got) != 0 {
		t.Errorf("DriverDetails() = %#v, want empty non-nil", got)
	}
}

func TestRouteDetails(t *testing.T) {
	segments := []models.RouteSegment{
		{OriginCity: "Москва", DestCity: "Уфа", Segments: []string{"Москва", "Владимир", "Казань", "Уфа"}},
	}
	e := engineFor([]models.TripRecord{
		withVehicle(trip("Москва, склад", "Уфа", "Иванов", 1000, 600), "КАМАЗ", "5490", "79991234567"),
		withVehicle(trip("Москва", "Уфа, терминал", "Петров", 2000, 1500), "MAN", "TGX", "79990000000"),
		withVehicle(trip("Москва", "Уфа", "Петров", 0, 500), "MAN", "TGX", "79990000000"),
		withVehicle(trip("Москва", "Уфа", "Петров", 3000, 0), "Volvo", "FH", ""),
		withVehicle(trip("Москва", "Уфа", "Петров", 0, 0), "Volvo", "", ""),
		trip("Москва", "Казань", "Петров", 0, 0),
		trip("москва", "Уфа", "Сидоров", 0, 0),
	}, nil, nil, segments)

	got := e.RouteDetails("Москва", "Уфа")
	if got.TotalTrips != 5 {
		t.Errorf("TotalTrips = %d, want 5 (exact city match)", got.TotalTrips)
	}
	if !reflect.DeepEqual(got.Cities, []string{"Москва", "Владимир", "Казань", "Уфа"}) {
		t.Errorf("Cities = %v", got.Cities)
	}
	if len(got.Drivers) != 2 {
		t.Fatalf("Drivers = %d, want 2", len(got.Drivers))
	}

	p := got.Drivers[0]
	if p.DriverName != "Петров" || p.Trips != 4 {
		t.Fatalf("first driver = %s (%d), want Петров (4)", p.DriverName, p.Trips)
	}
	if p.DriverPhone != "79990000000" {
		t.Errorf("DriverPhone = %q, want phone of first trip", p.DriverPhone)
	}
	if !reflect.DeepEqual(p.Vehicles, []string{"MAN TGX", "Volvo FH"}) {
		t.Errorf("Vehicles = %v", p.Vehicles)
	}
	if p.AvgPrice != 2500 || p.AvgCost != 1000 || p.AvgMargin != 1500 {
		t.Errorf("avgs = %v/%v/%v, want 2500/1000/1500", p.AvgPrice, p.AvgCost, p.AvgMargin)
	}
}

func TestRouteDetailsWithoutSegment(t *testing.T) {
	e := engineFor([]models.TripRecord{trip("Тула", "Орёл", "Петров", 0, 0)}, nil, nil, nil)

	got := e.RouteDetails("Тула", "Орёл")
	if !reflect.DeepEqual(got.Cities, []string{"Тула", "Орёл"}) {
		t.Errorf("Cities = %v", got.Cities)
	}
	if got.Drivers[0].AvgPrice != 0 || got.Drivers[0].Vehicles == nil {
		t.Errorf("unexpected driver rollup %+v", got.Drivers[0])
	}
}

func TestRouteDetailsNoTrips(t *testing.T) {
	got := engineFor(nil, nil, nil, nil).RouteDetails("Тула", "Орёл")
	if got.TotalTrips != 0 || len(got.Drivers) != 0 {
		t.Errorf("RouteDetails() = %+v, want empty", got)
	}
	if !reflect.DeepEqual(got.Cities, []string{"Тула", "Орёл"}) {
		t.Errorf("Cities = %v", got.Cities)
	}
}

func TestRouteDetailsIsCaseSensitive(t *testing.T) {
	e := engineFor([]models.TripRecord{trip("Москва, ул. Ленина", "Казань", "Иванов", 1000, 800)}, nil, nil, nil)

	if got := e.RouteDetails("москва", "казань"); got.TotalTrips != 0 || len(got.Drivers) != 0 {
		t.Errorf("lower-case query matched: %+v", got)
	}
	if got := e.RouteDetails("Москва", "Казань"); got.TotalTrips != 1 {
		t.Errorf("TotalTrips = %d, want 1", got.TotalTrips)
	}
}
