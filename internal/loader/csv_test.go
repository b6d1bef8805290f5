package loader

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jengzang/dispatch-backend-go/internal/store"
)

const (
	cyrillicTrips = "\ufeffОткуда полный,Куда полный,Водитель,Номер телефона,Марка,Модель,ОБЪЯВЛЕННАЯ ЦЕНА,СЕБЕСТОИМОСТЬ МАРШРУТА,Дата создания\n" +
		"\"Москва, ул. Ленина 1\",Казань,Иванов,79991234567.0,Volvo,FH,\"1000,5\",800,15.03.2024\n" +
		"\n" +
		"Тверь,Клин,Петров,,,,,,\n"

	englishTrips = "origin_full,dest_full,driver_name,driver_phone,vehicle_brand,vehicle_model,declared_price,route_cost,created_at\n" +
		"Москва,Казань,Иванов,79991234567,Volvo,FH,1000,800,2024-03-15\n"

	routesCSV   = "origin_city,dest_city,total_trips,unique_drivers,avg_cost,min_cost,max_cost,total_cost\nМосква,Казань,12,3,900,500,1500,10800\n"
	driversCSV  = "driver_name,driver_phone,total_trips,unique_routes,avg_cost,total_cost\nИванов,79991234567,12,2,900,10800\n"
	segmentsCSV = "origin_city,dest_city,trips,segments\nМосква,Уфа,4,Москва → Казань → Уфа\n"
)

func writeExports(t *testing.T, trips string) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		DefaultTripsFile:    trips,
		DefaultRoutesFile:   routesCSV,
		DefaultDriversFile:  driversCSV,
		DefaultSegmentsFile: segmentsCSV,
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestCSVSourceCyrillicTrips(t *testing.T) {
	src := NewDirSource(writeExports(t, cyrillicTrips))

	trips, err := src.Trips(context.Background())
	if err != nil {
		t.Fatalf("Trips: %v", err)
	}
	if len(trips) != 2 {
		t.Fatalf("got %d trips, want 2 (blank line skipped)", len(trips))
	}

	first := trips[0]
	if first.OriginRaw != "Москва, ул. Ленина 1" || first.DriverName != "Иванов" {
		t.Errorf("unexpected first trip: %+v", first)
	}
	if first.DriverPhone != "79991234567" {
		t.Errorf("phone = %q", first.DriverPhone)
	}
	if p, ok := first.Price(); !ok || p != 1000.5 {
		t.Errorf("price = %v/%v, want 1000.5", p, ok)
	}
	if first.CreatedTime == nil || first.CreatedTime.Day() != 15 {
		t.Errorf("created time not parsed: %v", first.CreatedTime)
	}
	if trips[1].DeclaredPrice != nil || trips[1].Vehicle() != "" {
		t.Errorf("empty cells should stay absent: %+v", trips[1])
	}
}

func TestCSVSourceEnglishTrips(t *testing.T) {
	src := NewDirSource(writeExports(t, englishTrips))

	trips, err := src.Trips(context.Background())
	if err != nil {
		t.Fatalf("Trips: %v", err)
	}
	if len(trips) != 1 || trips[0].Vehicle() != "Volvo FH" {
		t.Fatalf("unexpected trips: %+v", trips)
	}
}

func TestCSVSourceSummaries(t *testing.T) {
	src := NewDirSource(writeExports(t, englishTrips))
	ctx := context.Background()

	routes, err := src.Routes(ctx)
	if err != nil || len(routes) != 1 || routes[0].TotalTrips != 12 || routes[0].MaxCost != 1500 {
		t.Errorf("Routes = %+v, %v", routes, err)
	}
	drivers, err := src.Drivers(ctx)
	if err != nil || len(drivers) != 1 || drivers[0].UniqueRoutes != 2 {
		t.Errorf("Drivers = %+v, %v", drivers, err)
	}
	segments, err := src.Segments(ctx)
	if err != nil || len(segments) != 1 || len(segments[0].Segments) != 3 {
		t.Errorf("Segments = %+v, %v", segments, err)
	}
}

func TestCSVSourceMissingFileFailsLoad(t *testing.T) {
	dir := writeExports(t, englishTrips)
	if err := os.Remove(filepath.Join(dir, DefaultDriversFile)); err != nil {
		t.Fatal(err)
	}

	st := store.New()
	err := st.Load(context.Background(), NewDirSource(dir))
	if !errors.Is(err, store.ErrLoadFailed) {
		t.Fatalf("expected load failure, got %v", err)
	}
	var le *store.LoadError
	if !errors.As(err, &le) || le.Table != store.TableDrivers {
		t.Errorf("expected driver table error, got %v", err)
	}
	if st.Loaded() {
		t.Error("store should stay empty after a failed load")
	}
}

func TestCSVSourceOverHTTP(t *testing.T) {
	files := map[string]string{
		"/data/" + DefaultTripsFile:    englishTrips,
		"/data/" + DefaultRoutesFile:   routesCSV,
		"/data/" + DefaultDriversFile:  driversCSV,
		"/data/" + DefaultSegmentsFile: segmentsCSV,
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := files[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Write([]byte(body))
	}))
	defer srv.Close()

	st := store.New()
	if err := st.Load(context.Background(), NewHTTPSource(srv.URL+"/data", 5*time.Second)); err != nil {
		t.Fatalf("Load: %v", err)
	}
	counts := st.Snapshot().Counts()
	if counts.Trips != 1 || counts.Routes != 1 || counts.Drivers != 1 || counts.Segments != 1 || counts.Cities != 2 {
		t.Errorf("unexpected counts: %+v", counts)
	}
}

func TestCSVSourceHTTPNotFound(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	_, err := NewHTTPSource(srv.URL, time.Second).Routes(context.Background())
	if err == nil || !strings.Contains(err.Error(), "404") {
		t.Fatalf("expected 404 error, got %v", err)
	}
}

func TestCSVSourceEmptyFile(t *testing.T) {
	dir := writeExports(t, "")
	trips, err := NewDirSource(dir).Trips(context.Background())
	if err != nil {
		t.Fatalf("Trips: %v", err)
	}
	if trips == nil || len(trips) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", trips)
	}
}

func TestMergeFiles(t *testing.T) {
	got := MergeFiles(DefaultFiles(), Files{Trips: "trips.csv"})
	if got.Trips != "trips.csv" || got.Routes != DefaultRoutesFile || got.Segments != DefaultSegmentsFile {
		t.Errorf("MergeFiles = %+v", got)
	}
}
