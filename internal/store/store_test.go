package store

import (
	"context"
	"errors"
	"testing"

	"github.com/jengzang/dispatch-backend-go/internal/models"
)

type fakeSource struct {
	trips    []models.TripRecord
	routes   []models.RouteSummary
	drivers  []models.DriverSummary
	segments []models.RouteSegment

	failTable string
}

var errBroken = errors.New("broken table")

func (f *fakeSource) Trips(ctx context.Context) ([]models.TripRecord, error) {
	if f.failTable == TableTrips {
		return nil, errBroken
	}
	return f.trips, nil
}

func (f *fakeSource) Routes(ctx context.Context) ([]models.RouteSummary, error) {
	if f.failTable == TableRoutes {
		return nil, errBroken
	}
	return f.routes, nil
}

func (f *fakeSource) Drivers(ctx context.Context) ([]models.DriverSummary, error) {
	if f.failTable == TableDrivers {
		return nil, errBroken
	}
	return f.drivers, nil
}

func (f *fakeSource) Segments(ctx context.Context) ([]models.RouteSegment, error) {
	if f.failTable == TableSegments {
		return nil, errBroken
	}
	return f.segments, nil
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		trips: []models.TripRecord{
			{OriginRaw: "Москва, склад 1", DestRaw: "Казань", DriverName: "Иванов"},
		},
		routes:   []models.RouteSummary{{OriginCity: "Москва", DestCity: "Казань", TotalTrips: 1}},
		drivers:  []models.DriverSummary{{DriverName: "Иванов", TotalTrips: 1}},
		segments: []models.RouteSegment{{OriginCity: "Москва", DestCity: "Казань", Segments: []string{"Москва", "Казань"}}},
	}
}

func TestLoad(t *testing.T) {
	s := New()
	if s.Loaded() {
		t.Fatal("new store must be empty")
	}

	if err := s.Load(context.Background(), newFakeSource()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	snap := s.Snapshot()
	if snap == nil {
		t.Fatal("snapshot missing after load")
	}
	want := models.TableCounts{Trips: 1, Routes: 1, Drivers: 1, Segments: 1, Cities: 2}
	if got := snap.Counts(); got != want {
		t.Errorf("Counts() = %+v, want %+v", got, want)
	}
	if got := s.Cities(); len(got) != 2 || got[0] != "Казань" || got[1] != "Москва" {
		t.Errorf("Cities() = %v", got)
	}
}

func TestLoadFailureLeavesStoreEmpty(t *testing.T) {
	for _, table := range []string{TableTrips, TableRoutes, TableDrivers, TableSegments} {
		t.Run(table, func(t *testing.T) {
			src := newFakeSource()
			src.failTable = table

			s := New()
			err := s.Load(context.Background(), src)
			if err == nil {
				t.Fatal("expected load error")
			}
			if !errors.Is(err, ErrLoadFailed) {
				t.Errorf("error %v does not match ErrLoadFailed", err)
			}
			if !errors.Is(err, errBroken) {
				t.Errorf("error %v does not wrap the cause", err)
			}

			var le *LoadError
			if !errors.As(err, &le) || le.Table != table {
				t.Errorf("expected LoadError for %s, got %v", table, err)
			}
			if s.Loaded() {
				t.Error("store must stay empty after a failed load")
			}
		})
	}
}

func TestLoadFailureKeepsPreviousSnapshot(t *testing.T) {
	s := New()
	if err := s.Load(context.Background(), newFakeSource()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	before := s.Snapshot()

	src := newFakeSource()
	src.failTable = TableSegments
	if err := s.Load(context.Background(), src); err == nil {
		t.Fatal("expected load error")
	}

	if s.Snapshot() != before {
		t.Error("failed reload replaced the snapshot")
	}
}

func TestCountsNil(t *testing.T) {
	var tables *Tables
	if got := tables.Counts(); got != (models.TableCounts{}) {
		t.Errorf("nil Counts() = %+v", got)
	}
}
