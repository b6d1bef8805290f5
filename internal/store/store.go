// Package store holds the four dispatch tables in memory.
//
// Tables are written once per load and then only read. A load either
// replaces all four tables together or leaves the current snapshot alone.
package store

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jengzang/dispatch-backend-go/internal/city"
	"github.com/jengzang/dispatch-backend-go/internal/models"
)

// Table names used in load errors
const (
	TableTrips    = "trips"
	TableRoutes   = "route_summary"
	TableDrivers  = "driver_summary"
	TableSegments = "route_segments"
)

// ErrLoadFailed is matched by every LoadError
var ErrLoadFailed = errors.New("load failed")

// LoadError reports which table aborted a load
type LoadError struct {
	Table string
	Err   error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Table, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrLoadFailed) match any LoadError
func (e *LoadError) Is(target error) bool { return target == ErrLoadFailed }

// Source provides the four tables. Implementations must be safe to call
// concurrently.
type Source interface {
	Trips(ctx context.Context) ([]models.TripRecord, error)
	Routes(ctx context.Context) ([]models.RouteSummary, error)
	Drivers(ctx context.Context) ([]models.DriverSummary, error)
	Segments(ctx context.Context) ([]models.RouteSegment, error)
}

// Tables is an immutable snapshot of all four tables plus the city index
type Tables struct {
	Trips    []models.TripRecord
	Routes   []models.RouteSummary
	Drivers  []models.DriverSummary
	Segments []models.RouteSegment
	Cities   []string
	LoadedAt time.Time
}

// NewTables builds a snapshot and derives its city index
func NewTables(trips []models.TripRecord, routes []models.RouteSummary, drivers []models.DriverSummary, segments []models.RouteSegment) *Tables {
	return &Tables{
		Trips:    trips,
		Routes:   routes,
		Drivers:  drivers,
		Segments: segments,
		Cities:   city.Index(trips),
		LoadedAt: time.Now(),
	}
}

// Counts returns the header counters
func (t *Tables) Counts() models.TableCounts {
	if t == nil {
		return models.TableCounts{}
	}
	return models.TableCounts{
		Trips:    len(t.Trips),
		Routes:   len(t.Routes),
		Drivers:  len(t.Drivers),
		Segments: len(t.Segments),
		Cities:   len(t.Cities),
	}
}

// Store owns the current snapshot
type Store struct {
	mu     sync.RWMutex
	tables *Tables
}

// New creates an empty store
func New() *Store {
	return &Store{}
}

// Load fetches all four tables concurrently. The first failure cancels the
// remaining fetches and the current snapshot stays in place.
func (s *Store) Load(ctx context.Context, src Source) error {
	var (
		trips    []models.TripRecord
		routes   []models.RouteSummary
		drivers  []models.DriverSummary
		segments []models.RouteSegment
	)

	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if trips, err = src.Trips(gctx); err != nil {
			return &LoadError{Table: TableTrips, Err: err}
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if routes, err = src.Routes(gctx); err != nil {
			return &LoadError{Table: TableRoutes, Err: err}
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if drivers, err = src.Drivers(gctx); err != nil {
			return &LoadError{Table: TableDrivers, Err: err}
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if segments, err = src.Segments(gctx); err != nil {
			return &LoadError{Table: TableSegments, Err: err}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Printf("Data load aborted after %v: %v", time.Since(start), err)
		return err
	}

	tables := NewTables(trips, routes, drivers, segments)
	s.Replace(tables)

	c := tables.Counts()
	log.Printf("Data loaded in %v: %d trips, %d routes, %d drivers, %d segments, %d cities",
		time.Since(start), c.Trips, c.Routes, c.Drivers, c.Segments, c.Cities)
	return nil
}

// Replace swaps in a complete snapshot
func (s *Store) Replace(t *Tables) {
	s.mu.Lock()
	s.tables = t
	s.mu.Unlock()
}

// Snapshot returns the current tables, or nil before the first load.
// Callers must not modify the returned slices.
func (s *Store) Snapshot() *Tables {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tables
}

// Loaded reports whether a snapshot is available
func (s *Store) Loaded() bool {
	return s.Snapshot() != nil
}

// Cities returns the distinct-city index of the current snapshot
func (s *Store) Cities() []string {
	if t := s.Snapshot(); t != nil {
		return t.Cities
	}
	return nil
}
