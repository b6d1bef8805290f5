package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/jengzang/dispatch-backend-go/internal/analysis"
	"github.com/jengzang/dispatch-backend-go/internal/city"
	"github.com/jengzang/dispatch-backend-go/internal/models"
	"github.com/jengzang/dispatch-backend-go/internal/store"
)

var (
	// ErrNotLoaded is returned before the first successful load
	ErrNotLoaded = errors.New("dataset not loaded")

	// ErrInvalidQuery wraps every input validation failure
	ErrInvalidQuery = errors.New("invalid query")
)

// DispatchService handles business logic for the dispatch panel
type DispatchService struct {
	store      *store.Store
	source     store.Source
	sourceName string

	reloadMu sync.Mutex
}

// NewDispatchService creates a new dispatch service. sourceName is only
// reported in the dataset status.
func NewDispatchService(st *store.Store, src store.Source, sourceName string) *DispatchService {
	return &DispatchService{
		store:      st,
		source:     src,
		sourceName: sourceName,
	}
}

func (s *DispatchService) engine() (*analysis.Engine, error) {
	tables := s.store.Snapshot()
	if tables == nil {
		return nil, ErrNotLoaded
	}
	return analysis.New(tables), nil
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidQuery, fmt.Sprintf(format, args...))
}

func validateLimit(limit int) error {
	if limit < analysis.ShowAll {
		return invalid("limit must be -1, 0 or positive, got %d", limit)
	}
	return nil
}

// Reload fetches all tables from the source and swaps them in. A failed
// reload keeps the previous snapshot.
func (s *DispatchService) Reload(ctx context.Context) (models.TableCounts, error) {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	if err := s.store.Load(ctx, s.source); err != nil {
		return models.TableCounts{}, fmt.Errorf("failed to reload dataset: %w", err)
	}
	return s.store.Snapshot().Counts(), nil
}

// Status reports whether data is loaded and the table counters
func (s *DispatchService) Status() models.DatasetStatus {
	status := models.DatasetStatus{Source: s.sourceName}
	tables := s.store.Snapshot()
	if tables == nil {
		return status
	}

	loadedAt := tables.LoadedAt
	status.Loaded = true
	status.LoadedAt = &loadedAt
	status.Counts = tables.Counts()
	return status
}

// Cities returns distinct cities matching a case-insensitive prefix
func (s *DispatchService) Cities(prefix string, limit int) ([]string, error) {
	if !s.store.Loaded() {
		return nil, ErrNotLoaded
	}
	if err := validateLimit(limit); err != nil {
		return nil, err
	}
	return city.Suggest(s.store.Cities(), prefix, limit), nil
}

// Search runs the three-tier corridor search
func (s *DispatchService) Search(from, to string) (models.SearchResult, error) {
	e, err := s.engine()
	if err != nil {
		return models.SearchResult{}, err
	}

	start := time.Now()
	result := e.Search(from, to)
	log.Printf("Search %q → %q: %d exact, %d partial, %d zone in %v",
		from, to, len(result.Exact), len(result.Partial), len(result.Zone), time.Since(start))
	return result, nil
}

// TopRoutes ranks route summaries by trip count
func (s *DispatchService) TopRoutes(limit int) ([]models.RouteSummary, []int, error) {
	e, err := s.engine()
	if err != nil {
		return nil, nil, err
	}
	if err := validateLimit(limit); err != nil {
		return nil, nil, err
	}
	return e.TopRoutes(limit), analysis.Presets(len(e.Tables().Routes)), nil
}

// TopDrivers ranks driver summaries by trip count
func (s *DispatchService) TopDrivers(limit int) ([]models.DriverSummary, []int, error) {
	e, err := s.engine()
	if err != nil {
		return nil, nil, err
	}
	if err := validateLimit(limit); err != nil {
		return nil, nil, err
	}
	return e.TopDrivers(limit), analysis.Presets(len(e.Tables().Drivers)), nil
}

// DriverProfile returns the driver's summary row and per-route rollups
func (s *DispatchService) DriverProfile(name string) (*models.DriverProfile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalid("driver name is required")
	}

	e, err := s.engine()
	if err != nil {
		return nil, err
	}

	profile := &models.DriverProfile{Routes: e.DriverDetails(name)}
	for _, d := range e.Tables().Drivers {
		if d.DriverName == name {
			summary := d
			profile.Summary = &summary
			break
		}
	}
	return profile, nil
}

// RouteDetails returns per-driver rollups for a fixed route
func (s *DispatchService) RouteDetails(origin, dest string) (*models.RouteDetails, error) {
	origin, dest = strings.TrimSpace(origin), strings.TrimSpace(dest)
	if origin == "" || dest == "" {
		return nil, invalid("origin and dest are required")
	}

	e, err := s.engine()
	if err != nil {
		return nil, err
	}

	details := e.RouteDetails(origin, dest)
	return &details, nil
}

// Fleet returns the fleet overview with each list capped at limit
func (s *DispatchService) Fleet(limit int) (*models.FleetOverview, error) {
	e, err := s.engine()
	if err != nil {
		return nil, err
	}
	if err := validateLimit(limit); err != nil {
		return nil, err
	}

	overview := e.Fleet(limit)
	return &overview, nil
}
