package loader

import (
	"context"
	"database/sql"

	"github.com/jengzang/dispatch-backend-go/internal/models"
	"github.com/jengzang/dispatch-backend-go/internal/repository"
)

// SQLiteSource reads the tables through the repository layer
type SQLiteSource struct {
	trips    *repository.TripRepository
	summary  *repository.SummaryRepository
	segments *repository.SegmentRepository
}

// NewSQLiteSource creates a source over an open database
func NewSQLiteSource(db *sql.DB) *SQLiteSource {
	return &SQLiteSource{
		trips:    repository.NewTripRepository(db),
		summary:  repository.NewSummaryRepository(db),
		segments: repository.NewSegmentRepository(db),
	}
}

// Trips reads the trips table and parses creation dates
func (s *SQLiteSource) Trips(ctx context.Context) ([]models.TripRecord, error) {
	trips, err := s.trips.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range trips {
		trips[i].CreatedTime = ParseDate(trips[i].CreatedAt)
	}
	return trips, nil
}

// Routes reads the route summary table
func (s *SQLiteSource) Routes(ctx context.Context) ([]models.RouteSummary, error) {
	return s.summary.GetRoutes(ctx)
}

// Drivers reads the driver summary table
func (s *SQLiteSource) Drivers(ctx context.Context) ([]models.DriverSummary, error) {
	return s.summary.GetDrivers(ctx)
}

// Segments reads the corridor table
func (s *SQLiteSource) Segments(ctx context.Context) ([]models.RouteSegment, error) {
	return s.segments.GetAll(ctx)
}
