package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jengzang/dispatch-backend-go/internal/models"
)

// SummaryRepository handles the pre-aggregated route and driver tables
type SummaryRepository struct {
	db *sql.DB
}

// NewSummaryRepository creates a new summary repository
func NewSummaryRepository(db *sql.DB) *SummaryRepository {
	return &SummaryRepository{db: db}
}

// GetRoutes returns the route summaries in table order
func (r *SummaryRepository) GetRoutes(ctx context.Context) ([]models.RouteSummary, error) {
	query := `SELECT origin_city, dest_city, total_trips, unique_drivers,
		avg_cost, min_cost, max_cost, total_cost
		FROM route_summary ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query route summary: %w", err)
	}
	defer rows.Close()

	routes := []models.RouteSummary{}
	for rows.Next() {
		var s models.RouteSummary
		err := rows.Scan(
			&s.OriginCity, &s.DestCity, &s.TotalTrips, &s.UniqueDrivers,
			&s.AvgCost, &s.MinCost, &s.MaxCost, &s.TotalCost,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan route summary: %w", err)
		}
		routes = append(routes, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate route summary: %w", err)
	}
	return routes, nil
}

// GetDrivers returns the driver summaries in table order
func (r *SummaryRepository) GetDrivers(ctx context.Context) ([]models.DriverSummary, error) {
	query := `SELECT driver_name, driver_phone, total_trips, unique_routes,
		avg_cost, total_cost
		FROM driver_summary ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query driver summary: %w", err)
	}
	defer rows.Close()

	drivers := []models.DriverSummary{}
	for rows.Next() {
		var d models.DriverSummary
		err := rows.Scan(
			&d.DriverName, &d.DriverPhone, &d.TotalTrips, &d.UniqueRoutes,
			&d.AvgCost, &d.TotalCost,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan driver summary: %w", err)
		}
		drivers = append(drivers, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate driver summary: %w", err)
	}
	return drivers, nil
}

// ReplaceRoutes deletes all route summaries and inserts the given ones
func (r *SummaryRepository) ReplaceRoutes(ctx context.Context, tx *sql.Tx, routes []models.RouteSummary) error {
	if _, err := tx.ExecContext(ctx, "DELETE FROM route_summary"); err != nil {
		return fmt.Errorf("failed to clear route summary: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO route_summary (
		origin_city, dest_city, total_trips, unique_drivers,
		avg_cost, min_cost, max_cost, total_cost
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare route summary insert: %w", err)
	}
	defer stmt.Close()

	for _, s := range routes {
		_, err := stmt.ExecContext(ctx,
			s.OriginCity, s.DestCity, s.TotalTrips, s.UniqueDrivers,
			s.AvgCost, s.MinCost, s.MaxCost, s.TotalCost,
		)
		if err != nil {
			return fmt.Errorf("failed to insert route %s: %w", models.RouteKey(s.OriginCity, s.DestCity), err)
		}
	}
	return nil
}

// ReplaceDrivers deletes all driver summaries and inserts the given ones
func (r *SummaryRepository) ReplaceDrivers(ctx context.Context, tx *sql.Tx, drivers []models.DriverSummary) error {
	if _, err := tx.ExecContext(ctx, "DELETE FROM driver_summary"); err != nil {
		return fmt.Errorf("failed to clear driver summary: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO driver_summary (
		driver_name, driver_phone, total_trips, unique_routes, avg_cost, total_cost
	) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare driver summary insert: %w", err)
	}
	defer stmt.Close()

	for _, d := range drivers {
		_, err := stmt.ExecContext(ctx,
			d.DriverName, d.DriverPhone, d.TotalTrips, d.UniqueRoutes, d.AvgCost, d.TotalCost,
		)
		if err != nil {
			return fmt.Errorf("failed to insert driver %s: %w", d.DriverName, err)
		}
	}
	return nil
}
