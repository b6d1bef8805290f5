package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jengzang/dispatch-backend-go/internal/models"
)

// TripRepository handles database operations for trips
type TripRepository struct {
	db *sql.DB
}

// NewTripRepository creates a new trip repository
func NewTripRepository(db *sql.DB) *TripRepository {
	return &TripRepository{db: db}
}

// GetAll returns every trip in insertion order
func (r *TripRepository) GetAll(ctx context.Context) ([]models.TripRecord, error) {
	query := `SELECT origin_raw, dest_raw, driver_name, driver_phone,
		vehicle_brand, vehicle_model, declared_price, route_cost, created_at
		FROM trips ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query trips: %w", err)
	}
	defer rows.Close()

	trips := []models.TripRecord{}
	for rows.Next() {
		var t models.TripRecord
		var price, cost sql.NullFloat64
		err := rows.Scan(
			&t.OriginRaw, &t.DestRaw, &t.DriverName, &t.DriverPhone,
			&t.VehicleBrand, &t.VehicleModel, &price, &cost, &t.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trip: %w", err)
		}
		if price.Valid {
			t.DeclaredPrice = models.Float(price.Float64)
		}
		if cost.Valid {
			t.RouteCost = models.Float(cost.Float64)
		}
		trips = append(trips, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate trips: %w", err)
	}
	return trips, nil
}

// ReplaceAll deletes all trips and inserts the given ones within tx
func (r *TripRepository) ReplaceAll(ctx context.Context, tx *sql.Tx, trips []models.TripRecord) error {
	if _, err := tx.ExecContext(ctx, "DELETE FROM trips"); err != nil {
		return fmt.Errorf("failed to clear trips: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO trips (
		origin_raw, dest_raw, driver_name, driver_phone,
		vehicle_brand, vehicle_model, declared_price, route_cost, created_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare trip insert: %w", err)
	}
	defer stmt.Close()

	for i, t := range trips {
		_, err := stmt.ExecContext(ctx,
			t.OriginRaw, t.DestRaw, t.DriverName, t.DriverPhone,
			t.VehicleBrand, t.VehicleModel, nullFloat(t.DeclaredPrice), nullFloat(t.RouteCost), t.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert trip %d: %w", i, err)
		}
	}
	return nil
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}
