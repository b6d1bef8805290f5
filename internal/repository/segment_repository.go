package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jengzang/dispatch-backend-go/internal/models"
)

// SegmentRepository handles database operations for route segments
type SegmentRepository struct {
	db *sql.DB
}

// NewSegmentRepository creates a new segment repository
func NewSegmentRepository(db *sql.DB) *SegmentRepository {
	return &SegmentRepository{db: db}
}

// GetAll returns every corridor in table order. Waypoints are stored as
// "A → B → C" text.
func (r *SegmentRepository) GetAll(ctx context.Context) ([]models.RouteSegment, error) {
	query := `SELECT origin_city, dest_city, trips, segments
		FROM route_segments ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query segments: %w", err)
	}
	defer rows.Close()

	segments := []models.RouteSegment{}
	for rows.Next() {
		var s models.RouteSegment
		var text string
		if err := rows.Scan(&s.OriginCity, &s.DestCity, &s.Trips, &text); err != nil {
			return nil, fmt.Errorf("failed to scan segment: %w", err)
		}
		s.Segments = models.ParseSegments(text)
		segments = append(segments, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate segments: %w", err)
	}
	return segments, nil
}

// ReplaceAll deletes all segments and inserts the given ones within tx
func (r *SegmentRepository) ReplaceAll(ctx context.Context, tx *sql.Tx, segments []models.RouteSegment) error {
	if _, err := tx.ExecContext(ctx, "DELETE FROM route_segments"); err != nil {
		return fmt.Errorf("failed to clear segments: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO route_segments (
		origin_city, dest_city, trips, segments
	) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare segment insert: %w", err)
	}
	defer stmt.Close()

	for _, s := range segments {
		if _, err := stmt.ExecContext(ctx, s.OriginCity, s.DestCity, s.Trips, s.SegmentsText()); err != nil {
			return fmt.Errorf("failed to insert segment %s: %w", models.RouteKey(s.OriginCity, s.DestCity), err)
		}
	}
	return nil
}
