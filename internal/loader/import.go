package loader

import (
	"context"
	"database/sql"
	"log"

	"github.com/jengzang/dispatch-backend-go/internal/database"
	"github.com/jengzang/dispatch-backend-go/internal/models"
	"github.com/jengzang/dispatch-backend-go/internal/repository"
	"github.com/jengzang/dispatch-backend-go/internal/store"
)

// Import copies all four tables from src into db. Either every table is
// replaced or the database is left untouched.
func Import(ctx context.Context, src store.Source, db *sql.DB) (models.TableCounts, error) {
	st := store.New()
	if err := st.Load(ctx, src); err != nil {
		return models.TableCounts{}, err
	}
	tables := st.Snapshot()

	trips := repository.NewTripRepository(db)
	summary := repository.NewSummaryRepository(db)
	segments := repository.NewSegmentRepository(db)

	err := database.Transaction(ctx, db, func(tx *sql.Tx) error {
		if err := trips.ReplaceAll(ctx, tx, tables.Trips); err != nil {
			return err
		}
		if err := summary.ReplaceRoutes(ctx, tx, tables.Routes); err != nil {
			return err
		}
		if err := summary.ReplaceDrivers(ctx, tx, tables.Drivers); err != nil {
			return err
		}
		return segments.ReplaceAll(ctx, tx, tables.Segments)
	})
	if err != nil {
		return models.TableCounts{}, err
	}

	counts := tables.Counts()
	log.Printf("Imported %d trips, %d routes, %d drivers, %d segments",
		counts.Trips, counts.Routes, counts.Drivers, counts.Segments)
	return counts, nil
}
