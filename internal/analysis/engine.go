// Package analysis answers dispatch queries over a loaded snapshot:
// corridor search, per-driver and per-route rollups, rankings and fleet
// composition. Every function is synchronous and allocates its own result;
// nothing returned aliases the snapshot's slices.
package analysis

import (
	"github.com/jengzang/dispatch-backend-go/internal/store"
)

// Engine runs queries against one immutable snapshot
type Engine struct {
	tables *store.Tables
}

// New creates an engine over a snapshot. A nil snapshot behaves as empty.
func New(tables *store.Tables) *Engine {
	if tables == nil {
		tables = &store.Tables{}
	}
	return &Engine{tables: tables}
}

// Tables returns the snapshot the engine reads
func (e *Engine) Tables() *store.Tables {
	return e.tables
}
