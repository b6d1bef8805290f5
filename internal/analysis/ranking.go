package analysis

import (
	"sort"

	"github.com/jengzang/dispatch-backend-go/internal/models"
)

// ShowAll asks a ranking for the whole table
const ShowAll = -1

// DefaultPresets are the top-N choices offered next to "show all"
var DefaultPresets = []int{20, 50, 100}

// Ranked is anything ordered by trip count
type Ranked interface {
	Trips() int
}

// TopN returns the first min(n, len(rows)) rows of a copy of rows sorted
// by trip count, descending. The sort is stable. ShowAll returns every row
// and n == 0 returns none.
func TopN[T Ranked](rows []T, n int) []T {
	sorted := make([]T, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Trips() > sorted[j].Trips()
	})

	if n == ShowAll || n >= len(sorted) {
		return sorted
	}
	return sorted[:n]
}

// TopRoutes ranks the route summaries
func (e *Engine) TopRoutes(n int) []models.RouteSummary {
	return TopN(e.tables.Routes, n)
}

// TopDrivers ranks the driver summaries
func (e *Engine) TopDrivers(n int) []models.DriverSummary {
	return TopN(e.tables.Drivers, n)
}

// Presets returns the selectable list sizes for a table of the given
// length. The last entry is the table length itself and means "all".
func Presets(tableLen int) []int {
	out := make([]int, 0, len(DefaultPresets)+1)
	out = append(out, DefaultPresets...)
	return append(out, tableLen)
}
