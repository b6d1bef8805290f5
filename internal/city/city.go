// Package city derives canonical city tokens from free-text addresses.
package city

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"github.com/jengzang/dispatch-backend-go/internal/models"
)

// Extract returns the city token of a raw address: the first
// whitespace-delimited word of the first comma-delimited segment.
// Case is preserved. Returns "" for empty input.
func Extract(address string) string {
	segment, _, _ := strings.Cut(address, ",")
	fields := strings.Fields(segment)
	if len(fields) == 0 {
		return ""
	}
	return strings.TrimSpace(fields[0])
}

// Key folds a city name for case-insensitive comparison
func Key(name string) string {
	// Casers are stateful, one per call
	return cases.Fold().String(strings.TrimSpace(name))
}

// Equal compares two city names ignoring case
func Equal(a, b string) bool {
	return Key(a) == Key(b)
}

// Route returns the extracted origin and destination cities of a trip
func Route(t models.TripRecord) (origin, dest string) {
	return Extract(t.OriginRaw), Extract(t.DestRaw)
}

// Index returns the sorted distinct non-empty cities seen as origin or
// destination of any trip.
func Index(trips []models.TripRecord) []string {
	seen := make(map[string]struct{})
	for _, t := range trips {
		if c := Extract(t.OriginRaw); c != "" {
			seen[c] = struct{}{}
		}
		if c := Extract(t.DestRaw); c != "" {
			seen[c] = struct{}{}
		}
	}

	cities := make([]string, 0, len(seen))
	for c := range seen {
		cities = append(cities, c)
	}
	sort.Strings(cities)
	return cities
}

// Suggest filters a sorted city index by case-insensitive prefix.
// limit <= 0 returns every match.
func Suggest(index []string, prefix string, limit int) []string {
	p := Key(prefix)
	out := make([]string, 0)
	for _, c := range index {
		if p != "" && !strings.HasPrefix(Key(c), p) {
			continue
		}
		out = append(out, c)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}
