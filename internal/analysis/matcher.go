package analysis

import (
	"strings"

	"github.com/jengzang/dispatch-backend-go/internal/city"
	"github.com/jengzang/dispatch-backend-go/internal/models"
)

// ZoneLimit caps the zone tier. Results keep table order, they are not
// ranked by relevance.
const ZoneLimit = 10

// Search finds routes and drivers serving from → to at three tiers:
// exact route summaries, corridors passing through both cities in order,
// and drivers whose history touches either city. An empty from or to
// yields three empty tiers.
func (e *Engine) Search(from, to string) models.SearchResult {
	result := models.SearchResult{
		Exact:   []models.RouteSummary{},
		Partial: []models.RouteSegment{},
		Zone:    []models.DriverSummary{},
	}

	from, to = strings.TrimSpace(from), strings.TrimSpace(to)
	if from == "" || to == "" {
		return result
	}
	fromKey, toKey := city.Key(from), city.Key(to)

	result.Exact = e.exactMatches(fromKey, toKey)
	result.Partial = e.partialMatches(fromKey, toKey)
	result.Zone = e.zoneMatches(fromKey, toKey)
	return result
}

func (e *Engine) exactMatches(fromKey, toKey string) []models.RouteSummary {
	out := []models.RouteSummary{}
	for _, r := range e.tables.Routes {
		if city.Key(r.OriginCity) == fromKey && city.Key(r.DestCity) == toKey {
			out = append(out, r)
		}
	}
	return out
}

func (e *Engine) partialMatches(fromKey, toKey string) []models.RouteSegment {
	out := []models.RouteSegment{}
	for _, s := range e.tables.Segments {
		if passesInOrder(s.Segments, fromKey, toKey) {
			s.Segments = append([]string(nil), s.Segments...)
			out = append(out, s)
		}
	}
	return out
}

// passesInOrder reports whether toKey appears strictly after the first
// occurrence of fromKey.
func passesInOrder(waypoints []string, fromKey, toKey string) bool {
	fromIdx := -1
	for i, w := range waypoints {
		k := city.Key(w)
		if fromIdx < 0 {
			if k == fromKey {
				fromIdx = i
			}
			continue
		}
		if k == toKey {
			return true
		}
	}
	return false
}

func (e *Engine) zoneMatches(fromKey, toKey string) []models.DriverSummary {
	touched := make(map[string]bool)
	for _, t := range e.tables.Trips {
		if touched[t.DriverName] {
			continue
		}
		origin, dest := city.Route(t)
		if (origin != "" && city.Key(origin) == fromKey) || (dest != "" && city.Key(dest) == toKey) {
			touched[t.DriverName] = true
		}
	}

	out := []models.DriverSummary{}
	for _, d := range e.tables.Drivers {
		if !touched[d.DriverName] {
			continue
		}
		out = append(out, d)
		if len(out) == ZoneLimit {
			break
		}
	}
	return out
}
