package models

import "strings"

// SegmentSeparator joins waypoints in the textual form of a corridor
const SegmentSeparator = " → "

// RouteSegment represents a known multi-city corridor.
// Segments[0] is the origin and the last element is the destination.
type RouteSegment struct {
	OriginCity string   `json:"origin_city" db:"origin_city"`
	DestCity   string   `json:"dest_city" db:"dest_city"`
	Trips      int      `json:"trips" db:"trips"`
	Segments   []string `json:"segments" db:"-"`
}

// SegmentsText renders the waypoints as "A → B → C"
func (s RouteSegment) SegmentsText() string {
	return strings.Join(s.Segments, SegmentSeparator)
}

// ParseSegments splits "A → B → C" into waypoints, dropping empty parts
func ParseSegments(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	parts := strings.Split(text, SegmentSeparator)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// RouteKey builds the "origin → dest" grouping key
func RouteKey(origin, dest string) string {
	return origin + SegmentSeparator + dest
}
