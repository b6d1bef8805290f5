package loader

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// dateLayouts are tried in order by ParseDate
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"02.01.2006 15:04:05",
	"02.01.2006 15:04",
	"02.01.2006",
}

// ParseNumber reads a numeric cell. Spaces (including no-break spaces)
// are treated as digit grouping and a comma as the decimal separator.
// Returns nil for empty or non-numeric cells.
func ParseNumber(raw string) *float64 {
	s := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\u00a0', '\u202f', '\t':
			return -1
		case ',':
			return '.'
		}
		return r
	}, raw)
	if s == "" {
		return nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// ParseInt reads a count cell, truncating fractional exports like "12.0".
// Returns 0 for empty or non-numeric cells.
func ParseInt(raw string) int {
	v := ParseNumber(raw)
	if v == nil {
		return 0
	}
	return int(*v)
}

// ParseFloat is ParseNumber with 0 for missing values
func ParseFloat(raw string) float64 {
	if v := ParseNumber(raw); v != nil {
		return *v
	}
	return 0
}

// ParseDate tries the known date layouts. Returns nil when none match.
func ParseDate(raw string) *time.Time {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// NormalizePhone turns a phone cell into a digit string. Spreadsheet
// exports sometimes store phones as floats ("79991234567.0", "7.999e10").
func NormalizePhone(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}

	if strings.ContainsAny(s, ".eE") {
		if v, err := strconv.ParseFloat(s, 64); err == nil && v >= 0 && v == math.Trunc(v) {
			return strconv.FormatFloat(v, 'f', 0, 64)
		}
	}

	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
