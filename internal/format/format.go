// Package format renders money, phone numbers and dates for display.
// All functions are pure.
package format

import (
	"math"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jengzang/dispatch-backend-go/internal/models"
)

// Placeholder is shown for absent values
const Placeholder = "—"

// CurrencySuffix follows the grouped amount
const CurrencySuffix = " ₽"

// DateLayout is the ru-RU short date
const DateLayout = "02.01.2006"

// Currency formats an optional amount. nil and zero render as Placeholder.
func Currency(amount *float64) string {
	if amount == nil {
		return Placeholder
	}
	return CurrencyValue(*amount)
}

// CurrencyValue rounds half up and groups thousands the ru-RU way,
// e.g. 1234.5 -> "1 235 ₽" (no-break space as separator).
func CurrencyValue(amount float64) string {
	if amount == 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Placeholder
	}
	rounded := int64(math.Floor(amount + 0.5))
	p := message.NewPrinter(language.Russian)
	return p.Sprintf("%d", rounded) + CurrencySuffix
}

// Phone regroups a phone number as +CC CCC CCC-CC-CC (12 digits) or
// +C CCC CCC-CC-CC (11 digits). Longer numbers group their first 12 digits
// and keep the rest as a tail. Other inputs with digits are returned
// unchanged; inputs without digits render as Placeholder.
func Phone(phone string) string {
	phone = strings.TrimSpace(phone)
	digits := Digits(phone)
	switch len(digits) {
	case 0:
		return Placeholder
	case 12:
		return group(digits, 2)
	case 11:
		return group(digits, 1)
	}
	if len(digits) > 12 {
		return group(digits[:12], 2) + digits[12:]
	}
	return phone
}

// group slices d as cc|3|3|2|2 where cc is the country code length
func group(d string, cc int) string {
	var b strings.Builder
	b.WriteString("+")
	b.WriteString(d[:cc])
	b.WriteString(" ")
	b.WriteString(d[cc : cc+3])
	b.WriteString(" ")
	b.WriteString(d[cc+3 : cc+6])
	b.WriteString("-")
	b.WriteString(d[cc+6 : cc+8])
	b.WriteString("-")
	b.WriteString(d[cc+8 : cc+10])
	return b.String()
}

// Digits keeps only ASCII digits
func Digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Date renders a parsed date as DD.MM.YYYY, falling back to the raw text
func Date(raw string, t *time.Time) string {
	if t != nil {
		return t.Format(DateLayout)
	}
	if raw == "" {
		return Placeholder
	}
	return raw
}

// CitiesPreview shortens a corridor for list rows: up to three
// intermediate cities are shown in full, longer corridors keep the first
// two and the last intermediate.
func CitiesPreview(cities []string) string {
	n := len(cities)
	if n <= 5 {
		return strings.Join(cities, models.SegmentSeparator)
	}
	return strings.Join([]string{
		cities[0], cities[1], cities[2], "...", cities[n-2], cities[n-1],
	}, models.SegmentSeparator)
}
