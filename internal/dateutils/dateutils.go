// Package dateutils provides the date handling used by the loader and the
// monthly reports.
package dateutils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// DateLayoutISO is the layout used when dates are written out.
const DateLayoutISO = "2006-01-02"

// DefaultPattern is the day-month-year pattern of card exports.
const DefaultPattern = "DD-MM-YYYY"

var (
	whitespace = regexp.MustCompile(`\s+`)

	// Longer tokens come first so YYYY wins over YY and MMM over MM.
	patternTokens = strings.NewReplacer(
		"YYYY", "2006",
		"YY", "06",
		"MMM", "Jan",
		"MM", "1",
		"DD", "2",
	)
)

// LayoutFromPattern converts a human date pattern such as "DD-MM-YYYY" into a
// Go reference layout. Day and month accept one or two digits, the way
// strptime's %d and %m do. A pattern that already is a Go layout is returned
// unchanged.
func LayoutFromPattern(pattern string) string {
	if strings.Contains(pattern, "2006") || strings.Contains(pattern, "06") && !strings.Contains(pattern, "Y") {
		return pattern
	}
	return patternTokens.Replace(pattern)
}

// ParseDate parses dateStr with the given Go layout and returns the calendar
// date at UTC midnight.
func ParseDate(dateStr, layout string) (time.Time, error) {
	cleaned := CleanDateString(dateStr)
	if cleaned == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	t, err := time.Parse(layout, cleaned)
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse date %q with layout %q: %w", dateStr, layout, err)
	}
	return TruncateToDay(t), nil
}

// CleanDateString trims and collapses whitespace in a date string
func CleanDateString(dateStr string) string {
	return whitespace.ReplaceAllString(strings.TrimSpace(dateStr), " ")
}

// TruncateToDay drops the time of day and normalises to UTC.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD)
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// IsValidMonth reports whether m is a calendar month number.
func IsValidMonth(m int) bool {
	return m >= 1 && m <= 12
}
