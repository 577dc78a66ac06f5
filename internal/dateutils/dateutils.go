// Package dateutils provides the date parsing and formatting used for transaction timestamps.
package dateutils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Common date format constants used throughout the application
const (
	DateLayoutISO       = "2006-01-02"
	DateLayoutEuropean  = "02.01.2006"
	DateLayoutUS        = "01/02/2006"
	DateLayoutFull      = "2006-01-02 15:04:05"
	DateLayoutLocal     = "2006-01-02T15:04:05"
	DateLayoutTimestamp = "2006-01-02T15:04:05.000Z07:00"
)

// CommonFormats is the ordered list of layouts tried by ParseDateString.
// RFC 3339 comes first since new transactions are stamped with it.
var CommonFormats = []string{
	time.RFC3339Nano,
	time.RFC3339,
	DateLayoutLocal,
	DateLayoutFull,
	DateLayoutISO,
	DateLayoutEuropean,
	DateLayoutUS,
	"2006/01/02",
	"02 Jan 2006",
	"Jan 2, 2006",
	"January 2, 2006",
}

var whitespace = regexp.MustCompile(`\s+`)

// ParseDateString parses a transaction date using CommonFormats.
// The returned time keeps the offset written in the input, so the calendar
// month it reports is the month as recorded.
func ParseDateString(dateStr string) (time.Time, error) {
	t, _, err := ParseDate(dateStr)
	return t, err
}

// ParseDate attempts to parse a date string using multiple common formats
// Returns the parsed time and the detected format
func ParseDate(dateStr string) (time.Time, string, error) {
	cleaned := CleanDateString(dateStr)
	if cleaned == "" {
		return time.Time{}, "", fmt.Errorf("unable to parse date: empty string")
	}

	for _, format := range CommonFormats {
		if t, err := time.Parse(format, cleaned); err == nil {
			return t, format, nil
		}
	}

	return time.Time{}, "", fmt.Errorf("unable to parse date: %s", dateStr)
}

// FormatTimestamp renders t the way new transactions store their date:
// RFC 3339 in UTC with millisecond precision.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(DateLayoutTimestamp)
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD)
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// CleanDateString trims and collapses whitespace
func CleanDateString(dateStr string) string {
	dateStr = strings.TrimSpace(dateStr)
	return whitespace.ReplaceAllString(dateStr, " ")
}

// StartOfMonth returns the first day of the month for a given date
func StartOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}
