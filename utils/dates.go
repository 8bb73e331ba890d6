package utils

import (
	"strconv"
	"strings"
	"time"
)

// DisplayLayout renders dates as "Fri May 05 2023".
const DisplayLayout = "Mon Jan 02 2006"

// dateLayouts are tried in order. Date-only layouts resolve to midnight UTC.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01",
	"2006",
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	DisplayLayout,
	"Jan 2 2006",
	"Jan 2, 2006",
	"January 2 2006",
	"January 2, 2006",
	"2 January 2006",
	"2 Jan 2006",
}

// ParseDate parses user supplied date text. The second return is false
// when the input matches no known form.
func ParseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t.UTC(), true
		}
	}

	// Epoch milliseconds
	if len(value) >= 10 && isDigits(value) {
		ms, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return time.UnixMilli(ms).UTC(), true
		}
	}

	return time.Time{}, false
}

// FormatDate renders t in DisplayLayout using UTC.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DisplayLayout)
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
