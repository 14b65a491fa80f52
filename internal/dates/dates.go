// Package dates parses user-supplied date-time strings.
package dates

import (
	"fmt"
	"strings"
	"time"
)

var layouts = []string{
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006-01-02",
}

// Parse parses a date or date-time in local time. Accepted layouts are
// "2006-01-02 15:04" (also with a 'T' separator) and "2006-01-02".
func Parse(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range layouts {
		if parsed, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD or YYYY-MM-DD HH:MM", value)
}
