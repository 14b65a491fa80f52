package ui

import (
	"fmt"
	"time"
)

// FormatDurationShort formats a duration using short units (s/m/h/d).
// Negative durations get a leading minus.
func FormatDurationShort(duration time.Duration) string {
	sign := ""
	if duration < 0 {
		sign = "-"
		duration = -duration
	}

	duration = duration.Truncate(time.Second)
	seconds := int64(duration.Seconds())
	if seconds < 60 {
		return fmt.Sprintf("%s%ds", sign, seconds)
	}

	minutes := seconds / 60
	if minutes < 60 {
		return fmt.Sprintf("%s%dm", sign, minutes)
	}

	hours := minutes / 60
	if hours < 24 {
		return fmt.Sprintf("%s%dh", sign, hours)
	}

	days := hours / 24
	return fmt.Sprintf("%s%dd", sign, days)
}

// FormatDate formats an optional time with the given layout, or "-" when
// absent.
func FormatDate(value *time.Time, layout string) string {
	if value == nil {
		return "-"
	}
	return value.Format(layout)
}
