package ui

import (
	"fmt"
	"time"
)

// FormatTimeAgo renders an age like "2h ago", or "-" for a zero time.
func FormatTimeAgo(then time.Time, now time.Time) string {
	if then.IsZero() {
		return "-"
	}
	return FormatDurationShort(now.Sub(then)) + " ago"
}

// FormatTimeAgeShort renders an age like "2h", or "-" for a zero time.
func FormatTimeAgeShort(then time.Time, now time.Time) string {
	if then.IsZero() {
		return "-"
	}
	return FormatDurationShort(now.Sub(then))
}

// FormatDurationShort renders a duration in the largest single unit of
// s/m/h/d. Negative durations clamp to "0s".
func FormatDurationShort(duration time.Duration) string {
	if duration < 0 {
		duration = 0
	}

	units := []struct {
		suffix string
		size   int64
		limit  int64
	}{
		{"s", 1, 60},
		{"m", 60, 60},
		{"h", 60 * 60, 24},
		{"d", 24 * 60 * 60, 0},
	}

	seconds := int64(duration.Truncate(time.Second).Seconds())
	for _, unit := range units {
		value := seconds / unit.size
		if unit.limit == 0 || value < unit.limit {
			return fmt.Sprintf("%d%s", value, unit.suffix)
		}
	}
	return "0s"
}
