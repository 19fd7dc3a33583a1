package pulse

import (
	"fmt"
	"math"
	"time"
)

// RelativeTimeAt formats how long ago ts was relative to now, as a coarse
// label: "42s", "5m", "3h", "2d", or "M/D" past a week. Each unit is derived
// by rounding the finer one (90s reads "2m", not "1m"), and the seconds
// floor at 1 so a fresh post never shows "0s".
func RelativeTimeAt(ts, now time.Time) string {
	seconds := int(math.Round(float64(now.Sub(ts).Milliseconds()) / 1000))
	if seconds < 1 {
		seconds = 1
	}
	minutes := roundDiv(seconds, 60)
	hours := roundDiv(minutes, 60)
	days := roundDiv(hours, 24)

	switch {
	case seconds < 60:
		return fmt.Sprintf("%ds", seconds)
	case minutes < 60:
		return fmt.Sprintf("%dm", minutes)
	case hours < 24:
		return fmt.Sprintf("%dh", hours)
	case days < 7:
		return fmt.Sprintf("%dd", days)
	}
	return fmt.Sprintf("%d/%d", int(ts.Month()), ts.Day())
}

// RelativeTime is RelativeTimeAt against the wall clock.
func RelativeTime(ts time.Time) string {
	return RelativeTimeAt(ts, time.Now())
}

func roundDiv(n, d int) int {
	return int(math.Round(float64(n) / float64(d)))
}
