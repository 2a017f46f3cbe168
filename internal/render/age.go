package render

import (
	"fmt"
	"time"
)

// FormatAge renders a created timestamp as a coarse relative age.
// A zero timestamp means the model's age is unknown.
func FormatAge(created int64, now time.Time) string {
	if created <= 0 {
		return "Unknown"
	}

	elapsed := now.Sub(time.Unix(created, 0))
	days := int(elapsed.Hours() / 24)

	switch {
	case days >= 365:
		return approx(days/365, "yr", "yrs")
	case days >= 30:
		return approx(days/30, "month", "months")
	case days >= 1:
		return plural(days, "day", "days")
	case elapsed >= time.Hour:
		return plural(int(elapsed.Hours()), "hr", "hrs")
	case elapsed >= time.Minute:
		return plural(int(elapsed.Minutes()), "min", "mins")
	default:
		return "<1 min"
	}
}

func plural(n int, one, many string) string {
	if n > 1 {
		return fmt.Sprintf("%d %s", n, many)
	}
	return fmt.Sprintf("%d %s", n, one)
}

func approx(n int, one, many string) string {
	if n > 1 {
		return fmt.Sprintf("~%d %s", n, many)
	}
	return fmt.Sprintf("~%d %s", n, one)
}
