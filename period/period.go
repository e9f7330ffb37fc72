// Package period maps symbolic period tokens to absolute date-time ranges and
// parses manual-entry datetime strings. It is the single resolver shared by
// the CLI and the web UI.
package period

import (
	"fmt"
	"strings"
	"time"

	"timecard/internal/timeutil"
)

// ValidTokens lists the accepted period tokens. Matching is case-insensitive.
var ValidTokens = []string{
	"today", "yesterday", "week", "this-week", "last-week", "month", "this-month", "last-month",
}

// Range is a resolved period: both bounds inclusive, plus a display label.
type Range struct {
	Start time.Time
	End   time.Time
	Label string
}

// Resolve maps token to an absolute range relative to now. Weeks run Monday
// through Sunday.
func Resolve(token string, now time.Time) (Range, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "today":
		return Range{
			Start: timeutil.StartOfDay(now),
			End:   timeutil.EndOfDay(now),
			Label: "Today",
		}, nil
	case "yesterday":
		yesterday := now.AddDate(0, 0, -1)
		return Range{
			Start: timeutil.StartOfDay(yesterday),
			End:   timeutil.EndOfDay(yesterday),
			Label: "Yesterday",
		}, nil
	case "week", "this-week":
		monday, sunday := timeutil.WeekRange(now)
		return Range{Start: monday, End: sunday, Label: "This Week"}, nil
	case "last-week":
		monday, sunday := timeutil.WeekRange(now.AddDate(0, 0, -7))
		return Range{Start: monday, End: sunday, Label: "Last Week"}, nil
	case "month", "this-month":
		first, last := timeutil.MonthRange(now)
		return Range{Start: first, End: last, Label: "This Month"}, nil
	case "last-month":
		// The last day of the previous month is one day before the first
		// of the current month; the January to December rollover falls out
		// of the date arithmetic.
		firstOfCurrent, _ := timeutil.MonthRange(now)
		first, last := timeutil.MonthRange(firstOfCurrent.AddDate(0, 0, -1))
		return Range{Start: first, End: last, Label: "Last Month"}, nil
	default:
		return Range{}, fmt.Errorf("invalid period %q (valid: %s)", token, strings.Join(ValidTokens, ", "))
	}
}
