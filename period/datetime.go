package period

import (
	"fmt"
	"strings"
	"time"

	"timecard/internal/timeutil"
)

var datetimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

var timeOnlyLayouts = []string{
	"15:04:05",
	"15:04",
}

// ParseDateTime parses a manual-entry datetime string. Layouts are tried in
// order and the first match wins: full datetime with and without seconds,
// date only (midnight implied), time only with and without seconds (now's
// date implied).
func ParseDateTime(value string, now time.Time) (time.Time, error) {
	value = strings.TrimSpace(value)

	for _, layout := range datetimeLayouts {
		if parsed, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return parsed, nil
		}
	}

	for _, layout := range timeOnlyLayouts {
		if parsed, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			day := timeutil.StartOfDay(now)
			return day.Add(time.Duration(parsed.Hour())*time.Hour +
				time.Duration(parsed.Minute())*time.Minute +
				time.Duration(parsed.Second())*time.Second), nil
		}
	}

	return time.Time{}, fmt.Errorf(
		"unrecognized datetime %q (accepted: 2006-01-02 15:04:05, 2006-01-02 15:04, 2006-01-02, 15:04:05, 15:04)",
		value,
	)
}
