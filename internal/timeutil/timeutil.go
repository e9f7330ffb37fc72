package timeutil

import "time"

func StartOfDay(value time.Time) time.Time {
	return time.Date(value.Year(), value.Month(), value.Day(), 0, 0, 0, 0, value.Location())
}

func EndOfDay(value time.Time) time.Time {
	return time.Date(value.Year(), value.Month(), value.Day(), 23, 59, 59, 0, value.Location())
}

func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// WeekRange returns the Monday 00:00:00 and Sunday 23:59:59 of the ISO week
// containing value.
func WeekRange(value time.Time) (time.Time, time.Time) {
	// time.Weekday counts Sunday as 0; shift so Monday is 0.
	offset := (int(value.Weekday()) + 6) % 7
	monday := StartOfDay(value.AddDate(0, 0, -offset))
	sunday := EndOfDay(monday.AddDate(0, 0, 6))
	return monday, sunday
}

// MonthRange returns the first day 00:00:00 and last day 23:59:59 of the month
// containing value. The last day is computed as the first day of the next month
// minus one day, which handles variable month lengths, leap years, and the
// December to January rollover without a lookup table.
func MonthRange(value time.Time) (time.Time, time.Time) {
	first := time.Date(value.Year(), value.Month(), 1, 0, 0, 0, 0, value.Location())
	nextFirst := time.Date(value.Year(), value.Month()+1, 1, 0, 0, 0, 0, value.Location())
	last := EndOfDay(nextFirst.AddDate(0, 0, -1))
	return first, last
}
