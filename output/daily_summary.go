package output

import (
	"fmt"
	"math"
	"sort"
	"time"

	"timecard/timecard"
)

// DailySummary aggregates the closed entries of one calendar day.
type DailySummary struct {
	Date        string
	StartTime   time.Time
	EndTime     time.Time
	WorkedHours float64
	BreakHours  float64
	EntryCount  int
}

type interval struct {
	start time.Time
	end   time.Time
}

// BuildDailySummaries groups closed entries by calendar day. A still-running
// entry has no duration and is left out.
func BuildDailySummaries(entries []timecard.TimeEntry) []DailySummary {
	byDay := make(map[string][]timecard.TimeEntry)
	for _, entry := range entries {
		if entry.IsActive() {
			continue
		}
		day := entry.StartTime.Format("2006-01-02")
		byDay[day] = append(byDay[day], entry)
	}
	if len(byDay) == 0 {
		return []DailySummary{}
	}

	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Strings(days)

	summaries := make([]DailySummary, 0, len(days))
	for _, day := range days {
		summaries = append(summaries, summarizeDay(day, byDay[day]))
	}

	return summaries
}

func summarizeDay(day string, entries []timecard.TimeEntry) DailySummary {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].StartTime.Equal(entries[j].StartTime) {
			return entries[i].EndTime.Before(*entries[j].EndTime)
		}
		return entries[i].StartTime.Before(entries[j].StartTime)
	})

	start := entries[0].StartTime
	end := *entries[len(entries)-1].EndTime
	if end.Before(start) {
		end = start
	}

	workedDuration := time.Duration(0)
	intervals := make([]interval, 0, len(entries))
	for _, entry := range entries {
		duration, _ := entry.Duration()
		workedDuration += duration
		intervals = append(intervals, interval{start: entry.StartTime, end: *entry.EndTime})
	}

	span := end.Sub(start)
	covered := mergedCoverageWithinWindow(intervals, start, end)
	breakDuration := span - covered
	if breakDuration < 0 {
		breakDuration = 0
	}

	return DailySummary{
		Date:        day,
		StartTime:   start,
		EndTime:     end,
		WorkedHours: roundHours(workedDuration.Hours()),
		BreakHours:  roundHours(breakDuration.Hours()),
		EntryCount:  len(entries),
	}
}

func mergedCoverageWithinWindow(intervals []interval, windowStart, windowEnd time.Time) time.Duration {
	if len(intervals) == 0 {
		return 0
	}
	if !windowEnd.After(windowStart) {
		return 0
	}

	clipped := make([]interval, 0, len(intervals))
	for _, candidate := range intervals {
		start := maxTime(candidate.start, windowStart)
		end := minTime(candidate.end, windowEnd)
		if end.After(start) {
			clipped = append(clipped, interval{start: start, end: end})
		}
	}
	if len(clipped) == 0 {
		return 0
	}

	sort.Slice(clipped, func(i, j int) bool {
		return clipped[i].start.Before(clipped[j].start)
	})

	currentStart := clipped[0].start
	currentEnd := clipped[0].end
	covered := time.Duration(0)

	for _, candidate := range clipped[1:] {
		if candidate.start.After(currentEnd) {
			covered += currentEnd.Sub(currentStart)
			currentStart = candidate.start
			currentEnd = candidate.end
			continue
		}

		if candidate.end.After(currentEnd) {
			currentEnd = candidate.end
		}
	}

	covered += currentEnd.Sub(currentStart)
	return covered
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}

func roundHours(value float64) float64 {
	return math.Round(value*100) / 100
}

// WriteDailySummaries writes per-day aggregates in the requested format.
func WriteDailySummaries(path, format string, summaries []DailySummary) error {
	switch normalizeFormat(format) {
	case "csv":
		return writeDailySummariesCSV(path, summaries)
	case "excel", "xlsx":
		return writeDailySummariesExcel(path, summaries)
	default:
		return fmt.Errorf("unsupported output format for daily summaries: %s", format)
	}
}
