package web

import (
	"sort"
	"time"

	"timecard/period"
	"timecard/timecard"
)

// EntryRow is one entry rendered on the dashboard.
type EntryRow struct {
	Start       string
	End         string
	Hours       float64
	Project     string
	Description string
	Active      bool
}

// PeriodOption is one entry of the period picker.
type PeriodOption struct {
	Token    string
	Label    string
	Selected bool
}

// DashboardView is everything the index template needs.
type DashboardView struct {
	ClockedIn         bool
	ActiveStart       string
	ActiveHours       float64
	ActiveProject     string
	ActiveDescription string

	TodayHours   float64
	TodayEntries int
	TotalHours   float64
	TotalEntries int

	PeriodToken   string
	PeriodLabel   string
	PeriodStart   string
	PeriodEnd     string
	PeriodHours   float64
	PeriodEntries int
	RecentEntries []EntryRow

	PeriodOptions []PeriodOption
}

// periodPickerTokens are the tokens offered in the dashboard dropdown, one
// per distinct range.
var periodPickerTokens = []string{"today", "yesterday", "week", "last-week", "month", "last-month"}

func buildDashboardView(data *timecard.TimeCardData, token string, resolved period.Range, now time.Time) DashboardView {
	view := DashboardView{
		TotalHours:   data.TotalHours(),
		TotalEntries: len(data.TimeEntries),
		PeriodToken:  token,
		PeriodLabel:  resolved.Label,
		PeriodStart:  resolved.Start.Format("2006-01-02"),
		PeriodEnd:    resolved.End.Format("2006-01-02"),
	}

	if active := data.ActiveEntry(); active != nil {
		view.ClockedIn = true
		view.ActiveStart = active.StartTime.Format("2006-01-02 15:04:05")
		view.ActiveHours = now.Sub(active.StartTime).Seconds() / 3600.0
		if active.Project != nil {
			view.ActiveProject = *active.Project
		}
		if active.Description != nil {
			view.ActiveDescription = *active.Description
		}
	}

	todayEntries := data.EntriesByDate(now)
	view.TodayHours = timecard.SumHours(todayEntries)
	view.TodayEntries = len(todayEntries)

	periodEntries := data.EntriesByPeriod(resolved.Start, resolved.End)
	view.PeriodHours = timecard.SumHours(periodEntries)
	view.PeriodEntries = len(periodEntries)
	view.RecentEntries = buildEntryRows(periodEntries, 10)

	for _, pickerToken := range periodPickerTokens {
		label := pickerToken
		if resolved, err := period.Resolve(pickerToken, now); err == nil {
			label = resolved.Label
		}
		view.PeriodOptions = append(view.PeriodOptions, PeriodOption{
			Token:    pickerToken,
			Label:    label,
			Selected: pickerToken == token,
		})
	}

	return view
}

// buildEntryRows renders the newest entries first, up to limit rows.
func buildEntryRows(entries []timecard.TimeEntry, limit int) []EntryRow {
	sorted := append([]timecard.TimeEntry(nil), entries...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[j].StartTime.Before(sorted[i].StartTime)
	})
	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}

	rows := make([]EntryRow, 0, len(sorted))
	for _, entry := range sorted {
		row := EntryRow{
			Start:  entry.StartTime.Format("2006-01-02 15:04"),
			Active: entry.IsActive(),
		}
		if entry.EndTime != nil {
			row.End = entry.EndTime.Format("2006-01-02 15:04")
		}
		row.Hours, _ = entry.Hours()
		if entry.Project != nil {
			row.Project = *entry.Project
		}
		if entry.Description != nil {
			row.Description = *entry.Description
		}
		rows = append(rows, row)
	}
	return rows
}
