// Package output writes time entries and daily summaries to export targets:
// CSV, Excel, and SQLite.
package output

import (
	"fmt"
	"strings"
	"time"

	"timecard/timecard"
)

// entryHeaders is the fixed export header row.
var entryHeaders = []string{"Date", "Start Time", "End Time", "Duration (hours)", "Project", "Description"}

type Writer interface {
	Write(path string, entries []timecard.TimeEntry) error
}

func WriterForFormat(format string) (Writer, error) {
	switch normalizeFormat(format) {
	case "csv":
		return &CSVWriter{}, nil
	case "excel", "xlsx":
		return &ExcelWriter{}, nil
	case "sqlite", "db":
		return &SQLiteWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

func normalizeFormat(value string) string {
	return strings.TrimSpace(strings.ToLower(value))
}

// entryRow renders one entry in the shared export column order. An active
// entry has an empty end time and a zero duration.
func entryRow(entry timecard.TimeEntry) []string {
	endValue := ""
	if entry.EndTime != nil {
		endValue = entry.EndTime.Format("2006-01-02 15:04:05")
	}
	hours, _ := entry.Hours()
	project := ""
	if entry.Project != nil {
		project = *entry.Project
	}
	description := ""
	if entry.Description != nil {
		description = *entry.Description
	}

	return []string{
		entry.StartTime.Format("2006-01-02"),
		entry.StartTime.Format("2006-01-02 15:04:05"),
		endValue,
		fmt.Sprintf("%.2f", hours),
		project,
		description,
	}
}

func formatOptionalTime(value *time.Time) string {
	if value == nil {
		return ""
	}
	return value.Format(time.RFC3339)
}
