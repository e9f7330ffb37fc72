package cmd

import (
	"fmt"
	"strings"

	"timecard/timecard"
)

// optionalString maps an empty or whitespace-only flag value to nil.
func optionalString(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func projectLabel(entry timecard.TimeEntry) string {
	if entry.Project == nil {
		return "No Project"
	}
	return *entry.Project
}

func printEntryDetails(entry timecard.TimeEntry) {
	if entry.Project != nil {
		fmt.Printf("Project: %s\n", *entry.Project)
	}
	if entry.Description != nil {
		fmt.Printf("Description: %s\n", *entry.Description)
	}
}

// csvReportFilename derives the export filename from a period token, with
// hyphens replaced by underscores.
func csvReportFilename(period string) string {
	token := strings.ToLower(strings.TrimSpace(period))
	return "timecard_report_" + strings.ReplaceAll(token, "-", "_") + ".csv"
}

// projectHours sums hours per project label; entries without a project group
// under "No Project".
func projectHours(entries []timecard.TimeEntry) map[string]float64 {
	totals := make(map[string]float64)
	for _, entry := range entries {
		hours, _ := entry.Hours()
		totals[projectLabel(entry)] += hours
	}
	return totals
}
