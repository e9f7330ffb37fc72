package cmd

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"timecard/timecard"
)

func TestOptionalString(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  *string
	}{
		{name: "empty is nil", value: "", want: nil},
		{name: "whitespace is nil", value: "   ", want: nil},
		{name: "value is trimmed", value: "  acme  ", want: strPtr("acme")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := optionalString(tt.value)
			if tt.want == nil {
				if got != nil {
					t.Fatalf("expected nil, got %q", *got)
				}
				return
			}
			if got == nil || *got != *tt.want {
				t.Fatalf("expected %q, got %v", *tt.want, got)
			}
		})
	}
}

func TestProjectLabel(t *testing.T) {
	entry := timecard.TimeEntry{}
	if got := projectLabel(entry); got != "No Project" {
		t.Fatalf("expected No Project for missing project, got %q", got)
	}

	entry.Project = strPtr("acme")
	if got := projectLabel(entry); got != "acme" {
		t.Fatalf("expected acme, got %q", got)
	}
}

func TestCSVReportFilename(t *testing.T) {
	tests := []struct {
		period string
		want   string
	}{
		{period: "today", want: "timecard_report_today.csv"},
		{period: "last-month", want: "timecard_report_last_month.csv"},
		{period: " This-Week ", want: "timecard_report_this_week.csv"},
	}

	for _, tt := range tests {
		if got := csvReportFilename(tt.period); got != tt.want {
			t.Fatalf("csvReportFilename(%q): expected %q, got %q", tt.period, tt.want, got)
		}
	}
}

func TestProjectHours(t *testing.T) {
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.Local)
	entries := []timecard.TimeEntry{
		closedTestEntry(start, 2*time.Hour, strPtr("acme")),
		closedTestEntry(start.Add(3*time.Hour), 30*time.Minute, strPtr("acme")),
		closedTestEntry(start.Add(4*time.Hour), time.Hour, nil),
	}

	totals := projectHours(entries)
	if len(totals) != 2 {
		t.Fatalf("expected 2 project buckets, got %d", len(totals))
	}
	if totals["acme"] != 2.5 {
		t.Fatalf("expected 2.5 hours for acme, got %v", totals["acme"])
	}
	if totals["No Project"] != 1.0 {
		t.Fatalf("expected 1.0 hours for No Project, got %v", totals["No Project"])
	}
}

func strPtr(value string) *string {
	return &value
}

func closedTestEntry(start time.Time, duration time.Duration, project *string) timecard.TimeEntry {
	end := start.Add(duration)
	return timecard.TimeEntry{
		ID:        uuid.New(),
		Project:   project,
		StartTime: start,
		EndTime:   &end,
		CreatedAt: start,
		UpdatedAt: end,
	}
}
