package timecard

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
)

func strPtr(value string) *string {
	return &value
}

func closedEntry(project string, start, end time.Time) TimeEntry {
	entry := TimeEntry{
		ID:        uuid.New(),
		StartTime: start,
		EndTime:   &end,
		CreatedAt: start,
		UpdatedAt: end,
	}
	if project != "" {
		entry.Project = strPtr(project)
	}
	return entry
}

func openEntry(project string, start time.Time) TimeEntry {
	entry := TimeEntry{
		ID:        uuid.New(),
		StartTime: start,
		CreatedAt: start,
		UpdatedAt: start,
	}
	if project != "" {
		entry.Project = strPtr(project)
	}
	return entry
}

func TestNewTimeEntrySharesOneClockRead(t *testing.T) {
	t.Parallel()

	entry := NewTimeEntry(strPtr("alpha"), nil)

	if !entry.StartTime.Equal(entry.CreatedAt) || !entry.StartTime.Equal(entry.UpdatedAt) {
		t.Fatalf("expected identical timestamps, got start=%v created=%v updated=%v",
			entry.StartTime, entry.CreatedAt, entry.UpdatedAt)
	}
	if !entry.IsActive() {
		t.Fatalf("expected new entry to be active")
	}
	if entry.ID == uuid.Nil {
		t.Fatalf("expected a non-nil id")
	}
}

func TestDurationAndHours(t *testing.T) {
	t.Parallel()

	start := time.Date(2024, 1, 15, 9, 0, 0, 0, time.Local)

	t.Run("absent while active", func(t *testing.T) {
		entry := openEntry("", start)
		if _, ok := entry.Duration(); ok {
			t.Fatalf("expected no duration for active entry")
		}
		if _, ok := entry.Hours(); ok {
			t.Fatalf("expected no hours for active entry")
		}
	})

	t.Run("present once closed", func(t *testing.T) {
		entry := closedEntry("", start, start.Add(90*time.Minute))
		duration, ok := entry.Duration()
		if !ok {
			t.Fatalf("expected duration for closed entry")
		}
		if duration != 90*time.Minute {
			t.Fatalf("expected 90m, got %v", duration)
		}
		hours, ok := entry.Hours()
		if !ok {
			t.Fatalf("expected hours for closed entry")
		}
		if want := duration.Seconds() / 3600.0; math.Abs(hours-want) > 1e-9 {
			t.Fatalf("expected %v hours, got %v", want, hours)
		}
	})
}

func TestClose(t *testing.T) {
	t.Parallel()

	start := time.Date(2024, 1, 15, 9, 0, 0, 0, time.Local)

	t.Run("sets end time and updated at", func(t *testing.T) {
		entry := openEntry("", start)
		end := start.Add(2 * time.Hour)

		if err := entry.Close(end); err != nil {
			t.Fatalf("close entry: %v", err)
		}
		if entry.IsActive() {
			t.Fatalf("expected entry to be closed")
		}
		if !entry.EndTime.Equal(end) || !entry.UpdatedAt.Equal(end) {
			t.Fatalf("expected end=%v updated=%v, got end=%v updated=%v",
				end, end, entry.EndTime, entry.UpdatedAt)
		}
	})

	t.Run("rejects end equal to start", func(t *testing.T) {
		entry := openEntry("", start)
		if err := entry.Close(start); !errors.Is(err, ErrEndNotAfterStart) {
			t.Fatalf("expected ErrEndNotAfterStart, got %v", err)
		}
	})

	t.Run("rejects backwards clock", func(t *testing.T) {
		entry := openEntry("", start)
		if err := entry.Close(start.Add(-time.Second)); !errors.Is(err, ErrEndNotAfterStart) {
			t.Fatalf("expected ErrEndNotAfterStart, got %v", err)
		}
		if !entry.IsActive() {
			t.Fatalf("expected entry to stay active after rejected close")
		}
	})
}

func TestNewManualEntry(t *testing.T) {
	t.Parallel()

	start := time.Date(2024, 1, 15, 9, 0, 0, 0, time.Local)

	t.Run("valid range", func(t *testing.T) {
		entry, err := NewManualEntry(strPtr("alpha"), strPtr("review"), start, start.Add(time.Hour))
		if err != nil {
			t.Fatalf("new manual entry: %v", err)
		}
		if entry.IsActive() {
			t.Fatalf("expected manual entry to be closed")
		}
		hours, _ := entry.Hours()
		if math.Abs(hours-1.0) > 1e-9 {
			t.Fatalf("expected 1 hour, got %v", hours)
		}
	})

	t.Run("rejects end before start", func(t *testing.T) {
		end := time.Date(2024, 1, 15, 8, 0, 0, 0, time.Local)
		if _, err := NewManualEntry(nil, nil, start, end); !errors.Is(err, ErrEndNotAfterStart) {
			t.Fatalf("expected ErrEndNotAfterStart, got %v", err)
		}
	})

	t.Run("rejects zero duration", func(t *testing.T) {
		if _, err := NewManualEntry(nil, nil, start, start); !errors.Is(err, ErrEndNotAfterStart) {
			t.Fatalf("expected ErrEndNotAfterStart, got %v", err)
		}
	})
}

func TestAddTimeEntryEnforcesSingleActive(t *testing.T) {
	t.Parallel()

	start := time.Date(2024, 1, 15, 9, 0, 0, 0, time.Local)
	data := NewTimeCardData()

	if err := data.AddTimeEntry(openEntry("alpha", start)); err != nil {
		t.Fatalf("add first active entry: %v", err)
	}
	if err := data.AddTimeEntry(openEntry("beta", start.Add(time.Minute))); !errors.Is(err, ErrActiveEntryExists) {
		t.Fatalf("expected ErrActiveEntryExists, got %v", err)
	}
	if len(data.TimeEntries) != 1 {
		t.Fatalf("expected exactly one entry, got %d", len(data.TimeEntries))
	}

	// Closed entries are always allowed.
	if err := data.AddTimeEntry(closedEntry("beta", start, start.Add(time.Hour))); err != nil {
		t.Fatalf("add closed entry: %v", err)
	}
}

func TestActiveEntry(t *testing.T) {
	t.Parallel()

	start := time.Date(2024, 1, 15, 9, 0, 0, 0, time.Local)

	t.Run("nil when all closed", func(t *testing.T) {
		data := NewTimeCardData()
		if err := data.AddTimeEntry(closedEntry("alpha", start, start.Add(time.Hour))); err != nil {
			t.Fatalf("add entry: %v", err)
		}
		if data.ActiveEntry() != nil {
			t.Fatalf("expected no active entry")
		}
	})

	t.Run("first match in stored order", func(t *testing.T) {
		data := NewTimeCardData()
		if err := data.AddTimeEntry(closedEntry("alpha", start, start.Add(time.Hour))); err != nil {
			t.Fatalf("add entry: %v", err)
		}
		active := openEntry("beta", start.Add(2*time.Hour))
		if err := data.AddTimeEntry(active); err != nil {
			t.Fatalf("add active entry: %v", err)
		}

		got := data.ActiveEntry()
		if got == nil {
			t.Fatalf("expected an active entry")
		}
		if got.ID != active.ID {
			t.Fatalf("expected entry %s, got %s", active.ID, got.ID)
		}
	})

	t.Run("returned pointer mutates the aggregate", func(t *testing.T) {
		data := NewTimeCardData()
		if err := data.AddTimeEntry(openEntry("alpha", start)); err != nil {
			t.Fatalf("add entry: %v", err)
		}

		if err := data.ActiveEntry().Close(start.Add(time.Hour)); err != nil {
			t.Fatalf("close active entry: %v", err)
		}
		if data.ActiveEntry() != nil {
			t.Fatalf("expected no active entry after close")
		}
	})
}

func TestEntriesByProject(t *testing.T) {
	t.Parallel()

	start := time.Date(2024, 1, 15, 9, 0, 0, 0, time.Local)
	data := NewTimeCardData()
	entries := []TimeEntry{
		closedEntry("alpha", start, start.Add(time.Hour)),
		closedEntry("Alpha", start.Add(time.Hour), start.Add(2*time.Hour)),
		closedEntry("", start.Add(2*time.Hour), start.Add(3*time.Hour)),
		closedEntry("alpha", start.Add(3*time.Hour), start.Add(4*time.Hour)),
	}
	for _, entry := range entries {
		if err := data.AddTimeEntry(entry); err != nil {
			t.Fatalf("add entry: %v", err)
		}
	}

	got := data.EntriesByProject("alpha")
	if len(got) != 2 {
		t.Fatalf("expected 2 case-sensitive matches, got %d", len(got))
	}
	if len(data.EntriesByProject("gamma")) != 0 {
		t.Fatalf("expected no matches for unknown project")
	}
}

func TestEntriesByDate(t *testing.T) {
	t.Parallel()

	data := NewTimeCardData()
	jan15 := time.Date(2024, 1, 15, 9, 0, 0, 0, time.Local)
	jan16 := time.Date(2024, 1, 16, 9, 0, 0, 0, time.Local)
	if err := data.AddTimeEntry(closedEntry("alpha", jan15, jan15.Add(time.Hour))); err != nil {
		t.Fatalf("add entry: %v", err)
	}
	if err := data.AddTimeEntry(closedEntry("alpha", jan16, jan16.Add(time.Hour))); err != nil {
		t.Fatalf("add entry: %v", err)
	}

	got := data.EntriesByDate(time.Date(2024, 1, 15, 23, 0, 0, 0, time.Local))
	if len(got) != 1 {
		t.Fatalf("expected 1 entry on 2024-01-15, got %d", len(got))
	}
	if !got[0].StartTime.Equal(jan15) {
		t.Fatalf("expected entry starting %v, got %v", jan15, got[0].StartTime)
	}
}

func TestEntriesByPeriodBounds(t *testing.T) {
	t.Parallel()

	periodStart := time.Date(2024, 1, 15, 0, 0, 0, 0, time.Local)
	periodEnd := time.Date(2024, 1, 15, 23, 59, 59, 0, time.Local)

	data := NewTimeCardData()
	inside := []time.Time{
		periodStart,
		periodStart.Add(12 * time.Hour),
		periodEnd,
	}
	outside := []time.Time{
		periodStart.Add(-time.Second),
		periodEnd.Add(time.Second),
	}
	for _, start := range append(append([]time.Time{}, inside...), outside...) {
		if err := data.AddTimeEntry(closedEntry("alpha", start, start.Add(time.Minute))); err != nil {
			t.Fatalf("add entry: %v", err)
		}
	}

	got := data.EntriesByPeriod(periodStart, periodEnd)
	if len(got) != len(inside) {
		t.Fatalf("expected %d entries inside bounds, got %d", len(inside), len(got))
	}
}

func TestEntriesByPeriodFiltersOnStartOnly(t *testing.T) {
	t.Parallel()

	periodStart := time.Date(2024, 1, 15, 0, 0, 0, 0, time.Local)
	periodEnd := time.Date(2024, 1, 15, 23, 59, 59, 0, time.Local)

	data := NewTimeCardData()
	// Starts before the range but ends inside it: excluded by definition.
	overlapping := closedEntry("alpha",
		periodStart.Add(-2*time.Hour),
		periodStart.Add(2*time.Hour))
	if err := data.AddTimeEntry(overlapping); err != nil {
		t.Fatalf("add entry: %v", err)
	}

	if got := data.EntriesByPeriod(periodStart, periodEnd); len(got) != 0 {
		t.Fatalf("expected overlap-only entry to be excluded, got %d entries", len(got))
	}
}

func TestTotals(t *testing.T) {
	t.Parallel()

	start := time.Date(2024, 1, 15, 9, 0, 0, 0, time.Local)
	data := NewTimeCardData()
	if err := data.AddTimeEntry(closedEntry("alpha", start, start.Add(2*time.Hour))); err != nil {
		t.Fatalf("add entry: %v", err)
	}
	if err := data.AddTimeEntry(closedEntry("beta", start.Add(3*time.Hour), start.Add(4*time.Hour))); err != nil {
		t.Fatalf("add entry: %v", err)
	}
	if err := data.AddTimeEntry(openEntry("alpha", start.Add(5*time.Hour))); err != nil {
		t.Fatalf("add active entry: %v", err)
	}

	if got := data.TotalHours(); math.Abs(got-3.0) > 1e-9 {
		t.Fatalf("expected 3 total hours (active contributes zero), got %v", got)
	}
	if got := data.TotalHoursByProject("alpha"); math.Abs(got-2.0) > 1e-9 {
		t.Fatalf("expected 2 hours for alpha, got %v", got)
	}
	if got := data.TotalHoursByPeriod(start, start.Add(4*time.Hour)); math.Abs(got-3.0) > 1e-9 {
		t.Fatalf("expected 3 hours in period, got %v", got)
	}
}

func TestClockScenario(t *testing.T) {
	t.Parallel()

	t0 := time.Date(2024, 1, 15, 9, 0, 0, 0, time.Local)
	t1 := t0.Add(90 * time.Minute)

	data := NewTimeCardData()
	if err := data.AddTimeEntry(openEntry("alpha", t0)); err != nil {
		t.Fatalf("clock in: %v", err)
	}
	if err := data.AddTimeEntry(openEntry("alpha", t0.Add(time.Minute))); !errors.Is(err, ErrActiveEntryExists) {
		t.Fatalf("expected second clock-in to be rejected, got %v", err)
	}

	active := data.ActiveEntry()
	if active == nil {
		t.Fatalf("expected exactly one active entry")
	}
	if err := active.Close(t1); err != nil {
		t.Fatalf("clock out: %v", err)
	}

	if !active.EndTime.Equal(t1) {
		t.Fatalf("expected end time %v, got %v", t1, active.EndTime)
	}
	hours, _ := active.Hours()
	if want := t1.Sub(t0).Seconds() / 3600.0; math.Abs(hours-want) > 1e-9 {
		t.Fatalf("expected %v hours, got %v", want, hours)
	}
	if data.ActiveEntry() != nil {
		t.Fatalf("expected no active entry after clock out")
	}
}
