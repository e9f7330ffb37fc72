// Package timecard holds the time tracking data model: individual time
// entries, auxiliary project metadata, and the TimeCardData aggregate that is
// persisted as one unit.
package timecard

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"timecard/internal/timeutil"
)

var (
	// ErrActiveEntryExists is returned when adding an open entry while
	// another entry is still running.
	ErrActiveEntryExists = errors.New("an active time entry already exists")

	// ErrEndNotAfterStart is returned when an entry would end at or before
	// its start time.
	ErrEndNotAfterStart = errors.New("end time must be after start time")
)

// TimeEntry is a single tracked work session. A nil EndTime means the session
// is still running.
type TimeEntry struct {
	ID          uuid.UUID  `json:"id"`
	Project     *string    `json:"project"`
	Description *string    `json:"description"`
	StartTime   time.Time  `json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NewTimeEntry creates a running entry starting now. StartTime, CreatedAt and
// UpdatedAt share a single clock read.
func NewTimeEntry(project, description *string) TimeEntry {
	now := time.Now()
	return TimeEntry{
		ID:          uuid.New(),
		Project:     project,
		Description: description,
		StartTime:   now,
		EndTime:     nil,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// NewManualEntry creates a completed entry with explicit start and end times.
func NewManualEntry(project, description *string, start, end time.Time) (TimeEntry, error) {
	if !end.After(start) {
		return TimeEntry{}, ErrEndNotAfterStart
	}

	now := time.Now()
	return TimeEntry{
		ID:          uuid.New(),
		Project:     project,
		Description: description,
		StartTime:   start,
		EndTime:     &end,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

func (e *TimeEntry) IsActive() bool {
	return e.EndTime == nil
}

// Duration returns the tracked duration. The second return value is false
// while the entry is still running.
func (e *TimeEntry) Duration() (time.Duration, bool) {
	if e.EndTime == nil {
		return 0, false
	}
	return e.EndTime.Sub(e.StartTime), true
}

// Hours returns the tracked duration in fractional hours. The second return
// value is false while the entry is still running.
func (e *TimeEntry) Hours() (float64, bool) {
	duration, ok := e.Duration()
	if !ok {
		return 0, false
	}
	return duration.Seconds() / 3600.0, true
}

// Close sets the end time of a running entry. Closing at or before the start
// time is rejected so a backwards-skewed clock cannot persist a negative
// duration.
func (e *TimeEntry) Close(end time.Time) error {
	if !end.After(e.StartTime) {
		return ErrEndNotAfterStart
	}
	e.EndTime = &end
	e.UpdatedAt = end
	return nil
}

// SetDescription replaces the description and refreshes UpdatedAt.
func (e *TimeEntry) SetDescription(description string) {
	e.Description = &description
	e.UpdatedAt = time.Now()
}

// Project is auxiliary metadata. Entries reference projects by plain name,
// not by ID.
type Project struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewProject(name string, description *string) Project {
	now := time.Now()
	return Project{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// TimeCardData is the aggregate root persisted as a single document. Entries
// keep insertion order; callers sort for display.
type TimeCardData struct {
	TimeEntries []TimeEntry `json:"time_entries"`
	Projects    []Project   `json:"projects"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

func NewTimeCardData() *TimeCardData {
	now := time.Now()
	return &TimeCardData{
		TimeEntries: []TimeEntry{},
		Projects:    []Project{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// AddTimeEntry appends an entry and refreshes the aggregate UpdatedAt. Adding
// a running entry while another entry is still running is rejected, keeping
// the at-most-one-active invariant inside the aggregate instead of every
// caller.
func (d *TimeCardData) AddTimeEntry(entry TimeEntry) error {
	if entry.IsActive() && d.ActiveEntry() != nil {
		return ErrActiveEntryExists
	}
	d.TimeEntries = append(d.TimeEntries, entry)
	d.UpdatedAt = time.Now()
	return nil
}

// AddProject appends a project and refreshes the aggregate UpdatedAt.
func (d *TimeCardData) AddProject(project Project) {
	d.Projects = append(d.Projects, project)
	d.UpdatedAt = time.Now()
}

// ActiveEntry returns the first entry in stored order with no end time, or
// nil when every entry is closed.
func (d *TimeCardData) ActiveEntry() *TimeEntry {
	for i := range d.TimeEntries {
		if d.TimeEntries[i].IsActive() {
			return &d.TimeEntries[i]
		}
	}
	return nil
}

// EntriesByProject returns entries whose project matches name exactly.
// Entries without a project never match.
func (d *TimeCardData) EntriesByProject(name string) []TimeEntry {
	matches := make([]TimeEntry, 0)
	for _, entry := range d.TimeEntries {
		if entry.Project != nil && *entry.Project == name {
			matches = append(matches, entry)
		}
	}
	return matches
}

// EntriesByDate returns entries whose start time falls on the same calendar
// day as date.
func (d *TimeCardData) EntriesByDate(date time.Time) []TimeEntry {
	matches := make([]TimeEntry, 0)
	for _, entry := range d.TimeEntries {
		if timeutil.SameDay(entry.StartTime, date) {
			matches = append(matches, entry)
		}
	}
	return matches
}

// EntriesByPeriod returns entries whose start time lies in [start, end], both
// bounds inclusive. Only the start time is considered: an entry that begins
// before start but ends inside the range is excluded.
func (d *TimeCardData) EntriesByPeriod(start, end time.Time) []TimeEntry {
	matches := make([]TimeEntry, 0)
	for _, entry := range d.TimeEntries {
		if !entry.StartTime.Before(start) && !entry.StartTime.After(end) {
			matches = append(matches, entry)
		}
	}
	return matches
}

// TotalHours sums the hours of all closed entries. Running entries contribute
// zero.
func (d *TimeCardData) TotalHours() float64 {
	return SumHours(d.TimeEntries)
}

func (d *TimeCardData) TotalHoursByProject(name string) float64 {
	return SumHours(d.EntriesByProject(name))
}

func (d *TimeCardData) TotalHoursByPeriod(start, end time.Time) float64 {
	return SumHours(d.EntriesByPeriod(start, end))
}

// SumHours adds up the hours of the closed entries in the slice.
func SumHours(entries []TimeEntry) float64 {
	total := 0.0
	for _, entry := range entries {
		if hours, ok := entry.Hours(); ok {
			total += hours
		}
	}
	return total
}
