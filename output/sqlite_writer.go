package output

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"timecard/timecard"
)

// SQLiteWriter exports entries into a SQLite database for external analysis.
// The canonical store stays the JSON data file; this is an export target.
type SQLiteWriter struct{}

func (w *SQLiteWriter) Write(path string, entries []timecard.TimeEntry) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("open sqlite output %s: %w", path, err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("ping sqlite output %s: %w", path, err)
	}

	const schema = `
CREATE TABLE IF NOT EXISTS time_entries (
	id TEXT PRIMARY KEY,
	project TEXT,
	description TEXT,
	start_time TEXT NOT NULL,
	end_time TEXT,
	duration_hours REAL,
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("create sqlite schema: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	const insertStmt = `
INSERT OR REPLACE INTO time_entries (
	id,
	project,
	description,
	start_time,
	end_time,
	duration_hours,
	created_at,
	updated_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?);`

	stmt, err := tx.Prepare(insertStmt)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("prepare insert statement: %w", err)
	}
	defer stmt.Close()

	for _, entry := range entries {
		var project, description any
		if entry.Project != nil {
			project = *entry.Project
		}
		if entry.Description != nil {
			description = *entry.Description
		}

		var hours any
		if value, ok := entry.Hours(); ok {
			hours = value
		}

		var endValue any
		if formatted := formatOptionalTime(entry.EndTime); formatted != "" {
			endValue = formatted
		}

		if _, err := stmt.Exec(
			entry.ID.String(),
			project,
			description,
			entry.StartTime.Format(time.RFC3339),
			endValue,
			hours,
			entry.CreatedAt.Format(time.RFC3339),
			entry.UpdatedAt.Format(time.RFC3339),
		); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("insert time entry %s: %w", entry.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}
