package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"timecard/timecard"
)

func sampleData(t *testing.T) *timecard.TimeCardData {
	t.Helper()

	project := "alpha"
	description := "code review"
	start := time.Date(2024, 1, 15, 9, 0, 0, 0, time.Local)

	data := timecard.NewTimeCardData()
	closed, err := timecard.NewManualEntry(&project, &description, start, start.Add(2*time.Hour))
	if err != nil {
		t.Fatalf("new manual entry: %v", err)
	}
	if err := data.AddTimeEntry(closed); err != nil {
		t.Fatalf("add closed entry: %v", err)
	}

	active := timecard.NewTimeEntry(&project, nil)
	if err := data.AddTimeEntry(active); err != nil {
		t.Fatalf("add active entry: %v", err)
	}

	data.AddProject(timecard.NewProject("alpha", &description))
	return data
}

func TestLoadMissingFileReturnsEmptyAggregate(t *testing.T) {
	t.Parallel()

	data, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("load missing file: %v", err)
	}
	if len(data.TimeEntries) != 0 || len(data.Projects) != 0 {
		t.Fatalf("expected empty aggregate, got %d entries, %d projects",
			len(data.TimeEntries), len(data.Projects))
	}
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "timecard.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write malformed file: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for malformed data file")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "timecard.json")
	original := sampleData(t)

	if err := Save(path, original); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if len(loaded.TimeEntries) != len(original.TimeEntries) {
		t.Fatalf("expected %d entries, got %d", len(original.TimeEntries), len(loaded.TimeEntries))
	}
	for i, want := range original.TimeEntries {
		got := loaded.TimeEntries[i]
		if got.ID != want.ID {
			t.Fatalf("entry %d: expected id %s, got %s", i, want.ID, got.ID)
		}
		if !got.StartTime.Equal(want.StartTime) {
			t.Fatalf("entry %d: expected start %v, got %v", i, want.StartTime, got.StartTime)
		}
		if (got.EndTime == nil) != (want.EndTime == nil) {
			t.Fatalf("entry %d: end time presence mismatch", i)
		}
		if want.EndTime != nil && !got.EndTime.Equal(*want.EndTime) {
			t.Fatalf("entry %d: expected end %v, got %v", i, want.EndTime, got.EndTime)
		}
		if (got.Project == nil) != (want.Project == nil) {
			t.Fatalf("entry %d: project presence mismatch", i)
		}
		if want.Project != nil && *got.Project != *want.Project {
			t.Fatalf("entry %d: expected project %q, got %q", i, *want.Project, *got.Project)
		}
		if (got.Description == nil) != (want.Description == nil) {
			t.Fatalf("entry %d: description presence mismatch", i)
		}
		if want.Description != nil && *got.Description != *want.Description {
			t.Fatalf("entry %d: expected description %q, got %q", i, *want.Description, *got.Description)
		}
	}

	if len(loaded.Projects) != len(original.Projects) {
		t.Fatalf("expected %d projects, got %d", len(original.Projects), len(loaded.Projects))
	}
	for i, want := range original.Projects {
		got := loaded.Projects[i]
		if got.ID != want.ID || got.Name != want.Name {
			t.Fatalf("project %d: expected %s %q, got %s %q", i, want.ID, want.Name, got.ID, got.Name)
		}
	}
}

func TestSaveCreatesParentDirectories(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "dir", "timecard.json")
	if err := Save(path, timecard.NewTimeCardData()); err != nil {
		t.Fatalf("save into nested directory: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected data file to exist: %v", err)
	}
}

func TestSaveLeavesNoTempFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "timecard.json")
	if err := Save(path, timecard.NewTimeCardData()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("expected temp file to be renamed away")
	}
}

func TestBackup(t *testing.T) {
	t.Parallel()

	t.Run("copies to backup suffix", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "timecard.json")
		if err := Save(path, sampleData(t)); err != nil {
			t.Fatalf("save: %v", err)
		}

		backupPath, err := Backup(path)
		if err != nil {
			t.Fatalf("backup: %v", err)
		}
		if backupPath != path+".backup" {
			t.Fatalf("expected backup at %s, got %s", path+".backup", backupPath)
		}

		original, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read original: %v", err)
		}
		copied, err := os.ReadFile(backupPath)
		if err != nil {
			t.Fatalf("read backup: %v", err)
		}
		if string(original) != string(copied) {
			t.Fatalf("expected backup to match original")
		}
	})

	t.Run("missing source is a no-op", func(t *testing.T) {
		backupPath, err := Backup(filepath.Join(t.TempDir(), "missing.json"))
		if err != nil {
			t.Fatalf("backup of missing file: %v", err)
		}
		if backupPath != "" {
			t.Fatalf("expected empty backup path, got %s", backupPath)
		}
	})
}
