// Package storage persists the TimeCardData aggregate as a single JSON
// document. Each command invocation loads the whole file, mutates the
// aggregate in memory, and saves it back wholesale.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"timecard/timecard"
)

// Load reads the aggregate from path. A missing file yields a fresh empty
// aggregate, not an error.
func Load(path string) (*timecard.TimeCardData, error) {
	content, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return timecard.NewTimeCardData(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read data file %s: %w", path, err)
	}

	var data timecard.TimeCardData
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("parse data file %s: %w", path, err)
	}
	return &data, nil
}

// Save writes the aggregate to path, creating parent directories as needed.
// The write goes through a temp file plus rename so a crash mid-write cannot
// truncate the existing file.
func Save(path string, data *timecard.TimeCardData) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create data directory %s: %w", dir, err)
		}
	}

	content, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal data: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
		return fmt.Errorf("write temp data file %s: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp data file: %w", err)
	}
	return nil
}

// Backup copies the data file to a sibling path with a ".backup" suffix
// appended to the existing extension. A missing source file is a no-op and
// returns an empty path.
func Backup(path string) (string, error) {
	source, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("open data file %s: %w", path, err)
	}
	defer source.Close()

	backupPath := path + ".backup"
	target, err := os.Create(backupPath)
	if err != nil {
		return "", fmt.Errorf("create backup file %s: %w", backupPath, err)
	}
	defer target.Close()

	if _, err := io.Copy(target, source); err != nil {
		return "", fmt.Errorf("copy data to %s: %w", backupPath, err)
	}
	if err := target.Close(); err != nil {
		return "", fmt.Errorf("flush backup file %s: %w", backupPath, err)
	}
	return backupPath, nil
}
