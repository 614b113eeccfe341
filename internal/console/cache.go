package console

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// CacheEntry is the persisted open attendance session. It survives
// restarts so a crashed or closed console can resume the day's session.
type CacheEntry struct {
	EmployeeID     string `json:"employee_id"`
	Day            string `json:"day"` // "YYYY-MM-DD"
	WorkScheduleID string `json:"work_schedule_id"`
	CheckIn        string `json:"check_in"` // "HH:mm"
	TimesheetID    string `json:"timesheet_id"`
}

// LoadCache reads the cache file. A missing file is not an error; it
// returns nil entry.
func LoadCache(path string) (*CacheEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read attendance cache: %w", err)
	}

	var entry CacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("failed to parse attendance cache: %w", err)
	}
	return &entry, nil
}

// SaveCache writes the cache file atomically via a temp file rename.
func SaveCache(path string, entry CacheEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to encode attendance cache: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create attendance cache dir: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write attendance cache: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace attendance cache: %w", err)
	}
	return nil
}

// ClearCache removes the cache file. Missing file is fine.
func ClearCache(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove attendance cache: %w", err)
	}
	return nil
}
