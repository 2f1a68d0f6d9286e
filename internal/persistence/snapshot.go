// Package persistence stores recency snapshots on disk in Go's gob format.
package persistence

import (
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// SaveSnapshot writes the recency entries to filePath, creating parent
// directories as needed.
func SaveSnapshot(filePath string, entries map[string]time.Time) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	file, err := os.Create(filePath) // #nosec G304 -- filePath is controlled by the embedding application
	if err != nil {
		return fmt.Errorf("failed to create snapshot file %s: %w", filePath, err)
	}

	if err := gob.NewEncoder(file).Encode(entries); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to encode snapshot %s: %w", filePath, err)
	}
	return file.Close()
}

// LoadSnapshot reads recency entries back from filePath. A missing file is
// reported as os.ErrNotExist so callers can treat it as a fresh start.
func LoadSnapshot(filePath string) (map[string]time.Time, error) {
	file, err := os.Open(filePath) // #nosec G304 -- filePath is controlled by the embedding application
	if err != nil {
		if os.IsNotExist(err) {
			return nil, os.ErrNotExist
		}
		return nil, fmt.Errorf("failed to open snapshot file %s: %w", filePath, err)
	}
	defer func() {
		_ = file.Close()
	}()

	entries := make(map[string]time.Time)
	if err := gob.NewDecoder(file).Decode(&entries); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot %s: %w", filePath, err)
	}
	return entries, nil
}
