package persistence

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestSnapshotRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "recency.gob")

	original := map[string]time.Time{
		"k1": time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		"k2": time.Date(2024, 6, 7, 8, 9, 10, 0, time.UTC),
	}

	if err := SaveSnapshot(path, original); err != nil {
		t.Fatalf("SaveSnapshot() error = %v", err)
	}

	loaded, err := LoadSnapshot(path)
	if err != nil {
		t.Fatalf("LoadSnapshot() error = %v", err)
	}

	if len(loaded) != len(original) {
		t.Fatalf("loaded %d entries, expected %d", len(loaded), len(original))
	}
	for key, want := range original {
		if !loaded[key].Equal(want) {
			t.Errorf("entry %s = %v, expected %v", key, loaded[key], want)
		}
	}
}

func TestLoadSnapshot_MissingFile(t *testing.T) {
	_, err := LoadSnapshot(filepath.Join(t.TempDir(), "missing.gob"))

	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadSnapshot() on a missing file returned %v, expected os.ErrNotExist", err)
	}
}
