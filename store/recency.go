// Package store provides a ready-made implementation of the recency boundary:
// an in-memory, concurrency-safe map from candidate key to last-selected time
// with optional gob snapshot persistence.
package store

import (
	"context"
	"os"
	"time"

	"github.com/puzpuzpuz/xsync/v3"

	"github.com/gcbaptista/go-autocomplete-engine/internal/persistence"
	"github.com/gcbaptista/go-autocomplete-engine/services"
)

// RecencyStore records when candidates were last selected. All methods are
// safe for concurrent use; the engine may look timestamps up while the
// embedder records selections from another goroutine.
type RecencyStore struct {
	entries *xsync.MapOf[string, time.Time]
	now     func() time.Time
}

// NewRecencyStore creates an empty RecencyStore.
func NewRecencyStore() *RecencyStore {
	return &RecencyStore{
		entries: xsync.NewMapOf[string, time.Time](),
		now:     time.Now,
	}
}

// RecordSelection stores the current time as the last-selected time for key.
func (s *RecencyStore) RecordSelection(_ context.Context, key string) error {
	if key == "" {
		return nil // unkeyed candidates carry no recency
	}
	s.entries.Store(key, s.now())
	return nil
}

// LastSelected returns the last-selected time for key; the boolean is false
// when no selection has been recorded.
func (s *RecencyStore) LastSelected(_ context.Context, key string) (time.Time, bool, error) {
	when, found := s.entries.Load(key)
	return when, found, nil
}

// Snapshot returns a point-in-time copy of all recorded selections.
func (s *RecencyStore) Snapshot() map[string]time.Time {
	snapshot := make(map[string]time.Time, s.entries.Size())
	s.entries.Range(func(key string, when time.Time) bool {
		snapshot[key] = when
		return true
	})
	return snapshot
}

// Restore replaces the store's contents with the given entries.
func (s *RecencyStore) Restore(entries map[string]time.Time) {
	s.entries.Clear()
	for key, when := range entries {
		s.entries.Store(key, when)
	}
}

// Save persists a snapshot of the store to filePath.
func (s *RecencyStore) Save(filePath string) error {
	return persistence.SaveSnapshot(filePath, s.Snapshot())
}

// Load restores the store from a snapshot file. A missing file leaves the
// store empty and is not an error.
func (s *RecencyStore) Load(filePath string) error {
	entries, err := persistence.LoadSnapshot(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	s.Restore(entries)
	return nil
}

// Ensure RecencyStore implements the boundary contract.
var _ services.RecencySource = (*RecencyStore)(nil)
