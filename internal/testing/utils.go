// Package testing provides utilities and helpers for testing the autocomplete
// engine: a map-backed item shape, a projector over it, and scripted recency
// and event collaborators.
package testing

import (
	"context"
	"sync"
	"time"

	"github.com/gcbaptista/go-autocomplete-engine/services"
)

// Item is the raw source item used throughout the tests. Production callers
// bring their own shape; the engine only ever sees projected values.
type Item map[string]string

// NewProjector builds a projector over Item maps: "text" is the primary
// text, "key" the stable identifier, and every name in fields becomes a
// secondary field accessor.
func NewProjector(fields ...string) *services.Projector {
	accessors := make(map[string]services.FieldAccessor, len(fields))
	for _, field := range fields {
		name := field
		accessors[name] = func(item interface{}) string {
			if m, ok := item.(Item); ok {
				return m[name]
			}
			return ""
		}
	}
	return &services.Projector{
		Text: func(item interface{}) string {
			if m, ok := item.(Item); ok {
				return m["text"]
			}
			return ""
		},
		Key: func(item interface{}) string {
			if m, ok := item.(Item); ok {
				return m["key"]
			}
			return ""
		},
		Fields: accessors,
	}
}

// Items converts Item values to the []interface{} a session consumes.
func Items(items ...Item) []interface{} {
	raw := make([]interface{}, len(items))
	for i, item := range items {
		raw[i] = item
	}
	return raw
}

// ScriptedRecency is a recency source backed by a fixed map, with optional
// per-key lookup errors to exercise the degradation paths.
type ScriptedRecency struct {
	mu         sync.Mutex
	Timestamps map[string]time.Time
	LookupErr  map[string]error
	RecordErr  error
	Recorded   []string
}

func (r *ScriptedRecency) RecordSelection(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.RecordErr != nil {
		return r.RecordErr
	}
	r.Recorded = append(r.Recorded, key)
	return nil
}

func (r *ScriptedRecency) LastSelected(_ context.Context, key string) (time.Time, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err, failed := r.LookupErr[key]; failed {
		return time.Time{}, false, err
	}
	when, found := r.Timestamps[key]
	return when, found, nil
}

// EventRecorder collects the events a session emits.
type EventRecorder struct {
	Selections   []services.SelectionEvent
	InputChanges []services.InputChangeEvent
}

func (r *EventRecorder) OnSelection(event services.SelectionEvent) {
	r.Selections = append(r.Selections, event)
}

func (r *EventRecorder) OnInputChange(event services.InputChangeEvent) {
	r.InputChanges = append(r.InputChanges, event)
}

// Ensure the helpers satisfy the boundary contracts.
var (
	_ services.RecencySource = (*ScriptedRecency)(nil)
	_ services.EventListener = (*EventRecorder)(nil)
)
