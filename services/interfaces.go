// Package services defines the boundary contracts between the autocomplete
// core and its embedder: item projection, recency storage and event delivery.
package services

import (
	"context"
	"time"
)

// FieldAccessor extracts one string field from a raw source item. Returning
// an empty string means the field has no usable value for this item.
type FieldAccessor func(item interface{}) string

// Projector maps a raw source item to the values the engine needs. The engine
// never knows the concrete shape of the source item beyond these projections.
// Accessors are resolved once at construction time, not per keystroke.
type Projector struct {
	// Text extracts the primary display text. Required.
	Text FieldAccessor

	// Key extracts the stable identifier used for recency lookups.
	// Optional; nil or an empty result disables recency for that item.
	Key FieldAccessor

	// Fields maps logical secondary field names to their accessors. Only
	// fields listed in the search settings are evaluated.
	Fields map[string]FieldAccessor
}

// FieldValue resolves a secondary field for an item. It returns ok=false when
// the field has no accessor or the accessor produces a blank value; per the
// error-handling contract this is a skip, never an error.
func (p *Projector) FieldValue(field string, item interface{}) (string, bool) {
	accessor, found := p.Fields[field]
	if !found || accessor == nil {
		return "", false
	}
	value := accessor(item)
	if value == "" {
		return "", false
	}
	return value, true
}

// RecencySource is the external key-value store mapping a candidate's stable
// key to its last-selected timestamp. Both operations may perform I/O; the
// engine treats them as asynchronous and tolerates their failure.
type RecencySource interface {
	// RecordSelection stores "now" as the last-selected time for key.
	RecordSelection(ctx context.Context, key string) error

	// LastSelected returns the last-selected time for key. The boolean is
	// false when no selection has been recorded.
	LastSelected(ctx context.Context, key string) (time.Time, bool, error)
}

// SelectionEvent is emitted when a candidate is chosen, or with Cleared set
// (and a nil Value) when the input is cleared and emit-on-clear is enabled.
type SelectionEvent struct {
	Value   interface{}
	Cleared bool
}

// InputChangeEvent is emitted with the raw query string on every keystroke,
// independent of match results. QueryID uniquely identifies the keystroke.
type InputChangeEvent struct {
	Query   string
	QueryID string
}

// EventListener receives the events the core produces. The embedder decides
// how to dispatch them further; the core calls these synchronously.
type EventListener interface {
	OnSelection(event SelectionEvent)
	OnInputChange(event InputChangeEvent)
}
