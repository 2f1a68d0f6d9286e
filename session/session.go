// Package session ties the matching, ranking and visibility stages together
// for one widget instance: it owns the candidate set, the current query, the
// open state and the keyboard selection, and emits the boundary events.
package session

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/gcbaptista/go-autocomplete-engine/config"
	"github.com/gcbaptista/go-autocomplete-engine/internal/errors"
	"github.com/gcbaptista/go-autocomplete-engine/internal/ranking"
	"github.com/gcbaptista/go-autocomplete-engine/internal/visibility"
	"github.com/gcbaptista/go-autocomplete-engine/model"
	"github.com/gcbaptista/go-autocomplete-engine/services"
)

// Error values returned by New and ValidateProjector, re-exported so
// embedders can test with errors.Is without importing internal packages.
var (
	ErrNilSettings     = errors.ErrNilSettings
	ErrNilProjector    = errors.ErrNilProjector
	ErrUnknownField    = errors.ErrUnknownField
	ErrInvalidSettings = errors.ErrInvalidSettings
)

// Session is the state of one search box. It is synchronous and
// single-threaded: one query's computation completes before the next begins,
// and it must not be used from multiple goroutines.
type Session struct {
	settings  *config.SearchSettings
	projector *services.Projector
	recency   services.RecencySource // optional
	listener  services.EventListener // optional

	ranker *ranking.Engine
	policy *visibility.Policy

	candidates []*model.Candidate
	ranked     []*model.Candidate
	visible    []*model.Candidate

	query        string
	open         bool
	selected     int
	version      string
	generationID string

	now func() time.Time
}

// New creates a Session. The recency source and event listener are optional;
// passing nil disables recency ordering and event delivery respectively.
func New(settings *config.SearchSettings, projector *services.Projector, recency services.RecencySource, listener services.EventListener) (*Session, error) {
	if settings == nil {
		return nil, errors.ErrNilSettings
	}
	if projector == nil || projector.Text == nil {
		return nil, errors.ErrNilProjector
	}

	if conflicts := settings.Validate(); len(conflicts) > 0 {
		return nil, errors.NewInvalidSettingsError(conflicts)
	}
	settings.ApplyDefaults()

	// A secondary field without an accessor degrades to "no match from that
	// field" at recompute time; surface it once here instead of per keystroke.
	if err := ValidateProjector(settings, projector); err != nil {
		log.Printf("Warning: %v; the field will never match", err)
	}

	ranker, err := ranking.NewEngine(settings)
	if err != nil {
		return nil, err
	}
	policy, err := visibility.NewPolicy(settings)
	if err != nil {
		return nil, err
	}

	return &Session{
		settings:  settings,
		projector: projector,
		recency:   recency,
		listener:  listener,
		ranker:    ranker,
		policy:    policy,
		selected:  -1,
		now:       time.Now,
	}, nil
}

// ValidateProjector checks that every configured secondary field has an
// accessor. It returns an UnknownFieldError for the first field without one.
func ValidateProjector(settings *config.SearchSettings, projector *services.Projector) error {
	for _, field := range settings.SecondaryFields {
		if _, found := projector.Fields[field]; !found {
			return errors.NewUnknownFieldError(field)
		}
	}
	return nil
}

// SetItems replaces the item collection using the count-based rebuild
// heuristic: the candidate set is rebuilt only when the number of items
// changes. A same-size replacement set is NOT detected; callers that swap
// contents without changing the count should use SetItemsVersion.
func (s *Session) SetItems(ctx context.Context, items []interface{}) {
	if len(items) == len(s.candidates) {
		return
	}
	s.rebuild(ctx, items, s.version)
}

// SetItemsVersion replaces the item collection keyed on an explicit version
// token: the candidate set is rebuilt whenever the token differs from the
// previous one (or the count changes). model.Fingerprint derives a suitable
// token from the projected texts.
func (s *Session) SetItemsVersion(ctx context.Context, items []interface{}, version string) {
	if version == s.version && len(items) == len(s.candidates) {
		return
	}
	s.rebuild(ctx, items, version)
}

func (s *Session) rebuild(ctx context.Context, items []interface{}, version string) {
	candidates := make([]*model.Candidate, 0, len(items))
	for _, item := range items {
		secondary := make(map[string]string, len(s.settings.SecondaryFields))
		for _, field := range s.settings.SecondaryFields {
			if value, ok := s.projector.FieldValue(field, item); ok {
				secondary[field] = value
			}
		}

		key := ""
		if s.projector.Key != nil {
			key = s.projector.Key(item)
		}

		candidates = append(candidates, &model.Candidate{
			Text:            s.projector.Text(item),
			Backing:         item,
			Key:             key,
			SecondaryValues: secondary,
		})
	}

	s.candidates = candidates
	s.version = version
	s.generationID = uuid.New().String()

	s.refreshRecency(ctx)
	s.refresh()
}

// refreshRecency loads last-selected timestamps for every keyed candidate.
// A lookup failure degrades to "no recency data" for that candidate only.
func (s *Session) refreshRecency(ctx context.Context) {
	if s.recency == nil {
		return
	}
	for _, cand := range s.candidates {
		if cand.Key == "" {
			continue
		}
		when, found, err := s.recency.LastSelected(ctx, cand.Key)
		if err != nil {
			log.Printf("Warning: recency lookup failed for key '%s': %v", cand.Key, err)
			continue
		}
		if found {
			stamp := when
			cand.LastSelectedAt = &stamp
		}
	}
}

// RefreshRecency reloads last-selected timestamps from the recency source
// and recomputes the display order. Useful when another session writes to the
// same store.
func (s *Session) RefreshRecency(ctx context.Context) {
	s.refreshRecency(ctx)
	s.refresh()
}

// SetQuery updates the current input text, emits the input-change event and
// recomputes match state, order, visibility and selection.
func (s *Session) SetQuery(query string) {
	s.query = query
	if s.listener != nil {
		s.listener.OnInputChange(services.InputChangeEvent{
			Query:   query,
			QueryID: uuid.New().String(),
		})
	}
	s.refresh()
}

// Clear resets the input to empty. When emit-on-clear is enabled a cleared
// selection event follows the input-change event.
func (s *Session) Clear() {
	s.SetQuery("")
	if s.settings.EmitOnClear && s.listener != nil {
		s.listener.OnSelection(services.SelectionEvent{Cleared: true})
	}
}

// SetOpen toggles the open/closed UI state and recomputes the visible subset.
func (s *Session) SetOpen(open bool) {
	s.open = open
	s.visible = s.policy.Visible(s.ranked, s.open, s.query == "")
	s.selected = s.policy.InitialSelection(len(s.visible))
}

// MoveDown moves the keyboard selection one step down over the visible
// subset, wrapping past the last item to the first.
func (s *Session) MoveDown() {
	s.selected = visibility.Next(s.selected, len(s.visible))
}

// MoveUp moves the keyboard selection one step up, wrapping past the first
// item to the last.
func (s *Session) MoveUp() {
	s.selected = visibility.Prev(s.selected, len(s.visible))
}

// Submit confirms the current selection: it emits the selection event with
// the candidate's backing value and, when a recency source is configured and
// the candidate is keyed, stamps the candidate's last-selected time and
// records the selection. With no valid selection it is a no-op and reports
// false.
func (s *Session) Submit(ctx context.Context) bool {
	if s.selected < 0 || s.selected >= len(s.visible) {
		return false
	}
	cand := s.visible[s.selected]

	// Without a configured source no recency data may exist anywhere; the
	// empty-query order must stay insertion order. Same for unkeyed candidates.
	if s.recency != nil && cand.Key != "" {
		stamp := s.now()
		cand.LastSelectedAt = &stamp
		if err := s.recency.RecordSelection(ctx, cand.Key); err != nil {
			log.Printf("Warning: failed to record selection for key '%s': %v", cand.Key, err)
		}
	}

	if s.listener != nil {
		s.listener.OnSelection(services.SelectionEvent{Value: cand.Backing})
	}
	return true
}

// refresh recomputes match state for the current query, reorders the set and
// recalculates the visible subset and the selection index.
func (s *Session) refresh() {
	s.ranker.Recompute(s.query, s.candidates)
	s.ranked = s.ranker.Rank(s.query, s.candidates)
	s.visible = s.policy.Visible(s.ranked, s.open, s.query == "")
	s.selected = s.policy.InitialSelection(len(s.visible))
}

// Query returns the current input text.
func (s *Session) Query() string { return s.query }

// IsOpen reports the current open/closed UI state.
func (s *Session) IsOpen() bool { return s.open }

// Visible returns the currently visible candidates in ranked order.
func (s *Session) Visible() []*model.Candidate { return s.visible }

// Ranked returns all candidates in display order, matching or not.
func (s *Session) Ranked() []*model.Candidate { return s.ranked }

// SelectedIndex returns the keyboard selection index into Visible, or -1.
func (s *Session) SelectedIndex() int { return s.selected }

// Selected returns the currently selected visible candidate, if any.
func (s *Session) Selected() (*model.Candidate, bool) {
	if s.selected < 0 || s.selected >= len(s.visible) {
		return nil, false
	}
	return s.visible[s.selected], true
}

// GenerationID identifies the current item-set generation. It changes on
// every rebuild.
func (s *Session) GenerationID() string { return s.generationID }
