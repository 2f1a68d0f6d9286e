// Package visibility decides which ranked candidates are currently shown and
// how keyboard selection moves over the visible subset.
package visibility

import (
	"github.com/gcbaptista/go-autocomplete-engine/config"
	"github.com/gcbaptista/go-autocomplete-engine/internal/errors"
	"github.com/gcbaptista/go-autocomplete-engine/model"
)

// Policy applies the open-state, cap and match rules to a ranked list.
type Policy struct {
	settings *config.SearchSettings
}

// NewPolicy creates a new visibility Policy.
func NewPolicy(settings *config.SearchSettings) (*Policy, error) {
	if settings == nil {
		return nil, errors.ErrNilSettings
	}
	return &Policy{settings: settings}, nil
}

// Visible returns the candidates currently eligible for display, in ranked
// order. A candidate is shown when the list is open, its 0-based rank
// position is below the cap (cap 0 means unlimited), and it either genuinely
// matches or the query is empty (the default list stays visible without
// input).
func (p *Policy) Visible(ranked []*model.Candidate, isOpen bool, queryEmpty bool) []*model.Candidate {
	visible := make([]*model.Candidate, 0)
	if !isOpen {
		return visible
	}

	for position, cand := range ranked {
		if p.settings.MaxItemsToShow > 0 && position >= p.settings.MaxItemsToShow {
			break
		}
		if cand.Matched() || queryEmpty {
			visible = append(visible, cand)
		}
	}
	return visible
}

// InitialSelection returns the selection index to use after a query change or
// item-set rebuild: 0 when select-first-match is enabled and anything is
// visible, otherwise -1 (no selection).
func (p *Policy) InitialSelection(visibleCount int) int {
	if p.settings.SelectFirstMatch && visibleCount > 0 {
		return 0
	}
	return -1
}

// Next moves the selection one step down over the visible subset, wrapping
// past the last index back to 0. With nothing visible it returns -1; with no
// current selection it selects the first item.
func Next(current, visibleCount int) int {
	if visibleCount <= 0 {
		return -1
	}
	if current < 0 || current >= visibleCount-1 {
		return 0
	}
	return current + 1
}

// Prev moves the selection one step up, wrapping past the first index to the
// last visible one. With nothing visible it returns -1.
func Prev(current, visibleCount int) int {
	if visibleCount <= 0 {
		return -1
	}
	if current <= 0 || current >= visibleCount {
		return visibleCount - 1
	}
	return current - 1
}
