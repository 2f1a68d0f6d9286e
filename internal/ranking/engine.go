// Package ranking recomputes match outcomes across a candidate set and orders
// the set according to the configured priority rules.
package ranking

import (
	"fmt"
	"sort"
	"unicode/utf8"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/gcbaptista/go-autocomplete-engine/config"
	"github.com/gcbaptista/go-autocomplete-engine/fuzzy"
	"github.com/gcbaptista/go-autocomplete-engine/internal/errors"
	"github.com/gcbaptista/go-autocomplete-engine/model"
)

// Engine implements the recompute and ordering steps for one search session.
type Engine struct {
	settings *config.SearchSettings
	cache    *lru.Cache[string, fuzzy.MatchOutcome]
}

// NewEngine creates a new ranking Engine. When the settings enable a match
// cache, repeated (query, text) pairs (backspacing, retyping) are served from
// it; the matcher is pure, so cached outcomes are identical to fresh ones.
func NewEngine(settings *config.SearchSettings) (*Engine, error) {
	if settings == nil {
		return nil, errors.ErrNilSettings
	}

	var cache *lru.Cache[string, fuzzy.MatchOutcome]
	if settings.MatchCacheSize > 0 {
		var err error
		cache, err = lru.New[string, fuzzy.MatchOutcome](settings.MatchCacheSize)
		if err != nil {
			return nil, fmt.Errorf("failed to create match cache: %w", err)
		}
	}

	return &Engine{
		settings: settings,
		cache:    cache,
	}, nil
}

// Recompute refreshes every candidate's match state for the given query.
// Per candidate: reset, match the primary text, then each configured
// secondary field in settings order. A secondary outcome replaces the current
// best only on a strictly higher score, so the primary text wins ties and
// earlier-listed fields win ties among themselves. Candidates that end up
// with the sentinel stay in the set; ordering is defined for all of them.
func (e *Engine) Recompute(query string, candidates []*model.Candidate) {
	for _, cand := range candidates {
		cand.ResetMatch()
		cand.Match = e.match(query, cand.Text)

		for _, field := range e.settings.SecondaryFields {
			value, ok := cand.SecondaryValues[field]
			if !ok || value == "" {
				continue // missing or blank values are skipped, not errors
			}
			outcome := e.match(query, value)
			if outcome.Score > cand.Match.Score {
				cand.Match = outcome
				cand.OtherField = &model.FieldMatch{Field: field, Value: value}
			}
		}
	}
}

// Rank returns the candidates in display order. The input slice is not
// modified. Recompute must have run for the same query first.
//
// Empty query: most-recent-selection first, candidates without a recorded
// selection after, both groups keeping their insertion order. Non-empty
// query: optional length-ascending, then optional primary-match-first, then
// best score descending. The sort is stable throughout, so equal-key
// candidates keep their relative input order.
func (e *Engine) Rank(query string, candidates []*model.Candidate) []*model.Candidate {
	ordered := make([]*model.Candidate, len(candidates))
	copy(ordered, candidates)

	if query == "" {
		sort.SliceStable(ordered, func(i, j int) bool {
			ti, tj := ordered[i].LastSelectedAt, ordered[j].LastSelectedAt
			if ti != nil && tj != nil {
				return ti.After(*tj)
			}
			return ti != nil && tj == nil
		})
		return ordered
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]

		if e.settings.PrioritizeShorterValues {
			la, lb := utf8.RuneCountInString(a.Text), utf8.RuneCountInString(b.Text)
			if la != lb {
				return la < lb
			}
		}

		if e.settings.PrioritizePrimaryFieldMatches {
			primaryA, primaryB := a.OtherField == nil, b.OtherField == nil
			if primaryA != primaryB {
				return primaryA
			}
		}

		return a.Match.Score > b.Match.Score
	})
	return ordered
}

func (e *Engine) match(query, text string) fuzzy.MatchOutcome {
	if e.cache == nil {
		return fuzzy.Match(query, text)
	}
	// NUL cannot appear in either part of a sane key, so it separates safely.
	key := query + "\x00" + text
	if outcome, found := e.cache.Get(key); found {
		return outcome
	}
	outcome := fuzzy.Match(query, text)
	e.cache.Add(key, outcome)
	return outcome
}
