// Package model defines the candidate value flowing through the matching,
// ranking and visibility stages.
package model

import (
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/gcbaptista/go-autocomplete-engine/fuzzy"
)

// FieldMatch records which secondary field produced a candidate's best match
// and the field value the match was computed against.
type FieldMatch struct {
	Field string
	Value string
}

// Candidate is one searchable item derived from the caller's data source.
// Text and SecondaryValues are projected once when the item set is built;
// Match and OtherField are recomputed on every query change.
type Candidate struct {
	// Text is the primary string evaluated against the query.
	Text string

	// Backing is the caller's original item. The engine never inspects it.
	Backing interface{}

	// Key is an optional stable identifier used for recency lookups.
	// Empty means no recency boosting applies to this candidate.
	Key string

	// LastSelectedAt is the candidate's last-selection timestamp, if known.
	// It is consumed only for ordering when the query is empty.
	LastSelectedAt *time.Time

	// SecondaryValues holds the projected secondary field values, resolved
	// once per item-set generation.
	SecondaryValues map[string]string

	// Match is the most recent matcher outcome for the current query.
	Match fuzzy.MatchOutcome

	// OtherField is set when a secondary field produced a strictly higher
	// score than the primary text; nil when the primary text won.
	OtherField *FieldMatch
}

// ResetMatch restores the candidate's match state to "no match" before a
// recompute pass. Stale results must never survive a query change.
func (c *Candidate) ResetMatch() {
	c.Match = fuzzy.NoMatch()
	c.OtherField = nil
}

// Matched reports whether the candidate's current outcome is a genuine match
// (empty-query outcomes included).
func (c *Candidate) Matched() bool {
	return c.Match.Matched()
}

// Fingerprint derives a content-based version token from the projected texts
// of an item set. Callers using Session.SetItemsVersion can pass it to make
// rebuild detection depend on content instead of item count.
func Fingerprint(texts []string) string {
	digest := xxhash.New()
	for _, text := range texts {
		// Length prefix keeps ["ab","c"] and ["a","bc"] distinct.
		_, _ = digest.WriteString(strconv.Itoa(len(text)))
		_, _ = digest.WriteString(":")
		_, _ = digest.WriteString(text)
	}
	return strconv.FormatUint(digest.Sum64(), 16)
}
