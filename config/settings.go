// Package config provides configuration structures for the autocomplete engine.
// It defines search behavior settings: secondary fields, ordering flags,
// visibility limits and selection policy.
package config

import (
	"strings"
)

// SearchSettings contains all configuration options for one search session.
//
// IMPORTANT: SecondaryFields order matters! When a query is recomputed the
// primary text is matched first, then each secondary field in the order listed
// here. A secondary outcome replaces the current best only on a strictly
// higher score, so the listing order decides which field wins a tie between
// two secondary fields.
type SearchSettings struct {
	SecondaryFields []string `json:"secondary_fields"` // Additional fields to match the query against, in priority order (e.g., ["subtitle", "keywords"])

	MaxItemsToShow int `json:"max_items_to_show"` // Upper bound on the visible list; 0 means unlimited

	PrioritizeShorterValues       bool `json:"prioritize_shorter_values"`        // Sort by primary text length ascending before score
	PrioritizePrimaryFieldMatches bool `json:"prioritize_primary_field_matches"` // Sort primary-text matches above secondary-field matches, before score

	SelectFirstMatch bool `json:"select_first_match"` // Reset selection to the first visible item on every query or item-set change; otherwise no selection
	EmitOnClear      bool `json:"emit_on_clear"`      // Emit an empty selection event when the input is cleared

	MatchCacheSize int `json:"match_cache_size"` // Capacity of the (query, text) match-outcome cache; 0 disables caching
}

// Validate checks the settings for conflicts and returns the list of problems
// found. An empty slice means the settings are usable.
func (settings *SearchSettings) Validate() []string {
	var conflicts []string

	conflicts = append(conflicts, checkDuplicates("secondary_fields", settings.SecondaryFields)...)

	for _, field := range settings.SecondaryFields {
		if strings.TrimSpace(field) == "" {
			conflicts = append(conflicts, "Secondary field name cannot be empty or whitespace-only")
		}
	}

	if settings.MaxItemsToShow < 0 {
		conflicts = append(conflicts, "max_items_to_show cannot be negative")
	}
	if settings.MatchCacheSize < 0 {
		conflicts = append(conflicts, "match_cache_size cannot be negative")
	}

	return conflicts
}

// checkDuplicates checks for duplicate values in a slice and returns error messages
func checkDuplicates(fieldName string, fields []string) []string {
	var errors []string
	seen := make(map[string]bool)

	for _, field := range fields {
		if seen[field] {
			errors = append(errors, "Duplicate field '"+field+"' found in "+fieldName)
		}
		seen[field] = true
	}

	return errors
}

// ApplyDefaults applies default values to the search settings
func (settings *SearchSettings) ApplyDefaults() {
	// Initialize empty slices if nil to prevent nil pointer issues
	if settings.SecondaryFields == nil {
		settings.SecondaryFields = []string{}
	}

	// A negative cap makes no sense; treat it as "unlimited"
	if settings.MaxItemsToShow < 0 {
		settings.MaxItemsToShow = 0
	}
	if settings.MatchCacheSize < 0 {
		settings.MatchCacheSize = 0
	}
}
