// Package fuzzy implements case-insensitive subsequence matching with
// position-aware scoring. Match is a pure function: it keeps no state between
// calls and always returns the same outcome for the same inputs.
package fuzzy

import (
	"strings"
	"unicode"
)

const (
	// ScoreNoMatch is the reserved sentinel for "query does not match".
	// It is strictly lower than any score a successful match can produce.
	ScoreNoMatch = -100

	// ScoreEmptyQuery is the neutral score given to every candidate when the
	// query is empty. It is the minimum non-sentinel score.
	ScoreEmptyQuery = ScoreNoMatch + 1

	// ScoreExactMatch is returned when the query equals the candidate text
	// (case-insensitively). It exceeds any score an inexact match can attain.
	ScoreExactMatch = 1 << 30
)

// Scoring weights. A matched rune always earns the base credit; the bonuses
// reward contiguous runs and token-boundary alignment. The leading-gap
// penalty is capped so a genuine match can never sink to the sentinel.
const (
	baseCredit           = 1
	contiguityBonus      = 16
	boundaryBonus        = 8
	leadingGapPenalty    = 3
	maxLeadingGapPenalty = 9
)

// MatchOutcome is the result of evaluating one query against one string.
// Positions are rune offsets into the evaluated string, strictly increasing,
// one per query rune in query order. They are suitable for per-character
// highlighting by a renderer.
type MatchOutcome struct {
	Score     int
	Positions []int
}

// Matched reports whether the outcome represents a successful match.
// The empty-query outcome counts as matched.
func (o MatchOutcome) Matched() bool {
	return o.Score > ScoreNoMatch
}

// NoMatch returns the sentinel outcome.
func NoMatch() MatchOutcome {
	return MatchOutcome{Score: ScoreNoMatch}
}

// Match evaluates query against text. Every query rune must appear in text in
// order (not necessarily adjacent) for the match to succeed; otherwise the
// sentinel outcome is returned.
//
// Scoring rewards earlier first matches, adjacent matched runes and matches
// aligned to token boundaries (start of string or after a non-alphanumeric
// rune). Case-insensitive equality scores ScoreExactMatch, the maximum.
func Match(query, text string) MatchOutcome {
	if query == "" {
		return MatchOutcome{Score: ScoreEmptyQuery}
	}

	if strings.EqualFold(query, text) {
		n := len([]rune(text))
		positions := make([]int, n)
		for i := range positions {
			positions[i] = i
		}
		return MatchOutcome{Score: ScoreExactMatch, Positions: positions}
	}

	queryRunes := lowerRunes(query)
	textRunes := lowerRunes(text)
	if len(queryRunes) > len(textRunes) {
		return NoMatch()
	}

	// Greedy leftmost scan: each query rune takes the earliest remaining
	// occurrence. Deterministic by construction.
	positions := make([]int, 0, len(queryRunes))
	start := 0
	for _, qr := range queryRunes {
		found := -1
		for i := start; i < len(textRunes); i++ {
			if textRunes[i] == qr {
				found = i
				break
			}
		}
		if found == -1 {
			return NoMatch()
		}
		positions = append(positions, found)
		start = found + 1
	}

	score := 0
	for i, pos := range positions {
		score += baseCredit
		if i > 0 && pos == positions[i-1]+1 {
			score += contiguityBonus
		}
		if pos == 0 || !isAlphaNum(textRunes[pos-1]) {
			score += boundaryBonus
		}
	}

	penalty := positions[0] * leadingGapPenalty
	if penalty > maxLeadingGapPenalty {
		penalty = maxLeadingGapPenalty
	}
	score -= penalty

	return MatchOutcome{Score: clampInexact(score), Positions: positions}
}

// clampInexact keeps inexact scores strictly below ScoreExactMatch, so exact
// equality is the maximum by construction rather than by margin. The per-rune
// credit tops out at 25, so only texts tens of millions of runes long can
// reach the clamp.
func clampInexact(score int) int {
	if score >= ScoreExactMatch {
		return ScoreExactMatch - 1
	}
	return score
}

func lowerRunes(s string) []rune {
	runes := []rune(s)
	for i, r := range runes {
		runes[i] = unicode.ToLower(r)
	}
	return runes
}

func isAlphaNum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
