package fuzzy

import (
	"reflect"
	"testing"
)

func TestMatch_EmptyQuery(t *testing.T) {
	for _, text := range []string{"", "Apple", "hello world", "ünïcode"} {
		outcome := Match("", text)
		if outcome.Score != ScoreEmptyQuery {
			t.Errorf("Match(%q, %q).Score = %d, expected ScoreEmptyQuery (%d)", "", text, outcome.Score, ScoreEmptyQuery)
		}
		if len(outcome.Positions) != 0 {
			t.Errorf("Match(%q, %q) returned positions %v, expected none", "", text, outcome.Positions)
		}
		if !outcome.Matched() {
			t.Errorf("Match(%q, %q) should count as matched", "", text)
		}
	}
}

func TestMatch_SubsequenceCorrectness(t *testing.T) {
	tests := []struct {
		query string
		text  string
		want  bool
	}{
		{"ap", "Apple", true},
		{"ap", "Grape", true},
		{"ap", "Banana", false}, // 'a' present but no 'p' after it
		{"abc", "a1b2c3", true},
		{"abc", "acb", false}, // out of order
		{"hello", "hello", true},
		{"hello", "hell", false}, // query longer than text
		{"x", "", false},
		{"HW", "hello world", true}, // case-insensitive
		{"a b", "alpha beta", true}, // spaces in the query match spaces in the text
		{"a b", "alphabeta", false},
	}

	for _, tt := range tests {
		outcome := Match(tt.query, tt.text)
		if outcome.Matched() != tt.want {
			t.Errorf("Match(%q, %q).Matched() = %v, expected %v", tt.query, tt.text, outcome.Matched(), tt.want)
		}
		if !tt.want {
			if outcome.Score != ScoreNoMatch {
				t.Errorf("Match(%q, %q).Score = %d, expected sentinel %d", tt.query, tt.text, outcome.Score, ScoreNoMatch)
			}
			if len(outcome.Positions) != 0 {
				t.Errorf("Match(%q, %q) returned positions %v for a non-match", tt.query, tt.text, outcome.Positions)
			}
		}
	}
}

func TestMatch_PositionsAreStrictlyIncreasingRuneOffsets(t *testing.T) {
	outcome := Match("ap", "Grape")
	want := []int{2, 3}
	if !reflect.DeepEqual(outcome.Positions, want) {
		t.Errorf("Match(\"ap\", \"Grape\").Positions = %v, expected %v", outcome.Positions, want)
	}

	outcome = Match("üc", "ünïcode")
	want = []int{0, 3}
	if !reflect.DeepEqual(outcome.Positions, want) {
		t.Errorf("Match(\"üc\", \"ünïcode\").Positions = %v (rune offsets), expected %v", outcome.Positions, want)
	}

	outcome = Match("hlo", "hello")
	for i := 1; i < len(outcome.Positions); i++ {
		if outcome.Positions[i] <= outcome.Positions[i-1] {
			t.Fatalf("positions not strictly increasing: %v", outcome.Positions)
		}
	}
	if len(outcome.Positions) != 3 {
		t.Errorf("expected one position per query rune, got %v", outcome.Positions)
	}
}

func TestMatch_ExactMatchIsMaximum(t *testing.T) {
	exact := Match("apple", "Apple")
	if exact.Score != ScoreExactMatch {
		t.Errorf("exact match score = %d, expected %d", exact.Score, ScoreExactMatch)
	}
	if !reflect.DeepEqual(exact.Positions, []int{0, 1, 2, 3, 4}) {
		t.Errorf("exact match positions = %v, expected all offsets", exact.Positions)
	}

	// No inexact query may reach the exact score.
	for _, query := range []string{"a", "ap", "app", "appl", "aple"} {
		outcome := Match(query, "Apple")
		if outcome.Matched() && outcome.Score >= ScoreExactMatch {
			t.Errorf("Match(%q, \"Apple\").Score = %d, must be below ScoreExactMatch", query, outcome.Score)
		}
	}
}

func TestInexactScoreIsClampedBelowExact(t *testing.T) {
	// Ordinary scores pass through untouched.
	if got := clampInexact(42); got != 42 {
		t.Errorf("clampInexact(42) = %d, expected 42", got)
	}

	// Accumulated bonuses over a pathologically long text must never reach
	// the exact-match score.
	for _, score := range []int{ScoreExactMatch, ScoreExactMatch + 12345} {
		if got := clampInexact(score); got != ScoreExactMatch-1 {
			t.Errorf("clampInexact(%d) = %d, expected %d", score, got, ScoreExactMatch-1)
		}
	}
}

func TestMatch_ScoringOrder(t *testing.T) {
	// Earlier start plus contiguity: "Apple" must outrank "Grape" for "ap".
	apple := Match("ap", "Apple")
	grape := Match("ap", "Grape")
	if !apple.Matched() || !grape.Matched() {
		t.Fatal("both Apple and Grape should match \"ap\"")
	}
	if apple.Score <= grape.Score {
		t.Errorf("expected Apple (%d) to outscore Grape (%d) for \"ap\"", apple.Score, grape.Score)
	}

	// Contiguous beats scattered.
	tight := Match("ab", "xabx")
	loose := Match("ab", "xaxbx")
	if tight.Score <= loose.Score {
		t.Errorf("expected contiguous match (%d) to outscore scattered match (%d)", tight.Score, loose.Score)
	}

	// Token boundary beats mid-token at the same offset distance.
	boundary := Match("b", "a bc")
	midToken := Match("b", "aabc")
	if boundary.Score <= midToken.Score {
		t.Errorf("expected boundary match (%d) to outscore mid-token match (%d)", boundary.Score, midToken.Score)
	}
}

func TestMatch_RealScoreAlwaysAboveEmptyQueryScore(t *testing.T) {
	// Worst realistic case: single rune deep inside a long token.
	outcome := Match("z", "aaaaaaaaaaaaaaaaaaaaz")
	if !outcome.Matched() {
		t.Fatal("expected match")
	}
	if outcome.Score <= ScoreEmptyQuery {
		t.Errorf("real match score %d must stay above ScoreEmptyQuery (%d)", outcome.Score, ScoreEmptyQuery)
	}
}

func TestMatch_Determinism(t *testing.T) {
	first := Match("apl", "Apple Pie")
	for i := 0; i < 100; i++ {
		again := Match("apl", "Apple Pie")
		if again.Score != first.Score || !reflect.DeepEqual(again.Positions, first.Positions) {
			t.Fatalf("run %d differed: got %+v, expected %+v", i, again, first)
		}
	}
}
