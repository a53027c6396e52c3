package state

import (
	"fmt"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"golang.org/x/text/cases"
)

// MatchMode selects how a filter is compared against labels.
type MatchMode string

const (
	MatchSubstring MatchMode = "substring"
	MatchFold      MatchMode = "fold"
	MatchFuzzy     MatchMode = "fuzzy"
)

// MatchModes lists the accepted modes, default first.
var MatchModes = []MatchMode{MatchSubstring, MatchFold, MatchFuzzy}

// Matcher reports whether label satisfies query.
type Matcher func(label, query string) bool

// SubstringMatch is a case-sensitive literal containment check.
func SubstringMatch(label, query string) bool {
	return strings.Contains(label, query)
}

// FoldMatch is containment after Unicode case folding.
func FoldMatch(label, query string) bool {
	fold := cases.Fold()
	return strings.Contains(fold.String(label), fold.String(query))
}

// FuzzyMatch accepts labels containing the query's runes in order, ignoring
// case.
func FuzzyMatch(label, query string) bool {
	return fuzzy.MatchFold(query, label)
}

// ParseMatchMode validates a configured mode. Empty selects substring.
func ParseMatchMode(s string) (MatchMode, error) {
	mode := MatchMode(strings.ToLower(strings.TrimSpace(s)))
	if mode == "" {
		return MatchSubstring, nil
	}
	for _, m := range MatchModes {
		if m == mode {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown match mode %q", s)
}

// Matcher returns the comparison function for the mode.
func (m MatchMode) Matcher() Matcher {
	switch m {
	case MatchFold:
		return FoldMatch
	case MatchFuzzy:
		return FuzzyMatch
	default:
		return SubstringMatch
	}
}
