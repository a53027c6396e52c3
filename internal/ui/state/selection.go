package state

import "github.com/atomicstack/popup-launcher/internal/logging/events"

// Labels is the read-only view of the catalog a Selection filters.
type Labels interface {
	Len() int
	Label(i int) string
}

// Selection tracks which catalog positions match the current filter and
// which of them is highlighted. matches is always in catalog order and pos
// is always a valid index into it unless it is empty.
type Selection struct {
	labels  Labels
	match   Matcher
	filter  *string
	matches []int
	pos     int
}

// NewSelection starts unfiltered. A nil matcher means SubstringMatch.
func NewSelection(labels Labels, match Matcher) *Selection {
	if match == nil {
		match = SubstringMatch
	}
	s := &Selection{labels: labels, match: match}
	s.matches = s.all()
	return s
}

// SetFilter applies q, or clears filtering when q is nil, and reports whether
// the match list was recomputed. Re-applying the current value keeps the
// highlighted position.
func (s *Selection) SetFilter(q *string) bool {
	if q == nil {
		if s.filter == nil {
			return false
		}
		s.filter = nil
		s.matches = s.all()
		s.pos = 0
		events.Filter.Recompute("", false, len(s.matches))
		return true
	}
	if s.filter != nil && *s.filter == *q {
		return false
	}
	value := *q
	s.filter = &value
	s.matches = s.matching(value)
	s.pos = 0
	events.Filter.Recompute(value, true, len(s.matches))
	return true
}

// Filter returns the active filter and whether one is set.
func (s *Selection) Filter() (string, bool) {
	if s.filter == nil {
		return "", false
	}
	return *s.filter, true
}

// Matches returns the matching catalog positions. Callers must not modify
// the slice.
func (s *Selection) Matches() []int {
	return s.matches
}

// Len returns the number of matches.
func (s *Selection) Len() int {
	return len(s.matches)
}

// Pos returns the highlighted offset into Matches.
func (s *Selection) Pos() int {
	return s.pos
}

// Current returns the highlighted catalog position.
func (s *Selection) Current() (int, bool) {
	if len(s.matches) == 0 {
		return 0, false
	}
	return s.matches[s.pos], true
}

// Activate returns the catalog position to launch. The second result is
// false when nothing matches.
func (s *Selection) Activate() (int, bool) {
	return s.Current()
}

// Window returns the visible page of matches and the highlighted row in it.
func (s *Selection) Window(size int) ([]int, int) {
	return VisibleWindow(s.matches, s.pos, size)
}

// Total returns the catalog size.
func (s *Selection) Total() int {
	if s.labels == nil {
		return 0
	}
	return s.labels.Len()
}

func (s *Selection) all() []int {
	n := s.Total()
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}

func (s *Selection) matching(query string) []int {
	n := s.Total()
	idx := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if s.match(s.labels.Label(i), query) {
			idx = append(idx, i)
		}
	}
	return idx
}
