package state

import "github.com/atomicstack/popup-launcher/internal/logging/events"

// MoveUp moves the highlight one row up, stopping at the first match.
func (s *Selection) MoveUp() bool {
	return s.moveBy(-1)
}

// MoveDown moves the highlight one row down, stopping at the last match.
func (s *Selection) MoveDown() bool {
	return s.moveBy(1)
}

// MovePageUp moves the highlight up by the given page size.
func (s *Selection) MovePageUp(size int) bool {
	return s.moveBy(-pageSize(size))
}

// MovePageDown moves the highlight down by the given page size.
func (s *Selection) MovePageDown(size int) bool {
	return s.moveBy(pageSize(size))
}

// MoveHome moves the highlight to the first match.
func (s *Selection) MoveHome() bool {
	return s.moveTo(0)
}

// MoveEnd moves the highlight to the last match.
func (s *Selection) MoveEnd() bool {
	return s.moveTo(len(s.matches) - 1)
}

func (s *Selection) moveBy(delta int) bool {
	return s.moveTo(s.pos + delta)
}

func (s *Selection) moveTo(target int) bool {
	if len(s.matches) == 0 {
		s.pos = 0
		return false
	}
	if target < 0 {
		target = 0
	}
	if target >= len(s.matches) {
		target = len(s.matches) - 1
	}
	if target == s.pos {
		return false
	}
	s.pos = target
	events.Selection.Cursor(s.pos)
	return true
}
