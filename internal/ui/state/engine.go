package state

import "github.com/atomicstack/popup-launcher/internal/logging/events"

// Result summarizes what one event did.
type Result struct {
	Edited    bool
	Moved     bool
	Activated bool
	Index     int
	Empty     bool
}

// Engine routes input events through the modifier state, the search buffer,
// the filter and navigation, always in that order, so the filter seen by
// navigation already reflects the edit made by the same event.
type Engine struct {
	mods      Modifiers
	buffer    Buffer
	selection *Selection
	pageSize  int
}

// NewEngine wraps sel. Page movement uses pageSize, or DefaultPageSize when
// it is not positive.
func NewEngine(sel *Selection, pageSize int) *Engine {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Engine{selection: sel, pageSize: pageSize}
}

// Handle applies one event.
func (e *Engine) Handle(ev Event) Result {
	var res Result
	if e.mods.Observe(ev) {
		return res
	}
	if e.buffer.Handle(ev, e.mods) {
		res.Edited = true
	}
	e.syncFilter()
	if ev.Kind != EventPress {
		return res
	}
	switch ev.Key {
	case KeyUp:
		res.Moved = e.selection.MoveUp()
	case KeyDown:
		res.Moved = e.selection.MoveDown()
	case KeyP:
		if e.mods.Ctrl {
			res.Moved = e.selection.MoveUp()
		}
	case KeyN:
		if e.mods.Ctrl {
			res.Moved = e.selection.MoveDown()
		}
	case KeyPageUp:
		res.Moved = e.selection.MovePageUp(e.pageSize)
	case KeyPageDown:
		res.Moved = e.selection.MovePageDown(e.pageSize)
	case KeyHome:
		res.Moved = e.selection.MoveHome()
	case KeyEnd:
		res.Moved = e.selection.MoveEnd()
	case KeyReturn:
		idx, ok := e.selection.Activate()
		if !ok {
			res.Empty = true
			filter, _ := e.selection.Filter()
			events.Selection.Empty(filter)
			break
		}
		res.Activated = true
		res.Index = idx
	}
	return res
}

// HandleAll applies events in order and merges their results. Activation
// stops processing.
func (e *Engine) HandleAll(evs ...Event) Result {
	var merged Result
	for _, ev := range evs {
		res := e.Handle(ev)
		merged.Edited = merged.Edited || res.Edited
		merged.Moved = merged.Moved || res.Moved
		merged.Empty = merged.Empty || res.Empty
		if res.Activated {
			merged.Activated = true
			merged.Index = res.Index
			return merged
		}
	}
	return merged
}

func (e *Engine) syncFilter() {
	if len(e.buffer.text) == 0 {
		e.selection.SetFilter(nil)
		return
	}
	text := e.buffer.Text()
	e.selection.SetFilter(&text)
}

// Buffer exposes the search buffer for rendering.
func (e *Engine) Buffer() *Buffer { return &e.buffer }

// Selection exposes the filtered selection for rendering.
func (e *Engine) Selection() *Selection { return e.selection }

// Modifiers returns the current modifier state.
func (e *Engine) Modifiers() Modifiers { return e.mods }

// PageSize returns the number of rows per page.
func (e *Engine) PageSize() int { return e.pageSize }
