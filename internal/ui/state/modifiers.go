package state

// Modifiers is the modifier state shared by every consumer of an event.
type Modifiers struct {
	Ctrl bool
}

// Observe updates the state from ev and reports whether ev was a modifier
// event.
func (m *Modifiers) Observe(ev Event) bool {
	if !ev.Key.IsCtrl() {
		return false
	}
	switch ev.Kind {
	case EventPress:
		m.Ctrl = true
	case EventRelease:
		m.Ctrl = false
	default:
		return false
	}
	return true
}
