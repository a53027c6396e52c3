package state

import (
	"strings"
	"unicode"

	"github.com/atomicstack/popup-launcher/internal/logging/events"
)

// Buffer holds the search text. Dirty is set by the first edit and cleared
// again whenever an edit leaves the buffer empty.
type Buffer struct {
	text  []rune
	dirty bool
}

// Text returns the current contents.
func (b *Buffer) Text() string {
	return string(b.text)
}

// Dirty reports whether the user has typed since the buffer was last empty.
func (b *Buffer) Dirty() bool {
	return b.dirty
}

// Display returns what the prompt should show and whether a cursor belongs
// after it.
func (b *Buffer) Display(placeholder string) (string, bool) {
	if !b.dirty {
		return placeholder, false
	}
	return string(b.text), true
}

// Handle applies ev given the current modifier state and reports whether the
// contents changed.
func (b *Buffer) Handle(ev Event, mods Modifiers) bool {
	switch ev.Kind {
	case EventText:
		if mods.Ctrl {
			return false
		}
		return b.insert(ev.Text)
	case EventPress:
		switch ev.Key {
		case KeyBackspace:
			if mods.Ctrl {
				return b.deleteWordBackward()
			}
			return b.deleteRuneBackward()
		case KeyK:
			if mods.Ctrl {
				return b.clear()
			}
		}
	}
	return false
}

func (b *Buffer) insert(text string) bool {
	text = strings.ToValidUTF8(text, "")
	insert := make([]rune, 0, len(text))
	for _, r := range text {
		if unicode.IsControl(r) {
			continue
		}
		insert = append(insert, r)
	}
	if len(insert) == 0 {
		return false
	}
	b.text = append(b.text, insert...)
	b.edited()
	events.Filter.Append(b.Text())
	return true
}

func (b *Buffer) deleteRuneBackward() bool {
	if len(b.text) == 0 {
		return false
	}
	b.text = b.text[:len(b.text)-1]
	b.edited()
	events.Filter.Backspace(b.Text())
	return true
}

// deleteWordBackward drops trailing whitespace and then the word before it,
// so "abc def" becomes "abc ".
func (b *Buffer) deleteWordBackward() bool {
	if len(b.text) == 0 {
		return false
	}
	i := len(b.text)
	for i > 0 && unicode.IsSpace(b.text[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(b.text[i-1]) {
		i--
	}
	b.text = b.text[:i]
	b.edited()
	events.Filter.WordBackspace(b.Text())
	return true
}

func (b *Buffer) clear() bool {
	changed := len(b.text) > 0
	b.text = b.text[:0]
	b.edited()
	events.Filter.Cleared()
	return changed
}

func (b *Buffer) edited() {
	b.dirty = len(b.text) > 0
}
