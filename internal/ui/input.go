package ui

import (
	"github.com/atomicstack/popup-launcher/internal/ui/state"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

// translateKey maps a terminal key message onto engine events. Terminals do
// not report modifier transitions, so control chords are replayed as a
// control press, the key, and a control release.
func (m *Model) translateKey(msg tea.KeyMsg) []state.Event {
	switch msg.Type {
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return nil
		}
		return []state.Event{state.Text(string(msg.Runes))}
	case tea.KeySpace:
		return []state.Event{state.Text(" ")}
	}
	switch {
	case key.Matches(msg, m.keys.WordDelete):
		return state.Chord(state.KeyBackspace)
	case key.Matches(msg, m.keys.Delete):
		return state.Tap(state.KeyBackspace)
	case key.Matches(msg, m.keys.Clear):
		return state.Chord(state.KeyK)
	case key.Matches(msg, m.keys.Prev):
		return state.Chord(state.KeyP)
	case key.Matches(msg, m.keys.Next):
		return state.Chord(state.KeyN)
	case key.Matches(msg, m.keys.Up):
		return state.Tap(state.KeyUp)
	case key.Matches(msg, m.keys.Down):
		return state.Tap(state.KeyDown)
	case key.Matches(msg, m.keys.PageUp):
		return state.Tap(state.KeyPageUp)
	case key.Matches(msg, m.keys.PageDown):
		return state.Tap(state.KeyPageDown)
	case key.Matches(msg, m.keys.Home):
		return state.Tap(state.KeyHome)
	case key.Matches(msg, m.keys.End):
		return state.Tap(state.KeyEnd)
	case key.Matches(msg, m.keys.Launch):
		return state.Tap(state.KeyReturn)
	}
	return nil
}

func (m *Model) filterPrompt() string {
	if styles.Cursor != nil {
		m.filterCursor.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		m.filterCursor.TextStyle = styles.Filter.Copy()
	} else {
		m.filterCursor.TextStyle = lipgloss.Style{}
	}
	prompt := "» "
	if styles.FilterPrompt != nil {
		prompt = styles.FilterPrompt.Render(prompt)
	}
	text, showCursor := m.engine.Buffer().Display(m.placeholder)
	if !showCursor {
		if styles.FilterPlaceholder != nil {
			text = styles.FilterPlaceholder.Render(text)
		}
		return prompt + text
	}
	if styles.Filter != nil {
		text = styles.Filter.Render(text)
	}
	return prompt + text + m.renderFilterCursor(" ")
}

func (m *Model) renderFilterCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.filterCursor.SetChar(char)

	base := m.filterCursor.TextStyle.Copy()
	base = base.Inline(true)

	if m.filterCursor.Blink {
		return base.Render(char)
	}

	if styles.Cursor != nil {
		cursorStyle := styles.Cursor.Copy().Inline(true)
		base = base.Inherit(cursorStyle).Blink(false)
		return base.Render(char)
	}

	return base.Reverse(true).Render(char)
}
