package ui

import (
	"github.com/atomicstack/popup-launcher/internal/logging/events"
	"github.com/atomicstack/popup-launcher/internal/ui/command"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if key.Matches(keyMsg, m.keys.Quit) {
		events.App.Exit("quit")
		return tea.Quit
	}
	if m.launching {
		return nil
	}
	if keyMsg.Type != tea.KeyRunes && key.Matches(keyMsg, m.keys.Copy) {
		return m.copySelected()
	}
	evs := m.translateKey(keyMsg)
	if len(evs) == 0 {
		return nil
	}
	res := m.engine.HandleAll(evs...)
	if res.Edited {
		m.filterCursorDirty = true
		m.errMsg = ""
		m.forceClearInfo()
	}
	if res.Activated {
		return m.activate(res.Index)
	}
	return nil
}

func (m *Model) activate(index int) tea.Cmd {
	entry, ok := m.catalog.Entry(index)
	if !ok {
		return nil
	}
	m.launching = true
	m.errMsg = ""
	m.forceClearInfo()
	return m.bus.Launch(command.LaunchRequest{Label: entry.Label, CommandLine: entry.CommandLine})
}

func (m *Model) copySelected() tea.Cmd {
	idx, ok := m.engine.Selection().Current()
	if !ok {
		return nil
	}
	entry, ok := m.catalog.Entry(idx)
	if !ok {
		return nil
	}
	return m.bus.Copy(entry.Label, entry.CommandLine)
}
