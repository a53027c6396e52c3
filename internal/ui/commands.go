package ui

import (
	"fmt"

	"github.com/atomicstack/popup-launcher/internal/logging"
	"github.com/atomicstack/popup-launcher/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleLaunchResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(command.LaunchResult)
	if !ok {
		return nil
	}
	m.launching = false
	if result.Err != nil {
		m.errMsg = fmt.Sprintf("%s: %v", result.Label, result.Err)
		m.forceClearInfo()
		logging.Error(fmt.Errorf("launch %s: %w", result.Label, result.Err))
		return nil
	}
	cmd := result.Command
	m.pending = &cmd
	return tea.Quit
}

func (m *Model) handleCopyResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(command.CopyResult)
	if !ok {
		return nil
	}
	if result.Err != nil {
		m.errMsg = fmt.Sprintf("copy failed: %v", result.Err)
		logging.Error(result.Err)
		return nil
	}
	m.setInfo(fmt.Sprintf("Copied command for %s", result.Label))
	return nil
}
