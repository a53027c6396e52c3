package ui

import (
	"errors"
	"testing"

	"github.com/atomicstack/popup-launcher/internal/desktop"
	"github.com/atomicstack/popup-launcher/internal/launch"
	"github.com/atomicstack/popup-launcher/internal/ui/command"
	"github.com/atomicstack/popup-launcher/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

func scenarioCatalog() *desktop.Catalog {
	return desktop.NewCatalog(
		desktop.Entry{Label: "Firefox", CommandLine: "firefox"},
		desktop.Entry{Label: "Files", CommandLine: "nautilus"},
		desktop.Entry{Label: "Terminal", CommandLine: "xterm"},
	)
}

func fakePrepare(t *testing.T, seen *[]string) func(string) (launch.Command, error) {
	t.Helper()
	return func(line string) (launch.Command, error) {
		*seen = append(*seen, line)
		cmd, err := launch.Split(line)
		if err != nil {
			return launch.Command{}, err
		}
		cmd.Path = "/usr/bin/" + cmd.Program
		return cmd, nil
	}
}

func newTestHarness(t *testing.T, opts Options) (*Harness, *[]string) {
	t.Helper()
	m := NewModel(scenarioCatalog(), opts)
	var seen []string
	m.bus = command.NewWith(fakePrepare(t, &seen), func(string) error { return nil })
	return NewHarness(m), &seen
}

func TestScenarioTypeMoveLaunch(t *testing.T) {
	h, seen := newTestHarness(t, Options{Match: state.MatchFold})
	h.Type("fi")

	sel := h.Model().engine.Selection()
	if sel.Len() != 2 || sel.Pos() != 0 {
		t.Fatalf("expected two matches at pos 0, got %d/%d", sel.Len(), sel.Pos())
	}
	h.Press(tea.KeyDown, tea.KeyEnter)

	if len(*seen) != 1 || (*seen)[0] != "nautilus" {
		t.Fatalf("expected nautilus to be prepared, got %v", *seen)
	}
	if !h.Quit() {
		t.Fatalf("expected program to quit after launch")
	}
	cmd, ok := h.Model().Pending()
	if !ok || cmd.Path != "/usr/bin/nautilus" {
		t.Fatalf("expected pending nautilus command, got %+v/%v", cmd, ok)
	}
}

func TestCtrlNAndCtrlPMoveSelection(t *testing.T) {
	h, _ := newTestHarness(t, Options{})
	h.Press(tea.KeyCtrlN, tea.KeyCtrlN, tea.KeyCtrlN)
	if pos := h.Model().engine.Selection().Pos(); pos != 2 {
		t.Fatalf("expected clamp at 2, got %d", pos)
	}
	h.Press(tea.KeyCtrlP)
	if pos := h.Model().engine.Selection().Pos(); pos != 1 {
		t.Fatalf("expected pos 1, got %d", pos)
	}
	if h.Model().engine.Modifiers().Ctrl {
		t.Fatalf("expected ctrl released after chord")
	}
}

func TestLaunchFailureKeepsListOpen(t *testing.T) {
	m := NewModel(scenarioCatalog(), Options{})
	m.bus = command.NewWith(func(string) (launch.Command, error) {
		return launch.Command{}, errors.New("not found")
	}, nil)
	h := NewHarness(m)
	h.Press(tea.KeyEnter)
	if h.Quit() {
		t.Fatalf("expected program to keep running")
	}
	if _, ok := h.Model().Pending(); ok {
		t.Fatalf("expected no pending command")
	}
	if h.Model().errMsg == "" {
		t.Fatalf("expected error message to be shown")
	}
	h.Type("T")
	if h.Model().errMsg != "" {
		t.Fatalf("expected typing to clear the error, got %q", h.Model().errMsg)
	}
}

func TestEnterWithNoMatchesDoesNothing(t *testing.T) {
	h, seen := newTestHarness(t, Options{})
	h.Type("zzz")
	h.Press(tea.KeyEnter)
	if len(*seen) != 0 || h.Quit() {
		t.Fatalf("expected no launch, got %v quit=%v", *seen, h.Quit())
	}
}

func TestEscapeQuitsWithoutLaunch(t *testing.T) {
	h, seen := newTestHarness(t, Options{})
	h.Press(tea.KeyEsc)
	if !h.Quit() {
		t.Fatalf("expected quit on escape")
	}
	if _, ok := h.Model().Pending(); ok || len(*seen) != 0 {
		t.Fatalf("expected nothing launched")
	}
}

func TestCopySelectedCommand(t *testing.T) {
	m := NewModel(scenarioCatalog(), Options{})
	var copied string
	m.bus = command.NewWith(launch.Prepare, func(text string) error {
		copied = text
		return nil
	})
	h := NewHarness(m)
	h.Press(tea.KeyDown, tea.KeyCtrlY)
	if copied != "nautilus" {
		t.Fatalf("expected nautilus copied, got %q", copied)
	}
	if info := h.Model().currentInfo(); info == "" {
		t.Fatalf("expected confirmation message")
	}
}

func TestWindowSizeRespectsFixedDimensions(t *testing.T) {
	m := NewModel(scenarioCatalog(), Options{Width: 40})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.width != 40 || m.height != 30 {
		t.Fatalf("expected width fixed at 40 and height 30, got %dx%d", m.width, m.height)
	}
}
