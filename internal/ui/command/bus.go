package command

import (
	"github.com/atotto/clipboard"
	"github.com/atomicstack/popup-launcher/internal/launch"
	"github.com/atomicstack/popup-launcher/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// LaunchRequest names the entry the user activated.
type LaunchRequest struct {
	Label       string
	CommandLine string
}

// LaunchResult reports whether the activated entry can be executed.
type LaunchResult struct {
	Label   string
	Command launch.Command
	Err     error
}

// CopyResult reports the outcome of a clipboard write.
type CopyResult struct {
	Label string
	Err   error
}

// Bus turns launcher actions into Bubble Tea commands. The commands only
// compute values and report back as messages.
type Bus struct {
	prepare func(string) (launch.Command, error)
	copy    func(string) error
}

// New initialises a command bus backed by PATH lookup and the system
// clipboard.
func New() *Bus {
	return NewWith(launch.Prepare, clipboard.WriteAll)
}

// NewWith builds a bus with substitute collaborators.
func NewWith(prepare func(string) (launch.Command, error), copy func(string) error) *Bus {
	return &Bus{prepare: prepare, copy: copy}
}

// Launch validates and resolves req's command line.
func (b *Bus) Launch(req LaunchRequest) tea.Cmd {
	events.Launch.Prepare(req.Label, req.CommandLine)
	return func() tea.Msg {
		cmd, err := b.prepare(req.CommandLine)
		if err != nil {
			events.Launch.Error(req.Label, err)
			return LaunchResult{Label: req.Label, Err: err}
		}
		return LaunchResult{Label: req.Label, Command: cmd}
	}
}

// Copy writes text to the clipboard.
func (b *Bus) Copy(label, text string) tea.Cmd {
	return func() tea.Msg {
		err := b.copy(text)
		if err == nil {
			events.Clipboard.Copy(label)
		}
		return CopyResult{Label: label, Err: err}
	}
}
