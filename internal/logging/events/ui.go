package events

import "github.com/atomicstack/popup-launcher/internal/logging"

type FilterTracer struct{}

type SelectionTracer struct{}

type LaunchTracer struct{}

type ClipboardTracer struct{}

var (
	Filter    = FilterTracer{}
	Selection = SelectionTracer{}
	Launch    = LaunchTracer{}
	Clipboard = ClipboardTracer{}
)

func (FilterTracer) Append(text string) {
	logging.Trace("filter.append", map[string]interface{}{"filter": text})
}

func (FilterTracer) Backspace(text string) {
	logging.Trace("filter.backspace", map[string]interface{}{"filter": text})
}

func (FilterTracer) WordBackspace(text string) {
	logging.Trace("filter.word-backspace", map[string]interface{}{"filter": text})
}

func (FilterTracer) Cleared() {
	logging.Trace("filter.clear", nil)
}

func (FilterTracer) Recompute(filter string, active bool, matches int) {
	logging.Trace("filter.recompute", map[string]interface{}{
		"filter":  filter,
		"active":  active,
		"matches": matches,
	})
}

func (SelectionTracer) Cursor(pos int) {
	logging.Trace("selection.cursor", map[string]interface{}{"cursor": pos})
}

// Empty records an activation attempt with nothing to activate.
func (SelectionTracer) Empty(filter string) {
	logging.Trace("selection.empty", map[string]interface{}{"filter": filter})
}

func (LaunchTracer) Prepare(label, commandLine string) {
	logging.Trace("launch.prepare", map[string]interface{}{"label": label, "command": commandLine})
}

func (LaunchTracer) Error(label string, err error) {
	if err == nil {
		return
	}
	logging.Trace("launch.error", map[string]interface{}{"label": label, "error": err.Error()})
}

func (LaunchTracer) Exec(path string, argv []string) {
	logging.Trace("launch.exec", map[string]interface{}{"path": path, "argv": argv})
}

func (ClipboardTracer) Copy(label string) {
	logging.Trace("clipboard.copy", map[string]interface{}{"label": label})
}
