package app

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atomicstack/popup-launcher/internal/desktop"
	"github.com/atomicstack/popup-launcher/internal/format/table"
	"github.com/atomicstack/popup-launcher/internal/launch"
	"github.com/atomicstack/popup-launcher/internal/logging/events"
	"github.com/atomicstack/popup-launcher/internal/ui"
	"github.com/atomicstack/popup-launcher/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	Title       string
	Placeholder string
	PageSize    int
	Match       state.MatchMode
	Dirs        []string
	Width       int
	Height      int
	ShowFooter  bool
	List        bool
	DryRun      bool
}

var (
	resolveSourcesFn = desktop.ResolveSources
	buildCatalogFn   = desktop.Build
	runProgramFn     = runProgram
	execFn           = launch.Exec
)

var stdout io.Writer = os.Stdout

// Run builds the catalog, shows the launcher and, once the program has
// exited, replaces the process with the chosen command.
func Run(cfg Config) error {
	sources, err := resolveSourcesFn(cfg.Dirs)
	if err != nil {
		return fmt.Errorf("resolve application directories: %w", err)
	}
	catalog := buildCatalogFn(sources)
	if cfg.List {
		return ListCatalog(stdout, catalog)
	}

	model := ui.NewModel(catalog, ui.Options{
		Title:       cfg.Title,
		Placeholder: cfg.Placeholder,
		PageSize:    cfg.PageSize,
		Match:       cfg.Match,
		Width:       cfg.Width,
		Height:      cfg.Height,
		ShowFooter:  cfg.ShowFooter,
	})
	if err := runProgramFn(model); err != nil {
		return err
	}
	cmd, ok := model.Pending()
	if !ok {
		return nil
	}
	if cfg.DryRun {
		events.App.Exit("dry-run")
		return launch.DryRun(stdout, cmd)
	}
	events.App.Exit("exec")
	return execFn(cmd)
}

func runProgram(model *ui.Model) error {
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// ListCatalog prints every entry's label and command line as aligned columns.
func ListCatalog(w io.Writer, catalog *desktop.Catalog) error {
	entries := catalog.Entries()
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{e.Label, e.CommandLine})
	}
	return table.Write(w, rows, []table.Alignment{table.AlignLeft, table.AlignLeft})
}
