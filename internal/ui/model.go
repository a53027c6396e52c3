package ui

import (
	"reflect"
	"strings"
	"time"

	"github.com/atomicstack/popup-launcher/internal/desktop"
	"github.com/atomicstack/popup-launcher/internal/launch"
	"github.com/atomicstack/popup-launcher/internal/theme"
	"github.com/atomicstack/popup-launcher/internal/ui/command"
	"github.com/atomicstack/popup-launcher/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultTitle       = "Applications"
	defaultPlaceholder = "Search"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a Model.
type Options struct {
	Title       string
	Placeholder string
	PageSize    int
	Match       state.MatchMode
	Width       int
	Height      int
	ShowFooter  bool
}

// Model implements the Bubble Tea model for the launcher.
type Model struct {
	catalog     *desktop.Catalog
	engine      *state.Engine
	keys        KeyMap
	help        help.Model
	bus         *command.Bus
	title       string
	placeholder string

	errMsg      string
	infoMsg     string
	infoExpire  time.Time
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool

	launching bool
	pending   *launch.Command

	filterCursor      cursor.Model
	filterCursorDirty bool

	handlers map[reflect.Type]msgHandler
}

// NewModel builds the launcher UI over catalog.
func NewModel(catalog *desktop.Catalog, opts Options) *Model {
	if catalog == nil {
		catalog = desktop.NewCatalog()
	}
	sel := state.NewSelection(catalog, opts.Match.Matcher())
	m := &Model{
		catalog:     catalog,
		engine:      state.NewEngine(sel, opts.PageSize),
		keys:        DefaultKeyMap(),
		help:        help.New(),
		bus:         command.New(),
		title:       strings.TrimSpace(opts.Title),
		placeholder: opts.Placeholder,
		showFooter:  opts.ShowFooter,
	}
	if m.title == "" {
		m.title = defaultTitle
	}
	if m.placeholder == "" {
		m.placeholder = defaultPlaceholder
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
		m.help.Width = opts.Width
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	if styles.Footer != nil && styles.FooterKey != nil {
		m.help.Styles.ShortKey = styles.FooterKey.Copy()
		m.help.Styles.ShortDesc = styles.Footer.Copy()
		m.help.Styles.FullKey = styles.FooterKey.Copy()
		m.help.Styles.FullDesc = styles.Footer.Copy()
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		c.TextStyle = styles.Filter.Copy()
	}
	c.SetChar(" ")
	m.filterCursor = c
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return m.filterCursor.Focus()
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 2)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

// Pending returns the command resolved for the activated entry, if any. It
// is set just before the program quits.
func (m *Model) Pending() (launch.Command, bool) {
	if m.pending == nil {
		return launch.Command{}, false
	}
	return *m.pending, true
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):           m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}):    m.handleWindowSizeMsg,
		reflect.TypeOf(command.LaunchResult{}): m.handleLaunchResultMsg,
		reflect.TypeOf(command.CopyResult{}):   m.handleCopyResultMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}
