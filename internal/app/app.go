package app

import (
	"errors"
	"fmt"
	"log/slog"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/emtprep/emtdrill/internal/engine"
	"github.com/emtprep/emtdrill/internal/logging"
	"github.com/emtprep/emtdrill/internal/router"
	"github.com/emtprep/emtdrill/internal/screen"
	"github.com/emtprep/emtdrill/internal/screens/exam"
	"github.com/emtprep/emtdrill/internal/screens/flashcards"
	"github.com/emtprep/emtdrill/internal/screens/gcstrainer"
	"github.com/emtprep/emtdrill/internal/screens/home"
	"github.com/emtprep/emtdrill/internal/screens/welcome"
	"github.com/emtprep/emtdrill/internal/ui/layout"
)

// Options configures the TUI.
type Options struct {
	Shell          *engine.Shell
	SwipeThreshold int
	Logger         *slog.Logger

	// Splash shows the welcome animation before the home menu.
	Splash bool

	// Initial is the outcome of a session started before the program ran,
	// for example by `emtdrill test regulations`. Its tasks are scheduled
	// on Init and the matching session screen is opened over the menu.
	Initial engine.Outcome
}

type keyMap struct {
	Quit key.Binding
	Back key.Binding
}

var keys = keyMap{
	Quit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("Ctrl+C", "Quit")),
	Back: key.NewBinding(key.WithKeys("esc"), key.WithHelp("Esc", "Menu")),
}

var menuHints = []layout.KeyHint{
	{Key: "↑↓", Description: "Navigate"},
	{Key: "Enter", Description: "Select"},
}

// AppModel is the root Bubble Tea model. It owns the engine shell and is the
// only place scheduled engine events are dispatched.
type AppModel struct {
	router *router.Router
	shell  *engine.Shell
	logger *slog.Logger
	init   []tea.Cmd
	width  int
	height int
}

func newAppModel(opts Options) AppModel {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	shell := opts.Shell
	homeScreen := home.New(shell, opts.SwipeThreshold)

	var root screen.Screen = homeScreen
	if opts.Splash && shell.Mode() == engine.ModeMenu {
		root = welcome.New(func() screen.Screen { return homeScreen })
	}

	m := AppModel{
		router: router.New(root),
		shell:  shell,
		logger: logger,
	}
	m.init = append(m.init, root.Init())

	var session screen.Screen
	switch shell.Mode() {
	case engine.ModeLearning:
		session = flashcards.New(shell, opts.SwipeThreshold)
	case engine.ModeTest:
		session = exam.New(shell)
	case engine.ModeGCS:
		session = gcstrainer.New(shell)
	}
	if session != nil {
		m.init = append(m.init, m.router.Push(session))
	}
	m.init = append(m.init, screen.Schedule(opts.Initial.Tasks))
	return m
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(m.init...)
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Back) && m.router.Depth() > 1:
			return m, m.returnToMenu()
		}

	case screen.EventMsg:
		return m, m.dispatchEvent(msg.Event)
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// returnToMenu abandons the running session. The new session token makes any
// timer still in flight stale.
func (m AppModel) returnToMenu() tea.Cmd {
	if _, err := m.shell.Dispatch(engine.ReturnToMenu{}); err != nil {
		m.logger.Error("return to menu failed", "err", err)
	}
	return func() tea.Msg { return router.PopToRootMsg{} }
}

func (m AppModel) dispatchEvent(ev engine.Command) tea.Cmd {
	out, err := m.shell.Dispatch(ev)
	if err != nil {
		m.logger.Warn("scheduled event rejected", "event", fmt.Sprintf("%T", ev), "err", err)
		return nil
	}
	cmd := m.router.Update(screen.OutcomeMsg{Event: ev, Outcome: out})
	return tea.Batch(screen.Schedule(out.Tasks), cmd)
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	return v
}

func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title, status := "", ""
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
	}

	header := layout.RenderHeader(title, status, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)

	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	var hints []layout.KeyHint
	switch p, ok := active.(screen.KeyHintProvider); {
	case ok:
		hints = append(hints, p.KeyHints()...)
	case m.router.Depth() > 1:
		hints = append(hints, layout.HintsFrom(keys.Back)...)
	default:
		hints = append(hints, menuHints...)
	}
	return append(hints, layout.HintsFrom(keys.Quit)...)
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	if opts.Shell == nil {
		return errors.New("app: shell is required")
	}
	m := newAppModel(opts)
	m.logger.Info("tui started", "mode", opts.Shell.Mode().String())

	if _, err := tea.NewProgram(m).Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
