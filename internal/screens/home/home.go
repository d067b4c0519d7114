package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/emtprep/emtdrill/internal/engine"
	"github.com/emtprep/emtdrill/internal/router"
	"github.com/emtprep/emtdrill/internal/screen"
	"github.com/emtprep/emtdrill/internal/screens/gcstrainer"
	"github.com/emtprep/emtdrill/internal/screens/message"
	"github.com/emtprep/emtdrill/internal/screens/picker"
	"github.com/emtprep/emtdrill/internal/ui/components"
)

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 26

// HomeScreen is the main menu.
type HomeScreen struct {
	shell      *engine.Shell
	menu       components.Menu
	categories int
	questions  int
	scenarios  int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen. swipeThreshold is handed to the learning
// screens it opens.
func New(shell *engine.Shell, swipeThreshold int) *HomeScreen {
	h := &HomeScreen{shell: shell}

	store := shell.Store()
	for _, c := range store.Categories() {
		h.categories++
		h.questions += store.Count(c.Key)
	}
	h.scenarios = len(store.GCSQuestions())

	items := []components.MenuItem{
		{Label: "LEARNING MODE", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: picker.New(shell, engine.ModeLearning, swipeThreshold)}
			}
		}},
		{Label: "TEST MODE", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: picker.New(shell, engine.ModeTest, swipeThreshold)}
			}
		}},
		{Label: "GCS TRAINER", Disabled: h.scenarios == 0, Action: h.startGCS},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) startGCS() tea.Cmd {
	if _, err := h.shell.Dispatch(engine.StartGCS{}); err != nil {
		notice := message.FromError(err)
		return func() tea.Msg { return router.PushScreenMsg{Screen: notice} }
	}
	next := gcstrainer.New(h.shell)
	return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	compact := height < 24 || width < 90
	cw := components.ContentWidth(width)

	sections := []string{renderTitle(cw, compact)}
	if !compact {
		sections = append(sections, renderStarOfLife(cw))
	}
	sections = append(sections,
		renderStatsBar(h.categories, h.questions, h.scenarios, cw),
		h.menu.View(buttonWidth),
	)

	return components.Frame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
