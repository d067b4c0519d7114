package picker

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/emtprep/emtdrill/internal/content"
	"github.com/emtprep/emtdrill/internal/engine"
	"github.com/emtprep/emtdrill/internal/quiz"
	"github.com/emtprep/emtdrill/internal/router"
	"github.com/emtprep/emtdrill/internal/screen"
	"github.com/emtprep/emtdrill/internal/screens/exam"
	"github.com/emtprep/emtdrill/internal/screens/flashcards"
	"github.com/emtprep/emtdrill/internal/screens/message"
	"github.com/emtprep/emtdrill/internal/ui/components"
	"github.com/emtprep/emtdrill/internal/ui/layout"
	"github.com/emtprep/emtdrill/internal/ui/theme"
)

// PickerScreen lists the categories for learning or test mode.
type PickerScreen struct {
	shell          *engine.Shell
	mode           engine.Mode
	swipeThreshold int
	menu           components.Menu
}

var _ screen.Screen = (*PickerScreen)(nil)
var _ screen.KeyHintProvider = (*PickerScreen)(nil)

// New creates a picker that starts a session of mode (ModeLearning or
// ModeTest) on the chosen category.
func New(shell *engine.Shell, mode engine.Mode, swipeThreshold int) *PickerScreen {
	p := &PickerScreen{
		shell:          shell,
		mode:           mode,
		swipeThreshold: swipeThreshold,
	}

	store := shell.Store()
	cats := store.Categories()
	items := make([]components.MenuItem, 0, len(cats))
	for _, c := range cats {
		n := store.Count(c.Key)
		hint := fmt.Sprintf("%d cards", n)
		if mode == engine.ModeTest {
			hint = fmt.Sprintf("%d questions, %d per test", n, quiz.Length)
		}
		items = append(items, components.MenuItem{
			Label:  strings.ToUpper(c.Name),
			Hint:   hint,
			Action: p.start(c.Key),
		})
	}
	p.menu = components.NewMenu(items)
	return p
}

func (p *PickerScreen) start(category content.Category) func() tea.Cmd {
	return func() tea.Cmd {
		out, err := p.shell.Dispatch(engine.SelectCategory{Mode: p.mode, Category: category})
		if err != nil {
			notice := message.FromError(err)
			return func() tea.Msg { return router.PushScreenMsg{Screen: notice} }
		}

		var next screen.Screen
		if p.mode == engine.ModeLearning {
			next = flashcards.New(p.shell, p.swipeThreshold)
		} else {
			next = exam.New(p.shell)
		}
		return tea.Batch(
			func() tea.Msg { return router.PushScreenMsg{Screen: next} },
			screen.Schedule(out.Tasks),
		)
	}
}

func (p *PickerScreen) Init() tea.Cmd {
	return nil
}

func (p *PickerScreen) Title() string {
	if p.mode == engine.ModeTest {
		return "Test Mode"
	}
	return "Learning Mode"
}

func (p *PickerScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Start"},
		{Key: "Esc", Description: "Back"},
	}
}

func (p *PickerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	p.menu, cmd = p.menu.Update(msg)
	return p, cmd
}

func (p *PickerScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	heading := "Choose a category to study"
	if p.mode == engine.ModeTest {
		heading = fmt.Sprintf("Choose a category: %d timed questions", quiz.Length)
	}

	content := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Foreground(theme.Text).Bold(true).Render(heading) +
		"\n\n" + p.menu.View(cw)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
