package flashcards

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/emtprep/emtdrill/internal/deck"
	"github.com/emtprep/emtdrill/internal/engine"
	"github.com/emtprep/emtdrill/internal/screen"
	"github.com/emtprep/emtdrill/internal/ui/components"
	"github.com/emtprep/emtdrill/internal/ui/layout"
	"github.com/emtprep/emtdrill/internal/ui/theme"
)

type keyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Reveal key.Binding
}

var keys = keyMap{
	Next: key.NewBinding(
		key.WithKeys("right", "l", "n"),
		key.WithHelp("→", "Next"),
	),
	Prev: key.NewBinding(
		key.WithKeys("left", "h", "p"),
		key.WithHelp("←", "Previous"),
	),
	Reveal: key.NewBinding(
		key.WithKeys("space", " "),
		key.WithHelp("Space", "Answer"),
	),
}

// FlashcardsScreen is learning mode: one card at a time, flipped with the
// arrow keys or a horizontal mouse drag.
type FlashcardsScreen struct {
	shell      *engine.Shell
	swipe      components.Swipe
	showAnswer bool
}

var _ screen.Screen = (*FlashcardsScreen)(nil)
var _ screen.KeyHintProvider = (*FlashcardsScreen)(nil)
var _ screen.StatusProvider = (*FlashcardsScreen)(nil)

// New creates the screen over the shell's live deck.
func New(shell *engine.Shell, swipeThreshold int) *FlashcardsScreen {
	return &FlashcardsScreen{
		shell: shell,
		swipe: components.NewSwipe(swipeThreshold),
	}
}

func (s *FlashcardsScreen) Init() tea.Cmd {
	return nil
}

func (s *FlashcardsScreen) Title() string {
	d := s.shell.Deck()
	if d == nil {
		return "Learning"
	}
	return s.shell.Store().DisplayName(d.Category())
}

func (s *FlashcardsScreen) Status() string {
	d := s.shell.Deck()
	if d == nil {
		return ""
	}
	pos, total := d.Position()
	return fmt.Sprintf("Card %d/%d", pos, total)
}

func (s *FlashcardsScreen) KeyHints() []layout.KeyHint {
	hints := layout.HintsFrom(keys.Prev, keys.Next, keys.Reveal)
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Menu"})
}

func (s *FlashcardsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, keys.Next):
			return s, s.flip(deck.Forward)
		case key.Matches(msg, keys.Prev):
			return s, s.flip(deck.Backward)
		case key.Matches(msg, keys.Reveal):
			if !s.shell.Flipping() {
				s.showAnswer = !s.showAnswer
			}
		}

	case tea.MouseClickMsg:
		if m := msg.Mouse(); m.Button == tea.MouseLeft {
			s.swipe.Press(m.X)
		}

	case tea.MouseReleaseMsg:
		dir, ok := s.swipe.Release(msg.Mouse().X)
		if !ok {
			return s, nil
		}
		// Dragging the card left brings up the next one.
		if dir == components.SwipeLeft {
			return s, s.flip(deck.Forward)
		}
		return s, s.flip(deck.Backward)

	case screen.OutcomeMsg:
		if _, ok := msg.Event.(engine.FlipElapsed); ok && !msg.Outcome.Stale {
			s.showAnswer = false
		}
	}
	return s, nil
}

func (s *FlashcardsScreen) flip(dir deck.Direction) tea.Cmd {
	out, err := s.shell.Dispatch(engine.Flip{Direction: dir})
	if err != nil {
		return nil
	}
	return screen.Schedule(out.Tasks)
}

func (s *FlashcardsScreen) View(width, height int) string {
	d := s.shell.Deck()
	if d == nil {
		return ""
	}
	card, ok := d.Current()
	if !ok {
		return ""
	}

	cw := components.ContentWidth(width)

	var body strings.Builder
	body.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("Q"))
	body.WriteString("\n")
	body.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Width(cw - 8).Render(card.Question))
	body.WriteString("\n\n")
	if s.showAnswer {
		body.WriteString(lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render("A"))
		body.WriteString("\n")
		body.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Width(cw - 8).Render(card.Answer))
	} else {
		body.WriteString(theme.Hint.Render("press space to show the answer"))
	}

	style := theme.Card
	if s.shell.Flipping() {
		style = theme.CardFlipping
	}
	rendered := style.Width(cw).Align(lipgloss.Center).Render(body.String())

	pos, total := d.Position()
	progress := components.NewProgressBar("", float64(pos)/float64(total), false, cw).View()

	footer := theme.Dimmed.Render(fmt.Sprintf("pass %d  ·  drag the card or use ← →", d.Passes()+1))

	content := rendered + "\n\n" + progress + "\n\n" + footer
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
