package message

import (
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/emtprep/emtdrill/internal/deck"
	"github.com/emtprep/emtdrill/internal/gcs"
	"github.com/emtprep/emtdrill/internal/quiz"
	"github.com/emtprep/emtdrill/internal/router"
	"github.com/emtprep/emtdrill/internal/screen"
	"github.com/emtprep/emtdrill/internal/ui/layout"
	"github.com/emtprep/emtdrill/internal/ui/theme"
)

// MessageScreen shows a notice over the screen that raised it. Any key
// dismisses it and returns to that screen.
type MessageScreen struct {
	title string
	body  string
}

var _ screen.Screen = (*MessageScreen)(nil)
var _ screen.KeyHintProvider = (*MessageScreen)(nil)

// New creates a MessageScreen.
func New(title, body string) *MessageScreen {
	return &MessageScreen{title: title, body: body}
}

func (m *MessageScreen) Init() tea.Cmd {
	return nil
}

func (m *MessageScreen) Title() string {
	return m.title
}

func (m *MessageScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "any key", Description: "Back"}}
}

func (m *MessageScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(tea.KeyPressMsg); ok {
		return m, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return m, nil
}

func (m *MessageScreen) View(width, height int) string {
	title := lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render("╌╌ " + m.title + " ╌╌")
	body := lipgloss.NewStyle().Foreground(theme.Text).Width(max(min(width-8, 60), 10)).Align(lipgloss.Center).Render(m.body)

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(title + "\n\n" + body)
}

// FromError builds a notice for a session that failed to start.
func FromError(err error) *MessageScreen {
	switch {
	case errors.Is(err, quiz.ErrInsufficientPool):
		return New("Not enough questions",
			fmt.Sprintf("A test needs %d questions from one category.\n\n%v", quiz.Length, err))
	case errors.Is(err, deck.ErrEmptyCategory):
		return New("No cards", "This category has no flashcards yet.")
	case errors.Is(err, gcs.ErrNoContent):
		return New("No scenarios", "There are no GCS scenarios to practise.")
	default:
		return New("Something went wrong", err.Error())
	}
}
