package exam

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/emtprep/emtdrill/internal/engine"
	"github.com/emtprep/emtdrill/internal/router"
	"github.com/emtprep/emtdrill/internal/screen"
	"github.com/emtprep/emtdrill/internal/ui/components"
	"github.com/emtprep/emtdrill/internal/ui/layout"
	"github.com/emtprep/emtdrill/internal/ui/theme"
)

// ExamScreen runs a timed ten-question test on the shell's live quiz.
type ExamScreen struct {
	shell  *engine.Shell
	choice components.MultiChoice
	shown  int // question index the options were built for
}

var _ screen.Screen = (*ExamScreen)(nil)
var _ screen.KeyHintProvider = (*ExamScreen)(nil)
var _ screen.StatusProvider = (*ExamScreen)(nil)

// New creates the screen for a quiz already started on the shell.
func New(shell *engine.Shell) *ExamScreen {
	s := &ExamScreen{shell: shell}
	s.syncChoices()
	return s
}

func (s *ExamScreen) Init() tea.Cmd {
	return nil
}

func (s *ExamScreen) Title() string {
	q := s.shell.Quiz()
	if q == nil {
		return "Test"
	}
	return "Test · " + s.shell.Store().DisplayName(q.Category())
}

func (s *ExamScreen) Status() string {
	q := s.shell.Quiz()
	if q == nil {
		return ""
	}
	p := q.Present()
	return fmt.Sprintf("Q %d/%d  ⏱ %s", p.Number, p.Total, q.Elapsed())
}

func (s *ExamScreen) KeyHints() []layout.KeyHint {
	if q := s.shell.Quiz(); q != nil && q.Revealing() {
		return []layout.KeyHint{{Key: "…", Description: "Next question shortly"}}
	}
	return []layout.KeyHint{
		{Key: "1-4", Description: "Answer"},
		{Key: "↑↓ Enter", Description: "Select"},
		{Key: "Esc", Description: "Menu"},
	}
}

func (s *ExamScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return s, s.handleKey(msg)

	case screen.OutcomeMsg:
		if _, ok := msg.Event.(engine.RevealElapsed); !ok || msg.Outcome.Stale {
			return s, nil
		}
		if s.shell.Mode() == engine.ModeResults {
			results := NewResults(s.shell)
			return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: results} }
		}
		s.syncChoices()
	}
	return s, nil
}

func (s *ExamScreen) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	q := s.shell.Quiz()
	if q == nil || q.Revealing() {
		return nil
	}

	var picked string
	var ok bool
	s.choice, picked, ok = s.choice.Update(msg)
	if !ok {
		return nil
	}

	out, err := s.shell.Dispatch(engine.SubmitQuizAnswer{Option: picked})
	if err != nil || out.Feedback == nil {
		return nil
	}
	s.choice.Reveal(out.Feedback.Chosen, out.Feedback.CorrectAnswer)
	return screen.Schedule(out.Tasks)
}

// syncChoices rebuilds the selector when the quiz has moved on.
func (s *ExamScreen) syncChoices() {
	q := s.shell.Quiz()
	if q == nil {
		return
	}
	if s.choice.Options != nil && s.shown == q.Index() {
		return
	}
	s.choice = components.NewMultiChoice(q.Present().Options)
	s.shown = q.Index()
}

func (s *ExamScreen) View(width, height int) string {
	q := s.shell.Quiz()
	if q == nil {
		return ""
	}
	p := q.Present()
	cw := components.ContentWidth(width)

	var b strings.Builder

	progress := components.NewProgressBar(
		fmt.Sprintf("Question %d of %d", p.Number, p.Total),
		float64(q.Index())/float64(p.Total), false, cw,
	)
	b.WriteString(progress.View())
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(cw).
		Foreground(theme.Text).
		Bold(true).
		Render(p.Question))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().Width(cw).Render(s.choice.View()))

	if fb, ok := q.LastFeedback(); ok && q.Revealing() {
		b.WriteString("\n")
		if fb.Correct {
			b.WriteString(theme.Correct.Render("Correct!"))
		} else {
			b.WriteString(theme.Incorrect.Render("Not quite."))
			b.WriteString("\n")
			b.WriteString(theme.Dimmed.Width(cw).Render("Correct answer: " + fb.CorrectAnswer))
		}
	} else {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("Select (1-4) or use arrows + Enter"))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
