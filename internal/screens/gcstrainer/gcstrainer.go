package gcstrainer

import (
	"errors"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/emtprep/emtdrill/internal/engine"
	"github.com/emtprep/emtdrill/internal/gcs"
	"github.com/emtprep/emtdrill/internal/router"
	"github.com/emtprep/emtdrill/internal/screen"
	"github.com/emtprep/emtdrill/internal/ui/components"
	"github.com/emtprep/emtdrill/internal/ui/layout"
	"github.com/emtprep/emtdrill/internal/ui/theme"
)

type keyMap struct {
	Move    key.Binding
	Pick    key.Binding
	Submit  key.Binding
	Restart key.Binding
}

var keys = keyMap{
	Move: key.NewBinding(
		key.WithKeys("tab", "shift+tab", "up", "down"),
		key.WithHelp("Tab/↑↓", "Component"),
	),
	Pick: key.NewBinding(
		key.WithKeys("left", "right", "1", "2", "3", "4", "5", "6"),
		key.WithHelp("←→/1-6", "Score"),
	),
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "Check"),
	),
	Restart: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("R", "Restart"),
	),
}

// GCSScreen walks through GCS scenarios: pick eye, verbal and motor scores,
// check them, read the explanation, move on.
type GCSScreen struct {
	shell  *engine.Shell
	picker components.ScalePicker
	notice string
}

var _ screen.Screen = (*GCSScreen)(nil)
var _ screen.KeyHintProvider = (*GCSScreen)(nil)
var _ screen.StatusProvider = (*GCSScreen)(nil)

// New creates the screen for a GCS session already started on the shell.
func New(shell *engine.Shell) *GCSScreen {
	return &GCSScreen{
		shell:  shell,
		picker: components.NewScalePicker(),
	}
}

func (s *GCSScreen) Init() tea.Cmd {
	return nil
}

func (s *GCSScreen) Title() string {
	return "GCS Trainer"
}

func (s *GCSScreen) Status() string {
	g := s.shell.GCS()
	if g == nil || g.State() != gcs.StateActive {
		return ""
	}
	return fmt.Sprintf("Case %d/%d", g.Index()+1, g.Len())
}

func (s *GCSScreen) KeyHints() []layout.KeyHint {
	if s.complete() {
		return append(layout.HintsFrom(keys.Restart), layout.KeyHint{Key: "Enter", Description: "Menu"})
	}
	if _, graded := s.shell.LastGrade(); graded {
		return []layout.KeyHint{{Key: "Enter", Description: "Next case"}, {Key: "Esc", Description: "Menu"}}
	}
	return append(layout.HintsFrom(keys.Move, keys.Pick, keys.Submit), layout.KeyHint{Key: "Esc", Description: "Menu"})
}

func (s *GCSScreen) complete() bool {
	g := s.shell.GCS()
	return g != nil && g.State() == gcs.StateComplete
}

func (s *GCSScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	if s.complete() {
		switch {
		case key.Matches(kmsg, keys.Submit):
			s.shell.Dispatch(engine.ReturnToMenu{})
			return s, func() tea.Msg { return router.PopToRootMsg{} }
		case key.Matches(kmsg, keys.Restart):
			if _, err := s.shell.Dispatch(engine.StartGCS{}); err != nil {
				s.notice = err.Error()
				return s, nil
			}
			s.reset()
		}
		return s, nil
	}

	if _, graded := s.shell.LastGrade(); graded {
		if key.Matches(kmsg, keys.Submit) {
			if _, err := s.shell.Dispatch(engine.AdvanceGCS{}); err == nil {
				s.reset()
			}
		}
		return s, nil
	}

	if key.Matches(kmsg, keys.Submit) {
		sc := s.picker.Score
		_, err := s.shell.Dispatch(engine.SubmitGCSAnswer{Eye: sc.Eye, Verbal: sc.Verbal, Motor: sc.Motor})
		switch {
		case errors.Is(err, gcs.ErrIncompleteSelection):
			s.notice = "Select eye, verbal and motor responses first."
		case err != nil:
			s.notice = err.Error()
		default:
			s.notice = ""
		}
		return s, nil
	}

	s.picker = s.picker.Update(kmsg)
	s.notice = ""
	return s, nil
}

func (s *GCSScreen) reset() {
	s.picker = components.NewScalePicker()
	s.notice = ""
}

func (s *GCSScreen) View(width, height int) string {
	g := s.shell.GCS()
	if g == nil {
		return ""
	}
	cw := components.ContentWidth(width)

	if s.complete() {
		done := theme.Title.Render("All cases reviewed") + "\n\n" +
			theme.Dimmed.Render(fmt.Sprintf("%d scenarios. Press R to go again.", g.Len()))
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, done)
	}

	q, ok := g.Current()
	if !ok {
		return ""
	}

	var b strings.Builder
	scenario := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(q.Title) + "\n\n" +
		lipgloss.NewStyle().Foreground(theme.Text).Width(cw-8).Render(q.Scenario)
	b.WriteString(components.Card(scenario, cw))
	b.WriteString("\n\n")
	b.WriteString(s.picker.View(cw))
	b.WriteString("\n\n")

	if res, graded := s.shell.LastGrade(); graded {
		b.WriteString(renderResult(res, cw))
	} else if s.notice != "" {
		b.WriteString(theme.Incorrect.Render(s.notice))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func renderResult(res gcs.Result, width int) string {
	var b strings.Builder
	if res.Correct {
		b.WriteString(theme.Correct.Render("Correct!"))
	} else {
		b.WriteString(theme.Incorrect.Render("Not quite."))
	}
	b.WriteString("\n")

	parts := make([]string, 0, len(gcs.Components))
	for _, c := range gcs.Components {
		mark := theme.Correct.Render("✓")
		if !res.Matches(c) {
			mark = theme.Incorrect.Render("✗")
		}
		parts = append(parts, fmt.Sprintf("%s %s %d", mark, c, res.Expected.Get(c)))
	}
	total := res.Expected.Total()
	b.WriteString(strings.Join(parts, "   "))
	b.WriteString(theme.Dimmed.Render(fmt.Sprintf("   = %d (%s)", total, gcs.Classify(total))))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Width(width).Render(res.Explanation))
	return b.String()
}
