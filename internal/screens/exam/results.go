package exam

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
	"github.com/emtprep/emtdrill/internal/screens/message"
	"github.com/emtprep/emtdrill/internal/ui/layout"
	"github.com/emtprep/emtdrill/internal/ui/theme"
)

// ResultsScreen shows the read-only snapshot of a finished test.
type ResultsScreen struct {
	shell    *engine.Shell
	results  quiz.Results
	category content.Category
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// NewResults snapshots the shell's finished quiz.
func NewResults(shell *engine.Shell) *ResultsScreen {
	r := &ResultsScreen{shell: shell}
	r.results, _ = shell.Results()
	if q := shell.Quiz(); q != nil {
		r.category = q.Category()
	}
	return r
}

func (r *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultsScreen) Title() string {
	return "Test Results"
}

func (r *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "R", Description: "Retake"},
		{Key: "Enter", Description: "Menu"},
	}
}

func (r *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return r, nil
	}
	switch kmsg.String() {
	case "enter":
		r.shell.Dispatch(engine.ReturnToMenu{})
		return r, func() tea.Msg { return router.PopToRootMsg{} }
	case "r", "R":
		return r, r.retake()
	}
	return r, nil
}

func (r *ResultsScreen) retake() tea.Cmd {
	out, err := r.shell.Dispatch(engine.SelectCategory{Mode: engine.ModeTest, Category: r.category})
	if err != nil {
		notice := message.FromError(err)
		return func() tea.Msg { return router.PushScreenMsg{Screen: notice} }
	}
	next := New(r.shell)
	return tea.Batch(
		func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} },
		screen.Schedule(out.Tasks),
	)
}

func (r *ResultsScreen) View(width, height int) string {
	res := r.results
	var b strings.Builder

	b.WriteString(layout.Centered(theme.Title, width, "Test complete!"))
	b.WriteString("\n\n")

	verdict := theme.Correct.Render("PASS")
	if !res.Passed() {
		verdict = theme.Incorrect.Render("FAIL")
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(fmt.Sprintf("%d%%", res.Percentage))+
			"  "+verdict))
	b.WriteString("\n\n")

	stats := fmt.Sprintf("Correct: %d/%d        Time: %s        Pass mark: %d%%",
		res.Score, res.Total, res.Elapsed, quiz.PassPercentage)
	b.WriteString(layout.Centered(theme.Body, width, stats))
	b.WriteString("\n\n")

	if len(res.WrongLog) == 0 {
		b.WriteString(layout.Centered(theme.Correct, width, "No mistakes. Well done!"))
		return b.String()
	}

	b.WriteString(layout.Centered(theme.Dimmed, width, "Review"))
	b.WriteString("\n")
	b.WriteString(layout.Divider(width, 60))
	b.WriteString("\n\n")

	itemWidth := max(min(width-8, 70), 20)
	for i, miss := range res.WrongLog {
		item := theme.Body.Bold(true).Width(itemWidth).Render(fmt.Sprintf("%d. %s", i+1, miss.Question)) + "\n" +
			theme.Incorrect.Width(itemWidth).Render("   You: "+miss.Chosen) + "\n" +
			theme.Correct.Width(itemWidth).Render("   Answer: "+miss.CorrectAnswer)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, item))
		b.WriteString("\n\n")
	}

	return b.String()
}
