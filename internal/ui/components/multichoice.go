package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/emtprep/emtdrill/internal/ui/theme"
)

// MultiChoice is a numbered option selector. It only tracks the cursor;
// grading is done by the caller, which hands the verdict back through Reveal.
type MultiChoice struct {
	Options  []string
	Selected int

	revealed bool
	chosen   string
	correct  string
}

// NewMultiChoice creates a selector over options.
func NewMultiChoice(options []string) MultiChoice {
	return MultiChoice{Options: options}
}

// Update moves the cursor. It returns the picked option when the user
// presses enter or a digit key, and ok=false otherwise.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, string, bool) {
	if m.revealed {
		return m, "", false
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, "", false
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "enter":
		if m.Selected < len(m.Options) {
			return m, m.Options[m.Selected], true
		}
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			i := int(key[0] - '1')
			if i < len(m.Options) {
				m.Selected = i
				return m, m.Options[i], true
			}
		}
	}

	return m, "", false
}

// Reveal freezes the selector and highlights the chosen and correct options.
func (m *MultiChoice) Reveal(chosen, correct string) {
	m.revealed = true
	m.chosen = chosen
	m.correct = correct
}

// Revealed reports whether the answer is on display.
func (m MultiChoice) Revealed() bool {
	return m.revealed
}

// View renders the options.
func (m MultiChoice) View() string {
	var b strings.Builder
	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Selected && !m.revealed {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d) %s", prefix, i+1, opt)

		var style lipgloss.Style
		switch {
		case m.revealed && opt == m.correct:
			style = theme.Correct
		case m.revealed && opt == m.chosen:
			style = theme.Incorrect
		case m.revealed:
			style = theme.Dimmed
		case i == m.Selected:
			style = theme.Selected
		default:
			style = theme.Unselected
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}
