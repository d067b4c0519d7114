package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/emtprep/emtdrill/internal/gcs"
	"github.com/emtprep/emtdrill/internal/ui/theme"
)

// ScalePicker selects one level on each GCS component. Tab and up/down move
// between components; left/right or a digit picks the level.
type ScalePicker struct {
	Score gcs.Score
	Focus int // index into gcs.Components
}

// NewScalePicker returns a picker with nothing selected.
func NewScalePicker() ScalePicker {
	return ScalePicker{}
}

// Focused returns the component under the cursor.
func (p ScalePicker) Focused() gcs.Component {
	return gcs.Components[p.Focus]
}

// Update handles navigation and selection keys.
func (p ScalePicker) Update(msg tea.Msg) ScalePicker {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p
	}

	n := len(gcs.Components)
	c := p.Focused()
	cur := p.Score.Get(c)

	switch key := kmsg.String(); key {
	case "tab", "down", "j":
		p.Focus = (p.Focus + 1) % n
	case "shift+tab", "up", "k":
		p.Focus = (p.Focus + n - 1) % n
	case "right", "l":
		if cur < c.Max() {
			p.Score = p.Score.Set(c, cur+1)
		}
	case "left", "h":
		if cur > 1 {
			p.Score = p.Score.Set(c, cur-1)
		}
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			if v := int(key[0] - '0'); v <= c.Max() {
				p.Score = p.Score.Set(c, v)
			}
		}
	}
	return p
}

// View renders one row per component with the chosen level's descriptor.
func (p ScalePicker) View(width int) string {
	var b strings.Builder
	for i, c := range gcs.Components {
		v := p.Score.Get(c)

		name := fmt.Sprintf("%-7s", c.String())
		cells := make([]string, 0, c.Max())
		for level := 1; level <= c.Max(); level++ {
			cell := fmt.Sprintf(" %d ", level)
			if level == v {
				cell = lipgloss.NewStyle().Background(theme.Secondary).Foreground(theme.Text).Bold(true).Render(cell)
			} else {
				cell = theme.Dimmed.Render(cell)
			}
			cells = append(cells, cell)
		}

		desc := "not selected"
		if v != gcs.Unselected {
			desc = c.Describe(v)
		}

		style := theme.Unselected
		cursor := "  "
		if i == p.Focus {
			style = theme.Selected
			cursor = "▸ "
		}
		row := style.Render(cursor+name) + " " + strings.Join(cells, "") + "  " + theme.Dimmed.Render(desc)
		b.WriteString(lipgloss.NewStyle().MaxWidth(width).Render(row))
		b.WriteString("\n")
	}

	total := "Total: -"
	if p.Score.Complete() {
		t := p.Score.Total()
		total = fmt.Sprintf("Total: %d (%s)", t, gcs.Classify(t))
	}
	b.WriteString("\n" + theme.Body.Render("  "+total))
	return b.String()
}
