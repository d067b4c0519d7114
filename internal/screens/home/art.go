package home

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/emtprep/emtdrill/internal/ui/theme"
)

// StarOfLife is the six-armed EMS emblem, shared with the splash screen.
const StarOfLife = `   ╲ │ ╱
  ───╋───
   ╱ │ ╲`

const titleFull = `███████╗███╗   ███╗████████╗
██╔════╝████╗ ████║╚══██╔══╝
█████╗  ██╔████╔██║   ██║
██╔══╝  ██║╚██╔╝██║   ██║
███████╗██║ ╚═╝ ██║   ██║
╚══════╝╚═╝     ╚═╝   ╚═╝   D R I L L`

const titleCompact = "E · M · T   D R I L L"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	art := titleFull
	if compact {
		art = titleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(art))
}

// renderStarOfLife renders the emblem centered at content width.
func renderStarOfLife(cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.Secondary).
		Bold(true).
		Render(StarOfLife)
}

// renderStatsBar renders the bank size in a bordered box matching content width.
func renderStatsBar(categories, questions, scenarios, cw int) string {
	num := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	stats := fmt.Sprintf("%s %s  %s %s  %s %s",
		num.Render(fmt.Sprint(categories)), dim.Render("CATEGORIES"),
		num.Render(fmt.Sprint(questions)), dim.Render("CARDS"),
		num.Render(fmt.Sprint(scenarios)), dim.Render("GCS CASES"),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}
