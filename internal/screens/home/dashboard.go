package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/tiltwelve/tiltwelve/internal/screens/loading"
	"github.com/tiltwelve/tiltwelve/internal/ui/components"
	"github.com/tiltwelve/tiltwelve/internal/ui/theme"
)

const buttonWidth = 24

// overview is what the home dashboard summarises.
type overview struct {
	globalScore int
	correct     int
	total       int
	percentage  int
}

func center(cw int, s string) string {
	return lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(s)
}

// renderTitle draws the banner, or the one-line title when compact.
func renderTitle(cw int, compact bool) string {
	if compact {
		return center(cw, loading.RenderBanner(0))
	}
	return center(cw, loading.RenderBanner(cw))
}

// renderStatsBar shows the global high score, overall success and the
// number of attempts.
func renderStatsBar(o overview, scoreLabel, attemptsLabel string, cw int, compact bool) string {
	score := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	success := dim.Render("✓ --")
	if o.total > 0 {
		success = lipgloss.NewStyle().Foreground(theme.Success).Bold(true).
			Render(fmt.Sprintf("✓ %d%%", o.percentage))
	}

	parts := []string{
		score.Render(fmt.Sprintf("★ %s: %d", scoreLabel, o.globalScore)),
		success,
		dim.Render(fmt.Sprintf("%d %s", o.total, attemptsLabel)),
	}
	sep := "  "
	if compact {
		parts[0] = score.Render(fmt.Sprintf("★%d", o.globalScore))
		parts[2] = dim.Render(fmt.Sprintf("#%d", o.total))
		sep = " "
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(strings.Join(parts, sep))
}

// renderMenu stacks the items as boxed buttons.
func renderMenu(items []string, selected int, cw int) string {
	buttons := make([]string, len(items))
	for i, label := range items {
		buttons[i] = components.MenuButton(label, i == selected, buttonWidth)
	}
	return center(cw, strings.Join(buttons, "\n"))
}

// renderMenuCompact lists the items one per line for short terminals.
func renderMenuCompact(items []string, selected int, cw int) string {
	lines := make([]string, len(items))
	for i, label := range items {
		if i == selected {
			lines[i] = theme.Selected.Render("▸ " + label)
		} else {
			lines[i] = theme.Unselected.Render("  " + label)
		}
	}
	return center(cw, strings.Join(lines, "\n"))
}

func renderMascotBox(variant MascotVariant, cw int) string {
	return center(cw, RenderMascot(variant))
}
