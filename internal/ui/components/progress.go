package components

import (
	"image/color"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/tiltwelve/tiltwelve/internal/ui/theme"
)

const (
	barFull    = "█"
	barEmpty   = "░"
	minBarCols = 4
)

// ProgressBar draws a success rate as a bar of block characters, so it
// stays readable on terminals without colour.
type ProgressBar struct {
	Label       string
	Percent     int
	ShowPercent bool
	Width       int

	// Fill colours the filled part. Nil uses theme.Secondary.
	Fill color.Color
}

// NewProgressBar creates a bar for a percentage in 0..100. Width covers
// the label, bar and percentage together.
func NewProgressBar(label string, percent int, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
	}
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	pct := max(0, min(p.Percent, 100))

	var label, suffix string
	if p.Label != "" {
		label = lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}
	if p.ShowPercent {
		suffix = lipgloss.NewStyle().Foreground(theme.TextDim).Render(padLeft(strconv.Itoa(pct)+"%", 6))
	}

	cols := max(p.Width-lipgloss.Width(label)-lipgloss.Width(suffix), minBarCols)
	filled := cols * pct / 100

	fill := p.Fill
	if fill == nil {
		fill = theme.Secondary
	}
	bar := lipgloss.NewStyle().Foreground(fill).Render(strings.Repeat(barFull, filled)) +
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat(barEmpty, cols-filled))

	return label + bar + suffix
}

func padLeft(s string, w int) string {
	if n := w - len(s); n > 0 {
		return strings.Repeat(" ", n) + s
	}
	return s
}
