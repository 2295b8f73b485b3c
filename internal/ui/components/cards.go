package components

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/tiltwelve/tiltwelve/internal/ui/theme"
)

// Bounds of the shared content column.
const (
	minContentWidth = 20
	maxContentWidth = 60
)

// ContentWidth returns the width of the centred content column for a
// frame, leaving room for the cabinet border and padding.
func ContentWidth(frameWidth int) int {
	return max(minContentWidth, min(frameWidth-6, maxContentWidth))
}

// CabinetFrame wraps content in a double border filling the given area,
// with the content centred inside.
func CabinetFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// Card is a padded rounded box of width cw holding centred content.
func Card(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(1, 2).
		Render(content)
}

// AccentCard is a compact box sized to its content with a coloured
// border, used to tell the two competition players apart.
func AccentCard(title, body string, accent color.Color) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Padding(0, 2).
		Align(lipgloss.Center).
		Render(lipgloss.NewStyle().Bold(true).Foreground(accent).Render(title) + "\n" + body)
}

// MenuButton renders a boxed button of fixed width, filled when selected.
func MenuButton(label string, selected bool, width int) string {
	style := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	if selected {
		return style.
			Bold(true).
			Foreground(theme.BgCard).
			Background(theme.Primary).
			BorderForeground(theme.Primary).
			Render("▸ " + label)
	}
	return style.
		Foreground(theme.Text).
		BorderForeground(theme.Border).
		Render(label)
}
