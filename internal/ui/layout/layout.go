// Package layout draws the frame shared by every screen: header bar,
// key-hint footer and the too-small notice.
package layout

import (
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/tiltwelve/tiltwelve/internal/ui/theme"
)

// Minimum terminal size. Below it only the resize notice is drawn.
const (
	MinWidth  = 60
	MinHeight = 20
)

// AppName is shown at the left of the header.
const AppName = "TilTwelve"

// hintGap separates footer hints.
const hintGap = "   "

// KeyHint is a key binding shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsTooSmall reports whether the terminal is below the minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// MinSizeVars returns the {{min}} and {{size}} values for the resize
// notice template.
func MinSizeVars(width, height int) map[string]string {
	return map[string]string{
		"min":  dims(MinWidth, MinHeight),
		"size": dims(width, height),
	}
}

func dims(w, h int) string {
	return strconv.Itoa(w) + " x " + strconv.Itoa(h)
}

// RenderMinSizeMessage centres the already translated resize notice.
func RenderMinSizeMessage(msg string, width, height int) string {
	body := lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(msg)
	return Centered(body, width, height)
}

// RenderHeader draws the bordered header: app name on the left, the screen
// title centred and the status on the right. The status is dropped first
// when the row is too narrow.
func RenderHeader(title, status string, width int) string {
	left := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(" " + AppName)
	center := lipgloss.NewStyle().Foreground(theme.Text).Render(title)
	right := lipgloss.NewStyle().Foreground(theme.Accent).Render(status)

	inner := max(width-4, 0)
	if lipgloss.Width(left)+lipgloss.Width(center)+lipgloss.Width(right)+2 > inner {
		right = ""
	}

	return bordered(spread(inner, left, center, right), width)
}

// spread lays out three segments on one line of the given width with the
// middle one as close to centre as the others allow.
func spread(width int, left, center, right string) string {
	lw, cw, rw := lipgloss.Width(left), lipgloss.Width(center), lipgloss.Width(right)

	leftGap := max((width-cw)/2-lw, 1)
	rightGap := max(width-lw-leftGap-cw-rw, 1)

	return left + strings.Repeat(" ", leftGap) + center + strings.Repeat(" ", rightGap) + right
}

// RenderFooter draws the key hints that fit on one line. Hints are kept in
// order and the ones that overflow are omitted.
func RenderFooter(hints []KeyHint, width int) string {
	keyStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	inner := max(width-6, 0)
	var b strings.Builder
	used := 0
	for _, h := range hints {
		part := keyStyle.Render(h.Key) + " " + descStyle.Render(h.Description)
		w := lipgloss.Width(part)
		if used > 0 {
			w += len(hintGap)
		}
		if used+w > inner {
			break
		}
		if used > 0 {
			b.WriteString(hintGap)
		}
		b.WriteString(part)
		used += w
	}

	return bordered(" "+b.String(), width)
}

func bordered(content string, width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(content)
}

// RenderFrame stacks header, content and footer, sizing the content area
// to fill the remaining height.
func RenderFrame(header, content, footer string, width, height int) string {
	body := lipgloss.NewStyle().
		Width(width).
		Height(max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// Centered places content in the middle of the given area.
func Centered(content string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
