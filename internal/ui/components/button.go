package components

import (
	"slices"

	tea "charm.land/bubbletea/v2"

	"github.com/tiltwelve/tiltwelve/internal/ui/theme"
)

// defaultPressKeys trigger a button when no Keys are set.
var defaultPressKeys = []string{"enter", "space"}

// Button is a single action. Inactive buttons render dimmed and ignore
// input.
type Button struct {
	Label   string
	Active  bool
	OnPress func() tea.Cmd

	// Keys overrides the keys that press the button.
	Keys []string
	// Width renders the button as a boxed MenuButton when positive.
	Width int
}

// NewButton creates an inline button pressed by Enter or Space.
func NewButton(label string, active bool, onPress func() tea.Cmd) Button {
	return Button{Label: label, Active: active, OnPress: onPress}
}

// Update calls OnPress when one of the button's keys is pressed.
func (b Button) Update(msg tea.Msg) (Button, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || !b.Active || b.OnPress == nil {
		return b, nil
	}
	keys := b.Keys
	if len(keys) == 0 {
		keys = defaultPressKeys
	}
	if slices.Contains(keys, kmsg.String()) {
		return b, b.OnPress()
	}
	return b, nil
}

// View renders the button.
func (b Button) View() string {
	if b.Width > 0 {
		if !b.Active {
			return theme.ButtonInactive.Width(b.Width).Render(b.Label)
		}
		return MenuButton(b.Label, true, b.Width)
	}
	if b.Active {
		return theme.ButtonActive.Render("▸ " + b.Label)
	}
	return theme.ButtonInactive.Render(b.Label)
}
