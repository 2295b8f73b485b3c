package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tiltwelve/tiltwelve/internal/ui/theme"
)

// TextInput wraps bubbles/textinput for answer entry. After Submit it
// shows a ✓ or ✗ and ignores typing until Reset.
type TextInput struct {
	Model       textinput.Model
	NumericOnly bool

	submitted bool
	valid     bool
}

// NewTextInput creates a focused text input. A positive charLimit caps the
// number of characters accepted.
func NewTextInput(placeholder string, numericOnly bool, charLimit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "› "
	ti.CharLimit = max(charLimit, 0)
	ti.Focus()

	return TextInput{Model: ti, NumericOnly: numericOnly}
}

// Init starts the cursor blink.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update forwards msg to the wrapped model. Key presses carrying
// non-digit text are dropped when the input is numeric-only.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		if t.submitted || (t.NumericOnly && !digitsOnly(kmsg.Text)) {
			return t, nil
		}
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

func digitsOnly(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// View renders the input followed by the result mark once submitted.
func (t TextInput) View() string {
	view := t.Model.View()
	if !t.submitted {
		return view
	}
	if t.valid {
		return view + " " + lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render("✓")
	}
	return view + " " + lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render("✗")
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// Submit locks the input and records whether the answer was right.
func (t *TextInput) Submit(valid bool) {
	t.submitted = true
	t.valid = valid
}

// Submitted reports whether the input is locked awaiting Reset.
func (t TextInput) Submitted() bool {
	return t.submitted
}

// Reset clears the value and unlocks the input.
func (t *TextInput) Reset() {
	t.Model.SetValue("")
	t.submitted = false
	t.valid = false
}
