package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestMenuWrapsAndActivates(t *testing.T) {
	pressed := ""
	item := func(label string) MenuItem {
		return MenuItem{Label: label, Action: func() tea.Cmd { pressed = label; return nil }}
	}
	m := NewMenu([]MenuItem{item("a"), item("b"), item("c")})

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if m.Selected != 2 {
		t.Fatalf("Selected = %d, want 2 after wrapping up", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 0 {
		t.Fatalf("Selected = %d, want 0 after wrapping down", m.Selected)
	}
	m, _ = m.Update(key('G'))
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if pressed != "c" {
		t.Errorf("pressed = %q, want c", pressed)
	}
}

func TestMenuEmpty(t *testing.T) {
	m, cmd := NewMenu(nil).Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if cmd != nil || m.Selected != 0 {
		t.Errorf("empty menu moved to %d", m.Selected)
	}
}

func TestMultiChoiceNumberKey(t *testing.T) {
	mc := NewMultiChoice([]int{10, 12, 14, 16}, 1)
	mc, _ = mc.Update(key('2'))
	if !mc.Submitted || mc.ChosenIndex != 1 || !mc.IsCorrect() {
		t.Errorf("got submitted=%v chosen=%d", mc.Submitted, mc.ChosenIndex)
	}

	// Further keys are ignored once submitted.
	mc, _ = mc.Update(key('3'))
	if mc.ChosenIndex != 1 {
		t.Errorf("ChosenIndex changed to %d", mc.ChosenIndex)
	}
}

func TestMultiChoiceArrowsAndEnter(t *testing.T) {
	mc := NewMultiChoice([]int{1, 2, 3, 4, 5, 6}, 5)
	for i := 0; i < 10; i++ {
		mc, _ = mc.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	if mc.Selected != 5 {
		t.Fatalf("Selected = %d, want 5", mc.Selected)
	}
	mc, _ = mc.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !mc.IsCorrect() {
		t.Error("expected correct choice")
	}
	if !strings.Contains(mc.View(), "6)") {
		t.Error("view should list option 6")
	}
}

func TestMultiChoiceIgnoresOutOfRangeDigit(t *testing.T) {
	mc := NewMultiChoice([]int{1, 2, 3, 4}, 0)
	mc, _ = mc.Update(key('5'))
	if mc.Submitted {
		t.Error("digit beyond option count should be ignored")
	}
}

func TestTextInputNumericOnly(t *testing.T) {
	ti := NewTextInput("answer", true, 3)
	for _, r := range "4a2x" {
		ti, _ = ti.Update(key(r))
	}
	if ti.Value() != "42" {
		t.Errorf("Value = %q, want 42", ti.Value())
	}
	ti.Reset()
	if ti.Value() != "" {
		t.Errorf("Value after reset = %q", ti.Value())
	}
}

func TestProgressBarClamps(t *testing.T) {
	for _, pct := range []int{-5, 0, 50, 100, 150} {
		out := NewProgressBar("", pct, true, 20).View()
		if out == "" {
			t.Errorf("empty view for %d%%", pct)
		}
	}
	if !strings.Contains(NewProgressBar("", 150, true, 20).View(), "100%") {
		t.Error("percent should clamp to 100")
	}
}

func TestButtonPress(t *testing.T) {
	pressed := 0
	b := NewButton("Start", true, func() tea.Cmd {
		pressed++
		return nil
	})
	b, _ = b.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	b, _ = b.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	if pressed != 1 {
		t.Errorf("pressed = %d, want 1", pressed)
	}

	b.Active = false
	b.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if pressed != 1 {
		t.Errorf("inactive button pressed")
	}
	if !strings.Contains(NewButton("Go", true, nil).View(), "▸ Go") {
		t.Error("active button missing marker")
	}
}

func TestButtonCustomKeysAndWidth(t *testing.T) {
	pressed := false
	b := NewButton("Start", true, func() tea.Cmd { pressed = true; return nil })
	b.Keys = []string{"s"}
	b.Width = 20

	b, _ = b.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if pressed {
		t.Fatal("enter should not press a button with custom keys")
	}
	b.Update(key('s'))
	if !pressed {
		t.Error("custom key did not press")
	}
	if !strings.Contains(b.View(), "▸ Start") {
		t.Error("boxed button missing label")
	}
}

func TestTextInputLockedAfterSubmit(t *testing.T) {
	ti := NewTextInput("", true, 3)
	ti, _ = ti.Update(key('7'))
	ti.Submit(false)
	ti, _ = ti.Update(key('2'))
	if ti.Value() != "7" || !ti.Submitted() {
		t.Errorf("Value = %q submitted=%v", ti.Value(), ti.Submitted())
	}
	if !strings.Contains(ti.View(), "✗") {
		t.Error("missing wrong-answer mark")
	}
	ti.Reset()
	ti, _ = ti.Update(key('2'))
	if ti.Value() != "2" {
		t.Errorf("Value after reset = %q", ti.Value())
	}
}
