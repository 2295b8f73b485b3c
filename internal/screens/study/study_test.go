package study

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/tiltwelve/tiltwelve/internal/config"
	"github.com/tiltwelve/tiltwelve/internal/state"
	"github.com/tiltwelve/tiltwelve/internal/store"
)

func newTestStudy(t *testing.T) (*StudyScreen, *state.State, store.KV) {
	t.Helper()
	kv := store.NewMemory()
	st := state.New(context.Background(), kv, config.Default(), nil)
	st.Load()
	return New(st), st, kv
}

func press(s *StudyScreen, keys ...string) {
	for _, k := range keys {
		var msg tea.KeyPressMsg
		switch k {
		case "left":
			msg = tea.KeyPressMsg{Code: tea.KeyLeft}
		case "right":
			msg = tea.KeyPressMsg{Code: tea.KeyRight}
		case "down":
			msg = tea.KeyPressMsg{Code: tea.KeyDown}
		case "up":
			msg = tea.KeyPressMsg{Code: tea.KeyUp}
		case "enter":
			msg = tea.KeyPressMsg{Code: tea.KeyEnter}
		default:
			r := []rune(k)[0]
			msg = tea.KeyPressMsg{Code: r, Text: k}
		}
		s.Update(msg)
	}
}

func TestTableNavigationBounds(t *testing.T) {
	s, _, _ := newTestStudy(t)
	if s.Table() != 2 {
		t.Fatalf("initial table = %d, want 2", s.Table())
	}
	press(s, "left")
	if s.Table() != 2 {
		t.Errorf("table went below 2: %d", s.Table())
	}
	for i := 0; i < 20; i++ {
		press(s, "right")
	}
	if s.Table() != 12 {
		t.Errorf("table = %d, want 12", s.Table())
	}
}

func TestViewListsTenRows(t *testing.T) {
	s, _, _ := newTestStudy(t)
	press(s, "right", "right", "right", "right", "right") // 7
	view := s.View(100, 40)
	for _, want := range []string{" 7 ×  1 =   7", " 7 × 10 =  70"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestHideAnswersToggleAndReveal(t *testing.T) {
	s, st, kv := newTestStudy(t)

	press(s, "h")
	if !st.Settings.Get().HideAnswers {
		t.Fatal("h should enable hideAnswers")
	}
	v, _, _ := kv.Get(context.Background(), store.KeyHideAnswers)
	if v != "true" {
		t.Errorf("persisted hideAnswers = %q, want true", v)
	}
	if s.Revealed(1) {
		t.Error("answers should be hidden")
	}
	if !strings.Contains(s.View(100, 40), "=   ?") {
		t.Error("hidden answers should render as ?")
	}

	press(s, "down", "down", "enter")
	if !s.Revealed(3) {
		t.Error("Enter should reveal the highlighted row")
	}
	if s.Revealed(4) {
		t.Error("other rows stay hidden")
	}

	press(s, "right")
	if s.Revealed(3) {
		t.Error("changing table hides revealed rows again")
	}

	press(s, "h")
	if !s.Revealed(5) {
		t.Error("answers visible after toggling back")
	}
}
