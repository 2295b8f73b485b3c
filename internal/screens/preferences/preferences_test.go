package preferences

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiltwelve/tiltwelve/internal/config"
	"github.com/tiltwelve/tiltwelve/internal/i18n"
	"github.com/tiltwelve/tiltwelve/internal/settings"
	"github.com/tiltwelve/tiltwelve/internal/state"
	"github.com/tiltwelve/tiltwelve/internal/store"
	"github.com/tiltwelve/tiltwelve/internal/ui/theme"
)

func newTestScreen(t *testing.T) (*PreferencesScreen, *state.State, store.KV) {
	t.Helper()
	kv := store.NewMemory()
	st := state.New(context.Background(), kv, config.Default(), nil)
	st.Load()
	t.Cleanup(func() { theme.Apply(settings.DefaultTheme) })
	return New(st), st, kv
}

func press(p *PreferencesScreen, codes ...rune) {
	for _, c := range codes {
		p.Update(tea.KeyPressMsg{Code: c})
	}
}

func stored(t *testing.T, kv store.KV, key string) string {
	t.Helper()
	v, ok, err := kv.Get(context.Background(), key)
	require.NoError(t, err)
	require.True(t, ok, "key %s not stored", key)
	return v
}

func TestLanguageCycles(t *testing.T) {
	p, st, kv := newTestScreen(t)

	press(p, tea.KeyRight)
	assert.Equal(t, i18n.Portuguese, st.Settings.Get().Language)
	assert.Equal(t, "pt-BR", stored(t, kv, store.KeyLanguage))
	assert.Equal(t, "Configurações", p.Title())

	press(p, tea.KeyRight, tea.KeyRight)
	assert.Equal(t, i18n.English, st.Settings.Get().Language)

	press(p, tea.KeyLeft)
	assert.Equal(t, i18n.Spanish, st.Settings.Get().Language)
}

func TestThemeChangeApplies(t *testing.T) {
	p, st, kv := newTestScreen(t)

	press(p, tea.KeyDown, tea.KeyRight)
	assert.Equal(t, settings.ThemeDark, st.Settings.Get().Theme)
	assert.Equal(t, "dark", stored(t, kv, store.KeyTheme))
	assert.Equal(t, settings.ThemeDark, theme.Current())
}

func TestHideAnswersToggle(t *testing.T) {
	p, st, kv := newTestScreen(t)

	press(p, tea.KeyDown, tea.KeyDown, tea.KeyEnter)
	assert.True(t, st.Settings.Get().HideAnswers)
	assert.Equal(t, "true", stored(t, kv, store.KeyHideAnswers))
}

func TestRowBounds(t *testing.T) {
	p, _, _ := newTestScreen(t)
	press(p, tea.KeyUp)
	assert.Equal(t, rowLanguage, p.row)
	press(p, tea.KeyDown, tea.KeyDown, tea.KeyDown, tea.KeyDown)
	assert.Equal(t, rowHideAnswers, p.row)
}

func TestCycleWraps(t *testing.T) {
	all := []int{1, 2, 3}
	assert.Equal(t, 1, cycle(all, 3, 1))
	assert.Equal(t, 3, cycle(all, 1, -1))
	assert.Equal(t, 1, cycle(all, 9, 1))
}
