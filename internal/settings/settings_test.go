package settings

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiltwelve/tiltwelve/internal/i18n"
	"github.com/tiltwelve/tiltwelve/internal/store"
)

type readOnlyKV struct {
	*store.Memory
}

func (readOnlyKV) Set(context.Context, string, string) error {
	return errors.New("read-only")
}

func TestLoad_Defaults(t *testing.T) {
	s := NewService(store.NewMemory(), nil)
	p := s.Load(context.Background())
	assert.Equal(t, Preferences{Language: i18n.English, Theme: ThemeLight}, p)
}

func TestLoad_Stored(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	require.NoError(t, kv.Set(ctx, store.KeyLanguage, "es-ES"))
	require.NoError(t, kv.Set(ctx, store.KeyTheme, "kids"))
	require.NoError(t, kv.Set(ctx, store.KeyHideAnswers, "true"))

	s := NewService(kv, nil)
	p := s.Load(ctx)
	assert.Equal(t, Preferences{Language: i18n.Spanish, Theme: ThemeKids, HideAnswers: true}, p)
	assert.Equal(t, p, s.Get())
}

func TestLoad_UnknownValuesFallBack(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	require.NoError(t, kv.Set(ctx, store.KeyLanguage, "xx-??"))
	require.NoError(t, kv.Set(ctx, store.KeyTheme, "neon"))
	require.NoError(t, kv.Set(ctx, store.KeyHideAnswers, "maybe"))

	p := NewService(kv, nil).Load(ctx)
	assert.Equal(t, Defaults(), p)
}

func TestSetters_Persist(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	s := NewService(kv, nil)
	s.Load(ctx)

	s.SetLanguage(ctx, i18n.Portuguese)
	s.SetTheme(ctx, ThemeDark)
	assert.True(t, s.ToggleHideAnswers(ctx))

	reloaded := NewService(kv, nil).Load(ctx)
	assert.Equal(t, Preferences{Language: i18n.Portuguese, Theme: ThemeDark, HideAnswers: true}, reloaded)

	assert.False(t, s.ToggleHideAnswers(ctx))
	v, _, err := kv.Get(ctx, store.KeyHideAnswers)
	require.NoError(t, err)
	assert.Equal(t, "false", v)
}

func TestSetters_SaveErrorKeepsMemory(t *testing.T) {
	ctx := context.Background()
	s := NewService(readOnlyKV{store.NewMemory()}, nil)
	s.SetTheme(ctx, ThemeKids)
	assert.Equal(t, ThemeKids, s.Get().Theme)
}

func TestParseTheme(t *testing.T) {
	for _, name := range []string{"light", "dark", "kids", " Dark "} {
		_, ok := ParseTheme(name)
		assert.True(t, ok, name)
	}
	got, ok := ParseTheme("solarized")
	assert.False(t, ok)
	assert.Equal(t, DefaultTheme, got)
}
