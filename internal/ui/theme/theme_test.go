package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tiltwelve/tiltwelve/internal/settings"
)

func TestApplySwitchesPalette(t *testing.T) {
	t.Cleanup(func() { Apply(settings.DefaultTheme) })

	Apply(settings.ThemeDark)
	assert.Equal(t, settings.ThemeDark, Current())
	assert.Equal(t, PaletteFor(settings.ThemeDark).Primary, Primary)

	Apply(settings.ThemeKids)
	assert.Equal(t, PaletteFor(settings.ThemeKids).Text, Text)
}

func TestApplyUnknownFallsBack(t *testing.T) {
	t.Cleanup(func() { Apply(settings.DefaultTheme) })

	Apply(settings.Theme("neon"))
	assert.Equal(t, settings.ThemeLight, Current())
	assert.Equal(t, PaletteFor(settings.ThemeLight).Primary, Primary)
}

func TestEveryThemeHasPalette(t *testing.T) {
	for _, th := range settings.Themes {
		_, ok := palettes[th]
		assert.True(t, ok, "missing palette for %s", th)
	}
}
