// Package settings loads and saves the user's preferences: language,
// colour theme and whether the study table hides its answers.
package settings

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"github.com/tiltwelve/tiltwelve/internal/i18n"
	"github.com/tiltwelve/tiltwelve/internal/logging"
	"github.com/tiltwelve/tiltwelve/internal/store"
)

// Theme names a colour palette.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
	ThemeKids  Theme = "kids"
)

// DefaultTheme is used when no valid theme is stored.
const DefaultTheme = ThemeLight

// Themes lists the palettes in menu order.
var Themes = []Theme{ThemeLight, ThemeDark, ThemeKids}

// ParseTheme returns the theme named s, or DefaultTheme and false.
func ParseTheme(s string) (Theme, bool) {
	switch t := Theme(strings.ToLower(strings.TrimSpace(s))); t {
	case ThemeLight, ThemeDark, ThemeKids:
		return t, true
	default:
		return DefaultTheme, false
	}
}

// Preferences is a snapshot of every setting.
type Preferences struct {
	Language    i18n.Language
	Theme       Theme
	HideAnswers bool
}

// Defaults returns the preferences of a fresh install.
func Defaults() Preferences {
	return Preferences{Language: i18n.Default, Theme: DefaultTheme}
}

// Service keeps the current preferences and writes changes through to kv.
type Service struct {
	mu    sync.RWMutex
	prefs Preferences
	kv    store.KV
	log   *logging.Logger
}

// NewService returns a service holding the defaults. Call Load before use.
func NewService(kv store.KV, log *logging.Logger) *Service {
	if log == nil {
		log = logging.Nop()
	}
	return &Service{prefs: Defaults(), kv: kv, log: log.With("component", "settings")}
}

// Load reads every preference from storage. Missing, unreadable or unknown
// values keep their defaults.
func (s *Service) Load(ctx context.Context) Preferences {
	p := Defaults()

	if raw, ok := s.read(ctx, store.KeyLanguage); ok {
		if lang, valid := i18n.Parse(raw); valid {
			p.Language = lang
		} else {
			s.log.Warn("unknown language, using default", "value", raw)
		}
	}
	if raw, ok := s.read(ctx, store.KeyTheme); ok {
		if t, valid := ParseTheme(raw); valid {
			p.Theme = t
		} else {
			s.log.Warn("unknown theme, using default", "value", raw)
		}
	}
	if raw, ok := s.read(ctx, store.KeyHideAnswers); ok {
		if b, err := strconv.ParseBool(strings.TrimSpace(raw)); err == nil {
			p.HideAnswers = b
		} else {
			s.log.Warn("malformed hideAnswers, using default", "value", raw)
		}
	}

	s.mu.Lock()
	s.prefs = p
	s.mu.Unlock()
	return p
}

// Get returns the current preferences.
func (s *Service) Get() Preferences {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prefs
}

// SetLanguage changes the language and persists it.
func (s *Service) SetLanguage(ctx context.Context, lang i18n.Language) {
	s.mu.Lock()
	s.prefs.Language = lang
	s.mu.Unlock()
	s.write(ctx, store.KeyLanguage, string(lang))
}

// SetTheme changes the theme and persists it.
func (s *Service) SetTheme(ctx context.Context, t Theme) {
	s.mu.Lock()
	s.prefs.Theme = t
	s.mu.Unlock()
	s.write(ctx, store.KeyTheme, string(t))
}

// ToggleHideAnswers flips the hideAnswers flag, persists it and returns the
// new value.
func (s *Service) ToggleHideAnswers(ctx context.Context) bool {
	s.mu.Lock()
	s.prefs.HideAnswers = !s.prefs.HideAnswers
	v := s.prefs.HideAnswers
	s.mu.Unlock()
	s.write(ctx, store.KeyHideAnswers, strconv.FormatBool(v))
	return v
}

func (s *Service) read(ctx context.Context, key string) (string, bool) {
	raw, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		s.log.Warn("read setting", "key", key, "error", err)
		return "", false
	}
	return raw, ok
}

func (s *Service) write(ctx context.Context, key, value string) {
	if err := s.kv.Set(ctx, key, value); err != nil {
		s.log.Warn("save setting", "key", key, "error", err)
	}
}
