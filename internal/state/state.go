// Package state bundles the services every screen needs: preferences,
// statistics, high scores, configuration and the logger. One State is built
// at startup and passed to each screen.
package state

import (
	"context"
	"math/rand/v2"

	"github.com/tiltwelve/tiltwelve/internal/config"
	"github.com/tiltwelve/tiltwelve/internal/i18n"
	"github.com/tiltwelve/tiltwelve/internal/logging"
	"github.com/tiltwelve/tiltwelve/internal/problemgen"
	"github.com/tiltwelve/tiltwelve/internal/scores"
	"github.com/tiltwelve/tiltwelve/internal/settings"
	"github.com/tiltwelve/tiltwelve/internal/stats"
	"github.com/tiltwelve/tiltwelve/internal/store"
	"github.com/tiltwelve/tiltwelve/internal/ui/theme"
)

// State is the application-wide context shared by screens.
type State struct {
	Config   config.Config
	Settings *settings.Service
	Stats    *stats.Service
	Scores   *scores.Service
	Log      *logging.Logger

	// Rand, when set, seeds every generator the screens create.
	Rand func() *rand.Rand

	kv     store.KV
	ctx    context.Context
	loaded bool
}

// New wires the services on kv. Nothing is read until Load.
func New(ctx context.Context, kv store.KV, cfg config.Config, log *logging.Logger) *State {
	if log == nil {
		log = logging.Nop()
	}
	return &State{
		Config:   cfg,
		Settings: settings.NewService(kv, log),
		Stats:    stats.NewService(kv, log),
		Scores:   scores.NewService(kv, log),
		Log:      log,
		kv:       kv,
		ctx:      ctx,
	}
}

// Context returns the context storage calls run under.
func (s *State) Context() context.Context {
	return s.ctx
}

// Load reads preferences and statistics and applies the stored theme.
func (s *State) Load() {
	prefs := s.Settings.Load(s.ctx)
	s.Stats.Load(s.ctx)
	theme.Apply(prefs.Theme)
	s.loaded = true
	s.Log.Info("state loaded", "language", string(prefs.Language), "theme", string(prefs.Theme))
}

// Loaded reports whether Load has completed.
func (s *State) Loaded() bool {
	return s.loaded
}

// T returns a translator for the current language.
func (s *State) T() *i18n.Translator {
	return i18n.New(s.Settings.Get().Language)
}

// SetLanguage switches and persists the language.
func (s *State) SetLanguage(lang i18n.Language) {
	s.Settings.SetLanguage(s.ctx, lang)
}

// SetTheme switches, applies and persists the theme.
func (s *State) SetTheme(t settings.Theme) {
	s.Settings.SetTheme(s.ctx, t)
	theme.Apply(t)
}

// Generator returns a question generator for cfg, seeded from Rand if set.
func (s *State) Generator(cfg problemgen.Config) *problemgen.Generator {
	var rng *rand.Rand
	if s.Rand != nil {
		rng = s.Rand()
	}
	return problemgen.New(cfg, rng)
}

// Reset erases every stored value and returns to defaults.
func (s *State) Reset() error {
	if err := s.kv.Clear(s.ctx); err != nil {
		return err
	}
	s.Log.Info("all data reset")
	s.Load()
	return nil
}
