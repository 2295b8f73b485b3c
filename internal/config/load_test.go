package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the config lookup at an empty directory.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "", cfg.DBPath)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
	assert.Equal(t, 1500*time.Millisecond, cfg.Quiz.TypedDelay)
	assert.Equal(t, 2*time.Second, cfg.Quiz.ChoiceDelay)
	assert.Equal(t, 6, cfg.Quiz.ChoiceCount)
	assert.Equal(t, 10, cfg.Competition.Rounds)
}

func TestLoadFromFile(t *testing.T) {
	isolate(t)
	path := writeConfig(t, `
db_path: /tmp/tt.db
log:
  level: debug
quiz:
  choice_count: 4
  typed_delay: 750ms
competition:
  rounds: 5
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/tt.db", cfg.DBPath)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 4, cfg.Quiz.ChoiceCount)
	assert.Equal(t, 750*time.Millisecond, cfg.Quiz.TypedDelay)
	assert.Equal(t, 5, cfg.Competition.Rounds)
}

func TestLoadDiscoversUserConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "tiltwelve"), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "tiltwelve", "config.yaml"),
		[]byte("competition:\n  rounds: 3\n"), 0o600))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Competition.Rounds)
}

func TestEnvOverridesFile(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "log:\n  level: debug\n")
	t.Setenv("TILTWELVE_LOG_LEVEL", "error")
	t.Setenv("TILTWELVE_QUIZ_CHOICE_COUNT", "4")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, 4, cfg.Quiz.ChoiceCount)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad level", "log:\n  level: chatty\n"},
		{"bad choice count", "quiz:\n  choice_count: 5\n"},
		{"zero rounds", "competition:\n  rounds: 0\n"},
		{"huge delay", "quiz:\n  typed_delay: 1m\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	isolate(t)
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestDefaultMatchesLoad(t *testing.T) {
	isolate(t)
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), *cfg)
	require.NoError(t, Validate(ptr(Default())))
}

func ptr[T any](v T) *T { return &v }
