package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variable overrides.
const EnvPrefix = "TILTWELVE"

// Defaults mirrored by Load when nothing else is configured.
const (
	DefaultLogLevel          = "info"
	DefaultTypedDelay        = 1500 * time.Millisecond
	DefaultChoiceDelay       = 2 * time.Second
	DefaultChoiceCount       = 6
	DefaultCompetitionRounds = 10
)

// Load reads configuration. When configFile is empty the YAML file is looked
// up in the user config dir and may be absent; an explicit file must exist.
// Environment variables take precedence over file values.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("db_path", "")
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.file", "")
	v.SetDefault("quiz.typed_delay", DefaultTypedDelay)
	v.SetDefault("quiz.choice_delay", DefaultChoiceDelay)
	v.SetDefault("quiz.choice_count", DefaultChoiceCount)
	v.SetDefault("competition.rounds", DefaultCompetitionRounds)

	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configFile, err)
		}
	} else {
		v.SetConfigName("config")
		if dir, err := configDir(); err == nil {
			v.AddConfigPath(dir)
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks struct-tag constraints on cfg.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// configDir returns $XDG_CONFIG_HOME/tiltwelve or ~/.config/tiltwelve.
func configDir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "tiltwelve"), nil
}
