// Package config loads TilTwelve settings from defaults, an optional YAML
// file and TILTWELVE_* environment variables.
package config

import "time"

// Config holds all application configuration.
type Config struct {
	DBPath      string            `mapstructure:"db_path"`
	Log         LogConfig         `mapstructure:"log" validate:"required"`
	Quiz        QuizConfig        `mapstructure:"quiz" validate:"required"`
	Competition CompetitionConfig `mapstructure:"competition" validate:"required"`
}

// LogConfig controls the diagnostic log file.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	// File is the log destination. Empty uses logging.DefaultPath.
	File string `mapstructure:"file"`
}

// QuizConfig tunes the quiz screens.
type QuizConfig struct {
	// TypedDelay is the pause between feedback and the next typed question.
	TypedDelay time.Duration `mapstructure:"typed_delay" validate:"gt=0,lte=10s"`
	// ChoiceDelay is the same pause for multiple choice.
	ChoiceDelay time.Duration `mapstructure:"choice_delay" validate:"gt=0,lte=10s"`
	// ChoiceCount is the number of options shown per question.
	ChoiceCount int `mapstructure:"choice_count" validate:"oneof=4 6"`
}

// CompetitionConfig tunes two-player matches.
type CompetitionConfig struct {
	Rounds int `mapstructure:"rounds" validate:"min=1,max=50"`
}

// Default returns the configuration used when no file or environment
// override is present.
func Default() Config {
	return Config{
		Log: LogConfig{Level: DefaultLogLevel},
		Quiz: QuizConfig{
			TypedDelay:  DefaultTypedDelay,
			ChoiceDelay: DefaultChoiceDelay,
			ChoiceCount: DefaultChoiceCount,
		},
		Competition: CompetitionConfig{Rounds: DefaultCompetitionRounds},
	}
}
