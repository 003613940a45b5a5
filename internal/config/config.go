package config

import (
	"errors"
	"fmt"
	"go-hangman/internal/state"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Config holds the settings of one game process.
type Config struct {
	Word     string `env:"HANGMAN_WORD" envDefault:"banana"`
	WordFile string `env:"HANGMAN_WORD_FILE"`
	MaxTries int    `env:"HANGMAN_MAX_TRIES" envDefault:"6"`
	LogFile  string `env:"HANGMAN_LOG_FILE" envDefault:"hangman.log"`
	LogLevel string `env:"HANGMAN_LOG_LEVEL" envDefault:"info"`
}

// Load reads optional dotenv files, then the environment.
// Variables already set in the environment win over dotenv values.
func Load(dotenvFiles ...string) (Config, error) {
	if err := godotenv.Load(dotenvFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load dotenv: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate checks the settings that do not depend on the file system.
func (c Config) Validate() error {
	if c.WordFile == "" {
		if err := state.ValidateTarget(c.Word); err != nil {
			return fmt.Errorf("invalid word: %w", err)
		}
	}
	if c.MaxTries <= 0 {
		return fmt.Errorf("%w: got %d", state.ErrInvalidMaxTries, c.MaxTries)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return nil
}
