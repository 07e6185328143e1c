package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds runtime settings, all optional. Values come from the
// environment, with a .env file in the working directory loaded first.
type Config struct {
	// DBPath overrides the default database location.
	DBPath string `env:"MENTALGYM_DB"`

	// PacksDir is an optional directory of topic pack files loaded in
	// addition to the built-in topics.
	PacksDir string `env:"MENTALGYM_PACKS"`

	// LogFile enables logging to the given file when set.
	LogFile string `env:"MENTALGYM_LOG"`

	// LogLevel is the minimum level written to the log file.
	LogLevel string `env:"MENTALGYM_LOG_LEVEL" envDefault:"info"`
}

// Load reads configuration from a .env file (if present) and the environment.
func Load() (Config, error) {
	// A missing .env file is fine; the environment still applies.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field values that env parsing cannot.
func (c Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
		return nil
	}
	return fmt.Errorf("invalid log level %q", c.LogLevel)
}
