// Package config loads runtime settings from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds settings shared by the play and serve commands. Command-line
// flags take precedence over these values.
type Config struct {
	// DBPath is a SQLite file path or a postgres:// DSN. Empty means the
	// default data directory.
	DBPath string `env:"BIASCHECK_DB"`

	// BankPath points to a YAML question bank. Empty means the built-in bank.
	BankPath string `env:"BIASCHECK_BANK"`

	Addr    string `env:"BIASCHECK_ADDR" envDefault:":8080"`
	GinMode string `env:"GIN_MODE" envDefault:"release"`
}

// Load reads .env files (if present) into the process environment and
// parses Config from it. Variables already set are not overridden.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}
