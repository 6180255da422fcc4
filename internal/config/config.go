package config

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds defaults shared by the command-line tools. Flags override them.
type Config struct {
	Lang     string  `env:"FITTRACKER_LANG" envDefault:"en"`
	Format   string  `env:"FITTRACKER_FORMAT" envDefault:"csv"`
	WeightKG float64 `env:"FITTRACKER_WEIGHT_KG"`
	HeightCM float64 `env:"FITTRACKER_HEIGHT_CM"`
	LogLevel string  `env:"FITTRACKER_LOG_LEVEL" envDefault:"info"`
}

// Load reads envFile (when set) into the process environment and parses the
// FITTRACKER_* variables. Variables already set take precedence over the file.
func Load(envFile string) (*Config, error) {
	if strings.TrimSpace(envFile) != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

// Logger returns a text logger writing to w at the configured level.
func (c *Config) Logger(w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), nil
}
