// Package config loads command settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/bjaus/tabtex"
	"github.com/bjaus/tabtex/internal/debounce"
	"github.com/bjaus/tabtex/internal/highlight"
)

// Config holds settings that do not come from flags. Style is the default
// style after TABTEX_* overrides; a style file and flags apply on top.
type Config struct {
	LogLevel       slog.Level
	StylePath      string
	Debounce       time.Duration
	HighlightStyle string
	Style          tabtex.Style
}

// Load reads a .env file if one exists in the working directory, then the
// environment.
func Load() (*Config, error) {
	// A missing .env file is normal.
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config using getenv for lookups.
func FromEnv(getenv func(string) string) (*Config, error) {
	level, err := parseLevel(getEnv(getenv, "TABTEX_LOG_LEVEL", "warn"))
	if err != nil {
		return nil, err
	}
	wait := debounce.DefaultWait
	if v := getenv("TABTEX_DEBOUNCE"); v != "" {
		wait, err = time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("TABTEX_DEBOUNCE: %w", err)
		}
	}
	st, err := tabtex.StyleFromEnv(tabtex.DefaultStyle(), getenv)
	if err != nil {
		return nil, err
	}
	return &Config{
		LogLevel:       level,
		StylePath:      getEnv(getenv, "TABTEX_STYLE_FILE", ""),
		Debounce:       wait,
		HighlightStyle: getEnv(getenv, "TABTEX_HIGHLIGHT_STYLE", highlight.DefaultStyle),
		Style:          st,
	}, nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return slog.LevelWarn, fmt.Errorf("TABTEX_LOG_LEVEL: %w", err)
	}
	return level, nil
}

func getEnv(getenv func(string) string, key, defaultValue string) string {
	if value := getenv(key); value != "" {
		return value
	}
	return defaultValue
}
