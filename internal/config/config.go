// Package config reads settings from the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/ZygmuntJakub/wizard/internal/engine"
)

type Config struct {
	HTTPPort        string
	LogLevel        zerolog.Level
	DecisionTimeout time.Duration
	Workers         int
	MaxGames        int
}

// Load reads the given .env files (".env" when none are named) into the
// process environment, ignoring missing files, then parses the settings.
// Variables already set in the environment win over the files.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return FromEnv()
}

// FromEnv parses the settings from the environment alone.
func FromEnv() (Config, error) {
	cfg := Config{
		HTTPPort:        getEnv("HTTP_PORT", "1337"),
		DecisionTimeout: engine.DefaultDecisionTimeout,
		MaxGames:        10000,
	}

	lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	cfg.LogLevel = lvl

	if v := os.Getenv("WIZARD_DECISION_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("WIZARD_DECISION_TIMEOUT: invalid duration %q", v)
		}
		cfg.DecisionTimeout = d
	}
	if cfg.Workers, err = getInt("WIZARD_WORKERS", 0); err != nil {
		return Config{}, err
	}
	if cfg.MaxGames, err = getInt("WIZARD_MAX_GAMES", cfg.MaxGames); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getInt(k string, def int) (int, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%s: invalid non-negative integer %q", k, v)
	}
	return n, nil
}
