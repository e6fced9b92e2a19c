package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var keys = []string{"HTTP_PORT", "LOG_LEVEL", "WIZARD_DECISION_TIMEOUT", "WIZARD_WORKERS", "WIZARD_MAX_GAMES"}

// clearEnv empties every setting for the duration of the test.
func clearEnv(t *testing.T) {
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, Config{
		HTTPPort:        "1337",
		LogLevel:        zerolog.InfoLevel,
		DecisionTimeout: 2 * time.Second,
		Workers:         0,
		MaxGames:        10000,
	}, cfg)
}

func TestFromEnv(t *testing.T) {
	type tc struct {
		name string
		run  func(t *testing.T)
	}
	for _, tt := range []tc{
		{"overrides", func(t *testing.T) {
			t.Setenv("HTTP_PORT", "8080")
			t.Setenv("LOG_LEVEL", "debug")
			t.Setenv("WIZARD_DECISION_TIMEOUT", "150ms")
			t.Setenv("WIZARD_WORKERS", "3")
			t.Setenv("WIZARD_MAX_GAMES", "50")
			cfg, err := FromEnv()
			require.NoError(t, err)
			assert.Equal(t, "8080", cfg.HTTPPort)
			assert.Equal(t, zerolog.DebugLevel, cfg.LogLevel)
			assert.Equal(t, 150*time.Millisecond, cfg.DecisionTimeout)
			assert.Equal(t, 3, cfg.Workers)
			assert.Equal(t, 50, cfg.MaxGames)
		}},
		{"bad level", func(t *testing.T) {
			t.Setenv("LOG_LEVEL", "loud")
			_, err := FromEnv()
			assert.ErrorContains(t, err, "LOG_LEVEL")
		}},
		{"bad timeout", func(t *testing.T) {
			t.Setenv("WIZARD_DECISION_TIMEOUT", "-1s")
			_, err := FromEnv()
			assert.ErrorContains(t, err, "WIZARD_DECISION_TIMEOUT")
		}},
		{"bad workers", func(t *testing.T) {
			t.Setenv("WIZARD_WORKERS", "many")
			_, err := FromEnv()
			assert.ErrorContains(t, err, "WIZARD_WORKERS")
		}},
	} {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			tt.run(t)
		})
	}
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("HTTP_PORT=9000\nWIZARD_MAX_GAMES=7\n"), 0o600))
	t.Setenv("WIZARD_MAX_GAMES", "8")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.HTTPPort)
	assert.Equal(t, 8, cfg.MaxGames, "environment wins over the file")
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.env"))
	require.NoError(t, err)
	assert.Equal(t, "1337", cfg.HTTPPort)
}
