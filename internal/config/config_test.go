package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/numguess/internal/domain"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Length)
	assert.Equal(t, "number", cfg.Mode)
	assert.Equal(t, slog.LevelWarn, cfg.Level())
	require.NoError(t, cfg.Validate())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("NUMGUESS_SEED", "42")
	t.Setenv("NUMGUESS_LENGTH", "8")
	t.Setenv("NUMGUESS_MODE", "hint")
	t.Setenv("NUMGUESS_LOG_LEVEL", "debug")
	t.Setenv("NUMGUESS_NO_COLOR", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 8, cfg.Length)
	assert.True(t, cfg.NoColor)
	assert.Equal(t, slog.LevelDebug, cfg.Level())
	mode, err := cfg.WinMode()
	require.NoError(t, err)
	assert.Equal(t, domain.WinHint, mode)
}

func TestLoadBadEnv(t *testing.T) {
	t.Setenv("NUMGUESS_LENGTH", "many")
	_, err := Load()
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	assert.Error(t, Config{Length: 9}.Validate())
	assert.Error(t, Config{Length: 0}.Validate())
	assert.Error(t, Config{Length: 3, Mode: "bits"}.Validate())
	assert.NoError(t, Config{Length: 3, Mode: "Hint"}.Validate())
}
