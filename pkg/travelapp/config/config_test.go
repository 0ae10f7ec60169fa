package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// noDotEnv points Load at an empty dotenv file so tests never pick up a
// developer's .env.
func noDotEnv(t *testing.T) []string {
	return []string{writeFile(t, t.TempDir(), ".env", "")}
}

func TestDefaults(t *testing.T) {
	t.Setenv(PathEnvVar, "")

	cfg, err := Load("", noDotEnv(t)...)
	require.NoError(t, err)

	assert.Equal(t, "Travel", cfg.WindowTitle)
	assert.Equal(t, 5*time.Second, cfg.AdvanceInterval)
	assert.Equal(t, uint32(0x29B573), cfg.AccentColorHex())
	assert.False(t, cfg.IsDevMode())
	assert.Empty(t, cfg.DeckPath)
	assert.Equal(t, "assets/images", cfg.ImageDir)
}

func TestLoadFileThenEnvironment(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "travelapp.toml", `
window_title = "Wanderlust"
advance_interval = "3s"
log_level = "debug"
deck_path = "decks/summer.toml"
accent_color = "#112233"
`)

	t.Setenv("TRAVELAPP_ADVANCE_INTERVAL", "7s")
	t.Setenv("ENVIRONMENT", "DEV")

	cfg, err := Load(path, noDotEnv(t)...)
	require.NoError(t, err)

	assert.Equal(t, "Wanderlust", cfg.WindowTitle, "file value kept when env unset")
	assert.Equal(t, 7*time.Second, cfg.AdvanceInterval, "env overrides file")
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "decks/summer.toml", cfg.DeckPath)
	assert.Equal(t, uint32(0x112233), cfg.AccentColorHex())
	assert.True(t, cfg.IsDevMode())
}

func TestLoadPathFromEnvironment(t *testing.T) {
	path := writeFile(t, t.TempDir(), "cfg.toml", `window_title = "From Env Path"`)
	t.Setenv(PathEnvVar, path)

	cfg, err := Load("", noDotEnv(t)...)
	require.NoError(t, err)
	assert.Equal(t, "From Env Path", cfg.WindowTitle)
}

func TestLoadDotEnv(t *testing.T) {
	dotenv := writeFile(t, t.TempDir(), ".env", "TRAVELAPP_WINDOW_TITLE=Dotenv Title\n")
	t.Cleanup(func() { os.Unsetenv("TRAVELAPP_WINDOW_TITLE") })
	t.Setenv(PathEnvVar, "")

	cfg, err := Load("", dotenv)
	require.NoError(t, err)
	assert.Equal(t, "Dotenv Title", cfg.WindowTitle)

	_, err = Load("", filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err, "explicit dotenv files must exist")
}

func TestLoadErrors(t *testing.T) {
	t.Setenv(PathEnvVar, "")

	t.Run("unknown key", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "bad.toml", `colour = "red"`)
		_, err := Load(path, noDotEnv(t)...)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "colour")
	})

	t.Run("invalid interval", func(t *testing.T) {
		t.Setenv("TRAVELAPP_ADVANCE_INTERVAL", "0s")
		_, err := Load("", noDotEnv(t)...)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "advance_interval")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.toml"), noDotEnv(t)...)
		require.Error(t, err)
	})

	t.Run("button device without code", func(t *testing.T) {
		t.Setenv("TRAVELAPP_BUTTON_DEVICE", "/dev/input/event3")
		_, err := Load("", noDotEnv(t)...)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "button_code")
	})
}

func TestParseLogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		" error ": slog.LevelError,
	}
	for raw, want := range cases {
		level, ok := ParseLogLevel(raw)
		assert.True(t, ok, raw)
		assert.Equal(t, want, level, raw)
	}

	level, ok := ParseLogLevel("verbose")
	assert.False(t, ok)
	assert.Equal(t, slog.LevelInfo, level)
}

func TestParseHexColor(t *testing.T) {
	for _, raw := range []string{"#29B573", "29b573", "0x29B573"} {
		v, err := ParseHexColor(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, uint32(0x29B573), v, raw)
	}

	for _, raw := range []string{"", "#123", "#GGGGGG", "#1234567"} {
		_, err := ParseHexColor(raw)
		assert.Error(t, err, raw)
	}
}
