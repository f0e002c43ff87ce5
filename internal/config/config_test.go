package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsWithoutPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 200*time.Millisecond, cfg.PreviewDelay())
}

func TestMissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
preview_delay_ms: 500
log_level: debug
window:
  width: 800
  height: 600
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 500, cfg.PreviewDelayMS)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, float32(800), cfg.Window.Width)
	assert.Equal(t, 500*time.Millisecond, cfg.PreviewDelay())
}

func TestPartialFileKeepsRemainingDefaults(t *testing.T) {
	path := writeConfig(t, "preview_delay_ms: 50\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.PreviewDelayMS)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, Default().Window, cfg.Window)
}

func TestMalformedYAML(t *testing.T) {
	path := writeConfig(t, "preview_delay_ms: [not a number\n")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidation(t *testing.T) {
	cases := map[string]string{
		"negative delay":   "preview_delay_ms: -1\n",
		"unknown level":    "log_level: verbose\n",
		"bad window width": "window:\n  width: 0\n  height: 100\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			assert.Error(t, err)
		})
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}
