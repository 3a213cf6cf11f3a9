package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 1.0, cfg.Server.ExportRateLimit)
	assert.Equal(t, "light", cfg.Theme.Default)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Empty(t, cfg.Catalog.Path)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	content := `
server:
  port: 9191
theme:
  default: dark
catalog:
  path: /opt/pulseboard/catalog.yaml
log:
  level: debug
  format: console
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pulseboard.yaml"), []byte(content), 0o644))
	t.Chdir(dir)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9191, cfg.Server.Port)
	assert.Equal(t, "dark", cfg.Theme.Default)
	assert.Equal(t, "/opt/pulseboard/catalog.yaml", cfg.Catalog.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PULSEBOARD_SERVER_PORT", "7070")
	t.Setenv("PULSEBOARD_THEME_DEFAULT", "dark")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "dark", cfg.Theme.Default)
}

func TestInitLoggerBadLevel(t *testing.T) {
	err := InitLogger(LogConfig{Level: "chatty", Format: "json"})
	assert.Error(t, err)
}

func TestInitLogger(t *testing.T) {
	require.NoError(t, InitLogger(LogConfig{Level: "warn", Format: "console"}))
}
