package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err, "missing config file falls back to defaults")

	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "builtin", cfg.Catalog.Source)
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
server:
  address: ":9090"
  shutdown_timeout: 5s
logging:
  level: debug
  format: json
catalog:
  source: postgres
database:
  url: postgres://localhost/duel
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Address)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "postgres", cfg.Catalog.Source)
	assert.Equal(t, "postgres://localhost/duel", cfg.Database.URL)
}

func TestLoadRejectsUnknownCatalogSource(t *testing.T) {
	path := writeConfig(t, "catalog:\n  source: carrier-pigeon\n")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRequiresDatabaseURLForPostgres(t *testing.T) {
	path := writeConfig(t, "catalog:\n  source: postgres\n")

	_, err := Load(path)
	assert.Error(t, err)
}
