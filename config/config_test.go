package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "data/asset_inventory.db", cfg.Database.DSN)
	assert.Equal(t, 5, cfg.Scanner.TimeoutSeconds)
	assert.False(t, cfg.Scanner.Enabled)
}

func TestLoadFileWithEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 8080
database:
  driver: postgres
  dsn: postgres://localhost/inventory
scanner:
  enabled: true
  device_path: /dev/barcode0
`), 0o644))

	t.Setenv("PORT", "9090")
	t.Setenv("INVENTORY_DSN", "postgres://db/inventory")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "postgres://db/inventory", cfg.Database.DSN)
	assert.True(t, cfg.Scanner.Enabled)
	assert.Equal(t, "/dev/barcode0", cfg.Scanner.DevicePath)
}
