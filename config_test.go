package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))

	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoadConfigDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	config, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 3000, config.Port)
	assert.Equal(t, "sqlite:////tmp/test.db", config.Database.Url)
	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "*", config.Cors.AllowOrigins)
	assert.False(t, config.Prefork)
}

func TestLoadConfigEnvironment(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("PORT", "8080")
	t.Setenv("DATABASE_URL", "postgres://swapi:secret@db:5432/swapi")
	t.Setenv("LOG_LEVEL", "debug")

	config, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 8080, config.Port)
	assert.Equal(t, "postgres://swapi:secret@db:5432/swapi", config.Database.Url)
	assert.Equal(t, "debug", config.Log.Level)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	data := `{
    "port": 4000,
    "database": {
        "url": "sqlite:///swapi.db",
        "max_idle_connections": 5,
        "max_open_connections": 20
    }
}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "service_conf.json"), []byte(data), 0o600))

	config, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 4000, config.Port)
	assert.Equal(t, "sqlite:///swapi.db", config.Database.Url)
	assert.Equal(t, 5, config.Database.MaxIdleConnections)
	assert.Equal(t, 20, config.Database.MaxOpenConnections)
	assert.Equal(t, "json", config.Log.Format)
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
