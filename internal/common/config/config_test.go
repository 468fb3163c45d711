package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"STUDIO_CONFIG", "PORT", "ENV", "READ_TIMEOUT", "WRITE_TIMEOUT", "LOG_LEVEL", "METRICS",
		"STORAGE", "CORS_ORIGINS", "STUDIO_DB_PATH", "REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB", "REDIS_PREFIX",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "studio.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
port = "8080"
log_level = "debug"
storage = "redis"

[redis]
addr = "cache:6379"
db = 2
`), 0o644))

	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("REDIS_PREFIX", "studio-a")
	t.Setenv("METRICS", "false")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "redis", cfg.Storage)
	assert.Equal(t, "cache:6379", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, "studio-a", cfg.Redis.Prefix)
	assert.False(t, cfg.Metrics)
	assert.Equal(t, "data/db/studio.db", cfg.SQLite.Path)
}

func TestLoadFromEnvPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "studio.toml")
	require.NoError(t, os.WriteFile(path, []byte(`storage = "memory"`), 0o644))
	clearEnv(t)
	t.Setenv("STUDIO_CONFIG", path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "memory", cfg.Storage)
}

func TestLoadBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "studio.toml")
	require.NoError(t, os.WriteFile(path, []byte(`port = `), 0o644))

	clearEnv(t)
	_, err := Load(path)
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestEnvHelpersIgnoreGarbage(t *testing.T) {
	t.Setenv("READ_TIMEOUT", "soon")
	t.Setenv("METRICS", "maybe")
	assert.Equal(t, 10, getEnvAsInt("READ_TIMEOUT", 10))
	assert.True(t, getEnvAsBool("METRICS", true))
}

func TestCORSOrigins(t *testing.T) {
	clearEnv(t)
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Empty(t, cfg.CORSOrigins)

	t.Setenv("CORS_ORIGINS", " http://localhost:5173 , ,https://studio.example ")
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, []string{"http://localhost:5173", "https://studio.example"}, cfg.CORSOrigins)
}
