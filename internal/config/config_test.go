package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
server:
  port: 9090
  host: "0.0.0.0"

storage:
  type: "memory"
  mongo_url: "mongodb://db.internal:27017"
  database: "leads_test"
  timeout_seconds: 3

log:
  level: "debug"

export:
  dir: "/var/exports"
  s3_bucket: "orgainse-exports"
`
	err := os.WriteFile(configPath, []byte(configContent), 0644)
	require.NoError(t, err)

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)

	assert.Equal(t, "memory", cfg.Storage.Type)
	assert.Equal(t, "mongodb://db.internal:27017", cfg.Storage.MongoURL)
	assert.Equal(t, "leads_test", cfg.Storage.Database)
	assert.Equal(t, 3*time.Second, cfg.Storage.Timeout())

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/var/exports", cfg.Export.Dir)
	assert.Equal(t, "orgainse-exports", cfg.Export.S3Bucket)
}

func TestLoadDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	err := os.WriteFile(configPath, []byte("server:\n  host: \"127.0.0.1\"\n"), 0644)
	require.NoError(t, err)

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, 8001, cfg.Server.Port)
	assert.Equal(t, "mongo", cfg.Storage.Type)
	assert.Equal(t, DefaultMongoURL, cfg.Storage.MongoURL)
	assert.Equal(t, DefaultDBName, cfg.Storage.Database)
	assert.Equal(t, 10*time.Second, cfg.Storage.Timeout())
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, ".", cfg.Export.Dir)
	assert.Empty(t, cfg.Export.S3Bucket)
}

func TestLoadFromEnv(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
storage:
  mongo_url: "mongodb://file-host:27017"
  database: "file_db"
`
	err := os.WriteFile(configPath, []byte(configContent), 0644)
	require.NoError(t, err)

	t.Setenv("MONGO_URL", "mongodb://env-host:27017")
	t.Setenv("DB_NAME", "env_db")
	t.Setenv("PORT", "9191")

	cfg, err := LoadFromEnv(configPath)
	require.NoError(t, err)

	assert.Equal(t, "mongodb://env-host:27017", cfg.Storage.MongoURL)
	assert.Equal(t, "env_db", cfg.Storage.Database)
	assert.Equal(t, 9191, cfg.Server.Port)
}

func TestLoadFromEnv_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("MONGO_URL", "")
	t.Setenv("DB_NAME", "")

	cfg, err := LoadFromEnv(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultMongoURL, cfg.Storage.MongoURL)
	assert.Equal(t, DefaultDBName, cfg.Storage.Database)
}

func TestLoadFileNotFound(t *testing.T) {
	_, err := Load("/nonexistent/path/config.yaml")
	assert.Error(t, err)
}

func TestLoadMalformedYAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("server: [unclosed"), 0644))

	_, err := LoadFromEnv(configPath)
	assert.Error(t, err)
}

func TestGetHost_EnvOverride(t *testing.T) {
	t.Setenv("ECS_CONTAINER_METADATA_URI", "")
	t.Setenv("AWS_EXECUTION_ENV", "")
	t.Setenv("SERVER_HOST", "10.0.0.5")

	assert.Equal(t, "10.0.0.5", ServerConfig{Host: "localhost"}.GetHost())
}
