package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_DefaultsWhenFileAbsent(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Mode)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Database.URI)
	assert.Equal(t, "studytrack", cfg.Database.Name)
	assert.Equal(t, "8090", cfg.Dashboard.Port)
	assert.Equal(t, "http://localhost:8080", cfg.Dashboard.APIBaseURL)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, 10*time.Second, cfg.ConnectTimeout())
}

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: "9000"
database:
  name: studytrack_test
  connect_timeout: 3s
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "studytrack_test", cfg.Database.Name)
	assert.Equal(t, 3*time.Second, cfg.ConnectTimeout())
	// untouched keys keep their defaults
	assert.Equal(t, "mongodb://localhost:27017", cfg.Database.URI)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("database:\n  uri: mongodb://filehost:27017\n"), 0o644))

	t.Setenv("MONGO_URI", "mongodb://envhost:27017")
	t.Setenv("DB_NAME", "from_env")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "mongodb://envhost:27017", cfg.Database.URI)
	assert.Equal(t, "from_env", cfg.Database.Name)
}

func TestLoadConfig_RejectsBadTimeout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("database:\n  connect_timeout: soon\n"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}
