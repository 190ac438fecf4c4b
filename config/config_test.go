package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, DriverMemory, cfg.Database.Driver)
	assert.Equal(t, "default-user-id", cfg.App.DefaultUserID)
	assert.True(t, cfg.Seed.Enabled)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
}

func TestLoadConfig_ExternalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	content := []byte("server:\n  port: \"9090\"\n  mode: release\ndatabase:\n  driver: sqlite\n  path: /tmp/fintrack-test.db\nseed:\n  enabled: false\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	// 端口自动补全冒号
	assert.Equal(t, ":9090", cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "/tmp/fintrack-test.db", cfg.Database.Path)
	assert.False(t, cfg.Seed.Enabled)
	// 未覆盖的字段保持默认
	assert.Equal(t, "default-user-id", cfg.App.DefaultUserID)
}

func TestLoadConfig_MissingExternalFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("FINTRACK_APP_DEFAULT_USER_ID", "env-user")
	t.Setenv("FINTRACK_RATE_LIMIT_MAX_REQUESTS", "5")
	t.Setenv("FINTRACK_RATE_LIMIT_ENABLED", "false")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "env-user", cfg.App.DefaultUserID)
	assert.Equal(t, 5, cfg.RateLimit.MaxRequests)
	assert.False(t, cfg.RateLimit.Enabled)
}

func TestLoadConfig_InvalidDriver(t *testing.T) {
	t.Setenv("FINTRACK_DATABASE_DRIVER", "oracle")

	_, err := LoadConfig("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "oracle")
}

func TestValidate(t *testing.T) {
	cfg := &Config{
		Server:   ServerConfig{Mode: "debug"},
		Database: DatabaseConfig{Driver: DriverSQLite},
	}
	assert.Error(t, cfg.Validate())

	cfg.Database.Path = "x.db"
	assert.NoError(t, cfg.Validate())

	cfg.Server.Mode = "verbose"
	assert.Error(t, cfg.Validate())
}
