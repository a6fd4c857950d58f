package common

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultConfig(t *testing.T) {
	config := NewDefaultConfig()

	assert.Equal(t, "development", config.Environment)
	assert.Equal(t, 8080, config.Server.Port)
	assert.Equal(t, "localhost", config.Server.Host)
	assert.Equal(t, 5.0, config.GitHub.RateLimit)
	assert.Equal(t, 30*time.Second, config.GitHub.RequestTimeout)
	assert.Equal(t, "./data", config.Storage.Badger.Path)
	assert.Equal(t, "info", config.Logging.Level)
	assert.True(t, config.Retention.Enabled)
	assert.Equal(t, "0 0 * * *", config.Retention.Schedule)
}

func TestLoadFromFiles_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gitscribe.toml")
	content := `
environment = "production"

[server]
port = 9090

[retention]
enabled = false
max_age = "48h"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	config, err := LoadFromFiles(path)
	require.NoError(t, err)

	assert.Equal(t, "production", config.Environment)
	assert.Equal(t, 9090, config.Server.Port)
	// Unset keys keep their defaults.
	assert.Equal(t, "localhost", config.Server.Host)
	assert.False(t, config.Retention.Enabled)
	assert.Equal(t, 48*time.Hour, config.RetentionMaxAge())
}

func TestLoadFromFiles_MissingFile(t *testing.T) {
	_, err := LoadFromFiles("/nonexistent/gitscribe.toml")
	assert.Error(t, err)
}

func TestLoadFromFiles_EmptyPathsSkipped(t *testing.T) {
	config, err := LoadFromFiles("", "")
	require.NoError(t, err)
	assert.Equal(t, 8080, config.Server.Port)
}

func TestLoadFromFiles_EnvOverrides(t *testing.T) {
	t.Setenv("GITSCRIBE_SERVER_PORT", "7070")
	t.Setenv("GITSCRIBE_GITHUB_TOKEN", "ghp_envtoken")
	t.Setenv("GITSCRIBE_LOG_LEVEL", "debug")

	config, err := LoadFromFiles()
	require.NoError(t, err)

	assert.Equal(t, 7070, config.Server.Port)
	assert.Equal(t, "ghp_envtoken", config.GitHub.Token)
	assert.Equal(t, "debug", config.Logging.Level)
}

func TestApplyFlagOverrides(t *testing.T) {
	config := NewDefaultConfig()

	ApplyFlagOverrides(config, 3000, "0.0.0.0")
	assert.Equal(t, 3000, config.Server.Port)
	assert.Equal(t, "0.0.0.0", config.Server.Host)

	// Zero values leave config untouched.
	ApplyFlagOverrides(config, 0, "")
	assert.Equal(t, 3000, config.Server.Port)
	assert.Equal(t, "0.0.0.0", config.Server.Host)
}

func TestValidateRetentionSchedule(t *testing.T) {
	assert.NoError(t, ValidateRetentionSchedule("0 0 * * *"))
	assert.NoError(t, ValidateRetentionSchedule("@daily"))
	assert.Error(t, ValidateRetentionSchedule(""))
	assert.Error(t, ValidateRetentionSchedule("not a schedule"))
}

func TestRetentionMaxAge(t *testing.T) {
	config := NewDefaultConfig()
	assert.Equal(t, 720*time.Hour, config.RetentionMaxAge())

	config.Retention.MaxAge = "24h"
	assert.Equal(t, 24*time.Hour, config.RetentionMaxAge())

	config.Retention.MaxAge = "garbage"
	assert.Equal(t, 720*time.Hour, config.RetentionMaxAge())

	config.Retention.MaxAge = "-1h"
	assert.Equal(t, 720*time.Hour, config.RetentionMaxAge())
}

func TestIsProduction(t *testing.T) {
	config := NewDefaultConfig()
	assert.False(t, config.IsProduction())

	config.Environment = "production"
	assert.True(t, config.IsProduction())
}
