package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/EpicMandM/lhms/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{"LHMS_CONFIG_PATH", "LHMS_LOG_LEVEL", "LHMS_LOG_FILE"}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "") // save original for cleanup
		_ = os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadWithFile("")
	require.NoError(t, err)
	assert.Equal(t, "./lhms.toml", cfg.ConfigPath)
	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.Empty(t, cfg.LogFile)
	assert.Equal(t, logger.LevelInfo, cfg.Level())
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("LHMS_CONFIG_PATH", "/etc/lhms/hotel.toml")
	t.Setenv("LHMS_LOG_LEVEL", "debug")
	t.Setenv("LHMS_LOG_FILE", "/var/log/lhms.log")

	cfg, err := LoadWithFile("")
	require.NoError(t, err)
	assert.Equal(t, "/etc/lhms/hotel.toml", cfg.ConfigPath)
	assert.Equal(t, logger.LevelDebug, cfg.Level())
	assert.Equal(t, "/var/log/lhms.log", cfg.LogFile)
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	clearEnv(t)
	t.Setenv("LHMS_LOG_LEVEL", "chatty")

	_, err := LoadWithFile("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LHMS_LOG_LEVEL is invalid")
}

func TestLoadWithFile_RealEnvFile(t *testing.T) {
	clearEnv(t)
	envFile := filepath.Join(t.TempDir(), ".env")
	content := "LHMS_CONFIG_PATH=/srv/lhms.toml\nLHMS_LOG_LEVEL=WARNING\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o644))

	cfg, err := LoadWithFile(envFile)
	require.NoError(t, err)
	assert.Equal(t, "/srv/lhms.toml", cfg.ConfigPath)
	assert.Equal(t, logger.LevelWarn, cfg.Level())
}

func TestLoadWithFile_NonExistentFile(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadWithFile("/nonexistent/.env")
	require.NoError(t, err)
	assert.Equal(t, "./lhms.toml", cfg.ConfigPath)
}

func TestLoadWithFile_GodotenvError(t *testing.T) {
	// A directory path causes godotenv to return a non-IsNotExist error
	dir := t.TempDir()
	_, err := LoadWithFile(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error loading .env file")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"valid", Config{ConfigPath: "a.toml", LogLevel: "ERROR"}, ""},
		{"empty config path", Config{LogLevel: "INFO"}, "LHMS_CONFIG_PATH must not be empty"},
		{"bad level", Config{ConfigPath: "a.toml", LogLevel: "loud"}, "LHMS_LOG_LEVEL is invalid"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGetEnvOrDefault(t *testing.T) {
	t.Setenv("LHMS_TEST_KEY", "from_env")
	assert.Equal(t, "from_env", getEnvOrDefault("LHMS_TEST_KEY", "fallback"))

	t.Setenv("LHMS_TEST_KEY", "")
	assert.Equal(t, "fallback", getEnvOrDefault("LHMS_TEST_KEY", "fallback"))
}
