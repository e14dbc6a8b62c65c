package config

import (
	"fmt"
	"os"

	"github.com/EpicMandM/lhms/internal/logger"
	"github.com/joho/godotenv"
)

const defaultConfigPath = "./lhms.toml"

type Config struct {
	ConfigPath string
	LogLevel   string
	LogFile    string
}

// LoadWithFile loads configuration from an optional .env file and environment
// variables. An empty envFile reads the environment only.
func LoadWithFile(envFile string) (*Config, error) {
	// A missing .env file is fine; every setting has a default.
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	cfg := &Config{
		ConfigPath: getEnvOrDefault("LHMS_CONFIG_PATH", defaultConfigPath),
		LogLevel:   getEnvOrDefault("LHMS_LOG_LEVEL", "INFO"),
		LogFile:    os.Getenv("LHMS_LOG_FILE"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that every setting is usable.
func (c *Config) Validate() error {
	if c.ConfigPath == "" {
		return fmt.Errorf("LHMS_CONFIG_PATH must not be empty")
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("LHMS_LOG_LEVEL is invalid: %w", err)
	}
	return nil
}

// Level returns the parsed log level. Validate has already rejected bad names.
func (c *Config) Level() logger.Level {
	level, _ := logger.ParseLevel(c.LogLevel)
	return level
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
