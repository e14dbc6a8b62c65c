package service

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

const backupTimeLayout = "20060102_150405"

// HotelConfig holds what the operator sees in the menu.
type HotelConfig struct {
	Name string `toml:"name"`
}

// StorageConfig decides where snapshot and backup files go.
type StorageConfig struct {
	Prefix  string `toml:"prefix"`
	FixedID string `toml:"fixed_id"`
	DataDir string `toml:"data_dir"`
}

// FeatureConfig holds user-facing settings of the register.
// Source: TOML configuration file. Keys left out keep their defaults.
type FeatureConfig struct {
	Hotel   HotelConfig   `toml:"hotel"`
	Storage StorageConfig `toml:"storage"`
}

func DefaultFeatureConfig() *FeatureConfig {
	return &FeatureConfig{
		Hotel: HotelConfig{Name: "LANGHAM"},
		Storage: StorageConfig{
			Prefix:  "LHMS",
			FixedID: "850003525",
			DataDir: ".",
		},
	}
}

// LoadFeatureConfig loads feature configuration from a TOML file. A missing
// file is not an error: the defaults are returned.
func LoadFeatureConfig(path string) (*FeatureConfig, error) {
	cfg := DefaultFeatureConfig()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to load feature config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("failed to load feature config: %w", err)
	}
	return cfg, nil
}

// Validate rejects settings that would produce unusable file names.
func (c *FeatureConfig) Validate() error {
	if c.Hotel.Name == "" {
		return fmt.Errorf("hotel.name is required")
	}
	if c.Storage.Prefix == "" {
		return fmt.Errorf("storage.prefix is required")
	}
	if c.Storage.FixedID == "" {
		return fmt.Errorf("storage.fixed_id is required")
	}
	if c.Storage.DataDir == "" {
		c.Storage.DataDir = "."
	}
	return nil
}

// DataFile is the path of the snapshot file, e.g. ./LHMS_850003525.txt.
func (c *StorageConfig) DataFile() string {
	return filepath.Join(c.DataDir, fmt.Sprintf("%s_%s.txt", c.Prefix, c.FixedID))
}

// BackupFile is the path of the backup taken at the given second.
func (c *StorageConfig) BackupFile(at time.Time) string {
	name := fmt.Sprintf("%s_%s_Backup_%s.txt", c.Prefix, c.FixedID, at.Format(backupTimeLayout))
	return filepath.Join(c.DataDir, name)
}

// ensureDataDir creates the data directory when it is missing.
func (c *StorageConfig) ensureDataDir() error {
	if c.DataDir == "" || c.DataDir == "." {
		return nil
	}
	return os.MkdirAll(c.DataDir, 0o750)
}
