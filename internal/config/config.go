// Package config handles loading the curio config.toml file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config represents the config.toml configuration file.
type Config struct {
	// DataDir overrides the default library data directory.
	DataDir string `toml:"data-dir"`

	// Backup contains backup-related configuration.
	Backup Backup `toml:"backup"`
}

// Backup contains backup-related configuration.
type Backup struct {
	// OnSave controls whether each save also writes a backup of the
	// previous data file. Defaults to true.
	OnSave *bool `toml:"on-save"`
}

// BackupOnSave reports whether saves should back up the previous data
// file.
func (cfg *Config) BackupOnSave() bool {
	if cfg.Backup.OnSave == nil {
		return true
	}
	return *cfg.Backup.OnSave
}

// Path returns the location of the global config file.
func Path() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "curio", "config.toml"), nil
}

// Load loads configuration from the global config file. Returns an
// empty config if the file does not exist.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return loadConfigFile(path)
}

// LoadFile loads configuration from a specific path.
func LoadFile(path string) (*Config, error) {
	return loadConfigFile(path)
}

func loadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	cfg.DataDir = strings.TrimSpace(cfg.DataDir)

	return &cfg, nil
}
