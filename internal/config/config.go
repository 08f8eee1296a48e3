// Package config resolves runtime configuration: data directory, storage
// backend and log level. Precedence: environment variables, then the
// config file under XDG_CONFIG_HOME, then defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Backend names a persistence gateway implementation.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Config is the resolved runtime configuration.
type Config struct {
	DataDir  string `yaml:"data_dir,omitempty"`
	Backend  string `yaml:"backend,omitempty"`
	LogLevel string `yaml:"log_level,omitempty"`
}

const (
	configDir  = "primdb"
	configFile = "config.yml"
)

// Path returns the config file location. Respects XDG_CONFIG_HOME,
// defaults to ~/.config/primdb/config.yml.
func Path() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, configDir, configFile)
}

// DefaultDataDir returns ~/.primdb.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".primdb"
	}
	return filepath.Join(home, ".primdb")
}

// Load resolves the configuration. A missing config file is not an error;
// a malformed one is.
func Load() (*Config, error) {
	cfg := &Config{}

	if path := Path(); path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
	}

	if v := os.Getenv("PRIMDB_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("PRIMDB_BACKEND"); v != "" {
		cfg.Backend = v
	}
	if v := os.Getenv("PRIMDB_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	if cfg.DataDir == "" {
		cfg.DataDir = DefaultDataDir()
	}
	if cfg.Backend == "" {
		cfg.Backend = BackendFile
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}

	switch cfg.Backend {
	case BackendFile, BackendSQLite, BackendMemory:
	default:
		return nil, fmt.Errorf("unknown backend %q (want file, sqlite or memory)", cfg.Backend)
	}

	return cfg, nil
}
