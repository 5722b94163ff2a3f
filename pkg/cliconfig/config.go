// Package cliconfig loads guidctl configuration from its config file and
// GUIDCTL_* environment variables, with defaults for everything else.
// Precedence, lowest to highest: defaults, file, environment, flags
// (flags are applied by the cli layer).
package cliconfig

import (
	"os"
	"path/filepath"
)

const (
	// ConfigDirName is the directory under the user config dir.
	ConfigDirName = "guidctl"

	// ConfigFileName is the default config file name.
	ConfigFileName = "config.yaml"

	// HistoryFileName is the default history database file name.
	HistoryFileName = "history.db"

	// EnvPrefix is the prefix for configuration environment variables.
	EnvPrefix = "GUIDCTL_"

	// EnvConfigPath overrides the config file location.
	EnvConfigPath = "GUIDCTL_CONFIG"
)

// DefaultHistoryLimit is the default number of history entries listed.
const DefaultHistoryLimit = 50

// Config is the resolved guidctl configuration.
type Config struct {
	// Endpoint is the GUID API base URL, e.g. https://guid.example.com
	// or mock://test.net for the built-in simulator.
	Endpoint string `koanf:"endpoint" yaml:"endpoint" json:"endpoint"`

	// User is the default user for create operations.
	User string `koanf:"user" yaml:"user" json:"user"`

	History HistoryConfig `koanf:"history" yaml:"history" json:"history"`
	Log     LogConfig     `koanf:"log" yaml:"log" json:"log"`
}

// HistoryConfig controls the local invocation history.
type HistoryConfig struct {
	Enabled bool   `koanf:"enabled" yaml:"enabled" json:"enabled"`
	Limit   int    `koanf:"limit" yaml:"limit" json:"limit"`
	Path    string `koanf:"path" yaml:"path" json:"path"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Level  string `koanf:"level" yaml:"level" json:"level"`
	Format string `koanf:"format" yaml:"format" json:"format"`
}

// DefaultPath returns the default config file location, or "" when the
// user config dir cannot be resolved.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, ConfigDirName, ConfigFileName)
}

// DefaultHistoryPath returns the default history database location, or ""
// when the user config dir cannot be resolved.
func DefaultHistoryPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, ConfigDirName, HistoryFileName)
}

// Path returns the config file location in effect: the EnvConfigPath
// override when set, the default location otherwise.
func Path() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	return DefaultPath()
}

// GetEndpoint returns the configured endpoint URL, best effort. Used as
// the --url flag default.
func GetEndpoint() string {
	cfg, err := Load()
	if err != nil {
		return ""
	}
	return cfg.Endpoint
}

// GetUser returns the configured default user, best effort. Used as the
// --user flag default.
func GetUser() string {
	cfg, err := Load()
	if err != nil {
		return ""
	}
	return cfg.User
}
