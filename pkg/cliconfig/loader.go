package cliconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"gopkg.in/yaml.v3"
)

// Load reads configuration from the file at Path() and the environment.
// A missing config file is not an error.
func Load() (*Config, error) {
	return load(Path(), false)
}

// LoadFile reads configuration from an explicitly chosen file, which must
// exist, plus the environment.
func LoadFile(path string) (*Config, error) {
	return load(path, true)
}

func load(path string, mustExist bool) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		err := k.Load(file.Provider(path), kyaml.Parser())
		if err != nil {
			if mustExist || !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("loading config file %s: %w", path, err)
			}
		}
	}

	// Environment overrides the file: GUIDCTL_ENDPOINT, GUIDCTL_HISTORY_ENABLED, ...
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("loading environment config: %w", err)
	}

	if !k.Exists("history.enabled") {
		_ = k.Set("history.enabled", true)
	}
	if !k.Exists("history.limit") {
		_ = k.Set("history.limit", DefaultHistoryLimit)
	}
	if !k.Exists("history.path") {
		_ = k.Set("history.path", DefaultHistoryPath())
	}
	if !k.Exists("log.level") {
		_ = k.Set("log.level", "info")
	}
	if !k.Exists("log.format") {
		_ = k.Set("log.format", "text")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes the configuration as YAML, creating parent directories as
// needed.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
