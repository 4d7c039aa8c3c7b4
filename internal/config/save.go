package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/google/renameio/v2"
)

type persistedConfig struct {
	LogLevel       *string            `toml:"log_level,omitempty"`
	DefaultProfile *string            `toml:"default_profile,omitempty"`
	Profiles       map[string]Profile `toml:"profiles,omitempty"`
}

func nonEmptyPtr(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// SaveTo writes the config to path atomically. The file holds client secrets and is created
// readable by the owner only.
func SaveTo(path string, cfg *Config) error {
	if strings.TrimSpace(path) == "" {
		return ErrConfigSave.Msg("config path is required")
	}
	if cfg == nil {
		cfg = &Config{}
	}

	out := persistedConfig{
		LogLevel:       nonEmptyPtr(cfg.LogLevel),
		DefaultProfile: nonEmptyPtr(cfg.DefaultProfile),
	}
	if len(cfg.Profiles) > 0 {
		out.Profiles = cfg.Profiles
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(out); err != nil {
		return ErrConfigSave.Err(fmt.Errorf("failed to marshal config: %w", err))
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return ErrConfigSave.Err(fmt.Errorf("failed to create config directory: %w", err))
	}
	if err := renameio.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		return ErrConfigSave.Err(fmt.Errorf("failed to write config %s: %w", path, err))
	}
	return nil
}
