// Package config loads the permsync tool configuration from layered
// sources: built-in defaults, an optional global config file, an optional
// local config file, and PERMSYNC_* environment variables, in increasing
// priority.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Configuration represents the permsync CLI tool configuration.
// Paths here locate the Claude Code files permsync reads and writes; they
// are not the documents themselves.
type Configuration struct {
	ClaudeConfigPath   string `koanf:"claude_config_path" validate:"required"`   // root registry (~/.claude.json)
	GlobalSettingsPath string `koanf:"global_settings_path" validate:"required"` // merge destination (~/.claude/settings.json)
	Backup             bool   `koanf:"backup"`        // copy the previous global settings aside before writing
	ShowProgress       bool   `koanf:"show_progress"` // spinner while scanning projects (TTY only)
}

// Load loads configuration from global, local, and environment sources.
// Priority: Environment variables > Local config > Global config > Defaults
func Load(localConfigPath string) (*Configuration, error) {
	k := koanf.New(".")

	// Apply defaults first
	for key, value := range GetDefaults() {
		k.Set(key, value)
	}

	// Load global config if it exists
	homeDir, err := os.UserHomeDir()
	if err == nil {
		globalPath := filepath.Join(homeDir, ".permsync", "config.json")
		if _, err := os.Stat(globalPath); err == nil {
			if err := k.Load(file.Provider(globalPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load global config: %w", err)
			}
		}
	}

	// Load local config if it exists
	if localConfigPath != "" {
		if _, err := os.Stat(localConfigPath); err == nil {
			if err := k.Load(file.Provider(localConfigPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load local config: %w", err)
			}
		}
	}

	// Override with environment variables (highest priority)
	k.Load(env.Provider("PERMSYNC_", ".", envTransform), nil)

	// Unmarshal into struct
	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate configuration
	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// Expand home directory in paths
	cfg.ClaudeConfigPath = expandHomePath(cfg.ClaudeConfigPath)
	cfg.GlobalSettingsPath = expandHomePath(cfg.GlobalSettingsPath)

	return &cfg, nil
}

// envTransform converts environment variable names to config keys
// Example: PERMSYNC_GLOBAL_SETTINGS_PATH -> global_settings_path
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "PERMSYNC_"))
}

// expandHomePath expands ~ to the user's home directory
func expandHomePath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(homeDir, path[2:])
		}
	}
	return path
}
