package config

// GetDefaults returns the default configuration values
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"claude_config_path":   "~/.claude.json",
		"global_settings_path": "~/.claude/settings.json",
		"backup":               true,
		"show_progress":        true,
	}
}
