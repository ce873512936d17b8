// Package testutil provides test utilities and helpers for permsync tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFile writes content to path, creating parent directories.
// Cleanup is handled by the caller's t.TempDir.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

// WriteLocalSettings writes a .claude/settings.local.json under the given
// project directory and returns its path.
func WriteLocalSettings(t *testing.T, projectDir, content string) string {
	t.Helper()

	path := filepath.Join(projectDir, ".claude", "settings.local.json")
	WriteFile(t, path, content)
	return path
}

// WriteRegistry writes a Claude root config registering the given project
// paths, and returns the registry file path.
func WriteRegistry(t *testing.T, dir string, projects ...string) string {
	t.Helper()

	content := `{"projects": {`
	for i, p := range projects {
		if i > 0 {
			content += ", "
		}
		content += `"` + p + `": {}`
	}
	content += `}}`

	path := filepath.Join(dir, ".claude.json")
	WriteFile(t, path, content)
	return path
}
