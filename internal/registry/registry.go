// Package registry reads the Claude Code root configuration to discover
// which projects are registered for the current user. The root config is
// the source of truth for which local settings files exist to be
// consolidated; it is required, and an unreadable one is a hard error.
package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// FileName is the Claude Code root configuration file in the user's home
// directory.
const FileName = ".claude.json"

// Registry holds the parsed root configuration.
type Registry struct {
	data map[string]interface{}
	path string
}

// DefaultPath returns the root configuration path under the user's home
// directory.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(homeDir, FileName), nil
}

// Load reads and parses the root configuration. Unlike local settings
// files, a missing or malformed root config is always an error: without
// it there is no project list to consolidate.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading claude config %s: %w", path, err)
	}

	r := &Registry{
		data: make(map[string]interface{}),
		path: path,
	}
	if err := json.Unmarshal(data, &r.data); err != nil {
		return nil, fmt.Errorf("parsing claude config %s: %w", path, err)
	}

	return r, nil
}

// Path returns the file the registry was loaded from.
func (r *Registry) Path() string {
	return r.path
}

// Projects returns the registered project root paths in ascending order.
// JSON object key order is not observable after parsing, so sorting is
// what makes the merge fold order deterministic across runs. A missing
// or malformed projects entry yields an empty list.
func (r *Registry) Projects() []string {
	projects, ok := r.data["projects"].(map[string]interface{})
	if !ok {
		return nil
	}

	paths := make([]string, 0, len(projects))
	for path := range projects {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}
