package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// SettingsDir is the directory holding Claude settings under a project
// root or the user's home directory.
const SettingsDir = ".claude"

// LocalFileName is the per-project settings file consolidated by permsync.
const LocalFileName = "settings.local.json"

// GlobalFileName is the global settings file the merge result is written to.
const GlobalFileName = "settings.json"

// BackupSuffix is appended to the global settings path for the backup copy.
const BackupSuffix = ".bak"

// LocalPath returns the local settings path for a project root.
func LocalPath(projectDir string) string {
	return filepath.Join(projectDir, SettingsDir, LocalFileName)
}

// Load reads and parses a settings document. A missing file is reported
// with an error matching fs.ErrNotExist under errors.Is, so callers can
// decide whether absence is fatal (the global file) or a skip (a local
// file). An empty file parses as an empty document. Malformed JSON is
// always an error naming the file.
func Load(path string) (map[string]interface{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading settings file %s: %w", path, err)
	}

	doc := make(map[string]interface{})
	if len(data) == 0 {
		return doc, nil
	}

	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing settings file %s: %w", path, err)
	}

	return doc, nil
}

// Save writes the document to path using an atomic write (temp file +
// rename), creating the parent directory if needed. Output is
// pretty-printed with two-space indentation and a trailing newline.
func Save(path string, doc map[string]interface{}) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("serializing settings: %w", err)
	}

	// Trailing newline for POSIX compliance
	data = append(data, '\n')

	return atomicWrite(path, data)
}

// Backup copies the current file at path verbatim to path + BackupSuffix.
// A missing source is not an error (there is nothing to preserve yet);
// any other failure is, and callers must abort the subsequent write.
func Backup(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading settings file %s for backup: %w", path, err)
	}

	backupPath := path + BackupSuffix
	if err := atomicWrite(backupPath, data); err != nil {
		return fmt.Errorf("writing backup %s: %w", backupPath, err)
	}
	return nil
}

// atomicWrite writes data to a file atomically using temp file + rename.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmpFile, err := os.CreateTemp(dir, ".settings-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	// Clean up temp file on any error
	defer func() {
		if tmpPath != "" {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return fmt.Errorf("writing temp file: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("renaming temp file to %s: %w", path, err)
	}

	// Clear tmpPath so defer doesn't try to remove the final file
	tmpPath = ""
	return nil
}
