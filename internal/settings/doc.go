// Package settings implements the Claude Code settings merge engine.
// It loads settings documents as flexible JSON maps so unknown fields
// survive a merge untouched, folds per-project local settings into the
// global settings document, and writes the result back atomically.
//
// The package supports:
//   - Loading and parsing settings files while preserving unknown fields
//   - Merging permission lists with union, dedupe, and sort semantics
//   - Last-write-wins overlay for all non-permission fields
//   - An audit trail of which project granted which allow entry
//   - Atomic file writes with an optional backup of the previous file
package settings
