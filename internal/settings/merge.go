package settings

import (
	"sort"
)

// Override pairs a local settings document with the project it came from.
// The source is used only for the audit trail, never for merge decisions.
type Override struct {
	// Source identifies where the document was loaded from (a project
	// path in practice).
	Source string
	// Settings is the parsed local settings document.
	Settings map[string]interface{}
}

// Merge folds the overrides into base, in slice order, and returns the
// merged document plus an audit trail of allow entries.
//
// Non-permission fields follow last-write-wins: each override's fields
// overwrite the accumulator's. Permission lists are special-cased: for
// every kind appearing in either side's "permissions" object, the merged
// value is the union of both sides' valid entries, deduplicated and
// sorted ascending. Values that are not arrays of strings contribute
// nothing for their kind; a hand-edited file with a broken permissions
// shape degrades silently instead of failing the whole merge.
//
// When showAllowCommands is true, each override's valid "allow" list adds
// one audit line per entry, in original order, formatted "source\tentry".
//
// Inputs are never mutated; every fold step works on fresh copies.
func Merge(base map[string]interface{}, overrides []Override, showAllowCommands bool) (map[string]interface{}, []string) {
	var audit []string
	current := copyDocument(base)

	for _, ov := range overrides {
		if showAllowCommands {
			if perms, ok := ov.Settings["permissions"].(map[string]interface{}); ok {
				if IsStringList(perms["allow"]) {
					for _, entry := range perms["allow"].([]interface{}) {
						audit = append(audit, ov.Source+"\t"+entry.(string))
					}
				}
			}
		}

		before := current
		next := copyDocument(before)
		for key, value := range ov.Settings {
			next[key] = value
		}

		beforePerms, _ := before["permissions"].(map[string]interface{})
		overridePerms, _ := ov.Settings["permissions"].(map[string]interface{})
		kinds := permissionKinds(beforePerms, overridePerms)
		if len(kinds) > 0 {
			merged := make(map[string]interface{}, len(kinds))
			for _, kind := range kinds {
				merged[kind] = mergeKind(beforePerms[kind], overridePerms[kind])
			}
			next["permissions"] = merged
		}

		current = next
	}

	return current, audit
}

// copyDocument returns a shallow copy of doc. Nested values are shared,
// but the merge never writes into a nested structure in place, so callers
// observe their inputs as immutable.
func copyDocument(doc map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(doc))
	for key, value := range doc {
		out[key] = value
	}
	return out
}

// permissionKinds returns the union of kind keys from both permission
// objects, sorted for deterministic iteration. Either argument may be nil.
func permissionKinds(before, override map[string]interface{}) []string {
	seen := make(map[string]bool, len(before)+len(override))
	for kind := range before {
		seen[kind] = true
	}
	for kind := range override {
		seen[kind] = true
	}

	kinds := make([]string, 0, len(seen))
	for kind := range seen {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}

// mergeKind unions two candidate permission lists for one kind. Values
// failing IsStringList contribute nothing. The result is deduplicated,
// sorted ascending, and stored as []interface{} for JSON round-tripping.
func mergeKind(beforeVal, overrideVal interface{}) []interface{} {
	var entries []string
	if IsStringList(beforeVal) {
		for _, v := range beforeVal.([]interface{}) {
			entries = append(entries, v.(string))
		}
	}
	if IsStringList(overrideVal) {
		for _, v := range overrideVal.([]interface{}) {
			entries = append(entries, v.(string))
		}
	}

	seen := make(map[string]bool, len(entries))
	unique := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !seen[entry] {
			seen[entry] = true
			unique = append(unique, entry)
		}
	}
	sort.Strings(unique)

	result := make([]interface{}, len(unique))
	for i, entry := range unique {
		result[i] = entry
	}
	return result
}
