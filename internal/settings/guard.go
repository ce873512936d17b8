package settings

// IsStringList reports whether v is a JSON array containing only strings.
// After encoding/json unmarshaling, such a value is a []interface{} whose
// every element is a string. An empty array qualifies. Anything else -
// absent values, scalars, objects (even ones with numeric keys and a
// length field), or arrays with a single non-string element - does not.
//
// Settings files are hand-edited, so permission lists are validated here
// at every read instead of trusting the document shape.
func IsStringList(v interface{}) bool {
	list, ok := v.([]interface{})
	if !ok {
		return false
	}
	for _, item := range list {
		if _, ok := item.(string); !ok {
			return false
		}
	}
	return true
}
