// Package settings_test tests the permission list type guard.
// Related: internal/settings/guard.go
// Tags: settings, permissions, validation, type-guard

package settings

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsStringList(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		value interface{}
		want  bool
	}{
		"string":       {value: "x", want: false},
		"number":       {value: float64(123), want: false},
		"nil":          {value: nil, want: false},
		"bool":         {value: true, want: false},
		"empty object": {value: map[string]interface{}{}, want: false},
		"array-like object": {
			value: map[string]interface{}{"0": "a", "1": "b", "length": float64(2)},
			want:  false,
		},
		"number elements":             {value: []interface{}{float64(1), float64(2), float64(3)}, want: false},
		"mixed string and number":     {value: []interface{}{"a", float64(1)}, want: false},
		"nil element":                 {value: []interface{}{nil}, want: false},
		"object element":              {value: []interface{}{map[string]interface{}{}}, want: false},
		"bool elements":               {value: []interface{}{true, false}, want: false},
		"nested list":                 {value: []interface{}{[]interface{}{"a", "b"}}, want: false},
		"trailing non-string element": {value: []interface{}{"a", "b", float64(123)}, want: false},
		"empty list":                  {value: []interface{}{}, want: true},
		"single string":               {value: []interface{}{"single"}, want: true},
		"empty strings allowed":       {value: []interface{}{"", "a", ""}, want: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, IsStringList(tt.value))
		})
	}
}

// Guard decisions must hold for values exactly as encoding/json produces
// them, since every permission list reaches the guard via Unmarshal.
func TestIsStringListFromJSON(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		raw  string
		want bool
	}{
		"valid list":   {raw: `{"v": ["cmd1", "cmd2"]}`, want: true},
		"empty list":   {raw: `{"v": []}`, want: true},
		"numbers":      {raw: `{"v": [1, 2]}`, want: false},
		"null element": {raw: `{"v": [null]}`, want: false},
		"object value": {raw: `{"v": {"0": "a"}}`, want: false},
		"string value": {raw: `{"v": "cmd"}`, want: false},
		"missing key":  {raw: `{}`, want: false},
		"null value":   {raw: `{"v": null}`, want: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var doc map[string]interface{}
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &doc))
			assert.Equal(t, tt.want, IsStringList(doc["v"]))
		})
	}
}
