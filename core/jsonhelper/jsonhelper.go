// Package jsonhelper provides JSON-related helper functions.
package jsonhelper

import (
	"bytes"
	"encoding/json"

	"github.com/pascaldekloe/name"
)

// Option sets an option on json.Decoder.
type Option func(*json.Decoder)

// DisallowUnknownFields causes json.Decoder to reject unknown struct fields.
var DisallowUnknownFields Option = func(d *json.Decoder) { d.DisallowUnknownFields() }

// Roundtrip marshals the input to JSON then unmarshals it into ptr.
// This is useful for converting a loosely typed document into a structure.
func Roundtrip(input, ptr any, options ...Option) error {
	j, e := json.Marshal(input)
	if e != nil {
		return e
	}

	decoder := json.NewDecoder(bytes.NewReader(j))
	for _, option := range options {
		option(decoder)
	}
	return decoder.Decode(ptr)
}

// Key converts a display name such as "Routing Context" to a lowerCamelCase object key.
func Key(display string) string {
	return name.CamelCase(display, false)
}

// NormalizeKeys converts a document decoded from YAML or TOML into one JSON can marshal.
// Map keys are stringified; nested maps and slices are processed recursively.
func NormalizeKeys(input any) any {
	switch input := input.(type) {
	case map[string]any:
		m := make(map[string]any, len(input))
		for k, v := range input {
			m[k] = NormalizeKeys(v)
		}
		return m
	case map[any]any:
		m := make(map[string]any, len(input))
		for k, v := range input {
			if ks, ok := k.(string); ok {
				m[ks] = NormalizeKeys(v)
			}
		}
		return m
	case []any:
		a := make([]any, len(input))
		for i, v := range input {
			a[i] = NormalizeKeys(v)
		}
		return a
	case []map[string]any:
		a := make([]any, len(input))
		for i, v := range input {
			a[i] = NormalizeKeys(v)
		}
		return a
	default:
		return input
	}
}
