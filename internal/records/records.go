package records

import (
	"errors"
	"fmt"
)

// Record is one flat JSON object as decoded from an API response. Values keep
// whatever type the JSON carried (string, number, bool, nested value).
type Record map[string]any

// ErrMissingField indicates a field required downstream was absent, usually
// because it was dropped from a fields_of_interest allow-list in the config.
var ErrMissingField = errors.New("required field missing")

// FilterFields returns a new record containing only the entries whose key is
// in keysToKeep. Keys absent from the record are silently omitted.
func FilterFields(rec Record, keysToKeep []string) Record {
	keep := make(map[string]struct{}, len(keysToKeep))
	for _, key := range keysToKeep {
		keep[key] = struct{}{}
	}

	filtered := make(Record)
	for key, value := range rec {
		if _, ok := keep[key]; ok {
			filtered[key] = value
		}
	}
	return filtered
}

// Field returns the raw value for key, or ErrMissingField.
func (r Record) Field(key string) (any, error) {
	value, ok := r[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingField, key)
	}
	return value, nil
}

// StringField returns the value for key rendered as a string.
func (r Record) StringField(key string) (string, error) {
	value, err := r.Field(key)
	if err != nil {
		return "", err
	}
	if s, ok := value.(string); ok {
		return s, nil
	}
	return fmt.Sprint(value), nil
}
