// Package entities contains core domain data structures.
package entities

import (
	"strconv"
	"strings"
)

// RawRecord is one log entry as delivered by the action API: a mapping from
// field name to a string, number, boolean, list or nested mapping. It is
// treated as read-only input; constructors copy before reshaping so the
// caller's map is never mutated.
//
// JSON numbers decode as float64, but the API also serves numeric fields as
// strings on older wikis, so the getters coerce from both.
type RawRecord map[string]any

// Has reports whether the field is present.
func (r RawRecord) Has(field string) bool {
	_, ok := r[field]
	return ok
}

// String returns the field as a string, or "" when absent or not a string.
func (r RawRecord) String(field string) string {
	s, _ := r[field].(string)
	return s
}

// Int returns the field coerced to an int. Returns ok=false when the field
// is absent or cannot be interpreted as an integer.
func (r RawRecord) Int(field string) (int, bool) {
	switch v := r[field].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// Bool returns the field coerced to a bool. MediaWiki marks boolean params
// either with a real boolean, with 0/1, or with a bare "" value whose mere
// presence means true.
func (r RawRecord) Bool(field string) bool {
	v, ok := r[field]
	if !ok {
		return false
	}
	switch b := v.(type) {
	case bool:
		return b
	case float64:
		return b != 0
	case int:
		return b != 0
	case string:
		return b == "" || b == "1" || strings.EqualFold(b, "true")
	default:
		return false
	}
}

// StringSlice returns the field as a list of strings. List values are
// flattened element-wise; a scalar string is split on commas (the older wire
// format for multi-valued params). Empty tokens are dropped.
func (r RawRecord) StringSlice(field string) []string {
	var tokens []string
	switch v := r[field].(type) {
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok {
				tokens = append(tokens, s)
			}
		}
	case []string:
		tokens = v
	case string:
		tokens = strings.Split(v, ",")
	default:
		return nil
	}

	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// Map returns the field as a nested record, or nil when absent or not a
// mapping.
func (r RawRecord) Map(field string) RawRecord {
	switch v := r[field].(type) {
	case map[string]any:
		return RawRecord(v)
	case RawRecord:
		return v
	default:
		return nil
	}
}

// clone returns a shallow copy of the record.
func (r RawRecord) clone() RawRecord {
	out := make(RawRecord, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
