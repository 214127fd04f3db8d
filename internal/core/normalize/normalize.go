// Package normalize converts loosely-typed backend records into display-safe
// domain entities. Every function is total: any map shape, including nil,
// yields a fully-defaulted value and never panics. Each function is also
// idempotent over its own output shape, so re-normalizing a round-tripped
// entity is a no-op.
package normalize

import (
	"encoding/json"
	"strconv"
	"time"
)

// Raw is a backend record as decoded from JSON, shape unknown.
type Raw = map[string]any

func str(m Raw, def string, keys ...string) string {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			if s, ok := v.(string); ok && s != "" {
				return s
			}
		}
	}
	return def
}

// num coerces JSON numbers, numeric strings, and json.Number alike.
// Anything else, including absence, yields the default.
func num(m Raw, def float64, keys ...string) float64 {
	for _, k := range keys {
		v, ok := m[k]
		if !ok || v == nil {
			continue
		}
		switch n := v.(type) {
		case float64:
			return n
		case int:
			return float64(n)
		case int64:
			return float64(n)
		case json.Number:
			if f, err := n.Float64(); err == nil {
				return f
			}
		case string:
			if f, err := strconv.ParseFloat(n, 64); err == nil {
				return f
			}
		}
	}
	return def
}

func id(m Raw, keys ...string) int64 {
	return int64(num(m, 0, keys...))
}

func boolean(m Raw, def bool, keys ...string) bool {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			if b, ok := v.(bool); ok {
				return b
			}
		}
	}
	return def
}

// nested returns the sub-record at the first matching key, or nil. A nil
// result is safe to pass to every helper in this package.
func nested(m Raw, keys ...string) Raw {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			if sub, ok := v.(map[string]any); ok {
				return sub
			}
		}
	}
	return nil
}

// when parses the first matching timestamp field. The backend emits RFC 3339
// with and without fractional seconds; unparseable values yield zero time.
func when(m Raw, keys ...string) time.Time {
	for _, k := range keys {
		v, ok := m[k]
		if !ok {
			continue
		}
		s, ok := v.(string)
		if !ok {
			continue
		}
		for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
			if t, err := time.Parse(layout, s); err == nil {
				if t.IsZero() {
					return time.Time{}
				}
				return t.UTC()
			}
		}
	}
	return time.Time{}
}

// Slice applies fn to every element of a decoded JSON array, skipping
// elements that are not objects. A nil or empty input yields an empty,
// non-nil slice.
func Slice[T any](raw []any, fn func(Raw) T) []T {
	out := make([]T, 0, len(raw))
	for _, v := range raw {
		if m, ok := v.(map[string]any); ok {
			out = append(out, fn(m))
		}
	}
	return out
}
