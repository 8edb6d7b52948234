// Package value provides primitives for extracting scalars from
// loosely typed JSON payloads.
//
// Decoded payload fields arrive as any; these helpers normalize the
// handful of shapes that actually occur (string, []byte, json.Number,
// numeric types, nested objects, nil) without ever failing.
package value

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Text extracts a string from various representations.
// Handles: string, []byte, json.Number, numeric types, bool, nil.
func Text(v any) string {
	if v == nil {
		return ""
	}
	switch val := v.(type) {
	case string:
		return val
	case []byte:
		return string(val)
	case json.Number:
		return val.String()
	case float64:
		if val == float64(int64(val)) {
			return strconv.FormatInt(int64(val), 10)
		}
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case bool:
		if val {
			return "true"
		}
		return "false"
	case map[string]any, []any:
		// Structured values have no scalar rendering.
		return ""
	default:
		return fmt.Sprintf("%v", val)
	}
}

// TextOr extracts a string with a default for empty/nil values.
func TextOr(v any, defaultVal string) string {
	s := Text(v)
	if s == "" {
		return defaultVal
	}
	return s
}

// Int extracts an integer from various representations.
// Handles: int, float64, json.Number, string ("123"), nil (→ 0).
func Int(v any) int {
	if v == nil {
		return 0
	}
	switch val := v.(type) {
	case int:
		return val
	case int64:
		return int(val)
	case int32:
		return int(val)
	case float64:
		return int(val)
	case json.Number:
		i, _ := val.Int64()
		return int(i)
	case string:
		i, _ := strconv.Atoi(strings.TrimSpace(val))
		return i
	default:
		return 0
	}
}

// IntPtr extracts an optional integer, returning nil when the value is
// absent or not numeric. Distinguishes a missing field from a real zero.
func IntPtr(v any) *int {
	if v == nil {
		return nil
	}
	switch val := v.(type) {
	case int, int64, int32, float64, json.Number:
		i := Int(v)
		return &i
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(val)); err == nil {
			return &i
		}
		return nil
	default:
		return nil
	}
}

// Map extracts a JSON object, returning nil for any other shape.
func Map(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}
