package ai

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// jsonObjects returns every balanced top-level {...} in raw, in order. Braces inside
// string literals are ignored, so prose or code fences around an object do not matter.
func jsonObjects(raw string) []string {
	var objects []string
	start := strings.IndexByte(raw, '{')
	for start >= 0 {
		from := start + 1
		if end, ok := matchBrace(raw, start); ok {
			objects = append(objects, raw[start:end+1])
			from = end + 1
		}
		next := strings.IndexByte(raw[from:], '{')
		if next < 0 {
			break
		}
		start = from + next
	}
	return objects
}

// decodeFirstObject decodes the first candidate that is a valid JSON object. Models
// sometimes put a stray {placeholder} in their prose ahead of the real answer.
func decodeFirstObject(candidates []string) (map[string]any, error) {
	var firstErr error
	for _, candidate := range candidates {
		var fields map[string]any
		err := json.Unmarshal([]byte(candidate), &fields)
		if err == nil {
			return fields, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	if firstErr == nil {
		firstErr = errors.New("no JSON object candidates")
	}
	return nil, firstErr
}

func matchBrace(raw string, start int) (int, bool) {
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(raw); i++ {
		c := raw[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

func coerceBool(v any) bool {
	switch val := v.(type) {
	case bool:
		return val
	case string:
		lower := strings.ToLower(strings.TrimSpace(val))
		return lower == "true" || lower == "yes"
	case float64:
		return val != 0
	default:
		return false
	}
}

func coerceFloat(v any) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(val, "%")), 64)
		if err != nil {
			return math.NaN()
		}
		return f
	default:
		return math.NaN()
	}
}

func coerceString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(val)
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(b)
	}
}

// coerceStrings accepts a JSON array or a comma separated string.
func coerceStrings(v any) []string {
	var raw []string
	switch val := v.(type) {
	case []any:
		for _, item := range val {
			raw = append(raw, coerceString(item))
		}
	case string:
		raw = strings.Split(val, ",")
	}

	out := make([]string, 0, len(raw))
	for _, s := range raw {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
