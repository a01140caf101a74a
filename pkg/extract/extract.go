// Package extract recovers a single JSON object from raw model output.
// Models wrap JSON in prose or markdown fences despite instruction; the
// tiered fallback here covers the common wrappings without ever accepting
// malformed or truncated JSON.
package extract

import (
	"encoding/json"
	"errors"
	"strings"
)

var ErrNoObject = errors.New("no JSON object found in model output")

// Object returns the bytes of the first JSON object recoverable from text.
// Tiers, first hit wins: the whole text as an object, a fenced code block
// (```json then bare ```), then the span from the first '{' to the last '}'.
func Object(text string) ([]byte, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrNoObject
	}

	if obj, ok := asObject(text); ok {
		return obj, nil
	}
	if obj, ok := fencedObject(text, "```json"); ok {
		return obj, nil
	}
	if obj, ok := fencedObject(text, "```"); ok {
		return obj, nil
	}
	if obj, ok := braceSpan(text); ok {
		return obj, nil
	}
	return nil, ErrNoObject
}

// asObject accepts s only if it parses as a JSON object, not an array or
// scalar.
func asObject(s string) ([]byte, bool) {
	s = strings.TrimSpace(s)
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return nil, false
	}
	if _, ok := v.(map[string]any); !ok {
		return nil, false
	}
	return []byte(s), true
}

func fencedObject(s, fence string) ([]byte, bool) {
	idx := strings.Index(s, fence)
	if idx < 0 {
		return nil, false
	}
	start := idx + len(fence)
	// A bare fence may carry a language tag on the opening line.
	if fence == "```" {
		if nl := strings.Index(s[start:], "\n"); nl >= 0 && nl < 20 {
			start += nl + 1
		}
	}
	end := strings.Index(s[start:], "```")
	if end < 0 {
		return nil, false
	}
	inner := s[start : start+end]
	if obj, ok := asObject(inner); ok {
		return obj, true
	}
	// The fence may still wrap prose around the object.
	return braceSpan(inner)
}

func braceSpan(s string) ([]byte, bool) {
	first := strings.Index(s, "{")
	last := strings.LastIndex(s, "}")
	if first < 0 || last <= first {
		return nil, false
	}
	return asObject(s[first : last+1])
}
