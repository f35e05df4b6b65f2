package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// ExtractObject returns the first balanced, well-formed JSON object in raw
// model output. Markdown fences and surrounding prose are ignored, including
// prose that itself contains braces.
func ExtractObject(raw string) (string, error) {
	start := strings.IndexByte(raw, '{')
	if start < 0 {
		return "", fmt.Errorf("%w: no JSON object found", ErrInvalidOutput)
	}
	for start >= 0 {
		if end := closingBrace(raw, start); end > 0 {
			if obj := raw[start : end+1]; gjson.Valid(obj) {
				return obj, nil
			}
		}
		next := strings.IndexByte(raw[start+1:], '{')
		if next < 0 {
			break
		}
		start += next + 1
	}
	return "", fmt.Errorf("%w: malformed JSON", ErrInvalidOutput)
}

// closingBrace returns the index of the brace that closes the one at start,
// or -1 if it is never closed.
func closingBrace(raw string, start int) int {
	depth := 0
	inString, escaped := false, false
	for i := start; i < len(raw); i++ {
		ch := raw[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// DecodeObject extracts the JSON object from raw, checks that every
// required key is present and decodes it into T.
func DecodeObject[T any](raw string, required ...string) (*T, error) {
	obj, err := ExtractObject(raw)
	if err != nil {
		return nil, err
	}
	for _, key := range required {
		if !gjson.Get(obj, gjsonEscape(key)).Exists() {
			return nil, fmt.Errorf("%w: missing required field %q", ErrInvalidOutput, key)
		}
	}

	var out T
	if err := json.Unmarshal([]byte(obj), &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}
	return &out, nil
}

// gjsonEscape escapes path syntax so key is matched literally.
func gjsonEscape(key string) string {
	var b strings.Builder
	for _, r := range key {
		switch r {
		case '.', '*', '?', '|', '#', '@', '\\', '!', '=', '<', '>', '%':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
