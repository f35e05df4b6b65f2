package llm

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Schema describes the JSON object a prompt expects back from the model.
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

// Required returns the top-level keys the schema marks as required.
func (s *Schema) Required() []string {
	if s == nil {
		return nil
	}
	switch req := s.Definition["required"].(type) {
	case []string:
		return req
	case []any:
		out := make([]string, 0, len(req))
		for _, r := range req {
			if name, ok := r.(string); ok {
				out = append(out, name)
			}
		}
		return out
	}
	return nil
}

// Instructions renders the schema as a prompt section, for providers that
// have no native structured-output mode.
func (s *Schema) Instructions() string {
	def, _ := json.MarshalIndent(s.Definition, "", "  ") // plain maps and slices; marshal cannot fail
	return fmt.Sprintf("Respond with ONLY a JSON object, no markdown fences and no text before or after it. The object must match this JSON schema (%s):\n%s", s.Name, def)
}

// Helper functions for building JSON Schema objects. Objects are strict:
// every property is required and no others are allowed.

func Prop(typ, desc string) map[string]any {
	return map[string]any{"type": typ, "description": desc}
}

func ArrayOf(items map[string]any, desc string) map[string]any {
	return map[string]any{"type": "array", "description": desc, "items": items}
}

func Object(properties map[string]any) map[string]any {
	if properties == nil {
		properties = map[string]any{}
	}
	required := make([]string, 0, len(properties))
	for name := range properties {
		required = append(required, name)
	}
	sort.Strings(required)
	return map[string]any{
		"type":                 "object",
		"properties":           properties,
		"required":             required,
		"additionalProperties": false,
	}
}
