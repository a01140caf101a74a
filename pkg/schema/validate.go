package schema

import (
	"fmt"

	"github.com/invopop/jsonschema"
)

// Validate walks value against a reflected schema. Objects are closed: any
// key absent from the schema's properties fails, as does any missing
// required key. Arrays recurse into their item schema.
func Validate(value any, s *jsonschema.Schema) error {
	return validateAt(value, s, "$")
}

func validateAt(value any, s *jsonschema.Schema, path string) error {
	if s == nil {
		return nil
	}

	switch s.Type {
	case "object":
		return validateObject(value, s, path)
	case "array":
		arr, ok := value.([]any)
		if !ok {
			return fmt.Errorf("%s: expected array", path)
		}
		for i, item := range arr {
			if err := validateAt(item, s.Items, fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}
		return nil
	case "string":
		if _, ok := value.(string); !ok {
			return fmt.Errorf("%s: expected string", path)
		}
		return nil
	case "boolean":
		if _, ok := value.(bool); !ok {
			return fmt.Errorf("%s: expected boolean", path)
		}
		return nil
	case "integer", "number":
		if _, ok := value.(float64); !ok {
			return fmt.Errorf("%s: expected number", path)
		}
		return nil
	default:
		// Schemas without an explicit type but with properties are objects
		// (the reflector's top level).
		if s.Properties != nil {
			return validateObject(value, s, path)
		}
		return nil
	}
}

func validateObject(value any, s *jsonschema.Schema, path string) error {
	m, ok := value.(map[string]any)
	if !ok {
		return fmt.Errorf("%s: expected object", path)
	}

	for key := range m {
		if s.Properties == nil {
			return fmt.Errorf("%s: unexpected field %q", path, key)
		}
		if _, declared := s.Properties.Get(key); !declared {
			return fmt.Errorf("%s: unexpected field %q", path, key)
		}
	}

	for _, req := range s.Required {
		if _, present := m[req]; !present {
			return fmt.Errorf("%s: missing required field %q", path, req)
		}
	}

	if s.Properties == nil {
		return nil
	}
	for pair := s.Properties.Oldest(); pair != nil; pair = pair.Next() {
		v, present := m[pair.Key]
		if !present {
			continue
		}
		if err := validateAt(v, pair.Value, path+"."+pair.Key); err != nil {
			return err
		}
	}
	return nil
}
