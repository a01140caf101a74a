// Package schema declares the response payload for every feature and
// enforces it, closed-world, on JSON coming back from the model: unknown
// fields rejected, declared fields required, list item shapes checked
// recursively. Type checks are structural only.
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"sync"

	"github.com/invopop/jsonschema"
)

// schemas holds one reflected schema per payload type. Reflection runs at
// most once per type; every Decode call reuses the cached schema.
var schemas sync.Map

func schemaFor[T any]() *jsonschema.Schema {
	key := reflect.TypeFor[T]()
	if cached, ok := schemas.Load(key); ok {
		return cached.(*jsonschema.Schema)
	}
	r := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	cached, _ := schemas.LoadOrStore(key, r.Reflect(v))
	return cached.(*jsonschema.Schema)
}

var (
	AutocompleteSchema   = schemaFor[AutocompleteData]()
	TransformStyleSchema = schemaFor[TransformStyleData]()
	SynonymsSchema       = schemaFor[SynonymsData]()
	AskSchema            = schemaFor[AskData]()
)

// Decode validates raw JSON object bytes against the schema reflected from T
// and decodes them strictly into T. Pure: same bytes, same result.
func Decode[T any](data []byte) (T, error) {
	var out T

	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return out, fmt.Errorf("payload is not a JSON object: %w", err)
	}
	if err := Validate(m, schemaFor[T]()); err != nil {
		return out, err
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&out); err != nil {
		return out, err
	}
	return out, nil
}
