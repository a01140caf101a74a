package schema

import (
	"encoding/json"
	"testing"

	"github.com/invopop/jsonschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func asMap(t *testing.T, raw string) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &m))
	return m
}

func TestValidateAcceptsWellFormedPayloads(t *testing.T) {
	cases := []struct {
		name   string
		schema *jsonschema.Schema
		raw    string
	}{
		{"autocomplete", AutocompleteSchema, `{"generated_blocks":[{"type":"paragraph","text":"a"}]}`},
		{"transform", TransformStyleSchema, `{"transformed_blocks":[{"type":"paragraph","text":"b"}]}`},
		{"synonyms", SynonymsSchema, `{"recommendations":[{"word":"w","description":"d"}]}`},
		{"ask", AskSchema, `{"answer":"a","references":[{"episode_id":"e","title":"t","matched_text":"m"}]}`},
		{"ask empty references", AskSchema, `{"answer":"a","references":[]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.NoError(t, Validate(asMap(t, tc.raw), tc.schema))
		})
	}
}

func TestValidateRejectsExtraField(t *testing.T) {
	cases := []struct {
		name   string
		schema *jsonschema.Schema
		raw    string
	}{
		{"autocomplete top level", AutocompleteSchema, `{"generated_blocks":[],"confidence":0.9}`},
		{"transform top level", TransformStyleSchema, `{"transformed_blocks":[],"extra":"x"}`},
		{"synonyms item", SynonymsSchema, `{"recommendations":[{"word":"w","description":"d","score":1}]}`},
		{"ask reference item", AskSchema, `{"answer":"a","references":[{"episode_id":"e","title":"t","matched_text":"m","page":3}]}`},
		{"block item", AutocompleteSchema, `{"generated_blocks":[{"type":"paragraph","text":"a","style":"bold"}]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(asMap(t, tc.raw), tc.schema)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "unexpected field")
		})
	}
}

func TestValidateRejectsMissingRequiredField(t *testing.T) {
	cases := []struct {
		name   string
		schema *jsonschema.Schema
		raw    string
	}{
		{"autocomplete", AutocompleteSchema, `{}`},
		{"transform", TransformStyleSchema, `{}`},
		{"synonyms item", SynonymsSchema, `{"recommendations":[{"word":"w"}]}`},
		{"ask missing answer", AskSchema, `{"references":[]}`},
		{"ask missing references", AskSchema, `{"answer":"a"}`},
		{"block missing text", AutocompleteSchema, `{"generated_blocks":[{"type":"paragraph"}]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(asMap(t, tc.raw), tc.schema)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "missing required field")
		})
	}
}

func TestValidateRejectsWrongStructuralTypes(t *testing.T) {
	cases := []struct {
		name   string
		schema *jsonschema.Schema
		raw    string
	}{
		{"string where list expected", AutocompleteSchema, `{"generated_blocks":"not a list"}`},
		{"number where string expected", AskSchema, `{"answer":42,"references":[]}`},
		{"object where list expected", SynonymsSchema, `{"recommendations":{"word":"w"}}`},
		{"scalar list item", AutocompleteSchema, `{"generated_blocks":["just text"]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Error(t, Validate(asMap(t, tc.raw), tc.schema))
		})
	}
}

func TestSchemasReflectOncePerType(t *testing.T) {
	assert.Same(t, AutocompleteSchema, schemaFor[AutocompleteData]())
	assert.Same(t, TransformStyleSchema, schemaFor[TransformStyleData]())
	assert.Same(t, SynonymsSchema, schemaFor[SynonymsData]())
	assert.Same(t, AskSchema, schemaFor[AskData]())
	assert.Same(t, schemaFor[AskData](), schemaFor[AskData]())
}

func TestDecodeRoundTrip(t *testing.T) {
	raw := []byte(`{"generated_blocks":[{"type":"paragraph","text":"a"},{"type":"paragraph","text":"b"}]}`)
	data, err := Decode[AutocompleteData](raw)
	require.NoError(t, err)
	require.Len(t, data.GeneratedBlocks, 2)
	assert.Equal(t, "a", data.GeneratedBlocks[0].Text)
	assert.Equal(t, "b", data.GeneratedBlocks[1].Text)
}

func TestDecodeIdempotent(t *testing.T) {
	raw := []byte(`{"answer":"a","references":[{"episode_id":"e","title":"t","matched_text":"m"}]}`)
	first, err := Decode[AskData](raw)
	require.NoError(t, err)
	second, err := Decode[AskData](raw)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDecodeRejectsInvalidPayloads(t *testing.T) {
	_, err := Decode[SynonymsData]([]byte(`{"recommendations":[{"word":"w","description":"d","nuance":"n"}]}`))
	assert.Error(t, err)

	_, err = Decode[SynonymsData]([]byte(`not json`))
	assert.Error(t, err)
}
