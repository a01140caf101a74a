package extract

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectStrictParse(t *testing.T) {
	obj, err := Object(`{"answer":"ok","references":[]}`)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(obj, &m))
	assert.Equal(t, "ok", m["answer"])
}

func TestObjectRejectsArrayAndScalar(t *testing.T) {
	for _, text := range []string{`[1,2,3]`, `"hello"`, `42`, `true`} {
		_, err := Object(text)
		assert.ErrorIs(t, err, ErrNoObject, "input %q", text)
	}
}

func TestObjectJSONFence(t *testing.T) {
	text := "Here is the result:\n```json\n{\"word\":\"bleak\"}\n```\nHope that helps!"
	obj, err := Object(text)
	require.NoError(t, err)

	var m map[string]string
	require.NoError(t, json.Unmarshal(obj, &m))
	assert.Equal(t, "bleak", m["word"])
}

func TestObjectBareFence(t *testing.T) {
	text := "```\n{\"n\": 1}\n```"
	obj, err := Object(text)
	require.NoError(t, err)
	assert.JSONEq(t, `{"n":1}`, string(obj))
}

func TestObjectBraceSpanWithProse(t *testing.T) {
	text := `The model says: {"generated_blocks":[{"type":"paragraph","text":"a"}]} and nothing else.`
	obj, err := Object(text)
	require.NoError(t, err)
	assert.JSONEq(t, `{"generated_blocks":[{"type":"paragraph","text":"a"}]}`, string(obj))
}

func TestObjectNestedBracesInStrings(t *testing.T) {
	text := `prefix {"text":"a brace } inside","ok":true} suffix`

	// The span from first '{' to last '}' is exactly the object here.
	obj, err := Object(text)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(obj, &m))
	assert.Equal(t, true, m["ok"])
}

func TestObjectNoObject(t *testing.T) {
	for _, text := range []string{
		"",
		"   ",
		"no json here at all",
		"{truncated",
		"} backwards {",
		"```json\nnot json\n```",
	} {
		_, err := Object(text)
		assert.ErrorIs(t, err, ErrNoObject, "input %q", text)
	}
}

func TestObjectIdempotent(t *testing.T) {
	text := "prose before ```json\n{\"answer\":\"x\",\"references\":[]}\n``` prose after"
	first, err := Object(text)
	require.NoError(t, err)
	second, err := Object(text)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
