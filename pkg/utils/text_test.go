package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenizeWords(t *testing.T) {
	assert.Equal(t, []string{"a", " ", "bleak", " ", "morning", "."}, TokenizeWords("a bleak morning."))
	assert.Empty(t, TokenizeWords(""))
}

func TestChangeRatio(t *testing.T) {
	assert.Equal(t, 0.0, ChangeRatio("같은 문장", "같은 문장"))
	assert.Equal(t, 1.0, ChangeRatio("alpha", "omega"))

	partial := ChangeRatio("a bleak morning", "a desolate morning")
	assert.Greater(t, partial, 0.0)
	assert.Less(t, partial, 1.0)
}

func TestDiffWordsOps(t *testing.T) {
	deltas := DiffWords("the old word", "the new word")
	var removed, added, common int
	for _, d := range deltas {
		switch d.Op {
		case -1:
			removed++
		case +1:
			added++
		default:
			common++
		}
	}
	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, added)
	assert.Greater(t, common, 0)
}
