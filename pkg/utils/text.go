package utils

import (
	"unicode"

	"github.com/aryann/difflib"
)

// TokenizeWords splits text into runs of word characters, punctuation, and
// whitespace so diffs operate on words rather than bytes.
func TokenizeWords(s string) []string {
	var out []string
	var cur []rune
	kind := -1 // 0=space,1=word,2=punct
	flush := func() {
		if len(cur) == 0 {
			return
		}
		out = append(out, string(cur))
		cur = cur[:0]
	}
	for _, r := range s {
		k := 2
		switch {
		case unicode.IsSpace(r):
			k = 0
		case unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_' || r == '-' || r == '\'':
			k = 1
		}
		if kind == -1 {
			kind = k
		}
		if k != kind {
			flush()
			kind = k
		}
		cur = append(cur, r)
	}
	flush()
	return out
}

type WordDelta struct {
	Op   int
	Text string
}

// DiffWords returns word-level deltas between a and b. Op is -1 for words
// only in a, +1 for words only in b, 0 for common words.
func DiffWords(a, b string) []WordDelta {
	at := TokenizeWords(a)
	bt := TokenizeWords(b)
	recs := difflib.Diff(at, bt)
	out := make([]WordDelta, 0, len(recs))
	for _, r := range recs {
		switch r.Delta {
		case difflib.Common:
			out = append(out, WordDelta{Op: 0, Text: r.Payload})
		case difflib.LeftOnly:
			out = append(out, WordDelta{Op: -1, Text: r.Payload})
		case difflib.RightOnly:
			out = append(out, WordDelta{Op: +1, Text: r.Payload})
		}
	}
	return out
}

// ChangeRatio reports the fraction of diffed words that changed between a
// and b: 0 for identical text, 1 when nothing survived.
func ChangeRatio(a, b string) float64 {
	deltas := DiffWords(a, b)
	if len(deltas) == 0 {
		return 0
	}
	var changed int
	for _, d := range deltas {
		if d.Op != 0 {
			changed++
		}
	}
	return float64(changed) / float64(len(deltas))
}
