// Package match locates a search phrase inside a character-style sequence.
// Exact case-insensitive substring search first; when that fails, a
// fallback span from the phrase's first word to its last word.
package match

import (
	"strings"
	"unicode"

	"github.com/Jayesh-JainX/stylecheck/core"
)

// Find returns the span of the phrase inside the sequence, or ok=false
// when neither strategy locates it. A miss is a normal result, not an
// error. All indexes are rune positions into the sequence.
func Find(seq core.Sequence, phrase string) (core.Span, bool) {
	hay := lowerRunes(seq.Text())
	needle := lowerRunes(phrase)
	if len(needle) == 0 {
		return core.Span{}, false
	}

	if pos := indexFrom(hay, needle, 0); pos >= 0 {
		return core.Span{Start: pos, End: pos + len(needle)}, true
	}
	return partial(hay, phrase)
}

// partial derives a span from the first occurrence of the phrase's first
// word and, searching forward from the end of that match, the first
// occurrence of its last word. The span may include unrelated intervening
// text when words recur; that breadth is accepted for tolerance to
// formatting artifacts that split a phrase.
func partial(hay []rune, phrase string) (core.Span, bool) {
	words := strings.Fields(strings.ToLower(phrase))
	if len(words) < 2 {
		return core.Span{}, false
	}

	first := []rune(words[0])
	firstPos := indexFrom(hay, first, 0)
	if firstPos < 0 {
		return core.Span{}, false
	}

	last := []rune(words[len(words)-1])
	lastPos := indexFrom(hay, last, firstPos+len(first))
	if lastPos < 0 {
		return core.Span{}, false
	}

	return core.Span{Start: firstPos, End: lastPos + len(last)}, true
}

// indexFrom is a rune-wise substring search starting at from. Byte-offset
// search would desynchronize the span from the sequence indexes on
// multi-byte characters.
func indexFrom(hay, needle []rune, from int) int {
	if from < 0 {
		from = 0
	}
	for i := from; i+len(needle) <= len(hay); i++ {
		matched := true
		for j, r := range needle {
			if hay[i+j] != r {
				matched = false
				break
			}
		}
		if matched {
			return i
		}
	}
	return -1
}

// lowerRunes lowercases rune by rune, preserving the rune count so that
// positions in the lowered text map 1:1 onto sequence indexes.
func lowerRunes(s string) []rune {
	rs := []rune(s)
	for i, r := range rs {
		rs[i] = unicode.ToLower(r)
	}
	return rs
}
