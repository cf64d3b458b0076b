package parse

import (
	"fmt"
	"os"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/Jayesh-JainX/stylecheck/core"
)

// rtfDestinations are control groups that hold no document text. Their
// whole {...} group is skipped.
var rtfDestinations = map[string]bool{
	"fonttbl":    true,
	"colortbl":   true,
	"stylesheet": true,
	"info":       true,
	"pict":       true,
}

// parseRTF scans control words in a single left-to-right pass, keeping a
// mutable toggle state for bold, italic and underline. This is basic
// parsing on purpose: nested {} groups do not scope formatting.
func parseRTF(path string) (core.Sequence, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &core.ParseError{Path: path, Err: err}
	}
	content, err := decodeRTF(data)
	if err != nil {
		return nil, &core.ParseError{Path: path, Err: err}
	}
	return rtfSequence(content), nil
}

// decodeRTF tries UTF-8 first and falls back to Latin-1.
func decodeRTF(data []byte) (string, error) {
	if utf8.Valid(data) {
		return string(data), nil
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decoding failed after utf-8 and latin-1: %w", err)
	}
	return string(decoded), nil
}

func rtfSequence(content string) core.Sequence {
	rs := []rune(content)
	st := defaultAmbient()
	var seq core.Sequence

	for i := 0; i < len(rs); {
		switch c := rs[i]; c {
		case '\\':
			i = rtfControl(rs, i, &st)
		case '{':
			if end, ok := rtfGroupEnd(rs, i); ok {
				i = end
				continue
			}
			i++
		case '}':
			i++
		default:
			if unicode.IsPrint(c) || unicode.IsSpace(c) {
				// Control-word delimiters stay in the text; collapsing
				// space runs keeps a control word between two words from
				// doubling the separator.
				if c != ' ' || len(seq) == 0 || seq[len(seq)-1].Char != ' ' {
					seq = append(seq, st.charStyle(c))
				}
			}
			i++
		}
	}
	return seq
}

// rtfControl consumes the control word or escape starting at rs[i] == '\\'
// and updates the toggle state. The delimiter after the word is not
// consumed. Returns the index of the first rune after the control.
func rtfControl(rs []rune, i int, st *ambient) int {
	j := i + 1
	if j >= len(rs) {
		return j
	}

	// \'hh — hex-escaped character; skipped, not emitted.
	if rs[j] == '\'' {
		j++
		for k := 0; k < 2 && j < len(rs); k++ {
			j++
		}
		return j
	}

	// Control symbol or escaped brace/backslash: skip the single rune.
	if !isASCIILetter(rs[j]) {
		return j + 1
	}

	start := j
	for j < len(rs) && isASCIILetter(rs[j]) {
		j++
	}
	word := string(rs[start:j])

	paramStart := j
	if j < len(rs) && rs[j] == '-' {
		j++
	}
	for j < len(rs) && rs[j] >= '0' && rs[j] <= '9' {
		j++
	}
	param := string(rs[paramStart:j])

	on := param != "0"
	switch word {
	case "b":
		st.bold = on
	case "i":
		st.italic = on
	case "ul":
		st.underline = on
	}
	return j
}

// rtfGroupEnd detects a destination group opening at rs[i] == '{' and
// returns the index after its balanced closing brace.
func rtfGroupEnd(rs []rune, i int) (int, bool) {
	j := i + 1
	if j >= len(rs) || rs[j] != '\\' {
		return 0, false
	}
	j++
	if j < len(rs) && rs[j] == '*' {
		// {\*\...} — an unknown destination by definition.
	} else {
		start := j
		for j < len(rs) && isASCIILetter(rs[j]) {
			j++
		}
		if !rtfDestinations[string(rs[start:j])] {
			return 0, false
		}
	}

	depth := 1
	for j = i + 1; j < len(rs); j++ {
		switch rs[j] {
		case '\\':
			j++ // escaped rune, including \{ and \}
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return j + 1, true
			}
		}
	}
	return len(rs), true
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
