// Package core defines the shared data model for StyleCheck.
// Each stage of the pipeline (parse, match, report) operates on these types.
package core

import (
	"strconv"
	"strings"
)

// DefaultColor is the color of text that carries no explicit color.
const DefaultColor = "black"

// NoCharacter is the descriptor used when a match touches a sequence
// boundary and there is no adjacent character to describe.
const NoCharacter = "NO CHARACTER"

// CharStyle records the formatting in effect for exactly one character
// of extracted text.
type CharStyle struct {
	Char      rune    `json:"char"`
	Bold      bool    `json:"bold"`
	Italic    bool    `json:"italic"`
	Underline bool    `json:"underline"`
	Color     string  `json:"color"`
	FontSize  float64 `json:"font_size,omitempty"` // 0 = unknown; only the PDF parser sets it
}

// Descriptor composes the style tokens in fixed order:
// BOLD, ITALIC, UNDERLINED, COLOR:<value>, SIZE:<value>.
// A character with no active attributes is "NORMAL".
func (c CharStyle) Descriptor() string {
	var tokens []string
	if c.Bold {
		tokens = append(tokens, "BOLD")
	}
	if c.Italic {
		tokens = append(tokens, "ITALIC")
	}
	if c.Underline {
		tokens = append(tokens, "UNDERLINED")
	}
	if c.Color != "" && c.Color != DefaultColor {
		tokens = append(tokens, "COLOR:"+c.Color)
	}
	if c.FontSize > 0 {
		tokens = append(tokens, "SIZE:"+strconv.FormatFloat(c.FontSize, 'f', -1, 64))
	}
	if len(tokens) == 0 {
		return "NORMAL"
	}
	return strings.Join(tokens, " ")
}

// Sequence is the ordered per-character style record of one document.
// Index i corresponds to character i of the extracted plain text; every
// downstream position calculation depends on that alignment.
type Sequence []CharStyle

// Text concatenates the Char fields back into the extracted plain text.
func (s Sequence) Text() string {
	var b strings.Builder
	b.Grow(len(s))
	for _, c := range s {
		b.WriteRune(c.Char)
	}
	return b.String()
}

// Span is a half-open [Start, End) range of character indexes into a
// Sequence, identifying a located phrase.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns the number of characters covered by the span.
func (s Span) Len() int { return s.End - s.Start }

// StyleReport describes the formatting around a located phrase.
// Before and After are nil when the match touches the corresponding
// sequence boundary.
type StyleReport struct {
	Span    Span       `json:"span"`
	Before  *CharStyle `json:"before,omitempty"`
	After   *CharStyle `json:"after,omitempty"`
	Context string     `json:"context"`
}
