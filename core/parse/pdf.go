package parse

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/ledongthuc/pdf"

	"github.com/Jayesh-JainX/stylecheck/core"
)

// FontClassifier infers bold/italic flags from a PDF font name. Font names
// are the only styling signal a PDF exposes per glyph, so this is a
// heuristic, not ground truth. Token sets are swappable without touching
// the extraction loop.
type FontClassifier struct {
	BoldTokens   []string
	ItalicTokens []string
}

// DefaultFontClassifier matches the conventional PostScript name suffixes.
var DefaultFontClassifier = FontClassifier{
	BoldTokens:   []string{"bold", "black"},
	ItalicTokens: []string{"italic", "oblique"},
}

// Bold reports whether the font name marks a bold face.
func (fc FontClassifier) Bold(font string) bool { return containsToken(font, fc.BoldTokens) }

// Italic reports whether the font name marks an italic face.
func (fc FontClassifier) Italic(font string) bool { return containsToken(font, fc.ItalicTokens) }

func containsToken(font string, tokens []string) bool {
	lower := strings.ToLower(font)
	for _, t := range tokens {
		if strings.Contains(lower, t) {
			return true
		}
	}
	return false
}

// parsePDF extracts characters page by page with their font name and size.
// Underline is not reliably detectable in a PDF and stays false.
func parsePDF(path string) (seq core.Sequence, err error) {
	// The reader panics on some malformed files; surface those as a
	// structural parse failure like any other.
	defer func() {
		if r := recover(); r != nil {
			seq = nil
			err = &core.ParseError{Path: path, Err: fmt.Errorf("pdf reader: %v", r)}
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, &core.ParseError{Path: path, Err: err}
	}
	defer f.Close()

	fc := DefaultFontClassifier
	total := r.NumPage()

	for pageNum := 1; pageNum <= total; pageNum++ {
		page := r.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		for _, t := range page.Content().Text {
			for _, ch := range t.S {
				if unicode.IsSpace(ch) && ch != ' ' {
					continue
				}
				seq = append(seq, core.CharStyle{
					Char:     ch,
					Bold:     fc.Bold(t.Font),
					Italic:   fc.Italic(t.Font),
					Color:    core.DefaultColor,
					FontSize: t.FontSize,
				})
			}
		}
		// Page break between pages of a multi-page document; a default
		// record, no font size.
		if total > 1 {
			seq = append(seq, core.CharStyle{Char: '\n', Color: core.DefaultColor})
		}
	}
	return seq, nil
}
