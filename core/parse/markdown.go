package parse

import (
	"bytes"
	"os"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/Jayesh-JainX/stylecheck/core"
)

// Markdown has no native bold-heading or colored-code concept in the
// character-style model, so both map onto it: heading text is bold and
// blue, code spans and fenced blocks are red.
const (
	markdownHeadingColor = "blue"
	markdownCodeColor    = "red"
)

// parseMarkdown converts the file to HTML and reuses the HTML walker with
// the markdown tag rules enabled.
func parseMarkdown(path string) (core.Sequence, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &core.ParseError{Path: path, Err: err}
	}

	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	var buf bytes.Buffer
	if err := md.Convert(data, &buf); err != nil {
		return nil, &core.ParseError{Path: path, Err: err}
	}

	seq, err := htmlSequence(buf.String(), walkOptions{markdown: true})
	if err != nil {
		return nil, &core.ParseError{Path: path, Err: err}
	}
	return seq, nil
}
