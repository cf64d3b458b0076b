package parse

import (
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/Jayesh-JainX/stylecheck/core"
)

// ambient is the accumulated formatting at a point in the tree walk.
// It is copied on entering each element, so leaving a subtree restores
// the enclosing style without an explicit pop.
type ambient struct {
	bold      bool
	italic    bool
	underline bool
	color     string
}

func defaultAmbient() ambient { return ambient{color: core.DefaultColor} }

func (a ambient) charStyle(r rune) core.CharStyle {
	return core.CharStyle{
		Char:      r,
		Bold:      a.bold,
		Italic:    a.italic,
		Underline: a.underline,
		Color:     a.color,
	}
}

// walkOptions selects the tag rules applied during the walk. Markdown mode
// adds heading/code styling and keeps whitespace verbatim, since the
// generated HTML's newlines are what separates blocks of text.
type walkOptions struct {
	markdown bool
}

// skipTags contribute no content; their subtrees are not walked.
var skipTags = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"iframe":   true,
	"head":     true,
	"title":    true,
}

func parseHTMLFile(path string) (core.Sequence, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &core.ParseError{Path: path, Err: err}
	}
	seq, err := htmlSequence(string(data), walkOptions{})
	if err != nil {
		return nil, &core.ParseError{Path: path, Err: err}
	}
	return seq, nil
}

// htmlSequence parses markup and walks it from <body>, emitting one styled
// record per character of text content.
func htmlSequence(markup string, opts walkOptions) (core.Sequence, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	root := doc.Find("body")
	if root.Length() == 0 {
		root = doc.Selection
	}

	var seq core.Sequence
	for _, n := range root.Nodes {
		walkNode(n, defaultAmbient(), opts, &seq)
	}
	return seq, nil
}

func walkNode(n *html.Node, st ambient, opts walkOptions, out *core.Sequence) {
	switch n.Type {
	case html.TextNode:
		emitText(n.Data, st, opts, out)
		return
	case html.ElementNode:
		if skipTags[n.Data] {
			return
		}
		st = tagStyle(n.Data, st, opts)
		if attr := nodeAttr(n, "style"); attr != "" {
			applyDeclarations(attr, &st)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walkNode(c, st, opts, out)
	}
}

// tagStyle merges the formatting implied by a tag into the ambient style.
func tagStyle(tag string, st ambient, opts walkOptions) ambient {
	switch tag {
	case "b", "strong":
		st.bold = true
	case "i", "em":
		st.italic = true
	case "u":
		st.underline = true
	}
	if opts.markdown {
		switch tag {
		case "h1", "h2", "h3", "h4", "h5", "h6":
			// No distinct heading flag exists in the model; headings read
			// as bold, colored blue.
			st.bold = true
			st.color = markdownHeadingColor
		case "code":
			st.color = markdownCodeColor
		}
	}
	return st
}

// applyDeclarations merges inline CSS declarations into the ambient style.
// Declarations override tag-derived flags for the subtree.
func applyDeclarations(styleAttr string, st *ambient) {
	for _, decl := range strings.Split(styleAttr, ";") {
		prop, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		prop = strings.ToLower(strings.TrimSpace(prop))
		value = strings.TrimSpace(value)
		switch prop {
		case "font-weight":
			if strings.Contains(strings.ToLower(value), "bold") {
				st.bold = true
			}
		case "font-style":
			if strings.Contains(strings.ToLower(value), "italic") {
				st.italic = true
			}
		case "text-decoration":
			if strings.Contains(strings.ToLower(value), "underline") {
				st.underline = true
			}
		case "color":
			if value != "" {
				st.color = value
			}
		}
	}
}

// emitText appends one record per rune of a text node. Outside markdown
// mode, whitespace other than a plain space is markup layout, not content.
func emitText(text string, st ambient, opts walkOptions, out *core.Sequence) {
	for _, r := range text {
		if !opts.markdown && unicode.IsSpace(r) && r != ' ' {
			continue
		}
		*out = append(*out, st.charStyle(r))
	}
}

func nodeAttr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}
