// Package report derives the before/after styles and a context window from
// a located match span.
package report

import (
	"strings"

	"github.com/Jayesh-JainX/stylecheck/core"
	"github.com/Jayesh-JainX/stylecheck/core/match"
)

// contextRadius is how many characters of surrounding text are included
// on each side of the match.
const contextRadius = 15

// Analyze locates the phrase and builds its style report. ok=false means
// the phrase was not found under either search strategy — a normal
// negative result.
func Analyze(seq core.Sequence, phrase string) (*core.StyleReport, bool) {
	span, ok := match.Find(seq, phrase)
	if !ok {
		return nil, false
	}
	return Build(seq, span), true
}

// Build derives the report for a span already known to lie within the
// sequence. Before/After stay nil when the span touches a boundary.
func Build(seq core.Sequence, span core.Span) *core.StyleReport {
	rep := &core.StyleReport{Span: span}

	if span.Start > 0 {
		c := seq[span.Start-1]
		rep.Before = &c
	}
	if span.End < len(seq) {
		c := seq[span.End]
		rep.After = &c
	}
	rep.Context = contextWindow(seq, span)
	return rep
}

// Describe renders a style descriptor, or the no-character sentinel for a
// boundary side.
func Describe(c *core.CharStyle) string {
	if c == nil {
		return core.NoCharacter
	}
	return c.Descriptor()
}

// contextWindow returns up to contextRadius characters on each side of
// the match plus the matched text, with an ellipsis marking each side
// where available text was truncated.
func contextWindow(seq core.Sequence, span core.Span) string {
	start := span.Start - contextRadius
	if start < 0 {
		start = 0
	}
	end := span.End + contextRadius
	if end > len(seq) {
		end = len(seq)
	}

	var b strings.Builder
	if start > 0 {
		b.WriteString("...")
	}
	for _, c := range seq[start:end] {
		b.WriteRune(c.Char)
	}
	if end < len(seq) {
		b.WriteString("...")
	}
	return b.String()
}
