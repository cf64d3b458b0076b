package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jayesh-JainX/stylecheck/core"
)

func seqFrom(text string) core.Sequence {
	var seq core.Sequence
	for _, r := range text {
		seq = append(seq, core.CharStyle{Char: r, Color: core.DefaultColor})
	}
	return seq
}

func TestAnalyzeStyles(t *testing.T) {
	seq := core.Sequence{
		{Char: 'B', Bold: true, Color: core.DefaultColor},
		{Char: 'f', Color: core.DefaultColor},
		{Char: 'o', Color: core.DefaultColor},
		{Char: 'o', Color: core.DefaultColor},
		{Char: 'I', Italic: true, Color: core.DefaultColor},
	}

	rep, ok := Analyze(seq, "foo")
	require.True(t, ok)
	assert.Equal(t, core.Span{Start: 1, End: 4}, rep.Span)
	require.NotNil(t, rep.Before)
	require.NotNil(t, rep.After)
	assert.Equal(t, "BOLD", Describe(rep.Before))
	assert.Equal(t, "ITALIC", Describe(rep.After))
}

func TestAnalyzeNotFound(t *testing.T) {
	rep, ok := Analyze(seqFrom("nothing to see"), "xyzxyz")
	assert.False(t, ok)
	assert.Nil(t, rep)
}

func TestBoundarySentinels(t *testing.T) {
	seq := seqFrom("hello world")

	rep, ok := Analyze(seq, "hello")
	require.True(t, ok)
	assert.Nil(t, rep.Before)
	assert.Equal(t, core.NoCharacter, Describe(rep.Before))
	require.NotNil(t, rep.After)
	assert.Equal(t, ' ', rep.After.Char)

	rep, ok = Analyze(seq, "world")
	require.True(t, ok)
	require.NotNil(t, rep.Before)
	assert.Nil(t, rep.After)
	assert.Equal(t, core.NoCharacter, Describe(rep.After))
}

func TestContextWindowTruncated(t *testing.T) {
	text := strings.Repeat("a", 20) + "match" + strings.Repeat("b", 20)
	rep, ok := Analyze(seqFrom(text), "match")
	require.True(t, ok)

	want := "..." + strings.Repeat("a", 15) + "match" + strings.Repeat("b", 15) + "..."
	assert.Equal(t, want, rep.Context)
}

func TestContextWindowClampedWithoutEllipsis(t *testing.T) {
	rep, ok := Analyze(seqFrom("ab match cd"), "match")
	require.True(t, ok)
	assert.Equal(t, "ab match cd", rep.Context)
}

func TestContextWindowOneSidedEllipsis(t *testing.T) {
	text := "match" + strings.Repeat("z", 30)
	rep, ok := Analyze(seqFrom(text), "match")
	require.True(t, ok)
	assert.Equal(t, "match"+strings.Repeat("z", 15)+"...", rep.Context)
}

func TestBuildWholeSequenceSpan(t *testing.T) {
	seq := seqFrom("all")
	rep := Build(seq, core.Span{Start: 0, End: 3})
	assert.Nil(t, rep.Before)
	assert.Nil(t, rep.After)
	assert.Equal(t, "all", rep.Context)
}
