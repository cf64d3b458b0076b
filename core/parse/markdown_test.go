package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMarkdownStyles(t *testing.T) {
	path := writeFile(t, "doc.md",
		"# Title\n\nSome **bold** and *italic* text with `code`.\n")

	seq, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Title\nSome bold and italic text with code.\n", seq.Text())

	// Headings have no flag of their own in the model; they read as bold
	// and blue.
	h := styleAt(t, seq, "Title", 0)
	assert.True(t, h.Bold)
	assert.Equal(t, "blue", h.Color)
	assert.Equal(t, "BOLD COLOR:blue", h.Descriptor())

	assert.True(t, styleAt(t, seq, "bold", 0).Bold)
	assert.True(t, styleAt(t, seq, "italic", 0).Italic)
	assert.Equal(t, "red", styleAt(t, seq, "code", 0).Color)
	assert.Equal(t, "NORMAL", styleAt(t, seq, "Some", 0).Descriptor())
}

func TestParseMarkdownFencedCode(t *testing.T) {
	path := writeFile(t, "doc.md", "wrap\n\n```\nx := 1\n```\n")

	seq, err := Load(path)
	require.NoError(t, err)
	assert.Contains(t, seq.Text(), "x := 1")
	assert.Equal(t, "red", styleAt(t, seq, "x := 1", 0).Color)
}

func TestParseMarkdownHeadingLevels(t *testing.T) {
	path := writeFile(t, "doc.md", "## Second\n\n### Third\n")

	seq, err := Load(path)
	require.NoError(t, err)
	assert.True(t, styleAt(t, seq, "Second", 0).Bold)
	assert.True(t, styleAt(t, seq, "Third", 0).Bold)
}

func TestParseMarkdownIdempotent(t *testing.T) {
	path := writeFile(t, "doc.md", "some **stable** content\n")

	first, err := Load(path)
	require.NoError(t, err)
	second, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
