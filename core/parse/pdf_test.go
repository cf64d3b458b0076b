package parse

import (
	"path/filepath"
	"testing"

	"github.com/jung-kurt/gofpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jayesh-JainX/stylecheck/core"
)

func TestFontClassifier(t *testing.T) {
	fc := DefaultFontClassifier

	assert.True(t, fc.Bold("Helvetica-Bold"))
	assert.True(t, fc.Bold("Arial-BoldMT"))
	assert.True(t, fc.Bold("Roboto-Black"))
	assert.False(t, fc.Bold("Helvetica"))

	assert.True(t, fc.Italic("Times-Italic"))
	assert.True(t, fc.Italic("Courier-Oblique"))
	assert.False(t, fc.Italic("Times-Roman"))

	custom := FontClassifier{BoldTokens: []string{"heavy"}}
	assert.True(t, custom.Bold("Face-Heavy"))
	assert.False(t, custom.Bold("Helvetica-Bold"))
}

func TestParsePDFFontStyles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.pdf")

	doc := gofpdf.New("P", "mm", "A4", "")
	doc.AddPage()
	doc.SetFont("Helvetica", "B", 14)
	doc.Cell(60, 10, "Boldly")
	doc.Ln(12)
	doc.SetFont("Helvetica", "", 12)
	doc.Cell(60, 10, "normal")
	require.NoError(t, doc.OutputFileAndClose(path))

	seq, err := Load(path)
	require.NoError(t, err)
	text := seq.Text()
	require.Contains(t, text, "Boldly")
	require.Contains(t, text, "normal")

	b := styleAt(t, seq, "Boldly", 0)
	assert.True(t, b.Bold)
	assert.False(t, b.Italic)
	assert.Equal(t, 14.0, b.FontSize)
	assert.Equal(t, "BOLD SIZE:14", b.Descriptor())

	n := styleAt(t, seq, "normal", 0)
	assert.False(t, n.Bold)
	assert.Equal(t, 12.0, n.FontSize)

	// Underline is not detectable in a PDF; it must stay false.
	for _, c := range seq {
		assert.False(t, c.Underline)
	}
}

func TestParsePDFPageSeparator(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.pdf")

	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetFont("Helvetica", "", 12)
	doc.AddPage()
	doc.Cell(60, 10, "one")
	doc.AddPage()
	doc.Cell(60, 10, "two")
	require.NoError(t, doc.OutputFileAndClose(path))

	seq, err := Load(path)
	require.NoError(t, err)
	assert.Contains(t, seq.Text(), "one\n")
	assert.Contains(t, seq.Text(), "two")

	// The separator is a default record: no font size carried over.
	nl := styleAt(t, seq, "\n", 0)
	assert.Equal(t, core.CharStyle{Char: '\n', Color: core.DefaultColor}, nl)
}

func TestParsePDFCorrupt(t *testing.T) {
	path := writeFile(t, "doc.pdf", "%PDF-1.4 truncated garbage")

	_, err := Load(path)
	var parseErr *core.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestParsePDFIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.pdf")

	doc := gofpdf.New("P", "mm", "A4", "")
	doc.AddPage()
	doc.SetFont("Helvetica", "I", 11)
	doc.Cell(60, 10, "repeatable")
	require.NoError(t, doc.OutputFileAndClose(path))

	first, err := Load(path)
	require.NoError(t, err)
	second, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.True(t, styleAt(t, first, "repeatable", 0).Italic, "oblique face reads as italic")
}
