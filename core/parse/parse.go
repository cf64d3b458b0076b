// Package parse converts documents into ordered character-style sequences.
// One parser per format:
//   - .html/.htm — tree walk with an ambient style stack (goquery)
//   - .docx      — word/document.xml run properties (archive/zip + encoding/xml)
//   - .rtf       — single-pass toggle scanner over raw control words
//   - .md        — Markdown → HTML (goldmark), then the HTML walker
//   - .pdf       — per-glyph font name/size extraction (ledongthuc/pdf)
//
// All parsers are pure functions of file content: loading the same file
// twice yields identical sequences.
package parse

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/Jayesh-JainX/stylecheck/core"
)

// Load reads a document and returns its character-style sequence.
// It fails with core.ErrNotFound when the path does not resolve to a
// readable file, core.ErrUnsupportedFormat when the extension matches no
// parser, and *core.ParseError when the structural parse itself fails.
func Load(path string) (core.Sequence, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, core.ErrNotFound)
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory: %w", path, core.ErrNotFound)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".html", ".htm":
		return parseHTMLFile(path)
	case ".docx":
		return parseDocx(path)
	case ".rtf":
		return parseRTF(path)
	case ".md":
		return parseMarkdown(path)
	case ".pdf":
		return parsePDF(path)
	default:
		return nil, fmt.Errorf("%q: %w", ext, core.ErrUnsupportedFormat)
	}
}

// SupportedExtensions returns the extensions Load dispatches on.
func SupportedExtensions() []string {
	return []string{".html", ".htm", ".docx", ".rtf", ".md", ".pdf"}
}
