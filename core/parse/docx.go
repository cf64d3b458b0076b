package parse

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Jayesh-JainX/stylecheck/core"
)

// parseDocx streams word/document.xml from the ZIP archive, applying each
// run's explicit formatting to every character of the run. A paragraph
// boundary emits a newline carrying the paragraph's last run style.
func parseDocx(path string) (core.Sequence, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, &core.ParseError{Path: path, Err: fmt.Errorf("open zip: %w", err)}
	}
	defer r.Close()

	var docFile *zip.File
	for _, f := range r.File {
		if f.Name == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return nil, &core.ParseError{Path: path, Err: errors.New("word/document.xml not found in archive")}
	}

	rc, err := docFile.Open()
	if err != nil {
		return nil, &core.ParseError{Path: path, Err: fmt.Errorf("open document.xml: %w", err)}
	}
	defer rc.Close()

	seq, err := docxSequence(rc)
	if err != nil {
		return nil, &core.ParseError{Path: path, Err: err}
	}
	return seq, nil
}

func docxSequence(r io.Reader) (core.Sequence, error) {
	decoder := xml.NewDecoder(r)

	var (
		seq        core.Sequence
		run        ambient // current run formatting
		parTrail   ambient // formatting of the paragraph's last run
		inRun      bool
		inRunProps bool
		inText     bool
	)
	parTrail = defaultAmbient()

	for {
		tok, err := decoder.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("decode document.xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				parTrail = defaultAmbient()
			case "r":
				inRun = true
				run = defaultAmbient()
			case "rPr":
				inRunProps = inRun
			case "b":
				if inRunProps {
					run.bold = docxFlagOn(t)
				}
			case "i":
				if inRunProps {
					run.italic = docxFlagOn(t)
				}
			case "u":
				if inRunProps {
					run.underline = docxAttr(t, "val") != "none"
				}
			case "color":
				if inRunProps {
					if c := docxColor(docxAttr(t, "val")); c != "" {
						run.color = c
					}
				}
			case "t":
				inText = inRun
			case "tab":
				if inRun {
					seq = append(seq, run.charStyle('\t'))
				}
			case "br", "cr":
				if inRun {
					seq = append(seq, run.charStyle('\n'))
				}
			}

		case xml.CharData:
			if inText {
				for _, r := range string(t) {
					seq = append(seq, run.charStyle(r))
				}
			}

		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "rPr":
				inRunProps = false
			case "r":
				if inRun {
					parTrail = run
				}
				inRun = false
			case "p":
				seq = append(seq, parTrail.charStyle('\n'))
			}
		}
	}

	return seq, nil
}

// docxFlagOn reports whether a toggle property element turns its flag on.
// A bare <w:b/> is on; w:val of "0", "false" or "none" is off.
func docxFlagOn(t xml.StartElement) bool {
	switch docxAttr(t, "val") {
	case "0", "false", "none", "off":
		return false
	}
	return true
}

func docxAttr(t xml.StartElement, name string) string {
	for _, a := range t.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

// docxColor converts an RRGGBB run color into rgb(r,g,b). "auto", empty,
// and malformed values keep the default color; a single bad run should not
// fail the whole load.
func docxColor(val string) string {
	if val == "" || strings.EqualFold(val, "auto") || len(val) != 6 {
		return ""
	}
	n, err := strconv.ParseUint(val, 16, 32)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("rgb(%d,%d,%d)", (n>>16)&0xff, (n>>8)&0xff, n&0xff)
}
