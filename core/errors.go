package core

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the load pipeline. A missing phrase is not
// an error anywhere in this package tree; search misses are reported as a
// normal ok=false result.
var (
	// ErrNotFound means the path does not resolve to a readable file.
	ErrNotFound = errors.New("file not found")

	// ErrUnsupportedFormat means the file extension matches no parser.
	ErrUnsupportedFormat = errors.New("unsupported file format")
)

// ParseError wraps a structural parse failure: corrupt content, a decode
// failure after both attempted encodings, or a library error/panic.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
