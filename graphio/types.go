// Package graphio: the two text formats, their readers, and their writers.
package graphio

import (
	"errors"
	"strconv"
)

// Format selects one of the two text layouts.
type Format int

const (
	// FormatBig starts with a "<vertexCount> <edgeCount>" header, numbers
	// vertices implicitly 0..n-1, and lists one edge per line.
	FormatBig Format = iota

	// FormatNormal has no header: edge lines plus "<v> -1" markers for
	// isolated vertices, with vertices created on first mention.
	FormatNormal
)

// String returns the format's conventional name.
func (f Format) String() string {
	switch f {
	case FormatBig:
		return "big"
	case FormatNormal:
		return "normal"
	default:
		return "format(" + strconv.Itoa(int(f)) + ")"
	}
}

var (
	// ErrNilGraph is returned when a nil graph is given to Write or Save.
	ErrNilGraph = errors.New("graphio: graph is nil")

	// ErrMalformedInput is returned when file content violates the format:
	// non-integer tokens, wrong field counts, or a bad header. Violations
	// of graph invariants (duplicate edges, unknown vertices) keep their
	// core sentinels instead, wrapped with the offending line number.
	ErrMalformedInput = errors.New("graphio: malformed input")

	// ErrUnknownFormat is returned for a Format value this package does
	// not define.
	ErrUnknownFormat = errors.New("graphio: unknown format")
)
