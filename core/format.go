// Package core: text rendering shared by both graph variants.

package core

import (
	"strconv"
	"strings"
)

// formatNormal renders edges and isolated vertices in the normal text form:
// one "from to" line per edge (with a trailing cost when weighted is true)
// and one "v -1" line per isolated vertex. Lines carry no trailing newline
// after the last one; an empty graph renders as the empty string.
//
// The same text is what the graphio writer emits, so String output of a
// graph round-trips through the normal-format reader.
func formatNormal(edges []Edge, isolated []Vertex, weighted bool) string {
	var b strings.Builder
	for i, e := range edges {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(e.From.String())
		b.WriteByte(' ')
		b.WriteString(e.To.String())
		if weighted {
			b.WriteByte(' ')
			b.WriteString(strconv.FormatInt(e.Cost, 10))
		}
	}
	for i, v := range isolated {
		if i > 0 || len(edges) > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(v.String())
		b.WriteString(" -1")
	}

	return b.String()
}
