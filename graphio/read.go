package graphio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/digraph/core"
)

// parseVertex converts one token, blaming the line on failure.
func parseVertex(tok string, line int) (core.Vertex, error) {
	n, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: line %d: vertex %q", ErrMalformedInput, line, tok)
	}

	return core.Vertex(n), nil
}

// parseCost converts one cost token, blaming the line on failure.
func parseCost(tok string, line int) (int64, error) {
	c, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: line %d: cost %q", ErrMalformedInput, line, tok)
	}

	return c, nil
}

// Read parses an unweighted digraph from r in the given format.
//
// Big format: the header's vertex count materializes vertices 0..n-1; the
// edge count is informational and never enforced. The first edge line
// fixes the layout for the rest of the file: two fields per line read
// strictly, or three fields per line from a costed file, in which case
// costs are discarded and repeated edges are skipped rather than rejected.
//
// Normal format: "<v> -1" adds an isolated vertex, "<u> <v>" adds an edge,
// creating unseen endpoints on the way. Repeated edges and repeated
// isolation markers fail with the usual core sentinels.
//
// Blank lines are skipped in both formats.
func Read(r io.Reader, f Format) (*core.Digraph, error) {
	switch f {
	case FormatBig:
		return readBig(r)
	case FormatNormal:
		return readNormal(r)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, f)
	}
}

// ReadWeighted parses a weighted digraph from r in the given format.
//
// Both formats carry a mandatory third field per edge line, the cost.
// Everything else matches Read, except that a costed big file reads
// strictly: a repeated edge is an error, not a skip.
func ReadWeighted(r io.Reader, f Format) (*core.WeightedDigraph, error) {
	switch f {
	case FormatBig:
		return readBigWeighted(r)
	case FormatNormal:
		return readNormalWeighted(r)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, f)
	}
}

// Load reads an unweighted digraph from the file at path.
func Load(path string, f Format) (*core.Digraph, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: open %s: %w", path, err)
	}
	defer file.Close()

	return Read(file, f)
}

// LoadWeighted reads a weighted digraph from the file at path.
func LoadWeighted(path string, f Format) (*core.WeightedDigraph, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: open %s: %w", path, err)
	}
	defer file.Close()

	return ReadWeighted(file, f)
}

// readHeader materializes vertices 0..n-1 from a big-format header line.
// Only the first token is used; the edge count after it is informational.
func readHeader(fields []string, line int, add func(core.Vertex) error) error {
	n, err := strconv.Atoi(fields[0])
	if err != nil || n < 0 {
		return fmt.Errorf("%w: line %d: vertex count %q", ErrMalformedInput, line, fields[0])
	}
	for i := 0; i < n; i++ {
		if err := add(core.Vertex(i)); err != nil {
			return fmt.Errorf("graphio: line %d: %w", line, err)
		}
	}

	return nil
}

func readBig(r io.Reader) (*core.Digraph, error) {
	g := core.NewDigraph()
	sc := bufio.NewScanner(r)

	lineNo := 0
	headerSeen := false
	costed := false
	arityKnown := false
	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if !headerSeen {
			if err := readHeader(fields, lineNo, g.AddVertex); err != nil {
				return nil, err
			}
			headerSeen = true

			continue
		}
		if !arityKnown {
			costed = len(fields) >= 3
			arityKnown = true
		}

		if costed {
			if len(fields) != 3 {
				return nil, fmt.Errorf("%w: line %d: expected 3 fields, got %d", ErrMalformedInput, lineNo, len(fields))
			}
			u, err := parseVertex(fields[0], lineNo)
			if err != nil {
				return nil, err
			}
			v, err := parseVertex(fields[1], lineNo)
			if err != nil {
				return nil, err
			}
			if _, err := parseCost(fields[2], lineNo); err != nil {
				return nil, err
			}
			// Costed files repeat edges; the first occurrence wins.
			if g.HasEdge(u, v) {
				continue
			}
			if err := g.AddEdge(u, v); err != nil {
				return nil, fmt.Errorf("graphio: line %d: %w", lineNo, err)
			}

			continue
		}

		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: line %d: expected 2 fields, got %d", ErrMalformedInput, lineNo, len(fields))
		}
		u, err := parseVertex(fields[0], lineNo)
		if err != nil {
			return nil, err
		}
		v, err := parseVertex(fields[1], lineNo)
		if err != nil {
			return nil, err
		}
		if err := g.AddEdge(u, v); err != nil {
			return nil, fmt.Errorf("graphio: line %d: %w", lineNo, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("graphio: read: %w", err)
	}

	return g, nil
}

func readBigWeighted(r io.Reader) (*core.WeightedDigraph, error) {
	g := core.NewWeightedDigraph()
	sc := bufio.NewScanner(r)

	lineNo := 0
	headerSeen := false
	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if !headerSeen {
			if err := readHeader(fields, lineNo, g.AddVertex); err != nil {
				return nil, err
			}
			headerSeen = true

			continue
		}
		if len(fields) != 3 {
			return nil, fmt.Errorf("%w: line %d: expected 3 fields, got %d", ErrMalformedInput, lineNo, len(fields))
		}
		u, err := parseVertex(fields[0], lineNo)
		if err != nil {
			return nil, err
		}
		v, err := parseVertex(fields[1], lineNo)
		if err != nil {
			return nil, err
		}
		cost, err := parseCost(fields[2], lineNo)
		if err != nil {
			return nil, err
		}
		if err := g.AddEdge(u, v, cost); err != nil {
			return nil, fmt.Errorf("graphio: line %d: %w", lineNo, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("graphio: read: %w", err)
	}

	return g, nil
}

func readNormal(r io.Reader) (*core.Digraph, error) {
	g := core.NewDigraph()
	sc := bufio.NewScanner(r)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) == 2 && fields[1] == "-1" {
			v, err := parseVertex(fields[0], lineNo)
			if err != nil {
				return nil, err
			}
			if err := g.AddVertex(v); err != nil {
				return nil, fmt.Errorf("graphio: line %d: %w", lineNo, err)
			}

			continue
		}
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: line %d: expected 2 fields, got %d", ErrMalformedInput, lineNo, len(fields))
		}
		u, err := parseVertex(fields[0], lineNo)
		if err != nil {
			return nil, err
		}
		v, err := parseVertex(fields[1], lineNo)
		if err != nil {
			return nil, err
		}
		for _, x := range []core.Vertex{u, v} {
			if !g.HasVertex(x) {
				if err := g.AddVertex(x); err != nil {
					return nil, fmt.Errorf("graphio: line %d: %w", lineNo, err)
				}
			}
		}
		if err := g.AddEdge(u, v); err != nil {
			return nil, fmt.Errorf("graphio: line %d: %w", lineNo, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("graphio: read: %w", err)
	}

	return g, nil
}

func readNormalWeighted(r io.Reader) (*core.WeightedDigraph, error) {
	g := core.NewWeightedDigraph()
	sc := bufio.NewScanner(r)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) == 2 && fields[1] == "-1" {
			v, err := parseVertex(fields[0], lineNo)
			if err != nil {
				return nil, err
			}
			if err := g.AddVertex(v); err != nil {
				return nil, fmt.Errorf("graphio: line %d: %w", lineNo, err)
			}

			continue
		}
		if len(fields) != 3 {
			return nil, fmt.Errorf("%w: line %d: expected 3 fields, got %d", ErrMalformedInput, lineNo, len(fields))
		}
		u, err := parseVertex(fields[0], lineNo)
		if err != nil {
			return nil, err
		}
		v, err := parseVertex(fields[1], lineNo)
		if err != nil {
			return nil, err
		}
		cost, err := parseCost(fields[2], lineNo)
		if err != nil {
			return nil, err
		}
		for _, x := range []core.Vertex{u, v} {
			if !g.HasVertex(x) {
				if err := g.AddVertex(x); err != nil {
					return nil, fmt.Errorf("graphio: line %d: %w", lineNo, err)
				}
			}
		}
		if err := g.AddEdge(u, v, cost); err != nil {
			return nil, fmt.Errorf("graphio: line %d: %w", lineNo, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("graphio: read: %w", err)
	}

	return g, nil
}
