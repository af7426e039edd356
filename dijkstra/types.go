// Package dijkstra defines types, options, and error values for
// Dijkstra's shortest-path algorithm on weighted digraphs.
package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/digraph/core"
)

// Inf marks an unreachable vertex in Result.Dist.
const Inf int64 = math.MaxInt64

// Sentinel errors returned by the dijkstra package.
var (
	// ErrNilGraph indicates that a nil graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrSourceNotFound indicates that the source vertex does not exist
	// in the provided graph.
	ErrSourceNotFound = errors.New("dijkstra: source vertex not found")

	// ErrTargetNotFound indicates that the target vertex does not exist
	// in the provided graph.
	ErrTargetNotFound = errors.New("dijkstra: target vertex not found")

	// ErrNegativeWeight indicates that a negative edge cost was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrNoPath is returned by Result.PathTo when the destination was
	// not reached from the source.
	ErrNoPath = errors.New("dijkstra: no path")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")
)

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Options configures the behavior of the Dijkstra algorithm.
// Invalid option values are recorded internally and surfaced as
// ErrOptionViolation when Dijkstra is invoked.
type Options struct {
	// MaxDistance caps exploration: vertices whose minimum cost would
	// exceed it are never finalized. Default is Inf (no cap).
	MaxDistance int64

	// InfEdgeThreshold treats edges with cost ≥ this value as impassable
	// walls and skips them entirely. Default is Inf (no walls).
	InfEdgeThreshold int64

	err error
}

// DefaultOptions returns the Options defaults: no distance cap and no
// impassable-edge threshold.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      Inf,
		InfEdgeThreshold: Inf,
	}
}

// WithMaxDistance sets a maximum cost threshold. Vertices whose minimum
// cost would exceed max are not explored.
//
//	max < 0: invalid option → ErrOptionViolation
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: MaxDistance cannot be negative (%d)", ErrOptionViolation, max)

			return
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a cost threshold at or above which edges
// are considered non-traversable and skipped.
//
//	threshold <= 0: invalid option → ErrOptionViolation
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			o.err = fmt.Errorf("%w: InfEdgeThreshold must be positive (%d)", ErrOptionViolation, threshold)

			return
		}
		o.InfEdgeThreshold = threshold
	}
}

// Result captures the outcome of one Dijkstra run.
type Result struct {
	// Dist maps every vertex of the graph to its minimum path cost from
	// the source; Inf marks unreachable vertices.
	Dist map[core.Vertex]int64

	// Prev maps each reached vertex to its predecessor on a minimum-cost
	// path. The source and unreached vertices have no entry.
	Prev map[core.Vertex]core.Vertex
}

// PathTo reconstructs a minimum-cost path from the source to dest using
// the predecessor links. Returns ErrNoPath if dest was not reached.
// Complexity: O(L) for a path of L vertices.
func (r *Result) PathTo(dest core.Vertex) ([]core.Vertex, error) {
	d, ok := r.Dist[dest]
	if !ok || d == Inf {
		return nil, fmt.Errorf("%w: %v unreached", ErrNoPath, dest)
	}

	// Walk predecessor links back to the source, then flip.
	path := []core.Vertex{dest}
	cur := dest
	for {
		p, found := r.Prev[cur]
		if !found {
			break
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
