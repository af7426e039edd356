// Package toposort linearizes acyclic digraphs and counts walks on them.
//
// Sort uses Kahn's method: repeatedly emit a vertex with no remaining
// inbound edges. Any vertex left unemitted sits on a cycle, so cyclic
// graphs are rejected rather than partially ordered.
package toposort

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/digraph/core"
)

var (
	// ErrNilGraph is returned when the input graph is nil.
	ErrNilGraph = errors.New("toposort: graph is nil")

	// ErrCyclicGraph is returned when no topological order exists.
	ErrCyclicGraph = errors.New("toposort: graph is cyclic")

	// ErrVertexNotFound is returned for a source vertex not in the graph.
	ErrVertexNotFound = errors.New("toposort: vertex not found")
)

// Option configures Sort.
type Option func(*options)

// options holds settings for Sort, currently only cancellation.
type options struct {
	ctx context.Context
}

func defaultOptions() options {
	return options{ctx: context.Background()}
}

// WithContext sets the cancellation context checked once per emitted
// vertex. Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// Sort returns a topological order of g: for every edge u→v, u precedes v.
//
// The frontier starts with the zero-in-degree vertices in ascending order
// and grows in sorted successor-scan order, so the result is stable across
// runs. A self-loop keeps its vertex out of the frontier forever and is
// therefore reported as a cycle like any longer one.
//
// Complexity: O(V + E) time, O(V) memory.
func Sort(g core.Graph, opts ...Option) ([]core.Vertex, error) {
	// 1. Validate graph pointer
	if g == nil {
		return nil, ErrNilGraph
	}
	// 2. Apply optional settings
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	// 3. Count inbound edges per vertex
	verts := g.Vertices()
	indeg := make(map[core.Vertex]int, len(verts))
	for _, v := range verts {
		d, err := g.InDegree(v)
		if err != nil {
			return nil, fmt.Errorf("toposort: in-degree of %v: %w", v, err)
		}
		indeg[v] = d
	}
	// 4. Seed the frontier; verts is ascending so the seed is too
	queue := make([]core.Vertex, 0, len(verts))
	for _, v := range verts {
		if indeg[v] == 0 {
			queue = append(queue, v)
		}
	}
	// 5. Emit and release until the frontier drains
	order := make([]core.Vertex, 0, len(verts))
	for head := 0; head < len(queue); head++ {
		select {
		case <-o.ctx.Done():
			return nil, o.ctx.Err()
		default:
		}

		u := queue[head]
		order = append(order, u)
		succs, err := g.Successors(u)
		if err != nil {
			return nil, fmt.Errorf("toposort: successors of %v: %w", u, err)
		}
		for _, w := range succs {
			indeg[w]--
			if indeg[w] == 0 {
				queue = append(queue, w)
			}
		}
	}
	// 6. Every vertex still holding inbound edges sits on a cycle
	if len(order) < len(verts) {
		return nil, fmt.Errorf("%w: ordered %d of %d vertices", ErrCyclicGraph, len(order), len(verts))
	}

	return order, nil
}
