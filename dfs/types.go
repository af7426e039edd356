// Package dfs defines types and options for depth-first traversal,
// including cancellation, a discovery hook, depth limiting, neighbor
// filtering, and full-graph (forest) traversal.
package dfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/digraph/core"
)

var (
	// ErrGraphNil is returned when a nil graph is passed to DFS or Reachable.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start vertex
	// does not exist in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, start, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
// It controls the visit hook, limits, filtering, full-graph mode, and
// diagnostics. Complexity remains O(V+E) when filters and hooks are O(1).
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context aborts DFS early.
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a vertex is discovered.
	// Returning an error aborts traversal with that error.
	OnVisit func(v core.Vertex) error

	// MaxDepth, if non-negative, limits exploration to the given depth.
	// A depth of 0 visits only the start vertex. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each successor before it
	// is pushed. Return true to explore that successor, false to skip it.
	FilterNeighbor func(v core.Vertex) bool

	// FullTraversal, if true, runs DFS from every unvisited vertex in
	// ascending order, covering disconnected components (forest traversal).
	// The start argument is ignored in this mode. Default is false.
	FullTraversal bool

	// SkippedNeighbors tracks how many successors were skipped
	// due to FilterNeighbor returning false. Useful for diagnostics.
	SkippedNeighbors int
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - No visit hook
//   - No depth limit (MaxDepth = -1)
//   - No neighbor filtering
//   - Single-source traversal (FullTraversal = false)
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:              context.Background(),
		OnVisit:          nil,
		MaxDepth:         -1,
		FilterNeighbor:   nil,
		FullTraversal:    false,
		SkippedNeighbors: 0,
	}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit returns an Option that installs fn as a discovery hook.
// The hook is called when a vertex is first reached.
func WithOnVisit(fn func(v core.Vertex) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithMaxDepth returns an Option that limits traversal depth to limit.
// A limit of 0 means only the start vertex is visited; a negative limit
// restores the default (no limit).
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor returns an Option that filters successors.
// If fn(v) == false, that successor is skipped and counted in
// SkippedNeighbors.
func WithFilterNeighbor(fn func(v core.Vertex) bool) Option {
	return func(o *DFSOptions) {
		o.FilterNeighbor = fn
	}
}

// WithFullTraversal returns an Option that enables full-graph traversal.
// When set, DFS restarts from each unvisited vertex in ascending order,
// covering disconnected components.
func WithFullTraversal() Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
	}
}

// DFSResult captures the outcome of a depth-first traversal.
// It reports discovery order, depths, parent links, and visited flags,
// as well as diagnostics like SkippedNeighbors.
type DFSResult struct {
	// Order records vertices in the sequence they were discovered.
	Order []core.Vertex

	// Depth maps each vertex to its distance (#edges) from the root of
	// its DFS tree, along the tree path that discovered it.
	Depth map[core.Vertex]int

	// Parent maps each vertex to the vertex from which it was discovered.
	// The root of each DFS tree has no entry in this map.
	Parent map[core.Vertex]core.Vertex

	// Visited flags which vertices were reached during the traversal.
	Visited map[core.Vertex]bool

	// SkippedNeighbors reports how many successors were skipped
	// due to FilterNeighbor returning false, aggregated across all trees.
	SkippedNeighbors int
}
