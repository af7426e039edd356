// Package dijkstra implements Dijkstra's shortest-path algorithm over a
// core.WeightedGraph.
//
// Dijkstra computes the minimum-cost path from a single source vertex to
// all other reachable vertices in a graph with non-negative edge costs.
// It processes vertices in order of increasing cost using a min-heap
// priority queue with a lazy decrease-key strategy: improvements push
// duplicate heap entries, and stale entries are skipped when popped.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/digraph/core"
)

// Dijkstra computes minimum path costs from source to every vertex of g.
//
// Preconditions, validated in order:
//  1. g must be non-nil (ErrNilGraph).
//  2. Options must be valid (ErrOptionViolation).
//  3. g must contain source (ErrSourceNotFound).
//  4. No edge may carry a negative cost (ErrNegativeWeight); the whole
//     edge set is scanned up front so the failure is eager.
//
// The returned Result holds the full distance map (Inf for unreachable
// vertices) and predecessor links for path reconstruction via PathTo.
func Dijkstra(g core.WeightedGraph, source core.Vertex, opts ...Option) (*Result, error) {
	// 1) Validate graph
	if g == nil {
		return nil, ErrNilGraph
	}

	// 2) Build options and catch any invalid ones immediately
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 3) Validate source exists
	if !g.HasVertex(source) {
		return nil, ErrSourceNotFound
	}

	// 4) Pre-scan all edges to detect negative costs, fail fast
	if err := scanNegative(g); err != nil {
		return nil, err
	}

	// 5) Initialize state and run the main loop
	r := newRunner(g, cfg, source)
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// scanNegative walks the whole edge set once and reports the first
// negative cost. O(E).
func scanNegative(g core.WeightedGraph) error {
	for _, e := range g.Edges() {
		if e.Cost < 0 {
			return fmt.Errorf("%w: edge %v->%v cost=%d", ErrNegativeWeight, e.From, e.To, e.Cost)
		}
	}

	return nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       core.WeightedGraph
	options Options
	visited map[core.Vertex]bool
	pq      nodePQ
	res     *Result
}

// newRunner sets up initial distances (all Inf except the source) and
// seeds the priority queue with the source at cost zero.
func newRunner(g core.WeightedGraph, cfg Options, source core.Vertex) *runner {
	n := g.VertexCount()
	res := &Result{
		Dist: make(map[core.Vertex]int64, n),
		Prev: make(map[core.Vertex]core.Vertex, n),
	}
	for _, v := range g.Vertices() {
		res.Dist[v] = Inf
	}
	res.Dist[source] = 0

	r := &runner{
		g:       g,
		options: cfg,
		visited: make(map[core.Vertex]bool, n),
		pq:      make(nodePQ, 0, n),
		res:     res,
	}
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: source, dist: 0})

	return r
}

// process repeatedly extracts the lowest-cost vertex and relaxes its
// outbound edges. Terminates when the heap empties or the minimum cost
// in the heap exceeds MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)

		// Stale heap entry: this vertex was already finalized
		if r.visited[item.id] {
			continue
		}

		// Everything still queued is at least this far away
		if item.dist > r.options.MaxDistance {
			break
		}

		r.visited[item.id] = true
		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax attempts to improve the cost of every successor of u.
// Assumes Dist[u] is final.
func (r *runner) relax(u core.Vertex) error {
	outbound, err := r.g.OutboundEdges(u)
	if err != nil {
		return fmt.Errorf("dijkstra: outbound edges of %v: %w", u, err)
	}

	var newDist int64
	for _, e := range outbound {
		// Impassable wall
		if e.Cost >= r.options.InfEdgeThreshold {
			continue
		}

		newDist = r.res.Dist[u] + e.Cost
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strictly better only; equal-cost paths would duplicate entries
		if newDist >= r.res.Dist[e.To] {
			continue
		}

		r.res.Dist[e.To] = newDist
		r.res.Prev[e.To] = u
		heap.Push(&r.pq, &nodeItem{id: e.To, dist: newDist})
	}

	return nil
}

// nodeItem represents a vertex and its candidate cost from the source.
type nodeItem struct {
	id   core.Vertex
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending, used with
// the lazy decrease-key approach: improvements push new entries and
// outdated ones are ignored when popped.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x onto the heap; x must be of type *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
