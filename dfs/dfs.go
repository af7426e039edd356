// Package dfs implements depth-first traversal (single-source and forest)
// over a core.Graph.
//
// The walk is iterative: an explicit frontier stack replaces recursion, so
// deep or degenerate graphs (long chains, large cycles) cannot exhaust the
// goroutine stack. Successors are pushed in reverse sorted order, which
// makes the discovery sequence identical to a recursive walk over sorted
// adjacency.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/digraph/core"
)

// frame is one pending visit on the explicit DFS stack.
type frame struct {
	v         core.Vertex
	parent    core.Vertex
	depth     int
	hasParent bool
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph core.Graph
	opts  DFSOptions
	res   *DFSResult
}

// DFS performs depth-first search on graph g. If opts include
// WithFullTraversal, it covers all disconnected components; otherwise it
// starts only from start. Either graph variant works; edge costs are
// ignored, only the successor structure matters.
//
// On abort (context or hook error) the partially built result is returned
// alongside the error.
// Complexity: O(V + E) plus hook overhead.
func DFS(g core.Graph, start core.Vertex, opts ...Option) (*DFSResult, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Single-source mode: verify start
	if !dopts.FullTraversal && !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	// 4. Initialize result with capacity hint
	n := g.VertexCount()
	res := &DFSResult{
		Order:   make([]core.Vertex, 0, n),
		Depth:   make(map[core.Vertex]int, n),
		Parent:  make(map[core.Vertex]core.Vertex, n),
		Visited: make(map[core.Vertex]bool, n),
	}

	w := &dfsWalker{graph: g, opts: dopts, res: res}

	// 5. Traverse: forest or single tree
	if dopts.FullTraversal {
		for _, v := range g.Vertices() {
			if !res.Visited[v] {
				if err := w.traverse(v); err != nil {
					return res, err
				}
			}
		}
	} else {
		if err := w.traverse(start); err != nil {
			return res, err
		}
	}

	// 6. Expose diagnostics
	res.SkippedNeighbors = w.opts.SkippedNeighbors

	return res, nil
}

// Reachable reports the set of vertices reachable from start by directed
// paths, start included. It is a thin wrapper over the same walk as DFS.
// Complexity: O(V + E).
func Reachable(g core.Graph, start core.Vertex) (map[core.Vertex]bool, error) {
	res, err := DFS(g, start)
	if err != nil {
		return nil, err
	}

	return res.Visited, nil
}

// traverse runs one DFS tree from root using the explicit stack.
// It honors context cancellation, the depth limit, the visit hook, and
// neighbor filtering.
func (w *dfsWalker) traverse(root core.Vertex) error {
	stack := []frame{{v: root, depth: 0}}

	for len(stack) > 0 {
		// 1. Cancellation check once per pop
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		// 2. Pop the top frame
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// Frame may be stale: pushed before a deeper path claimed the vertex
		if w.res.Visited[top.v] {
			continue
		}

		// 3. Mark discovered and record metadata
		w.res.Visited[top.v] = true
		w.res.Depth[top.v] = top.depth
		if top.hasParent {
			w.res.Parent[top.v] = top.parent
		}
		w.res.Order = append(w.res.Order, top.v)

		// 4. Discovery hook
		if w.opts.OnVisit != nil {
			if err := w.opts.OnVisit(top.v); err != nil {
				return fmt.Errorf("dfs: OnVisit hook for %v: %w", top.v, err)
			}
		}

		// 5. Depth limit: do not expand past it
		if w.opts.MaxDepth >= 0 && top.depth >= w.opts.MaxDepth {
			continue
		}

		// 6. Push successors in reverse sorted order so the smallest is
		// explored first
		succs, err := w.graph.Successors(top.v)
		if err != nil {
			return fmt.Errorf("dfs: successors of %v: %w", top.v, err)
		}
		for i := len(succs) - 1; i >= 0; i-- {
			nbr := succs[i]
			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nbr) {
				w.opts.SkippedNeighbors++
				continue
			}
			if w.res.Visited[nbr] {
				continue
			}
			stack = append(stack, frame{v: nbr, parent: top.v, depth: top.depth + 1, hasParent: true})
		}
	}

	return nil
}
