// Package bfs provides breadth-first search over a core.Graph,
// returning minimum edge-count distances, parent links, and visit order.
//
// BFS explores vertices in increasing distance from a start vertex,
// with optional hooks, depth limiting, and neighbor filtering.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/digraph/core"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem struct {
	v     core.Vertex
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   core.Graph
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited map[core.Vertex]bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from start, applying any
// number of functional Options. Either graph variant works; edge costs are
// ignored, only the successor structure matters.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
// Complexity: O(V + E) plus hook overhead.
func BFS(g core.Graph, start core.Vertex, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start vertex
	if !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	// Prepare walker
	n := g.VertexCount()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[core.Vertex]bool, n),
		res: &BFSResult{
			Order:  make([]core.Vertex, 0, n),
			Depth:  make(map[core.Vertex]int, n),
			Parent: make(map[core.Vertex]core.Vertex, n),
		},
	}

	// Seed queue with the start vertex; the root records no parent.
	w.visited[start] = true
	w.res.Depth[start] = 0
	w.opts.OnEnqueue(start, 0)
	w.queue = append(w.queue, queueItem{v: start, depth: 0})

	// Main loop
	return w.res, w.loop()
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}
	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.v, item.depth)
	return item
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.v)
	if err := w.opts.OnVisit(item.v, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.v, err)
	}
	return nil
}

// enqueueNeighbors retrieves successors, applies filtering and MaxDepth,
// and enqueues each unseen neighbor with a parent link.
func (w *walker) enqueueNeighbors(item queueItem) error {
	successors, err := w.graph.Successors(item.v)
	if err != nil {
		return fmt.Errorf("bfs: successors of %v: %w", item.v, err)
	}
	for _, nbr := range successors {
		// cancellation check inside neighbor iteration
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		if !w.opts.FilterNeighbor(item.v, nbr) {
			continue
		}
		nextDepth := item.depth + 1
		if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
			continue
		}

		// first time seen?
		if !w.visited[nbr] {
			w.visited[nbr] = true
			w.res.Depth[nbr] = nextDepth
			w.res.Parent[nbr] = item.v
			w.opts.OnEnqueue(nbr, nextDepth)
			w.queue = append(w.queue, queueItem{v: nbr, depth: nextDepth})
		}
	}
	return nil
}
