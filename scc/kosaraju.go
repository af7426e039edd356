package scc

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/digraph/core"
)

// Kosaraju computes the strongly connected components of g in two
// passes: a full depth-first sweep recording finish order, then a sweep
// over the transpose in decreasing finish order. The stored predecessor
// adjacency serves as the transpose, so no reversed graph is
// materialized. Components are emitted in topological order of the
// condensation and sorted ascending internally.
//
// Kosaraju and Tarjan always produce the same partition; only the
// component order differs. Complexity: O(V + E).
func Kosaraju(g core.Graph) ([][]core.Vertex, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	finish, err := finishOrder(g)
	if err != nil {
		return nil, err
	}

	n := g.VertexCount()
	assigned := make(map[core.Vertex]bool, n)
	var comps [][]core.Vertex
	for i := len(finish) - 1; i >= 0; i-- {
		root := finish[i]
		if assigned[root] {
			continue
		}
		comp, cerr := collect(g, root, assigned)
		if cerr != nil {
			return nil, cerr
		}
		slices.Sort(comp)
		comps = append(comps, comp)
	}

	return comps, nil
}

// kosarajuFrame tracks one vertex and its successor scan position during
// the finish-order pass.
type kosarajuFrame struct {
	v     core.Vertex
	succs []core.Vertex
	next  int
}

// finishOrder runs an iterative depth-first sweep over every vertex in
// ascending order and records vertices as their frames complete. The
// last entry is the vertex that finished last.
func finishOrder(g core.Graph) ([]core.Vertex, error) {
	n := g.VertexCount()
	visited := make(map[core.Vertex]bool, n)
	finish := make([]core.Vertex, 0, n)
	var frames []kosarajuFrame

	open := func(v core.Vertex) error {
		visited[v] = true
		succs, err := g.Successors(v)
		if err != nil {
			return fmt.Errorf("scc: successors of %v: %w", v, err)
		}
		frames = append(frames, kosarajuFrame{v: v, succs: succs})

		return nil
	}

	for _, root := range g.Vertices() {
		if visited[root] {
			continue
		}
		if err := open(root); err != nil {
			return nil, err
		}
		for len(frames) > 0 {
			f := &frames[len(frames)-1]
			if f.next < len(f.succs) {
				w := f.succs[f.next]
				f.next++
				if !visited[w] {
					if err := open(w); err != nil {
						return nil, err
					}
				}

				continue
			}
			finish = append(finish, f.v)
			frames = frames[:len(frames)-1]
		}
	}

	return finish, nil
}

// collect grows one component from root by walking predecessor edges,
// claiming every vertex it reaches.
func collect(g core.Graph, root core.Vertex, assigned map[core.Vertex]bool) ([]core.Vertex, error) {
	comp := make([]core.Vertex, 0, 2)
	stack := []core.Vertex{root}
	assigned[root] = true

	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		comp = append(comp, v)

		preds, err := g.Predecessors(v)
		if err != nil {
			return nil, fmt.Errorf("scc: predecessors of %v: %w", v, err)
		}
		for _, w := range preds {
			if !assigned[w] {
				assigned[w] = true
				stack = append(stack, w)
			}
		}
	}

	return comp, nil
}
