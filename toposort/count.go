package toposort

import (
	"fmt"

	"github.com/katalvlaran/digraph/core"
)

// CountWalks counts the distinct directed walks from source to every
// vertex, the empty walk included, so the source itself counts 1.
//
// The count propagates along a topological order: every walk into u
// extends over each edge u→w, hence walks[w] accumulates walks[u]. On an
// acyclic graph no walk revisits a vertex, so the counts equal the number
// of distinct paths. The returned map covers every vertex of g;
// unreachable ones hold 0.
//
// Counts use int64 and can overflow on DAGs with very many routes.
//
// Complexity: O(V + E) time, O(V) memory.
func CountWalks(g core.Graph, source core.Vertex) (map[core.Vertex]int64, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, source)
	}

	// A cyclic graph has unbounded walk counts; Sort rejects it for us.
	order, err := Sort(g)
	if err != nil {
		return nil, err
	}

	walks := make(map[core.Vertex]int64, len(order))
	for _, v := range order {
		walks[v] = 0
	}
	walks[source] = 1

	for _, u := range order {
		if walks[u] == 0 {
			continue
		}
		succs, err := g.Successors(u)
		if err != nil {
			return nil, fmt.Errorf("toposort: successors of %v: %w", u, err)
		}
		for _, w := range succs {
			walks[w] += walks[u]
		}
	}

	return walks, nil
}
