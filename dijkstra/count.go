package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/digraph/core"
)

// CountMinCostWalks reports how many distinct minimum-cost walks lead
// from source to target. It runs a Dijkstra sweep that carries a counter
// alongside each distance: a strictly cheaper path to a vertex resets
// its counter to the predecessor's, an equal-cost path accumulates it.
//
// Preconditions match Dijkstra: non-nil graph, both endpoints present,
// no negative edge costs. Returns 0 when target is unreachable; the walk
// of length zero makes the source count as 1 toward itself.
// Complexity: O((V + E) log V).
func CountMinCostWalks(g core.WeightedGraph, source, target core.Vertex) (int64, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return 0, ErrSourceNotFound
	}
	if !g.HasVertex(target) {
		return 0, ErrTargetNotFound
	}
	if err := scanNegative(g); err != nil {
		return 0, err
	}

	n := g.VertexCount()
	dist := make(map[core.Vertex]int64, n)
	count := make(map[core.Vertex]int64, n)
	for _, v := range g.Vertices() {
		dist[v] = Inf
	}
	dist[source] = 0
	count[source] = 1

	pq := make(nodePQ, 0, n)
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{id: source, dist: 0})

	var newDist int64
	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)

		// Stale entry: a cheaper path to this vertex was already found
		if item.dist > dist[item.id] {
			continue
		}

		outbound, err := g.OutboundEdges(item.id)
		if err != nil {
			return 0, fmt.Errorf("dijkstra: outbound edges of %v: %w", item.id, err)
		}
		for _, e := range outbound {
			newDist = item.dist + e.Cost
			switch {
			case newDist < dist[e.To]:
				dist[e.To] = newDist
				count[e.To] = count[item.id]
				heap.Push(&pq, &nodeItem{id: e.To, dist: newDist})
			case newDist == dist[e.To]:
				count[e.To] += count[item.id]
			}
		}
	}

	return count[target], nil
}
