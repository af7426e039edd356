// Package core: derived graphs (deep clones and induced subgraphs).

package core

// Clone returns a deep copy of the graph. The copy shares no state with the
// original; mutating one never affects the other.
// Complexity: O(V + E).
func (g *Digraph) Clone() *Digraph {
	return &Digraph{
		preds: copyAdjacency(g.preds),
		succs: copyAdjacency(g.succs),
	}
}

// Clone returns a deep copy of the graph, weights map included.
// Complexity: O(V + E).
func (g *WeightedDigraph) Clone() *WeightedDigraph {
	clone := &WeightedDigraph{
		preds:   copyAdjacency(g.preds),
		succs:   copyAdjacency(g.succs),
		weights: make(map[edgeKey]int64, len(g.weights)),
	}
	for k, cost := range g.weights {
		clone.weights[k] = cost
	}

	return clone
}

// InducedSubgraph returns a new graph over the given vertices and every edge
// of g whose endpoints are both kept. Vertices absent from g are ignored;
// g itself is never modified.
// Complexity: O(K + E_K) for K kept vertices and E_K surviving edges.
func (g *Digraph) InducedSubgraph(keep ...Vertex) *Digraph {
	sub := NewDigraph()
	for _, v := range keep {
		if g.HasVertex(v) && !sub.HasVertex(v) {
			sub.preds[v] = make(map[Vertex]struct{})
			sub.succs[v] = make(map[Vertex]struct{})
		}
	}
	for u := range sub.succs {
		for v := range g.succs[u] {
			if _, kept := sub.succs[v]; kept {
				sub.succs[u][v] = struct{}{}
				sub.preds[v][u] = struct{}{}
			}
		}
	}

	return sub
}

// InducedSubgraph returns a new weighted graph over the given vertices and
// every edge of g whose endpoints are both kept, costs preserved. Vertices
// absent from g are ignored; g itself is never modified.
// Complexity: O(K + E_K) for K kept vertices and E_K surviving edges.
func (g *WeightedDigraph) InducedSubgraph(keep ...Vertex) *WeightedDigraph {
	sub := NewWeightedDigraph()
	for _, v := range keep {
		if g.HasVertex(v) && !sub.HasVertex(v) {
			sub.preds[v] = make(map[Vertex]int64)
			sub.succs[v] = make(map[Vertex]int64)
		}
	}
	for u := range sub.succs {
		for v, cost := range g.succs[u] {
			if _, kept := sub.succs[v]; kept {
				sub.succs[u][v] = cost
				sub.preds[v][u] = cost
				sub.weights[edgeKey{u, v}] = cost
			}
		}
	}

	return sub
}
