// Package core: WeightedDigraph, the cost-bearing directed graph.
//
// The weighted variant stores each edge cost three times: in the successor
// row, in the predecessor row, and in a flat weights map keyed by the ordered
// pair. All three must agree at all times; every mutation below writes or
// purges them together, and validates its preconditions before touching any
// of them, so a failed call never leaves partial state behind.

package core

import "fmt"

// WeightedDigraph is an in-memory directed graph with int64 edge costs.
//
// Costs are signed; storage imposes no sign constraint (Dijkstra applies its
// own). The zero value is not usable; construct with NewWeightedDigraph.
type WeightedDigraph struct {
	preds   map[Vertex]map[Vertex]int64 // vertex -> predecessor -> cost
	succs   map[Vertex]map[Vertex]int64 // vertex -> successor -> cost
	weights map[edgeKey]int64           // ordered pair -> cost
}

// NewWeightedDigraph creates an empty weighted directed graph.
// Complexity: O(1).
func NewWeightedDigraph() *WeightedDigraph {
	return &WeightedDigraph{
		preds:   make(map[Vertex]map[Vertex]int64),
		succs:   make(map[Vertex]map[Vertex]int64),
		weights: make(map[edgeKey]int64),
	}
}

// AddVertex inserts v with empty predecessor and successor rows.
// Returns ErrVertexExists if v is already present.
// Complexity: O(1) amortized.
func (g *WeightedDigraph) AddVertex(v Vertex) error {
	if _, exists := g.preds[v]; exists {
		return ErrVertexExists
	}
	g.preds[v] = make(map[Vertex]int64)
	g.succs[v] = make(map[Vertex]int64)

	return nil
}

// RemoveVertex deletes v, every edge incident to it, and the weights
// entries of those edges. Returns ErrVertexNotFound if v is absent.
// Complexity: O(deg(v)).
func (g *WeightedDigraph) RemoveVertex(v Vertex) error {
	if _, exists := g.preds[v]; !exists {
		return ErrVertexNotFound
	}
	for p := range g.preds[v] {
		delete(g.succs[p], v)
		delete(g.weights, edgeKey{p, v})
	}
	for s := range g.succs[v] {
		delete(g.preds[s], v)
		delete(g.weights, edgeKey{v, s})
	}
	delete(g.preds, v)
	delete(g.succs, v)

	return nil
}

// AddEdge inserts the directed edge (u, v) carrying cost, writing all three
// cost representations. Both endpoints must already exist.
// Returns ErrVertexNotFound if either endpoint is absent,
// ErrEdgeExists if the edge is already present.
// Complexity: O(1).
func (g *WeightedDigraph) AddEdge(u, v Vertex, cost int64) error {
	if !g.HasVertex(u) || !g.HasVertex(v) {
		return ErrVertexNotFound
	}
	if _, dup := g.succs[u][v]; dup {
		return ErrEdgeExists
	}
	g.succs[u][v] = cost
	g.preds[v][u] = cost
	g.weights[edgeKey{u, v}] = cost

	return nil
}

// RemoveEdge deletes the directed edge (u, v) and purges its weights entry.
// Returns ErrVertexNotFound if either endpoint is absent,
// ErrEdgeNotFound if the edge is not present.
// Complexity: O(1).
func (g *WeightedDigraph) RemoveEdge(u, v Vertex) error {
	if !g.HasVertex(u) || !g.HasVertex(v) {
		return ErrVertexNotFound
	}
	if _, exists := g.succs[u][v]; !exists {
		return ErrEdgeNotFound
	}
	delete(g.succs[u], v)
	delete(g.preds[v], u)
	delete(g.weights, edgeKey{u, v})

	return nil
}

// EdgeCost returns the cost of the edge (u, v).
// Returns ErrVertexNotFound if either endpoint is absent,
// ErrEdgeNotFound if the edge is not present.
// Complexity: O(1).
func (g *WeightedDigraph) EdgeCost(u, v Vertex) (int64, error) {
	if !g.HasVertex(u) || !g.HasVertex(v) {
		return 0, ErrVertexNotFound
	}
	cost, exists := g.weights[edgeKey{u, v}]
	if !exists {
		return 0, ErrEdgeNotFound
	}

	return cost, nil
}

// SetEdgeCost overwrites the cost of the existing edge (u, v) in all three
// representations. Same preconditions as EdgeCost.
// Complexity: O(1).
func (g *WeightedDigraph) SetEdgeCost(u, v Vertex, cost int64) error {
	if !g.HasVertex(u) || !g.HasVertex(v) {
		return ErrVertexNotFound
	}
	if _, exists := g.weights[edgeKey{u, v}]; !exists {
		return ErrEdgeNotFound
	}
	g.succs[u][v] = cost
	g.preds[v][u] = cost
	g.weights[edgeKey{u, v}] = cost

	return nil
}

// VertexCount returns the number of vertices. Complexity: O(1).
func (g *WeightedDigraph) VertexCount() int { return len(g.preds) }

// EdgeCount returns the number of edges. Complexity: O(V).
func (g *WeightedDigraph) EdgeCount() int { return countEdges(g.succs) }

// HasVertex reports whether v is present. Complexity: O(1).
func (g *WeightedDigraph) HasVertex(v Vertex) bool {
	_, exists := g.preds[v]

	return exists
}

// HasEdge reports whether the edge (u, v) is present; false for unknown
// endpoints. Complexity: O(1).
func (g *WeightedDigraph) HasEdge(u, v Vertex) bool {
	_, exists := g.succs[u][v]

	return exists
}

// Vertices returns all vertices in ascending order. Complexity: O(V log V).
func (g *WeightedDigraph) Vertices() []Vertex { return sortedKeys(g.succs) }

// Edges returns all edges, cost included, sorted by (From, To).
// Complexity: O(V log V + E log E).
func (g *WeightedDigraph) Edges() []Edge {
	out := make([]Edge, 0, g.EdgeCount())
	for _, u := range sortedKeys(g.succs) {
		for _, v := range sortedRow(g.succs[u]) {
			out = append(out, Edge{From: u, To: v, Cost: g.succs[u][v]})
		}
	}

	return out
}

// InDegree returns the number of predecessors of v.
func (g *WeightedDigraph) InDegree(v Vertex) (int, error) {
	row, exists := g.preds[v]
	if !exists {
		return 0, ErrVertexNotFound
	}

	return len(row), nil
}

// OutDegree returns the number of successors of v.
func (g *WeightedDigraph) OutDegree(v Vertex) (int, error) {
	row, exists := g.succs[v]
	if !exists {
		return 0, ErrVertexNotFound
	}

	return len(row), nil
}

// Predecessors returns the sorted predecessors of v.
func (g *WeightedDigraph) Predecessors(v Vertex) ([]Vertex, error) {
	row, exists := g.preds[v]
	if !exists {
		return nil, ErrVertexNotFound
	}

	return sortedRow(row), nil
}

// Successors returns the sorted successors of v.
func (g *WeightedDigraph) Successors(v Vertex) ([]Vertex, error) {
	row, exists := g.succs[v]
	if !exists {
		return nil, ErrVertexNotFound
	}

	return sortedRow(row), nil
}

// InboundEdges returns the sorted edges ending at v, costs included.
func (g *WeightedDigraph) InboundEdges(v Vertex) ([]Edge, error) {
	row, exists := g.preds[v]
	if !exists {
		return nil, ErrVertexNotFound
	}
	out := make([]Edge, 0, len(row))
	for _, p := range sortedRow(row) {
		out = append(out, Edge{From: p, To: v, Cost: row[p]})
	}

	return out, nil
}

// OutboundEdges returns the sorted edges starting at v, costs included.
func (g *WeightedDigraph) OutboundEdges(v Vertex) ([]Edge, error) {
	row, exists := g.succs[v]
	if !exists {
		return nil, ErrVertexNotFound
	}
	out := make([]Edge, 0, len(row))
	for _, s := range sortedRow(row) {
		out = append(out, Edge{From: v, To: s, Cost: row[s]})
	}

	return out, nil
}

// Isolated returns the sorted vertices with no incident edges.
func (g *WeightedDigraph) Isolated() []Vertex { return isolatedKeys(g.preds, g.succs) }

// String returns the graph in the normal text form, one "from to cost" line
// per edge and one "v -1" line per isolated vertex.
func (g *WeightedDigraph) String() string { return formatNormal(g.Edges(), g.Isolated(), true) }

// Label returns a short debug label with vertex and edge counts.
func (g *WeightedDigraph) Label() string {
	return fmt.Sprintf("WeightedDigraph(%d, %d)", g.VertexCount(), g.EdgeCount())
}
