// Package core: Digraph, the unweighted directed graph.
//
// Adjacency is stored twice, as predecessor sets and successor sets, so both
// directions of every query run in O(1) map steps. The two maps always hold
// exactly the same key set (the vertex set) and satisfy the mirror invariant:
// v in succs[u] if and only if u in preds[v].

package core

import "fmt"

// Digraph is an in-memory unweighted directed graph.
//
// The zero value is not usable; construct with NewDigraph. Digraph carries
// no internal locking, see the concurrency note in doc.go.
type Digraph struct {
	preds map[Vertex]map[Vertex]struct{} // vertex -> its predecessor set
	succs map[Vertex]map[Vertex]struct{} // vertex -> its successor set
}

// NewDigraph creates an empty unweighted directed graph.
// Complexity: O(1).
func NewDigraph() *Digraph {
	return &Digraph{
		preds: make(map[Vertex]map[Vertex]struct{}),
		succs: make(map[Vertex]map[Vertex]struct{}),
	}
}

// AddVertex inserts v with empty predecessor and successor sets.
// Returns ErrVertexExists if v is already present.
// Complexity: O(1) amortized.
func (g *Digraph) AddVertex(v Vertex) error {
	if _, exists := g.preds[v]; exists {
		return ErrVertexExists
	}
	g.preds[v] = make(map[Vertex]struct{})
	g.succs[v] = make(map[Vertex]struct{})

	return nil
}

// RemoveVertex deletes v and every edge incident to it.
// Returns ErrVertexNotFound if v is absent.
//
// Incident edges are detached from the neighbors' sets first, keeping the
// mirror invariant intact at every step, then v's own rows are dropped.
// Complexity: O(deg(v)).
func (g *Digraph) RemoveVertex(v Vertex) error {
	if _, exists := g.preds[v]; !exists {
		return ErrVertexNotFound
	}
	for p := range g.preds[v] {
		delete(g.succs[p], v)
	}
	for s := range g.succs[v] {
		delete(g.preds[s], v)
	}
	delete(g.preds, v)
	delete(g.succs, v)

	return nil
}

// AddEdge inserts the directed edge (u, v). Both endpoints must already
// exist: vertices are never created implicitly.
// Returns ErrVertexNotFound if either endpoint is absent,
// ErrEdgeExists if the edge is already present.
// Complexity: O(1).
func (g *Digraph) AddEdge(u, v Vertex) error {
	if !g.HasVertex(u) || !g.HasVertex(v) {
		return ErrVertexNotFound
	}
	if _, dup := g.succs[u][v]; dup {
		return ErrEdgeExists
	}
	g.succs[u][v] = struct{}{}
	g.preds[v][u] = struct{}{}

	return nil
}

// RemoveEdge deletes the directed edge (u, v) from both adjacency sides.
// Returns ErrVertexNotFound if either endpoint is absent,
// ErrEdgeNotFound if the edge is not present.
// Complexity: O(1).
func (g *Digraph) RemoveEdge(u, v Vertex) error {
	if !g.HasVertex(u) || !g.HasVertex(v) {
		return ErrVertexNotFound
	}
	if _, exists := g.succs[u][v]; !exists {
		return ErrEdgeNotFound
	}
	delete(g.succs[u], v)
	delete(g.preds[v], u)

	return nil
}

// VertexCount returns the number of vertices. Complexity: O(1).
func (g *Digraph) VertexCount() int { return len(g.preds) }

// EdgeCount returns the number of edges. Complexity: O(V).
func (g *Digraph) EdgeCount() int { return countEdges(g.succs) }

// HasVertex reports whether v is present. Complexity: O(1).
func (g *Digraph) HasVertex(v Vertex) bool {
	_, exists := g.preds[v]

	return exists
}

// HasEdge reports whether the edge (u, v) is present; false for unknown
// endpoints. Complexity: O(1).
func (g *Digraph) HasEdge(u, v Vertex) bool {
	_, exists := g.succs[u][v]

	return exists
}

// Vertices returns all vertices in ascending order. Complexity: O(V log V).
func (g *Digraph) Vertices() []Vertex { return sortedKeys(g.succs) }

// Edges returns all edges sorted by (From, To). Complexity: O(V log V + E log E).
func (g *Digraph) Edges() []Edge {
	out := make([]Edge, 0, g.EdgeCount())
	for _, u := range sortedKeys(g.succs) {
		for _, v := range sortedRow(g.succs[u]) {
			out = append(out, Edge{From: u, To: v})
		}
	}

	return out
}

// InDegree returns the number of predecessors of v.
func (g *Digraph) InDegree(v Vertex) (int, error) {
	row, exists := g.preds[v]
	if !exists {
		return 0, ErrVertexNotFound
	}

	return len(row), nil
}

// OutDegree returns the number of successors of v.
func (g *Digraph) OutDegree(v Vertex) (int, error) {
	row, exists := g.succs[v]
	if !exists {
		return 0, ErrVertexNotFound
	}

	return len(row), nil
}

// Predecessors returns the sorted predecessors of v.
func (g *Digraph) Predecessors(v Vertex) ([]Vertex, error) {
	row, exists := g.preds[v]
	if !exists {
		return nil, ErrVertexNotFound
	}

	return sortedRow(row), nil
}

// Successors returns the sorted successors of v.
func (g *Digraph) Successors(v Vertex) ([]Vertex, error) {
	row, exists := g.succs[v]
	if !exists {
		return nil, ErrVertexNotFound
	}

	return sortedRow(row), nil
}

// InboundEdges returns the sorted edges ending at v.
func (g *Digraph) InboundEdges(v Vertex) ([]Edge, error) {
	row, exists := g.preds[v]
	if !exists {
		return nil, ErrVertexNotFound
	}
	out := make([]Edge, 0, len(row))
	for _, p := range sortedRow(row) {
		out = append(out, Edge{From: p, To: v})
	}

	return out, nil
}

// OutboundEdges returns the sorted edges starting at v.
func (g *Digraph) OutboundEdges(v Vertex) ([]Edge, error) {
	row, exists := g.succs[v]
	if !exists {
		return nil, ErrVertexNotFound
	}
	out := make([]Edge, 0, len(row))
	for _, s := range sortedRow(row) {
		out = append(out, Edge{From: v, To: s})
	}

	return out, nil
}

// Isolated returns the sorted vertices with no incident edges.
func (g *Digraph) Isolated() []Vertex { return isolatedKeys(g.preds, g.succs) }

// String returns the graph in the normal text form, one "from to" line per
// edge and one "v -1" line per isolated vertex.
func (g *Digraph) String() string { return formatNormal(g.Edges(), g.Isolated(), false) }

// Label returns a short debug label with vertex and edge counts.
func (g *Digraph) Label() string {
	return fmt.Sprintf("Digraph(%d, %d)", g.VertexCount(), g.EdgeCount())
}
