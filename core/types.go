// Package core defines the central Vertex, Edge, and graph types.
//
// This file declares Vertex, Edge, the read-only Graph and WeightedGraph
// interfaces, and the sentinel errors shared by every graph operation.
package core

import (
	"cmp"
	"errors"
	"iter"
	"strconv"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrVertexExists indicates AddVertex was called with a vertex already present.
	ErrVertexExists = errors.New("core: vertex already exists")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrEdgeExists indicates AddEdge was called with an edge already present.
	ErrEdgeExists = errors.New("core: edge already exists")
)

// Vertex identifies a node in a directed graph.
//
// Equality, total order, and map-key hashing all derive from the integer
// identifier, so they are mutually consistent by construction: a == b holds
// exactly when the identifiers are equal, and exactly one of <, ==, > holds
// for any pair.
type Vertex int64

// Compare returns -1 if v < other, 0 if v == other, and +1 if v > other.
func (v Vertex) Compare(other Vertex) int { return cmp.Compare(v, other) }

// String returns the decimal form of the identifier.
func (v Vertex) String() string { return strconv.FormatInt(int64(v), 10) }

// Edge is an ordered pair of endpoints with an optional cost.
//
// Edges are derived from adjacency state on demand and never stored as
// separate entities. Unweighted graphs report Cost 0.
type Edge struct {
	// From is the source vertex.
	From Vertex

	// To is the destination vertex.
	To Vertex

	// Cost is the edge cost; always 0 on unweighted graphs.
	Cost int64
}

// edgeKey identifies a directed edge inside the weights map.
type edgeKey struct {
	from, to Vertex
}

// Graph is the read-only query surface shared by Digraph and WeightedDigraph.
//
// Algorithms accept this interface (or WeightedGraph) and never mutate the
// underlying graph; mutation stays on the concrete types because the two
// variants take different AddEdge signatures.
//
// Methods returning slices sort them in ascending vertex order so repeated
// calls on an unchanged graph yield identical results.
type Graph interface {
	// VertexCount returns the number of vertices.
	VertexCount() int

	// EdgeCount returns the number of edges, the sum of all in-degrees
	// (equivalently, of all out-degrees).
	EdgeCount() int

	// Vertices returns all vertices in ascending order.
	Vertices() []Vertex

	// Edges returns all edges sorted by (From, To).
	Edges() []Edge

	// VerticesSeq returns a lazy, restartable sequence over the vertex set.
	// Each range starts a fresh pass in ascending order. Mutating the graph
	// while a pass is in flight is a precondition violation (see doc.go).
	VerticesSeq() iter.Seq[Vertex]

	// EdgesSeq returns a lazy, restartable sequence over the edge set,
	// ordered by (From, To), under the same mutation precondition.
	EdgesSeq() iter.Seq[Edge]

	// HasVertex reports whether v is present. Never fails.
	HasVertex(v Vertex) bool

	// HasEdge reports whether the edge (u, v) is present.
	// Never fails; unknown endpoints simply answer false.
	HasEdge(u, v Vertex) bool

	// InDegree returns the number of predecessors of v,
	// or ErrVertexNotFound if v is absent.
	InDegree(v Vertex) (int, error)

	// OutDegree returns the number of successors of v,
	// or ErrVertexNotFound if v is absent.
	OutDegree(v Vertex) (int, error)

	// Predecessors returns the sorted predecessors of v,
	// or ErrVertexNotFound if v is absent.
	Predecessors(v Vertex) ([]Vertex, error)

	// Successors returns the sorted successors of v,
	// or ErrVertexNotFound if v is absent.
	Successors(v Vertex) ([]Vertex, error)

	// InboundEdges returns the sorted edges ending at v,
	// or ErrVertexNotFound if v is absent.
	InboundEdges(v Vertex) ([]Edge, error)

	// OutboundEdges returns the sorted edges starting at v,
	// or ErrVertexNotFound if v is absent.
	OutboundEdges(v Vertex) ([]Edge, error)

	// Isolated returns the sorted vertices with no incident edges.
	Isolated() []Vertex

	// String returns the graph in its text form: one "from to" line per edge
	// (plus a trailing cost on weighted graphs) and one "v -1" line per
	// isolated vertex.
	String() string

	// Label returns a short debug label carrying vertex and edge counts.
	Label() string
}

// WeightedGraph extends Graph with per-edge cost lookup.
type WeightedGraph interface {
	Graph

	// EdgeCost returns the cost of the edge (u, v).
	// Fails ErrVertexNotFound if either endpoint is absent,
	// ErrEdgeNotFound if the edge itself is.
	EdgeCost(u, v Vertex) (int64, error)
}
