// Package core provides the in-memory directed graph types that the rest of
// the module's algorithm packages operate on.
//
// Two variants share one read-only query surface (the Graph interface):
//
//   - Digraph: unweighted, adjacency stored as predecessor and successor sets.
//   - WeightedDigraph: int64 edge costs, adjacency rows carry the cost and a
//     flat weights map mirrors it per ordered pair (WeightedGraph interface).
//
// Structural invariants, maintained by every mutation:
//
//   - Mirror symmetry: v in successors(u) exactly when u in predecessors(v).
//   - The predecessor and successor maps hold exactly the vertex set as keys.
//   - Weighted only: weights[(u,v)] == successors[u][v] == predecessors[v][u]
//     for every present edge, and no entry survives for a removed edge.
//
// Lifecycle rules:
//
//   - Vertices exist only via AddVertex; AddEdge never creates endpoints.
//   - RemoveVertex cascades over incident edges before dropping the vertex,
//     keeping the mirror invariant intact at each intermediate step.
//   - Self-loops are permitted; parallel edges are not.
//   - Every operation validates its preconditions before mutating anything,
//     so a failed call leaves the graph exactly as it was.
//
// Determinism: Vertices(), Edges(), Predecessors(), Successors(), Isolated()
// and both Seq forms return ascending order, so repeated calls on an
// unchanged graph agree.
//
// Concurrency: none. The types carry no internal synchronization and are not
// safe for concurrent mutation; callers needing shared access serialize
// externally. Consuming VerticesSeq/EdgesSeq while mutating the same graph
// is likewise a precondition violation.
//
// Errors:
//
//	ErrVertexNotFound - operation referenced a missing vertex
//	ErrVertexExists   - AddVertex on a present vertex
//	ErrEdgeNotFound   - operation referenced a missing edge
//	ErrEdgeExists     - AddEdge on a present edge
package core
