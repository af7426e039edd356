// Package toposort orders the vertices of an acyclic digraph so that
// every edge points forward, and builds on that order to count walks.
//
// What
//
//   - Sort(g, opts...): Kahn's frontier method; emits zero-in-degree
//     vertices, releasing their successors as their last inbound edge
//     drops. Fails ErrCyclicGraph when any vertex never frees up.
//   - CountWalks(g, source): distinct directed walks from source to every
//     vertex, computed as a running sum along the topological order.
//   - Option: WithContext for cancellation between emitted vertices.
//
// Why
//
// A topological order is the precondition for single-pass dynamic
// programming over a digraph; walk counting is the canonical example and
// ships here as a ready-made operation.
//
// Determinism
//
// The frontier is seeded in ascending vertex order and grows in sorted
// successor-scan order; repeated runs produce identical output. The
// emitted order is one valid linearization, not the lexicographically
// smallest one.
//
// Complexity
//
//   - Time:   O(V + E) for both operations
//   - Memory: O(V)
//
// Errors
//
//   - ErrNilGraph        graph is nil
//   - ErrCyclicGraph     no topological order exists
//   - ErrVertexNotFound  CountWalks source not in graph
package toposort
