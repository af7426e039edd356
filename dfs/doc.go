// Package dfs implements depth-first traversal over a core.Graph.
//
// What
//
//   - DFS explores as far as possible along each branch before
//     backtracking, following outbound edges only. Returns a DFSResult:
//   - Order: discovery sequence
//   - Depth: map from vertex → tree distance from its root
//   - Parent: map from vertex → the vertex that discovered it
//   - Visited: set of reached vertices
//   - Reachable returns just the visited set, the reachability closure of
//     a single vertex.
//   - Supports an OnVisit hook (may abort with an error), depth limiting,
//     neighbor filtering, and forest traversal via WithFullTraversal.
//   - Accepts either graph variant; edge costs are ignored.
//
// Why
//
// Depth-first order underpins reachability queries, dependency walks, and
// component analysis. The scc package builds its passes on the same
// discipline.
//
// Determinism
//
// The walk is iterative with an explicit stack; successors are pushed in
// reverse sorted order, so discovery order equals that of a recursive walk
// over sorted adjacency and repeated runs agree exactly.
//
// Complexity
//
//   - Time:   O(V + E) plus hook and filter overhead
//   - Memory: O(V) for the stack and metadata maps
//
// Errors
//
//   - ErrGraphNil              graph is nil
//   - ErrStartVertexNotFound   start vertex not in graph
//   - context.Canceled         traversal cancelled via context
//   - hook errors              propagated from OnVisit
package dfs
