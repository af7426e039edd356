// Package bfs provides breadth-first search over a core.Graph,
// returning minimum edge-count distances, parent links, and visit order.
//
// What
//
//   - Explore successors in non-decreasing distance (edge count) from a
//     start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - BFSResult.PathTo reconstructs the minimum-length path to any reached
//     vertex from the same pass.
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a vertex is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//   - Accepts either graph variant; edge costs are ignored.
//
// Why
//
//   - Compute shortest paths by edge count in O(V + E) time.
//   - Discover reachable subgraphs and level layering.
//   - On unit-cost graphs the Depth map agrees with Dijkstra distances,
//     which the test suite uses as a cross-check.
//
// Determinism
//
//	core.Graph.Successors returns vertices in ascending order and BFS
//	enqueues neighbors in that order, so the visit sequence is fully
//	reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)   (each vertex and edge seen at most once)
//   - Memory: O(V)       (for queue, Depth map, Parent map, visited set)
//
// Errors
//
//   - ErrGraphNil             if the graph is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if an invalid Option is given (e.g. negative MaxDepth).
//   - ErrNoPath               from BFSResult.PathTo for unreached vertices.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
