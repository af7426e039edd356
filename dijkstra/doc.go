// Package dijkstra computes minimum-cost paths over a core.WeightedGraph
// with non-negative edge costs.
//
// What
//
//   - Dijkstra(g, source, opts...) finalizes vertices in order of
//     increasing cost via a min-heap with lazy decrease-key; returns a
//     Result with:
//   - Dist: map from vertex → minimum path cost (Inf if unreachable)
//   - Prev: map from vertex → predecessor on a minimum-cost path
//   - Result.PathTo reconstructs one minimum-cost path in O(path length).
//   - CountMinCostWalks(g, source, target) additionally counts how many
//     distinct minimum-cost walks reach target.
//   - Options: WithMaxDistance caps exploration; WithInfEdgeThreshold
//     treats expensive edges as impassable walls.
//
// Why
//
// Exact single-source shortest paths on static non-negative graphs,
// such as routing or scheduling costs. For minimum edge COUNT rather
// than cost, use bfs; on a unit-cost graph both agree.
//
// Determinism
//
// Cost ties inside the heap may finalize in either order, so Prev (and
// PathTo) may differ between equal-cost paths; Dist is always unique.
//
// Complexity
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) under lazy decrease-key
//
// Errors
//
//   - ErrNilGraph           graph is nil
//   - ErrSourceNotFound     source vertex not in graph
//   - ErrTargetNotFound     target vertex not in graph (counting only)
//   - ErrNegativeWeight     any edge with negative cost, found eagerly
//   - ErrOptionViolation    invalid option value
//   - ErrNoPath             PathTo destination unreached
package dijkstra
