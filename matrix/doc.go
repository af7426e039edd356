// Package matrix computes all-pairs cheapest walks by min-plus matrix
// products, the only method in this module that tolerates negative edge
// costs.
//
// What
//
//   - NewCostMatrix(g): the n×n one-step cost table; entry (u,v) is the
//     edge cost, Inf marks absence, the diagonal is zero. Fails fast on a
//     negative self-loop.
//   - Distances(g): iterates table ⊗ table products until stable (at most
//     n-1 rounds plus one verification round) and returns a Closure.
//   - Closure.Between(u, v): the cheapest walk cost, ErrNoPath on Inf.
//   - Closure.Path(u, v): one cheapest walk, reconstructed by testing
//     which edges lie on an optimal continuation.
//   - Closure.Power(k): the cheapest costs over walks of at most k edges.
//
// Why
//
// Dijkstra refuses negative costs outright. The min-plus iteration
// relaxes all pairs simultaneously and only fails when costs keep
// improving past the point where simple paths can explain them, which is
// the precise signature of a negative cycle. Use this package when edge
// costs may be negative or when every pair's distance is needed anyway.
//
// Determinism
//
// Vertex rows follow ascending vertex order, products run in a fixed
// loop order, and Path takes the smallest qualifying neighbor at each
// hop. Repeated runs produce byte-identical output.
//
// Complexity
//
//   - Time:   O(V⁴) worst case, O(V³) per product; stops early once stable
//   - Memory: O(V²) live at any moment (tables are copied per product)
//
// Errors
//
//   - ErrNilGraph        graph is nil
//   - ErrVertexNotFound  queried vertex has no row
//   - ErrNegativeCycle   negative self-loop, negative diagonal entry, or
//     costs still improving in the verification round
//   - ErrNoPath          no walk between the queried endpoints
//   - ErrNegativePower   Power called with k < 0
package matrix
