// Package scc finds the strongly connected components of a digraph.
// A component is a maximal vertex set in which every vertex reaches
// every other by directed paths.
//
// What
//
//   - Tarjan(g): single-pass discovery-index/low-link method; components
//     come out in reverse topological order of the condensation.
//   - Kosaraju(g): two-pass method; the first pass records finish order
//     over successors, the second sweeps the stored predecessor adjacency
//     (the transpose) in decreasing finish order; components come out in
//     topological order.
//   - The two partitions are always identical; only component labeling
//     order differs. Running both and comparing is a cheap self-check.
//   - Condensing a component into a working graph is one call away:
//     core's InducedSubgraph keeps exactly the internal edges.
//
// Why
//
// Components expose the cyclic skeleton of a digraph: a graph is acyclic
// iff every component is a single vertex without a self-loop, and the
// condensation is the DAG that remains once cycles are collapsed.
//
// Determinism
//
// Both walks start from vertices in ascending order and scan sorted
// successor lists; vertices inside each component are sorted ascending.
// Repeated runs produce byte-identical output.
//
// Complexity
//
//   - Time:   O(V + E) for either algorithm
//   - Memory: O(V) for stacks and index maps
//
// Errors
//
//   - ErrNilGraph   graph is nil
package scc
