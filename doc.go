// Package digraph is an in-memory toolkit for building, traversing and
// analyzing directed graphs — from the core vertex/edge primitives to
// all-pairs distance tables and text snapshots.
//
// 🚀 What is digraph?
//
//	A deterministic, single-goroutine library that brings together:
//		• Core primitives: integer vertices, strict mutation, cheap clones
//		• Traversals: BFS with layer tracking, DFS with hooks
//		• Shortest paths: Dijkstra with cheapest-walk counting
//		• Components: Tarjan and Kosaraju strongly connected components
//		• Distance tables: min-plus matrix closure with cycle detection
//		• Scheduling: Kahn topological sort and walk counting
//		• Persistence: two line-oriented text formats, read and write
//
// ✨ Why choose digraph?
//
//   - Deterministic – every operation orders vertices ascending, so two
//     runs over the same graph produce byte-identical output
//   - Strict – duplicate vertices, duplicate edges and dangling
//     endpoints are rejected with sentinel errors, never absorbed
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – traversal hooks (OnVisit, OnEnqueue…) for custom logic
//
// Everything is organized under focused subpackages:
//
//	core/     — Digraph and WeightedDigraph types, vertices, edges
//	bfs/      — breadth-first traversal, layers, fewest-hop paths
//	dfs/      — depth-first traversal and reachability closures
//	dijkstra/ — single-source cheapest paths and walk counting
//	scc/      — strongly connected components, two algorithms
//	matrix/   — all-pairs min-plus distance closure and matrix powers
//	toposort/ — Kahn ordering and dependency-chain counting
//	builder/  — seeded random graph generation for tests and benchmarks
//	graphio/  — the "big" and "normal" text formats, load and save
//
// Quick ASCII example:
//
//	    0──▶1
//	    │   │
//	    ▼   ▼
//	    2──▶3
//
//	a diamond: two distinct walks lead from 0 to 3.
//
//	go get github.com/katalvlaran/digraph
package digraph
