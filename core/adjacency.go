// Package core: shared adjacency helpers.
//
// Both graph variants store adjacency as map[Vertex]map[Vertex]T, with
// T = struct{} for plain sets and T = int64 for cost-bearing rows. The
// helpers below are generic over T so the query methods of Digraph and
// WeightedDigraph stay thin wrappers.

package core

import "slices"

// sortedKeys returns the key set of an adjacency map in ascending order.
// Complexity: O(V log V).
func sortedKeys[T any](adj map[Vertex]map[Vertex]T) []Vertex {
	out := make([]Vertex, 0, len(adj))
	for v := range adj {
		out = append(out, v)
	}
	slices.Sort(out)

	return out
}

// sortedRow returns the key set of one adjacency row in ascending order.
// Complexity: O(d log d) for row degree d.
func sortedRow[T any](row map[Vertex]T) []Vertex {
	out := make([]Vertex, 0, len(row))
	for v := range row {
		out = append(out, v)
	}
	slices.Sort(out)

	return out
}

// countEdges sums the sizes of all adjacency rows.
// Complexity: O(V).
func countEdges[T any](adj map[Vertex]map[Vertex]T) int {
	total := 0
	for _, row := range adj {
		total += len(row)
	}

	return total
}

// isolatedKeys returns, in ascending order, every vertex whose predecessor
// and successor rows are both empty.
func isolatedKeys[T any](preds, succs map[Vertex]map[Vertex]T) []Vertex {
	var out []Vertex
	for v := range preds {
		if len(preds[v]) == 0 && len(succs[v]) == 0 {
			out = append(out, v)
		}
	}
	slices.Sort(out)

	return out
}

// copyAdjacency deep-copies an adjacency map, rows included.
// Complexity: O(V + E).
func copyAdjacency[T any](adj map[Vertex]map[Vertex]T) map[Vertex]map[Vertex]T {
	out := make(map[Vertex]map[Vertex]T, len(adj))
	for v, row := range adj {
		nrow := make(map[Vertex]T, len(row))
		for u, val := range row {
			nrow[u] = val
		}
		out[v] = nrow
	}

	return out
}
