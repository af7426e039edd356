package dfs_test

import (
	"testing"

	"github.com/katalvlaran/digraph/dfs"
)

// BenchmarkDFS_Chain10000 measures DFS on a linear chain of 10,000 vertices.
// Each traversal is O(V + E); graph construction is excluded from timing.
func BenchmarkDFS_Chain10000(b *testing.B) {
	g := buildChain(10000)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = dfs.DFS(g, 0)
	}
}

// BenchmarkDFS_BinaryTree measures DFS on a complete binary tree of depth 12
// (4095 vertices), a branch-heavy shape that exercises the frontier stack.
func BenchmarkDFS_BinaryTree(b *testing.B) {
	g := buildBinaryTree(12)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = dfs.DFS(g, 1)
	}
}
