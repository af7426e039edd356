package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/digraph/core"
	"github.com/katalvlaran/digraph/dfs"
)

// ExampleDFS demonstrates a depth-first traversal on a diamond with a tail.
// Graph structure:
//
//	  0
//	 / \
//	1   2
//	 \ /
//	  3
//	 / \
//	4   5
//
// Starting at 0, the smallest branch is explored to exhaustion first.
func ExampleDFS() {
	g := core.NewDigraph()
	for v := core.Vertex(0); v < 6; v++ {
		g.AddVertex(v)
	}
	for _, e := range []struct{ u, v core.Vertex }{
		{0, 1}, {0, 2},
		{1, 3}, {2, 3},
		{3, 4}, {3, 5},
	} {
		g.AddEdge(e.u, e.v)
	}

	res, err := dfs.DFS(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(res.Order)
	// Output:
	// [0 1 3 4 5 2]
}

// ExampleReachable answers "which vertices can 0 reach" on a graph with
// an isolated island.
func ExampleReachable() {
	g := core.NewDigraph()
	for v := core.Vertex(0); v < 5; v++ {
		g.AddVertex(v)
	}
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(3, 4) // island

	set, err := dfs.Reachable(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(len(set), set[2], set[4])
	// Output:
	// 3 true false
}
