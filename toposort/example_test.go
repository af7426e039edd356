package toposort_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/digraph/core"
	"github.com/katalvlaran/digraph/toposort"
)

// ExampleSort orders a diamond; both middle vertices follow the source
// and precede the sink.
func ExampleSort() {
	g := core.NewDigraph()
	for v := core.Vertex(0); v < 4; v++ {
		_ = g.AddVertex(v)
	}
	_ = g.AddEdge(0, 1)
	_ = g.AddEdge(0, 2)
	_ = g.AddEdge(1, 3)
	_ = g.AddEdge(2, 3)

	order, _ := toposort.Sort(g)
	fmt.Println(order)

	_ = g.AddEdge(3, 0) // close the loop
	_, err := toposort.Sort(g)
	fmt.Println(errors.Is(err, toposort.ErrCyclicGraph))
	// Output:
	// [0 1 2 3]
	// true
}

// ExampleCountWalks counts the two routes around the diamond.
func ExampleCountWalks() {
	g := core.NewDigraph()
	for v := core.Vertex(0); v < 4; v++ {
		_ = g.AddVertex(v)
	}
	_ = g.AddEdge(0, 1)
	_ = g.AddEdge(0, 2)
	_ = g.AddEdge(1, 3)
	_ = g.AddEdge(2, 3)

	walks, _ := toposort.CountWalks(g, 0)
	fmt.Println(walks[3])
	// Output:
	// 2
}
