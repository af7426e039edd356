package matrix_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/digraph/core"
	"github.com/katalvlaran/digraph/matrix"
)

// ExampleDistances resolves every pair at once; the bent route 0→1→2
// beats the direct edge.
func ExampleDistances() {
	g := core.NewWeightedDigraph()
	for v := core.Vertex(0); v < 3; v++ {
		_ = g.AddVertex(v)
	}
	_ = g.AddEdge(0, 1, 4)
	_ = g.AddEdge(1, 2, 1)
	_ = g.AddEdge(0, 2, 10)

	c, _ := matrix.Distances(g)
	d, _ := c.Between(0, 2)
	path, _ := c.Path(0, 2)
	fmt.Println(d, path)
	// Output:
	// 5 [0 1 2]
}

// ExampleDistances_negativeCycle shows the failure mode Dijkstra cannot
// even express: a cycle whose total cost is negative.
func ExampleDistances_negativeCycle() {
	g := core.NewWeightedDigraph()
	_ = g.AddVertex(0)
	_ = g.AddVertex(1)
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(1, 0, -2)

	_, err := matrix.Distances(g)
	fmt.Println(errors.Is(err, matrix.ErrNegativeCycle))
	// Output:
	// true
}

// ExampleClosure_Power bounds the walk length: two hops are needed
// before vertex 2 comes into range of vertex 0.
func ExampleClosure_Power() {
	g := core.NewWeightedDigraph()
	for v := core.Vertex(0); v < 3; v++ {
		_ = g.AddVertex(v)
	}
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(1, 2, 1)

	c, _ := matrix.Distances(g)
	p1, _ := c.Power(1)
	p2, _ := c.Power(2)
	one, _ := p1.At(0, 2)
	two, _ := p2.At(0, 2)
	fmt.Println(one == matrix.Inf, two)
	// Output:
	// true 2
}
