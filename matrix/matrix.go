// Package matrix: dense cost matrices over the min-plus semiring.
//
// A CostMatrix is the n×n table of one-step edge costs of a weighted graph,
// with Inf marking absent edges and a zero diagonal. Repeated min-plus
// products of that table converge on all-pairs cheapest-walk costs; the
// Distances driver runs the iteration and screens for negative cycles.
package matrix

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/digraph/core"
)

// Inf marks the absence of a walk. Guarded addition keeps it absorbing.
const Inf int64 = math.MaxInt64

var (
	// ErrNilGraph is returned when the input graph is nil.
	ErrNilGraph = errors.New("matrix: graph is nil")

	// ErrVertexNotFound is returned when a queried vertex has no row.
	ErrVertexNotFound = errors.New("matrix: vertex not found")

	// ErrNegativeCycle is returned when the cost structure admits walks of
	// unbounded negative cost, so "cheapest" is undefined.
	ErrNegativeCycle = errors.New("matrix: negative cycle")

	// ErrNoPath is returned when no walk connects the queried endpoints.
	ErrNoPath = errors.New("matrix: no path")

	// ErrNegativePower is returned by Power for a negative exponent.
	ErrNegativePower = errors.New("matrix: negative power")
)

// CostMatrix is a square cost table indexed by vertex.
//
// Rows and columns follow ascending vertex order. Entry (i,j) is the cost
// of the cheapest known walk from verts[i] to verts[j], Inf when none is
// known. The diagonal is zero (the empty walk).
type CostMatrix struct {
	verts []core.Vertex       // row/column position → vertex, ascending
	index map[core.Vertex]int // vertex → row/column position
	data  [][]int64           // data[i][j]: walk cost, Inf = none
}

// NewCostMatrix builds the one-step cost table of g: entry (u,v) holds the
// cost of edge u→v, Inf when the edge is absent, and the diagonal is zeroed
// last so the empty walk always wins over a non-negative self-loop.
//
// A negative self-loop already is a negative cycle and fails immediately.
//
// Complexity: O(V² + E) time, O(V²) memory.
func NewCostMatrix(g core.WeightedGraph) (*CostMatrix, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	// 1) Fix the vertex ↔ index correspondence in ascending order.
	verts := g.Vertices()
	n := len(verts)
	index := make(map[core.Vertex]int, n)
	for i, v := range verts {
		index[v] = i
	}

	// 2) Allocate the table and flood it with Inf.
	data := make([][]int64, n)
	for i := range data {
		row := make([]int64, n)
		for j := range row {
			row[j] = Inf
		}
		data[i] = row
	}

	// 3) Copy edge costs, rejecting negative self-loops outright.
	for _, e := range g.Edges() {
		if e.From == e.To && e.Cost < 0 {
			return nil, fmt.Errorf("%w: self-loop at %v cost=%d", ErrNegativeCycle, e.From, e.Cost)
		}
		data[index[e.From]][index[e.To]] = e.Cost
	}

	// 4) Zero the diagonal after the fill; self-loop costs never beat
	// staying put once negatives are excluded.
	for i := 0; i < n; i++ {
		data[i][i] = 0
	}

	return &CostMatrix{verts: verts, index: index, data: data}, nil
}

// Dimension returns the matrix order (the vertex count).
func (m *CostMatrix) Dimension() int { return len(m.verts) }

// Vertices returns the row/column labels in ascending order.
func (m *CostMatrix) Vertices() []core.Vertex {
	out := make([]core.Vertex, len(m.verts))
	copy(out, m.verts)

	return out
}

// At returns the entry for the (u, v) pair, Inf when no walk is recorded.
func (m *CostMatrix) At(u, v core.Vertex) (int64, error) {
	i, ok := m.index[u]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrVertexNotFound, u)
	}
	j, ok := m.index[v]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrVertexNotFound, v)
	}

	return m.data[i][j], nil
}

// Clone returns a deep copy sharing no state with m.
func (m *CostMatrix) Clone() *CostMatrix {
	data := make([][]int64, len(m.data))
	for i, row := range m.data {
		data[i] = make([]int64, len(row))
		copy(data[i], row)
	}
	index := make(map[core.Vertex]int, len(m.index))
	for v, i := range m.index {
		index[v] = i
	}
	verts := make([]core.Vertex, len(m.verts))
	copy(verts, m.verts)

	return &CostMatrix{verts: verts, index: index, data: data}
}

// addCost adds two walk costs with Inf absorbing, so an absent leg never
// fabricates a finite total.
func addCost(a, b int64) int64 {
	if a == Inf || b == Inf {
		return Inf
	}

	return a + b
}

// product computes the min-plus product m ⊗ other into a fresh matrix and
// reports whether any entry strictly improved on m.
//
// Fixed loop order (i → j → k). Complexity: O(n³).
func (m *CostMatrix) product(other *CostMatrix) (*CostMatrix, bool) {
	n := len(m.verts)
	out := m.Clone()
	changed := false

	var i, j, k int
	var best, cand int64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			best = m.data[i][j]
			for k = 0; k < n; k++ {
				cand = addCost(m.data[i][k], other.data[k][j])
				if cand < best {
					best = cand
				}
			}
			if best < m.data[i][j] {
				out.data[i][j] = best
				changed = true
			}
		}
	}

	return out, changed
}

// negativeDiagonal reports the first vertex whose self-distance dropped
// below zero, the signature of a negative cycle through it.
func (m *CostMatrix) negativeDiagonal() (core.Vertex, bool) {
	for i := range m.verts {
		if m.data[i][i] < 0 {
			return m.verts[i], true
		}
	}

	return 0, false
}
