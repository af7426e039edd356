package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/digraph/builder"
	"github.com/katalvlaran/digraph/core"
	"github.com/katalvlaran/digraph/dijkstra"
	"github.com/katalvlaran/digraph/matrix"
)

// I shortens Inf inside expected tables.
const I = matrix.Inf

// buildTriangle: 0→1 (4), 1→2 (1), 0→2 (10); the bent route wins.
func buildTriangle(t *testing.T) *core.WeightedDigraph {
	t.Helper()
	g := core.NewWeightedDigraph()
	for v := core.Vertex(0); v < 3; v++ {
		require.NoError(t, g.AddVertex(v))
	}
	require.NoError(t, g.AddEdge(0, 1, 4))
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(0, 2, 10))

	return g
}

// table flattens m through its public surface for comparison.
func table(t *testing.T, m *matrix.CostMatrix) [][]int64 {
	t.Helper()
	vs := m.Vertices()
	out := make([][]int64, len(vs))
	for i, u := range vs {
		out[i] = make([]int64, len(vs))
		for j, v := range vs {
			c, err := m.At(u, v)
			require.NoError(t, err)
			out[i][j] = c
		}
	}

	return out
}

func TestNewCostMatrix_NilGraph(t *testing.T) {
	m, err := matrix.NewCostMatrix(nil)
	assert.Nil(t, m)
	assert.ErrorIs(t, err, matrix.ErrNilGraph)
}

func TestNewCostMatrix_Table(t *testing.T) {
	m, err := matrix.NewCostMatrix(buildTriangle(t))
	require.NoError(t, err)

	assert.Equal(t, 3, m.Dimension())
	assert.Equal(t, []core.Vertex{0, 1, 2}, m.Vertices())

	want := [][]int64{
		{0, 4, 10},
		{I, 0, 1},
		{I, I, 0},
	}
	if diff := cmp.Diff(want, table(t, m)); diff != "" {
		t.Errorf("one-step table mismatch (-want +got):\n%s", diff)
	}

	_, err = m.At(0, 99)
	assert.ErrorIs(t, err, matrix.ErrVertexNotFound)
}

func TestNewCostMatrix_PositiveSelfLoopZeroed(t *testing.T) {
	g := core.NewWeightedDigraph()
	require.NoError(t, g.AddVertex(5))
	require.NoError(t, g.AddEdge(5, 5, 7))

	m, err := matrix.NewCostMatrix(g)
	require.NoError(t, err)
	c, err := m.At(5, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(0), c, "the empty walk beats a priced self-loop")
}

func TestNewCostMatrix_NegativeSelfLoop(t *testing.T) {
	g := core.NewWeightedDigraph()
	require.NoError(t, g.AddVertex(5))
	require.NoError(t, g.AddEdge(5, 5, -1))

	_, err := matrix.NewCostMatrix(g)
	assert.ErrorIs(t, err, matrix.ErrNegativeCycle)
}

func TestDistances_Triangle(t *testing.T) {
	c, err := matrix.Distances(buildTriangle(t))
	require.NoError(t, err)

	d, err := c.Between(0, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), d)

	d, err = c.Between(2, 0)
	assert.ErrorIs(t, err, matrix.ErrNoPath)
	assert.Equal(t, matrix.Inf, d)

	_, err = c.Between(0, 99)
	assert.ErrorIs(t, err, matrix.ErrVertexNotFound)

	path, err := c.Path(0, 2)
	require.NoError(t, err)
	assert.Equal(t, []core.Vertex{0, 1, 2}, path)

	path, err = c.Path(1, 1)
	require.NoError(t, err)
	assert.Equal(t, []core.Vertex{1}, path)

	_, err = c.Path(2, 0)
	assert.ErrorIs(t, err, matrix.ErrNoPath)
}

func TestDistances_NegativeEdgeNoCycle(t *testing.T) {
	// 0→1 (5), 1→2 (-3), 0→2 (4): the negative edge makes the detour win.
	g := core.NewWeightedDigraph()
	for v := core.Vertex(0); v < 3; v++ {
		require.NoError(t, g.AddVertex(v))
	}
	require.NoError(t, g.AddEdge(0, 1, 5))
	require.NoError(t, g.AddEdge(1, 2, -3))
	require.NoError(t, g.AddEdge(0, 2, 4))

	c, err := matrix.Distances(g)
	require.NoError(t, err)

	d, err := c.Between(0, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), d)

	path, err := c.Path(0, 2)
	require.NoError(t, err)
	assert.Equal(t, []core.Vertex{0, 1, 2}, path)
}

func TestDistances_NegativeCyclePair(t *testing.T) {
	g := core.NewWeightedDigraph()
	require.NoError(t, g.AddVertex(0))
	require.NoError(t, g.AddVertex(1))
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 0, -2))

	c, err := matrix.Distances(g)
	assert.Nil(t, c)
	assert.ErrorIs(t, err, matrix.ErrNegativeCycle)
}

func TestDistances_NegativeCycleLong(t *testing.T) {
	// 0→1→2→0 sums to -1; the diagonal goes negative mid-iteration.
	g := core.NewWeightedDigraph()
	for v := core.Vertex(0); v < 3; v++ {
		require.NoError(t, g.AddVertex(v))
	}
	require.NoError(t, g.AddEdge(0, 1, 2))
	require.NoError(t, g.AddEdge(1, 2, 2))
	require.NoError(t, g.AddEdge(2, 0, -5))

	_, err := matrix.Distances(g)
	assert.ErrorIs(t, err, matrix.ErrNegativeCycle)
}

func TestDistances_ZeroCostCycleAllowed(t *testing.T) {
	// A cycle of total cost zero is not a negative cycle.
	g := core.NewWeightedDigraph()
	require.NoError(t, g.AddVertex(0))
	require.NoError(t, g.AddVertex(1))
	require.NoError(t, g.AddEdge(0, 1, 3))
	require.NoError(t, g.AddEdge(1, 0, -3))

	c, err := matrix.Distances(g)
	require.NoError(t, err)

	d, err := c.Between(0, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), d)
}

func TestDistances_Islands(t *testing.T) {
	g := core.NewWeightedDigraph()
	require.NoError(t, g.AddVertex(0))
	require.NoError(t, g.AddVertex(1))
	require.NoError(t, g.AddEdge(0, 1, 2))
	require.NoError(t, g.AddVertex(7))

	c, err := matrix.Distances(g)
	require.NoError(t, err)

	_, err = c.Between(0, 7)
	assert.ErrorIs(t, err, matrix.ErrNoPath)
	_, err = c.Path(7, 0)
	assert.ErrorIs(t, err, matrix.ErrNoPath)
}

func TestClosure_Path_ZeroCostCycleGuard(t *testing.T) {
	// 0 ⇄ 1 at zero cost plus a direct exit 0→2. The greedy walk enters
	// the free cycle before trying the exit and trips the revisit guard.
	g := core.NewWeightedDigraph()
	for v := core.Vertex(0); v < 3; v++ {
		require.NoError(t, g.AddVertex(v))
	}
	require.NoError(t, g.AddEdge(0, 1, 0))
	require.NoError(t, g.AddEdge(1, 0, 0))
	require.NoError(t, g.AddEdge(0, 2, 5))

	c, err := matrix.Distances(g)
	require.NoError(t, err)

	d, err := c.Between(0, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), d)

	_, err = c.Path(0, 2)
	assert.ErrorIs(t, err, matrix.ErrNegativeCycle)
}

func TestClosure_Power(t *testing.T) {
	// Chain 0→1→2→3 at unit cost: each extra edge reaches one hop further.
	g := core.NewWeightedDigraph()
	for v := core.Vertex(0); v < 4; v++ {
		require.NoError(t, g.AddVertex(v))
	}
	for v := core.Vertex(0); v < 3; v++ {
		require.NoError(t, g.AddEdge(v, v+1, 1))
	}

	c, err := matrix.Distances(g)
	require.NoError(t, err)

	p0, err := c.Power(0)
	require.NoError(t, err)
	want0 := [][]int64{
		{0, I, I, I},
		{I, 0, I, I},
		{I, I, 0, I},
		{I, I, I, 0},
	}
	if diff := cmp.Diff(want0, table(t, p0)); diff != "" {
		t.Errorf("Power(0) mismatch (-want +got):\n%s", diff)
	}

	p2, err := c.Power(2)
	require.NoError(t, err)
	want2 := [][]int64{
		{0, 1, 2, I},
		{I, 0, 1, 2},
		{I, I, 0, 1},
		{I, I, I, 0},
	}
	if diff := cmp.Diff(want2, table(t, p2)); diff != "" {
		t.Errorf("Power(2) mismatch (-want +got):\n%s", diff)
	}

	p3, err := c.Power(3)
	require.NoError(t, err)
	full, err := c.Power(99)
	require.NoError(t, err)
	if diff := cmp.Diff(table(t, p3), table(t, full)); diff != "" {
		t.Errorf("powers past n-1 must match the closure (-p3 +p99):\n%s", diff)
	}

	_, err = c.Power(-1)
	assert.ErrorIs(t, err, matrix.ErrNegativePower)
}

// TestDistances_AgreesWithDijkstra cross-checks the min-plus closure
// against single-source Dijkstra on seeded random graphs.
func TestDistances_AgreesWithDijkstra(t *testing.T) {
	for _, seed := range []int64{3, 11} {
		rnd := rand.New(rand.NewSource(seed))
		g, err := builder.RandomWeightedDigraph(25, 80, rnd)
		require.NoError(t, err)

		c, err := matrix.Distances(g)
		require.NoError(t, err)

		for _, src := range []core.Vertex{0, 7, 19} {
			res, err := dijkstra.Dijkstra(g, src)
			require.NoError(t, err)

			for _, v := range g.Vertices() {
				want := res.Dist[v]
				got, berr := c.Between(src, v)
				if want == dijkstra.Inf {
					assert.ErrorIs(t, berr, matrix.ErrNoPath, "seed %d: %v->%v", seed, src, v)
					continue
				}
				require.NoError(t, berr)
				assert.Equal(t, want, got, "seed %d: %v->%v", seed, src, v)
			}
		}
	}
}
