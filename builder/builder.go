// Package builder samples random digraphs for tests, benchmarks, and
// cross-checks between algorithms.
package builder

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/digraph/core"
)

// Generated edge costs fall in [minCost, maxCost], both inclusive.
const (
	minCost = 1
	maxCost = 100
)

var (
	// ErrTooFewVertices indicates a negative size parameter.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrTooManyEdges indicates that m distinct edges cannot fit: a digraph
	// on n vertices holds at most n² edges, self-loops included.
	ErrTooManyEdges = errors.New("builder: edge count exceeds capacity")

	// ErrNeedRandSource indicates that sampling was requested without an rng.
	ErrNeedRandSource = errors.New("builder: rng is required")
)

// checkParams validates the contract shared by both generators.
func checkParams(n, m int, rng *rand.Rand) error {
	if n < 0 {
		return fmt.Errorf("builder: n=%d: %w", n, ErrTooFewVertices)
	}
	if m < 0 {
		return fmt.Errorf("builder: m=%d: %w", m, ErrTooFewVertices)
	}
	if limit := n * n; m > limit {
		return fmt.Errorf("builder: m=%d exceeds n²=%d: %w", m, limit, ErrTooManyEdges)
	}
	if rng == nil && m > 0 {
		return fmt.Errorf("builder: %w", ErrNeedRandSource)
	}

	return nil
}

// pair keys the dedup set during sampling.
type pair struct {
	u, v core.Vertex
}

// RandomDigraph samples a digraph with vertices 0..n-1 and m distinct
// directed edges drawn uniformly. Self-loops may occur; parallel edges
// cannot. A fixed seed reproduces the same graph on every run because the
// trial order is the rng draw order.
//
// Expected time is O(n + m) while m stays well below n²; rejection
// sampling slows down as the pair space fills up.
func RandomDigraph(n, m int, rng *rand.Rand) (*core.Digraph, error) {
	if err := checkParams(n, m, rng); err != nil {
		return nil, err
	}

	g := core.NewDigraph()
	for i := 0; i < n; i++ {
		if err := g.AddVertex(core.Vertex(i)); err != nil {
			return nil, fmt.Errorf("builder: AddVertex(%d): %w", i, err)
		}
	}

	used := make(map[pair]bool, m)
	for added := 0; added < m; {
		p := pair{core.Vertex(rng.Intn(n)), core.Vertex(rng.Intn(n))}
		if used[p] {
			continue
		}
		used[p] = true
		if err := g.AddEdge(p.u, p.v); err != nil {
			return nil, fmt.Errorf("builder: AddEdge(%v, %v): %w", p.u, p.v, err)
		}
		added++
	}

	return g, nil
}

// RandomWeightedDigraph is RandomDigraph with a cost in [1, 100] drawn for
// every accepted edge. Rejected duplicate pairs consume no cost draws.
func RandomWeightedDigraph(n, m int, rng *rand.Rand) (*core.WeightedDigraph, error) {
	if err := checkParams(n, m, rng); err != nil {
		return nil, err
	}

	g := core.NewWeightedDigraph()
	for i := 0; i < n; i++ {
		if err := g.AddVertex(core.Vertex(i)); err != nil {
			return nil, fmt.Errorf("builder: AddVertex(%d): %w", i, err)
		}
	}

	used := make(map[pair]bool, m)
	for added := 0; added < m; {
		p := pair{core.Vertex(rng.Intn(n)), core.Vertex(rng.Intn(n))}
		if used[p] {
			continue
		}
		used[p] = true
		cost := int64(minCost + rng.Intn(maxCost-minCost+1))
		if err := g.AddEdge(p.u, p.v, cost); err != nil {
			return nil, fmt.Errorf("builder: AddEdge(%v, %v, %d): %w", p.u, p.v, cost, err)
		}
		added++
	}

	return g, nil
}
