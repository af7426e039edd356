package matrix

import (
	"fmt"

	"github.com/katalvlaran/digraph/core"
)

// Closure holds the all-pairs outcome: the one-step table the iteration
// started from and the converged cheapest-walk table.
//
// Negative edge costs are fine; negative cycles were ruled out by the time
// a Closure exists, so every recorded cost is attained by a simple path.
type Closure struct {
	base *CostMatrix // one-step edge costs, diagonal zero
	dist *CostMatrix // converged cheapest-walk costs
}

// Distances computes all-pairs cheapest walks of g by iterated min-plus
// products of its cost table.
//
// The cheapest simple path uses at most n-1 edges, so the table must be
// stable after n-1 products. The iteration stops early when a product
// changes nothing; the diagonal is screened after every product, and one
// extra product runs at the end. Any improvement in that extra round means
// an n-step walk still got cheaper, which only a negative cycle allows.
//
// Complexity: O(V⁴) worst case (V products of O(V³) each), O(V²) memory.
func Distances(g core.WeightedGraph) (*Closure, error) {
	// 1) One-step costs; negative self-loops already fail here.
	base, err := NewCostMatrix(g)
	if err != nil {
		return nil, err
	}
	n := base.Dimension()

	// 2) Up to n-1 products, screening the diagonal after each.
	dist := base
	for step := 1; step < n; step++ {
		next, changed := dist.product(base)
		if v, bad := next.negativeDiagonal(); bad {
			return nil, fmt.Errorf("%w: closes through %v", ErrNegativeCycle, v)
		}
		if !changed {
			return &Closure{base: base, dist: next}, nil
		}
		dist = next
	}

	// 3) The verification round: a converged table cannot improve.
	if _, changed := dist.product(base); changed {
		return nil, fmt.Errorf("%w: costs still improving after %d products", ErrNegativeCycle, n)
	}

	return &Closure{base: base, dist: dist}, nil
}

// Between returns the cheapest walk cost from u to v. The cost is Inf
// exactly when the returned error is ErrNoPath.
func (c *Closure) Between(u, v core.Vertex) (int64, error) {
	i, ok := c.dist.index[u]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrVertexNotFound, u)
	}
	j, ok := c.dist.index[v]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrVertexNotFound, v)
	}
	d := c.dist.data[i][j]
	if d == Inf {
		return Inf, fmt.Errorf("%w: %v -> %v", ErrNoPath, u, v)
	}

	return d, nil
}

// Path reconstructs one cheapest walk from u to v, endpoints included.
//
// The walk advances greedily: from cur it takes the smallest unvisited
// neighbor w whose edge lies on an optimal continuation, meaning
// cost(cur,w) + dist(w,v) equals dist(cur,v). Self-loops never advance a
// walk and are skipped. When only already-visited neighbors qualify the
// walk has been forced around a zero-cost cycle and ErrNegativeCycle is
// returned, matching the cost table's inability to order such walks.
//
// Complexity: O(V²).
func (c *Closure) Path(u, v core.Vertex) ([]core.Vertex, error) {
	i, ok := c.dist.index[u]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, u)
	}
	j, ok := c.dist.index[v]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, v)
	}
	if c.dist.data[i][j] == Inf {
		return nil, fmt.Errorf("%w: %v -> %v", ErrNoPath, u, v)
	}

	n := c.dist.Dimension()
	visited := make(map[int]bool, n)
	path := []core.Vertex{c.dist.verts[i]}
	visited[i] = true

	for cur := i; cur != j; {
		next := -1
		blocked := false
		for w := 0; w < n; w++ {
			if w == cur || c.base.data[cur][w] == Inf {
				continue
			}
			if addCost(c.base.data[cur][w], c.dist.data[w][j]) != c.dist.data[cur][j] {
				continue
			}
			if visited[w] {
				blocked = true
				continue
			}
			next = w

			break
		}
		if next < 0 {
			if blocked {
				return nil, fmt.Errorf("%w: walk %v -> %v revisited a vertex", ErrNegativeCycle, u, v)
			}

			// A finite dist entry always admits some continuation.
			return nil, fmt.Errorf("%w: %v -> %v", ErrNoPath, u, v)
		}
		cur = next
		visited[cur] = true
		path = append(path, c.dist.verts[cur])
	}

	return path, nil
}

// Power returns the cheapest costs over walks of at most k edges: k = 0 is
// the min-plus identity, k = 1 the one-step table. The table is stable from
// k = n-1 on, so larger exponents return the converged closure directly.
func (c *Closure) Power(k int) (*CostMatrix, error) {
	if k < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativePower, k)
	}
	n := c.base.Dimension()
	if n == 0 || k >= n-1 {
		return c.dist.Clone(), nil
	}
	if k == 0 {
		out := c.base.Clone()
		for i := range out.data {
			for j := range out.data[i] {
				if i != j {
					out.data[i][j] = Inf
				}
			}
		}

		return out, nil
	}

	out := c.base.Clone()
	for step := 1; step < k; step++ {
		out, _ = out.product(c.base)
	}

	return out, nil
}
