// Package scc finds the strongly connected components of a digraph.
package scc

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/digraph/core"
)

// ErrNilGraph is returned when a nil graph is passed.
var ErrNilGraph = errors.New("scc: graph is nil")

// Tarjan computes the strongly connected components of g in a single
// pass using discovery indices and low-links. Components are emitted in
// reverse topological order of the condensation and sorted ascending
// internally. The walk is iterative with an explicit frame stack, so
// component size is not limited by the goroutine stack.
// Complexity: O(V + E).
func Tarjan(g core.Graph) ([][]core.Vertex, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	n := g.VertexCount()
	s := &tarjanState{
		g:       g,
		index:   make(map[core.Vertex]int, n),
		lowlink: make(map[core.Vertex]int, n),
		onStack: make(map[core.Vertex]bool, n),
		stack:   make([]core.Vertex, 0, n),
	}

	for _, v := range g.Vertices() {
		if _, seen := s.index[v]; !seen {
			if err := s.strongConnect(v); err != nil {
				return nil, err
			}
		}
	}

	return s.comps, nil
}

// tarjanFrame is one pending vertex on the explicit DFS stack, together
// with its successor scan position.
type tarjanFrame struct {
	v     core.Vertex
	succs []core.Vertex
	next  int
}

// tarjanState holds the algorithm state during execution.
type tarjanState struct {
	g       core.Graph
	counter int
	index   map[core.Vertex]int
	lowlink map[core.Vertex]int
	onStack map[core.Vertex]bool
	stack   []core.Vertex
	frames  []tarjanFrame
	comps   [][]core.Vertex
}

// discover assigns v its discovery index, places it on the candidate
// stack, and opens a frame for its successors.
func (s *tarjanState) discover(v core.Vertex) error {
	s.index[v] = s.counter
	s.lowlink[v] = s.counter
	s.counter++
	s.stack = append(s.stack, v)
	s.onStack[v] = true

	succs, err := s.g.Successors(v)
	if err != nil {
		return fmt.Errorf("scc: successors of %v: %w", v, err)
	}
	s.frames = append(s.frames, tarjanFrame{v: v, succs: succs})

	return nil
}

// strongConnect runs one DFS tree from root. Tree edges push frames;
// a child's low-link flows into its parent when the child's frame pops;
// back edges to on-stack vertices pull the target's index into the
// current low-link. A vertex whose low-link still equals its index when
// its frame pops is the root of one component.
func (s *tarjanState) strongConnect(root core.Vertex) error {
	if err := s.discover(root); err != nil {
		return err
	}

	for len(s.frames) > 0 {
		f := &s.frames[len(s.frames)-1]

		if f.next < len(f.succs) {
			w := f.succs[f.next]
			f.next++
			if _, seen := s.index[w]; !seen {
				if err := s.discover(w); err != nil {
					return err
				}
			} else if s.onStack[w] && s.index[w] < s.lowlink[f.v] {
				s.lowlink[f.v] = s.index[w]
			}

			continue
		}

		// All successors of f.v examined
		v := f.v
		s.frames = s.frames[:len(s.frames)-1]

		if s.lowlink[v] == s.index[v] {
			s.emit(v)
		}
		if len(s.frames) > 0 {
			parent := &s.frames[len(s.frames)-1]
			if s.lowlink[v] < s.lowlink[parent.v] {
				s.lowlink[parent.v] = s.lowlink[v]
			}
		}
	}

	return nil
}

// emit pops the candidate stack down to root, forming one component.
func (s *tarjanState) emit(root core.Vertex) {
	comp := make([]core.Vertex, 0, 2)
	for {
		w := s.stack[len(s.stack)-1]
		s.stack = s.stack[:len(s.stack)-1]
		s.onStack[w] = false
		comp = append(comp, w)
		if w == root {
			break
		}
	}
	slices.Sort(comp)
	s.comps = append(s.comps, comp)
}
