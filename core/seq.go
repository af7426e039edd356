// Package core: lazy sequences over vertices and edges.
//
// VerticesSeq and EdgesSeq expose the vertex and edge sets as iter.Seq
// values usable directly in range statements. A sequence is restartable:
// every range starts a fresh pass over the graph's current state, so the
// order is stable as long as the graph is not mutated. Mutating the graph
// while a pass is in flight is a caller error, the sequences make no
// attempt to detect it.

package core

import "iter"

// seqOf defers snapshotting to range time, so each pass observes the
// graph state current at that moment.
func seqOf[T any](snapshot func() []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range snapshot() {
			if !yield(item) {
				return
			}
		}
	}
}

// VerticesSeq returns a lazy pass over the vertex set in ascending order.
func (g *Digraph) VerticesSeq() iter.Seq[Vertex] { return seqOf(g.Vertices) }

// EdgesSeq returns a lazy pass over the edge set ordered by (From, To).
func (g *Digraph) EdgesSeq() iter.Seq[Edge] { return seqOf(g.Edges) }

// VerticesSeq returns a lazy pass over the vertex set in ascending order.
func (g *WeightedDigraph) VerticesSeq() iter.Seq[Vertex] { return seqOf(g.Vertices) }

// EdgesSeq returns a lazy pass over the edge set ordered by (From, To).
func (g *WeightedDigraph) EdgesSeq() iter.Seq[Edge] { return seqOf(g.Edges) }
