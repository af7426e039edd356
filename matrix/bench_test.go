package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/digraph/builder"
	"github.com/katalvlaran/digraph/matrix"
)

func BenchmarkDistances_Sparse100(b *testing.B) {
	rnd := rand.New(rand.NewSource(1))
	g, err := builder.RandomWeightedDigraph(100, 400, rnd)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.Distances(g); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDistances_Dense40(b *testing.B) {
	rnd := rand.New(rand.NewSource(2))
	g, err := builder.RandomWeightedDigraph(40, 1200, rnd)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.Distances(g); err != nil {
			b.Fatal(err)
		}
	}
}
