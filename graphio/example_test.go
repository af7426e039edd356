package graphio_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/digraph/graphio"
)

// ExampleRead parses the diamond from big-format text.
func ExampleRead() {
	const data = `4 4
0 1
0 2
1 3
2 3`
	g, _ := graphio.Read(strings.NewReader(data), graphio.FormatBig)
	fmt.Println(g.Label())
	// Output:
	// Digraph(4, 4)
}

// ExampleWrite prints the normal form: sorted edges, then isolation
// markers.
func ExampleWrite() {
	g, _ := graphio.ReadWeighted(strings.NewReader("0 1 4\n1 2 1\n7 -1"), graphio.FormatNormal)
	_ = graphio.Write(os.Stdout, g)
	// Output:
	// 0 1 4
	// 1 2 1
	// 7 -1
}
