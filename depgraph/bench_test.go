package depgraph_test

import (
	"fmt"
	"testing"

	"github.com/vgrid-io/vgrid/depgraph"
)

// BenchmarkTopologicalOrder measures TopologicalOrder over a wide,
// shallow tree similar to a realistic column-group hierarchy (many
// leaf groups, few levels).
func BenchmarkTopologicalOrder(b *testing.B) {
	g := depgraph.New()
	const fanout = 50
	const levels = 4

	_ = g.AddNode("root")
	prevLevel := []string{"root"}
	id := 0
	for l := 0; l < levels; l++ {
		var nextLevel []string
		for _, parent := range prevLevel {
			for i := 0; i < fanout; i++ {
				id++
				name := fmt.Sprintf("n%d", id)
				_ = g.AddNode(name)
				_ = g.AddEdge(name, parent)
				nextLevel = append(nextLevel, name)
			}
		}
		prevLevel = nextLevel
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := g.TopologicalOrder(); !ok {
			b.Fatalf("unexpected cycle")
		}
	}
}
