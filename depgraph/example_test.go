package depgraph_test

import (
	"fmt"

	"github.com/vgrid-io/vgrid/depgraph"
)

func ExampleGraph_TopologicalOrder() {
	g := depgraph.New()
	_ = g.AddNode("sales")
	_ = g.AddNode("north")
	_ = g.AddEdge("north", "sales") // north depends on sales existing

	order, ok := g.TopologicalOrder()
	fmt.Println(order, ok)
	// Output: [sales north] true
}
