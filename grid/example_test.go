package grid_test

import (
	"fmt"

	"github.com/vgrid-io/vgrid/datamodel"
	"github.com/vgrid-io/vgrid/eventbus"
	"github.com/vgrid-io/vgrid/grid"
	"github.com/vgrid-io/vgrid/sortengine"
)

func ExampleFacade_AddSortColumn() {
	f := grid.New(0, 1)
	_ = f.SetData([]datamodel.Row{
		{"0": datamodel.Text("Charlie")},
		{"0": datamodel.Text("Alice")},
		{"0": datamodel.Text("Bob")},
	})

	_, _ = eventbus.Subscribe(f.Bus(), grid.EventAfterSort, func(p grid.AfterSortPayload) {
		fmt.Println("permutation:", p.Permutation)
	})

	f.AddSortColumn("0", sortengine.Ascending)
	// Output:
	// permutation: [1 2 0]
}
