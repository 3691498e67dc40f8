package grid_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vgrid-io/vgrid/datamodel"
	"github.com/vgrid-io/vgrid/eventbus"
	"github.com/vgrid-io/vgrid/grid"
	"github.com/vgrid-io/vgrid/history"
	"github.com/vgrid-io/vgrid/sortengine"
	"github.com/vgrid-io/vgrid/viewport"
)

func rowsFixture() []datamodel.Row {
	return []datamodel.Row{
		{"0": datamodel.Text("Charlie")},
		{"0": datamodel.Text("Alice")},
		{"0": datamodel.Text("Bob")},
	}
}

func TestFacade_SetDataAndGetValue(t *testing.T) {
	f := grid.New(0, 1)
	require.NoError(t, f.SetData(rowsFixture()))

	assert.Equal(t, "Charlie", asText(f.GetValue(0, 0)))
	assert.Equal(t, "Alice", asText(f.GetValue(1, 0)))
}

func TestFacade_SortReordersVisualReads(t *testing.T) {
	f := grid.New(0, 1)
	require.NoError(t, f.SetData(rowsFixture()))

	f.AddSortColumn("0", sortengine.Ascending)

	assert.Equal(t, "Alice", asText(f.GetValue(0, 0)))
	assert.Equal(t, "Bob", asText(f.GetValue(1, 0)))
	assert.Equal(t, "Charlie", asText(f.GetValue(2, 0)))
}

func TestFacade_BeforeSortCancelSuppressesAfterSort(t *testing.T) {
	f := grid.New(0, 1)
	require.NoError(t, f.SetData(rowsFixture()))

	_, err := eventbus.Subscribe(f.Bus(), grid.EventBeforeSort, func(p grid.BeforeSortPayload) {
		p.Cancel()
	})
	require.NoError(t, err)

	fired := false
	_, err = eventbus.Subscribe(f.Bus(), grid.EventAfterSort, func(p grid.AfterSortPayload) {
		fired = true
	})
	require.NoError(t, err)

	f.AddSortColumn("0", sortengine.Ascending)

	assert.False(t, fired)
	assert.Equal(t, "Charlie", asText(f.GetValue(0, 0))) // unchanged, identity permutation
}

func TestFacade_UpdateCellsIsUndoable(t *testing.T) {
	f := grid.New(0, 1)
	require.NoError(t, f.SetData(rowsFixture()))

	err := f.UpdateCells([]history.CellEdit{
		{Row: 0, Col: 0, OldValue: datamodel.Text("Charlie"), NewValue: datamodel.Text("Zed")},
	})
	require.NoError(t, err)
	assert.Equal(t, "Zed", asText(f.GetValue(0, 0)))

	assert.True(t, f.History().Undo())
	assert.Equal(t, "Charlie", asText(f.GetValue(0, 0)))

	assert.True(t, f.History().Redo())
	assert.Equal(t, "Zed", asText(f.GetValue(0, 0)))
}

func TestFacade_UpdateCellsEmitsDataChange(t *testing.T) {
	f := grid.New(0, 1)
	require.NoError(t, f.SetData(rowsFixture()))

	var got grid.DataChangePayload
	_, err := eventbus.Subscribe(f.Bus(), grid.EventDataChange, func(p grid.DataChangePayload) {
		got = p
	})
	require.NoError(t, err)

	require.NoError(t, f.UpdateCells([]history.CellEdit{
		{Row: 1, Col: 0, NewValue: datamodel.Text("X")},
	}))

	require.NotNil(t, got.AffectedRange)
	assert.Equal(t, grid.Range{RowLo: 1, RowHi: 2, ColLo: 0, ColHi: 1}, *got.AffectedRange)
}

func TestFacade_ScrollToAndViewport(t *testing.T) {
	f := grid.New(100, 1, grid.WithViewportSize(300, 300), grid.WithOverscan(0, 0))
	f.ScrollTo(50, 0, viewport.AlignStart)

	top, _ := f.Viewport().Scroll()
	assert.Equal(t, f.RowAxis().OffsetOf(50), top)
}

func TestFacade_RequestSort_PendingRejection(t *testing.T) {
	block := make(chan error)
	f := grid.New(0, 1, grid.WithOnSortRequest(func(ctx context.Context, model sortengine.SortModel) (<-chan error, error) {
		return block, nil
	}))
	require.NoError(t, f.SetData(rowsFixture()))

	err := f.RequestSort(context.Background(), sortengine.SortModel{Columns: []sortengine.SortColumn{{Field: "0"}}})
	require.NoError(t, err)

	err = f.RequestSort(context.Background(), sortengine.SortModel{Columns: []sortengine.SortColumn{{Field: "0"}}})
	assert.ErrorIs(t, err, grid.ErrSortRequestPending)

	close(block)
}

func asText(v datamodel.Value) string {
	s, _ := v.AsText()
	return s
}

func TestFacade_ListenersQuerySynchronouslyDuringDispatch(t *testing.T) {
	f := grid.New(0, 1)
	require.NoError(t, f.SetData(rowsFixture()))

	// Listeners observe the post-mutation state via the façade's own
	// query API, from inside the dispatch.
	var seenAfterSort, seenHistory string
	_, err := eventbus.Subscribe(f.Bus(), grid.EventAfterSort, func(p grid.AfterSortPayload) {
		seenAfterSort = asText(f.GetValue(0, 0))
	})
	require.NoError(t, err)
	_, err = eventbus.Subscribe(f.Bus(), grid.EventHistoryChanged, func(p history.HistoryChangedPayload) {
		seenHistory = asText(f.GetValue(0, 0))
	})
	require.NoError(t, err)

	f.AddSortColumn("0", sortengine.Ascending)
	assert.Equal(t, "Alice", seenAfterSort)

	require.NoError(t, f.UpdateCells([]history.CellEdit{
		{Row: 1, Col: 0, OldValue: datamodel.Text("Alice"), NewValue: datamodel.Text("Zoe")},
	}))
	assert.Equal(t, "Zoe", seenHistory) // logical row 1 was visual row 0
}
