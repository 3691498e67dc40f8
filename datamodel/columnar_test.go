package datamodel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vgrid-io/vgrid/datamodel"
)

func descriptors() []datamodel.ColumnDescriptor {
	return []datamodel.ColumnDescriptor{
		{Name: "name", Kind: datamodel.KindText},
		{Name: "age", Kind: datamodel.KindInt64},
	}
}

func TestColumnarSetValueTypeMismatch(t *testing.T) {
	c := datamodel.NewColumnar(descriptors())
	require.NoError(t, c.AppendRow(map[int]datamodel.Value{0: datamodel.Text("Alice")}))

	err := c.SetValue(0, 1, datamodel.Text("not a number"))
	assert.ErrorIs(t, err, datamodel.ErrTypeMismatch)
}

func TestColumnarSetValueAcceptsNullRegardlessOfKind(t *testing.T) {
	c := datamodel.NewColumnar(descriptors())
	require.NoError(t, c.AppendRow(map[int]datamodel.Value{1: datamodel.Int64(5)}))
	require.NoError(t, c.SetValue(0, 1, datamodel.Null))

	assert.True(t, c.GetValue(0, 1).IsNull())
}

func TestColumnarInsertRowShiftsTail(t *testing.T) {
	c := datamodel.NewColumnar(descriptors())
	require.NoError(t, c.AppendRow(map[int]datamodel.Value{0: datamodel.Text("Alice")}))
	require.NoError(t, c.AppendRow(map[int]datamodel.Value{0: datamodel.Text("Charlie")}))

	require.NoError(t, c.InsertRow(1, map[int]datamodel.Value{0: datamodel.Text("Bob")}))

	names := []string{}
	for i := 0; i < c.RowCount(); i++ {
		n, _ := c.GetValue(i, 0).AsText()
		names = append(names, n)
	}
	assert.Equal(t, []string{"Alice", "Bob", "Charlie"}, names)
}

func TestColumnarDeleteRow(t *testing.T) {
	c := datamodel.NewColumnar(descriptors())
	require.NoError(t, c.AppendRow(map[int]datamodel.Value{0: datamodel.Text("Alice")}))
	require.NoError(t, c.AppendRow(map[int]datamodel.Value{0: datamodel.Text("Bob")}))

	require.NoError(t, c.DeleteRow(0))
	assert.Equal(t, 1, c.RowCount())
	name, _ := c.GetValue(0, 0).AsText()
	assert.Equal(t, "Bob", name)
}

func TestColumnarBulkLoadTypeMismatch(t *testing.T) {
	c := datamodel.NewColumnar(descriptors())
	err := c.BulkLoad([]datamodel.Row{
		{"age": datamodel.Text("thirty")},
	})
	assert.ErrorIs(t, err, datamodel.ErrTypeMismatch)
}

func TestColumnarForEachInRangeSkipsNull(t *testing.T) {
	c := datamodel.NewColumnar(descriptors())
	require.NoError(t, c.AppendRow(map[int]datamodel.Value{0: datamodel.Text("Alice")}))
	require.NoError(t, c.AppendRow(map[int]datamodel.Value{}))

	var visited int
	c.ForEachInRange(0, 2, 0, 2, func(row, col int, v datamodel.Value) {
		visited++
	})
	assert.Equal(t, 1, visited)
}

var _ datamodel.Model = (*datamodel.Columnar)(nil)
var _ datamodel.Model = (*datamodel.Sparse)(nil)
