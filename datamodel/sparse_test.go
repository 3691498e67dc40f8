package datamodel_test

import (
	"testing"

	"github.com/vgrid-io/vgrid/datamodel"
)

func TestSparseReadsMissingAsNull(t *testing.T) {
	s := datamodel.NewSparse(10, 10)
	if v := s.GetValue(3, 3); !v.IsNull() {
		t.Fatalf("expected Null for unset cell, got %v", v)
	}
}

func TestSparseWriteNullErasesEntry(t *testing.T) {
	s := datamodel.NewSparse(10, 10)
	_ = s.SetValue(1, 1, datamodel.Int64(42))
	_ = s.SetValue(1, 1, datamodel.Null)

	if v := s.GetValue(1, 1); !v.IsNull() {
		t.Fatalf("expected Null after erasing write, got %v", v)
	}
}

func TestSparseForEachInRangeOrdering(t *testing.T) {
	s := datamodel.NewSparse(5, 5)
	_ = s.SetValue(2, 4, datamodel.Text("d"))
	_ = s.SetValue(2, 1, datamodel.Text("b"))
	_ = s.SetValue(0, 0, datamodel.Text("a"))
	_ = s.SetValue(4, 0, datamodel.Text("e"))

	var order [][2]int
	s.ForEachInRange(0, 5, 0, 5, func(row, col int, v datamodel.Value) {
		order = append(order, [2]int{row, col})
	})

	want := [][2]int{{0, 0}, {2, 1}, {2, 4}, {4, 0}}
	if len(order) != len(want) {
		t.Fatalf("got %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("got %v, want %v", order, want)
		}
	}
}

func TestSparseBulkLoadWithFields(t *testing.T) {
	s := datamodel.NewSparse(0, 2, "name", "age")
	_ = s.BulkLoad([]datamodel.Row{
		{"name": datamodel.Text("Alice"), "age": datamodel.Int64(30)},
		{"name": datamodel.Text("Bob")},
	})

	if s.RowCount() != 2 {
		t.Fatalf("RowCount = %d, want 2", s.RowCount())
	}
	if name, _ := s.GetValue(0, 0).AsText(); name != "Alice" {
		t.Fatalf("got %q, want Alice", name)
	}
	if v := s.GetValue(1, 1); !v.IsNull() {
		t.Fatalf("Bob's age should be Null, got %v", v)
	}
}

func TestSparseSetValueGrowsDimensions(t *testing.T) {
	s := datamodel.NewSparse(2, 2)

	if err := s.SetValue(5, 3, datamodel.Int64(7)); err != nil {
		t.Fatalf("SetValue: %v", err)
	}
	if s.RowCount() != 6 || s.ColCount() != 4 {
		t.Fatalf("dimensions = (%d, %d), want (6, 4)", s.RowCount(), s.ColCount())
	}
	if v, _ := s.GetValue(5, 3).AsInt64(); v != 7 {
		t.Fatalf("got %d, want 7", v)
	}

	if err := s.SetValue(-1, 0, datamodel.Int64(1)); err == nil {
		t.Fatal("negative row should be rejected")
	}
}
