// Package datamodel provides the two interchangeable cell-storage
// backends (sparse and columnar) behind one Model interface, plus the
// tagged Value variant that every grid cell holds.
//
// What:
//
//   - Value: a tagged variant over {Int64, Float64, Bool, Text,
//     Timestamp, Null}. Field accessors and the sort engine's auto
//     comparator both dispatch on Value.Kind().
//   - Sparse: a coordinate-keyed map. Absent coordinates read as Null;
//     writing Null erases the entry. Appropriate when fill factor is
//     below ~20%.
//   - Columnar: one flat, typed, dense slice per declared column.
//     Writes whose Value.Kind() disagrees with the column's declared
//     Kind fail with ErrTypeMismatch.
//   - Model: the interface both backends satisfy (GetValue, SetValue,
//     RowCount, ColCount, ForEachInRange, BulkLoad).
//
// Why:
//
//   - A grid's fill factor varies wildly by use case (a sparse pivot vs.
//     a fully populated transaction log); exposing one interface over
//     two storage strategies lets the facade swap backends without any
//     caller-visible change.
//
// Iteration contract:
//
//   - ForEachInRange visits populated cells in ascending row order, then
//     ascending column order within a row. Callers must not assume any
//     other ordering.
package datamodel
