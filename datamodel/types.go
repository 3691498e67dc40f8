package datamodel

import "errors"

// Sentinel errors for datamodel operations.
var (
	// ErrTypeMismatch indicates a write whose Value.Kind() disagrees
	// with a columnar column's declared Kind.
	ErrTypeMismatch = errors.New("datamodel: value kind does not match column's declared kind")
	// ErrColumnNotFound indicates a reference to a column index/name
	// that does not exist.
	ErrColumnNotFound = errors.New("datamodel: column not found")
	// ErrRowOutOfRange indicates a row index outside [0, rowCount).
	ErrRowOutOfRange = errors.New("datamodel: row index out of range")
)

// Row is one record of named field values, as the sort engine and
// BulkLoad consume it. Row is flat: every field maps to one Value, so it
// cannot nest; dotted-path nesting is handled by sortengine.Record.
type Row map[string]Value

// Visitor is called once per populated cell by ForEachInRange, in
// ascending row order then ascending column order within a row.
type Visitor func(row, col int, v Value)

// Model is the storage-backend-agnostic contract both Sparse and
// Columnar satisfy.
type Model interface {
	// GetValue returns the value at (row, col), or Null if absent/out of range.
	GetValue(row, col int) Value
	// SetValue writes v at (row, col). Returns ErrTypeMismatch for a
	// Columnar model if v.Kind() disagrees with the column's declared
	// kind (unless v is Null, which always succeeds as a clear).
	SetValue(row, col int, v Value) error
	// RowCount returns the number of logical rows.
	RowCount() int
	// ColCount returns the number of columns.
	ColCount() int
	// ForEachInRange visits every populated cell whose row is in
	// [rowLo, rowHi) and column in [colLo, colHi).
	ForEachInRange(rowLo, rowHi, colLo, colHi int, visit Visitor)
	// BulkLoad replaces all data with rows, keyed by column name for
	// Columnar models or by integer-stringified column index for Sparse
	// models used positionally; see each backend's doc for the exact
	// convention.
	BulkLoad(rows []Row) error
}
