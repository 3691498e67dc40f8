package datamodel

import (
	"sort"
	"strconv"
)

// key packs a (row, col) coordinate into a single map key.
type key struct {
	row, col int
}

// Sparse is a coordinate-addressed Model. Absent coordinates read as
// Null; writing Null erases the entry. Iteration order over the
// underlying map is not promised by Go, so ForEachInRange sorts the
// populated coordinates within the requested range before visiting them,
// to honor the ascending-row/ascending-column contract.
//
// Space: O(populated cells). Appropriate when fill factor is below ~20%.
type Sparse struct {
	rowCount int
	colCount int
	fields   []string // column index -> field name, for BulkLoad/Row mapping
	cells    map[key]Value
}

// NewSparse constructs an empty Sparse model with the given logical
// dimensions. fields, if non-empty, names each column for BulkLoad's Row
// lookup; if omitted, BulkLoad keys rows positionally ("0", "1", ...).
func NewSparse(rowCount, colCount int, fields ...string) *Sparse {
	if rowCount < 0 {
		rowCount = 0
	}
	if colCount < 0 {
		colCount = 0
	}

	return &Sparse{
		rowCount: rowCount,
		colCount: colCount,
		fields:   fields,
		cells:    make(map[key]Value),
	}
}

func (s *Sparse) RowCount() int { return s.rowCount }
func (s *Sparse) ColCount() int { return s.colCount }

// GetValue returns the stored value at (row, col), or Null if the
// coordinate has never been written or is out of range.
func (s *Sparse) GetValue(row, col int) Value {
	if row < 0 || row >= s.rowCount || col < 0 || col >= s.colCount {
		return Null
	}

	return s.cells[key{row, col}]
}

// SetValue writes v at (row, col). Writing Null erases the entry so the
// map only ever holds populated cells. Negative coordinates are
// rejected; writes beyond the current dimensions grow them, so a sparse
// model expands through its setters.
func (s *Sparse) SetValue(row, col int, v Value) error {
	if row < 0 {
		return ErrRowOutOfRange
	}
	if col < 0 {
		return ErrColumnNotFound
	}
	if row >= s.rowCount {
		s.rowCount = row + 1
	}
	if col >= s.colCount {
		s.colCount = col + 1
	}

	k := key{row, col}
	if v.IsNull() {
		delete(s.cells, k)
		return nil
	}
	s.cells[k] = v

	return nil
}

// ForEachInRange visits every populated cell within the requested
// rectangle in ascending row, then ascending column, order.
func (s *Sparse) ForEachInRange(rowLo, rowHi, colLo, colHi int, visit Visitor) {
	type coord struct{ row, col int }
	matches := make([]coord, 0)
	for k := range s.cells {
		if k.row >= rowLo && k.row < rowHi && k.col >= colLo && k.col < colHi {
			matches = append(matches, coord{k.row, k.col})
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].row != matches[j].row {
			return matches[i].row < matches[j].row
		}
		return matches[i].col < matches[j].col
	})
	for _, c := range matches {
		visit(c.row, c.col, s.cells[key{c.row, c.col}])
	}
}

// BulkLoad replaces all data with rows. Row count grows to len(rows) if
// larger than the current RowCount. Column mapping: if fields were
// declared at construction, each Row key is looked up by name; otherwise
// keys are expected to be positional column-index strings ("0", "1", ...).
func (s *Sparse) BulkLoad(rows []Row) error {
	s.cells = make(map[key]Value, len(rows)*s.colCount)
	if len(rows) > s.rowCount {
		s.rowCount = len(rows)
	}

	colIndex := s.fieldIndex()
	for r, row := range rows {
		for name, v := range row {
			if v.IsNull() {
				continue
			}
			col, ok := colIndex(name)
			if !ok {
				continue
			}
			s.cells[key{r, col}] = v
		}
	}

	return nil
}

func (s *Sparse) fieldIndex() func(name string) (int, bool) {
	if len(s.fields) == 0 {
		return func(name string) (int, bool) {
			col, err := strconv.Atoi(name)
			if err != nil {
				return 0, false
			}
			return col, col >= 0 && col < s.colCount
		}
	}
	lookup := make(map[string]int, len(s.fields))
	for i, f := range s.fields {
		lookup[f] = i
	}

	return func(name string) (int, bool) {
		col, ok := lookup[name]
		return col, ok
	}
}
