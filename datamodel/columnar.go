package datamodel

// ColumnDescriptor declares one column of a Columnar model: its name
// (used by BulkLoad's Row lookup) and its fixed element Kind.
type ColumnDescriptor struct {
	Name string
	Kind Kind
}

// Columnar is a dense, typed-by-column Model. Each column owns one flat
// []Value slice of length RowCount exclusively. Writes whose Value.Kind()
// disagrees with the column's declared Kind fail with ErrTypeMismatch;
// writing Null always succeeds regardless of declared kind.
//
// Row insert/delete is O(rowCount*colCount); InsertRow shifts every
// column's backing slice, so batch changes should go through BulkLoad
// rather than many individual InsertRow calls.
type Columnar struct {
	descriptors []ColumnDescriptor
	nameToIndex map[string]int
	rowCount    int
	columns     [][]Value // columns[col][row]
}

// NewColumnar constructs an empty (rowCount == 0) Columnar model with
// the given column layout, declared once and fixed for the model's
// lifetime.
func NewColumnar(descriptors []ColumnDescriptor) *Columnar {
	nameToIndex := make(map[string]int, len(descriptors))
	columns := make([][]Value, len(descriptors))
	for i, d := range descriptors {
		nameToIndex[d.Name] = i
		columns[i] = make([]Value, 0)
	}

	return &Columnar{
		descriptors: append([]ColumnDescriptor(nil), descriptors...),
		nameToIndex: nameToIndex,
		columns:     columns,
	}
}

func (c *Columnar) RowCount() int { return c.rowCount }
func (c *Columnar) ColCount() int { return len(c.descriptors) }

// ColumnDescriptor returns the descriptor for col, and whether col is valid.
func (c *Columnar) ColumnDescriptor(col int) (ColumnDescriptor, bool) {
	if col < 0 || col >= len(c.descriptors) {
		return ColumnDescriptor{}, false
	}

	return c.descriptors[col], true
}

func (c *Columnar) GetValue(row, col int) Value {
	if row < 0 || row >= c.rowCount || col < 0 || col >= len(c.columns) {
		return Null
	}

	return c.columns[col][row]
}

// SetValue writes v at (row, col). Fails with ErrTypeMismatch if
// v.Kind() differs from the column's declared Kind (Null is always
// accepted, clearing the cell).
func (c *Columnar) SetValue(row, col int, v Value) error {
	if col < 0 || col >= len(c.columns) {
		return ErrColumnNotFound
	}
	if row < 0 || row >= c.rowCount {
		return ErrRowOutOfRange
	}
	if !v.IsNull() && v.Kind() != c.descriptors[col].Kind {
		return ErrTypeMismatch
	}
	c.columns[col][row] = v

	return nil
}

// AppendRow appends one row of values (column-index keyed, missing
// columns default to Null) to the end of every column. O(colCount).
func (c *Columnar) AppendRow(values map[int]Value) error {
	for col, v := range values {
		if col < 0 || col >= len(c.columns) {
			return ErrColumnNotFound
		}
		if !v.IsNull() && v.Kind() != c.descriptors[col].Kind {
			return ErrTypeMismatch
		}
	}

	for col := range c.columns {
		v := values[col]
		c.columns[col] = append(c.columns[col], v)
	}
	c.rowCount++

	return nil
}

// InsertRow inserts one row of values at logical row index r, shifting
// rows [r, rowCount) down by one in every column. O(rowCount*colCount).
// r == rowCount is equivalent to AppendRow.
func (c *Columnar) InsertRow(r int, values map[int]Value) error {
	if r < 0 || r > c.rowCount {
		return ErrRowOutOfRange
	}
	for col, v := range values {
		if col < 0 || col >= len(c.columns) {
			return ErrColumnNotFound
		}
		if !v.IsNull() && v.Kind() != c.descriptors[col].Kind {
			return ErrTypeMismatch
		}
	}

	for col := range c.columns {
		v := values[col]
		column := c.columns[col]
		column = append(column, Null)     // grow by one
		copy(column[r+1:], column[r:])    // shift the tail down
		column[r] = v
		c.columns[col] = column
	}
	c.rowCount++

	return nil
}

// DeleteRow removes logical row r, shifting rows (r, rowCount) up by
// one in every column. O(rowCount*colCount).
func (c *Columnar) DeleteRow(r int) error {
	if r < 0 || r >= c.rowCount {
		return ErrRowOutOfRange
	}

	for col := range c.columns {
		c.columns[col] = append(c.columns[col][:r], c.columns[col][r+1:]...)
	}
	c.rowCount--

	return nil
}

func (c *Columnar) ForEachInRange(rowLo, rowHi, colLo, colHi int, visit Visitor) {
	if rowLo < 0 {
		rowLo = 0
	}
	if rowHi > c.rowCount {
		rowHi = c.rowCount
	}
	if colLo < 0 {
		colLo = 0
	}
	if colHi > len(c.columns) {
		colHi = len(c.columns)
	}

	for row := rowLo; row < rowHi; row++ {
		for col := colLo; col < colHi; col++ {
			v := c.columns[col][row]
			if !v.IsNull() {
				visit(row, col, v)
			}
		}
	}
}

// BulkLoad replaces all data with rows, looking each Row's entries up
// by column name via the descriptors given at construction. Unknown
// field names in a Row are ignored. Every value is validated against
// its column's declared kind before any existing data is touched, so a
// failed load leaves the model exactly as it was.
func (c *Columnar) BulkLoad(rows []Row) error {
	for _, row := range rows {
		for name, v := range row {
			col, ok := c.nameToIndex[name]
			if !ok {
				continue
			}
			if !v.IsNull() && v.Kind() != c.descriptors[col].Kind {
				return ErrTypeMismatch
			}
		}
	}

	for col := range c.columns {
		c.columns[col] = make([]Value, len(rows))
	}
	c.rowCount = len(rows)

	for r, row := range rows {
		for name, v := range row {
			col, ok := c.nameToIndex[name]
			if !ok {
				continue
			}
			c.columns[col][r] = v
		}
	}

	return nil
}
