package sortengine

import (
	"strings"

	"github.com/vgrid-io/vgrid/datamodel"
)

// Direction is the sort direction of one SortColumn.
type Direction int

const (
	// Ascending sorts smallest-first.
	Ascending Direction = iota
	// Descending sorts largest-first.
	Descending
)

// Comparator compares two resolved field values, returning <0, 0, or >0
// as a sorts before, equal to, or after b, independent of Direction
// (Sort applies the +1/-1 multiplier itself).
type Comparator func(a, b datamodel.Value) int

// Record is one input record. Sort engine consumers commonly populate
// leaves with datamodel.Value and intermediate levels with nested
// Record (or map[string]any interchangeably) to support dotted paths
// like "address.city".
type Record map[string]any

// SortColumn is one key of a multi-key sort: a field path, a direction,
// a priority (lower = higher precedence), and an optional per-column
// comparator override.
type SortColumn struct {
	Field      string
	Direction  Direction
	Priority   int
	Comparator Comparator // nil selects the auto comparator

	path []string // Field split on '.', compiled once by compilePath
}

func (c *SortColumn) compilePath() []string {
	if c.path == nil {
		c.path = strings.Split(c.Field, ".")
	}

	return c.path
}

// SortModel is an ordered, field-unique sequence of sort columns.
type SortModel struct {
	Columns []SortColumn
}

// Clone returns a deep copy of m.
func (m SortModel) Clone() SortModel {
	return SortModel{Columns: append([]SortColumn(nil), m.Columns...)}
}
