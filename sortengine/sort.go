package sortengine

import (
	"sort"
	"strings"

	"github.com/vgrid-io/vgrid/datamodel"
)

// defaultMaxSortColumns bounds how many SortColumn entries Sort will
// honor before silently truncating the tail (lowest precedence first).
const defaultMaxSortColumns = 8

// SortOption configures one call to Sort.
type SortOption func(*sortConfig)

type sortConfig struct {
	maxSortColumns int
	nullsFirst     bool
}

func newSortConfig(opts ...SortOption) sortConfig {
	cfg := sortConfig{maxSortColumns: defaultMaxSortColumns}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithMaxSortColumns overrides the default limit on active sort columns.
func WithMaxSortColumns(n int) SortOption {
	return func(cfg *sortConfig) {
		if n > 0 {
			cfg.maxSortColumns = n
		}
	}
}

// WithNullsFirst sorts null field values before non-null ones instead of
// the default nulls-last behavior, under both Ascending and Descending.
func WithNullsFirst() SortOption {
	return func(cfg *sortConfig) {
		cfg.nullsFirst = true
	}
}

// Sort returns the permutation that reorders data according to model:
// result[i] is the index into data of the record that belongs at
// logical position i. data itself is never modified. Ties under every
// active column retain their original relative order (stable).
//
// An empty model yields the identity permutation. Columns beyond the
// configured maxSortColumns (default 8) are dropped from the tail.
func Sort(data []Record, model SortModel, opts ...SortOption) []int {
	cfg := newSortConfig(opts...)

	cols := append([]SortColumn(nil), model.Columns...)
	sort.SliceStable(cols, func(i, j int) bool { return cols[i].Priority < cols[j].Priority })
	if len(cols) > cfg.maxSortColumns {
		cols = cols[:cfg.maxSortColumns]
	}

	perm := make([]int, len(data))
	for i := range perm {
		perm[i] = i
	}

	if len(cols) == 0 {
		return perm
	}

	paths := make([][]string, len(cols))
	for i := range cols {
		paths[i] = cols[i].compilePath()
	}

	sort.SliceStable(perm, func(i, j int) bool {
		return less(data[perm[i]], data[perm[j]], cols, paths, cfg)
	})

	return perm
}

func less(a, b Record, cols []SortColumn, paths [][]string, cfg sortConfig) bool {
	for i, col := range cols {
		va := resolveField(a, paths[i])
		vb := resolveField(b, paths[i])

		c := compare(va, vb, col, cfg)
		if c != 0 {
			return c < 0
		}
	}

	return false
}

// compare resolves one column's comparator and applies its direction. A
// per-column Comparator sees raw values (nulls included) and its result
// is direction-multiplied verbatim; the auto path handles nulls before
// the direction multiplier, so nulls stay at the configured end (last by
// default) under Ascending and Descending alike.
func compare(a, b datamodel.Value, col SortColumn, cfg sortConfig) int {
	if col.Comparator != nil {
		c := col.Comparator(a, b)
		if col.Direction == Descending {
			c = -c
		}
		return c
	}

	aNull, bNull := a.IsNull(), b.IsNull()
	if aNull || bNull {
		switch {
		case aNull && bNull:
			return 0
		case cfg.nullsFirst:
			if aNull {
				return -1
			}
			return 1
		default:
			if aNull {
				return 1
			}
			return -1
		}
	}

	c := autoCompare(a, b)
	if col.Direction == Descending {
		c = -c
	}

	return c
}

// autoCompare compares two non-null values of (presumably) matching
// kind: numeric kinds via Numeric(), text lexicographically, bool with
// false before true, and timestamps chronologically. Mismatched kinds
// fall back to comparing their string representation so Sort never
// panics on heterogeneous input.
func autoCompare(a, b datamodel.Value) int {
	if an, aok := a.Numeric(); aok {
		if bn, bok := b.Numeric(); bok {
			switch {
			case an < bn:
				return -1
			case an > bn:
				return 1
			default:
				return 0
			}
		}
	}

	if at, aok := a.AsTimestamp(); aok {
		if bt, bok := b.AsTimestamp(); bok {
			switch {
			case at.Before(bt):
				return -1
			case at.After(bt):
				return 1
			default:
				return 0
			}
		}
	}

	if ab, aok := a.AsBool(); aok {
		if bb, bok := b.AsBool(); bok {
			switch {
			case ab == bb:
				return 0
			case !ab:
				return -1
			default:
				return 1
			}
		}
	}

	return strings.Compare(a.String(), b.String())
}

// InvertPermutation returns inv such that inv[p[i]] == i for all i: the
// map from original index back to its sorted position.
func InvertPermutation(p []int) []int {
	inv := make([]int, len(p))
	for i, v := range p {
		inv[v] = i
	}

	return inv
}

// ApplyPermutation returns a new slice with data reordered so that
// result[i] == data[p[i]], leaving data untouched.
func ApplyPermutation(p []int, data []Record) []Record {
	result := make([]Record, len(p))
	for i, idx := range p {
		result[i] = data[idx]
	}

	return result
}
