// Package sortengine implements the stable, multi-key sort that turns a
// sequence of records and a sort model into a permutation.
//
// What:
//
//   - Sort(data, model, opts...): stable, non-mutating, O(n log n).
//     Composes one comparator per sort column, in ascending Priority,
//     returning on the first non-zero result.
//   - Record: a map-of-maps the field accessor resolves dotted paths
//     against (e.g. "address.city"); a missing segment resolves to Null.
//   - SortModel: an ordered, priority-ranked, field-deduplicated list of
//     SortColumn. AddSortColumn/RemoveSortColumn/ToggleSortColumn/
//     GetSortDirection/GetSortPriority are the convenience operations
//     for building one interactively (e.g. from header clicks).
//   - InvertPermutation/ApplyPermutation: free functions over []int for
//     round-tripping between visual and logical order.
//
// Why:
//
//   - Grid views sort logical rows without moving the underlying data;
//     everything downstream (viewport, renderer) reads through the
//     returned permutation instead.
//
// Contract:
//
//   - Stable: records equal under the model retain their input order.
//   - Non-mutating: the input data slice is never reordered.
//   - Empty sort model: identity permutation.
//   - maxSortColumns: columns beyond the configured limit are silently
//     truncated from the tail (lowest precedence first).
//   - Nulls: sort to the end under both directions by default
//     (configurable per call via WithNullsFirst).
package sortengine
