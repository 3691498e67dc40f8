// Package viewport computes what a virtualized grid should actually
// render: given a row axis, a column axis, the current scroll offset,
// and the viewport's own size, it derives the visible index range
// (extended by a configurable overscan), answers "what's at this pixel"
// (pointToCell), and computes the scroll offset that brings a given
// cell into view (scrollToCell).
//
// What:
//
//   - GetVisibleRange: two axis.Model.RangeCovering queries, one per
//     axis, each extended by its overscan and clamped to valid indices.
//   - ScrollToCell(row, col, alignment): returns the scroll offsets
//     that satisfy alignment (auto/start/center/end).
//   - PointToCell(x, y): two axis.Model.IndexAt queries; absent if the
//     point falls outside either axis's total extent.
//
// Why:
//
//   - This is the only place scroll position, viewport size, and axis
//     geometry meet; everything downstream renders purely off its
//     output and never re-derives it independently.
package viewport
