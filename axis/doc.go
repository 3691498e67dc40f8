// Package axis implements the per-dimension bookkeeping shared by the row
// axis and the column axis of a grid: a sequence of element sizes and a
// cumulative-offset ("prefix") table over them.
//
// What:
//
//   - Model holds count, a per-index size table, a cumulative prefix
//     table, and a default size for not-yet-customized indices.
//   - OffsetOf(i): O(1) cumulative offset of index i.
//   - IndexAt(position): O(log count) binary search for the index whose
//     span covers position.
//   - SetSize(i, newSize): update one index's size.
//   - RangeCovering(start, end): the half-open index range whose spans
//     intersect [start, end).
//   - TotalExtent(): prefix[count], the sum of all sizes.
//
// Why:
//
//   - Viewport computation, scroll-to-cell, and hit-testing all reduce to
//     binary searches over a monotonically non-decreasing prefix table;
//     centralizing that table in one type keeps the invariant
//     (prefix[i+1] = prefix[i] + size[i]) in one place instead of
//     duplicated between the row and column axis.
//
// Repair strategy:
//
//   - Eager (WithEager): SetSize immediately recomputes the prefix
//     suffix [index..count), an O(count-index) operation.
//   - Lazy (default): SetSize only records the size and marks the table
//     dirty from the lowest touched index onward; the suffix is repaired
//     on the next query that needs it (OffsetOf, IndexAt,
//     RangeCovering, TotalExtent). Several SetSize calls in a row amortize
//     to a single O(count) repair instead of O(count) per call.
package axis
