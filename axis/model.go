package axis

import "sort"

// Count returns the number of elements on this axis.
func (m *Model) Count() int {
	return m.count
}

// repairFrom recomputes prefix[i+1] = prefix[i] + size[i] for i in
// [from, count), and clears the dirty marker. O(count-from).
func (m *Model) repairFrom(from int) {
	if from < 0 {
		from = 0
	}
	if from > m.count {
		from = m.count
	}
	for i := from; i < m.count; i++ {
		m.prefix[i+1] = m.prefix[i] + m.size[i]
	}
	m.dirtyFrom = m.count + 1
}

// ensureClean repairs the prefix table if a prior SetSize deferred the
// work (lazy mode).
func (m *Model) ensureClean() {
	if m.dirtyFrom <= m.count {
		m.repairFrom(m.dirtyFrom)
	}
}

// TotalExtent returns the sum of all element sizes, prefix[count].
func (m *Model) TotalExtent() int64 {
	m.ensureClean()

	return m.prefix[m.count]
}

// Size returns the size of element index. Returns 0 if out of range.
func (m *Model) Size(index int) int64 {
	if index < 0 || index >= m.count {
		return 0
	}

	return m.size[index]
}

// OffsetOf returns the cumulative offset of index, i.e. the sum of the
// sizes of every element before it. O(1) once the table is clean.
func (m *Model) OffsetOf(index int) int64 {
	if index < 0 {
		index = 0
	}
	if index > m.count {
		index = m.count
	}
	m.ensureClean()

	return m.prefix[index]
}

// SetSize updates the size of index and keeps the monotonicity
// invariant (prefix[i+1] = prefix[i] + size[i], prefix[0] = 0,
// prefix[count] = TotalExtent()) true on the next query. In eager mode
// the suffix [index, count] is repaired immediately, O(count-index); in
// lazy mode (default) repair is deferred to the next query that needs
// it, so a run of SetSize calls amortizes to one O(count) repair.
func (m *Model) SetSize(index int, newSize int64) error {
	if index < 0 || index >= m.count {
		return ErrIndexOutOfRange
	}
	if newSize < 0 {
		return ErrNegativeSize
	}

	m.size[index] = newSize

	if m.eager {
		m.repairFrom(index)
		return nil
	}

	if index < m.dirtyFrom {
		m.dirtyFrom = index
	}

	return nil
}

// IndexAt returns the index i such that prefix[i] <= position <
// prefix[i+1], via binary search over the (clean) prefix table.
// Returns (count-1, true) if position >= TotalExtent(), and (0, true)
// if position < 0 and count > 0. ok is false only when count == 0.
func (m *Model) IndexAt(position int64) (index int, ok bool) {
	if m.count == 0 {
		return 0, false
	}
	m.ensureClean()

	if position < 0 {
		return 0, true
	}
	if position >= m.prefix[m.count] {
		return m.count - 1, true
	}

	// sort.Search finds the smallest i in [0,count] for which
	// prefix[i] > position; the covering index is i-1.
	i := sort.Search(m.count+1, func(i int) bool {
		return m.prefix[i] > position
	})

	return i - 1, true
}

// RangeCovering returns the half-open index range [startIdx, endIdx)
// whose element spans intersect the position range [start, end). The
// result is clamped to [0, count].
func (m *Model) RangeCovering(start, end int64) (startIdx, endIdx int) {
	if m.count == 0 {
		return 0, 0
	}
	if end <= start {
		return 0, 0
	}

	lo, _ := m.IndexAt(start)
	hiPos := end - 1
	hi, _ := m.IndexAt(hiPos)

	return lo, hi + 1
}

// Resize grows or shrinks the axis to exactly newCount elements.
// Existing indices below newCount keep their current size; new indices
// beyond the old count are initialized to the axis's default size. The
// prefix table is marked dirty and repaired on the next query.
func (m *Model) Resize(newCount int) {
	if newCount < 0 {
		newCount = 0
	}
	if newCount == m.count {
		return
	}

	if newCount < m.count {
		m.size = m.size[:newCount]
	} else {
		grown := make([]int64, newCount)
		copy(grown, m.size)
		for i := m.count; i < newCount; i++ {
			grown[i] = m.defaultSize
		}
		m.size = grown
	}

	m.count = newCount
	m.prefix = make([]int64, newCount+1)
	m.dirtyFrom = 0
}

// Stats is an O(1) diagnostic snapshot of the axis's current shape.
type Stats struct {
	Count       int
	TotalExtent int64
	DefaultSize int64
}

// Stats returns a snapshot of count, total extent, and default size,
// useful for telemetry without a full traversal.
func (m *Model) Stats() Stats {
	return Stats{
		Count:       m.count,
		TotalExtent: m.TotalExtent(),
		DefaultSize: m.defaultSize,
	}
}
