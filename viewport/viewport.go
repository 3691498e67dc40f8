package viewport

import "github.com/vgrid-io/vgrid/axis"

// Viewport ties a row axis and a column axis to the current scroll
// position and the viewport's own pixel size.
//
// The zero value is not usable; construct with New.
type Viewport struct {
	rowAxis *axis.Model
	colAxis *axis.Model

	scrollTop  int64
	scrollLeft int64
	width      int64
	height     int64

	overscanRows int
	overscanCols int
}

// Option configures a Viewport at construction time.
type Option func(*Viewport)

// WithOverscan sets how many extra rows/cols beyond the strictly
// visible range GetVisibleRange includes, to reduce blank frames during
// fast scrolling.
func WithOverscan(rows, cols int) Option {
	return func(v *Viewport) {
		v.overscanRows = rows
		v.overscanCols = cols
	}
}

// New constructs a Viewport over rowAxis/colAxis with the given pixel
// size. Scroll starts at (0,0).
func New(rowAxis, colAxis *axis.Model, width, height int64, opts ...Option) *Viewport {
	v := &Viewport{rowAxis: rowAxis, colAxis: colAxis, width: width, height: height}
	for _, opt := range opts {
		opt(v)
	}

	return v
}

// Scroll returns the current (top, left) scroll offset.
func (v *Viewport) Scroll() (top, left int64) {
	return v.scrollTop, v.scrollLeft
}

// SetScroll updates the scroll offset directly, clamping each axis to
// [0, max(0, totalExtent-viewportExtent)].
func (v *Viewport) SetScroll(top, left int64) {
	v.scrollTop = clamp(top, 0, maxScroll(v.rowAxis.TotalExtent(), v.height))
	v.scrollLeft = clamp(left, 0, maxScroll(v.colAxis.TotalExtent(), v.width))
}

// Resize updates the viewport's own pixel size, re-clamping the current
// scroll offset to the new bounds.
func (v *Viewport) Resize(width, height int64) {
	v.width, v.height = width, height
	v.SetScroll(v.scrollTop, v.scrollLeft)
}

// GetVisibleRange returns the row and column index ranges that need to
// be rendered: the strict coverage of the current scroll window,
// extended by the configured overscan and clamped to each axis's valid
// indices.
func (v *Viewport) GetVisibleRange() VisibleRange {
	rowStart, rowEnd := v.rowAxis.RangeCovering(v.scrollTop, v.scrollTop+v.height)
	colStart, colEnd := v.colAxis.RangeCovering(v.scrollLeft, v.scrollLeft+v.width)

	return VisibleRange{
		Rows: extendAndClamp(rowStart, rowEnd, v.overscanRows, v.rowAxis.Count()),
		Cols: extendAndClamp(colStart, colEnd, v.overscanCols, v.colAxis.Count()),
	}
}

func extendAndClamp(start, end, overscan, count int) Range {
	start -= overscan
	end += overscan
	if start < 0 {
		start = 0
	}
	if end > count {
		end = count
	}
	if end < start {
		end = start
	}

	return Range{Start: start, End: end}
}

// ScrollToCell returns the scroll offsets that bring (row, col) into
// view per alignment, without mutating the Viewport; callers apply the
// result via SetScroll.
func (v *Viewport) ScrollToCell(row, col int, alignment Alignment) (top, left int64) {
	top = alignOffset(v.rowAxis, row, v.scrollTop, v.height, alignment)
	left = alignOffset(v.colAxis, col, v.scrollLeft, v.width, alignment)

	return clamp(top, 0, maxScroll(v.rowAxis.TotalExtent(), v.height)),
		clamp(left, 0, maxScroll(v.colAxis.TotalExtent(), v.width))
}

func alignOffset(a *axis.Model, index int, currentScroll, viewportExtent int64, alignment Alignment) int64 {
	cellStart := a.OffsetOf(index)
	cellEnd := a.OffsetOf(index + 1)
	cellSize := cellEnd - cellStart

	switch alignment {
	case AlignStart:
		return cellStart
	case AlignCenter:
		return cellStart - (viewportExtent-cellSize)/2
	case AlignEnd:
		return cellEnd - viewportExtent
	default: // AlignAuto
		if cellStart < currentScroll {
			return cellStart
		}
		if cellEnd > currentScroll+viewportExtent {
			return cellEnd - viewportExtent
		}

		return currentScroll
	}
}

// PointToCell returns the (row, col) index pair covering the pixel at
// (x, y) relative to the viewport's own top-left corner, translating
// through the current scroll offset. ok is false if the point falls
// outside either axis's total extent.
func (v *Viewport) PointToCell(x, y int64) (row, col int, ok bool) {
	absY := v.scrollTop + y
	absX := v.scrollLeft + x

	if absY < 0 || absY >= v.rowAxis.TotalExtent() {
		return 0, 0, false
	}
	if absX < 0 || absX >= v.colAxis.TotalExtent() {
		return 0, 0, false
	}

	row, _ = v.rowAxis.IndexAt(absY)
	col, _ = v.colAxis.IndexAt(absX)

	return row, col, true
}

func maxScroll(totalExtent, viewportExtent int64) int64 {
	if totalExtent <= viewportExtent {
		return 0
	}

	return totalExtent - viewportExtent
}

func clamp(v, lo, hi int64) int64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
