package viewport

// Alignment selects where ScrollToCell places the target cell within
// the viewport.
type Alignment int

const (
	// AlignAuto scrolls only if the cell is currently out of view: to
	// the start edge if it lies before the viewport, to the end edge if
	// it lies after. No-op if already visible.
	AlignAuto Alignment = iota
	// AlignStart places the cell's leading edge at the viewport's
	// leading edge.
	AlignStart
	// AlignCenter centers the cell within the viewport.
	AlignCenter
	// AlignEnd places the cell's trailing edge at the viewport's
	// trailing edge.
	AlignEnd
)

// Range is a visible index range on one axis.
type Range struct {
	Start int
	End   int // half-open: [Start, End)
}

// VisibleRange is the two-dimensional visible index range a viewport
// currently needs rendered.
type VisibleRange struct {
	Rows Range
	Cols Range
}
