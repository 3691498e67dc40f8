package grid

import (
	"errors"

	"github.com/vgrid-io/vgrid/sortengine"
)

// Sentinel errors for Facade operations.
var (
	// ErrSortRequestPending indicates RequestSort was called while a
	// prior asynchronous request is still outstanding.
	ErrSortRequestPending = errors.New("grid: a sort request is already pending")
)

// Event is the small, fixed set of events Facade emits. It is the only
// bus a rendering collaborator needs to subscribe to: every other
// component's own events are forwarded here.
type Event string

const (
	// EventDataChange fires after SetData, UpdateCells, or Refresh,
	// carrying a DataChangePayload naming the affected range (nil means
	// "assume everything changed").
	EventDataChange Event = "data:change"
	// EventBeforeSort fires before a sort mutation is applied, carrying
	// a cancellable BeforeSortPayload.
	EventBeforeSort Event = "sort:beforeSort"
	// EventAfterSort fires once a sort mutation's permutation is ready,
	// whether computed locally or resolved via RequestSort.
	EventAfterSort Event = "sort:afterSort"
	// EventSortError fires when an asynchronous RequestSort resolves
	// with a failure.
	EventSortError Event = "error"
	// EventGroupToggled forwards groupmanager.EventGroupToggled.
	EventGroupToggled Event = "group:toggled"
	// EventAxisResize fires after SetRowSize/SetColSize.
	EventAxisResize Event = "axis:resize"
	// EventHistoryChanged forwards history.EventHistoryChanged.
	EventHistoryChanged Event = "historyChanged"
)

// Range names a rectangle of cells affected by a mutation.
type Range struct {
	RowLo, RowHi, ColLo, ColHi int
}

// DataChangePayload is the payload of EventDataChange. A nil
// AffectedRange means the whole grid should be treated as changed.
type DataChangePayload struct {
	AffectedRange *Range
}

// BeforeSortPayload is the payload of EventBeforeSort. Any listener may
// call Cancel to skip the sort and suppress the matching EventAfterSort.
type BeforeSortPayload struct {
	SortModel sortengine.SortModel
	cancelled *bool
}

// Cancel marks the in-flight sort mutation to be skipped.
func (p BeforeSortPayload) Cancel() {
	*p.cancelled = true
}

// AfterSortPayload is the payload of EventAfterSort.
type AfterSortPayload struct {
	Permutation []int
}

// ErrorPayload is the payload of EventSortError.
type ErrorPayload struct {
	Message string
	Cause   error
	Context sortengine.SortModel
}

// AxisResizePayload is the payload of EventAxisResize.
type AxisResizePayload struct {
	Axis    string // "row" or "col"
	Index   int
	NewSize int64
}

// GroupToggledPayload is the payload of EventGroupToggled, mirroring
// groupmanager.GroupToggledPayload.
type GroupToggledPayload struct {
	GroupID  string
	Expanded bool
}
