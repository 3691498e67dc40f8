package sortstate

import "github.com/vgrid-io/vgrid/sortengine"

// Event is the small, fixed set of events State emits.
type Event string

const (
	// EventSortChanged fires after every mutation, whether or not it
	// leaves the model empty: setSortModel, addSortColumn,
	// removeSortColumn, toggleSortColumn, setData (which recomputes the
	// permutation against the existing model), and a ClearSort that
	// empties a non-empty model.
	EventSortChanged Event = "sortChanged"
	// EventSortCleared fires, in addition to EventSortChanged, whenever
	// ClearSort empties a previously non-empty model.
	EventSortCleared Event = "sortCleared"
)

// SortChangedPayload is the payload of EventSortChanged.
// ChangedColumn is empty when the mutation (e.g. SetData) did not target
// one specific field.
type SortChangedPayload struct {
	SortModel     sortengine.SortModel
	ChangedColumn string
	Permutation   []int
}

// SortClearedPayload is the payload of EventSortCleared.
type SortClearedPayload struct {
	PreviousModel sortengine.SortModel
}
