package grid

import (
	"context"

	"github.com/vgrid-io/vgrid/eventbus"
	"github.com/vgrid-io/vgrid/sortengine"
)

// SortRequestFunc is the optional asynchronous backend-mode sort hook:
// given the requested model, it returns a
// channel that receives exactly one error (nil on success) once the
// backend has produced the corresponding data ordering, or a
// synchronous error if the request could not even be scheduled.
type SortRequestFunc func(ctx context.Context, model sortengine.SortModel) (<-chan error, error)

// beforeSort emits EventBeforeSort for model and reports whether any
// listener cancelled it.
func (f *Facade) beforeSort(model sortengine.SortModel) bool {
	cancelled := false
	eventbus.Emit(f.bus, EventBeforeSort, BeforeSortPayload{SortModel: model, cancelled: &cancelled})

	return cancelled
}

// AddSortColumn promotes field to priority 0 unless a beforeSort
// listener cancels it. On success the underlying sortstate.State emits
// sortChanged, which Facade forwards as EventAfterSort.
func (f *Facade) AddSortColumn(field string, dir sortengine.Direction) {
	if f.beforeSort(f.sortState.SortModel()) {
		return
	}
	f.sortState.AddSortColumn(field, dir)
}

// RemoveSortColumn drops field from the sort model unless cancelled.
func (f *Facade) RemoveSortColumn(field string) {
	if f.beforeSort(f.sortState.SortModel()) {
		return
	}
	f.sortState.RemoveSortColumn(field)
}

// ToggleSortColumn cycles field none/asc/desc unless cancelled.
func (f *Facade) ToggleSortColumn(field string) {
	if f.beforeSort(f.sortState.SortModel()) {
		return
	}
	f.sortState.ToggleSortColumn(field)
}

// ClearSort empties the sort model unless cancelled.
func (f *Facade) ClearSort() {
	if f.beforeSort(f.sortState.SortModel()) {
		return
	}
	f.sortState.ClearSort()
}

// RequestSort applies model either locally (no WithOnSortRequest
// configured) or through the asynchronous backend hook. While a prior
// RequestSort is outstanding, a new call returns ErrSortRequestPending
// rather than superseding it.
// A cancelled beforeSort returns nil: the sort was skipped, not an
// error.
func (f *Facade) RequestSort(ctx context.Context, model sortengine.SortModel) error {
	if f.beforeSort(model) {
		return nil
	}

	if f.onSortRequest == nil {
		f.sortState.SetSortModel(model)
		return nil
	}

	f.mu.Lock()
	if f.sortPending {
		f.mu.Unlock()
		return ErrSortRequestPending
	}
	f.sortPending = true
	f.mu.Unlock()

	done, err := f.onSortRequest(ctx, model)
	if err != nil {
		f.mu.Lock()
		f.sortPending = false
		f.mu.Unlock()
		eventbus.Emit(f.bus, EventSortError, ErrorPayload{Message: "sort request failed", Cause: err, Context: model})

		return err
	}

	go f.awaitSortResolution(model, done)

	return nil
}

// awaitSortResolution blocks on the backend's completion channel and
// applies or reports the result. It never runs on the caller's
// goroutine: the backend hook is the engine's only asynchronous
// surface, and its resolution must not block RequestSort's caller.
func (f *Facade) awaitSortResolution(model sortengine.SortModel, done <-chan error) {
	err := <-done

	f.mu.Lock()
	f.sortPending = false
	f.mu.Unlock()

	if err != nil {
		eventbus.Emit(f.bus, EventSortError, ErrorPayload{Message: "sort request failed", Cause: err, Context: model})
		return
	}

	f.sortState.SetSortModel(model)
}
