package sortstate

import (
	"sync"

	"github.com/vgrid-io/vgrid/eventbus"
	"github.com/vgrid-io/vgrid/sortengine"
)

// State holds data, a SortModel, and the permutation sortengine.Sort
// derives from them, and keeps the three in sync across mutations.
//
// The zero value is not usable; construct with New.
type State struct {
	mu    sync.RWMutex
	data  []sortengine.Record
	model sortengine.SortModel
	perm  []int
	bus   *eventbus.Bus[Event]
	opts  []sortengine.SortOption
}

// Option configures a State at construction time.
type Option func(*State)

// WithSortOptions applies extra sortengine.SortOption values (e.g.
// WithNullsFirst) to every recompute this State performs.
func WithSortOptions(opts ...sortengine.SortOption) Option {
	return func(s *State) {
		s.opts = append(s.opts, opts...)
	}
}

// WithBus attaches a caller-owned bus instead of State's own private one,
// so sortstate events can share a dispatcher with other grid components.
func WithBus(bus *eventbus.Bus[Event]) Option {
	return func(s *State) {
		s.bus = bus
	}
}

// New constructs a State over data with an empty SortModel (identity
// permutation).
func New(data []sortengine.Record, opts ...Option) *State {
	s := &State{
		data: data,
		bus:  eventbus.New[Event](),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.perm = sortengine.Sort(s.data, s.model, s.opts...)

	return s
}

// Bus returns the eventbus this State emits on, for callers to Subscribe.
func (s *State) Bus() *eventbus.Bus[Event] {
	return s.bus
}

// SortModel returns a copy of the current sort model.
func (s *State) SortModel() sortengine.SortModel {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.model.Clone()
}

// Permutation returns a copy of the current permutation.
func (s *State) Permutation() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]int(nil), s.perm...)
}

// GetSortedData returns a materialized copy of data ordered by the
// current permutation.
func (s *State) GetSortedData() []sortengine.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return sortengine.ApplyPermutation(s.perm, s.data)
}

// SetData replaces the underlying data and recomputes the permutation
// against the existing sort model, emitting EventSortChanged.
func (s *State) SetData(data []sortengine.Record) {
	s.mu.Lock()
	s.data = data
	s.perm = sortengine.Sort(s.data, s.model, s.opts...)
	payload := s.changedPayload("")
	s.mu.Unlock()

	eventbus.Emit(s.bus, EventSortChanged, payload)
}

// SetSortModel replaces the sort model wholesale and recomputes the
// permutation, emitting EventSortChanged.
func (s *State) SetSortModel(m sortengine.SortModel) {
	s.mu.Lock()
	s.model = m.Clone()
	s.perm = sortengine.Sort(s.data, s.model, s.opts...)
	payload := s.changedPayload("")
	s.mu.Unlock()

	eventbus.Emit(s.bus, EventSortChanged, payload)
}

// AddSortColumn promotes field to priority 0 (sortengine.SortModel.
// AddSortColumn semantics) and recomputes, emitting EventSortChanged.
func (s *State) AddSortColumn(field string, dir sortengine.Direction) {
	s.mu.Lock()
	s.model.AddSortColumn(field, dir)
	s.perm = sortengine.Sort(s.data, s.model, s.opts...)
	payload := s.changedPayload(field)
	s.mu.Unlock()

	eventbus.Emit(s.bus, EventSortChanged, payload)
}

// RemoveSortColumn drops field from the model and recomputes, emitting
// EventSortChanged.
func (s *State) RemoveSortColumn(field string) {
	s.mu.Lock()
	s.model.RemoveSortColumn(field)
	s.perm = sortengine.Sort(s.data, s.model, s.opts...)
	payload := s.changedPayload(field)
	s.mu.Unlock()

	eventbus.Emit(s.bus, EventSortChanged, payload)
}

// ToggleSortColumn cycles field none/asc/desc and recomputes, emitting
// EventSortChanged.
func (s *State) ToggleSortColumn(field string) {
	s.mu.Lock()
	s.model.ToggleSortColumn(field)
	s.perm = sortengine.Sort(s.data, s.model, s.opts...)
	payload := s.changedPayload(field)
	s.mu.Unlock()

	eventbus.Emit(s.bus, EventSortChanged, payload)
}

// ClearSort empties the sort model, recomputes the now-identity
// permutation, and emits EventSortChanged followed by EventSortCleared.
// ClearSort on an already-empty model is a no-op that emits nothing.
func (s *State) ClearSort() {
	s.mu.Lock()
	if len(s.model.Columns) == 0 {
		s.mu.Unlock()
		return
	}

	previous := s.model.Clone()
	s.model = sortengine.SortModel{}
	s.perm = sortengine.Sort(s.data, s.model, s.opts...)
	changed := s.changedPayload("")
	s.mu.Unlock()

	eventbus.Emit(s.bus, EventSortChanged, changed)
	eventbus.Emit(s.bus, EventSortCleared, SortClearedPayload{PreviousModel: previous})
}

// changedPayload must be called with s.mu held.
func (s *State) changedPayload(changedColumn string) SortChangedPayload {
	return SortChangedPayload{
		SortModel:     s.model.Clone(),
		ChangedColumn: changedColumn,
		Permutation:   append([]int(nil), s.perm...),
	}
}
