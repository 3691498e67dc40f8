package grid

import (
	"strconv"
	"sync"

	"github.com/vgrid-io/vgrid/axis"
	"github.com/vgrid-io/vgrid/datamodel"
	"github.com/vgrid-io/vgrid/eventbus"
	"github.com/vgrid-io/vgrid/groupmanager"
	"github.com/vgrid-io/vgrid/history"
	"github.com/vgrid-io/vgrid/sortengine"
	"github.com/vgrid-io/vgrid/sortstate"
	"github.com/vgrid-io/vgrid/viewport"
)

// defaultRowSize and defaultColSize seed the row/col axes when the
// caller does not supply its own axis.Model via WithRowAxis/WithColAxis.
const (
	defaultRowSize int64 = 30
	defaultColSize int64 = 100
)

// Facade composes the engine's A-J components into vgrid's one external
// surface. The zero value is not usable; construct with New.
type Facade struct {
	mu sync.RWMutex

	model datamodel.Model

	rowAxis *axis.Model
	colAxis *axis.Model

	sortState *sortstate.State
	viewport  *viewport.Viewport
	history   *history.Stack
	groups    *groupmanager.Manager

	bus *eventbus.Bus[Event]

	onSortRequest SortRequestFunc
	sortPending   bool
}

// Option configures a Facade at construction time.
type Option func(*facadeConfig)

type facadeConfig struct {
	model datamodel.Model

	rowAxis *axis.Model
	colAxis *axis.Model

	viewportWidth, viewportHeight int64
	overscanRows, overscanCols    int

	sortOpts    []sortengine.SortOption
	historyOpts []history.Option

	groups *groupmanager.Manager
	bus    *eventbus.Bus[Event]

	onSortRequest SortRequestFunc
}

// WithModel attaches a caller-constructed datamodel.Model (sparse or
// columnar) instead of a fresh datamodel.Sparse.
func WithModel(m datamodel.Model) Option {
	return func(cfg *facadeConfig) { cfg.model = m }
}

// WithRowAxis / WithColAxis attach a caller-constructed axis.Model
// instead of a fresh one sized off rowCount/colCount with the package's
// default element size.
func WithRowAxis(a *axis.Model) Option { return func(cfg *facadeConfig) { cfg.rowAxis = a } }
func WithColAxis(a *axis.Model) Option { return func(cfg *facadeConfig) { cfg.colAxis = a } }

// WithViewportSize sets the pixel dimensions of the visible window.
func WithViewportSize(width, height int64) Option {
	return func(cfg *facadeConfig) {
		cfg.viewportWidth, cfg.viewportHeight = width, height
	}
}

// WithOverscan sets how many extra rows/cols beyond the strict visible
// range the viewport engine includes.
func WithOverscan(rows, cols int) Option {
	return func(cfg *facadeConfig) {
		cfg.overscanRows, cfg.overscanCols = rows, cols
	}
}

// WithSortOptions applies extra sortengine.SortOption values (e.g.
// WithNullsFirst) to every sort this Facade performs.
func WithSortOptions(opts ...sortengine.SortOption) Option {
	return func(cfg *facadeConfig) { cfg.sortOpts = append(cfg.sortOpts, opts...) }
}

// WithHistoryOptions applies extra history.Option values (e.g.
// WithGroupingWindow) to the Facade's command stack.
func WithHistoryOptions(opts ...history.Option) Option {
	return func(cfg *facadeConfig) { cfg.historyOpts = append(cfg.historyOpts, opts...) }
}

// WithGroupManager attaches a caller-owned groupmanager.Manager. Without
// this option, Groups() returns nil and column-group operations are
// unavailable; the group manager is an optional collaborator.
func WithGroupManager(m *groupmanager.Manager) Option {
	return func(cfg *facadeConfig) { cfg.groups = m }
}

// WithBus attaches a caller-owned bus instead of Facade's own private one.
func WithBus(bus *eventbus.Bus[Event]) Option {
	return func(cfg *facadeConfig) { cfg.bus = bus }
}

// WithOnSortRequest installs the asynchronous backend-mode sort hook,
// used by RequestSort only. Without it, RequestSort resolves
// synchronously against the local data model; the Add/Remove/Toggle/Clear
// sort methods always resolve locally and never call the hook.
func WithOnSortRequest(fn SortRequestFunc) Option {
	return func(cfg *facadeConfig) { cfg.onSortRequest = fn }
}

// New constructs a Facade over a grid of rowCount rows and colCount
// columns.
func New(rowCount, colCount int, opts ...Option) *Facade {
	cfg := facadeConfig{bus: eventbus.New[Event]()}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.model == nil {
		cfg.model = datamodel.NewSparse(rowCount, colCount)
	}
	if cfg.rowAxis == nil {
		cfg.rowAxis = axis.New(rowCount, axis.WithDefaultSize(defaultRowSize))
	}
	if cfg.colAxis == nil {
		cfg.colAxis = axis.New(colCount, axis.WithDefaultSize(defaultColSize))
	}

	f := &Facade{
		model:         cfg.model,
		rowAxis:       cfg.rowAxis,
		colAxis:       cfg.colAxis,
		bus:           cfg.bus,
		groups:        cfg.groups,
		onSortRequest: cfg.onSortRequest,
	}

	f.sortState = sortstate.New(recordsFromModel(cfg.model), sortstate.WithSortOptions(cfg.sortOpts...))
	f.viewport = viewport.New(f.rowAxis, f.colAxis, cfg.viewportWidth, cfg.viewportHeight,
		viewport.WithOverscan(cfg.overscanRows, cfg.overscanCols))
	f.history = history.New(cfg.historyOpts...)

	f.wireForwarding()

	return f
}

// wireForwarding subscribes to every collaborator's own bus and
// re-emits the relevant events on Facade's bus, so a rendering
// collaborator only ever subscribes in one place.
func (f *Facade) wireForwarding() {
	_, _ = eventbus.Subscribe(f.sortState.Bus(), sortstate.EventSortChanged, func(p sortstate.SortChangedPayload) {
		eventbus.Emit(f.bus, EventAfterSort, AfterSortPayload{Permutation: p.Permutation})
	})

	_, _ = eventbus.Subscribe(f.history.Bus(), history.EventHistoryChanged, func(p history.HistoryChangedPayload) {
		eventbus.Emit(f.bus, EventHistoryChanged, p)
	})

	if f.groups != nil {
		_, _ = eventbus.Subscribe(f.groups.Bus(), groupmanager.EventGroupToggled, func(p groupmanager.GroupToggledPayload) {
			eventbus.Emit(f.bus, EventGroupToggled, GroupToggledPayload{GroupID: p.GroupID, Expanded: p.Expanded})
		})
	}
}

// Bus returns the eventbus this Facade emits on, for callers to Subscribe.
func (f *Facade) Bus() *eventbus.Bus[Event] { return f.bus }

// History returns the undo/redo command stack behind UpdateCells. SetData,
// Refresh and the axis size setters are not recorded on it.
func (f *Facade) History() *history.Stack { return f.history }

// SortState returns the reactive sort state holder.
func (f *Facade) SortState() *sortstate.State { return f.sortState }

// Groups returns the optional column-group manager, or nil if this
// Facade was constructed without WithGroupManager.
func (f *Facade) Groups() *groupmanager.Manager { return f.groups }

// Viewport returns the viewport engine computing what's currently visible.
func (f *Facade) Viewport() *viewport.Viewport { return f.viewport }

// RowAxis / ColAxis expose the underlying axis models for read-only
// geometry queries (TotalExtent, Stats, ...).
func (f *Facade) RowAxis() *axis.Model { return f.rowAxis }
func (f *Facade) ColAxis() *axis.Model { return f.colAxis }

// VisualToLogical translates a visual row position (0 == topmost
// currently-sorted row) to the logical row index the data model stores
// it under, via the current sort permutation.
func (f *Facade) VisualToLogical(visualRow int) int {
	f.mu.RLock()
	defer f.mu.RUnlock()

	perm := f.sortState.Permutation()
	if visualRow < 0 || visualRow >= len(perm) {
		return visualRow
	}

	return perm[visualRow]
}

// GetValue returns the value at (visualRow, col), resolving visualRow
// to its logical row through the current sort permutation.
func (f *Facade) GetValue(visualRow, col int) datamodel.Value {
	logical := f.VisualToLogical(visualRow)

	f.mu.RLock()
	defer f.mu.RUnlock()

	return f.model.GetValue(logical, col)
}

// SetData replaces the underlying data wholesale: it bulk-loads rows
// into the data model, resizes the row axis to len(rows), recomputes the
// sort permutation against the existing sort model, and emits
// EventDataChange with a nil AffectedRange.
func (f *Facade) SetData(rows []datamodel.Row) error {
	f.mu.Lock()
	if err := f.model.BulkLoad(rows); err != nil {
		f.mu.Unlock()
		return err
	}
	f.rowAxis.Resize(f.model.RowCount())
	records := recordsFromModel(f.model)
	f.mu.Unlock()

	// Emissions happen with f.mu released so listeners can query the
	// façade synchronously (GetValue takes the read lock).
	f.sortState.SetData(records)
	eventbus.Emit(f.bus, EventDataChange, DataChangePayload{})

	return nil
}

// ScrollTo computes the scroll offset that brings (row, col) into view
// per alignment and applies it to the Facade's Viewport.
func (f *Facade) ScrollTo(row, col int, alignment viewport.Alignment) {
	f.mu.Lock()
	defer f.mu.Unlock()

	top, left := f.viewport.ScrollToCell(row, col, alignment)
	f.viewport.SetScroll(top, left)
}

// UpdateCells applies a batch of logical-coordinate cell edits as one
// undoable Command (history.NewCellEditCommand), executed immediately
// through the command stack. Callers that want rapid single-cell edits
// to coalesce into one undo entry across several calls (e.g. a live
// cell editor, one call per keystroke) should use History().
// RecordCellEdit directly instead; UpdateCells always applies its whole
// batch right away. Emits EventDataChange naming the affected rectangle.
func (f *Facade) UpdateCells(edits []history.CellEdit) error {
	if len(edits) == 0 {
		return nil
	}

	// Execute runs outside f.mu: the Stack emits EventHistoryChanged
	// from inside, and a listener reacting to it may query the façade
	// synchronously.
	cmd := history.NewCellEditCommand(f.model, edits...)
	if err := f.history.Execute(cmd); err != nil {
		return err
	}

	f.mu.Lock()
	records := recordsFromModel(f.model)
	f.mu.Unlock()

	rng := rangeOf(edits)
	f.sortState.SetData(records)
	eventbus.Emit(f.bus, EventDataChange, DataChangePayload{AffectedRange: &rng})

	return nil
}

// Refresh recomputes the sort permutation against the current data
// model contents and emits EventDataChange, for callers that mutated the
// data model directly (bypassing UpdateCells) and need the façade's
// derived state to catch up.
func (f *Facade) Refresh() {
	f.mu.Lock()
	records := recordsFromModel(f.model)
	f.mu.Unlock()

	f.sortState.SetData(records)
	eventbus.Emit(f.bus, EventDataChange, DataChangePayload{})
}

// SetRowSize / SetColSize resize one element of the row/column axis and
// emit EventAxisResize.
func (f *Facade) SetRowSize(index int, size int64) error {
	f.mu.Lock()
	err := f.rowAxis.SetSize(index, size)
	f.mu.Unlock()
	if err != nil {
		return err
	}

	eventbus.Emit(f.bus, EventAxisResize, AxisResizePayload{Axis: "row", Index: index, NewSize: size})

	return nil
}

func (f *Facade) SetColSize(index int, size int64) error {
	f.mu.Lock()
	err := f.colAxis.SetSize(index, size)
	f.mu.Unlock()
	if err != nil {
		return err
	}

	eventbus.Emit(f.bus, EventAxisResize, AxisResizePayload{Axis: "col", Index: index, NewSize: size})

	return nil
}

// rangeOf computes the bounding rectangle of a batch of cell edits.
func rangeOf(edits []history.CellEdit) Range {
	r := Range{RowLo: edits[0].Row, RowHi: edits[0].Row + 1, ColLo: edits[0].Col, ColHi: edits[0].Col + 1}
	for _, e := range edits[1:] {
		if e.Row < r.RowLo {
			r.RowLo = e.Row
		}
		if e.Row+1 > r.RowHi {
			r.RowHi = e.Row + 1
		}
		if e.Col < r.ColLo {
			r.ColLo = e.Col
		}
		if e.Col+1 > r.ColHi {
			r.ColHi = e.Col + 1
		}
	}

	return r
}

// recordsFromModel materializes model's populated cells into the
// []sortengine.Record shape the sort engine consumes, keyed by
// positional column index ("0", "1", ...) since datamodel.Model does
// not universally expose column names (Sparse models may have none).
func recordsFromModel(m datamodel.Model) []sortengine.Record {
	rowCount := m.RowCount()
	records := make([]sortengine.Record, rowCount)
	for i := range records {
		records[i] = sortengine.Record{}
	}

	m.ForEachInRange(0, rowCount, 0, m.ColCount(), func(row, col int, v datamodel.Value) {
		records[row][strconv.Itoa(col)] = v
	})

	return records
}
