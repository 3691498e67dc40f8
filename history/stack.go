package history

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/vgrid-io/vgrid/eventbus"
)

// Stack is a bounded undo/redo command stack with edit-grouping: rapid
// calls to RecordCellEdit coalesce into a single reversible Command
// before ever reaching the undo deque.
//
// The zero value is not usable; construct with New.
type Stack struct {
	mu      sync.Mutex
	undo    []Command
	redo    []Command
	maxSize int
	bus     *eventbus.Bus[Event]
	logger  zerolog.Logger

	groupingWindow time.Duration
	pendingTarget  EditTarget
	pendingEdits   []CellEdit
	pendingTimer   *time.Timer
	now            func() time.Time
}

// Option configures a Stack at construction time.
type Option func(*Stack)

// WithMaxHistorySize overrides the default cap (100) on the undo deque.
// Values <= 0 are ignored.
func WithMaxHistorySize(n int) Option {
	return func(s *Stack) {
		if n > 0 {
			s.maxSize = n
		}
	}
}

// WithGroupingWindow overrides the default 500ms window RecordCellEdit
// waits for a follow-up edit before flushing the pending batch.
func WithGroupingWindow(d time.Duration) Option {
	return func(s *Stack) {
		if d > 0 {
			s.groupingWindow = d
		}
	}
}

// WithBus attaches a caller-owned bus instead of Stack's own private one.
func WithBus(bus *eventbus.Bus[Event]) Option {
	return func(s *Stack) {
		s.bus = bus
	}
}

// WithLogger overrides the zerolog.Logger used for diagnostic messages.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Stack) {
		s.logger = logger
	}
}

// New constructs an empty Stack.
func New(opts ...Option) *Stack {
	s := &Stack{
		maxSize:        defaultMaxHistorySize,
		bus:            eventbus.New[Event](),
		logger:         log.Logger,
		groupingWindow: defaultGroupingWindow * time.Millisecond,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Bus returns the eventbus this Stack emits on, for callers to Subscribe.
func (s *Stack) Bus() *eventbus.Bus[Event] { return s.bus }

// CanUndo reports whether Undo would do anything.
func (s *Stack) CanUndo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.undo) > 0
}

// CanRedo reports whether Redo would do anything.
func (s *Stack) CanRedo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.redo) > 0
}

// Execute flushes any pending grouped edit, runs cmd.Execute(), and on
// success pushes cmd onto the undo deque, clears the redo deque, and
// evicts the oldest undo entry if over capacity. Returns cmd.Execute()'s
// error without pushing anything if it fails.
func (s *Stack) Execute(cmd Command) error {
	if cmd == nil {
		return ErrNilCommand
	}

	s.mu.Lock()
	flushed := s.flushLocked()

	if err := cmd.Execute(); err != nil {
		payload := s.changedPayloadLocked()
		s.mu.Unlock()
		if flushed {
			eventbus.Emit(s.bus, EventHistoryChanged, payload)
		}
		return err
	}

	s.undo = append(s.undo, cmd)
	s.redo = nil
	if len(s.undo) > s.maxSize {
		s.undo = s.undo[len(s.undo)-s.maxSize:]
	}
	payload := s.changedPayloadLocked()
	s.mu.Unlock()

	eventbus.Emit(s.bus, EventHistoryChanged, payload)

	return nil
}

// Undo flushes any pending grouped edit, pops the most recent undo
// entry, invokes Undo() on it, and pushes it onto the redo deque.
// Returns false without effect if the undo deque is empty.
func (s *Stack) Undo() bool {
	s.mu.Lock()
	s.flushLocked()

	if len(s.undo) == 0 {
		s.mu.Unlock()
		return false
	}

	last := s.undo[len(s.undo)-1]
	s.undo = s.undo[:len(s.undo)-1]

	if err := last.Undo(); err != nil {
		s.logger.Warn().Err(err).Str("command", last.Description()).Msg("history: undo failed")
	}
	s.redo = append(s.redo, last)
	payload := s.changedPayloadLocked()
	s.mu.Unlock()

	eventbus.Emit(s.bus, EventHistoryChanged, payload)

	return true
}

// Redo flushes any pending grouped edit, pops the most recent redo
// entry, invokes Redo() on it, and pushes it back onto the undo deque.
// Returns false if the redo deque is empty once the pending edit is
// flushed; a flush that happened still emits EventHistoryChanged.
func (s *Stack) Redo() bool {
	s.mu.Lock()
	flushed := s.flushLocked()

	if len(s.redo) == 0 {
		payload := s.changedPayloadLocked()
		s.mu.Unlock()
		if flushed {
			eventbus.Emit(s.bus, EventHistoryChanged, payload)
		}
		return false
	}

	last := s.redo[len(s.redo)-1]
	s.redo = s.redo[:len(s.redo)-1]

	if err := last.Redo(); err != nil {
		s.logger.Warn().Err(err).Str("command", last.Description()).Msg("history: redo failed")
	}
	s.undo = append(s.undo, last)
	payload := s.changedPayloadLocked()
	s.mu.Unlock()

	eventbus.Emit(s.bus, EventHistoryChanged, payload)

	return true
}

// Clear discards any pending grouped edit without executing it, empties
// both deques, and emits EventHistoryChanged.
func (s *Stack) Clear() {
	s.mu.Lock()
	s.discardPendingLocked()
	s.undo = nil
	s.redo = nil
	payload := s.changedPayloadLocked()
	s.mu.Unlock()

	eventbus.Emit(s.bus, EventHistoryChanged, payload)
}

// changedPayloadLocked must be called with s.mu held.
func (s *Stack) changedPayloadLocked() HistoryChangedPayload {
	return HistoryChangedPayload{
		CanUndo:   len(s.undo) > 0,
		CanRedo:   len(s.redo) > 0,
		UndoCount: len(s.undo),
		RedoCount: len(s.redo),
	}
}
