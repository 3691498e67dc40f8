package history

import (
	"errors"

	"github.com/vgrid-io/vgrid/datamodel"
)

// Sentinel errors for history operations.
var (
	// ErrNilCommand indicates Execute was called with a nil Command.
	ErrNilCommand = errors.New("history: command is nil")
	// ErrNilTarget indicates RecordCellEdit was called with a nil EditTarget.
	ErrNilTarget = errors.New("history: edit target is nil")
)

// defaultMaxHistorySize bounds the undo deque before oldest-first eviction.
const defaultMaxHistorySize = 100

// defaultGroupingWindow is how long RecordCellEdit waits for another
// edit before flushing the pending batch.
const defaultGroupingWindow = 500 // milliseconds; see WithGroupingWindow

// Command is a reversible unit of mutation. Execute applies it for the
// first time; Undo reverses it; Redo re-applies it after an Undo.
// Description is a human-readable label for UI history lists.
type Command interface {
	Execute() error
	Undo() error
	Redo() error
	Description() string
}

// EditTarget is the subset of datamodel.Model that cell-edit commands
// need: a single coordinate write. Any datamodel.Model satisfies it.
type EditTarget interface {
	SetValue(row, col int, v datamodel.Value) error
}

// CellEdit is one coordinate mutation: the value at (Row, Col) moves
// from OldValue to NewValue.
type CellEdit struct {
	Row, Col           int
	OldValue, NewValue datamodel.Value
}

// Event is the small, fixed set of events Stack emits.
type Event string

// EventHistoryChanged fires after every Execute/Undo/Redo/Clear that
// changes the undo/redo deques, carrying a HistoryChangedPayload.
const EventHistoryChanged Event = "historyChanged"

// HistoryChangedPayload is the payload of EventHistoryChanged.
type HistoryChangedPayload struct {
	CanUndo   bool
	CanRedo   bool
	UndoCount int
	RedoCount int
}
