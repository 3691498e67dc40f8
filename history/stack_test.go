package history_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vgrid-io/vgrid/eventbus"
	"github.com/vgrid-io/vgrid/history"
)

// recordingCommand counts how many times each lifecycle method fires
// and optionally fails Execute once, to exercise Stack's error path.
type recordingCommand struct {
	label                    string
	executed, undone, redone int
	failExecute              bool
}

func (c *recordingCommand) Execute() error {
	if c.failExecute {
		return errors.New("boom")
	}
	c.executed++
	return nil
}
func (c *recordingCommand) Undo() error         { c.undone++; return nil }
func (c *recordingCommand) Redo() error         { c.redone++; return nil }
func (c *recordingCommand) Description() string { return c.label }

func TestStack_ExecuteUndoRedo(t *testing.T) {
	s := history.New()
	cmd := &recordingCommand{label: "first"}

	require.NoError(t, s.Execute(cmd))
	assert.Equal(t, 1, cmd.executed)
	assert.True(t, s.CanUndo())
	assert.False(t, s.CanRedo())

	assert.True(t, s.Undo())
	assert.Equal(t, 1, cmd.undone)
	assert.False(t, s.CanUndo())
	assert.True(t, s.CanRedo())

	assert.True(t, s.Redo())
	assert.Equal(t, 1, cmd.redone)
	assert.True(t, s.CanUndo())
	assert.False(t, s.CanRedo())
}

func TestStack_UndoRedoOnEmptyIsNoop(t *testing.T) {
	s := history.New()
	assert.False(t, s.Undo())
	assert.False(t, s.Redo())
}

func TestStack_ExecuteClearsRedo(t *testing.T) {
	s := history.New()
	require.NoError(t, s.Execute(&recordingCommand{label: "a"}))
	require.NoError(t, s.Execute(&recordingCommand{label: "b"}))
	s.Undo()
	assert.True(t, s.CanRedo())

	require.NoError(t, s.Execute(&recordingCommand{label: "c"}))
	assert.False(t, s.CanRedo())
}

func TestStack_EvictsOldestOverCapacity(t *testing.T) {
	s := history.New(history.WithMaxHistorySize(2))
	require.NoError(t, s.Execute(&recordingCommand{label: "a"}))
	require.NoError(t, s.Execute(&recordingCommand{label: "b"}))
	require.NoError(t, s.Execute(&recordingCommand{label: "c"}))

	// undo three times: only the two most recent should be present.
	assert.True(t, s.Undo())
	assert.True(t, s.Undo())
	assert.False(t, s.Undo())
}

func TestStack_ExecuteFailureDoesNotPush(t *testing.T) {
	s := history.New()
	cmd := &recordingCommand{label: "bad", failExecute: true}

	err := s.Execute(cmd)
	assert.Error(t, err)
	assert.False(t, s.CanUndo())
}

func TestStack_ExecuteNilCommand(t *testing.T) {
	s := history.New()
	assert.ErrorIs(t, s.Execute(nil), history.ErrNilCommand)
}

func TestStack_EmitsHistoryChanged(t *testing.T) {
	s := history.New()
	var got history.HistoryChangedPayload
	_, err := eventbus.Subscribe(s.Bus(), history.EventHistoryChanged, func(p history.HistoryChangedPayload) {
		got = p
	})
	require.NoError(t, err)

	require.NoError(t, s.Execute(&recordingCommand{label: "x"}))
	assert.Equal(t, history.HistoryChangedPayload{CanUndo: true, CanRedo: false, UndoCount: 1, RedoCount: 0}, got)
}

func TestStack_ClearDiscardsPendingAndHistory(t *testing.T) {
	s := history.New(history.WithGroupingWindow(0))
	target := newFakeTarget(2, 2)

	require.NoError(t, s.Execute(&recordingCommand{label: "x"}))
	require.NoError(t, s.RecordCellEdit(target, history.CellEdit{Row: 0, Col: 0}))

	s.Clear()
	assert.False(t, s.CanUndo())
	assert.False(t, s.CanRedo())
}
