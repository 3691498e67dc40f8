package history_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vgrid-io/vgrid/datamodel"
	"github.com/vgrid-io/vgrid/eventbus"
	"github.com/vgrid-io/vgrid/history"
)

// fakeTarget is a minimal history.EditTarget backed by a dense grid of
// datamodel.Value, standing in for a real datamodel.Model in tests.
type fakeTarget struct {
	rows, cols int
	cells      map[[2]int]datamodel.Value
}

func newFakeTarget(rows, cols int) *fakeTarget {
	return &fakeTarget{rows: rows, cols: cols, cells: make(map[[2]int]datamodel.Value)}
}

func (f *fakeTarget) SetValue(row, col int, v datamodel.Value) error {
	f.cells[[2]int{row, col}] = v
	return nil
}

func (f *fakeTarget) at(row, col int) datamodel.Value {
	return f.cells[[2]int{row, col}]
}

// TestRecordCellEdit_CoalescesWithinWindow: two
// edits to the same cell within the grouping window flush as one undo
// entry; undo restores the original value, redo restores the final one.
func TestRecordCellEdit_CoalescesWithinWindow(t *testing.T) {
	s := history.New(history.WithGroupingWindow(50 * time.Millisecond))
	target := newFakeTarget(1, 1)
	target.SetValue(0, 0, datamodel.Text("A"))

	require.NoError(t, s.RecordCellEdit(target, history.CellEdit{
		Row: 0, Col: 0, OldValue: datamodel.Text("A"), NewValue: datamodel.Text("B"),
	}))
	time.Sleep(10 * time.Millisecond)
	require.NoError(t, s.RecordCellEdit(target, history.CellEdit{
		Row: 0, Col: 0, OldValue: datamodel.Text("B"), NewValue: datamodel.Text("C"),
	}))

	s.Flush()

	assert.True(t, s.CanUndo())
	assert.Equal(t, 1, undoCount(s))

	s.Undo()
	assert.Equal(t, "A", mustText(target.at(0, 0)))

	s.Redo()
	assert.Equal(t, "C", mustText(target.at(0, 0)))
}

func TestRecordCellEdit_DeadlineFlushesAutomatically(t *testing.T) {
	s := history.New(history.WithGroupingWindow(10 * time.Millisecond))
	target := newFakeTarget(1, 1)

	require.NoError(t, s.RecordCellEdit(target, history.CellEdit{
		Row: 0, Col: 0, NewValue: datamodel.Text("x"),
	}))

	assert.Eventually(t, func() bool {
		return s.CanUndo()
	}, 200*time.Millisecond, 5*time.Millisecond)
}

func TestRecordCellEdit_NilTarget(t *testing.T) {
	s := history.New()
	assert.ErrorIs(t, s.RecordCellEdit(nil, history.CellEdit{}), history.ErrNilTarget)
}

func TestRecordCellEdit_DifferentTargetFlushesPriorBatch(t *testing.T) {
	s := history.New(history.WithGroupingWindow(time.Hour))
	a, b := newFakeTarget(1, 1), newFakeTarget(1, 1)

	var payloads []history.HistoryChangedPayload
	_, _ = eventbus.Subscribe(s.Bus(), history.EventHistoryChanged, func(p history.HistoryChangedPayload) {
		payloads = append(payloads, p)
	})

	require.NoError(t, s.RecordCellEdit(a, history.CellEdit{Row: 0, Col: 0, NewValue: datamodel.Text("a")}))
	require.NoError(t, s.RecordCellEdit(b, history.CellEdit{Row: 0, Col: 0, NewValue: datamodel.Text("b")}))

	// undoCount would flush b's pending batch via Undo, so read the
	// count from the event that a's flush emitted instead.
	assert.Equal(t, []history.HistoryChangedPayload{{CanUndo: true, UndoCount: 1}}, payloads)
	s.Flush()
	assert.Equal(t, 2, undoCount(s))
}

func undoCount(s *history.Stack) int {
	n := 0
	for s.CanUndo() {
		s.Undo()
		n++
	}
	for i := 0; i < n; i++ {
		s.Redo()
	}
	return n
}

func mustText(v datamodel.Value) string {
	s, _ := v.AsText()
	return s
}

func TestDeadlineFlushEmitsHistoryChanged(t *testing.T) {
	s := history.New(history.WithGroupingWindow(10 * time.Millisecond))
	target := newFakeTarget(1, 1)

	var mu sync.Mutex
	var payloads []history.HistoryChangedPayload
	_, _ = eventbus.Subscribe(s.Bus(), history.EventHistoryChanged, func(p history.HistoryChangedPayload) {
		mu.Lock()
		payloads = append(payloads, p)
		mu.Unlock()
	})

	require.NoError(t, s.RecordCellEdit(target, history.CellEdit{
		Row: 0, Col: 0, NewValue: datamodel.Text("x"),
	}))

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(payloads) == 1 && payloads[0].CanUndo && payloads[0].UndoCount == 1
	}, 200*time.Millisecond, 5*time.Millisecond)
}

func TestExplicitFlushEmitsHistoryChanged(t *testing.T) {
	s := history.New(history.WithGroupingWindow(time.Hour))
	target := newFakeTarget(1, 1)

	var payloads []history.HistoryChangedPayload
	_, _ = eventbus.Subscribe(s.Bus(), history.EventHistoryChanged, func(p history.HistoryChangedPayload) {
		payloads = append(payloads, p)
	})

	require.NoError(t, s.RecordCellEdit(target, history.CellEdit{
		Row: 0, Col: 0, NewValue: datamodel.Text("x"),
	}))
	require.Empty(t, payloads) // nothing on the deque yet

	s.Flush()

	require.Len(t, payloads, 1)
	assert.Equal(t, 1, payloads[0].UndoCount)

	s.Flush() // nothing pending: no further emission
	assert.Len(t, payloads, 1)
}
