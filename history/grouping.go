package history

import (
	"fmt"

	"github.com/vgrid-io/vgrid/eventbus"
)

// RecordCellEdit records one cell mutation against target for undo
// history. If the previous call to RecordCellEdit (against the same
// target) happened less than the configured grouping window ago, edit
// joins that pending batch and the flush deadline resets; otherwise a
// fresh batch starts and a deadline timer is armed. An edit against a
// different target first flushes the pending batch (emitting
// EventHistoryChanged) and then starts its own. The deadline, once it
// fires with no further edits, flushes the batch into a single-edit
// Command (batch size 1) or a batch-edit Command (batch size > 1) via
// Execute, so the flushed command always lands on the undo deque.
//
// RecordCellEdit does not itself write edit.NewValue to target: the
// write happens when the batch is flushed and its Command's Execute
// runs, so until then target still holds its previous value. The grid
// façade does not use this path; Facade.UpdateCells executes its edits
// immediately.
func (s *Stack) RecordCellEdit(target EditTarget, edit CellEdit) error {
	if target == nil {
		return ErrNilTarget
	}

	s.mu.Lock()

	flushed := false
	if len(s.pendingEdits) > 0 && s.pendingTarget != target {
		// A different target arrived mid-batch: flush the old batch
		// first so edits against two targets never merge into one
		// Command.
		flushed = s.flushLocked()
	}

	s.pendingTarget = target
	s.pendingEdits = append(s.pendingEdits, edit)
	s.armDeadlineLocked()
	payload := s.changedPayloadLocked()
	s.mu.Unlock()

	if flushed {
		eventbus.Emit(s.bus, EventHistoryChanged, payload)
	}

	return nil
}

// Flush forces any pending grouped edit to execute immediately, without
// waiting for the grouping window to elapse. No-op if nothing is pending.
func (s *Stack) Flush() {
	s.mu.Lock()
	flushed := s.flushLocked()
	payload := s.changedPayloadLocked()
	s.mu.Unlock()

	if flushed {
		eventbus.Emit(s.bus, EventHistoryChanged, payload)
	}
}

// armDeadlineLocked (re)starts the flush timer; must be called with
// s.mu held. The timer callback emits EventHistoryChanged itself, since
// no public Stack method is on the callback's stack to do it.
func (s *Stack) armDeadlineLocked() {
	if s.pendingTimer != nil {
		s.pendingTimer.Stop()
	}
	s.pendingTimer = newTimer(s.groupingWindow, func() {
		s.mu.Lock()
		flushed := s.flushLocked()
		payload := s.changedPayloadLocked()
		s.mu.Unlock()

		if flushed {
			eventbus.Emit(s.bus, EventHistoryChanged, payload)
		}
	})
}

// flushLocked builds a Command from the pending batch (if any) and
// executes it, bypassing the public Execute method (which would itself
// try to flush, recursing). Reports whether the undo deque changed.
// Must be called with s.mu held; callers that receive true must emit
// EventHistoryChanged after releasing the lock, unless they are about to
// emit one for their own mutation anyway.
func (s *Stack) flushLocked() bool {
	if s.pendingTimer != nil {
		s.pendingTimer.Stop()
		s.pendingTimer = nil
	}
	if len(s.pendingEdits) == 0 {
		return false
	}

	target := s.pendingTarget
	edits := s.pendingEdits
	s.pendingTarget = nil
	s.pendingEdits = nil

	var cmd Command
	if len(edits) == 1 {
		cmd = &singleEditCommand{target: target, edit: edits[0]}
	} else {
		cmd = &batchEditCommand{target: target, edits: edits}
	}

	if err := cmd.Execute(); err != nil {
		s.logger.Warn().Err(err).Str("command", cmd.Description()).Msg("history: flush execute failed")
		return false
	}

	s.undo = append(s.undo, cmd)
	s.redo = nil
	if len(s.undo) > s.maxSize {
		s.undo = s.undo[len(s.undo)-s.maxSize:]
	}

	return true
}

// discardPendingLocked cancels the pending batch, if any, without
// executing it. Must be called with s.mu held.
func (s *Stack) discardPendingLocked() {
	if s.pendingTimer != nil {
		s.pendingTimer.Stop()
		s.pendingTimer = nil
	}
	s.pendingTarget = nil
	s.pendingEdits = nil
}

// NewCellEditCommand builds the Command that would result from flushing
// edits as one batch: a *singleEditCommand if there is exactly one, a
// *batchEditCommand otherwise. Callers with an already-known, complete
// set of edits (e.g. a programmatic bulk update) should run this
// through Stack.Execute directly instead of RecordCellEdit, which is
// for coalescing edits arriving one at a time with unknown boundaries.
func NewCellEditCommand(target EditTarget, edits ...CellEdit) Command {
	if len(edits) == 1 {
		return &singleEditCommand{target: target, edit: edits[0]}
	}

	return &batchEditCommand{target: target, edits: edits}
}

// singleEditCommand applies one CellEdit.
type singleEditCommand struct {
	target EditTarget
	edit   CellEdit
}

func (c *singleEditCommand) Execute() error {
	return c.target.SetValue(c.edit.Row, c.edit.Col, c.edit.NewValue)
}

func (c *singleEditCommand) Undo() error {
	return c.target.SetValue(c.edit.Row, c.edit.Col, c.edit.OldValue)
}

func (c *singleEditCommand) Redo() error {
	return c.target.SetValue(c.edit.Row, c.edit.Col, c.edit.NewValue)
}

func (c *singleEditCommand) Description() string {
	return fmt.Sprintf("edit cell (%d,%d)", c.edit.Row, c.edit.Col)
}

// batchEditCommand applies a coalesced run of CellEdit values in order;
// Undo reverses them in inverse order so that, e.g., two edits to the
// same cell (A->B then B->C) undo straight back to A rather than
// stopping at the intermediate B.
type batchEditCommand struct {
	target EditTarget
	edits  []CellEdit
}

func (c *batchEditCommand) Execute() error {
	for _, e := range c.edits {
		if err := c.target.SetValue(e.Row, e.Col, e.NewValue); err != nil {
			return err
		}
	}

	return nil
}

func (c *batchEditCommand) Undo() error {
	for i := len(c.edits) - 1; i >= 0; i-- {
		e := c.edits[i]
		if err := c.target.SetValue(e.Row, e.Col, e.OldValue); err != nil {
			return err
		}
	}

	return nil
}

func (c *batchEditCommand) Redo() error {
	return c.Execute()
}

func (c *batchEditCommand) Description() string {
	return fmt.Sprintf("edit %d cells", len(c.edits))
}
