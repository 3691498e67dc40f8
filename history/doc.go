// Package history is a bounded undo/redo command stack with edit
// grouping: rapid, same-burst cell edits coalesce into one reversible
// transaction instead of flooding the undo list one keystroke at a time.
//
// What:
//
//   - Stack.Execute/Undo/Redo/Clear run a Command and keep two bounded
//     deques (undo, redo); pushing a new command always clears redo.
//   - RecordCellEdit appends to a pending batch instead of executing
//     immediately when called within the configured grouping window of
//     the previous edit; a deadline timer flushes the batch into a
//     singleEditCommand (size 1) or a batchEditCommand (size > 1).
//   - Any call to Execute/Undo/Redo flushes a pending batch first, and
//     Clear discards it, so explicit history operations never race a
//     pending coalesce.
//
// Why:
//
//   - A grid that records one Command per keystroke makes undo
//     nonsensical to a user who typed "Alice" into a cell: ctrl-Z would
//     walk back one letter at a time. Coalescing within a short window
//     turns that into one cell edit; editing ten cells in one paste
//     still turns into one batch undo.
package history
