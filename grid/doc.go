// Package grid is the composition root for vgrid's headless engine: it
// wires an eventbus.Bus, a datamodel.Model, a row/column pair of
// axis.Model, a sortstate.State, a history.Stack, and an optional
// groupmanager.Manager into the single external surface a rendering
// collaborator needs — SetData, GetValue, ScrollTo, UpdateCells, Refresh
// — and forwards every component's own events onto one bus so a
// collaborator subscribes in exactly one place.
//
// What:
//
//   - Facade owns exactly one of each collaborator; UpdateCells routes
//     through the history.Stack so its edits are undoable, while SetData
//     and Refresh write the data model directly and are not recorded in
//     history. Every read routes through the current sort permutation so
//     visual row v reads logical row VisualToLogical(v).
//   - Sort mutations (AddSortColumn, ToggleSortColumn, ...) emit
//     EventBeforeSort first; a listener calling Cancel() on its payload
//     skips the mutation and suppresses EventAfterSort.
//   - RequestSort models the optional asynchronous backend-mode hook:
//     while a request is outstanding, new
//     requests are rejected rather than computed locally, and resolution
//     (success or failure) is reported on the same bus.
//
// Why:
//
//   - A rendering collaborator should never need to know that a sort
//     click touches sortstate, a group toggle touches groupmanager, and
//     a cell edit touches history independently; Facade is the one seam
//     between "headless engine" and "whatever draws it."
package grid
