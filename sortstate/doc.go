// Package sortstate is a thin, reactive wrapper around sortengine: it
// holds (data, sortModel, lastPermutation) as one unit and keeps the
// permutation in lock-step with every mutation, emitting through an
// eventbus.Bus so observers (a renderer, a viewport) never have to poll.
//
// What:
//
//   - State: owns the data slice, the current SortModel, and the
//     permutation sortengine.Sort produced from them.
//   - SetData/SetSortModel/AddSortColumn/RemoveSortColumn/
//     ToggleSortColumn/ClearSort: each recomputes the permutation and
//     emits EventSortChanged; ClearSort additionally emits
//     EventSortCleared.
//   - GetSortedData: a materialized copy of data in permutation order.
//
// Why:
//
//   - State carries no sorting logic of its own — it exists only to
//     keep data/model/permutation from drifting out of sync and to
//     broadcast when they change.
//
// Contract:
//
//   - permutation.length == data.length after every mutation.
//   - Events fire only after the mutation is fully applied, so
//     listeners observe post-mutation state.
package sortstate
