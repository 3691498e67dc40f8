// Package eventbus provides a typed publish/subscribe bus used by every
// other component of vgrid to announce state changes.
//
// What:
//
//   - Bus[E] is a fixed-event-map pub/sub: Subscribe, Once, Unsubscribe,
//     Emit, RemoveAll, ListenerCount.
//   - Emit iterates a snapshot of the listener list so a listener may
//     Subscribe or Unsubscribe during dispatch without corrupting the
//     in-progress iteration.
//   - A listener that panics is recovered, logged, and does not
//     interrupt dispatch to the remaining listeners.
//
// Why:
//
//   - Every core component (axis, sort state, group manager, command
//     stack, grid facade) needs to broadcast change notifications to an
//     arbitrary number of collaborators without a hard dependency on
//     those collaborators' types.
//
// Complexity:
//
//   - Subscribe/Once: O(1) amortized.
//   - Unsubscribe: O(listeners of that event).
//   - Emit: O(listeners) plus O(listeners) for the dispatch snapshot.
//
// Concurrency:
//
//   - Bus is safe for concurrent Subscribe/Emit from multiple goroutines;
//     a single sync.RWMutex guards the listener table. The engine's
//     execution model is single-threaded cooperative, so the locking is
//     defensive rather than required.
package eventbus
