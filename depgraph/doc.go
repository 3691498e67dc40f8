// Package depgraph implements a directed, concurrency-safe dependency
// graph with cycle detection and topological ordering. It backs the
// column-group hierarchy (package group) but has no knowledge of
// groups, columns, or any other vgrid concept — it is a general-purpose
// "does A depend on B" graph.
//
// What:
//
//   - AddNode / AddEdge(from depends-on to) / RemoveEdge / RemoveNode.
//   - Dependencies(n): nodes n points to. Dependents(n): nodes pointing to n.
//   - HasCycle(): white/grey/black DFS, O(V+E).
//   - TopologicalOrder(): dependency-first ordering, or ok=false if a
//     cycle exists.
//   - Clone(): a deep, independent copy, used to validate a prospective
//     mutation before committing it to the live graph.
//
// Why:
//
//   - The column-group model (package group) must reject any mutation
//     that would introduce a parent/child cycle or push a group past the
//     configured maximum depth, and it must do so by testing the
//     mutation against a scratch copy first, never partially applying a
//     rejected change.
//
// Concurrency:
//
//   - Graph is safe for concurrent use: a single sync.RWMutex guards node
//     and edge state.
package depgraph
