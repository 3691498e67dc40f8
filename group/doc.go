// Package group implements the hierarchical column-group model: a set
// of named, possibly nested groups of column fields, backed by a
// dependency graph (package depgraph) with one edge per child-id ->
// parent-id pair.
//
// What:
//
//   - Group: { ID, HeaderName, ParentGroupID, ChildIDs, ColumnFields,
//     Expanded, Level }. Level is always auto-derived, never set
//     directly by a caller.
//   - AddGroup/RemoveGroup/UpdateGroup: structural mutations. AddGroup
//     and UpdateGroup are validated against a scratch Clone of the
//     dependency graph before being committed to the live one;
//     RemoveGroup edits the live graph directly.
//   - ExpandGroup/CollapseGroup/ToggleGroup/IsExpanded: O(1) UI state.
//   - GetChildren/GetDescendants/GetAncestors/GetRoots/
//     BuildHierarchyTree: read queries, O(size of result).
//   - ValidateGroup/ValidateHierarchy: structural health checks
//     returning a Result{Valid, Errors, Warnings}.
//
// Why:
//
//   - A grid's column headers nest (e.g. "Q1" containing "Jan/Feb/Mar");
//     the model tracks that nesting independent of any rendering.
//
// Contract:
//
//   - No self-parent, no cycle, depth < maxDepth (edges to nearest
//     root), for every child c of p: groups[c].ParentGroupID == p.ID.
//   - State machine per group: created -> (expanded <-> collapsed)* ->
//     removed. Initial: expanded. Terminal: removed, all edges purged.
package group
