package group

import (
	"sync"

	"github.com/google/uuid"
	"github.com/vgrid-io/vgrid/depgraph"
)

// Model is the hierarchical column-group store: a map of groups plus a
// dependency graph with one child-id -> parent-id edge per non-root
// group.
//
// The zero value is not usable; construct with New.
type Model struct {
	mu       sync.RWMutex
	groups   map[string]Group
	graph    *depgraph.Graph
	maxDepth int
}

// Option configures a Model at construction time.
type Option func(*Model)

// WithMaxDepth overrides the default nesting limit (edges to nearest
// root; root is depth 0).
func WithMaxDepth(n int) Option {
	return func(m *Model) {
		if n > 0 {
			m.maxDepth = n
		}
	}
}

// New constructs an empty Model.
func New(opts ...Option) *Model {
	m := &Model{
		groups:   make(map[string]Group),
		graph:    depgraph.New(),
		maxDepth: defaultMaxDepth,
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// NewID returns a fresh random group identifier. Callers may also
// supply their own ids directly to AddGroup; this is a convenience for
// callers that have none of their own.
func NewID() string {
	return uuid.NewString()
}

// GetGroup returns a copy of the group with id, if present.
func (m *Model) GetGroup(id string) (Group, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	g, ok := m.groups[id]
	if !ok {
		return Group{}, false
	}

	return g.clone(), true
}

// GetAll returns a copy of every group in the model, in no particular
// order.
func (m *Model) GetAll() []Group {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Group, 0, len(m.groups))
	for _, g := range m.groups {
		out = append(out, g.clone())
	}

	return out
}

// AddGroup validates g against a scratch copy of the dependency graph
// (duplicate id, missing/self parent, would-be cycle, depth <
// maxDepth) before inserting it, appending it to its parent's child
// list, and auto-assigning its Level.
func (m *Model) AddGroup(g Group) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if g.ID == "" {
		return ErrEmptyGroupID
	}
	if _, exists := m.groups[g.ID]; exists {
		return ErrGroupExists
	}
	if g.ParentGroupID == g.ID && g.ID != "" {
		return ErrSelfParent
	}
	if g.ParentGroupID != "" {
		if _, ok := m.groups[g.ParentGroupID]; !ok {
			return ErrParentNotFound
		}
	}

	scratch := m.graph.Clone()
	if err := scratch.AddNode(g.ID); err != nil {
		return err
	}
	if g.ParentGroupID != "" {
		if err := scratch.AddEdge(g.ID, g.ParentGroupID); err != nil {
			return err
		}
	}
	if scratch.HasCycle() {
		return ErrCycleDetected
	}

	depth, _ := scratch.Depth(g.ID)
	if depth >= m.maxDepth {
		return ErrMaxDepthExceeded
	}

	// Scratch copy validated; commit to the live graph and store.
	_ = m.graph.AddNode(g.ID)
	if g.ParentGroupID != "" {
		_ = m.graph.AddEdge(g.ID, g.ParentGroupID)
	}

	stored := g.clone()
	stored.Expanded = true
	stored.Level = depth
	stored.ChildIDs = nil // a freshly-added group starts with no children of its own
	m.groups[g.ID] = stored

	if g.ParentGroupID != "" {
		parent := m.groups[g.ParentGroupID]
		parent.ChildIDs = append(parent.ChildIDs, g.ID)
		m.groups[g.ParentGroupID] = parent
	}

	return nil
}

// RemoveGroup deletes id. With cascade=false, every child of id is
// re-parented to id's own parent and its Level recomputed; with
// cascade=true, id's entire descendant subtree is removed too. Either
// way, graph edges and parent child lists stay consistent.
func (m *Model) RemoveGroup(id string, cascade bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	g, ok := m.groups[id]
	if !ok {
		return ErrGroupNotFound
	}

	if cascade {
		m.removeSubtreeLocked(id)
	} else {
		for _, childID := range append([]string(nil), g.ChildIDs...) {
			child := m.groups[childID]
			_ = m.graph.RemoveEdge(childID, id)
			child.ParentGroupID = g.ParentGroupID
			if g.ParentGroupID != "" {
				_ = m.graph.AddEdge(childID, g.ParentGroupID)
			}
			m.groups[childID] = child
		}
		if g.ParentGroupID != "" {
			parent := m.groups[g.ParentGroupID]
			parent.ChildIDs = appendUnique(removeString(parent.ChildIDs, id), g.ChildIDs...)
			m.groups[g.ParentGroupID] = parent
		}
		m.removeNodeLocked(id)
		m.recomputeLevelsLocked(g.ChildIDs)
	}

	return nil
}

// removeSubtreeLocked deletes id and every one of its descendants,
// purging all graph edges that touch any of them, and detaches id from
// its parent's child list. Caller holds m.mu.
func (m *Model) removeSubtreeLocked(id string) {
	g := m.groups[id]

	if g.ParentGroupID != "" {
		if parent, ok := m.groups[g.ParentGroupID]; ok {
			parent.ChildIDs = removeString(parent.ChildIDs, id)
			m.groups[g.ParentGroupID] = parent
		}
	}

	var remove func(string)
	remove = func(nodeID string) {
		node, ok := m.groups[nodeID]
		if !ok {
			return
		}
		for _, childID := range node.ChildIDs {
			remove(childID)
		}
		m.removeNodeLocked(nodeID)
	}
	remove(id)
}

func (m *Model) removeNodeLocked(id string) {
	_ = m.graph.RemoveNode(id)
	delete(m.groups, id)
}

// recomputeLevelsLocked refreshes Level for every id in roots and their
// full descendant subtree, via depgraph.Depth on the live graph. Caller
// holds m.mu.
func (m *Model) recomputeLevelsLocked(roots []string) {
	var visit func(string)
	visit = func(id string) {
		g, ok := m.groups[id]
		if !ok {
			return
		}
		depth, _ := m.graph.Depth(id)
		g.Level = depth
		m.groups[id] = g
		for _, childID := range g.ChildIDs {
			visit(childID)
		}
	}
	for _, id := range roots {
		visit(id)
	}
}

// GroupPatch carries the fields UpdateGroup may change; a nil pointer
// means "leave unchanged".
type GroupPatch struct {
	HeaderName    *string
	ParentGroupID *string
	ColumnFields  *[]string
}

// UpdateGroup applies patch to id. If ParentGroupID changes, the move is
// validated (self-parent, missing parent, cycle, depth) in a scratch
// copy of the graph before anything is committed; on success, the old
// and new parents' child lists and every level in id's descendant
// subtree are recomputed.
func (m *Model) UpdateGroup(id string, patch GroupPatch) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	g, ok := m.groups[id]
	if !ok {
		return ErrGroupNotFound
	}

	if patch.HeaderName != nil {
		g.HeaderName = *patch.HeaderName
	}
	if patch.ColumnFields != nil {
		g.ColumnFields = append([]string(nil), *patch.ColumnFields...)
	}

	if patch.ParentGroupID != nil && *patch.ParentGroupID != g.ParentGroupID {
		newParent := *patch.ParentGroupID
		if newParent == id {
			return ErrSelfParent
		}
		if newParent != "" {
			if _, ok := m.groups[newParent]; !ok {
				return ErrParentNotFound
			}
		}

		scratch := m.graph.Clone()
		if g.ParentGroupID != "" {
			_ = scratch.RemoveEdge(id, g.ParentGroupID)
		}
		if newParent != "" {
			if err := scratch.AddEdge(id, newParent); err != nil {
				return err
			}
		}
		if scratch.HasCycle() {
			return ErrCycleDetected
		}
		if newParent != "" {
			// The move carries id's whole subtree, so every descendant
			// must stay under maxDepth in the scratch graph too.
			queue := []string{id}
			for len(queue) > 0 {
				cur := queue[0]
				queue = queue[1:]
				if depth, _ := scratch.Depth(cur); depth >= m.maxDepth {
					return ErrMaxDepthExceeded
				}
				queue = append(queue, m.groups[cur].ChildIDs...)
			}
		}

		oldParentID := g.ParentGroupID
		if oldParentID != "" {
			_ = m.graph.RemoveEdge(id, oldParentID)
			if oldParent, ok := m.groups[oldParentID]; ok {
				oldParent.ChildIDs = removeString(oldParent.ChildIDs, id)
				m.groups[oldParentID] = oldParent
			}
		}
		if newParent != "" {
			_ = m.graph.AddEdge(id, newParent)
			newParentGroup := m.groups[newParent]
			newParentGroup.ChildIDs = appendUnique(newParentGroup.ChildIDs, id)
			m.groups[newParent] = newParentGroup
		}

		g.ParentGroupID = newParent
	}

	m.groups[id] = g
	m.recomputeLevelsLocked([]string{id})

	return nil
}

// ExpandGroup marks id as expanded. O(1).
func (m *Model) ExpandGroup(id string) error { return m.setExpanded(id, true) }

// CollapseGroup marks id as collapsed. O(1).
func (m *Model) CollapseGroup(id string) error { return m.setExpanded(id, false) }

// ToggleGroup flips id's expanded state. O(1).
func (m *Model) ToggleGroup(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	g, ok := m.groups[id]
	if !ok {
		return ErrGroupNotFound
	}
	g.Expanded = !g.Expanded
	m.groups[id] = g

	return nil
}

func (m *Model) setExpanded(id string, expanded bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	g, ok := m.groups[id]
	if !ok {
		return ErrGroupNotFound
	}
	g.Expanded = expanded
	m.groups[id] = g

	return nil
}

// IsExpanded reports id's expanded state. O(1).
func (m *Model) IsExpanded(id string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	g, ok := m.groups[id]
	if !ok {
		return false, ErrGroupNotFound
	}

	return g.Expanded, nil
}

// GetChildren returns id's direct children, in insertion order.
func (m *Model) GetChildren(id string) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return append([]string(nil), m.groups[id].ChildIDs...)
}

// GetDescendants returns every group beneath id, in breadth-first order.
func (m *Model) GetDescendants(id string) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []string
	queue := append([]string(nil), m.groups[id].ChildIDs...)
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		out = append(out, cur)
		queue = append(queue, m.groups[cur].ChildIDs...)
	}

	return out
}

// GetAncestors returns id's chain of parents, nearest first.
func (m *Model) GetAncestors(id string) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []string
	cur := m.groups[id].ParentGroupID
	for cur != "" {
		out = append(out, cur)
		cur = m.groups[cur].ParentGroupID
	}

	return out
}

// GetRoots returns every group with no parent, in no particular order.
func (m *Model) GetRoots() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []string
	for id, g := range m.groups {
		if g.ParentGroupID == "" {
			out = append(out, id)
		}
	}

	return out
}

// Node is one entry of the tree BuildHierarchyTree returns.
type Node struct {
	Group    Group
	Children []*Node
}

// BuildHierarchyTree returns the full forest of groups, rooted at every
// group with no parent.
func (m *Model) BuildHierarchyTree() []*Node {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var build func(id string) *Node
	build = func(id string) *Node {
		g := m.groups[id]
		n := &Node{Group: g.clone()}
		for _, childID := range g.ChildIDs {
			n.Children = append(n.Children, build(childID))
		}

		return n
	}

	var roots []*Node
	for id, g := range m.groups {
		if g.ParentGroupID == "" {
			roots = append(roots, build(id))
		}
	}

	return roots
}

func removeString(s []string, v string) []string {
	out := make([]string, 0, len(s))
	for _, e := range s {
		if e != v {
			out = append(out, e)
		}
	}

	return out
}

func appendUnique(s []string, vs ...string) []string {
	for _, v := range vs {
		found := false
		for _, e := range s {
			if e == v {
				found = true
				break
			}
		}
		if !found {
			s = append(s, v)
		}
	}

	return s
}
