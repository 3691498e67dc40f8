package group

// ValidateGroup checks g in isolation: a non-empty ID (an empty
// HeaderName is only a warning), and that g isn't self-parented, whether
// or not g is stored. It does not check
// cycles or depth, since those require the full graph — see
// ValidateHierarchy for that.
func (m *Model) ValidateGroup(g Group) Result {
	var res Result
	res.Valid = true

	if g.ID == "" {
		res.Valid = false
		res.Errors = append(res.Errors, "group id is empty")
	}
	if g.HeaderName == "" {
		res.Warnings = append(res.Warnings, "group has no header name")
	}
	if g.ParentGroupID == g.ID && g.ID != "" {
		res.Valid = false
		res.Errors = append(res.Errors, "group cannot be its own parent")
	}

	return res
}

// ValidateHierarchy walks every stored group and flags cycles, orphaned
// parent references (a ParentGroupID pointing at a group that does not
// exist), and parent/child list mismatches (asymmetry between a group's
// ChildIDs and its children's ParentGroupID).
func (m *Model) ValidateHierarchy() Result {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var res Result
	res.Valid = true

	if m.graph.HasCycle() {
		res.Valid = false
		res.Errors = append(res.Errors, "dependency graph contains a cycle")
	}

	for id, g := range m.groups {
		if g.ParentGroupID != "" {
			if _, ok := m.groups[g.ParentGroupID]; !ok {
				res.Valid = false
				res.Errors = append(res.Errors, "group "+id+" references missing parent "+g.ParentGroupID)
			}
		}
		for _, childID := range g.ChildIDs {
			child, ok := m.groups[childID]
			if !ok {
				res.Valid = false
				res.Errors = append(res.Errors, "group "+id+" lists missing child "+childID)
				continue
			}
			if child.ParentGroupID != id {
				res.Valid = false
				res.Errors = append(res.Errors, "child "+childID+" does not point back to parent "+id)
			}
		}
	}

	return res
}
