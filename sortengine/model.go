package sortengine

// AddSortColumn inserts field at priority 0 (highest precedence),
// shifting every existing column's priority down by one. If field is
// already present its existing entry is removed first, so a repeated
// click on the same header re-promotes it rather than duplicating it.
func (m *SortModel) AddSortColumn(field string, dir Direction) {
	m.RemoveSortColumn(field)

	for i := range m.Columns {
		m.Columns[i].Priority++
	}

	col := SortColumn{Field: field, Direction: dir, Priority: 0}
	col.compilePath()

	m.Columns = append([]SortColumn{col}, m.Columns...)
}

// RemoveSortColumn drops field from the model, if present, and
// closes the resulting priority gap.
func (m *SortModel) RemoveSortColumn(field string) {
	idx := m.indexOf(field)
	if idx < 0 {
		return
	}

	removedPriority := m.Columns[idx].Priority
	m.Columns = append(m.Columns[:idx], m.Columns[idx+1:]...)

	for i := range m.Columns {
		if m.Columns[i].Priority > removedPriority {
			m.Columns[i].Priority--
		}
	}
}

// ToggleSortColumn cycles field through none -> Ascending -> Descending
// -> none, promoting it to priority 0 whenever it becomes active.
func (m *SortModel) ToggleSortColumn(field string) {
	idx := m.indexOf(field)
	if idx < 0 {
		m.AddSortColumn(field, Ascending)
		return
	}

	switch m.Columns[idx].Direction {
	case Ascending:
		m.Columns[idx].Direction = Descending
	case Descending:
		m.RemoveSortColumn(field)
	}
}

// GetSortDirection reports field's current direction, if it is active.
func (m SortModel) GetSortDirection(field string) (dir Direction, ok bool) {
	idx := m.indexOf(field)
	if idx < 0 {
		return Ascending, false
	}

	return m.Columns[idx].Direction, true
}

// GetSortPriority reports field's current priority (0 = highest
// precedence), if it is active.
func (m SortModel) GetSortPriority(field string) (priority int, ok bool) {
	idx := m.indexOf(field)
	if idx < 0 {
		return 0, false
	}

	return m.Columns[idx].Priority, true
}

func (m SortModel) indexOf(field string) int {
	for i := range m.Columns {
		if m.Columns[i].Field == field {
			return i
		}
	}

	return -1
}
