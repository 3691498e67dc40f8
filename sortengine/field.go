package sortengine

import "github.com/vgrid-io/vgrid/datamodel"

// resolveField walks path through rec, returning Null if any
// intermediate segment is absent or not itself a nested record; an
// unresolvable path reads as a null cell and sorts accordingly.
func resolveField(rec Record, path []string) datamodel.Value {
	var cur any = rec
	for _, seg := range path {
		m, ok := asRecord(cur)
		if !ok {
			return datamodel.Null
		}
		next, ok := m[seg]
		if !ok {
			return datamodel.Null
		}
		cur = next
	}

	if v, ok := cur.(datamodel.Value); ok {
		return v
	}

	return datamodel.Null
}

func asRecord(v any) (Record, bool) {
	switch m := v.(type) {
	case Record:
		return m, true
	case map[string]any:
		return Record(m), true
	default:
		return nil, false
	}
}
