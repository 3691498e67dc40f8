package depgraph

// AddNode inserts id with no edges. Returns ErrEmptyNodeID or
// ErrNodeExists on invalid input; the graph is left unchanged on error.
func (g *Graph) AddNode(id string) error {
	if id == "" {
		return ErrEmptyNodeID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.nodes[id]; exists {
		return ErrNodeExists
	}
	g.nodes[id] = struct{}{}

	return nil
}

// HasNode reports whether id is present.
func (g *Graph) HasNode(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.nodes[id]

	return ok
}

// AddEdge records that from depends on to. Both nodes must already
// exist. Parallel edges between the same pair are permitted (multigraph).
func (g *Graph) AddEdge(from, to string) error {
	if from == "" || to == "" {
		return ErrEmptyNodeID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[from]; !ok {
		return ErrNodeNotFound
	}
	if _, ok := g.nodes[to]; !ok {
		return ErrNodeNotFound
	}

	g.out[from] = append(g.out[from], to)
	g.in[to] = append(g.in[to], from)

	return nil
}

// RemoveEdge removes one instance of the from->to edge, if any. No-op
// (returns ErrEdgeNotFound) when no such edge exists.
func (g *Graph) RemoveEdge(from, to string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	outs := g.out[from]
	idx := indexOf(outs, to)
	if idx < 0 {
		return ErrEdgeNotFound
	}
	g.out[from] = removeAt(outs, idx)

	ins := g.in[to]
	if j := indexOf(ins, from); j >= 0 {
		g.in[to] = removeAt(ins, j)
	}

	return nil
}

// RemoveNode deletes id and every edge touching it. No-op (returns
// ErrNodeNotFound) when id is absent.
func (g *Graph) RemoveNode(id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[id]; !ok {
		return ErrNodeNotFound
	}

	for _, to := range g.out[id] {
		if j := indexOf(g.in[to], id); j >= 0 {
			g.in[to] = removeAt(g.in[to], j)
		}
	}
	for _, from := range g.in[id] {
		if j := indexOf(g.out[from], id); j >= 0 {
			g.out[from] = removeAt(g.out[from], j)
		}
	}

	delete(g.out, id)
	delete(g.in, id)
	delete(g.nodes, id)

	return nil
}

// Dependencies returns the nodes id points to (id "depends on" them), in
// insertion order. Returns nil if id is absent or has no outgoing edges.
func (g *Graph) Dependencies(id string) []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return append([]string(nil), g.out[id]...)
}

// Dependents returns the nodes that point to id, in insertion order.
func (g *Graph) Dependents(id string) []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return append([]string(nil), g.in[id]...)
}

// NodeCount returns the number of nodes currently in the graph.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// Clone returns a deep, independent copy of g. Mutating the returned
// graph never affects g. Used to validate a prospective mutation (e.g.
// a group re-parent) before committing it to the live graph.
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := New()
	for id := range g.nodes {
		clone.nodes[id] = struct{}{}
	}
	for from, tos := range g.out {
		clone.out[from] = append([]string(nil), tos...)
	}
	for to, froms := range g.in {
		clone.in[to] = append([]string(nil), froms...)
	}

	return clone
}

func indexOf(s []string, v string) int {
	for i, e := range s {
		if e == v {
			return i
		}
	}

	return -1
}

func removeAt(s []string, i int) []string {
	return append(s[:i], s[i+1:]...)
}
