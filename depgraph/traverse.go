package depgraph

import (
	"context"
	"sort"
)

// TraverseOption configures HasCycle/TopologicalOrder.
type TraverseOption func(*traverseOptions)

type traverseOptions struct {
	ctx context.Context
}

// WithContext makes a long traversal over a very large hierarchy
// cancellable. A nil context is ignored.
func WithContext(ctx context.Context) TraverseOption {
	return func(o *traverseOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

func defaultTraverseOptions() traverseOptions {
	return traverseOptions{ctx: context.Background()}
}

// HasCycle reports whether the graph currently contains a directed
// cycle, via a white/grey/black depth-first search. O(V+E).
func (g *Graph) HasCycle(opts ...TraverseOption) bool {
	_, ok := g.TopologicalOrder(opts...)

	return !ok
}

// TopologicalOrder returns a dependency-first ordering of every node
// (for edge from->to, 'from' appears after 'to' is no longer required —
// concretely: 'to' is emitted before 'from', since 'from' depends on
// 'to'). ok is false if a cycle makes no such ordering possible, in
// which case order is nil.
//
// Deterministic: nodes are visited in sorted order so that, for any
// fixed graph, repeated calls return the same ordering.
func (g *Graph) TopologicalOrder(opts ...TraverseOption) (order []string, ok bool) {
	options := defaultTraverseOptions()
	for _, opt := range opts {
		opt(&options)
	}

	g.mu.RLock()
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	outCopy := make(map[string][]string, len(g.out))
	for from, tos := range g.out {
		outCopy[from] = append([]string(nil), tos...)
	}
	g.mu.RUnlock()

	sort.Strings(ids)

	state := make(map[string]color, len(ids))
	result := make([]string, 0, len(ids))

	var visit func(id string) bool
	visit = func(id string) bool {
		select {
		case <-options.ctx.Done():
			return false
		default:
		}

		switch state[id] {
		case black:
			return true
		case grey:
			return false // back-edge: cycle
		}

		state[id] = grey
		neighbors := append([]string(nil), outCopy[id]...)
		sort.Strings(neighbors)
		for _, to := range neighbors {
			if !visit(to) {
				return false
			}
		}
		state[id] = black
		result = append(result, id)

		return true
	}

	for _, id := range ids {
		if state[id] == white {
			if !visit(id) {
				return nil, false
			}
		}
	}

	return result, true
}

// Depth returns the number of edges from id to its nearest root (a node
// with no outgoing edges, i.e. no dependencies) by walking Dependencies
// greedily. Used by group to enforce maxDepth; ok is false if id is
// absent from the graph.
func (g *Graph) Depth(id string) (depth int, ok bool) {
	if !g.HasNode(id) {
		return 0, false
	}

	seen := make(map[string]bool)
	cur := id
	for {
		deps := g.Dependencies(cur)
		if len(deps) == 0 {
			return depth, true
		}
		if seen[cur] {
			// Should not happen in a cycle-free graph; guard against
			// infinite loop if called on a graph mid-validation.
			return depth, true
		}
		seen[cur] = true
		cur = deps[0]
		depth++
	}
}
