package split

import (
	"fmt"

	"roadsweep/component"
	"roadsweep/graph"
)

// slot is one traversable instance of an edge copy. Both endpoints reference
// the same slot, so marking it used removes it from either direction.
type slot struct {
	edge *graph.Edge
	used bool
}

// Circuit builds a closed walk over comp that uses every edge copy exactly
// once, starting and ending at the component's smallest node ID.
//
// Hierholzer's algorithm, iterative form: follow unused edges greedily,
// pushing the walk on a stack; when a node runs out of unused edges, pop it
// onto the output. The reversed output is the circuit. Adjacency lists are in
// the component's deterministic edge order, so the circuit is reproducible.
//
// An empty component (no edges) yields a nil circuit and no error.
//
// Complexity: O(E) over edge copies.
func Circuit(comp *component.Component) ([]Step, error) {
	var instances int
	adj := make(map[string][]*slot, len(comp.Nodes))
	for _, e := range comp.Edges {
		for c := 0; c < e.Copies; c++ {
			s := &slot{edge: e}
			instances++
			adj[e.P1] = append(adj[e.P1], s)
			if !e.IsLoop() {
				adj[e.P2] = append(adj[e.P2], s)
			}
		}
	}
	if instances == 0 {
		return nil, nil
	}

	// cursor skips already-used slots so each list is scanned once overall.
	cursor := make(map[string]int, len(adj))
	nextSlot := func(n string) *slot {
		for cursor[n] < len(adj[n]) {
			if s := adj[n][cursor[n]]; !s.used {
				return s
			}
			cursor[n]++
		}
		return nil
	}

	start := comp.Nodes[0]
	type frame struct {
		node string
		via  Step // step that led here; zero-valued for the root frame
	}
	stack := []frame{{node: start}}
	rev := make([]Step, 0, instances)

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if s := nextSlot(top.node); s != nil {
			s.used = true
			step := Step{Edge: s.edge, From: top.node}
			stack = append(stack, frame{node: step.To(), via: step})
		} else {
			if top.via.Edge != nil {
				rev = append(rev, top.via)
			}
			stack = stack[:len(stack)-1]
		}
	}

	if len(rev) != instances {
		return nil, fmt.Errorf("%w: component %d: %d of %d edge copies traversed",
			ErrNotEulerian, comp.Index, len(rev), instances)
	}

	// Reverse into forward order.
	circuit := make([]Step, instances)
	for i, s := range rev {
		circuit[instances-1-i] = s
	}
	if circuit[0].From != start || circuit[instances-1].To() != start {
		return nil, fmt.Errorf("%w: component %d: walk is not closed at %s",
			ErrNotEulerian, comp.Index, start)
	}

	return circuit, nil
}
