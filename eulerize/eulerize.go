package eulerize

import (
	"fmt"

	"roadsweep/component"
	"roadsweep/graph"
)

// Augment makes comp Eulerian by incrementing Copies on a minimum-length set
// of its edges, and reports what was added.
//
// Stages:
//  1. collect odd-degree nodes (degree counts current multiplicity);
//  2. run Dijkstra from every odd node over the component-local adjacency;
//  3. pair the odd nodes with a minimum-weight perfect matching on the
//     shortest-path distances (exact DP up to Options.ExactMatchLimit,
//     greedy beyond);
//  4. duplicate every edge on each matched pair's shortest path.
//
// Augment mutates only the Copies counters of comp's edges. Components are
// edge-disjoint, so concurrent augmentation of different components is safe.
//
// A component with no odd nodes returns a zero Result untouched: an Eulerian
// circuit already exists.
//
// Complexity: O(k·(V+E) log V) for the Dijkstra sweep plus the matching cost,
// where k = |odd nodes| of the component.
func Augment(comp *component.Component, opts Options) (Result, error) {
	adj := localAdjacency(comp)

	odd := oddNodes(comp, adj)
	res := Result{OddNodes: len(odd)}
	if len(odd) == 0 {
		return res, nil
	}
	if len(odd)%2 != 0 {
		// A connected undirected graph always has an even number of
		// odd-degree nodes (handshake lemma). Seeing this means the
		// component partition itself is broken.
		return res, fmt.Errorf("%w: component %d has %d odd-degree nodes",
			ErrOddParity, comp.Index, len(odd))
	}

	// Shortest paths from every odd node, reused by the matching and by the
	// duplication walk.
	dist := make([]map[string]float64, len(odd))
	via := make([]map[string]*graph.Edge, len(odd))
	for i, n := range odd {
		dist[i], via[i] = shortestPaths(adj, n)
	}

	cost := func(i, j int) float64 {
		if d, ok := dist[i][odd[j]]; ok {
			return d
		}
		return inf
	}

	var pairs [][2]int
	if len(odd) <= opts.ExactMatchLimit {
		pairs = exactMatch(len(odd), cost)
		res.Exact = true
	} else {
		pairs = greedyMatch(len(odd), cost)
	}
	if pairs == nil {
		return res, fmt.Errorf("%w: component %d: no connecting path between matched odd nodes",
			ErrOddParity, comp.Index)
	}

	for _, p := range pairs {
		path := walkBack(via[p[0]], odd[p[0]], odd[p[1]])
		if path == nil {
			return res, fmt.Errorf("%w: component %d: %s and %s matched but disconnected",
				ErrOddParity, comp.Index, odd[p[0]], odd[p[1]])
		}
		for _, e := range path {
			e.Copies++
			res.DuplicatedEdges++
			res.AddedLength += e.Length
		}
	}

	return res, nil
}

// localAdjacency builds the component-restricted adjacency. comp.Edges is
// already deterministically ordered, so the lists inherit that order.
func localAdjacency(comp *component.Component) map[string][]*graph.Edge {
	adj := make(map[string][]*graph.Edge, len(comp.Nodes))
	for _, e := range comp.Edges {
		adj[e.P1] = append(adj[e.P1], e)
		if !e.IsLoop() {
			adj[e.P2] = append(adj[e.P2], e)
		}
	}
	return adj
}

// oddNodes returns the component's odd-degree nodes in ascending ID order.
// Loops count twice per copy and therefore never flip parity.
func oddNodes(comp *component.Component, adj map[string][]*graph.Edge) []string {
	var odd []string
	for _, n := range comp.Nodes { // sorted; output inherits the order
		var d int
		for _, e := range adj[n] {
			if e.IsLoop() {
				d += 2 * e.Copies
			} else {
				d += e.Copies
			}
		}
		if d%2 == 1 {
			odd = append(odd, n)
		}
	}
	return odd
}
