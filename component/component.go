package component

import (
	"sort"

	"roadsweep/graph"
)

// Find returns the connected components of g via breadth-first flood fill.
//
// Components are indexed in order of their smallest node ID, so the result is
// identical across runs on identical input. Isolated nodes form singleton
// components with no edges.
//
// Time:   O(V + E).
// Memory: O(V) for the seen set plus the output.
func Find(g *graph.Graph) []Component {
	seen := make(map[string]bool, g.NodeCount())
	var comps []Component

	for _, root := range g.Nodes() {
		if seen[root] {
			continue
		}
		seen[root] = true
		queue := []string{root}
		var nodes []string

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			nodes = append(nodes, u)
			for _, e := range g.Neighbors(u) {
				v := e.Other(u)
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		sort.Strings(nodes)
		comps = append(comps, Component{Index: len(comps), Nodes: nodes})
	}

	// Attach induced edges in one deterministic pass over g.Edges().
	owner := make(map[string]int, g.NodeCount())
	for ci := range comps {
		for _, n := range comps[ci].Nodes {
			owner[n] = ci
		}
	}
	for _, e := range g.Edges() {
		ci := owner[e.P1] // both endpoints share a component by construction
		comps[ci].Edges = append(comps[ci].Edges, e)
		comps[ci].Length += e.Length
	}

	return comps
}

// Assign maps each vehicle (by index in starts) to the component holding its
// start node. Vehicles whose start is not a graph node are returned in
// unknown, in input order, and take no further part in planning.
//
// byComp preserves vehicle input order within each component, which fixes the
// order in which the splitter anchors sub-paths.
func Assign(g *graph.Graph, starts []string, comps []Component) (byComp map[int][]int, unknown []int) {
	owner := make(map[string]int, g.NodeCount())
	for ci := range comps {
		for _, n := range comps[ci].Nodes {
			owner[n] = ci
		}
	}

	byComp = make(map[int][]int)
	for vi, s := range starts {
		if !g.HasNode(s) {
			unknown = append(unknown, vi)
			continue
		}
		ci := owner[s]
		byComp[ci] = append(byComp[ci], vi)
	}

	return byComp, unknown
}

// UnreachableEdges returns the edges of every component that received no
// vehicle, in deterministic order. These segments cannot be covered from any
// configured start point; they are reported, never solved for.
func UnreachableEdges(comps []Component, byComp map[int][]int) []*graph.Edge {
	var out []*graph.Edge
	for ci := range comps {
		if len(byComp[ci]) > 0 {
			continue
		}
		out = append(out, comps[ci].Edges...)
	}
	return out
}
