// Package component partitions a road graph into connected components and
// assigns vehicles to them by start node.
//
// A Component is a maximal set of mutually reachable nodes together with its
// induced edges. Components are computed once per run and immutable after.
// Assignment is non-fatal: a vehicle whose start node is absent from the
// graph is excluded and reported, the rest of the run proceeds.
package component

import (
	"errors"

	"roadsweep/graph"
)

// ErrUnknownStart indicates a vehicle start node that does not exist in the
// graph. It is reported per vehicle and never aborts the run.
var ErrUnknownStart = errors.New("component: vehicle start node not in graph")

// Component is one connected component of the road graph.
//
// Nodes is sorted ascending; Edges holds the induced edges (both endpoints
// inside the component) in the graph's deterministic order. Length is the
// summed length of the induced edges ignoring multiplicity.
type Component struct {
	Index  int
	Nodes  []string
	Edges  []*graph.Edge
	Length float64
}

// Contains reports whether node id belongs to the component.
// Complexity: O(log |Nodes|).
func (c *Component) Contains(id string) bool {
	lo, hi := 0, len(c.Nodes)
	for lo < hi {
		mid := (lo + hi) / 2
		if c.Nodes[mid] < id {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo < len(c.Nodes) && c.Nodes[lo] == id
}
