// Package split extracts per-vehicle routes from an augmented component.
//
// It first constructs a single closed walk using every edge copy exactly once
// (Hierholzer's algorithm over the multigraph), then rotates the circuit to
// the first vehicle's start node and cuts it into one sub-path per vehicle,
// balancing sub-path lengths greedily against the component total divided by
// the vehicle count.
//
// Cut policy (deterministic): vehicle i+1's cut is placed at the occurrence
// of its start node whose cumulative circuit length is nearest to the target
// threshold (i+1)·L/N, considering only occurrences after the previous cut;
// ties resolve to the earlier occurrence. A vehicle whose start node has no
// remaining eligible occurrence receives an empty path — this covers the case
// of more co-located vehicles than the start node has circuit visits (a node
// of augmented degree d is visited d/2 times).
package split

import (
	"errors"

	"roadsweep/graph"
)

// ErrNotEulerian indicates the component could not be traversed as a single
// closed circuit. Augmentation guarantees even degrees and the component is
// connected by construction, so this is a defensive invariant failure.
var ErrNotEulerian = errors.New("split: component is not Eulerian")

// Step is one directed traversal of an edge copy: the walk enters at From and
// leaves at Edge.Other(From).
type Step struct {
	Edge *graph.Edge
	From string
}

// To returns the endpoint the step arrives at.
func (s Step) To() string { return s.Edge.Other(s.From) }

// Length returns the distance covered by the steps of a walk.
func Length(walk []Step) float64 {
	var total float64
	for _, s := range walk {
		total += s.Edge.Length
	}
	return total
}
