// Package graph defines the road-network model used by the planner:
// an undirected, weighted multigraph with per-edge traversal multiplicity.
//
// The model is deliberately small. A Graph is built once from raw input,
// validated eagerly, and treated as read-only afterwards with one exception:
// the Copies counter on an Edge, which augmentation increments to mean
// "traverse this segment again". Topology never changes after Build.
//
// Determinism: node and adjacency orderings are sorted at construction time,
// so every traversal over the same input visits elements in the same order.
//
// Errors (sentinel):
//
//	– ErrEmptyNodeID   if a node has an empty identifier.
//	– ErrDuplicateNode if two nodes share an identifier.
//	– ErrUnknownNode   if a road references a node that was not declared.
//	– ErrBadLength     if a road length is zero, negative, NaN or infinite.
//
// All four indicate malformed input and abort the run before any computation.
package graph

import "errors"

// Sentinel errors for graph construction.
var (
	// ErrEmptyNodeID indicates a node with an empty identifier.
	ErrEmptyNodeID = errors.New("graph: node ID is empty")

	// ErrDuplicateNode indicates two declared nodes share one identifier.
	ErrDuplicateNode = errors.New("graph: duplicate node ID")

	// ErrUnknownNode indicates a road endpoint that is not a declared node.
	ErrUnknownNode = errors.New("graph: road references unknown node")

	// ErrBadLength indicates a road length that is not a positive finite number.
	ErrBadLength = errors.New("graph: road length must be positive and finite")
)

// Road is the raw description of one road segment, as loaded from input.
// Discriminator distinguishes parallel roads between the same two nodes;
// it is empty for the common single-road case.
type Road struct {
	P1, P2        string
	Discriminator string
	Length        float64
}

// Edge is one road segment inside a built Graph.
//
// Endpoints are normalized so that P1 ≤ P2; the edge is undirected.
// Copies starts at 1 and is incremented by augmentation only. An Edge with
// Copies == c must be traversed exactly c times by the final plan.
type Edge struct {
	P1, P2        string
	Discriminator string
	Length        float64
	Copies        int
}

// Other returns the endpoint opposite to n. For a self-loop both endpoints
// are equal and Other returns n itself.
func (e *Edge) Other(n string) string {
	if n == e.P1 {
		return e.P2
	}
	return e.P1
}

// IsLoop reports whether the edge connects a node to itself.
func (e *Edge) IsLoop() bool { return e.P1 == e.P2 }
