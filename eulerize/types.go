// Package eulerize makes a connected component Eulerian by duplicating a
// minimum-length set of its edges.
//
// A closed walk that uses every edge at least once exists iff every node has
// even degree. Augment finds the odd-degree nodes, computes shortest-path
// distances between them inside the component, pairs them with a
// minimum-weight perfect matching, and increments the multiplicity of every
// edge along each matched pair's shortest path. The total added length equals
// the matching weight.
//
// Matching strategy:
//
//   - |odd| ≤ Options.ExactMatchLimit: exact dynamic program over subsets,
//     O(2^k·k) time — optimal pairing.
//   - above the limit: deterministic greedy nearest-neighbor pairing,
//     O(k²) — not optimal, but reproducible and close in practice.
//
// All tie-breaks are lexicographic on node IDs, so the augmentation is
// byte-for-byte reproducible on identical input.
//
// Errors (sentinel):
//
//	– ErrOddParity signals an internal invariant violation: an odd count of
//	  odd-degree nodes, or a matched pair with no connecting path inside one
//	  component. Neither can occur for a connected undirected graph; if seen,
//	  the run aborts with diagnostic detail rather than emitting bad routes.
package eulerize

import "errors"

// ErrOddParity indicates the component violated the even-pairing invariant.
// This is a defensive failure, not a user-facing input error.
var ErrOddParity = errors.New("eulerize: odd-degree nodes cannot be paired")

// DefaultExactMatchLimit bounds the odd-node count for which the exact
// subset-DP matching runs. 16 odd nodes cost 2^16 DP states.
const DefaultExactMatchLimit = 16

// Options tunes the augmentation.
type Options struct {
	// ExactMatchLimit is the largest odd-node count solved with the exact
	// matching DP; larger sets fall back to greedy pairing. Values < 2
	// force the greedy path everywhere.
	ExactMatchLimit int
}

// DefaultOptions returns the production defaults.
func DefaultOptions() Options {
	return Options{ExactMatchLimit: DefaultExactMatchLimit}
}

// Result summarizes one component's augmentation for reporting and metrics.
type Result struct {
	// OddNodes is how many odd-degree nodes the component had before pairing.
	OddNodes int
	// AddedLength is the total length of duplicated traversals (the matching
	// weight).
	AddedLength float64
	// DuplicatedEdges counts Copies increments across all edges.
	DuplicatedEdges int
	// Exact records whether the exact matching DP ran (false: greedy).
	Exact bool
}
