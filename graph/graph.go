package graph

import (
	"fmt"
	"math"
	"sort"
)

// Graph is the in-memory road network: an undirected weighted multigraph.
//
// nodes holds all node IDs in sorted order; adjacency maps a node to its
// incident edges, sorted by (opposite endpoint, discriminator). A self-loop
// appears once in its node's adjacency list but contributes two to degree.
type Graph struct {
	nodes     []string
	nodeIndex map[string]struct{}
	adjacency map[string][]*Edge
	edges     []*Edge
}

// Build constructs and validates a Graph from declared nodes and roads.
//
// Validation (fail-fast, in order per element):
//  1. every node ID is non-empty and unique,
//  2. every road endpoint is a declared node,
//  3. every road length is positive and finite.
//
// Complexity: O(V log V + E log E) due to deterministic sorting.
func Build(nodeIDs []string, roads []Road) (*Graph, error) {
	g := &Graph{
		nodeIndex: make(map[string]struct{}, len(nodeIDs)),
		adjacency: make(map[string][]*Edge, len(nodeIDs)),
	}

	for _, id := range nodeIDs {
		if id == "" {
			return nil, ErrEmptyNodeID
		}
		if _, dup := g.nodeIndex[id]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateNode, id)
		}
		g.nodeIndex[id] = struct{}{}
		g.nodes = append(g.nodes, id)
	}
	sort.Strings(g.nodes)

	g.edges = make([]*Edge, 0, len(roads))
	for _, r := range roads {
		if _, ok := g.nodeIndex[r.P1]; !ok {
			return nil, fmt.Errorf("%w: %q (road %s-%s)", ErrUnknownNode, r.P1, r.P1, r.P2)
		}
		if _, ok := g.nodeIndex[r.P2]; !ok {
			return nil, fmt.Errorf("%w: %q (road %s-%s)", ErrUnknownNode, r.P2, r.P1, r.P2)
		}
		if r.Length <= 0 || math.IsNaN(r.Length) || math.IsInf(r.Length, 0) {
			return nil, fmt.Errorf("%w: road %s-%s length=%v", ErrBadLength, r.P1, r.P2, r.Length)
		}
		p1, p2 := r.P1, r.P2
		if p2 < p1 {
			p1, p2 = p2, p1
		}
		e := &Edge{P1: p1, P2: p2, Discriminator: r.Discriminator, Length: r.Length, Copies: 1}
		g.edges = append(g.edges, e)
		g.adjacency[e.P1] = append(g.adjacency[e.P1], e)
		if !e.IsLoop() {
			g.adjacency[e.P2] = append(g.adjacency[e.P2], e)
		}
	}

	// Deterministic edge and adjacency ordering.
	sort.Slice(g.edges, func(i, j int) bool { return edgeLess(g.edges[i], g.edges[j]) })
	for n, es := range g.adjacency {
		sort.Slice(es, func(i, j int) bool {
			oi, oj := es[i].Other(n), es[j].Other(n)
			if oi != oj {
				return oi < oj
			}
			if es[i].Discriminator != es[j].Discriminator {
				return es[i].Discriminator < es[j].Discriminator
			}
			return es[i].Length < es[j].Length
		})
	}

	return g, nil
}

func edgeLess(a, b *Edge) bool {
	if a.P1 != b.P1 {
		return a.P1 < b.P1
	}
	if a.P2 != b.P2 {
		return a.P2 < b.P2
	}
	if a.Discriminator != b.Discriminator {
		return a.Discriminator < b.Discriminator
	}
	return a.Length < b.Length
}

// HasNode reports whether id was declared at Build time.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodeIndex[id]
	return ok
}

// Nodes returns all node IDs in ascending order. The returned slice is shared;
// callers must not mutate it.
func (g *Graph) Nodes() []string { return g.nodes }

// Edges returns all edges in deterministic order. Parallel roads appear as
// distinct edges; multiplicity is carried by Edge.Copies, not by repetition.
func (g *Graph) Edges() []*Edge { return g.edges }

// Neighbors returns the edges incident to n, sorted by opposite endpoint.
// A self-loop appears once. An unknown or isolated node yields nil.
func (g *Graph) Neighbors(n string) []*Edge { return g.adjacency[n] }

// Degree returns the multigraph degree of n, counting each edge Copies times
// and a self-loop twice per copy.
//
// Complexity: O(deg(n)).
func (g *Graph) Degree(n string) int {
	var d int
	for _, e := range g.adjacency[n] {
		if e.IsLoop() {
			d += 2 * e.Copies
		} else {
			d += e.Copies
		}
	}
	return d
}

// TotalLength returns the summed length of all original edges, ignoring
// multiplicity. This is the distance a full-coverage plan must traverse at
// minimum.
func (g *Graph) TotalLength() float64 {
	var total float64
	for _, e := range g.edges {
		total += e.Length
	}
	return total
}

// NodeCount and EdgeCount report the graph size.
func (g *Graph) NodeCount() int { return len(g.nodes) }

func (g *Graph) EdgeCount() int { return len(g.edges) }
