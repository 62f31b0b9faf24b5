package eulerize

import (
	"container/heap"
	"math"

	"roadsweep/graph"
)

// shortestPaths runs Dijkstra from source over the component-local adjacency,
// returning the distance map and, for path reconstruction, the edge by which
// each node was first finalized.
//
// The heap uses the lazy-decrease-key pattern: improved distances push a new
// entry and stale entries are skipped on pop. Ties between equal distances
// are broken toward the lexicographically smaller node so that reconstruction
// is deterministic.
//
// Complexity: O((V + E) log V) per source.
func shortestPaths(adj map[string][]*graph.Edge, source string) (dist map[string]float64, via map[string]*graph.Edge) {
	dist = make(map[string]float64, len(adj))
	via = make(map[string]*graph.Edge, len(adj))
	visited := make(map[string]bool, len(adj))

	pq := &distHeap{{node: source, dist: 0}}
	heap.Init(pq)
	dist[source] = 0

	for pq.Len() > 0 {
		item := heap.Pop(pq).(distItem)
		u := item.node
		if visited[u] {
			continue // stale entry
		}
		visited[u] = true

		for _, e := range adj[u] {
			if e.IsLoop() {
				continue // a loop never shortens a path between distinct nodes
			}
			v := e.Other(u)
			nd := dist[u] + e.Length
			cur, ok := dist[v]
			if !ok || nd < cur || (nd == cur && betterVia(e, via[v], v)) {
				dist[v] = nd
				via[v] = e
				heap.Push(pq, distItem{node: v, dist: nd})
			}
		}
	}

	return dist, via
}

// betterVia orders equal-cost predecessor edges deterministically: prefer the
// edge whose far endpoint, then discriminator, sorts first.
func betterVia(cand, cur *graph.Edge, at string) bool {
	if cur == nil {
		return true
	}
	co, uo := cand.Other(at), cur.Other(at)
	if co != uo {
		return co < uo
	}
	return cand.Discriminator < cur.Discriminator
}

// walkBack reconstructs the source→target path from the via map, returning
// the edges in target→source order (order is irrelevant for duplication).
func walkBack(via map[string]*graph.Edge, source, target string) []*graph.Edge {
	var path []*graph.Edge
	for at := target; at != source; {
		e := via[at]
		if e == nil {
			return nil // unreachable; caller treats as invariant violation
		}
		path = append(path, e)
		at = e.Other(at)
	}
	return path
}

// distItem is one (node, tentative distance) heap entry.
type distItem struct {
	node string
	dist float64
}

// distHeap is a min-heap of distItem ordered by distance, then node ID for
// deterministic pops among equal distances.
type distHeap []distItem

func (h distHeap) Len() int { return len(h) }

func (h distHeap) Less(i, j int) bool {
	if h[i].dist != h[j].dist {
		return h[i].dist < h[j].dist
	}
	return h[i].node < h[j].node
}

func (h distHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *distHeap) Push(x interface{}) { *h = append(*h, x.(distItem)) }

func (h *distHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

var inf = math.Inf(1)
