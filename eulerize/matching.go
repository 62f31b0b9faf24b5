package eulerize

// Minimum-weight perfect matching over the odd-degree node set, expressed on
// index pairs into the sorted odd slice. cost(i, j) is the shortest-path
// distance between odd[i] and odd[j]; k is always even here.

// exactMatch computes an optimal perfect matching by dynamic programming over
// subsets. best[mask] is the cheapest matching of the still-unmatched indices
// in mask; the lowest set bit of mask is always paired first, which both
// halves the state space and fixes a canonical reconstruction order, because
// reconstruction removes the same (lowest set bit, choice[mask]) pair the
// recurrence committed to.
//
// Complexity: O(2^k · k) time, O(2^k) memory. Bounded by ExactMatchLimit.
func exactMatch(k int, cost func(i, j int) float64) [][2]int {
	full := (1 << k) - 1
	best := make([]float64, full+1)
	choice := make([]int, full+1) // partner chosen for the lowest set bit
	for mask := 1; mask <= full; mask++ {
		best[mask] = inf
		choice[mask] = -1
	}
	best[0] = 0

	for mask := 1; mask <= full; mask++ {
		// Pair the lowest remaining index with every other remaining index.
		i := 0
		for ; i < k; i++ {
			if mask&(1<<i) != 0 {
				break
			}
		}
		rest := mask &^ (1 << i)
		for j := i + 1; j < k; j++ {
			if rest&(1<<j) == 0 {
				continue
			}
			if c := cost(i, j) + best[rest&^(1<<j)]; c < best[mask] {
				best[mask] = c
				choice[mask] = j
			}
		}
	}

	if best[full] == inf {
		return nil // some pair is unreachable; caller raises ErrOddParity
	}

	// Reconstruct pairs by unwinding from the full mask.
	pairs := make([][2]int, 0, k/2)
	for mask := full; mask != 0; {
		i := 0
		for ; i < k; i++ {
			if mask&(1<<i) != 0 {
				break
			}
		}
		j := choice[mask]
		pairs = append(pairs, [2]int{i, j})
		mask &^= 1<<i | 1<<j
	}
	return pairs
}

// greedyMatch repeatedly pairs the first remaining node with its nearest
// remaining partner. Not optimal, but deterministic: the odd slice arrives
// sorted and ties resolve to the lowest index.
//
// Complexity: O(k²).
func greedyMatch(k int, cost func(i, j int) float64) [][2]int {
	remaining := make([]int, k)
	for i := range remaining {
		remaining[i] = i
	}

	pairs := make([][2]int, 0, k/2)
	for len(remaining) > 1 {
		u := remaining[0]
		remaining = remaining[1:]
		bestIdx, bestD := -1, inf
		for i, v := range remaining {
			if d := cost(u, v); d < bestD {
				bestD, bestIdx = d, i
			}
		}
		if bestIdx < 0 {
			return nil // all partners unreachable; caller raises ErrOddParity
		}
		v := remaining[bestIdx]
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
		pairs = append(pairs, [2]int{u, v})
	}
	return pairs
}
