package split

import "math"

// Paths cuts a closed circuit into one sub-path per vehicle, anchored at each
// vehicle's start node and balanced against the even share L/N.
//
// starts holds the start node of every vehicle assigned to the component, in
// vehicle input order; all of them are component nodes. The returned slice is
// parallel to starts; skipped lists the indices (into starts) of vehicles
// that received an empty path because their start node had no eligible
// circuit occurrence left.
//
// The union of the returned walks, counting multiplicity, is exactly the
// circuit: cuts partition the rotated circuit, and a skipped vehicle simply
// means one fewer cut, its share folding into the preceding walk.
//
// An empty circuit with vehicles present is the capacity-zero case: every
// start node has zero circuit occurrences, so every vehicle is skipped.
//
// Complexity: O(E + N·E) worst case; the occurrence scan per vehicle is
// linear in the circuit length.
func Paths(circuit []Step, starts []string) (walks [][]Step, skipped []int) {
	walks = make([][]Step, len(starts))
	if len(starts) == 0 {
		return walks, nil
	}
	if len(circuit) == 0 {
		skipped = make([]int, len(starts))
		for i := range skipped {
			skipped[i] = i
		}
		return walks, skipped
	}

	// Rotate so the circuit begins at the first occurrence of vehicle 0's
	// start node. The circuit visits every component node, so one exists.
	rot := rotate(circuit, firstOccurrence(circuit, starts[0]))
	m := len(rot)

	// cum[k] is the length of rot[:k]; cum[m] == L.
	cum := make([]float64, m+1)
	for i, s := range rot {
		cum[i+1] = cum[i] + s.Edge.Length
	}
	total := cum[m]
	share := total / float64(len(starts))

	// Greedy balanced cuts. boundary[i] is the rotated-circuit index where
	// vehicle i's walk begins; -1 marks a skipped vehicle.
	boundary := make([]int, len(starts))
	boundary[0] = 0
	prev := 0
	for i := 1; i < len(starts); i++ {
		target := float64(i) * share
		best, bestDiff := -1, math.Inf(1)
		for k := prev + 1; k < m; k++ {
			if rot[k].From != starts[i] {
				continue
			}
			diff := math.Abs(cum[k] - target)
			if diff < bestDiff { // strict: ties keep the earlier occurrence
				best, bestDiff = k, diff
			}
		}
		boundary[i] = best
		if best < 0 {
			skipped = append(skipped, i)
			continue
		}
		prev = best
	}

	// Slice the rotated circuit between consecutive assigned boundaries.
	for i := range starts {
		if boundary[i] < 0 {
			continue
		}
		end := m
		for j := i + 1; j < len(starts); j++ {
			if boundary[j] >= 0 {
				end = boundary[j]
				break
			}
		}
		walks[i] = rot[boundary[i]:end]
	}

	return walks, skipped
}

// firstOccurrence returns the first circuit index whose step departs from n.
func firstOccurrence(circuit []Step, n string) int {
	for i, s := range circuit {
		if s.From == n {
			return i
		}
	}
	return 0
}

// rotate returns the circuit re-rooted at index i without mutating the input.
func rotate(circuit []Step, i int) []Step {
	if i == 0 {
		return circuit
	}
	out := make([]Step, 0, len(circuit))
	out = append(out, circuit[i:]...)
	return append(out, circuit[:i]...)
}
