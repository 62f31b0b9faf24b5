package eulerize

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// costMatrix adapts a literal [][]float64 to the cost callback.
func costMatrix(m [][]float64) func(i, j int) float64 {
	return func(i, j int) float64 { return m[i][j] }
}

// pairedOnce asserts every index 0..k-1 appears in exactly one pair.
func pairedOnce(t *testing.T, k int, pairs [][2]int) {
	t.Helper()
	seen := make(map[int]bool, k)
	for _, p := range pairs {
		require.False(t, seen[p[0]], "index %d paired twice", p[0])
		require.False(t, seen[p[1]], "index %d paired twice", p[1])
		seen[p[0]], seen[p[1]] = true, true
	}
	require.Len(t, seen, k)
}

func totalCost(pairs [][2]int, cost func(i, j int) float64) float64 {
	var sum float64
	for _, p := range pairs {
		sum += cost(p[0], p[1])
	}
	return sum
}

// Four nodes with a unique optimum {0-1, 2-3}: greedy finds it, exact must.
func TestMatch_K4UniqueOptimum(t *testing.T) {
	cost := costMatrix([][]float64{
		{0, 1, 5, 5},
		{1, 0, 5, 5},
		{5, 5, 0, 1},
		{5, 5, 1, 0},
	})

	for name, match := range map[string]func(int, func(int, int) float64) [][2]int{
		"exact":  exactMatch,
		"greedy": greedyMatch,
	} {
		pairs := match(4, cost)
		pairedOnce(t, 4, pairs)
		require.Equalf(t, 2.0, totalCost(pairs, cost), "%s matching missed the optimum", name)
	}
}

// A case where greedy is provably suboptimal: pairing 0 with its nearest
// neighbor 1 forces the expensive 2-3 pair. Exact must avoid the trap.
func TestMatch_ExactBeatsGreedy(t *testing.T) {
	cost := costMatrix([][]float64{
		{0, 1, 2, 9},
		{1, 0, 9, 2},
		{2, 9, 0, 9},
		{9, 2, 9, 0},
	})

	exact := exactMatch(4, cost)
	pairedOnce(t, 4, exact)
	require.Equal(t, 4.0, totalCost(exact, cost), "optimum is {0-2, 1-3}")

	greedy := greedyMatch(4, cost)
	pairedOnce(t, 4, greedy)
	require.Equal(t, 10.0, totalCost(greedy, cost), "greedy takes 0-1 then is stuck with 2-3")
}

// Reconstruction must emit a valid perfect matching at the DP optimum for
// every even set size, in particular k ≥ 4 where the unwind spans several
// states, and index 0's partner is fixed by an early transition rather than
// the final one.
func TestMatch_ExactReconstruction(t *testing.T) {
	// Unique optimum {0-3, 1-2, 4-5} with weight 3; any pairing touching a
	// cross edge costs at least 20.
	cost := costMatrix([][]float64{
		{0, 20, 20, 1, 20, 20},
		{20, 0, 1, 20, 20, 20},
		{20, 1, 0, 20, 20, 20},
		{1, 20, 20, 0, 20, 20},
		{20, 20, 20, 20, 0, 1},
		{20, 20, 20, 20, 1, 0},
	})

	pairs := exactMatch(6, cost)
	pairedOnce(t, 6, pairs)
	require.Equal(t, 3.0, totalCost(pairs, cost))

	partner := make(map[int]int, 6)
	for _, p := range pairs {
		partner[p[0]], partner[p[1]] = p[1], p[0]
	}
	require.Equal(t, 3, partner[0])
	require.Equal(t, 2, partner[1])
	require.Equal(t, 5, partner[4])
}

// Matching is deterministic: repeated runs yield identical pair lists.
func TestMatch_Deterministic(t *testing.T) {
	cost := costMatrix([][]float64{
		{0, 2, 2, 2, 2, 2},
		{2, 0, 2, 2, 2, 2},
		{2, 2, 0, 2, 2, 2},
		{2, 2, 2, 0, 2, 2},
		{2, 2, 2, 2, 0, 2},
		{2, 2, 2, 2, 2, 0},
	})

	first := exactMatch(6, cost)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, exactMatch(6, cost))
	}
	firstGreedy := greedyMatch(6, cost)
	for i := 0; i < 10; i++ {
		require.Equal(t, firstGreedy, greedyMatch(6, cost))
	}
}
