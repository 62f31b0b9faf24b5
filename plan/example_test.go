package plan_test

import (
	"fmt"

	"roadsweep/graph"
	"roadsweep/plan"
)

// Two vehicles on a unit square, starting at opposite corners, each sweep
// exactly half of it.
func ExampleBuild() {
	g, _ := graph.Build(
		[]string{"A", "B", "C", "D"},
		[]graph.Road{
			{P1: "A", P2: "B", Length: 1},
			{P1: "B", P2: "C", Length: 1},
			{P1: "C", P2: "D", Length: 1},
			{P1: "D", P2: "A", Length: 1},
		},
	)

	res, _ := plan.Build(g, []string{"A", "C"}, plan.DefaultOptions())
	for _, r := range res.Routes {
		fmt.Printf("vehicle %d from %s: length %.0f\n", r.Vehicle, r.Start, r.Length)
	}
	// Output:
	// vehicle 0 from A: length 2
	// vehicle 1 from C: length 2
}
