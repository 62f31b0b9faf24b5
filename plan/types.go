// Package plan orchestrates the full coverage-planning pipeline and emits
// per-vehicle routes.
//
// Build runs: component analysis → per-component augmentation and splitting
// (in parallel across components) → route emission in vehicle input order.
// Input errors abort before any result is produced; limitations (unknown
// start nodes, excess co-located vehicles, unreachable road segments) are
// collected as warnings on a successful result.
package plan

import (
	"fmt"
	"runtime"

	"roadsweep/eulerize"
	"roadsweep/graph"
)

// WarningCode classifies non-fatal conditions attached to a Result.
type WarningCode string

const (
	// WarnUnknownStart marks a vehicle excluded because its start node is
	// not part of the road graph.
	WarnUnknownStart WarningCode = "unknown_start"

	// WarnExcessVehicle marks a vehicle that received an empty route because
	// its start node had no remaining circuit occurrence to cut at.
	WarnExcessVehicle WarningCode = "excess_vehicle"

	// WarnUnreachable reports road segments no configured vehicle can reach.
	WarnUnreachable WarningCode = "unreachable_edges"
)

// Warning is one non-fatal condition. Vehicle is -1 when the warning does not
// concern a specific vehicle.
type Warning struct {
	Code    WarningCode
	Vehicle int
	Node    string
	Detail  string
}

func (w Warning) String() string {
	if w.Vehicle >= 0 {
		return fmt.Sprintf("%s: vehicle %d (start %q): %s", w.Code, w.Vehicle, w.Node, w.Detail)
	}
	return fmt.Sprintf("%s: %s", w.Code, w.Detail)
}

// Point is one node visit on a route. Discriminator names the parallel road
// taken to arrive at the node (empty for the first point and for plain
// roads); Distance is cumulative from the route start.
type Point struct {
	Node          string
	Discriminator string
	Distance      float64
}

// Route is the ordered visit sequence of one vehicle. Points is empty when
// the vehicle was excluded, exceeded its start's cut capacity, or started on
// a roadless component; the route itself is always present so that vehicle
// indices stay stable downstream.
type Route struct {
	Vehicle int
	Start   string
	Length  float64
	Points  []Point
}

// Empty reports whether the route covers no road segment.
func (r Route) Empty() bool { return len(r.Points) == 0 }

// Result is the outcome of one planning run.
type Result struct {
	Routes      []Route
	Warnings    []Warning
	Unreachable []*graph.Edge
}

// Options tunes pipeline execution.
type Options struct {
	// Workers bounds the number of components processed concurrently.
	// Zero or negative means runtime.NumCPU().
	Workers int

	// Eulerize is passed through to the augmenter.
	Eulerize eulerize.Options
}

// DefaultOptions returns the production defaults.
func DefaultOptions() Options {
	return Options{
		Workers:  runtime.NumCPU(),
		Eulerize: eulerize.DefaultOptions(),
	}
}
