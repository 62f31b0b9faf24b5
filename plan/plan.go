package plan

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"roadsweep/component"
	"roadsweep/eulerize"
	"roadsweep/graph"
	"roadsweep/metrics"
	"roadsweep/split"
)

// compOutcome carries one component's augmentation and splitting results back
// to the merge step.
type compOutcome struct {
	aug     eulerize.Result
	walks   [][]split.Step // parallel to the component's vehicle list
	skipped []int          // indices into the component's vehicle list
}

// Build computes coverage routes for every vehicle in starts over g.
//
// Components with at least one vehicle are augmented and split independently
// on a bounded worker pool; component data is edge-disjoint, so no locking is
// needed beyond collecting results. Outcomes are merged by component index,
// which makes the output independent of goroutine completion order.
//
// The only error conditions are defensive invariant violations from the
// augmenter or splitter; all input-level problems surface as warnings on the
// Result.
func Build(g *graph.Graph, starts []string, opts Options) (*Result, error) {
	began := time.Now()
	if opts.Workers <= 0 {
		opts.Workers = DefaultOptions().Workers
	}

	comps := component.Find(g)
	byComp, unknown := component.Assign(g, starts, comps)

	res := &Result{Routes: make([]Route, len(starts))}
	for vi, s := range starts {
		res.Routes[vi] = Route{Vehicle: vi, Start: s}
	}
	for _, vi := range unknown {
		res.Warnings = append(res.Warnings, Warning{
			Code:    WarnUnknownStart,
			Vehicle: vi,
			Node:    starts[vi],
			Detail:  fmt.Sprintf("%v; vehicle excluded", component.ErrUnknownStart),
		})
	}

	res.Unreachable = component.UnreachableEdges(comps, byComp)
	if n := len(res.Unreachable); n > 0 {
		var total float64
		for _, e := range res.Unreachable {
			total += e.Length
		}
		res.Warnings = append(res.Warnings, Warning{
			Code:    WarnUnreachable,
			Vehicle: -1,
			Detail:  fmt.Sprintf("%d road segments (%.1f) unreachable from all start nodes", n, total),
		})
	}

	// Deterministic job order: ascending component index.
	var jobs []int
	for ci := range comps {
		if len(byComp[ci]) > 0 {
			jobs = append(jobs, ci)
		}
	}
	sort.Ints(jobs)

	outcomes := make(map[int]*compOutcome, len(jobs))
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	sem := make(chan struct{}, opts.Workers)

	for _, ci := range jobs {
		wg.Add(1)
		go func(ci int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			out, err := processComponent(&comps[ci], byComp[ci], starts, opts)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				return
			}
			outcomes[ci] = out
		}(ci)
	}
	wg.Wait()
	if firstErr != nil {
		return nil, firstErr
	}

	// Merge by component index so vehicle order and warnings are stable.
	for _, ci := range jobs {
		out := outcomes[ci]
		vehicles := byComp[ci]
		for li, vi := range vehicles {
			res.Routes[vi] = emit(vi, starts[vi], out.walks[li])
		}
		for _, li := range out.skipped {
			vi := vehicles[li]
			res.Warnings = append(res.Warnings, Warning{
				Code:    WarnExcessVehicle,
				Vehicle: vi,
				Node:    starts[vi],
				Detail:  "no circuit occurrence left for this start node; empty route",
			})
		}
		metrics.ComponentsPlanned.Inc()
		metrics.OddNodesMatched.Add(float64(out.aug.OddNodes))
		metrics.DuplicatedLength.Add(out.aug.AddedLength)
	}

	for _, r := range res.Routes {
		if !r.Empty() {
			metrics.RouteLength.Observe(r.Length)
		}
	}
	metrics.PlansTotal.Inc()
	metrics.PlanDuration.Observe(time.Since(began).Seconds())

	return res, nil
}

// processComponent runs augmentation and splitting for one component.
func processComponent(comp *component.Component, vehicles []int, starts []string, opts Options) (*compOutcome, error) {
	aug, err := eulerize.Augment(comp, opts.Eulerize)
	if err != nil {
		return nil, err
	}
	circuit, err := split.Circuit(comp)
	if err != nil {
		return nil, err
	}

	local := make([]string, len(vehicles))
	for i, vi := range vehicles {
		local[i] = starts[vi]
	}
	walks, skipped := split.Paths(circuit, local)

	return &compOutcome{aug: aug, walks: walks, skipped: skipped}, nil
}

// emit converts a walk into the wire-facing visit sequence with cumulative
// distances. An empty walk yields a route with no points.
func emit(vehicle int, start string, walk []split.Step) Route {
	r := Route{Vehicle: vehicle, Start: start}
	if len(walk) == 0 {
		return r
	}

	r.Points = make([]Point, 0, len(walk)+1)
	r.Points = append(r.Points, Point{Node: walk[0].From})
	var cum float64
	for _, s := range walk {
		cum += s.Edge.Length
		r.Points = append(r.Points, Point{
			Node:          s.To(),
			Discriminator: s.Edge.Discriminator,
			Distance:      cum,
		})
	}
	r.Length = cum

	return r
}
