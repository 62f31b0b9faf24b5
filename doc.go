// Package roadsweep computes balanced road-coverage routes: given a road
// network and a fleet of vehicles with fixed start intersections, it assigns
// every reachable road segment to exactly one vehicle and orders each
// vehicle's segments into a connected route, with route lengths balanced
// across the fleet as evenly as the heuristics achieve.
//
// The pipeline, package by package:
//
//	data/      — wire formats: road-graph JSON, vehicle list, paths file
//	graph/     — undirected weighted multigraph model with edge multiplicity
//	component/ — connected components, vehicle assignment, coverage report
//	eulerize/  — minimum-length edge duplication until all degrees are even
//	split/     — Euler circuit construction and balanced multi-vehicle cuts
//	plan/      — orchestration, parallel per-component execution, emission
//	geojson/   — per-vehicle route geometry for visualization
//	config/    — YAML planner configuration
//	metrics/   — Prometheus instrumentation
//
// The computation is a deterministic single-shot batch: identical inputs
// produce byte-identical outputs. Unreachable road segments and surplus
// co-located vehicles are reported as warnings, never as failures.
//
// See cmd/roadsweep for the command-line interface.
package roadsweep
