// Package data holds the wire representations exchanged through files: the
// road-graph JSON, the vehicle list, and the computed paths file, plus their
// load/save helpers. The core packages never touch the filesystem; everything
// file-shaped lives here.
package data

import (
	"encoding/json"
	"fmt"
	"os"

	"roadsweep/graph"
	"roadsweep/plan"
)

// Node is one intersection. Coordinates are [longitude, latitude] and are
// consumed only by the GeoJSON exporter; the planner itself is purely metric.
type Node struct {
	ID          string     `json:"id"`
	Coordinates [2]float64 `json:"coordinates"`
}

// RoadSegment is one traversable road between two intersections.
// Discriminator distinguishes parallel segments between the same pair.
type RoadSegment struct {
	P1            string  `json:"p1"`
	P2            string  `json:"p2"`
	Discriminator string  `json:"discriminator,omitempty"`
	Distance      float64 `json:"distance"`
}

// RoadGraph is the road-network input file.
type RoadGraph struct {
	Nodes []Node        `json:"nodes"`
	Roads []RoadSegment `json:"roads"`
}

// BuildGraph validates the wire form and constructs the planner's graph.
func (rg *RoadGraph) BuildGraph() (*graph.Graph, error) {
	ids := make([]string, len(rg.Nodes))
	for i, n := range rg.Nodes {
		ids[i] = n.ID
	}
	roads := make([]graph.Road, len(rg.Roads))
	for i, r := range rg.Roads {
		roads[i] = graph.Road{P1: r.P1, P2: r.P2, Discriminator: r.Discriminator, Length: r.Distance}
	}
	return graph.Build(ids, roads)
}

// CoordinateIndex maps node ID to its coordinates for geometry lookup.
func (rg *RoadGraph) CoordinateIndex() map[string][2]float64 {
	idx := make(map[string][2]float64, len(rg.Nodes))
	for _, n := range rg.Nodes {
		idx[n.ID] = n.Coordinates
	}
	return idx
}

// PathPoint is one visited node on an emitted route. Discriminator names the
// parallel road taken to arrive; Distance is cumulative from the start.
type PathPoint struct {
	Node          string  `json:"node"`
	Discriminator string  `json:"discriminator,omitempty"`
	Distance      float64 `json:"distance"`
}

// VehiclePath is one vehicle's emitted route. Points is empty (never absent)
// for vehicles without a route, keeping indices stable for consumers.
type VehiclePath struct {
	Start  string      `json:"start"`
	Length float64     `json:"length"`
	Points []PathPoint `json:"points"`
}

// PathsFile is the computed-paths output file. Vehicle order matches the
// input vehicle list exactly.
type PathsFile struct {
	PlanID   string        `json:"planId"`
	Vehicles []VehiclePath `json:"vehicles"`
}

// NewPathsFile converts a planning result into its wire form.
func NewPathsFile(planID string, routes []plan.Route) *PathsFile {
	pf := &PathsFile{PlanID: planID, Vehicles: make([]VehiclePath, len(routes))}
	for i, r := range routes {
		vp := VehiclePath{Start: r.Start, Length: r.Length, Points: []PathPoint{}}
		for _, p := range r.Points {
			vp.Points = append(vp.Points, PathPoint{
				Node:          p.Node,
				Discriminator: p.Discriminator,
				Distance:      p.Distance,
			})
		}
		pf.Vehicles[i] = vp
	}
	return pf
}

// LoadRoadGraph reads and decodes a road-graph JSON file.
func LoadRoadGraph(path string) (*RoadGraph, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read road graph %s: %w", path, err)
	}
	var rg RoadGraph
	if err := json.Unmarshal(raw, &rg); err != nil {
		return nil, fmt.Errorf("parse road graph %s: %w", path, err)
	}
	return &rg, nil
}

// LoadVehicles reads the vehicle configuration: a JSON array of start-node
// IDs whose order defines the vehicle index everywhere downstream.
func LoadVehicles(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read vehicles %s: %w", path, err)
	}
	var starts []string
	if err := json.Unmarshal(raw, &starts); err != nil {
		return nil, fmt.Errorf("parse vehicles %s: %w", path, err)
	}
	return starts, nil
}

// LoadPaths reads a previously computed paths file.
func LoadPaths(path string) (*PathsFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read paths %s: %w", path, err)
	}
	var pf PathsFile
	if err := json.Unmarshal(raw, &pf); err != nil {
		return nil, fmt.Errorf("parse paths %s: %w", path, err)
	}
	return &pf, nil
}

// SavePaths encodes and writes the paths file. The caller computes the full
// result before calling, so a failed run never leaves a partial file.
func SavePaths(path string, pf *PathsFile) error {
	raw, err := json.MarshalIndent(pf, "", "\t")
	if err != nil {
		return fmt.Errorf("encode paths: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write paths %s: %w", path, err)
	}
	return nil
}
