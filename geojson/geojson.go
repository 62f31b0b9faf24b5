// Package geojson converts emitted vehicle paths into GeoJSON feature
// collections for visualization. It is a pure coordinate-lookup and
// serialization step; the planner never reads coordinates.
package geojson

import (
	"errors"
	"fmt"

	"roadsweep/data"
)

// ErrUnknownNode indicates a path references a node absent from the road
// graph, which means the paths file and graph file do not belong together.
var ErrUnknownNode = errors.New("geojson: path node not found in road graph")

// Geometry is a GeoJSON geometry object; only LineString is emitted.
type Geometry struct {
	Type        string       `json:"type"`
	Coordinates [][2]float64 `json:"coordinates"`
}

// Feature is a GeoJSON feature wrapping one vehicle's route geometry.
type Feature struct {
	Type       string         `json:"type"`
	Properties map[string]any `json:"properties"`
	Geometry   Geometry       `json:"geometry"`
}

// FeatureCollection is the top-level GeoJSON document, one per vehicle.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// FromPath traces the route of one vehicle through the node coordinates.
// An empty route produces a collection with one empty LineString, so every
// vehicle still gets a file and downstream indexing stays stable.
func FromPath(coords map[string][2]float64, vehicle int, vp data.VehiclePath) (*FeatureCollection, error) {
	line := make([][2]float64, 0, len(vp.Points))
	for _, p := range vp.Points {
		c, ok := coords[p.Node]
		if !ok {
			return nil, fmt.Errorf("%w: %q (vehicle %d)", ErrUnknownNode, p.Node, vehicle)
		}
		line = append(line, c)
	}

	return &FeatureCollection{
		Type: "FeatureCollection",
		Features: []Feature{{
			Type: "Feature",
			Properties: map[string]any{
				"vehicle": vehicle,
				"start":   vp.Start,
				"length":  vp.Length,
			},
			Geometry: Geometry{Type: "LineString", Coordinates: line},
		}},
	}, nil
}
