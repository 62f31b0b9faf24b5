package geojson_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"roadsweep/data"
	"roadsweep/geojson"
)

func TestFromPath_TracesCoordinates(t *testing.T) {
	coords := map[string][2]float64{
		"A": {2.35, 48.85},
		"B": {2.36, 48.86},
		"C": {2.37, 48.85},
	}
	vp := data.VehiclePath{
		Start:  "A",
		Length: 2,
		Points: []data.PathPoint{
			{Node: "A"},
			{Node: "B", Distance: 1},
			{Node: "C", Distance: 2},
		},
	}

	fc, err := geojson.FromPath(coords, 0, vp)
	require.NoError(t, err)
	require.Equal(t, "FeatureCollection", fc.Type)
	require.Len(t, fc.Features, 1)

	geom := fc.Features[0].Geometry
	require.Equal(t, "LineString", geom.Type)
	require.Equal(t, [][2]float64{{2.35, 48.85}, {2.36, 48.86}, {2.37, 48.85}}, geom.Coordinates)
	require.Equal(t, 0, fc.Features[0].Properties["vehicle"])
}

func TestFromPath_EmptyRoute(t *testing.T) {
	fc, err := geojson.FromPath(nil, 3, data.VehiclePath{Start: "A"})
	require.NoError(t, err)
	require.Len(t, fc.Features, 1)
	require.Empty(t, fc.Features[0].Geometry.Coordinates)
}

func TestFromPath_UnknownNode(t *testing.T) {
	vp := data.VehiclePath{Points: []data.PathPoint{{Node: "GHOST"}}}
	_, err := geojson.FromPath(map[string][2]float64{}, 1, vp)
	require.True(t, errors.Is(err, geojson.ErrUnknownNode))
}
