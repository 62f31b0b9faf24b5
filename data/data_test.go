package data_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"roadsweep/data"
)

const roadGraphJSON = `{
	"nodes": [
		{"id": "A", "coordinates": [2.35, 48.85]},
		{"id": "B", "coordinates": [2.36, 48.86]}
	],
	"roads": [
		{"p1": "A", "p2": "B", "distance": 120.5}
	]
}`

func TestLoadRoadGraph_AndBuild(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roads.json")
	require.NoError(t, os.WriteFile(path, []byte(roadGraphJSON), 0o644))

	rg, err := data.LoadRoadGraph(path)
	require.NoError(t, err)
	require.Len(t, rg.Nodes, 2)
	require.Len(t, rg.Roads, 1)

	g, err := rg.BuildGraph()
	require.NoError(t, err)
	require.Equal(t, 120.5, g.TotalLength())

	coords := rg.CoordinateIndex()
	require.Equal(t, [2]float64{2.35, 48.85}, coords["A"])
}

func TestLoadVehicles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vehicles.json")
	require.NoError(t, os.WriteFile(path, []byte(`["A", "B", "A"]`), 0o644))

	starts, err := data.LoadVehicles(path)
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "A"}, starts)
}

func TestSaveAndLoadPaths(t *testing.T) {
	pf := &data.PathsFile{
		PlanID: "test-plan",
		Vehicles: []data.VehiclePath{
			{
				Start:  "A",
				Length: 120.5,
				Points: []data.PathPoint{
					{Node: "A"},
					{Node: "B", Distance: 120.5},
				},
			},
			{Start: "B", Points: []data.PathPoint{}},
		},
	}

	path := filepath.Join(t.TempDir(), "paths.json")
	require.NoError(t, data.SavePaths(path, pf))

	got, err := data.LoadPaths(path)
	require.NoError(t, err)
	require.Equal(t, pf.PlanID, got.PlanID)
	require.Len(t, got.Vehicles, 2)
	require.Equal(t, pf.Vehicles[0].Points, got.Vehicles[0].Points)
	require.Empty(t, got.Vehicles[1].Points, "empty routes stay present for index stability")
}

func TestLoadRoadGraph_MissingFile(t *testing.T) {
	_, err := data.LoadRoadGraph(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}
