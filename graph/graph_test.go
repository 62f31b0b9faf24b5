package graph

import (
	"errors"
	"math"
	"testing"
)

// square returns the 4-node ring A-B-C-D-A with unit lengths.
func square(t *testing.T) *Graph {
	t.Helper()
	g, err := Build(
		[]string{"A", "B", "C", "D"},
		[]Road{
			{P1: "A", P2: "B", Length: 1},
			{P1: "B", P2: "C", Length: 1},
			{P1: "C", P2: "D", Length: 1},
			{P1: "D", P2: "A", Length: 1},
		},
	)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return g
}

func TestBuild_RejectsUnknownEndpoint(t *testing.T) {
	_, err := Build([]string{"A"}, []Road{{P1: "A", P2: "Z", Length: 1}})
	if !errors.Is(err, ErrUnknownNode) {
		t.Fatalf("got %v; want ErrUnknownNode", err)
	}
}

func TestBuild_RejectsBadLength(t *testing.T) {
	for _, l := range []float64{0, -2, math.NaN(), math.Inf(1)} {
		_, err := Build([]string{"A", "B"}, []Road{{P1: "A", P2: "B", Length: l}})
		if !errors.Is(err, ErrBadLength) {
			t.Fatalf("length %v: got %v; want ErrBadLength", l, err)
		}
	}
}

func TestBuild_RejectsDuplicateAndEmptyNodes(t *testing.T) {
	if _, err := Build([]string{"A", "A"}, nil); !errors.Is(err, ErrDuplicateNode) {
		t.Fatalf("got %v; want ErrDuplicateNode", err)
	}
	if _, err := Build([]string{""}, nil); !errors.Is(err, ErrEmptyNodeID) {
		t.Fatalf("got %v; want ErrEmptyNodeID", err)
	}
}

func TestDegreeAndTotalLength(t *testing.T) {
	g := square(t)
	for _, n := range g.Nodes() {
		if d := g.Degree(n); d != 2 {
			t.Errorf("Degree(%s) = %d; want 2", n, d)
		}
	}
	if tl := g.TotalLength(); tl != 4 {
		t.Errorf("TotalLength = %v; want 4", tl)
	}
}

// A self-loop counts twice toward degree and once in the neighbor list.
func TestDegree_SelfLoop(t *testing.T) {
	g, err := Build([]string{"A", "B"}, []Road{
		{P1: "A", P2: "B", Length: 1},
		{P1: "A", P2: "A", Length: 3},
	})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if d := g.Degree("A"); d != 3 {
		t.Errorf("Degree(A) = %d; want 3", d)
	}
	if n := len(g.Neighbors("A")); n != 2 {
		t.Errorf("len(Neighbors(A)) = %d; want 2", n)
	}
}

// Multiplicity raises degree without changing topology.
func TestDegree_Copies(t *testing.T) {
	g := square(t)
	g.Neighbors("A")[0].Copies = 2
	if d := g.Degree("A"); d != 3 {
		t.Errorf("Degree(A) with a duplicated edge = %d; want 3", d)
	}
}

func TestNeighbors_DeterministicOrder(t *testing.T) {
	g := square(t)
	es := g.Neighbors("A")
	if len(es) != 2 {
		t.Fatalf("len(Neighbors(A)) = %d; want 2", len(es))
	}
	if es[0].Other("A") != "B" || es[1].Other("A") != "D" {
		t.Errorf("Neighbors(A) order = [%s %s]; want [B D]",
			es[0].Other("A"), es[1].Other("A"))
	}
}

func TestBuild_ParallelEdges(t *testing.T) {
	g, err := Build([]string{"A", "B"}, []Road{
		{P1: "A", P2: "B", Discriminator: "east", Length: 2},
		{P1: "B", P2: "A", Discriminator: "west", Length: 3},
	})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if g.EdgeCount() != 2 {
		t.Fatalf("EdgeCount = %d; want 2", g.EdgeCount())
	}
	if d := g.Degree("A"); d != 2 {
		t.Errorf("Degree(A) = %d; want 2", d)
	}
	// Endpoint normalization: both parallel edges store P1="A".
	for _, e := range g.Edges() {
		if e.P1 != "A" || e.P2 != "B" {
			t.Errorf("edge not normalized: %+v", e)
		}
	}
}
